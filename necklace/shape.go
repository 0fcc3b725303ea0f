// SPDX-License-Identifier: MIT
//
// File: shape.go
// Role: Structural predicates on the reduced string and walk-graph separability.

package necklace

// MaxSeparabilityColours bounds the brute-force max-cut of Separability.
const MaxSeparabilityColours = 30

// HasOnlyBicomponents reports whether every colour has at most two components.
func (nk *Necklace) HasOnlyBicomponents() bool {
	for _, c := range nk.colours {
		if len(nk.compOcc[c]) > 2 {
			return false
		}
	}
	return true
}

// MultiComponentColours returns, in first-occurrence order, the colours with more
// than two components.
func (nk *Necklace) MultiComponentColours() []string {
	var out []string
	for _, c := range nk.colours {
		if len(nk.compOcc[c]) > 2 {
			out = append(out, c)
		}
	}
	return out
}

// NeighbouringIntervals returns the first component index i such that components
// i and i+1 are both intervals (colours with a single component).
func (nk *Necklace) NeighbouringIntervals() (int, bool) {
	for i := 0; i+1 < len(nk.reduced); i++ {
		if len(nk.compOcc[nk.reduced[i]]) == 1 && len(nk.compOcc[nk.reduced[i+1]]) == 1 {
			return i, true
		}
	}
	return 0, false
}

// HasInsideEmbracing reports whether the first or the last component is an
// interval, or both belong to the same colour.
func (nk *Necklace) HasInsideEmbracing() bool {
	size := len(nk.reduced)
	if size == 0 {
		return false
	}
	first, last := nk.reduced[0], nk.reduced[size-1]
	return first == last || len(nk.compOcc[first]) == 1 || len(nk.compOcc[last]) == 1
}

// IsIrreducible reports whether no structural reduction applies: no neighbouring
// intervals, no colour with more than two components and no inside-embracing colour.
func (nk *Necklace) IsIrreducible() bool {
	if len(nk.colours) == 0 {
		return false
	}
	if _, ok := nk.NeighbouringIntervals(); ok {
		return false
	}
	return nk.HasOnlyBicomponents() && !nk.HasInsideEmbracing()
}

// Separability returns the maximum cut of the walk graph, by enumerating every
// subset of colours.
//
// Errors:
//   - ErrTooManyColours: n > MaxSeparabilityColours.
//
// Complexity: O(2^n · E).
func (nk *Necklace) Separability() (int, error) {
	n := len(nk.colours)
	if n > MaxSeparabilityColours {
		return 0, necklaceErrorf("Separability", ErrTooManyColours, "%d colours (max %d)", n, MaxSeparabilityColours)
	}

	var (
		best int
		side = make(map[string]bool, n)
	)
	// the complement of a subset has the same cut, so the last colour stays outside
	half := uint64(1) << uint(max(n-1, 0))
	for mask := uint64(0); mask < half; mask++ {
		for i, c := range nk.colours {
			side[c] = mask&(1<<uint(i)) != 0
		}
		if cut := nk.walk.CutSize(side); cut > best {
			best = cut
		}
	}

	return best, nil
}

// IsSeparable reports whether the necklace is n-separable, i.e. Separability() <= n.
func (nk *Necklace) IsSeparable() (bool, error) {
	sep, err := nk.Separability()
	if err != nil {
		return false, err
	}
	return sep <= len(nk.colours), nil
}
