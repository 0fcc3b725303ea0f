// SPDX-License-Identifier: MIT
//
// File: cut.go
// Role: Cut algebra: side counting, cut permutation and parity, augmentation.
// Determinism:
//   - Every function is a pure left-to-right scan; cuts are treated as sets
//     (order and duplicates of the input slice do not matter).

package necklace

import "sort"

// NotFound is returned by Augment when no bead of the component reaches the target.
const NotFound = -1

// normalizeCut returns the cut positions sorted ascending without duplicates.
func normalizeCut(cut []int) []int {
	out := append([]int(nil), cut...)
	sort.Ints(out)
	w := 0
	for i, p := range out {
		if i > 0 && p == out[i-1] {
			continue
		}
		out[w] = p
		w++
	}
	return out[:w]
}

// Count returns the number of beads of colour lying on the positive side of cut.
//
// The scan starts on the positive side iff startSide is true; each cut position
// flips the side and is itself counted on the side reached after the flip, so a
// cut bead always counts for its own colour.
//
// Complexity: O(N + |cut| log |cut|).
func (nk *Necklace) Count(cut []int, colour string, startSide bool) int {
	sorted := normalizeCut(cut)

	var (
		total int
		k     int
		side  = startSide
	)
	for i, c := range nk.beads {
		for k < len(sorted) && sorted[k] < i {
			k++ // positions outside [0,N) are ignored
		}
		if k < len(sorted) && sorted[k] == i {
			side = !side
			if c == colour {
				total++
			}
			continue
		}
		if side && c == colour {
			total++
		}
	}

	return total
}

// CutPermutation returns the type indices of the cut colours read left to right.
//
// Errors:
//   - ErrInvalidCut: the cut has not exactly n distinct positions, a position is
//     out of range, or a colour appears twice.
//
// Complexity: O(n log n).
func (nk *Necklace) CutPermutation(cut []int) ([]int, error) {
	sorted := normalizeCut(cut)
	n := nk.NumColours()
	if len(sorted) != n || len(cut) != n {
		return nil, necklaceErrorf("CutPermutation", ErrInvalidCut, "%d positions for %d colours", len(cut), n)
	}

	perm := make([]int, n)
	seen := make([]bool, n)
	for i, p := range sorted {
		if p < 0 || p >= len(nk.beads) {
			return nil, necklaceErrorf("CutPermutation", ErrInvalidCut, "position %d out of range [0,%d)", p, len(nk.beads))
		}
		r := nk.typeIndex[nk.beads[p]]
		if seen[r] {
			return nil, necklaceErrorf("CutPermutation", ErrInvalidCut, "colour %q cut twice", nk.beads[p])
		}
		seen[r] = true
		perm[i] = r
	}

	return perm, nil
}

// CutParity reports whether the cut permutation is even.
//
// Errors:
//   - ErrInvalidCut: see CutPermutation.
//
// Complexity: O(n²) inversion count; n is the colour count, not the bead count.
func (nk *Necklace) CutParity(cut []int) (bool, error) {
	perm, err := nk.CutPermutation(cut)
	if err != nil {
		return false, err
	}
	return isEven(perm), nil
}

// isEven reports whether perm has an even number of inversions.
func isEven(perm []int) bool {
	var inv int
	for i := range perm {
		for j := i + 1; j < len(perm); j++ {
			if perm[i] > perm[j] {
				inv++
			}
		}
	}
	return inv%2 == 0
}

// PositiveCount is Count with the start side fixed by the cut parity: an even
// cut permutation starts on the positive side, an odd one on the negative side.
//
// Errors:
//   - ErrInvalidCut: see CutPermutation.
func (nk *Necklace) PositiveCount(cut []int, colour string) (int, error) {
	even, err := nk.CutParity(cut)
	if err != nil {
		return 0, err
	}
	return nk.Count(cut, colour, even), nil
}

// Augment completes a partial cut, which covers every colour except the colour of
// component, by a bead of that component. It returns the first bead (in position
// order) for which the positive count of the component's colour equals target,
// or NotFound.
//
// Errors:
//   - ErrComponentRange: component is not a valid component index.
//   - ErrInvalidCut: partial plus one bead of the component is not a full cut.
//
// Complexity: O(|component| · N).
func (nk *Necklace) Augment(partial []int, component, target int) (int, error) {
	if component < 0 || component >= len(nk.compBeads) {
		return NotFound, necklaceErrorf("Augment", ErrComponentRange, "component %d of %d", component, len(nk.compBeads))
	}

	colour := nk.reduced[component]
	try := make([]int, len(partial)+1)
	copy(try, partial)
	for _, bead := range nk.compBeads[component] {
		try[len(partial)] = bead
		cnt, err := nk.PositiveCount(try, colour)
		if err != nil {
			return NotFound, err
		}
		if cnt == target {
			return bead, nil
		}
	}

	return NotFound, nil
}

// Verify checks that cut realises alpha: for every colour the positive count
// equals alpha[colour].
//
// Errors:
//   - ErrInvalidCut: the cut is not colourful (see CutPermutation).
//   - ErrCutMismatch: some colour has a different positive count.
func (nk *Necklace) Verify(cut []int, alpha Alpha) error {
	even, err := nk.CutParity(cut)
	if err != nil {
		return err
	}
	for _, c := range nk.colours {
		if got := nk.Count(cut, c, even); got != alpha[c] {
			return necklaceErrorf("Verify", ErrCutMismatch, "colour %q: got %d, want %d", c, got, alpha[c])
		}
	}
	return nil
}
