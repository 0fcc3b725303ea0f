// SPDX-License-Identifier: MIT
//
// File: cases.go
// Role: One method per structural case, plus the re-basing and assertion helpers.
// Policy:
//   - Sub-instances are solved with solve(depth+1) and their cuts re-based onto
//     the parent by merging against the sorted removed bead positions.
//   - An augmentation the case analysis proves to exist is asserted with violate.

package alphacut

import (
	"fmt"

	"github.com/linstald/master-thesis-scripts/compcut"
	"github.com/linstald/master-thesis-scripts/necklace"
)

// rebase maps a sorted cut of a sub-necklace back onto its parent, given the
// sorted parent positions of the removed beads.
func rebase(cut, removed []int) []int {
	out := make([]int, 0, len(cut))
	var j, inc int
	for _, c := range cut {
		for j < len(removed) && removed[j] <= c+inc {
			inc++
			j++
		}
		out = append(out, c+inc)
	}
	return out
}

// with returns a fresh slice holding cut followed by extra.
func with(cut []int, extra ...int) []int {
	out := make([]int, 0, len(cut)+len(extra))
	out = append(out, cut...)
	return append(out, extra...)
}

// without returns the positions of cut whose bead is not of colour.
func without(nk *necklace.Necklace, cut []int, colour string) []int {
	out := make([]int, 0, len(cut))
	for _, p := range cut {
		if nk.Bead(p) != colour {
			out = append(out, p)
		}
	}
	return out
}

// augment is Necklace.Augment with errors promoted to invariant violations.
func augment(sh shape, nk *necklace.Necklace, partial []int, component, target int) int {
	b, err := nk.Augment(partial, component, target)
	if err != nil {
		violate(sh, nk.String(), "augment component %d of %v: %v", component, partial, err)
	}
	return b
}

// mustAugment is augment for placements the case analysis guarantees.
func mustAugment(sh shape, nk *necklace.Necklace, partial []int, component, target int) int {
	b := augment(sh, nk, partial, component, target)
	if b == necklace.NotFound {
		violate(sh, nk.String(), "no bead of component %d reaches %d on top of %v", component, target, partial)
	}
	return b
}

func parity(sh shape, nk *necklace.Necklace, cut []int) bool {
	even, err := nk.CutParity(cut)
	if err != nil {
		violate(sh, nk.String(), "parity of %v: %v", cut, err)
	}
	return even
}

// reduction is a solved sub-necklace together with its cuts lifted onto the parent.
type reduction struct {
	sub    *necklace.Necklace
	small  cutPair // cuts of sub
	lifted cutPair // the same cuts in parent positions
}

// solveSmaller solves the sub-necklace left after removing the sorted positions
// removed, and re-bases both cuts onto nk.
func (s *Solver) solveSmaller(nk *necklace.Necklace, removed []int, alpha necklace.Alpha, depth int) (reduction, error) {
	drop := make(map[int]struct{}, len(removed))
	for _, p := range removed {
		drop[p] = struct{}{}
	}
	sub := nk.Remove(func(pos int, _ string) bool {
		_, hit := drop[pos]
		return hit
	})

	small, err := s.solve(sub, sub.Restrict(alpha), depth+1)
	if err != nil {
		return reduction{}, err
	}
	return reduction{
		sub:   sub,
		small: small,
		lifted: cutPair{
			alpha:    rebase(small.alpha, removed),
			negAlpha: rebase(small.negAlpha, removed),
		},
	}, nil
}

// colourPositions returns the sorted bead positions of the given colours.
func colourPositions(nk *necklace.Necklace, colours ...string) []int {
	hit := make(map[string]bool, len(colours))
	for _, c := range colours {
		hit[c] = true
	}
	var out []int
	for i := 0; i < nk.Len(); i++ {
		if hit[nk.Bead(i)] {
			out = append(out, i)
		}
	}
	return out
}

// solveNeighbouringIntervals removes two adjacent intervals x y, solves the rest
// and places the x cut, then the y cut. Colour ranks are by first occurrence, so
// the two extra cut points never change the parity of the smaller cut.
func (s *Solver) solveNeighbouringIntervals(nk *necklace.Necklace, alpha necklace.Alpha, depth int) (cutPair, error) {
	const sh = shapeNeighbouringIntervals
	i, _ := nk.NeighbouringIntervals()
	x, y := nk.ComponentColour(i), nk.ComponentColour(i+1)
	neg := nk.NegAlpha(alpha)

	red, err := s.solveSmaller(nk, colourPositions(nk, x, y), alpha, depth)
	if err != nil {
		return cutPair{}, err
	}
	small := red.lifted

	// any bead of y completes the partial cut while x is placed
	yLast := nk.ComponentStart(i+1) + nk.ComponentLen(i+1) - 1
	xa := mustAugment(sh, nk, with(small.alpha, yLast), i, alpha[x])
	xn := mustAugment(sh, nk, with(small.negAlpha, yLast), i, neg[x])
	ya := mustAugment(sh, nk, with(small.alpha, xa), i+1, alpha[y])
	yn := mustAugment(sh, nk, with(small.negAlpha, xn), i+1, neg[y])

	return cutPair{
		alpha:    sorted(with(small.alpha, xa, ya)),
		negAlpha: sorted(with(small.negAlpha, xn, yn)),
	}, nil
}

// Reconciliations of a smaller cut with a fixed component, indexed as
// <source>To<target>.
const (
	alphaToAlpha = iota
	alphaToNeg
	negToAlpha
	negToNeg
	reconciliations
)

// solveMultiComponent fixes one component per colour with more than two
// components, for every combination of such components, until both an alpha
// and a negalpha cut are assembled.
func (s *Solver) solveMultiComponent(nk *necklace.Necklace, alpha necklace.Alpha, depth int) (cutPair, error) {
	const sh = shapeMultiComponent
	multi := nk.MultiComponentColours()
	neg := nk.NegAlpha(alpha)

	occ := make([][]int, len(multi))
	isMulti := make(map[string]bool, len(multi))
	for k, c := range multi {
		occ[k] = nk.ComponentOccurrences(c)
		isMulti[c] = true
	}

	// fixed components do not care about their own alpha value
	alphaSmall := make(necklace.Alpha, len(alpha))
	for c, v := range alpha {
		alphaSmall[c] = v
	}
	for _, c := range multi {
		alphaSmall[c] = 1
	}

	compOf := make([]int, nk.Len())
	for comp := 0; comp < nk.Size(); comp++ {
		for _, b := range nk.ComponentBeads(comp) {
			compOf[b] = comp
		}
	}

	var res cutPair
	odometer := make([]int, len(multi))
	for {
		keep := make(map[int]bool, len(multi))
		for k := range multi {
			keep[occ[k][odometer[k]]] = true
		}
		var removed []int
		for i := 0; i < nk.Len(); i++ {
			if isMulti[nk.Bead(i)] && !keep[compOf[i]] {
				removed = append(removed, i)
			}
		}

		red, err := s.solveSmaller(nk, removed, alphaSmall, depth)
		if err != nil {
			return cutPair{}, err
		}
		small := red.lifted
		smallParity := [2]bool{
			parity(sh, red.sub, red.small.alpha),
			parity(sh, red.sub, red.small.negAlpha),
		}

		found := make([][reconciliations]int, len(multi))
		for k, col := range multi {
			found[k] = [reconciliations]int{necklace.NotFound, necklace.NotFound, necklace.NotFound, necklace.NotFound}
			partial := [2][]int{without(nk, small.alpha, col), without(nk, small.negAlpha, col)}
			for _, b := range nk.ComponentBeads(occ[k][odometer[k]]) {
				for src := 0; src < 2; src++ {
					try := with(partial[src], b)
					even := parity(sh, nk, try)
					cnt := nk.Count(try, col, even)
					flipped := even != smallParity[src]
					toAlpha, toNeg := alphaToAlpha, alphaToNeg
					if src == 1 {
						toAlpha, toNeg = negToAlpha, negToNeg
					}
					// the parity flips exactly when the roles of alpha and negalpha swap
					if cnt == alpha[col] && flipped == (src == 1) && found[k][toAlpha] == necklace.NotFound {
						found[k][toAlpha] = b
					}
					if cnt == neg[col] && flipped == (src == 0) && found[k][toNeg] == necklace.NotFound {
						found[k][toNeg] = b
					}
				}
			}
		}

		for r := 0; r < reconciliations; r++ {
			beads := make([]int, 0, len(multi))
			for k := range multi {
				if found[k][r] != necklace.NotFound {
					beads = append(beads, found[k][r])
				}
			}
			if len(beads) != len(multi) {
				continue
			}

			source := small.alpha
			if r == negToAlpha || r == negToNeg {
				source = small.negAlpha
			}
			cut := sorted(with(withoutColours(nk, source, isMulti), beads...))
			if (r == alphaToAlpha || r == negToAlpha) && res.alpha == nil {
				res.alpha = cut
			}
			if (r == alphaToNeg || r == negToNeg) && res.negAlpha == nil {
				res.negAlpha = cut
			}
		}
		if res.alpha != nil && res.negAlpha != nil {
			return res, nil
		}

		if !advance(odometer, occ) {
			break
		}
	}

	violate(sh, nk.String(), "no component combination yields both cuts (alpha found: %t, negalpha found: %t)",
		res.alpha != nil, res.negAlpha != nil)
	return cutPair{}, nil
}

// advance steps the odometer over the component choices; false once exhausted.
func advance(odometer []int, occ [][]int) bool {
	for k := len(odometer) - 1; k >= 0; k-- {
		odometer[k]++
		if odometer[k] < len(occ[k]) {
			return true
		}
		odometer[k] = 0
	}
	return false
}

func withoutColours(nk *necklace.Necklace, cut []int, drop map[string]bool) []int {
	out := make([]int, 0, len(cut))
	for _, p := range cut {
		if !drop[nk.Bead(p)] {
			out = append(out, p)
		}
	}
	return out
}

// solveLastInterval removes the interval at the end. The extra cut point is the
// rightmost one, so the parity is unchanged: alpha extends alpha.
func (s *Solver) solveLastInterval(nk *necklace.Necklace, alpha necklace.Alpha, depth int) (cutPair, error) {
	const sh = shapeLastInterval
	last := nk.Size() - 1
	col := nk.ComponentColour(last)
	neg := nk.NegAlpha(alpha)

	red, err := s.solveSmaller(nk, nk.BeadIndices(col), alpha, depth)
	if err != nil {
		return cutPair{}, err
	}
	small := red.lifted
	a := mustAugment(sh, nk, small.alpha, last, alpha[col])
	n := mustAugment(sh, nk, small.negAlpha, last, neg[col])

	return cutPair{alpha: sorted(with(small.alpha, a)), negAlpha: sorted(with(small.negAlpha, n))}, nil
}

// solveFirstInterval removes the interval at the start. Every smaller cut point
// flips its side, so alpha is grown from the smaller negalpha cut and vice versa.
func (s *Solver) solveFirstInterval(nk *necklace.Necklace, alpha necklace.Alpha, depth int) (cutPair, error) {
	const sh = shapeFirstInterval
	col := nk.ComponentColour(0)
	neg := nk.NegAlpha(alpha)

	red, err := s.solveSmaller(nk, nk.BeadIndices(col), alpha, depth)
	if err != nil {
		return cutPair{}, err
	}
	small := red.lifted
	a := mustAugment(sh, nk, small.negAlpha, 0, alpha[col])
	n := mustAugment(sh, nk, small.alpha, 0, neg[col])

	return cutPair{alpha: sorted(with(small.negAlpha, a)), negAlpha: sorted(with(small.alpha, n))}, nil
}

// solveEmbracing handles a colour owning exactly the first and the last
// component. A cut in the first component behaves like case first-interval; a
// cut in the last component keeps the sides but moves the colour to the end of
// the permutation, which flips its parity iff n is even. A placement in the
// last component takes precedence.
func (s *Solver) solveEmbracing(nk *necklace.Necklace, alpha necklace.Alpha, depth int) (cutPair, error) {
	const sh = shapeEmbracing
	col := nk.ComponentColour(0)
	last := nk.Size() - 1
	neg := nk.NegAlpha(alpha)

	red, err := s.solveSmaller(nk, nk.BeadIndices(col), alpha, depth)
	if err != nil {
		return cutPair{}, err
	}
	small := red.lifted

	var res cutPair
	if b := augment(sh, nk, small.negAlpha, 0, alpha[col]); b != necklace.NotFound {
		res.alpha = with(small.negAlpha, b)
	}
	if b := augment(sh, nk, small.alpha, 0, neg[col]); b != necklace.NotFound {
		res.negAlpha = with(small.alpha, b)
	}

	sa, sn := small.alpha, small.negAlpha
	if nk.NumColours()%2 == 0 {
		sa, sn = sn, sa
	}
	if b := augment(sh, nk, sa, last, alpha[col]); b != necklace.NotFound {
		res.alpha = with(sa, b)
	}
	if b := augment(sh, nk, sn, last, neg[col]); b != necklace.NotFound {
		res.negAlpha = with(sn, b)
	}

	if res.alpha == nil || res.negAlpha == nil {
		violate(sh, nk.String(), "no end component completes the cuts (alpha found: %t, negalpha found: %t)",
			res.alpha != nil, res.negAlpha != nil)
	}
	return cutPair{alpha: sorted(res.alpha), negAlpha: sorted(res.negAlpha)}, nil
}

// solveIrreducible tries component cuts, either all of them or the candidates
// of the Oracle, and moves every cut point inside its component. A necklace that
// is not n-separable may have no solution here; that is reported, not asserted.
func (s *Solver) solveIrreducible(nk *necklace.Necklace, alpha necklace.Alpha) (cutPair, error) {
	const sh = shapeIrreducible
	neg := nk.NegAlpha(alpha)

	var candidates [][]int
	if nk.NumColours() <= s.bruteForceLimit {
		candidates = compcut.All(nk)
	} else {
		if s.oracle == nil {
			return cutPair{}, fmt.Errorf("FindAlphaCut: %w for %d colours", ErrNoOracle, nk.NumColours())
		}
		for _, target := range []necklace.Alpha{alpha, neg} {
			cc, err := s.oracle.ComponentCuts(nk, target)
			if err != nil {
				return cutPair{}, fmt.Errorf("FindAlphaCut: %w: %w", ErrOracle, err)
			}
			candidates = append(candidates, cc[0], cc[1])
		}
	}

	var res cutPair
	for _, comps := range candidates {
		fullA := make([]int, 0, len(comps))
		fullN := make([]int, 0, len(comps))
		for _, c := range comps {
			partial := make([]int, 0, len(comps)-1)
			for _, other := range comps {
				if other != c {
					partial = append(partial, nk.ComponentStart(other))
				}
			}
			col := nk.ComponentColour(c)
			if b := augment(sh, nk, partial, c, alpha[col]); b != necklace.NotFound {
				fullA = append(fullA, b)
			}
			if b := augment(sh, nk, partial, c, neg[col]); b != necklace.NotFound {
				fullN = append(fullN, b)
			}
		}
		if res.alpha == nil && len(fullA) == len(comps) {
			res.alpha = sorted(fullA)
		}
		if res.negAlpha == nil && len(fullN) == len(comps) {
			res.negAlpha = sorted(fullN)
		}
		if res.alpha != nil && res.negAlpha != nil {
			return res, nil
		}
	}

	return cutPair{}, fmt.Errorf("FindAlphaCut(%s): %d candidates (alpha found: %t, negalpha found: %t): %w",
		nk, len(candidates), res.alpha != nil, res.negAlpha != nil, ErrNoAlphaCut)
}
