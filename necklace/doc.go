// Package necklace implements the necklace entity and the cut algebra used by the
// alpha-cut solver.
//
// A necklace is a sequence of coloured beads. Construction never fails and derives,
// once, every structure the solver needs:
//
//	beads           the bead sequence (length N)
//	reduced string  one token per maximal run of equal colours (length Size)
//	type index      colour → rank of its first occurrence (0..n-1)
//	bead indices    colour → positions in beads
//	occurrences     colour → positions in the reduced string (its components)
//	component beads component index → positions in beads
//	walk graph      core multigraph, one edge per adjacency in the reduced string
//
// Encodings:
//
//	Parse("aab-bc")               compact form: one ASCII letter per bead, other runes dropped
//	ParseTokens("x1, x1, y, x2")  general form: comma separated tokens
//	New([]string{...})            general tokens, used by the solver when recursing
//	FromInts([]int{...})          integer colours
//
// Cut algebra:
//
// A cut is a set of bead positions. Crossing a cut position flips the side, and
// the cut bead itself is counted on the side reached after the flip, which means
// a cut bead always counts for its own colour. The cut permutation lists the
// type indices of the cut colours from left to right; an even permutation puts
// the first segment on the positive side (PositiveCount), an odd one on the
// negative side.
//
//	Count(cut, c, start)         O(N + |cut| log |cut|)
//	CutPermutation / CutParity   O(n log n + n²) (inversion count)
//	Augment(partial, comp, t)    O(|comp| · N)
//
// Separability (the maximum cut of the walk graph) is computed by brute force over
// colour subsets and is exponential in n; callers keep n small.
package necklace
