// Package alphacut computes alpha cuts and negalpha cuts of necklaces.
//
// Given a necklace with n colours and an alpha vector (1 <= alpha[c] <= total(c)),
// FindAlphaCut returns two sorted lists of n bead positions, one per colour:
//
//	alphaCut:    PositiveCount(alphaCut, c)    == alpha[c]
//	negAlphaCut: PositiveCount(negAlphaCut, c) == total(c) - alpha[c] + 1
//
// where the positive side of each cut is fixed by the parity of its own cut
// permutation (see package necklace).
//
// The solver recurses on structurally smaller necklaces. The necklace shape is
// classified in a fixed priority order and the first match wins:
//
//	neighbouring intervals    two adjacent single-component colours are removed,
//	                          the smaller solution is re-based and both colours
//	                          augmented back, one after the other;
//	multi-component colours   every colour with more than two components keeps one
//	                          chosen component; all choices are enumerated and a
//	                          choice is accepted when one of the four parity
//	                          reconciliations holds for every such colour;
//	last interval             the last component is an interval (no parity flip);
//	first interval            the first component is an interval (parity flips,
//	                          targets swap);
//	embracing                 first and last component share a colour: both ends
//	                          are tried, the parity flip of the last-end placement
//	                          depends on n being even;
//	irreducible               component cuts are enumerated (n <= brute-force limit)
//	                          or obtained from the Oracle, then every colour is
//	                          augmented inside its component.
//
// Every augmentation the case analysis proves to exist is asserted. The proofs
// assume an n-separable necklace; a failed assertion aborts the recursion and
// FindAlphaCut returns an *InvariantError (matching ErrNoAlphaCut) instead of a
// corrupted cut. Invalid alpha vectors are reported as errors before any recursion.
//
// The recursion depth is bounded by the number of colours plus the number of
// components removed by case 2. Brute force is exponential in n; large irreducible
// instances go through the Oracle.
package alphacut
