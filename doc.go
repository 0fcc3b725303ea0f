// Package necklaces is the root of a toolkit for splitting necklaces with
// alpha cuts: one cut bead per colour, such that the positive side holds a
// prescribed number of beads of every colour.
//
// Packages:
//
//	core/       undirected multigraph on colour IDs, the base of the walk graph
//	            and the colour graph
//	necklace/   the Necklace entity, cut algebra, shape predicates, separability
//	compcut/    component-cut enumeration and the colour graph
//	oracle/     component cuts of large irreducible necklaces, as a
//	            pseudo-boolean program solved by gophersat
//	alphacut/   the recursive alpha-cut solver
//	generator/  random irreducible necklaces, pumping, exhaustive enumeration
//	batch/      concurrent separability scans, splitting and combining files
//	logger/     zap logger configured through viper
//	cmd/necklace  command line front end
//
// Quick start:
//
//	nk := necklace.Parse("aabbcc")
//	cut, negCut, err := alphacut.FindAlphaCut(nk, necklace.UnitAlpha(nk))
//
// Alpha cuts are guaranteed for n-separable necklaces only; see
// necklace.IsSeparable.
package necklaces
