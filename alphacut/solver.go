// SPDX-License-Identifier: MIT
//
// File: solver.go
// Role: Solver configuration, public entry points and the case dispatch.
// Policy:
//   - Alpha vectors are validated once, before the recursion.
//   - Every recursive call works on a freshly built necklace; nothing is shared.
//   - Returned cuts are sorted ascending.

package alphacut

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/linstald/master-thesis-scripts/necklace"
	"github.com/linstald/master-thesis-scripts/oracle"
)

// DefaultBruteForceLimit is the largest colour count solved by enumerating all
// component cuts; larger irreducible instances are handed to the Oracle.
const DefaultBruteForceLimit = 5

// Oracle returns two component cuts (one component index per colour, sorted) of
// an irreducible necklace, each extendable to a cut for alpha by augmentation.
type Oracle interface {
	ComponentCuts(nk *necklace.Necklace, alpha necklace.Alpha) ([2][]int, error)
}

// Solver finds alpha cuts. The zero value is not usable; call New.
type Solver struct {
	log             *zap.Logger
	oracle          Oracle
	oracleSet       bool
	bruteForceLimit int
}

// Option configures a Solver.
type Option func(*Solver)

// WithLogger sets the logger; the dispatched case of every recursion step is
// logged at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(s *Solver) {
		if l != nil {
			s.log = l
		}
	}
}

// WithOracle replaces the default pseudo-boolean oracle. A nil oracle disables
// the oracle path (ErrNoOracle above the brute-force limit).
func WithOracle(o Oracle) Option {
	return func(s *Solver) {
		s.oracle = o
		s.oracleSet = true
	}
}

// WithBruteForceLimit sets the largest n solved by enumeration in the irreducible case.
func WithBruteForceLimit(n int) Option {
	return func(s *Solver) { s.bruteForceLimit = n }
}

// New returns a Solver with a no-op logger and DefaultBruteForceLimit, then
// applies opts in order. Unless WithOracle was given, the gophersat-backed
// oracle is used, logging to the Solver's logger.
func New(opts ...Option) *Solver {
	s := &Solver{
		log:             zap.NewNop(),
		bruteForceLimit: DefaultBruteForceLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	if !s.oracleSet {
		s.oracle = oracle.New(oracle.WithLogger(s.log))
	}
	return s
}

// FindAlphaCut solves nk for alpha with a default Solver.
func FindAlphaCut(nk *necklace.Necklace, alpha necklace.Alpha) ([]int, []int, error) {
	return New().FindAlphaCut(nk, alpha)
}

// FindAlphaCut returns the alpha cut and the negalpha cut of nk.
//
// Errors:
//   - necklace.ErrInvalidAlpha (ErrAlphaMissing / ErrAlphaRange): invalid alpha.
//   - ErrOracle, ErrNoOracle: the irreducible case could not obtain component cuts.
//   - ErrNoAlphaCut: nk is not n-separable and no cut could be assembled.
//     Either no irreducible candidate extends, or a reduction broke one of
//     its proof obligations; the latter is reported as *InvariantError,
//     which wraps ErrNoAlphaCut.
//
// Alpha cuts always exist for n-separable necklaces (see necklace.IsSeparable).
func (s *Solver) FindAlphaCut(nk *necklace.Necklace, alpha necklace.Alpha) (alphaCut, negAlphaCut []int, err error) {
	defer func() {
		if r := recover(); r != nil {
			ie, ok := r.(*InvariantError)
			if !ok {
				panic(r)
			}
			alphaCut, negAlphaCut, err = nil, nil, fmt.Errorf("FindAlphaCut: %w", ie)
		}
	}()

	if err := nk.ValidateAlpha(alpha); err != nil {
		return nil, nil, fmt.Errorf("FindAlphaCut: %w", err)
	}
	res, err := s.solve(nk, nk.Restrict(alpha), 0)
	if err != nil {
		return nil, nil, err
	}
	return res.alpha, res.negAlpha, nil
}

// cutPair holds an alpha cut and a negalpha cut, both sorted.
type cutPair struct {
	alpha    []int
	negAlpha []int
}

func sorted(cut []int) []int {
	out := append([]int(nil), cut...)
	sort.Ints(out)
	return out
}

// solve dispatches on the shape of nk. alpha may carry extra colours.
func (s *Solver) solve(nk *necklace.Necklace, alpha necklace.Alpha, depth int) (cutPair, error) {
	sh := classify(nk)
	if ce := s.log.Check(zap.DebugLevel, "alpha cut step"); ce != nil {
		ce.Write(
			zap.Stringer("case", sh),
			zap.Int("depth", depth),
			zap.Int("n", nk.NumColours()),
			zap.Int("size", nk.Size()),
			zap.Int("beads", nk.Len()),
		)
	}

	switch sh {
	case shapeEmpty:
		return cutPair{alpha: []int{}, negAlpha: []int{}}, nil
	case shapeNeighbouringIntervals:
		return s.solveNeighbouringIntervals(nk, alpha, depth)
	case shapeMultiComponent:
		return s.solveMultiComponent(nk, alpha, depth)
	case shapeLastInterval:
		return s.solveLastInterval(nk, alpha, depth)
	case shapeFirstInterval:
		return s.solveFirstInterval(nk, alpha, depth)
	case shapeEmbracing:
		return s.solveEmbracing(nk, alpha, depth)
	default:
		return s.solveIrreducible(nk, alpha)
	}
}
