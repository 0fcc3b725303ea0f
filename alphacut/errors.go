package alphacut

import (
	"errors"
	"fmt"
)

// ErrOracle wraps every failure reported by the Oracle.
var ErrOracle = errors.New("alphacut: oracle failed")

// ErrNoAlphaCut indicates an irreducible instance none of whose component cuts
// extends to an alpha cut. Alpha cuts are only guaranteed for n-separable necklaces.
var ErrNoAlphaCut = errors.New("alphacut: no component cut extends to an alpha cut")

// ErrNoOracle indicates an irreducible instance above the brute-force limit with no Oracle set.
var ErrNoOracle = errors.New("alphacut: no oracle configured")

// InvariantError describes a violated proof obligation of the recursion. The
// obligations hold for every n-separable necklace, so for valid input it marks
// a defect. It is raised with panic inside the recursion and returned by
// FindAlphaCut.
type InvariantError struct {
	Case     string // shape being solved
	Necklace string // instance the violation occurred on
	Msg      string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("alphacut: invariant violated in %s on %s: %s", e.Case, e.Necklace, e.Msg)
}

// Unwrap reports the violation as a missing alpha cut.
func (e *InvariantError) Unwrap() error { return ErrNoAlphaCut }

func violate(sh shape, necklace string, format string, args ...interface{}) {
	panic(&InvariantError{Case: sh.String(), Necklace: necklace, Msg: fmt.Sprintf(format, args...)})
}
