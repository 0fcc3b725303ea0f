// SPDX-License-Identifier: MIT
// Package: necklace
//
// errors.go: sentinel errors for the necklace package.
//
// Error policy:
//   • Only package-level sentinels are exposed; branch with errors.Is.
//   • Context is attached with %w at the call site, never baked into sentinels.
//   • Invalid alpha vectors are caller errors (recoverable); invalid cuts signal a
//     broken precondition of the caller.

package necklace

import (
	"errors"
	"fmt"
)

// ErrInvalidAlpha is the class of all invalid alpha vector errors.
var ErrInvalidAlpha = errors.New("necklace: invalid alpha vector")

// ErrAlphaMissing indicates that the alpha vector has no value for a colour of the necklace.
var ErrAlphaMissing = fmt.Errorf("%w: missing colour", ErrInvalidAlpha)

// ErrAlphaRange indicates an alpha value outside [1, total beads of that colour].
var ErrAlphaRange = fmt.Errorf("%w: value out of range", ErrInvalidAlpha)

// ErrInvalidCut indicates a cut that is not a colourful set of n in-range positions.
var ErrInvalidCut = errors.New("necklace: invalid cut")

// ErrComponentRange indicates a component index outside [0, Size).
var ErrComponentRange = errors.New("necklace: component index out of range")

// ErrCutMismatch indicates that a full cut does not realise the requested alpha vector.
var ErrCutMismatch = errors.New("necklace: cut does not match alpha")

// ErrTooManyColours indicates a brute-force routine was asked for more colours than it supports.
var ErrTooManyColours = errors.New("necklace: too many colours for brute force")

// necklaceErrorf prefixes a formatted message with the method name and wraps err.
func necklaceErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
