// Package loess: sentinel error set. Tests MUST match these via errors.Is;
// context (iteration number, lengths) is attached with %w wrapping.
package loess

import (
	"errors"

	"github.com/katalvlaran/interp/numseq"
)

var (
	// ErrDimensionMismatch indicates that x, y, or the optional caller
	// weights differ in length.
	ErrDimensionMismatch = errors.New("loess: dimension mismatch")

	// ErrInsufficientPoints indicates that fewer than 2 points carried
	// non-zero combined weight in a regression pass. The wrapped message
	// names the iteration in which the pass ran — robustness weighting can
	// zero out points mid-loop.
	ErrInsufficientPoints = errors.New("loess: fewer than 2 points with non-zero weight")
)

// ErrInvalidSequence aliases numseq.ErrInvalidSequence so callers can match
// ordering/finiteness violations without importing numseq.
var ErrInvalidSequence = numseq.ErrInvalidSequence
