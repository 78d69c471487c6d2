// Package interpolate: sentinel error set.
// All constructors MUST return these sentinels and tests MUST check them via
// errors.Is. Context (lengths, minimums, method) is attached with %w wrapping
// at the failure site.
package interpolate

import (
	"errors"

	"github.com/katalvlaran/interp/numseq"
)

var (
	// ErrDimensionMismatch indicates that parallel input arrays differ in
	// length (x vs y, or x/y vs first derivatives for the Hermite builder).
	ErrDimensionMismatch = errors.New("interpolate: dimension mismatch")

	// ErrTooFewPoints indicates a dataset below the algorithm-specific
	// minimum: 2 for linear and the Hermite builder, 3 for the cubic
	// spline, 5 for the Akima spline.
	ErrTooFewPoints = errors.New("interpolate: too few points")

	// ErrUnknownMethod indicates a Method value outside the closed enum,
	// or an unrecognized method name passed to ParseMethod.
	ErrUnknownMethod = errors.New("interpolate: unknown interpolation method")
)

// ErrInvalidSequence aliases numseq.ErrInvalidSequence so callers can match
// ordering/finiteness violations without importing numseq.
var ErrInvalidSequence = numseq.ErrInvalidSequence
