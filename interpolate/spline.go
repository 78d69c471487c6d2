package interpolate

import (
	"fmt"
	"math"

	"github.com/katalvlaran/interp/numseq"
)

// Spline is a piecewise polynomial over strictly increasing knots:
// segment i covers [knots[i], knots[i+1]] and is evaluated at the
// segment-local coordinate x - knots[i] with ascending-order coefficients.
//
// A Spline owns private copies of its knots and coefficient arrays; it is
// immutable after construction and safe for concurrent evaluation. Mutating
// the arrays passed to NewSpline afterwards does not affect the Spline.
type Spline struct {
	knots  []float64   // strictly increasing, len ≥ 2
	coeffs [][]float64 // len(knots)-1 segment polynomials, ascending order
}

// NewSpline assembles a piecewise polynomial from knots and per-segment
// coefficient arrays.
//
// Preconditions (validated in order):
//  1. len(knots) ≥ 2 (ErrTooFewPoints).
//  2. len(coeffs) == len(knots)-1 (ErrDimensionMismatch).
//  3. knots finite and strictly increasing (ErrInvalidSequence).
//
// Both arguments are deep-copied.
func NewSpline(knots []float64, coeffs [][]float64) (*Spline, error) {
	if len(knots) < 2 {
		return nil, fmt.Errorf("need at least 2 knots, got %d: %w", len(knots), ErrTooFewPoints)
	}
	if len(coeffs) != len(knots)-1 {
		return nil, fmt.Errorf("%d knots require %d segments, got %d: %w",
			len(knots), len(knots)-1, len(coeffs), ErrDimensionMismatch)
	}
	if err := numseq.CheckStrictlyIncreasing(knots); err != nil {
		return nil, fmt.Errorf("knots: %w", err)
	}

	s := &Spline{
		knots:  make([]float64, len(knots)),
		coeffs: make([][]float64, len(coeffs)),
	}
	copy(s.knots, knots)
	for i, c := range coeffs {
		s.coeffs[i] = make([]float64, len(c))
		copy(s.coeffs[i], c)
	}

	return s, nil
}

// Eval computes the spline value at x.
//
// The covering segment is located by binary search. Queries outside
// [knots[0], knots[last]] clamp to the nearest boundary segment, so
// extrapolation simply extends the boundary polynomial. A NaN query
// yields NaN.
func (s *Spline) Eval(x float64) float64 {
	if math.IsNaN(x) {
		return math.NaN()
	}

	// Knots are validated finite at construction and x is not NaN here,
	// so Search cannot fail.
	i, _ := numseq.Search(s.knots, x)
	if i < 0 {
		i = -i - 2 // insertionPoint-1: the segment whose left knot precedes x
	}
	if i < 0 {
		i = 0
	}
	if i >= len(s.coeffs) {
		i = len(s.coeffs) - 1
	}

	return numseq.EvaluatePoly(s.coeffs[i], x-s.knots[i])
}

// validatePoints enforces the shared (xs, ys) contract of every coefficient
// builder: equal lengths, the method minimum, strictly increasing finite xs
// and finite ys.
func validatePoints(xs, ys []float64, min int) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("len(xs)=%d, len(ys)=%d: %w", len(xs), len(ys), ErrDimensionMismatch)
	}
	if len(xs) < min {
		return fmt.Errorf("need at least %d points, got %d: %w", min, len(xs), ErrTooFewPoints)
	}
	if err := numseq.CheckStrictlyIncreasing(xs); err != nil {
		return fmt.Errorf("xs: %w", err)
	}
	if err := numseq.CheckFinite(ys); err != nil {
		return fmt.Errorf("ys: %w", err)
	}

	return nil
}

// splineFunc wraps knots and segment coefficients into an evaluating
// UnivariateFunction backed by an owned Spline.
func splineFunc(knots []float64, coeffs [][]float64) (UnivariateFunction, error) {
	s, err := NewSpline(knots, coeffs)
	if err != nil {
		return nil, err
	}

	return s.Eval, nil
}

// Func returns the spline's evaluation method as a UnivariateFunction.
func (s *Spline) Func() UnivariateFunction {
	return s.Eval
}

// Knots returns a copy of the knot positions.
func (s *Spline) Knots() []float64 {
	out := make([]float64, len(s.knots))
	copy(out, s.knots)

	return out
}

// Coefficients returns a deep copy of the per-segment coefficient arrays.
func (s *Spline) Coefficients() [][]float64 {
	out := make([][]float64, len(s.coeffs))
	for i, c := range s.coeffs {
		out[i] = make([]float64, len(c))
		copy(out[i], c)
	}

	return out
}
