package interpolate

import "github.com/katalvlaran/interp/numseq"

// CubicSplineCoefficients derives the segment polynomials of the natural
// (free-boundary) cubic spline: a C² piecewise cubic whose second derivative
// vanishes at both endpoints.
//
// Algorithm outline (classical free cubic spline, Burden & Faires):
//
//  1. h[i] = xs[i+1]-xs[i] are the segment widths.
//  2. Forward elimination of the tridiagonal second-derivative system over
//     the interior knots produces mu (scaled super-diagonal) and z (scaled
//     right-hand side); the natural boundary fixes z[0] = z[n] = 0.
//  3. Back substitution recovers c (half second derivatives), then
//     b (segment slopes) and d (cubic terms) in closed form.
//
// Segment i evaluates as ys[i] + b[i]·t + c[i]·t² + d[i]·t³ at t = x-xs[i].
//
// The arithmetic ordering of the sweep is part of the contract: reordering
// mathematically equivalent expressions changes low-order bits of the
// result, and downstream consumers compare against reference outputs.
//
// Preconditions (validated in order):
//  1. len(xs) == len(ys) (ErrDimensionMismatch).
//  2. len(xs) ≥ MinCubicPoints (ErrTooFewPoints).
//  3. xs finite and strictly increasing, ys finite (ErrInvalidSequence).
//
// Complexity: O(n) time and space (Thomas algorithm).
func CubicSplineCoefficients(xs, ys []float64) ([][]float64, error) {
	if err := validatePoints(xs, ys, MinCubicPoints); err != nil {
		return nil, err
	}

	n := len(xs) - 1 // number of segments

	h := make([]float64, n)
	for i := 0; i < n; i++ {
		h[i] = xs[i+1] - xs[i]
	}

	// Forward sweep. mu[0] and z[0] stay zero: natural boundary.
	mu := make([]float64, n)
	z := make([]float64, n+1)
	for i := 1; i < n; i++ {
		g := 2*(xs[i+1]-xs[i-1]) - h[i-1]*mu[i-1]
		mu[i] = h[i] / g
		z[i] = (3*(ys[i+1]*h[i-1]-ys[i]*(xs[i+1]-xs[i-1])+ys[i-1]*h[i])/(h[i-1]*h[i]) - h[i-1]*z[i-1]) / g
	}

	// Back substitution. c[n] = 0: natural boundary at the right end.
	b := make([]float64, n)
	c := make([]float64, n+1)
	d := make([]float64, n)
	for j := n - 1; j >= 0; j-- {
		c[j] = z[j] - mu[j]*c[j+1]
		b[j] = (ys[j+1]-ys[j])/h[j] - h[j]*(c[j+1]+2*c[j])/3
		d[j] = (c[j+1] - c[j]) / (3 * h[j])
	}

	coeffs := make([][]float64, n)
	for i := 0; i < n; i++ {
		coeffs[i] = numseq.TrimPoly([]float64{ys[i], b[i], c[i], d[i]})
	}

	return coeffs, nil
}

// NewCubicSpline builds a natural cubic spline interpolant over the given
// knots. See CubicSplineCoefficients for the contract.
func NewCubicSpline(xs, ys []float64) (UnivariateFunction, error) {
	coeffs, err := CubicSplineCoefficients(xs, ys)
	if err != nil {
		return nil, err
	}

	return splineFunc(xs, coeffs)
}
