package interpolate

import "github.com/katalvlaran/interp/numseq"

// LinearCoefficients derives the degree-1 segment polynomials of the
// piecewise-linear interpolant: segment i is
//
//	ys[i] + slope·(x - xs[i]),   slope = (ys[i+1]-ys[i]) / (xs[i+1]-xs[i])
//
// Preconditions (validated in order):
//  1. len(xs) == len(ys) (ErrDimensionMismatch).
//  2. len(xs) ≥ MinLinearPoints (ErrTooFewPoints).
//  3. xs finite and strictly increasing, ys finite (ErrInvalidSequence).
//
// Complexity: O(n) time and space.
func LinearCoefficients(xs, ys []float64) ([][]float64, error) {
	if err := validatePoints(xs, ys, MinLinearPoints); err != nil {
		return nil, err
	}

	coeffs := make([][]float64, len(xs)-1)
	for i := range coeffs {
		slope := (ys[i+1] - ys[i]) / (xs[i+1] - xs[i])
		coeffs[i] = numseq.TrimPoly([]float64{ys[i], slope})
	}

	return coeffs, nil
}

// NewLinear builds a piecewise-linear interpolant over the given knots.
// See LinearCoefficients for the contract.
func NewLinear(xs, ys []float64) (UnivariateFunction, error) {
	coeffs, err := LinearCoefficients(xs, ys)
	if err != nil {
		return nil, err
	}

	return splineFunc(xs, coeffs)
}
