package interpolate

import "math"

// epsilon is the 64-bit machine epsilon (2⁻⁵²), the threshold below which
// Akima slope-change weights are considered degenerate.
const epsilon = 0x1p-52

// AkimaSplineCoefficients derives the segment polynomials of the Akima
// cubic spline.
//
// Algorithm outline:
//
//  1. Segment slopes: differences[i] = (ys[i+1]-ys[i]) / (xs[i+1]-xs[i]).
//  2. Slope-change weights for interior indices:
//     weights[i] = |differences[i] - differences[i-1]|.
//  3. Interior first derivatives as the weighted average of the two
//     neighboring slopes; when both neighboring weights fall below machine
//     epsilon the formula degenerates to 0/0, so a distance-weighted average
//     of the two slopes is used instead.
//  4. The two leftmost and two rightmost derivatives come from a three-point
//     finite-difference formula (quadratic through three knots, evaluated at
//     the differentiation point) — the weighted average needs two neighbors
//     on each side, which the boundary lacks.
//  5. The derivatives feed the shared Hermite cubic builder.
//
// Preconditions (validated in order):
//  1. len(xs) == len(ys) (ErrDimensionMismatch).
//  2. len(xs) ≥ MinAkimaPoints — the hard algorithmic minimum of 5
//     (ErrTooFewPoints).
//  3. xs finite and strictly increasing, ys finite (ErrInvalidSequence).
//
// Complexity: O(n) time and space.
func AkimaSplineCoefficients(xs, ys []float64) ([][]float64, error) {
	if err := validatePoints(xs, ys, MinAkimaPoints); err != nil {
		return nil, err
	}

	n := len(xs)

	differences := make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		differences[i] = (ys[i+1] - ys[i]) / (xs[i+1] - xs[i])
	}

	weights := make([]float64, n-1)
	for i := 1; i < n-1; i++ {
		weights[i] = math.Abs(differences[i] - differences[i-1])
	}

	derivs := make([]float64, n)
	for i := 2; i < n-2; i++ {
		wP := weights[i+1]
		wM := weights[i-1]
		if math.Abs(wP) < epsilon && math.Abs(wM) < epsilon {
			// Degenerate weights on both sides: fall back to the
			// distance-weighted average of the two slopes.
			xv, xvP, xvM := xs[i], xs[i+1], xs[i-1]
			derivs[i] = ((xvP-xv)*differences[i-1] + (xv-xvM)*differences[i]) / (xvP - xvM)
		} else {
			derivs[i] = (wP*differences[i-1] + wM*differences[i]) / (wP + wM)
		}
	}

	derivs[0] = differentiateThreePoint(xs, ys, 0, 0, 1, 2)
	derivs[1] = differentiateThreePoint(xs, ys, 1, 0, 1, 2)
	derivs[n-2] = differentiateThreePoint(xs, ys, n-2, n-3, n-2, n-1)
	derivs[n-1] = differentiateThreePoint(xs, ys, n-1, n-3, n-2, n-1)

	return HermiteCoefficients(xs, ys, derivs)
}

// NewAkimaSpline builds an Akima cubic spline interpolant over the given
// knots. See AkimaSplineCoefficients for the contract.
func NewAkimaSpline(xs, ys []float64) (UnivariateFunction, error) {
	coeffs, err := AkimaSplineCoefficients(xs, ys)
	if err != nil {
		return nil, err
	}

	return splineFunc(xs, coeffs)
}

// differentiateThreePoint estimates the first derivative at knot t by
// fitting a quadratic through the knots i0 < i1 < i2 and differentiating it
// at xs[t]. The arithmetic ordering is contractual: reference outputs are
// compared bit-for-bit.
func differentiateThreePoint(xs, ys []float64, t, i0, i1, i2 int) float64 {
	y0 := ys[i0]
	t1 := xs[i1] - xs[i0]
	t2 := xs[i2] - xs[i0]

	a := (ys[i2] - y0 - t2/t1*(ys[i1]-y0)) / (t2*t2 - t1*t2)
	b := (ys[i1] - y0 - a*t1*t1) / t1

	return 2*a*(xs[t]-xs[i0]) + b
}
