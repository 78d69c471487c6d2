package interpolate

import (
	"fmt"

	"github.com/katalvlaran/interp/numseq"
)

// HermiteCoefficients derives cubic Hermite segment polynomials matching
// value and first derivative at every knot. For segment i of width
// w = xs[i+1]-xs[i]:
//
//	c0 = ys[i]
//	c1 = derivs[i]
//	c2 = (3·(ys[i+1]-ys[i])/w − 2·derivs[i] − derivs[i+1]) / w
//	c3 = (2·(ys[i]-ys[i+1])/w + derivs[i] + derivs[i+1]) / w²
//
// Preconditions (validated in order):
//  1. len(xs) == len(ys) == len(derivs) (ErrDimensionMismatch).
//  2. len(xs) ≥ MinHermitePoints (ErrTooFewPoints).
//  3. xs finite and strictly increasing, ys and derivs finite
//     (ErrInvalidSequence).
//
// Complexity: O(n) time and space.
func HermiteCoefficients(xs, ys, derivs []float64) ([][]float64, error) {
	if len(xs) != len(derivs) {
		return nil, fmt.Errorf("len(xs)=%d, len(derivs)=%d: %w", len(xs), len(derivs), ErrDimensionMismatch)
	}
	if err := validatePoints(xs, ys, MinHermitePoints); err != nil {
		return nil, err
	}
	if err := numseq.CheckFinite(derivs); err != nil {
		return nil, fmt.Errorf("derivs: %w", err)
	}

	coeffs := make([][]float64, len(xs)-1)
	for i := range coeffs {
		w := xs[i+1] - xs[i]
		w2 := w * w

		yv := ys[i]
		yvP := ys[i+1]
		zv := derivs[i]
		zvP := derivs[i+1]

		coeffs[i] = numseq.TrimPoly([]float64{
			yv,
			zv,
			(3*(yvP-yv)/w - 2*zv - zvP) / w,
			(2*(yv-yvP)/w + zv + zvP) / w2,
		})
	}

	return coeffs, nil
}
