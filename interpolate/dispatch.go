package interpolate

import "fmt"

// New dispatches to the constructor selected by m. The enum is closed:
// values outside the declared Method constants fail with ErrUnknownMethod.
func New(m Method, xs, ys []float64) (UnivariateFunction, error) {
	switch m {
	case Linear:
		return NewLinear(xs, ys)
	case CubicSpline:
		return NewCubicSpline(xs, ys)
	case AkimaSpline:
		return NewAkimaSpline(xs, ys)
	case NearestNeighbor:
		return NewNearestNeighbor(xs, ys)
	default:
		return nil, fmt.Errorf("%v: %w", m, ErrUnknownMethod)
	}
}

// Fallback degrades the requested method until n points satisfy its
// minimum: AkimaSpline→CubicSpline below 5 points, CubicSpline→Linear below
// 3. Linear and NearestNeighbor never degrade (datasets below 2 points are
// handled by NewWithFallback directly). Pure function, no side effects.
func Fallback(m Method, n int) Method {
	if m == AkimaSpline && n < MinAkimaPoints {
		m = CubicSpline
	}
	if m == CubicSpline && n < MinCubicPoints {
		m = Linear
	}

	return m
}

// NewWithFallback builds the interpolant for m, degrading the method when
// the dataset is too small to satisfy its minimum point count (see
// Fallback). Below 2 points no method applies, and the result is a constant
// function: the single y-value, or 0 for an empty dataset.
//
// This variant exists so callers with unpredictable knot counts (notably
// LOESS after knot thinning) never special-case small inputs. It never
// fails with ErrTooFewPoints.
func NewWithFallback(m Method, xs, ys []float64) (UnivariateFunction, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("len(xs)=%d, len(ys)=%d: %w", len(xs), len(ys), ErrDimensionMismatch)
	}

	switch len(xs) {
	case 0:
		return Constant(0), nil
	case 1:
		return Constant(ys[0]), nil
	}

	return New(Fallback(m, len(xs)), xs, ys)
}
