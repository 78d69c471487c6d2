// Package interpolate builds one-dimensional interpolants over strictly
// increasing (x, y) knot datasets.
//
// 🚀 What is interpolate?
//
//	Four interpolation methods behind one uniform contract:
//	  • Linear          — degree-1 segments between consecutive knots (≥2 points)
//	  • CubicSpline     — natural (free-boundary) cubic spline, tridiagonal solve (≥3 points)
//	  • AkimaSpline     — weighted-derivative Hermite cubics, three-point boundary
//	                      extrapolation (≥5 points)
//	  • NearestNeighbor — midpoint-rule lookup (any size; 0 points → NaN, 1 → constant)
//
// Every constructor returns a UnivariateFunction: a pure, side-effect-free
// callable that owns private copies of its knots and coefficients. Mutating
// the caller's arrays after construction never changes the interpolant.
//
// Algorithm outline (shared evaluation path):
//
//  1. A method-specific coefficient builder validates the dataset
//     (equal lengths, finiteness, strictly increasing x) and derives one
//     ascending-order coefficient array per segment, trimmed of trailing
//     zero high-degree terms.
//  2. A Spline value copies the knots and coefficients and evaluates a
//     query by binary search: polynomial i is evaluated at x - knots[i].
//     Queries outside [knots[0], knots[n-1]] clamp to the boundary segment
//     (extrapolation uses the boundary polynomial, no special rule).
//
// Raw coefficients are exposed separately (LinearCoefficients,
// CubicSplineCoefficients, AkimaSplineCoefficients, HermiteCoefficients)
// for callers that serialize or plot segment polynomials.
//
// Dispatch:
//
//	Method is a closed enum; New selects a constructor by Method, and
//	NewWithFallback degrades the request when the dataset is too small:
//	AkimaSpline→CubicSpline below 5 points, CubicSpline→Linear below 3,
//	and below 2 points a constant function (the single y, or 0 when empty).
//
// Errors (sentinel, matched via errors.Is):
//
//   - ErrDimensionMismatch — len(xs) != len(ys) (or derivative array mismatch).
//   - ErrTooFewPoints      — below the method minimum (2/3/5/2).
//   - ErrInvalidSequence   — non-finite value or x not strictly increasing
//     (alias of numseq.ErrInvalidSequence).
//   - ErrUnknownMethod     — Method value outside the enum.
//
// Complexity: coefficient construction is O(n) for every method; each
// evaluation is O(log n) (binary search) plus O(degree) Horner steps.
package interpolate
