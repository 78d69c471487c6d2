// Package interpolate: Method enum, method names and point-count minimums.
package interpolate

import "fmt"

// UnivariateFunction is a real-valued function of one real variable:
// the common shape of every interpolant produced by this package.
//
// Implementations returned by this package are pure and side-effect-free:
// safe to call any number of times and from any number of goroutines,
// because the underlying knots and coefficients are immutable after
// construction.
type UnivariateFunction func(x float64) float64

// Constant returns a UnivariateFunction that yields v for every query.
func Constant(v float64) UnivariateFunction {
	return func(float64) float64 { return v }
}

// Method identifies an interpolation method. The enum is closed: New and
// NewWithFallback reject values outside the declared constants with
// ErrUnknownMethod.
type Method int

const (
	// Linear builds degree-1 segments between consecutive knots. Minimum 2 points.
	Linear Method = iota

	// CubicSpline builds a natural (free-boundary) cubic spline:
	// second derivative zero at both ends. Minimum 3 points.
	CubicSpline

	// AkimaSpline builds Hermite cubics from Akima's weighted derivative
	// estimates, with three-point boundary extrapolation. Minimum 5 points.
	AkimaSpline

	// NearestNeighbor returns the y-value of the closest knot under the
	// midpoint rule (ties resolve to the right knot). Any dataset size.
	NearestNeighbor
)

// Canonical method names accepted by ParseMethod and produced by String.
const (
	MethodNameLinear          = "linear"
	MethodNameCubic           = "cubic"
	MethodNameAkima           = "akima"
	MethodNameNearestNeighbor = "nearestNeighbor"
)

// Method point-count minimums. NearestNeighbor accepts any size and has no
// minimum constant.
const (
	// MinLinearPoints is the smallest dataset a linear interpolant accepts:
	// one segment needs two knots.
	MinLinearPoints = 2

	// MinCubicPoints is the smallest dataset for the natural cubic spline:
	// the tridiagonal system needs at least one interior knot.
	MinCubicPoints = 3

	// MinAkimaPoints is Akima's hard algorithmic minimum: the weighted
	// derivative formula consumes two slope differences on each side.
	MinAkimaPoints = 5

	// MinHermitePoints is the smallest dataset for the Hermite coefficient
	// builder: one segment needs two knots and two derivatives.
	MinHermitePoints = 2
)

// String returns the canonical method name, or a diagnostic placeholder for
// values outside the enum.
func (m Method) String() string {
	switch m {
	case Linear:
		return MethodNameLinear
	case CubicSpline:
		return MethodNameCubic
	case AkimaSpline:
		return MethodNameAkima
	case NearestNeighbor:
		return MethodNameNearestNeighbor
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod maps a canonical method name back to its Method value.
// Unrecognized names fail with ErrUnknownMethod.
func ParseMethod(name string) (Method, error) {
	switch name {
	case MethodNameLinear:
		return Linear, nil
	case MethodNameCubic:
		return CubicSpline, nil
	case MethodNameAkima:
		return AkimaSpline, nil
	case MethodNameNearestNeighbor:
		return NearestNeighbor, nil
	default:
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownMethod)
	}
}
