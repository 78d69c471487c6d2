package interp

import (
	"github.com/katalvlaran/interp/interpolate"
	"github.com/katalvlaran/interp/loess"
)

// MethodNameLoess is the string name of the LOESS method accepted by the
// root dispatchers. The four pure interpolation names live in the
// interpolate package (interpolate.MethodNameLinear and friends); LOESS is
// dispatched here because it composes smoothing with those methods.
const MethodNameLoess = "loess"

// New builds an interpolant by method name: one of "linear", "cubic",
// "akima", "nearestNeighbor" or "loess". Unrecognized names fail with
// interpolate.ErrUnknownMethod.
//
// "loess" runs the full smoothing pipeline with default options; use
// loess.NewInterpolator directly for tuning.
func New(method string, xs, ys []float64) (interpolate.UnivariateFunction, error) {
	if method == MethodNameLoess {
		return loess.NewInterpolator(xs, ys)
	}

	m, err := interpolate.ParseMethod(method)
	if err != nil {
		return nil, err
	}

	return interpolate.New(m, xs, ys)
}

// NewWithFallback is New with small-dataset degradation: the requested
// method is downgraded when the dataset cannot satisfy its minimum point
// count (see interpolate.NewWithFallback). "loess" needs no degradation —
// its pipeline already passes tiny datasets through unchanged and falls
// back after knot thinning.
func NewWithFallback(method string, xs, ys []float64) (interpolate.UnivariateFunction, error) {
	if method == MethodNameLoess {
		return loess.NewInterpolator(xs, ys)
	}

	m, err := interpolate.ParseMethod(method)
	if err != nil {
		return nil, err
	}

	return interpolate.NewWithFallback(m, xs, ys)
}
