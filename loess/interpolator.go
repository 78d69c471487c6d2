package loess

import (
	"math"

	"github.com/katalvlaran/interp/interpolate"
)

// minXDistanceDivisor derives the automatic thinning spacing: x-range/100.
const minXDistanceDivisor = 100

// NewInterpolator smooths the dataset, thins the fitted points into a
// strictly increasing NaN-free knot subset, and builds an interpolant over
// those knots with the configured method (Akima by default, degraded by
// interpolate.NewWithFallback when too few knots survive thinning).
//
// Thinning keeps a fitted point as a knot only when its x exceeds the
// previous kept knot's x by at least MinXDistance and its fitted y is not
// NaN. The default MinXDistance is the x-range divided by 100, or 1 when
// the range is zero.
//
// The input contract and error surface are those of Smooth.
func NewInterpolator(xs, ys []float64, opts ...Option) (interpolate.UnivariateFunction, error) {
	cfg := gatherOptions(opts)

	fit, err := smooth(xs, ys, &cfg)
	if err != nil {
		return nil, err
	}

	minDX := cfg.MinXDistance
	if math.IsNaN(minDX) {
		minDX = autoMinXDistance(xs)
	}

	knotX, knotY, mask := thinKnots(xs, fit, minDX)
	if cfg.Diagnostics != nil {
		cfg.Diagnostics.KnotMask = mask
	}

	return interpolate.NewWithFallback(cfg.Method, knotX, knotY)
}

// autoMinXDistance picks the default thinning spacing for the dataset.
func autoMinXDistance(xs []float64) float64 {
	if len(xs) == 0 {
		return 1
	}
	if r := xs[len(xs)-1] - xs[0]; r > 0 {
		return r / minXDistanceDivisor
	}

	return 1
}

// thinKnots filters (xs, fit) down to a strictly increasing, NaN-free knot
// subset: a point is kept iff its fitted y is not NaN and its x is at least
// minDX beyond the previously kept x. Returns the kept knots and the
// per-point keep mask.
func thinKnots(xs, fit []float64, minDX float64) (knotX, knotY []float64, mask []bool) {
	mask = make([]bool, len(xs))

	prev := math.Inf(-1)
	for i := range xs {
		// Strict increase is required even when minDX is zero: duplicate
		// x values can never both become knots.
		if math.IsNaN(fit[i]) || xs[i] <= prev || xs[i]-prev < minDX {
			continue
		}

		mask[i] = true
		knotX = append(knotX, xs[i])
		knotY = append(knotY, fit[i])
		prev = xs[i]
	}

	return knotX, knotY, mask
}
