// Package loess: configuration (functional options with documented
// defaults) and the write-only Diagnostics record.
package loess

import (
	"math"

	"github.com/katalvlaran/interp/interpolate"
)

// Defaults (single source of truth).
const (
	// DefaultBandwidthFraction is the fraction of non-zero-weight points
	// used by each local fit.
	DefaultBandwidthFraction = 0.3

	// DefaultRobustnessIters is the number of re-fit passes beyond the
	// initial fit.
	DefaultRobustnessIters = 2

	// DefaultAccuracy is the convergence threshold: once the median
	// residual falls below it, further robustness passes are skipped. It
	// also guards the local slope denominator (squared).
	DefaultAccuracy = 1e-12

	// DefaultOutlierDistanceFactor scales the median residual into the
	// bisquare cutoff distance: residuals beyond factor×median get zero
	// robustness weight.
	DefaultOutlierDistanceFactor = 6.0

	// MinWindowPoints is the smallest sliding-window size; a linear fit
	// needs two points.
	MinWindowPoints = 2

	// minEffectiveWeight is the total-window-weight floor below which a
	// local fit carries no usable information and yields NaN.
	minEffectiveWeight = 1e-12
)

// Diagnostics is an optional write-only output record filled by Smooth and
// NewInterpolator when supplied via WithDiagnostics. It is informational
// only and never consumed by the algorithm.
type Diagnostics struct {
	// Iterations is the number of fit passes actually performed
	// (1 + completed robustness passes).
	Iterations int

	// MedianResidual is the median |fit − y| computed by the last
	// robustness check (0 when no robustness pass ran).
	MedianResidual float64

	// RobustnessWeights holds the bisquare weights of the last pass.
	RobustnessWeights []float64

	// Fit holds the fitted y-values.
	Fit []float64

	// KnotMask marks the points kept as knots by NewInterpolator's
	// thinning step (nil when only Smooth ran).
	KnotMask []bool
}

// Options configures Smooth and NewInterpolator.
//
// Weights               – optional caller weights, one per point (nil → uniform 1).
// BandwidthFraction     – fraction of non-zero-weight points per local fit, in (0, 1].
// RobustnessIters       – number of re-fit passes beyond the initial fit, ≥ 0.
// Accuracy              – early-stop threshold on the median residual, > 0.
// OutlierDistanceFactor – bisquare cutoff = factor × median residual, > 0.
// Diagnostics           – optional write-only output record.
// Method                – interpolation method for NewInterpolator's final step.
// MinXDistance          – knot-thinning spacing; NaN (default) means auto
//                         (x-range/100, or 1 when the range is zero).
type Options struct {
	Weights               []float64
	BandwidthFraction     float64
	RobustnessIters       int
	Accuracy              float64
	OutlierDistanceFactor float64
	Diagnostics           *Diagnostics
	Method                interpolate.Method
	MinXDistance          float64
}

// Option represents a functional option for configuring loess calls.
type Option func(*Options)

// DefaultOptions returns an Options struct with the documented defaults:
// uniform weights, BandwidthFraction 0.3, RobustnessIters 2, Accuracy 1e-12,
// OutlierDistanceFactor 6, Akima interpolation, automatic MinXDistance.
func DefaultOptions() Options {
	return Options{
		Weights:               nil,
		BandwidthFraction:     DefaultBandwidthFraction,
		RobustnessIters:       DefaultRobustnessIters,
		Accuracy:              DefaultAccuracy,
		OutlierDistanceFactor: DefaultOutlierDistanceFactor,
		Diagnostics:           nil,
		Method:                interpolate.AkimaSpline,
		MinXDistance:          math.NaN(), // auto: x-range/100, or 1 for zero range
	}
}

// WithWeights supplies per-point caller weights, combined multiplicatively
// with the robustness weights. Length is validated against the dataset at
// call time.
func WithWeights(w []float64) Option {
	return func(o *Options) { o.Weights = w }
}

// WithBandwidthFraction sets the fraction of non-zero-weight points used by
// each local fit. Must lie in (0, 1]; anything else is a programmer error
// and panics.
func WithBandwidthFraction(f float64) Option {
	return func(o *Options) {
		if !(f > 0 && f <= 1) {
			panic("loess: BandwidthFraction must be in (0, 1]")
		}
		o.BandwidthFraction = f
	}
}

// WithRobustnessIters sets the number of re-fit passes beyond the initial
// fit. Must be ≥ 0; negative values panic.
func WithRobustnessIters(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic("loess: RobustnessIters must be non-negative")
		}
		o.RobustnessIters = n
	}
}

// WithAccuracy sets the early-stop threshold on the median residual (also
// the squared guard on the local slope denominator). Must be > 0.
func WithAccuracy(acc float64) Option {
	return func(o *Options) {
		if !(acc > 0) {
			panic("loess: Accuracy must be positive")
		}
		o.Accuracy = acc
	}
}

// WithOutlierDistanceFactor sets the bisquare cutoff multiplier on the
// median residual. Must be > 0.
func WithOutlierDistanceFactor(f float64) Option {
	return func(o *Options) {
		if !(f > 0) {
			panic("loess: OutlierDistanceFactor must be positive")
		}
		o.OutlierDistanceFactor = f
	}
}

// WithDiagnostics registers a write-only record that Smooth and
// NewInterpolator fill in. Passing nil disables diagnostics (the default).
func WithDiagnostics(d *Diagnostics) Option {
	return func(o *Options) { o.Diagnostics = d }
}

// WithInterpolationMethod selects the method NewInterpolator hands the
// thinned knots to (subject to small-dataset fallback). Default AkimaSpline.
func WithInterpolationMethod(m interpolate.Method) Option {
	return func(o *Options) { o.Method = m }
}

// WithMinXDistance sets the knot-thinning spacing: a fitted point becomes a
// knot only when its x exceeds the previous kept knot's x by at least this
// much. Must be ≥ 0 and finite; NaN or negative values panic. Zero keeps
// every strictly-increasing non-NaN point.
func WithMinXDistance(d float64) Option {
	return func(o *Options) {
		if math.IsNaN(d) || d < 0 {
			panic("loess: MinXDistance must be non-negative")
		}
		o.MinXDistance = d
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
