package loess

import (
	"fmt"
	"math"

	"github.com/katalvlaran/interp/numseq"
)

// Smooth computes robust locally-weighted linear regression over the
// dataset and returns the fitted y-values, one per input point.
//
// Preconditions (validated in order):
//  1. len(xs) == len(ys), and len(Weights) == len(xs) when weights are
//     supplied (ErrDimensionMismatch).
//  2. xs finite and monotonically non-decreasing — duplicates allowed
//     (ErrInvalidSequence).
//  3. ys and Weights finite (ErrInvalidSequence).
//
// Datasets of ≤ 2 points are returned unchanged (a copy of ys).
//
// A fitted value may be NaN when a window carries no usable weight;
// downstream consumers must treat such points as unfit. A regression pass
// with fewer than 2 non-zero-weight points fails with
// ErrInsufficientPoints.
func Smooth(xs, ys []float64, opts ...Option) ([]float64, error) {
	cfg := gatherOptions(opts)

	fit, err := smooth(xs, ys, &cfg)
	if err != nil {
		return nil, err
	}

	return fit, nil
}

// smooth is the shared engine behind Smooth and NewInterpolator; cfg is
// already gathered and may carry a Diagnostics sink.
func smooth(xs, ys []float64, cfg *Options) ([]float64, error) {
	n := len(xs)
	if len(ys) != n {
		return nil, fmt.Errorf("len(xs)=%d, len(ys)=%d: %w", n, len(ys), ErrDimensionMismatch)
	}
	if cfg.Weights != nil && len(cfg.Weights) != n {
		return nil, fmt.Errorf("len(weights)=%d, len(xs)=%d: %w", len(cfg.Weights), n, ErrDimensionMismatch)
	}
	if err := numseq.CheckMonotonicallyIncreasing(xs); err != nil {
		return nil, fmt.Errorf("xs: %w", err)
	}
	if err := numseq.CheckFinite(ys); err != nil {
		return nil, fmt.Errorf("ys: %w", err)
	}
	if cfg.Weights != nil {
		if err := numseq.CheckFinite(cfg.Weights); err != nil {
			return nil, fmt.Errorf("weights: %w", err)
		}
	}

	// Regression is meaningless below 3 points: pass y through unchanged.
	if n <= 2 {
		fit := make([]float64, n)
		copy(fit, ys)
		writeDiagnostics(cfg.Diagnostics, 0, 0, nil, fit)

		return fit, nil
	}

	weights := cfg.Weights
	if weights == nil {
		weights = make([]float64, n)
		for i := range weights {
			weights[i] = 1
		}
	}

	robustness := make([]float64, n)
	for i := range robustness {
		robustness[i] = 1
	}

	fit := make([]float64, n)
	residuals := make([]float64, n)

	var medianResidual float64
	passes := 0
	for iter := 0; iter <= cfg.RobustnessIters; iter++ {
		if iter > 0 {
			// Residuals of the previous pass decide whether another
			// robustness round is worthwhile and how hard to down-weight.
			for i := range residuals {
				residuals[i] = math.Abs(fit[i] - ys[i])
			}
			medianResidual = numseq.Median(residuals)
			if medianResidual < cfg.Accuracy {
				break // converged: further smoothing cannot move the fit
			}

			outlierDistance := medianResidual * cfg.OutlierDistanceFactor
			for i := range robustness {
				robustness[i] = bisquare(residuals[i] / outlierDistance)
			}
		}

		if err := sequenceRegression(xs, ys, weights, robustness, fit, cfg, iter); err != nil {
			return nil, err
		}
		passes++
	}

	writeDiagnostics(cfg.Diagnostics, passes, medianResidual, robustness, fit)

	return fit, nil
}

// writeDiagnostics copies the run's internals into the optional sink.
// Write-only: nothing here feeds back into the algorithm.
func writeDiagnostics(d *Diagnostics, passes int, medianResidual float64, robustness, fit []float64) {
	if d == nil {
		return
	}

	d.Iterations = passes
	d.MedianResidual = medianResidual
	d.RobustnessWeights = append([]float64(nil), robustness...)
	d.Fit = append([]float64(nil), fit...)
}

// sequenceRegression performs one fit pass over all points, writing the
// fitted values into fit. iter names the robustness iteration for error
// context.
func sequenceRegression(xs, ys, weights, robustness, fit []float64, cfg *Options, iter int) error {
	n := len(xs)

	combined := make([]float64, n)
	nonZero := 0
	for i := range combined {
		combined[i] = weights[i] * robustness[i]
		if combined[i] != 0 {
			nonZero++
		}
	}
	if nonZero < MinWindowPoints {
		return fmt.Errorf("iteration %d has %d points with non-zero weight: %w", iter, nonZero, ErrInsufficientPoints)
	}

	// Window size in non-zero-weight points.
	bandwidth := int(math.Round(float64(nonZero) * cfg.BandwidthFraction))
	if bandwidth > nonZero {
		bandwidth = nonZero
	}
	if bandwidth < MinWindowPoints {
		bandwidth = MinWindowPoints
	}

	// Initial window: the first `bandwidth` non-zero-weight points.
	iLeft := nextNonZero(combined, -1)
	iRight := iLeft
	for k := 1; k < bandwidth; k++ {
		iRight = nextNonZero(combined, iRight)
	}

	for i := 0; i < n; i++ {
		x := xs[i]

		// Slide right while the next candidate is closer to x than the
		// current left edge. x is sorted, so total movement across the
		// whole pass is O(n).
		for {
			next := nextNonZero(combined, iRight)
			if next >= n || xs[next]-x >= x-xs[iLeft] {
				break
			}
			iLeft = nextNonZero(combined, iLeft)
			iRight = next
		}

		fit[i] = localLinearRegression(xs, ys, combined, x, iLeft, iRight, cfg.Accuracy)
	}

	return nil
}

// localLinearRegression fits one weighted linear model over the window
// [iLeft, iRight] and evaluates it at x. Returns NaN when the window's
// total weight is below minEffectiveWeight.
func localLinearRegression(xs, ys, combined []float64, x float64, iLeft, iRight int, accuracy float64) float64 {
	edgeL := x - xs[iLeft]
	edgeR := xs[iRight] - x
	maxDistance := math.Max(edgeL, edgeR) * 1.001 // keep boundary points off kernel zeros

	var sumW, sumX, sumXSq, sumY, sumXY float64
	for k := iLeft; k <= iRight; k++ {
		xk := xs[k]
		w := triCube(math.Abs(xk-x)/maxDistance) * combined[k]
		xkw := xk * w
		sumW += w
		sumX += xkw
		sumXSq += xk * xkw
		sumY += ys[k] * w
		sumXY += ys[k] * xkw
	}

	if sumW < minEffectiveWeight {
		return math.NaN() // no usable information in this window
	}

	meanX := sumX / sumW
	meanY := sumY / sumW
	meanXSq := sumXSq / sumW
	meanXY := sumXY / sumW

	var beta float64
	if d := meanXSq - meanX*meanX; math.Abs(d) >= accuracy*accuracy {
		beta = (meanXY - meanX*meanY) / d
	}
	// Otherwise x is near-constant in the window; keep beta = 0.

	return meanY + beta*(x-meanX)
}

// nextNonZero returns the first index after i with a non-zero weight, or
// len(w) when none remains.
func nextNonZero(w []float64, i int) int {
	j := i + 1
	for j < len(w) && w[j] == 0 {
		j++
	}

	return j
}

// triCube is the distance kernel: (1-|u|³)³ for |u| < 1, else 0.
func triCube(u float64) float64 {
	u = math.Abs(u)
	if u >= 1 {
		return 0
	}
	t := 1 - u*u*u

	return t * t * t
}

// bisquare is the robustness kernel: (1-u²)² for |u| < 1, else 0.
func bisquare(u float64) float64 {
	u = math.Abs(u)
	if u >= 1 {
		return 0
	}
	t := 1 - u*u

	return t * t
}
