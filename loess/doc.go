// Package loess implements LOESS/LOWESS robust local linear regression over
// ordered (x, y) datasets, plus the composite that turns noisy data into a
// smooth interpolant.
//
// 🚀 What is loess?
//
//	For every input x, a local linear model is fitted over a sliding window
//	of nearby points, weighted by the tri-cube kernel of their distance.
//	Outliers are suppressed by robustness iterations: residuals of the
//	previous fit are turned into bisquare weights that down-weight points
//	far from the trend, then the fit is repeated.
//
// Algorithm outline (Smooth):
//
//  1. Validate: x monotonically non-decreasing (duplicates allowed),
//     y and optional caller weights finite, equal lengths.
//  2. Trivial case: ≤ 2 points are returned unchanged — regression is
//     meaningless below 3 points.
//  3. Robustness loop, 0..=RobustnessIters passes:
//     – pass 0 fits with caller weights only (uniform 1 when absent);
//     – each later pass computes residuals = |fit − y|, stops early once
//     the median residual drops below Accuracy, otherwise derives
//     bisquare robustness weights at OutlierDistanceFactor × median
//     residual, combines them multiplicatively with caller weights and
//     refits.
//  4. Each fit pass slides a window of
//     max(2, min(nz, round(nz·BandwidthFraction))) non-zero-weight points
//     (nz = count of such points) across the sorted x values: the window
//     shifts right while the next right candidate is closer to the query
//     than the current left edge. Total window movement is O(n) across the
//     whole pass, not O(n·bandwidth).
//  5. One local fit weights each window point by
//     callerWeight × robustnessWeight × triCube(distance/maxDistance),
//     maxDistance being 1.001× the wider window half (the 1.001 keeps
//     boundary points off exact kernel zeros). Windows with total weight
//     below 1e-12 yield NaN — an "unfit" marker downstream consumers must
//     exclude.
//
// NewInterpolator layers knot thinning on top: fitted points are kept as
// knots only when their x exceeds the previous kept knot's x by at least
// MinXDistance and the fitted y is not NaN, producing a strictly
// increasing, NaN-free subset that is handed to
// interpolate.NewWithFallback with the configured method (Akima by
// default). The fallback variant matters: the knot count after thinning is
// unpredictable.
//
// Everything is synchronous and allocation-per-call; no state survives an
// invocation, so independent goroutines may call into the package freely
// with independent data.
//
// Errors (sentinel, matched via errors.Is):
//
//   - ErrDimensionMismatch  — x, y or weights length mismatch.
//   - ErrInvalidSequence    — non-finite value, or x decreasing
//     (alias of numseq.ErrInvalidSequence).
//   - ErrInsufficientPoints — fewer than 2 points carry non-zero combined
//     weight in a regression pass (the message names the offending
//     iteration; robustness weighting can zero points out mid-loop).
//
// Complexity: O(RobustnessIters · n · bandwidth) time, O(n) space.
package loess
