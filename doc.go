// Package interp is a small, dependency-light toolbox for one-dimensional
// interpolation and robust local regression over ordered (x, y) datasets.
//
// 🚀 What is interp?
//
//	A synchronous, allocation-per-call numeric core that brings together:
//		• Piecewise-linear interpolation
//		• Natural (free-boundary) cubic splines via a tridiagonal solve
//		• Akima cubic splines with three-point boundary derivatives
//		• Nearest-neighbor lookup with the midpoint tie rule
//		• LOESS/LOWESS robust local linear regression with knot thinning
//
// ✨ Why choose interp?
//
//   - Predictable numerics – documented operation order, no hidden reordering
//   - Explicit contracts – sentinel errors, validated at every public entry
//   - Immutable results – interpolants own private copies of their knots;
//     mutate your arrays afterwards, the function does not change
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under three subpackages:
//
//	numseq/      — sequence validation, binary search, Horner evaluation, median
//	interpolate/ — the four interpolators, the Method dispatcher and fallback
//	loess/       — robust smoothing and the smoothing→thinning→interpolation composite
//
// Quick sketch:
//
//	xs := []float64{0, 1, 2, 3, 4}
//	ys := []float64{0, 1, 4, 9, 16}
//	f, err := interpolate.NewCubicSpline(xs, ys)
//	if err != nil { ... }
//	f(2.5) // ≈ 6.25
//
// Noisy data goes through loess first:
//
//	fit, err := loess.Smooth(xs, ys)             // robust fitted y-values
//	f, err := loess.NewInterpolator(xs, ys)      // smooth + thin + Akima
//
// Dive into each package's doc.go for algorithm outlines, complexity notes
// and the full error contract.
package interp
