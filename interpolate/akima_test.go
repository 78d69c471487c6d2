package interpolate_test

import (
	"testing"

	"github.com/katalvlaran/interp/interpolate"
	"github.com/katalvlaran/interp/numseq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewAkimaSpline_KnotReproduction verifies exact knot reproduction.
func TestNewAkimaSpline_KnotReproduction(t *testing.T) {
	xs := []float64{0, 1, 2, 3, 4, 5.5, 7}
	ys := []float64{0, 1, 0, -2, 3, 3, 1}

	f, err := interpolate.NewAkimaSpline(xs, ys)
	require.NoError(t, err)

	for i := range xs {
		assert.InDelta(t, ys[i], f(xs[i]), 1e-9, "knot %d", i)
	}
}

// TestNewAkimaSpline_MinimumPoints enforces the hard minimum of 5 points.
func TestNewAkimaSpline_MinimumPoints(t *testing.T) {
	for n := 0; n < 5; n++ {
		xs := make([]float64, n)
		ys := make([]float64, n)
		for i := 0; i < n; i++ {
			xs[i], ys[i] = float64(i), float64(i)
		}

		_, err := interpolate.NewAkimaSpline(xs, ys)
		assert.ErrorIs(t, err, interpolate.ErrTooFewPoints, "n=%d must fail", n)
	}

	xs := []float64{0, 1, 2, 3, 4}
	_, err := interpolate.NewAkimaSpline(xs, xs)
	assert.NoError(t, err, "exactly 5 points must succeed")
}

// TestAkimaSpline_ReproducesLine exercises the degenerate-weight fallback:
// collinear points make every slope-change weight zero, and the
// distance-weighted average must still yield the line's slope.
func TestAkimaSpline_ReproducesLine(t *testing.T) {
	xs := []float64{0, 1, 2, 3, 4, 5}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = 2*x + 1
	}

	f, err := interpolate.NewAkimaSpline(xs, ys)
	require.NoError(t, err)

	for _, x := range []float64{0.3, 1.5, 2.5, 4.9} {
		assert.InDelta(t, 2*x+1, f(x), 1e-9, "collinear data stays linear at x=%v", x)
	}
}

// TestAkimaSpline_ReproducesParabola: Akima derivatives come from quadratic
// fits at the boundary and weighted slope averages inside, so a parabola on
// a uniform grid is reproduced closely.
func TestAkimaSpline_ReproducesParabola(t *testing.T) {
	xs := []float64{0, 1, 2, 3, 4, 5, 6}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = x * x
	}

	f, err := interpolate.NewAkimaSpline(xs, ys)
	require.NoError(t, err)

	// Boundary derivatives are exact for quadratics (three-point formula),
	// so boundary segments match x² closely.
	assert.InDelta(t, 0.25, f(0.5), 1e-9)
	assert.InDelta(t, 30.25, f(5.5), 1e-9)
}

// TestAkimaSplineCoefficients_RoundTrip compares manual Horner evaluation of
// the raw coefficients against the constructed interpolant.
func TestAkimaSplineCoefficients_RoundTrip(t *testing.T) {
	xs := []float64{0, 1, 2, 3, 4, 5.5, 7}
	ys := []float64{0, 1, 0, -2, 3, 3, 1}

	coeffs, err := interpolate.AkimaSplineCoefficients(xs, ys)
	require.NoError(t, err)
	require.Len(t, coeffs, len(xs)-1)

	f, err := interpolate.NewAkimaSpline(xs, ys)
	require.NoError(t, err)

	for i := range coeffs {
		x := xs[i] + 0.37*(xs[i+1]-xs[i])
		assert.Equal(t, numseq.EvaluatePoly(coeffs[i], x-xs[i]), f(x), "segment %d", i)
	}
}

// TestNewAkimaSpline_ContractViolations pins the remaining sentinels.
func TestNewAkimaSpline_ContractViolations(t *testing.T) {
	_, err := interpolate.NewAkimaSpline([]float64{0, 1, 2, 3, 4}, []float64{0, 1, 2})
	assert.ErrorIs(t, err, interpolate.ErrDimensionMismatch)

	_, err = interpolate.NewAkimaSpline([]float64{0, 1, 1, 3, 4}, []float64{0, 1, 2, 3, 4})
	assert.ErrorIs(t, err, interpolate.ErrInvalidSequence)
}

// TestHermiteCoefficients_Contract exercises the shared Hermite builder
// directly: a single segment with prescribed derivatives, plus the error
// surface.
func TestHermiteCoefficients_Contract(t *testing.T) {
	// Segment from (0,0) to (1,1) with zero end slopes: the smoothstep
	// cubic 3x² - 2x³.
	coeffs, err := interpolate.HermiteCoefficients(
		[]float64{0, 1}, []float64{0, 1}, []float64{0, 0})
	require.NoError(t, err)
	require.Len(t, coeffs, 1)
	assert.InDelta(t, 0.5, numseq.EvaluatePoly(coeffs[0], 0.5), 1e-15, "smoothstep midpoint")
	assert.InDelta(t, 3.0, coeffs[0][2], 1e-15)
	assert.InDelta(t, -2.0, coeffs[0][3], 1e-15)

	_, err = interpolate.HermiteCoefficients([]float64{0, 1}, []float64{0, 1}, []float64{0})
	assert.ErrorIs(t, err, interpolate.ErrDimensionMismatch)

	_, err = interpolate.HermiteCoefficients([]float64{0}, []float64{0}, []float64{0})
	assert.ErrorIs(t, err, interpolate.ErrTooFewPoints)
}
