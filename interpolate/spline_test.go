package interpolate_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/interp/interpolate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewSpline_Validation walks the precondition order: knot count,
// segment count, ordering.
func TestNewSpline_Validation(t *testing.T) {
	_, err := interpolate.NewSpline([]float64{1}, nil)
	assert.ErrorIs(t, err, interpolate.ErrTooFewPoints)

	_, err = interpolate.NewSpline([]float64{1, 2, 3}, [][]float64{{0}})
	assert.ErrorIs(t, err, interpolate.ErrDimensionMismatch, "3 knots need 2 segments")

	_, err = interpolate.NewSpline([]float64{2, 1}, [][]float64{{0}})
	assert.ErrorIs(t, err, interpolate.ErrInvalidSequence)

	_, err = interpolate.NewSpline([]float64{1, math.NaN()}, [][]float64{{0}})
	assert.ErrorIs(t, err, interpolate.ErrInvalidSequence)
}

// TestSpline_EvalSegmentsAndClamping evaluates a hand-built two-segment
// piecewise polynomial, including out-of-domain clamping onto the boundary
// segments.
func TestSpline_EvalSegmentsAndClamping(t *testing.T) {
	// Segment [0,1]: 1 + 2t.  Segment [1,3]: 3 - t².
	s, err := interpolate.NewSpline(
		[]float64{0, 1, 3},
		[][]float64{{1, 2}, {3, 0, -1}},
	)
	require.NoError(t, err)

	assert.Equal(t, 1.0, s.Eval(0), "left knot")
	assert.Equal(t, 2.0, s.Eval(0.5), "inside segment 0")
	assert.Equal(t, 3.0, s.Eval(1), "shared knot evaluates segment 1 at t=0")
	assert.Equal(t, 2.0, s.Eval(2), "inside segment 1")
	assert.Equal(t, -1.0, s.Eval(3), "right knot: segment 1 at t=2")

	assert.Equal(t, -1.0, s.Eval(-1), "below domain: segment 0 extrapolates 1+2t at t=-1")
	assert.Equal(t, 3.0-9.0, s.Eval(4), "above domain: segment 1 extrapolates at t=3")

	assert.True(t, math.IsNaN(s.Eval(math.NaN())), "NaN query yields NaN")
}

// TestSpline_OwnedCopies verifies that both accessors return defensive
// copies and that construction deep-copied the inputs.
func TestSpline_OwnedCopies(t *testing.T) {
	knots := []float64{0, 1}
	coeffs := [][]float64{{5, 1}}

	s, err := interpolate.NewSpline(knots, coeffs)
	require.NoError(t, err)

	knots[0] = 99
	coeffs[0][0] = 99
	assert.Equal(t, 5.0, s.Eval(0), "construction must deep-copy inputs")

	s.Knots()[0] = 42
	s.Coefficients()[0][0] = 42
	assert.Equal(t, 5.0, s.Eval(0), "accessors must return copies")

	assert.Equal(t, []float64{0, 1}, s.Knots())
	assert.Equal(t, [][]float64{{5, 1}}, s.Coefficients())
}

// TestSpline_Func confirms the UnivariateFunction view delegates to Eval.
func TestSpline_Func(t *testing.T) {
	s, err := interpolate.NewSpline([]float64{0, 1}, [][]float64{{2, 3}})
	require.NoError(t, err)

	f := s.Func()
	assert.Equal(t, s.Eval(0.5), f(0.5))
}
