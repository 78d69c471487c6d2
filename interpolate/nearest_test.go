package interpolate_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/interp/interpolate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewNearestNeighbor_Empty: zero points yield a constant-NaN function.
func TestNewNearestNeighbor_Empty(t *testing.T) {
	f, err := interpolate.NewNearestNeighbor(nil, nil)
	require.NoError(t, err)

	for _, x := range []float64{-1, 0, 42} {
		assert.True(t, math.IsNaN(f(x)), "empty dataset must return NaN at x=%v", x)
	}
}

// TestNewNearestNeighbor_SinglePoint: one point yields a constant function.
func TestNewNearestNeighbor_SinglePoint(t *testing.T) {
	f, err := interpolate.NewNearestNeighbor([]float64{3}, []float64{7})
	require.NoError(t, err)

	for _, x := range []float64{-100, 3, 100} {
		assert.Equal(t, 7.0, f(x), "single point is constant at x=%v", x)
	}
}

// TestNewNearestNeighbor_MidpointRule pins the documented tie rule for two
// knots at (0,0) and (10,1): x=4 → left, x=6 → right, and the exact
// midpoint x=5 resolves to the right knot (d+d < w picks left, else right).
func TestNewNearestNeighbor_MidpointRule(t *testing.T) {
	f, err := interpolate.NewNearestNeighbor([]float64{0, 10}, []float64{0, 1})
	require.NoError(t, err)

	assert.Equal(t, 0.0, f(4), "x=4 is strictly closer to the left knot")
	assert.Equal(t, 1.0, f(6), "x=6 is strictly closer to the right knot")
	assert.Equal(t, 1.0, f(5), "midpoint resolves to the right knot")
}

// TestNewNearestNeighbor_Clamping: queries outside the domain return the
// nearest endpoint's y.
func TestNewNearestNeighbor_Clamping(t *testing.T) {
	f, err := interpolate.NewNearestNeighbor([]float64{0, 1, 2}, []float64{5, 6, 7})
	require.NoError(t, err)

	assert.Equal(t, 5.0, f(-10))
	assert.Equal(t, 7.0, f(10))
}

// TestNewNearestNeighbor_ExactKnot: an exact knot hit returns that knot's y.
func TestNewNearestNeighbor_ExactKnot(t *testing.T) {
	f, err := interpolate.NewNearestNeighbor([]float64{0, 1, 2}, []float64{5, 6, 7})
	require.NoError(t, err)

	assert.Equal(t, 6.0, f(1))
}

// TestNewNearestNeighbor_ContractViolations covers the validated cases for
// datasets of two or more points.
func TestNewNearestNeighbor_ContractViolations(t *testing.T) {
	_, err := interpolate.NewNearestNeighbor([]float64{0, 1}, []float64{0})
	assert.ErrorIs(t, err, interpolate.ErrDimensionMismatch)

	_, err = interpolate.NewNearestNeighbor([]float64{1, 0}, []float64{0, 1})
	assert.ErrorIs(t, err, interpolate.ErrInvalidSequence)

	_, err = interpolate.NewNearestNeighbor([]float64{0, 1}, []float64{math.NaN(), 1})
	assert.ErrorIs(t, err, interpolate.ErrInvalidSequence)
}
