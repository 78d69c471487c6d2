package interpolate

import (
	"fmt"
	"math"

	"github.com/katalvlaran/interp/numseq"
)

// nearestNeighbor owns private copies of knots and values; immutable after
// construction, like Spline.
type nearestNeighbor struct {
	knots []float64
	vals  []float64
}

// NewNearestNeighbor builds a nearest-neighbor lookup over the given knots.
//
// Contract by dataset size:
//
//   - 0 points — a constant-NaN function (the one documented NaN tolerance).
//   - 1 point  — a constant function returning that point's y.
//   - ≥2 points — xs must be finite and strictly increasing, ys finite;
//     a query returns the y of the strictly closer enclosing knot, the exact
//     midpoint resolving to the right knot (d+d < w picks left, else right).
//     Queries outside the domain clamp to the nearest endpoint's y.
//
// Errors: ErrDimensionMismatch, ErrInvalidSequence.
func NewNearestNeighbor(xs, ys []float64) (UnivariateFunction, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("len(xs)=%d, len(ys)=%d: %w", len(xs), len(ys), ErrDimensionMismatch)
	}

	switch len(xs) {
	case 0:
		return Constant(math.NaN()), nil
	case 1:
		if err := numseq.CheckFinite(xs); err != nil {
			return nil, fmt.Errorf("xs: %w", err)
		}
		if err := numseq.CheckFinite(ys); err != nil {
			return nil, fmt.Errorf("ys: %w", err)
		}

		return Constant(ys[0]), nil
	}

	if err := numseq.CheckStrictlyIncreasing(xs); err != nil {
		return nil, fmt.Errorf("xs: %w", err)
	}
	if err := numseq.CheckFinite(ys); err != nil {
		return nil, fmt.Errorf("ys: %w", err)
	}

	nn := &nearestNeighbor{
		knots: make([]float64, len(xs)),
		vals:  make([]float64, len(ys)),
	}
	copy(nn.knots, xs)
	copy(nn.vals, ys)

	return nn.eval, nil
}

// eval locates the enclosing knot pair by binary search and applies the
// midpoint rule.
func (nn *nearestNeighbor) eval(x float64) float64 {
	if math.IsNaN(x) {
		return math.NaN()
	}

	// Knots are finite and x is not NaN, so Search cannot fail.
	i, _ := numseq.Search(nn.knots, x)
	if i >= 0 {
		return nn.vals[i]
	}

	ins := -i - 1
	switch ins {
	case 0:
		return nn.vals[0] // below the domain: clamp to the first knot
	case len(nn.knots):
		return nn.vals[len(nn.vals)-1] // above the domain: clamp to the last knot
	}

	k := ins - 1
	d := x - nn.knots[k]
	w := nn.knots[k+1] - nn.knots[k]
	if d+d < w {
		return nn.vals[k]
	}

	return nn.vals[k+1]
}
