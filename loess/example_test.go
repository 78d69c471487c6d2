package loess_test

import (
	"fmt"

	"github.com/katalvlaran/interp/loess"
)

// ExampleSmooth fits clean linear data: the local regression reproduces the
// line and stops after a single pass.
func ExampleSmooth() {
	xs := []float64{0, 1, 2, 3, 4}
	ys := []float64{1, 3, 5, 7, 9} // y = 2x + 1

	fit, err := loess.Smooth(xs, ys)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("%.2f %.2f %.2f\n", fit[0], fit[2], fit[4])
	// Output: 1.00 5.00 9.00
}

// ExampleNewInterpolator smooths, thins and interpolates in one call; with
// five exact points the default Akima spline reproduces the trend between
// knots.
func ExampleNewInterpolator() {
	xs := []float64{0, 1, 2, 3, 4}
	ys := []float64{1, 3, 5, 7, 9}

	f, err := loess.NewInterpolator(xs, ys)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("%.2f\n", f(2.5))
	// Output: 6.00
}
