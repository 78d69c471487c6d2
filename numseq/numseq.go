package numseq

import (
	"fmt"
	"math"
	"sort"
)

// CheckFinite verifies that every element of a is a finite float64.
// Returns ErrInvalidSequence (wrapped with the offending index and value)
// on the first NaN or ±Inf encountered.
//
// Complexity: O(n) time, O(1) space.
func CheckFinite(a []float64) error {
	for i, v := range a {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("non-finite value %v at index %d: %w", v, i, ErrInvalidSequence)
		}
	}

	return nil
}

// CheckStrictlyIncreasing verifies that a is finite and strictly increasing:
// a[i-1] < a[i] for every adjacent pair. Returns ErrInvalidSequence on the
// first violation.
//
// Complexity: O(n) time, O(1) space.
func CheckStrictlyIncreasing(a []float64) error {
	if err := CheckFinite(a); err != nil {
		return err
	}
	for i := 1; i < len(a); i++ {
		if a[i] <= a[i-1] {
			return fmt.Errorf("a[%d]=%v is not greater than a[%d]=%v: %w", i, a[i], i-1, a[i-1], ErrInvalidSequence)
		}
	}

	return nil
}

// CheckMonotonicallyIncreasing verifies that a is finite and monotonically
// non-decreasing: a[i-1] <= a[i] for every adjacent pair. Equal neighbors are
// allowed (LOESS input tolerates duplicate x values). Returns
// ErrInvalidSequence on the first violation.
//
// Complexity: O(n) time, O(1) space.
func CheckMonotonicallyIncreasing(a []float64) error {
	if err := CheckFinite(a); err != nil {
		return err
	}
	for i := 1; i < len(a); i++ {
		if a[i] < a[i-1] {
			return fmt.Errorf("a[%d]=%v is less than a[%d]=%v: %w", i, a[i], i-1, a[i-1], ErrInvalidSequence)
		}
	}

	return nil
}

// Search performs binary search for key in the sorted (ascending) slice a.
//
// Returns:
//
//   - the index of key if it is present;
//   - -(insertionPoint+1) if it is not, where insertionPoint is the index
//     at which key would be inserted to keep a sorted;
//   - ErrInvalidComparison if any comparison involves a NaN — the three-way
//     comparison must be exhaustive (less/greater/equal), and NaN satisfies
//     none of the three.
//
// Complexity: O(log n) time, O(1) space.
func Search(a []float64, key float64) (int, error) {
	lo, hi := 0, len(a)-1
	for lo <= hi {
		mid := int(uint(lo+hi) >> 1) // avoid overflow on huge slices
		v := a[mid]
		switch {
		case v < key:
			lo = mid + 1
		case v > key:
			hi = mid - 1
		case v == key:
			return mid, nil
		default:
			// Neither <, > nor ==: one of the operands is NaN.
			return 0, fmt.Errorf("comparing %v against a[%d]=%v: %w", key, mid, v, ErrInvalidComparison)
		}
	}

	return -(lo + 1), nil
}

// EvaluatePoly evaluates the polynomial with ascending-order coefficients
// coeffs at x using Horner's method:
//
//	coeffs[0] + coeffs[1]*x + coeffs[2]*x² + ... + coeffs[k]*xᵏ
//
// An empty coefficient list evaluates to 0.
//
// Complexity: O(k) time, O(1) space.
func EvaluatePoly(coeffs []float64, x float64) float64 {
	var acc float64
	for i := len(coeffs) - 1; i >= 0; i-- {
		acc = acc*x + coeffs[i]
	}

	return acc
}

// TrimPoly returns coeffs with trailing zero-valued high-degree coefficients
// removed, keeping at least one coefficient. The returned slice shares the
// backing array of coeffs (the trim is a re-slice, not a copy).
//
// Complexity: O(k) time, O(1) space.
func TrimPoly(coeffs []float64) []float64 {
	n := len(coeffs)
	for n > 1 && coeffs[n-1] == 0 {
		n--
	}

	return coeffs[:n]
}

// Median returns the median of a: the middle element of the sorted values,
// or the mean of the two middle elements for even length. Returns NaN for an
// empty slice. The input is never mutated; a private copy is sorted.
//
// Complexity: O(n log n) time, O(n) space.
func Median(a []float64) float64 {
	n := len(a)
	if n == 0 {
		return math.NaN()
	}

	sorted := make([]float64, n)
	copy(sorted, a)
	sort.Float64s(sorted)

	if n%2 == 1 {
		return sorted[n/2]
	}

	return (sorted[n/2-1] + sorted[n/2]) / 2
}
