// Package numseq: sentinel error set.
// All validation helpers MUST return these sentinels and tests MUST check
// them via errors.Is. Context (index, offending value) is attached with
// fmt.Errorf("...: %w", ErrX) at the failure site.
package numseq

import "errors"

var (
	// ErrInvalidSequence indicates a sequence that violates its ordering
	// contract (strictly increasing / monotonically non-decreasing) or
	// contains a non-finite value (NaN or ±Inf).
	ErrInvalidSequence = errors.New("numseq: invalid sequence")

	// ErrInvalidComparison indicates that a NaN was encountered during a
	// binary-search comparison, making the three-way ordering undefined.
	ErrInvalidComparison = errors.New("numseq: NaN encountered during comparison")
)
