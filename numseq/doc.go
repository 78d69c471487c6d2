// Package numseq provides the shared numeric-sequence primitives used by the
// interpolation and regression packages: ordering/finiteness validation,
// NaN-safe binary search, Horner polynomial evaluation, coefficient trimming
// and median computation.
//
// Conventions:
//
//   - All routines operate on plain []float64 and never retain or mutate
//     their inputs (Median sorts a private copy).
//   - Validation helpers return sentinel errors matched via errors.Is;
//     the failing index and value are attached with %w wrapping.
//   - Search uses the classic negative encoding for misses:
//     -(insertionPoint+1), so a miss is always strictly negative and the
//     insertion point is recoverable as -(result)-1.
//   - The three-way comparison inside Search is exhaustive: less, greater,
//     equal — anything else means a NaN slipped in, and Search fails with
//     ErrInvalidComparison instead of silently misbehaving.
//
// Complexity: every function here is O(n) or O(log n) time except Median,
// which is O(n log n) due to sorting a copy.
package numseq
