package prim

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Scatter performs an index-indirect bulk write:
//
//	dst[indices[i]] = src[i]  for every i in [0, len(src)).
//
// Contract:
//   - len(src) == len(indices), else ErrLengthMismatch.
//   - every index must lie in [0, len(dst)), else ErrIndexOutOfRange.
//   - when two indices collide the later write wins (left-to-right order).
//   - src must not alias dst.
//
// Complexity: O(len(src)) time, O(1) extra space.
func Scatter[T any, Ix constraints.Integer](src []T, indices []Ix, dst []T) error {
	if len(src) != len(indices) {
		return fmt.Errorf("Scatter: %w", ErrLengthMismatch)
	}

	n := uint64(len(dst))
	for i, ix := range indices {
		if uint64(ix) >= n {
			return fmt.Errorf("Scatter: index %d at position %d: %w", int64(ix), i, ErrIndexOutOfRange)
		}
		dst[ix] = src[i]
	}

	return nil
}

// ScatterIf performs a conditional index-indirect bulk write:
//
//	if pred(stencil[i]) { dst[indices[i]] = src[i] }
//
// Slots whose stencil fails the predicate are skipped entirely, so the
// corresponding indices are never inspected — a guarded slot may carry
// an out-of-range index without failing the call. This matches the
// marker-scatter idiom: only entries that own at least one output slot
// write their marker.
//
// Contract:
//   - len(src) == len(indices) == len(stencil), else ErrLengthMismatch.
//   - pred must be non-nil, else ErrNilOperator.
//   - every *selected* index must lie in [0, len(dst)).
//
// Complexity: O(len(src)) time, O(1) extra space.
func ScatterIf[T any, S any, Ix constraints.Integer](src []T, indices []Ix, stencil []S, pred func(S) bool, dst []T) error {
	if len(src) != len(indices) || len(src) != len(stencil) {
		return fmt.Errorf("ScatterIf: %w", ErrLengthMismatch)
	}
	if pred == nil {
		return fmt.Errorf("ScatterIf: %w", ErrNilOperator)
	}

	n := uint64(len(dst))
	for i, ix := range indices {
		if !pred(stencil[i]) {
			continue
		}
		if uint64(ix) >= n {
			return fmt.Errorf("ScatterIf: index %d at position %d: %w", int64(ix), i, ErrIndexOutOfRange)
		}
		dst[ix] = src[i]
	}

	return nil
}
