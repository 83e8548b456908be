package prim

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Gather performs an index-indirect bulk read:
//
//	dst[i] = src[indices[i]]  for every i in [0, len(dst)).
//
// Contract:
//   - len(dst) == len(indices), else ErrLengthMismatch.
//   - every index must lie in [0, len(src)), else ErrIndexOutOfRange
//     (dst is left partially written; stage into scratch if that matters).
//   - dst must not alias src (indirection through an aliased slice would
//     read already-overwritten slots).
//
// Complexity: O(len(dst)) time, O(1) extra space.
func Gather[T any, Ix constraints.Integer](dst []T, indices []Ix, src []T) error {
	if len(dst) != len(indices) {
		return fmt.Errorf("Gather: %w", ErrLengthMismatch)
	}

	n := uint64(len(src))
	for i, ix := range indices {
		// A single unsigned compare rejects both negative and too-large
		// indices regardless of the signedness of Ix.
		if uint64(ix) >= n {
			return fmt.Errorf("Gather: index %d at position %d: %w", int64(ix), i, ErrIndexOutOfRange)
		}
		dst[i] = src[ix]
	}

	return nil
}
