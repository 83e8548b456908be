package prim

import "fmt"

// SegmentedScan computes an inclusive prefix combine that restarts at
// every segment boundary. Segments are maximal runs of equal adjacent
// keys:
//
//	dst[i] = src[i]                 when i == 0 or keys[i] != keys[i-1]
//	dst[i] = op(dst[i-1], src[i])   otherwise
//
// Combines run strictly left-to-right within each segment. dst may
// alias src (the sparse pipeline scans its gather-location buffer in
// place); keys must alias neither.
//
// Typical use: src holds a per-segment base value in the first slot of
// each segment and ones elsewhere; a Plus scan then yields
// base, base+1, base+2, ... within every segment.
//
// Contract: len(dst) == len(src) == len(keys) (ErrLengthMismatch),
// op != nil (ErrNilOperator). Empty input is a no-op.
//
// Complexity: O(n) time, O(1) extra space.
func SegmentedScan[T any, K comparable](dst, src []T, keys []K, op func(T, T) T) error {
	if len(dst) != len(src) || len(dst) != len(keys) {
		return fmt.Errorf("SegmentedScan: %w", ErrLengthMismatch)
	}
	if op == nil {
		return fmt.Errorf("SegmentedScan: %w", ErrNilOperator)
	}
	if len(src) == 0 {
		return nil
	}

	acc := src[0]
	dst[0] = acc
	for i := 1; i < len(src); i++ {
		if keys[i] != keys[i-1] {
			acc = src[i] // boundary: restart the combine
		} else {
			acc = op(acc, src[i])
		}
		dst[i] = acc
	}

	return nil
}
