package prim

import "fmt"

// InclusiveScan computes the inclusive prefix combine of src into dst:
//
//	dst[0] = src[0]
//	dst[i] = op(dst[i-1], src[i])
//
// The combine order is strictly left-to-right over the logical index,
// so non-commutative operators behave deterministically. dst may alias
// src (in-place scan); each src[i] is read before dst[i] is written.
//
// Contract: len(dst) == len(src) (ErrLengthMismatch), op != nil
// (ErrNilOperator). Empty input is a no-op.
//
// Complexity: O(n) time, O(1) extra space.
func InclusiveScan[T any](dst, src []T, op func(T, T) T) error {
	if len(dst) != len(src) {
		return fmt.Errorf("InclusiveScan: %w", ErrLengthMismatch)
	}
	if op == nil {
		return fmt.Errorf("InclusiveScan: %w", ErrNilOperator)
	}
	if len(src) == 0 {
		return nil
	}

	acc := src[0]
	dst[0] = acc
	for i := 1; i < len(src); i++ {
		acc = op(acc, src[i])
		dst[i] = acc
	}

	return nil
}

// ExclusiveScan computes the exclusive prefix combine of src into dst:
//
//	dst[0] = initial
//	dst[i] = op(dst[i-1], src[i-1])
//
// so dst[i] combines initial with src[0..i-1]. dst may alias src; the
// current src element is captured before its slot is overwritten.
//
// Contract: len(dst) == len(src) (ErrLengthMismatch), op != nil
// (ErrNilOperator). Empty input is a no-op.
//
// Complexity: O(n) time, O(1) extra space.
func ExclusiveScan[T any](dst, src []T, initial T, op func(T, T) T) error {
	if len(dst) != len(src) {
		return fmt.Errorf("ExclusiveScan: %w", ErrLengthMismatch)
	}
	if op == nil {
		return fmt.Errorf("ExclusiveScan: %w", ErrNilOperator)
	}

	acc := initial
	for i := range src {
		v := src[i] // capture before the aliased write below
		dst[i] = acc
		acc = op(acc, v)
	}

	return nil
}
