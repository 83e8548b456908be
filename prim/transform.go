package prim

import "fmt"

// Transform applies a binary elementwise map:
//
//	dst[i] = op(a[i], b[i])  for every i in [0, len(dst)).
//
// dst may alias a or b. Contract: all three slices share one length
// (ErrLengthMismatch), op != nil (ErrNilOperator).
//
// Complexity: O(n) time, O(1) extra space.
func Transform[A, B, C any](dst []C, a []A, b []B, op func(A, B) C) error {
	if len(dst) != len(a) || len(dst) != len(b) {
		return fmt.Errorf("Transform: %w", ErrLengthMismatch)
	}
	if op == nil {
		return fmt.Errorf("Transform: %w", ErrNilOperator)
	}

	for i := range dst {
		dst[i] = op(a[i], b[i])
	}

	return nil
}

// TransformUnary applies a unary elementwise map:
//
//	dst[i] = op(a[i])  for every i in [0, len(dst)).
//
// dst may alias a. Contract: len(dst) == len(a) (ErrLengthMismatch),
// op != nil (ErrNilOperator).
//
// Complexity: O(n) time, O(1) extra space.
func TransformUnary[A, C any](dst []C, a []A, op func(A) C) error {
	if len(dst) != len(a) {
		return fmt.Errorf("TransformUnary: %w", ErrLengthMismatch)
	}
	if op == nil {
		return fmt.Errorf("TransformUnary: %w", ErrNilOperator)
	}

	for i := range dst {
		dst[i] = op(a[i])
	}

	return nil
}

// Iota fills dst with the counting sequence start, start+1, start+2, ...
// It is the slice analogue of a counting iterator and feeds the marker
// scatter in segment reconstruction.
func Iota[T Number](dst []T, start T) {
	v := start
	for i := range dst {
		dst[i] = v
		v++
	}
}

// Fill assigns the same value to every slot of dst.
func Fill[T any](dst []T, value T) {
	for i := range dst {
		dst[i] = value
	}
}
