// Package prim: operator constructors shared by the scan, transform and
// compaction primitives. Keeping them here (instead of inline closures at
// every call site) gives kernels a uniform, greppable vocabulary.

package prim

import "golang.org/x/exp/constraints"

// Number is the scalar constraint used across the library: any integer
// or floating-point type. Complex types are intentionally excluded.
type Number interface {
	constraints.Integer | constraints.Float
}

// Plus returns the binary addition operator for T.
// Identity element: the zero value of T.
func Plus[T Number]() func(T, T) T {
	return func(a, b T) T { return a + b }
}

// Minus returns the binary subtraction operator for T (a - b).
// Used with Transform to derive per-row lengths from adjacent offsets.
func Minus[T Number]() func(T, T) T {
	return func(a, b T) T { return a - b }
}

// Multiplies returns the binary multiplication operator for T.
// Identity element: one.
func Multiplies[T Number]() func(T, T) T {
	return func(a, b T) T { return a * b }
}

// Maximum returns the binary max operator for any ordered T.
// Combined with InclusiveScan it implements the carry-forward pass that
// propagates the last scattered marker across a run of sentinel slots.
func Maximum[T constraints.Ordered]() func(T, T) T {
	return func(a, b T) T {
		if a > b {
			return a
		}

		return b
	}
}
