// Package prim: sentinel error set.
// All primitives MUST return these sentinels (optionally wrapped with an
// operation tag via fmt.Errorf("Op: %w", ...)) and tests MUST check them
// via errors.Is. Primitives never panic on user-supplied slices.

package prim

import "errors"

var (
	// ErrLengthMismatch indicates that the slices handed to a primitive
	// do not have the lengths its contract requires (e.g. len(dst) !=
	// len(indices) for Gather, or len(keys) != len(vals) for
	// UniqueByKeyReduce).
	ErrLengthMismatch = errors.New("prim: slice length mismatch")

	// ErrIndexOutOfRange indicates that an index sequence referenced a
	// position outside the source (Gather) or destination (Scatter)
	// slice. The primitive stops at the first offending index and leaves
	// the destination partially written; callers that need all-or-nothing
	// semantics must stage into a scratch slice.
	ErrIndexOutOfRange = errors.New("prim: index out of range")

	// ErrNilOperator indicates that a combining operator or predicate
	// required by the primitive was nil.
	ErrNilOperator = errors.New("prim: nil operator")
)
