// SPDX-License-Identifier: MIT
// Package coo: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the coo
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error
// conditions; panics are reserved for programmer errors in option
// constructors.

package coo

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "coo: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with cooErrorf(tag, ErrX) at the
// facade — callers will still use errors.Is to match.

var (
	// ErrNilMatrix indicates that a nil *Matrix or *Dense (receiver or
	// argument) was passed where a value is required.
	ErrNilMatrix = errors.New("coo: nil matrix")

	// ErrBadShape is returned when requested dimensions are invalid:
	// negative, or too large to be addressed by the chosen index type.
	ErrBadShape = errors.New("coo: invalid shape")

	// ErrOutOfRange indicates a row or column index outside the matrix
	// dimensions, or an entry ordinal outside [0, NNZ).
	ErrOutOfRange = errors.New("coo: index out of range")

	// ErrLengthMismatch indicates that the parallel row/column/value
	// sequences handed to a constructor do not share one length.
	ErrLengthMismatch = errors.New("coo: triple sequences length mismatch")

	// ErrDimensionMismatch indicates incompatible operand dimensions:
	// Multiply requires a.Cols() == b.Rows().
	ErrDimensionMismatch = errors.New("coo: dimension mismatch")

	// ErrRowsNotGrouped indicates that the right-hand operand's row
	// indices are not in nondecreasing order, violating the row-grouped
	// storage precondition of the multiply pipeline. Enable
	// WithDefensiveSort to regroup a private copy instead of failing.
	ErrRowsNotGrouped = errors.New("coo: row indices not grouped")

	// ErrTooLarge indicates an entry count the index type cannot
	// represent — stored triples at construction, a dense extraction's
	// nonzero count, or the intermediate product count of a
	// multiplication (also returned when the count exceeds the
	// configured WithMaxIntermediate cap). The call fails outright;
	// nothing is allocated or written.
	ErrTooLarge = errors.New("coo: entry count too large")
)

// cooErrorf wraps err with an operation tag, preserving the original error
// via %w so errors.Is keeps matching the sentinel. Call only with a
// non-nil err.
func cooErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
