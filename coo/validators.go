// SPDX-License-Identifier: MIT
// Package: coo
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating nil/shape/bounds checks here.
//  - Return sentinel errors wrapped with a validator tag so call sites can
//    match via errors.Is and still see where the check fired.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Bounds and grouping checks are single O(nnz) forward passes.

package coo

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/spmat/prim"
)

// validatorErrorf wraps an underlying sentinel with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// indexFits reports whether the non-negative int n is exactly
// representable by the index type Ix. The round-trip conversion catches
// truncation; the sign check catches overflow into the negative range of
// signed index types.
func indexFits[Ix constraints.Integer](n int) bool {
	if n < 0 {
		return false
	}

	return int(Ix(n)) == n && Ix(n) >= 0
}

// ValidateDims ensures rows and cols describe a legal shape for the
// index type Ix: both non-negative, and every addressable index
// (0..rows-1, 0..cols-1) representable by Ix.
//
// Errors: ErrBadShape. Complexity: O(1).
func ValidateDims[Ix constraints.Integer](rows, cols int) error {
	if rows < 0 || cols < 0 {
		return validatorErrorf("ValidateDims", ErrBadShape)
	}
	if rows > 0 && !indexFits[Ix](rows-1) {
		return validatorErrorf("ValidateDims: Rows", ErrBadShape)
	}
	if cols > 0 && !indexFits[Ix](cols-1) {
		return validatorErrorf("ValidateDims: Columns", ErrBadShape)
	}

	return nil
}

// ValidateTriples ensures the three parallel sequences share one length,
// that the entry count itself is representable by Ix (offset arithmetic
// downstream stores counts in Ix and must not wrap), and that every
// coordinate lies inside (rows × cols).
//
// Errors: ErrLengthMismatch, ErrTooLarge, ErrOutOfRange.
// Complexity: O(nnz).
func ValidateTriples[Ix constraints.Integer, V prim.Number](rows, cols int, rowIdx, colIdx []Ix, vals []V) error {
	if len(rowIdx) != len(colIdx) || len(rowIdx) != len(vals) {
		return validatorErrorf("ValidateTriples", ErrLengthMismatch)
	}
	if !indexFits[Ix](len(vals)) {
		return validatorErrorf("ValidateTriples: Count", ErrTooLarge)
	}

	r, c := uint64(rows), uint64(cols)
	for k := range rowIdx {
		if uint64(rowIdx[k]) >= r {
			return validatorErrorf("ValidateTriples: Row", ErrOutOfRange)
		}
		if uint64(colIdx[k]) >= c {
			return validatorErrorf("ValidateTriples: Column", ErrOutOfRange)
		}
	}

	return nil
}

// ValidateMultiplyShapes ensures both operands are non-nil and
// multiplication-conformable (a.Cols() == b.Rows()).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(1).
func ValidateMultiplyShapes[Ix constraints.Integer, V prim.Number](a, b *Matrix[Ix, V]) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateMultiplyShapes", ErrNilMatrix)
	}
	if a.cols != b.rows {
		return validatorErrorf("ValidateMultiplyShapes", ErrDimensionMismatch)
	}

	return nil
}

// ValidateRowGrouped ensures the matrix satisfies the row-grouped
// storage precondition of the multiply pipeline: row indices in
// nondecreasing order (column order within a row is unconstrained).
//
// Errors: ErrNilMatrix, ErrRowsNotGrouped. Complexity: O(nnz).
func ValidateRowGrouped[Ix constraints.Integer, V prim.Number](m *Matrix[Ix, V]) error {
	if m == nil {
		return validatorErrorf("ValidateRowGrouped", ErrNilMatrix)
	}
	if !m.IsRowGrouped() {
		return validatorErrorf("ValidateRowGrouped", ErrRowsNotGrouped)
	}

	return nil
}
