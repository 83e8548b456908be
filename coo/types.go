// SPDX-License-Identifier: MIT

// Package coo: the coordinate-form sparse matrix container.
// This file holds the Matrix type, its constructors and accessors, and
// the ordering helpers (IsRowGrouped, SortByRowColumn). Kernels live in
// dedicated files (multiply.go, offsets.go, dense.go) to keep roles clean.

package coo

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/spmat/prim"
)

// Matrix is a sparse matrix in coordinate (COO) form: three parallel
// sequences rowIdx/colIdx/vals of one shared length, plus dimensions.
//
// Invariants:
//   - every row index lies in [0, Rows()), every column index in
//     [0, Cols()), and the entry count is representable by Ix —
//     enforced at construction;
//   - no ordering is required of the triples, and duplicate (row,
//     column) pairs are permitted; outputs of Multiply are additionally
//     ordered by (row, column) with no duplicates.
//
// The zero value is an empty 0×0 matrix, valid as a Multiply destination.
// Matrix is generic over the index width Ix and the scalar type V.
type Matrix[Ix constraints.Integer, V prim.Number] struct {
	rows, cols int

	rowIdx []Ix
	colIdx []Ix
	vals   []V
}

// New returns an empty rows×cols matrix with no entries.
//
// Errors: ErrBadShape when a dimension is negative or not addressable
// by Ix. Complexity: O(1).
func New[Ix constraints.Integer, V prim.Number](rows, cols int) (*Matrix[Ix, V], error) {
	if err := ValidateDims[Ix](rows, cols); err != nil {
		return nil, cooErrorf(opNew, err)
	}

	return &Matrix[Ix, V]{rows: rows, cols: cols}, nil
}

// FromTriples builds a rows×cols matrix from parallel coordinate
// sequences. The slices are copied; the caller keeps ownership of its
// arguments. Entry order is preserved exactly — FromTriples never sorts
// or merges (duplicates are legal COO input).
//
// Errors: ErrBadShape, ErrLengthMismatch, ErrTooLarge (entry count not
// representable by Ix), ErrOutOfRange. Complexity: O(nnz).
func FromTriples[Ix constraints.Integer, V prim.Number](rows, cols int, rowIdx, colIdx []Ix, vals []V) (*Matrix[Ix, V], error) {
	if err := ValidateDims[Ix](rows, cols); err != nil {
		return nil, cooErrorf(opFromTriples, err)
	}
	if err := ValidateTriples(rows, cols, rowIdx, colIdx, vals); err != nil {
		return nil, cooErrorf(opFromTriples, err)
	}

	m := &Matrix[Ix, V]{
		rows:   rows,
		cols:   cols,
		rowIdx: append([]Ix(nil), rowIdx...),
		colIdx: append([]Ix(nil), colIdx...),
		vals:   append([]V(nil), vals...),
	}

	return m, nil
}

// Identity returns the n×n identity matrix: n entries, (i,i) = 1,
// already row-grouped and column-sorted.
//
// Errors: ErrBadShape; ErrTooLarge when the n entries are not countable
// by Ix (dims need indices up to n-1, counts need n itself).
// Complexity: O(n).
func Identity[Ix constraints.Integer, V prim.Number](n int) (*Matrix[Ix, V], error) {
	if err := ValidateDims[Ix](n, n); err != nil {
		return nil, cooErrorf(opIdentity, err)
	}
	if !indexFits[Ix](n) {
		return nil, cooErrorf(opIdentity, ErrTooLarge)
	}

	m := &Matrix[Ix, V]{
		rows:   n,
		cols:   n,
		rowIdx: make([]Ix, n),
		colIdx: make([]Ix, n),
		vals:   make([]V, n),
	}
	prim.Iota(m.rowIdx, 0)
	prim.Iota(m.colIdx, 0)
	prim.Fill(m.vals, 1)

	return m, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Matrix[Ix, V]) Rows() int { return m.rows }

// Cols returns the number of columns. Complexity: O(1).
func (m *Matrix[Ix, V]) Cols() int { return m.cols }

// NNZ returns the number of stored entries (duplicates counted).
// Complexity: O(1).
func (m *Matrix[Ix, V]) NNZ() int { return len(m.vals) }

// Entry returns the k-th stored triple in storage order.
//
// Errors: ErrOutOfRange when k is outside [0, NNZ()). Complexity: O(1).
func (m *Matrix[Ix, V]) Entry(k int) (row, col Ix, v V, err error) {
	if k < 0 || k >= len(m.vals) {
		return 0, 0, 0, cooErrorf(opEntry, ErrOutOfRange)
	}

	return m.rowIdx[k], m.colIdx[k], m.vals[k], nil
}

// EachEntry calls fn for every stored triple in storage order.
// Complexity: O(nnz).
func (m *Matrix[Ix, V]) EachEntry(fn func(row, col Ix, v V)) {
	for k := range m.vals {
		fn(m.rowIdx[k], m.colIdx[k], m.vals[k])
	}
}

// Triples returns copies of the three parallel sequences in storage
// order. Mutating the returned slices does not affect the matrix.
// Complexity: O(nnz).
func (m *Matrix[Ix, V]) Triples() (rowIdx, colIdx []Ix, vals []V) {
	return append([]Ix(nil), m.rowIdx...),
		append([]Ix(nil), m.colIdx...),
		append([]V(nil), m.vals...)
}

// Clone returns a deep copy, independent of the original.
// Complexity: O(nnz).
func (m *Matrix[Ix, V]) Clone() *Matrix[Ix, V] {
	return &Matrix[Ix, V]{
		rows:   m.rows,
		cols:   m.cols,
		rowIdx: append([]Ix(nil), m.rowIdx...),
		colIdx: append([]Ix(nil), m.colIdx...),
		vals:   append([]V(nil), m.vals...),
	}
}

// Equal reports whether m and other have identical dimensions and
// identical triples in identical storage order. It is an exact,
// order-sensitive comparison (sort both sides first for a set compare).
// Complexity: O(nnz).
func (m *Matrix[Ix, V]) Equal(other *Matrix[Ix, V]) bool {
	if other == nil || m.rows != other.rows || m.cols != other.cols || len(m.vals) != len(other.vals) {
		return false
	}
	for k := range m.vals {
		if m.rowIdx[k] != other.rowIdx[k] || m.colIdx[k] != other.colIdx[k] || m.vals[k] != other.vals[k] {
			return false
		}
	}

	return true
}

// IsRowGrouped reports whether the row-index sequence is nondecreasing —
// the storage precondition the multiply pipeline places on its right
// operand. Column order within a row is unconstrained. An empty matrix
// is trivially grouped. Complexity: O(nnz).
func (m *Matrix[Ix, V]) IsRowGrouped() bool {
	for k := 1; k < len(m.rowIdx); k++ {
		if m.rowIdx[k] < m.rowIdx[k-1] {
			return false
		}
	}

	return true
}

// SortByRowColumn stably reorders the stored triples into lexicographic
// (row, column) order in place. Duplicates are kept (use Multiply's
// compression, not this, for algebraic merging); equal coordinates keep
// their original relative order.
//
// Complexity: O(nnz log nnz). Errors: none in practice; any internal
// primitive failure is reported verbatim.
func (m *Matrix[Ix, V]) SortByRowColumn() error {
	perm := make([]Ix, len(m.vals))
	if err := prim.SortPermutation2(m.rowIdx, m.colIdx, perm); err != nil {
		return cooErrorf(opSort, err)
	}

	return m.applyPermutation(perm, opSort)
}

// regroupRows stably reorders triples by row index only, preserving the
// within-row column order. Used by the defensive-sort pipeline path.
func (m *Matrix[Ix, V]) regroupRows() error {
	perm := make([]Ix, len(m.vals))
	if err := prim.SortPermutation(m.rowIdx, perm); err != nil {
		return cooErrorf(opSort, err)
	}

	return m.applyPermutation(perm, opSort)
}

// applyPermutation gathers all three sequences through perm into fresh
// storage and commits the result.
func (m *Matrix[Ix, V]) applyPermutation(perm []Ix, tag string) error {
	n := len(m.vals)
	ri := make([]Ix, n)
	ci := make([]Ix, n)
	vs := make([]V, n)

	if err := prim.Gather(ri, perm, m.rowIdx); err != nil {
		return cooErrorf(tag, err)
	}
	if err := prim.Gather(ci, perm, m.colIdx); err != nil {
		return cooErrorf(tag, err)
	}
	if err := prim.Gather(vs, perm, m.vals); err != nil {
		return cooErrorf(tag, err)
	}

	m.rowIdx, m.colIdx, m.vals = ri, ci, vs

	return nil
}
