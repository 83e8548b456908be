// SPDX-License-Identifier: MIT

// Package coo: dense fallback representation.
// Dense is the reference counterpart of the sparse pipeline: a flat
// row-major array with a naive triple-loop multiply. It exists as the
// direct-accumulation fallback and as the oracle the sparse pipeline is
// tested against; nothing here is data-parallel on purpose.

package coo

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/spmat/prim"
)

// Operation tags for the dense facade.
const (
	opNewDense      = "NewDense"
	opDenseAt       = "Dense.At"
	opDenseSet      = "Dense.Set"
	opMultiplyDense = "MultiplyDense"
	opToDense       = "ToDense"
	opFromDense     = "FromDense"
)

// Dense is a rows×cols matrix stored as one flat row-major slice.
// The zero value is an empty 0×0 matrix.
type Dense[V prim.Number] struct {
	rows, cols int
	data       []V
}

// denseSize returns rows*cols and whether the int product is exact
// (no overflow). Callers must have checked both factors non-negative.
func denseSize(rows, cols int) (int, bool) {
	if rows == 0 || cols == 0 {
		return 0, true
	}
	total := rows * cols

	return total, total/rows == cols
}

// NewDense returns a zero-initialized rows×cols dense matrix.
//
// Errors: ErrBadShape when a dimension is negative or the element count
// rows·cols overflows int. Complexity: O(r·c).
func NewDense[V prim.Number](rows, cols int) (*Dense[V], error) {
	if rows < 0 || cols < 0 {
		return nil, cooErrorf(opNewDense, ErrBadShape)
	}
	total, ok := denseSize(rows, cols)
	if !ok {
		return nil, cooErrorf(opNewDense, ErrBadShape)
	}

	return &Dense[V]{rows: rows, cols: cols, data: make([]V, total)}, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (d *Dense[V]) Rows() int { return d.rows }

// Cols returns the number of columns. Complexity: O(1).
func (d *Dense[V]) Cols() int { return d.cols }

// At returns the element at (i, j).
//
// Errors: ErrOutOfRange. Complexity: O(1).
func (d *Dense[V]) At(i, j int) (V, error) {
	if i < 0 || i >= d.rows || j < 0 || j >= d.cols {
		return 0, cooErrorf(opDenseAt, ErrOutOfRange)
	}

	return d.data[i*d.cols+j], nil
}

// Set assigns v at (i, j).
//
// Errors: ErrOutOfRange. Complexity: O(1).
func (d *Dense[V]) Set(i, j int, v V) error {
	if i < 0 || i >= d.rows || j < 0 || j >= d.cols {
		return cooErrorf(opDenseSet, ErrOutOfRange)
	}
	d.data[i*d.cols+j] = v

	return nil
}

// Clone returns a deep copy. Complexity: O(r·c).
func (d *Dense[V]) Clone() *Dense[V] {
	return &Dense[V]{rows: d.rows, cols: d.cols, data: append([]V(nil), d.data...)}
}

// MultiplyDense computes the dense product a·b by direct triple-nested
// accumulation: C[i][j] = Σ_k A[i][k]·B[k][j]. Fixed i→j→k loop order,
// fully deterministic.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (a.Cols() != b.Rows()),
// ErrTooLarge (the product's element count overflows int).
// Complexity: O(rows(a)·cols(b)·cols(a)).
func MultiplyDense[V prim.Number](a, b *Dense[V]) (*Dense[V], error) {
	if a == nil || b == nil {
		return nil, cooErrorf(opMultiplyDense, ErrNilMatrix)
	}
	if a.cols != b.rows {
		return nil, cooErrorf(opMultiplyDense, ErrDimensionMismatch)
	}
	total, ok := denseSize(a.rows, b.cols)
	if !ok {
		return nil, cooErrorf(opMultiplyDense, ErrTooLarge)
	}

	c := &Dense[V]{rows: a.rows, cols: b.cols, data: make([]V, total)}
	for i := 0; i < a.rows; i++ {
		for j := 0; j < b.cols; j++ {
			var v V
			for k := 0; k < a.cols; k++ {
				v += a.data[i*a.cols+k] * b.data[k*b.cols+j]
			}
			c.data[i*b.cols+j] = v
		}
	}

	return c, nil
}

// ToDense materializes a sparse matrix densely. Duplicate coordinates
// accumulate by summation, matching their algebraic meaning.
//
// Errors: ErrNilMatrix, ErrTooLarge (the element count overflows int).
// Complexity: O(r·c + nnz).
func ToDense[Ix constraints.Integer, V prim.Number](m *Matrix[Ix, V]) (*Dense[V], error) {
	if m == nil {
		return nil, cooErrorf(opToDense, ErrNilMatrix)
	}
	total, ok := denseSize(m.rows, m.cols)
	if !ok {
		return nil, cooErrorf(opToDense, ErrTooLarge)
	}

	d := &Dense[V]{rows: m.rows, cols: m.cols, data: make([]V, total)}
	m.EachEntry(func(row, col Ix, v V) {
		d.data[int(row)*m.cols+int(col)] += v
	})

	return d, nil
}

// FromDense extracts the nonzero entries of a dense matrix into COO
// form. The row-major scan order makes the result row-grouped and
// column-sorted within each row — directly usable as a Multiply right
// operand.
//
// Errors: ErrNilMatrix, ErrBadShape (dimensions not addressable by Ix),
// ErrTooLarge (more nonzeros than Ix can count). Complexity: O(r·c).
func FromDense[Ix constraints.Integer, V prim.Number](d *Dense[V]) (*Matrix[Ix, V], error) {
	if d == nil {
		return nil, cooErrorf(opFromDense, ErrNilMatrix)
	}
	if err := ValidateDims[Ix](d.rows, d.cols); err != nil {
		return nil, cooErrorf(opFromDense, err)
	}

	m := &Matrix[Ix, V]{rows: d.rows, cols: d.cols}
	for i := 0; i < d.rows; i++ {
		for j := 0; j < d.cols; j++ {
			if v := d.data[i*d.cols+j]; v != 0 {
				m.rowIdx = append(m.rowIdx, Ix(i))
				m.colIdx = append(m.colIdx, Ix(j))
				m.vals = append(m.vals, v)
			}
		}
	}
	if !indexFits[Ix](len(m.vals)) {
		return nil, cooErrorf(opFromDense, ErrTooLarge)
	}

	return m, nil
}
