// SPDX-License-Identifier: MIT

// Package coo: incremental construction of COO matrices.
// Builder validates every triple at ingestion (fail-fast, sentinel
// errors) and emits an independent Matrix on Build. Insertion order is
// preserved exactly; duplicates are legal and kept — Multiply's
// compression, not the builder, performs algebraic merging.

package coo

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/spmat/prim"
)

// Builder tags for error wrapping.
const (
	opNewBuilder   = "NewBuilder"
	opBuilderAdd   = "Builder.Add"
	opBuilderBuild = "Builder.Build"
)

// Builder accumulates coordinate triples for a rows×cols matrix.
// The zero value is not usable; construct via NewBuilder.
type Builder[Ix constraints.Integer, V prim.Number] struct {
	rows, cols int

	rowIdx []Ix
	colIdx []Ix
	vals   []V
}

// NewBuilder returns an empty builder for a rows×cols matrix.
//
// Errors: ErrBadShape. Complexity: O(1).
func NewBuilder[Ix constraints.Integer, V prim.Number](rows, cols int) (*Builder[Ix, V], error) {
	if err := ValidateDims[Ix](rows, cols); err != nil {
		return nil, cooErrorf(opNewBuilder, err)
	}

	return &Builder[Ix, V]{rows: rows, cols: cols}, nil
}

// Reserve grows the builder's capacity to hold at least n triples,
// avoiding reallocation during bulk ingestion. Complexity: O(current).
func (b *Builder[Ix, V]) Reserve(n int) {
	if n <= cap(b.vals) {
		return
	}

	rowIdx := make([]Ix, len(b.rowIdx), n)
	copy(rowIdx, b.rowIdx)
	colIdx := make([]Ix, len(b.colIdx), n)
	copy(colIdx, b.colIdx)
	vals := make([]V, len(b.vals), n)
	copy(vals, b.vals)
	b.rowIdx, b.colIdx, b.vals = rowIdx, colIdx, vals
}

// Add appends one triple. Duplicate coordinates are permitted.
//
// Errors: ErrOutOfRange when (row, col) lies outside the shape;
// ErrTooLarge when one more triple would make the entry count
// unrepresentable by Ix. Complexity: amortized O(1).
func (b *Builder[Ix, V]) Add(row, col Ix, v V) error {
	if uint64(row) >= uint64(b.rows) {
		return cooErrorf(opBuilderAdd, ErrOutOfRange)
	}
	if uint64(col) >= uint64(b.cols) {
		return cooErrorf(opBuilderAdd, ErrOutOfRange)
	}
	if !indexFits[Ix](len(b.vals) + 1) {
		return cooErrorf(opBuilderAdd, ErrTooLarge)
	}

	b.rowIdx = append(b.rowIdx, row)
	b.colIdx = append(b.colIdx, col)
	b.vals = append(b.vals, v)

	return nil
}

// Len returns the number of triples added so far. Complexity: O(1).
func (b *Builder[Ix, V]) Len() int { return len(b.vals) }

// Build emits the accumulated triples as an independent Matrix in
// insertion order. The builder remains usable and unchanged; later Adds
// do not affect matrices already built.
//
// Complexity: O(nnz).
func (b *Builder[Ix, V]) Build() (*Matrix[Ix, V], error) {
	m, err := FromTriples(b.rows, b.cols, b.rowIdx, b.colIdx, b.vals)
	if err != nil {
		// Triples were validated at Add; only a programmer error in this
		// package could trip this.
		return nil, cooErrorf(opBuilderBuild, err)
	}

	return m, nil
}
