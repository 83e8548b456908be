// SPDX-License-Identifier: MIT

// Package coo: sparse×sparse multiplication as a five-stage pipeline of
// bulk data-parallel passes — no per-output-element loops, no
// random-access row scans:
//
//  1. short-circuit    — an empty operand yields an empty product;
//  2. row-indexing     — the right operand's row indices become a
//     compressed offset/length view;
//  3. expansion-sizing — a gather plus an exclusive sum decide, before
//     anything is computed, how many intermediate products exist and
//     where each left entry's contribution starts;
//  4. segment resolution & gather — a conditional scatter plus a
//     maximum scan reconstruct each slot's owning left entry, a
//     segmented sum reconstructs its right-entry storage position, and
//     gathers plus one multiply transform produce intermediate triples;
//  5. sort & compress  — a stable lexicographic (row, column) sort and
//     a unique-by-key pass that SUMS duplicate coordinates yield the
//     final matrix.
//
// Every pass is a prim call with a deterministic, order-preserving
// contract, so the pipeline is reentrant and its output reproducible.

package coo

import (
	"math"

	"golang.org/x/exp/constraints"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/spmat/prim"
)

// Operation name constants for unified error wrapping (no magic strings).
const (
	opNew                  = "New"
	opFromTriples          = "FromTriples"
	opIdentity             = "Identity"
	opEntry                = "Entry"
	opSort                 = "SortByRowColumn"
	opMultiply             = "Multiply"
	opMultiplyInto         = "MultiplyInto"
	opMultiplyMany         = "MultiplyMany"
	opIntermediateProducts = "IntermediateProducts"
	opIndicesToOffsets     = "IndicesToOffsets"
	opOffsetsToIndices     = "OffsetsToIndices"
)

// Multiply computes the sparse product a·b and returns it as a fresh
// matrix of dimensions a.Rows() × b.Cols().
//
// Requirements and behavior:
//   - a.Cols() must equal b.Rows(), else ErrDimensionMismatch.
//   - b must be row-grouped (nondecreasing row indices). Under the
//     default validation policy a violation fails with
//     ErrRowsNotGrouped; WithDefensiveSort regroups a private copy
//     instead; WithNoValidateInputs skips the check and makes the
//     precondition the caller's responsibility.
//   - an empty operand is not an error: the result has the correct
//     dimensions and zero entries.
//   - the result is ordered by (row, column) and duplicate-free;
//     products landing on the same coordinate are summed.
//   - the intermediate expansion can be quadratically larger than either
//     operand; ErrTooLarge reports a size that overflows Ix or exceeds
//     WithMaxIntermediate before any intermediate buffer is allocated.
//
// Complexity: O(P log P) where P is the intermediate product count
// (IntermediateProducts), plus O(nnz(a) + nnz(b) + rows(b)).
func Multiply[Ix constraints.Integer, V prim.Number](a, b *Matrix[Ix, V], opts ...Option) (*Matrix[Ix, V], error) {
	var c Matrix[Ix, V]
	if err := MultiplyInto(&c, a, b, opts...); err != nil {
		return nil, err
	}

	return &c, nil
}

// MultiplyInto computes a·b into c, discarding c's prior contents.
// The pipeline stages into private buffers and commits to c only on
// full success: after any error c is exactly as it was before the call.
// a and b are read-only throughout; c must not alias either operand's
// identity (passing c == a or c == b is fine, the commit is a swap).
//
// Errors and options: see Multiply.
func MultiplyInto[Ix constraints.Integer, V prim.Number](c, a, b *Matrix[Ix, V], opts ...Option) error {
	if c == nil {
		return cooErrorf(opMultiplyInto, ErrNilMatrix)
	}
	o := gatherOptions(opts...)

	res, err := multiplyPipeline(a, b, o)
	if err != nil {
		return err
	}
	*c = *res // commit; staging buffers become c's storage

	return nil
}

// MultiplyJob is one independent multiplication of a batch: C receives
// A·B on success and is untouched on failure.
type MultiplyJob[Ix constraints.Integer, V prim.Number] struct {
	A, B *Matrix[Ix, V]
	C    *Matrix[Ix, V]
}

// MultiplyMany runs a batch of independent multiplications, at most
// WithParallelism (default GOMAXPROCS) concurrently. Each job is a
// self-contained pipeline invocation — jobs share nothing, so
// concurrency is safe as long as the caller does not alias one C across
// jobs. The first error cancels nothing: every job runs to completion,
// failed jobs leave their C untouched, and the first error observed is
// returned.
//
// Complexity: the sum of the per-job Multiply costs, divided across
// workers.
func MultiplyMany[Ix constraints.Integer, V prim.Number](jobs []MultiplyJob[Ix, V], opts ...Option) error {
	o := gatherOptions(opts...)

	var g errgroup.Group
	g.SetLimit(o.effectiveParallelism())
	for i := range jobs {
		job := &jobs[i]
		g.Go(func() error {
			if job.C == nil {
				return cooErrorf(opMultiplyMany, ErrNilMatrix)
			}

			return MultiplyInto(job.C, job.A, job.B, opts...)
		})
	}

	return g.Wait()
}

// IntermediateProducts returns the exact number of intermediate
// products Multiply would expand: the sum over every entry of a of b's
// row length at that entry's column. Row *lengths* are order-
// independent, so no grouping precondition applies here.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrTooLarge (the count
// overflows int). Complexity: O(nnz(a) + nnz(b) + rows(b)).
func IntermediateProducts[Ix constraints.Integer, V prim.Number](a, b *Matrix[Ix, V]) (int, error) {
	if err := ValidateMultiplyShapes(a, b); err != nil {
		return 0, cooErrorf(opIntermediateProducts, err)
	}

	counts := make([]int, b.rows)
	for _, r := range b.rowIdx {
		counts[r]++
	}

	total := 0
	for _, j := range a.colIdx {
		n := counts[j]
		if total > math.MaxInt-n {
			return 0, cooErrorf(opIntermediateProducts, ErrTooLarge)
		}
		total += n
	}

	return total, nil
}

// multiplyPipeline is the staged kernel behind Multiply/MultiplyInto.
// It allocates and returns a fully formed result; it never mutates its
// operands.
func multiplyPipeline[Ix constraints.Integer, V prim.Number](a, b *Matrix[Ix, V], o Options) (*Matrix[Ix, V], error) {
	if err := ValidateMultiplyShapes(a, b); err != nil {
		return nil, cooErrorf(opMultiply, err)
	}

	// Stage 1 — short-circuit: zero entries on either side means a zero
	// product regardless of dimensions. A defined result, not an error.
	if a.NNZ() == 0 || b.NNZ() == 0 {
		return &Matrix[Ix, V]{rows: a.rows, cols: b.cols}, nil
	}

	// Row-grouping policy (storage precondition on b, see ErrRowsNotGrouped).
	rhs := b
	switch {
	case o.defensiveSort:
		if !b.IsRowGrouped() {
			rhs = b.Clone()
			if err := rhs.regroupRows(); err != nil {
				return nil, cooErrorf(opMultiply, err)
			}
		}
	case o.validateInputs:
		if !b.IsRowGrouped() {
			return nil, cooErrorf(opMultiply, ErrRowsNotGrouped)
		}
	}

	// Stage 2 — row-indexing: offsets and per-row lengths of rhs.
	bOffsets, err := IndicesToOffsets(rhs.rowIdx, rhs.rows)
	if err != nil {
		return nil, cooErrorf(opMultiply, err)
	}
	bRowLengths := make([]Ix, rhs.rows)
	if err = prim.Transform(bRowLengths, bOffsets[1:], bOffsets[:rhs.rows], prim.Minus[Ix]()); err != nil {
		return nil, cooErrorf(opMultiply, err)
	}

	// Stage 3 — expansion-sizing: each left entry (i,j) expands against
	// the |B(j,:)| entries of the matching right row.
	nnzA := a.NNZ()
	segLengths := make([]Ix, nnzA)
	if err = prim.Gather(segLengths, a.colIdx, bRowLengths); err != nil {
		return nil, cooErrorf(opMultiply, err)
	}

	total := 0
	for _, l := range segLengths {
		n := int(l)
		if total > math.MaxInt-n {
			return nil, cooErrorf(opMultiply, ErrTooLarge)
		}
		total += n
	}
	if !indexFits[Ix](total) {
		return nil, cooErrorf(opMultiply, ErrTooLarge)
	}
	if o.maxIntermediate > 0 && total > o.maxIntermediate {
		return nil, cooErrorf(opMultiply, ErrTooLarge)
	}

	outputPtr := make([]Ix, nnzA+1)
	if err = prim.ExclusiveScan(outputPtr[:nnzA], segLengths, 0, prim.Plus[Ix]()); err != nil {
		return nil, cooErrorf(opMultiply, err)
	}
	// The scan covers slots 0..nnzA-1; the final slot is derived
	// explicitly so the total is defined even though the scan buffer
	// stops one short.
	outputPtr[nnzA] = outputPtr[nnzA-1] + segLengths[nnzA-1]

	cooNNZ := total

	// Stage 4a — segment ids: expand the (offset, length) form into a
	// flat owner-index array via marker scatter + maximum carry-forward.
	segments := make([]Ix, cooNNZ)
	if err = OffsetsToIndices(outputPtr, segments); err != nil {
		return nil, cooErrorf(opMultiply, err)
	}

	// Stage 4b — gather locations: each segment's first slot starts at
	// the matching right row's storage offset; a segmented sum over ones
	// then walks one storage position per subsequent slot.
	gatherLoc := make([]Ix, cooNNZ)
	prim.Fill(gatherLoc, 1)
	rowStarts := make([]Ix, nnzA) // bOffsets[a.colIdx[n]] per left entry
	if err = prim.Gather(rowStarts, a.colIdx, bOffsets); err != nil {
		return nil, cooErrorf(opMultiply, err)
	}
	if err = prim.ScatterIf(rowStarts, outputPtr[:nnzA], segLengths, positive[Ix], gatherLoc); err != nil {
		return nil, cooErrorf(opMultiply, err)
	}
	if err = prim.SegmentedScan(gatherLoc, gatherLoc, segments, prim.Plus[Ix]()); err != nil {
		return nil, cooErrorf(opMultiply, err)
	}

	// Stage 4c — gather and multiply: intermediate triples (I, J, V).
	ri := make([]Ix, cooNNZ)
	ci := make([]Ix, cooNNZ)
	if err = prim.Gather(ri, segments, a.rowIdx); err != nil {
		return nil, cooErrorf(opMultiply, err)
	}
	if err = prim.Gather(ci, gatherLoc, rhs.colIdx); err != nil {
		return nil, cooErrorf(opMultiply, err)
	}

	av := make([]V, cooNNZ)
	bv := make([]V, cooNNZ)
	if err = prim.Gather(av, segments, a.vals); err != nil {
		return nil, cooErrorf(opMultiply, err)
	}
	if err = prim.Gather(bv, gatherLoc, rhs.vals); err != nil {
		return nil, cooErrorf(opMultiply, err)
	}
	vs := make([]V, cooNNZ)
	if err = prim.Transform(vs, av, bv, prim.Multiplies[V]()); err != nil {
		return nil, cooErrorf(opMultiply, err)
	}

	// Stage 5 — sort & compress: stable lexicographic (row, column)
	// order, then merge duplicate coordinates by summation.
	perm := make([]Ix, cooNNZ)
	if err = prim.SortPermutation2(ri, ci, perm); err != nil {
		return nil, cooErrorf(opMultiply, err)
	}
	sortedRI := make([]Ix, cooNNZ)
	sortedCI := make([]Ix, cooNNZ)
	sortedVS := make([]V, cooNNZ)
	if err = prim.Gather(sortedRI, perm, ri); err != nil {
		return nil, cooErrorf(opMultiply, err)
	}
	if err = prim.Gather(sortedCI, perm, ci); err != nil {
		return nil, cooErrorf(opMultiply, err)
	}
	if err = prim.Gather(sortedVS, perm, vs); err != nil {
		return nil, cooErrorf(opMultiply, err)
	}

	nnz, err := prim.UniquePairsByKeyReduce(sortedRI, sortedCI, sortedVS, prim.Plus[V]())
	if err != nil {
		return nil, cooErrorf(opMultiply, err)
	}

	return &Matrix[Ix, V]{
		rows:   a.rows,
		cols:   rhs.cols,
		rowIdx: sortedRI[:nnz:nnz],
		colIdx: sortedCI[:nnz:nnz],
		vals:   sortedVS[:nnz:nnz],
	}, nil
}
