// SPDX-License-Identifier: MIT

// Package coo: compressed row-offset derivation and its inverse.
// RowOffsets is an ephemeral view over a row-grouped coordinate
// sequence: offsets[r] is the position of the first entry of row r and
// offsets[numRows] the total entry count. It is recomputed per call and
// never cached.

package coo

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/spmat/prim"
)

// IndicesToOffsets converts a row-index sequence into its compressed
// offset form of length numRows+1: a per-row occurrence count followed
// by an exclusive sum, so offsets[r+1]-offsets[r] is row r's entry
// count and offsets[numRows] == len(rowIndices).
//
// The counts (and therefore the derived row lengths) are correct for
// ANY entry order; the offsets are positional — usable as gather bases —
// only when the sequence is row-grouped (nondecreasing row indices).
// Callers that need positions must enforce that precondition themselves;
// this function does not check it.
//
// Errors: ErrBadShape (numRows < 0), ErrTooLarge (the entry count is not
// representable by Ix, so counts or offsets would wrap), ErrOutOfRange
// (an index outside [0, numRows)). Complexity: O(nnz + numRows).
func IndicesToOffsets[Ix constraints.Integer](rowIndices []Ix, numRows int) ([]Ix, error) {
	if numRows < 0 {
		return nil, cooErrorf(opIndicesToOffsets, ErrBadShape)
	}
	if !indexFits[Ix](len(rowIndices)) {
		return nil, cooErrorf(opIndicesToOffsets, ErrTooLarge)
	}

	// Prefix-count pass: histogram of row occupancy.
	counts := make([]Ix, numRows)
	limit := uint64(numRows)
	for _, r := range rowIndices {
		if uint64(r) >= limit {
			return nil, cooErrorf(opIndicesToOffsets, ErrOutOfRange)
		}
		counts[r]++
	}

	offsets := make([]Ix, numRows+1)
	if err := prim.ExclusiveScan(offsets[:numRows], counts, 0, prim.Plus[Ix]()); err != nil {
		return nil, cooErrorf(opIndicesToOffsets, err)
	}
	offsets[numRows] = Ix(len(rowIndices))

	return offsets, nil
}

// OffsetsToIndices expands a compressed offset sequence back into the
// flat per-entry index form: indices[offsets[r]:offsets[r+1]] = r for
// every row r. It is the mark-then-scan composition — scatter each
// non-empty row's id into its first slot, then carry markers forward
// with a maximum scan — and the same composition reconstructs segment
// ownership inside the multiply pipeline.
//
// Preconditions: offsets nondecreasing with offsets[0] == 0 (as produced
// by IndicesToOffsets over grouped input); len(indices) must equal the
// total offsets[len(offsets)-1].
//
// Errors: ErrBadShape (empty offsets), ErrLengthMismatch.
// Complexity: O(len(indices) + rows).
func OffsetsToIndices[Ix constraints.Integer](offsets []Ix, indices []Ix) error {
	if len(offsets) < 1 {
		return cooErrorf(opOffsetsToIndices, ErrBadShape)
	}
	rows := len(offsets) - 1
	if len(indices) != int(offsets[rows]) {
		return cooErrorf(opOffsetsToIndices, ErrLengthMismatch)
	}

	lengths := make([]Ix, rows)
	if err := prim.Transform(lengths, offsets[1:], offsets[:rows], prim.Minus[Ix]()); err != nil {
		return cooErrorf(opOffsetsToIndices, err)
	}

	ids := make([]Ix, rows)
	prim.Iota(ids, 0)
	prim.Fill(indices, 0) // sentinel slots for the carry-forward scan

	if err := prim.ScatterIf(ids, offsets[:rows], lengths, positive[Ix], indices); err != nil {
		return cooErrorf(opOffsetsToIndices, err)
	}
	if err := prim.InclusiveScan(indices, indices, prim.Maximum[Ix]()); err != nil {
		return cooErrorf(opOffsetsToIndices, err)
	}

	return nil
}

// positive is the stencil predicate shared by the mark-then-scan
// expansions: only rows/segments with at least one slot scatter a marker.
func positive[Ix constraints.Integer](v Ix) bool { return v > 0 }
