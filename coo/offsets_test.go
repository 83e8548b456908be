// Package coo_test: offsets conversions.

package coo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spmat/coo"
)

func TestIndicesToOffsets_Basic(t *testing.T) {
	t.Parallel()

	// Grouped rows: 0,0,1,3,3,3 over 4 rows (row 2 empty).
	offsets, err := coo.IndicesToOffsets([]int32{0, 0, 1, 3, 3, 3}, 4)
	require.NoError(t, err)
	require.Equal(t, []int32{0, 2, 3, 3, 6}, offsets)
}

func TestIndicesToOffsets_EmptyInput(t *testing.T) {
	t.Parallel()

	offsets, err := coo.IndicesToOffsets([]int32{}, 3)
	require.NoError(t, err)
	require.Equal(t, []int32{0, 0, 0, 0}, offsets)

	offsets, err = coo.IndicesToOffsets([]int32{}, 0)
	require.NoError(t, err)
	require.Equal(t, []int32{0}, offsets)
}

func TestIndicesToOffsets_Errors(t *testing.T) {
	t.Parallel()

	_, err := coo.IndicesToOffsets([]int32{0}, -1)
	require.ErrorIs(t, err, coo.ErrBadShape)

	_, err = coo.IndicesToOffsets([]int32{3}, 3)
	require.ErrorIs(t, err, coo.ErrOutOfRange)

	_, err = coo.IndicesToOffsets([]int32{-1}, 3)
	require.ErrorIs(t, err, coo.ErrOutOfRange)
}

func TestOffsetsToIndices_InverseOfGrouped(t *testing.T) {
	t.Parallel()

	rows := []int32{0, 0, 1, 3, 3, 3}
	offsets, err := coo.IndicesToOffsets(rows, 4)
	require.NoError(t, err)

	out := make([]int32, len(rows))
	require.NoError(t, coo.OffsetsToIndices(offsets, out))
	require.Equal(t, rows, out)
}

// TestOffsetsToIndices_LeadingEmptyRows pins the sentinel behavior: rows
// before the first occupied one never appear, because the carry-forward
// scan starts from the zero sentinel.
func TestOffsetsToIndices_LeadingEmptyRows(t *testing.T) {
	t.Parallel()

	// Rows 0 and 1 empty; rows 2 and 3 hold two entries each.
	offsets := []int32{0, 0, 0, 2, 4}
	out := make([]int32, 4)
	require.NoError(t, coo.OffsetsToIndices(offsets, out))
	require.Equal(t, []int32{2, 2, 3, 3}, out)
}

func TestOffsetsToIndices_Errors(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, coo.OffsetsToIndices([]int32{}, []int32{}), coo.ErrBadShape)
	require.ErrorIs(t, coo.OffsetsToIndices([]int32{0, 2}, make([]int32, 1)), coo.ErrLengthMismatch)
}

func TestOffsetsToIndices_Empty(t *testing.T) {
	t.Parallel()

	require.NoError(t, coo.OffsetsToIndices([]int32{0, 0, 0}, []int32{}))
}
