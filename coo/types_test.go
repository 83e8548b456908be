// Package coo_test: container construction, accessors and ordering helpers.

package coo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spmat/coo"
)

func TestNew_EmptyMatrix(t *testing.T) {
	t.Parallel()

	m, err := coo.New[int32, float64](3, 5)
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 5, m.Cols())
	require.Zero(t, m.NNZ())
	require.True(t, m.IsRowGrouped())
}

func TestNew_BadShape(t *testing.T) {
	t.Parallel()

	_, err := coo.New[int32, float64](-1, 2)
	require.ErrorIs(t, err, coo.ErrBadShape)

	// 300 rows are not addressable with an int8 index.
	_, err = coo.New[int8, float64](300, 2)
	require.ErrorIs(t, err, coo.ErrBadShape)

	// 128 rows fit an int8 index exactly (indices 0..127).
	_, err = coo.New[int8, float64](128, 128)
	require.NoError(t, err)
}

func TestFromTriples_ValidationAndCopy(t *testing.T) {
	t.Parallel()

	ri := []int32{0, 1}
	ci := []int32{1, 0}
	vs := []float64{2, 3}
	m := mustMatrix(t, 2, 2, ri, ci, vs)

	// The matrix owns copies: mutating the caller's slices changes nothing.
	ri[0] = 9
	gotRI, gotCI, gotVS := m.Triples()
	require.Equal(t, []int32{0, 1}, gotRI)
	require.Equal(t, []int32{1, 0}, gotCI)
	require.Equal(t, []float64{2, 3}, gotVS)

	_, err := coo.FromTriples[int32, float64](2, 2, []int32{0}, []int32{0, 1}, []float64{1})
	require.ErrorIs(t, err, coo.ErrLengthMismatch)

	_, err = coo.FromTriples[int32, float64](2, 2, []int32{2}, []int32{0}, []float64{1})
	require.ErrorIs(t, err, coo.ErrOutOfRange)

	_, err = coo.FromTriples[int32, float64](2, 2, []int32{0}, []int32{-1}, []float64{1})
	require.ErrorIs(t, err, coo.ErrOutOfRange)
}

func TestIdentity(t *testing.T) {
	t.Parallel()

	id, err := coo.Identity[int32, float64](3)
	require.NoError(t, err)
	require.Equal(t, 3, id.NNZ())
	id.EachEntry(func(row, col int32, v float64) {
		require.Equal(t, row, col)
		require.Equal(t, 1.0, v)
	})
}

func TestClone_Independence(t *testing.T) {
	t.Parallel()

	m := mustMatrix(t, 2, 2, []int32{1, 0}, []int32{0, 1}, []float64{1, 2})
	c := m.Clone()
	require.True(t, m.Equal(c))

	// Reordering the clone leaves the original untouched.
	require.NoError(t, c.SortByRowColumn())
	ri, _, _ := m.Triples()
	require.Equal(t, []int32{1, 0}, ri)
}

func TestEntry_Bounds(t *testing.T) {
	t.Parallel()

	m := mustMatrix(t, 2, 2, []int32{0}, []int32{1}, []float64{5})

	row, col, v, err := m.Entry(0)
	require.NoError(t, err)
	require.Equal(t, int32(0), row)
	require.Equal(t, int32(1), col)
	require.Equal(t, 5.0, v)

	_, _, _, err = m.Entry(1)
	require.ErrorIs(t, err, coo.ErrOutOfRange)
	_, _, _, err = m.Entry(-1)
	require.ErrorIs(t, err, coo.ErrOutOfRange)
}

func TestIsRowGrouped(t *testing.T) {
	t.Parallel()

	grouped := mustMatrix(t, 3, 3, []int32{0, 0, 2}, []int32{2, 0, 1}, []float64{1, 1, 1})
	require.True(t, grouped.IsRowGrouped())

	ungrouped := mustMatrix(t, 3, 3, []int32{2, 0}, []int32{0, 0}, []float64{1, 1})
	require.False(t, ungrouped.IsRowGrouped())
}

// TestSortByRowColumn_StableWithDuplicates: duplicates survive the sort
// and equal coordinates keep insertion order.
func TestSortByRowColumn_StableWithDuplicates(t *testing.T) {
	t.Parallel()

	m := mustMatrix(t, 2, 2,
		[]int32{1, 0, 1, 1},
		[]int32{1, 0, 1, 0},
		[]float64{10, 20, 30, 40})
	require.NoError(t, m.SortByRowColumn())

	ri, ci, vs := m.Triples()
	require.Equal(t, []int32{0, 1, 1, 1}, ri)
	require.Equal(t, []int32{0, 0, 1, 1}, ci)
	// (1,1) appeared twice: 10 before 30 in insertion order.
	require.Equal(t, []float64{20, 40, 10, 30}, vs)
	require.True(t, m.IsRowGrouped())
}

func TestEqual(t *testing.T) {
	t.Parallel()

	m := mustMatrix(t, 2, 2, []int32{0}, []int32{1}, []float64{3})
	same := mustMatrix(t, 2, 2, []int32{0}, []int32{1}, []float64{3})
	require.True(t, m.Equal(same))

	otherVal := mustMatrix(t, 2, 2, []int32{0}, []int32{1}, []float64{4})
	require.False(t, m.Equal(otherVal))
	otherShape := mustMatrix(t, 2, 3, []int32{0}, []int32{1}, []float64{3})
	require.False(t, m.Equal(otherShape))
	require.False(t, m.Equal(nil))
}

// TestFromTriples_EntryCountExceedsIndexRange: the stored entry count
// itself must be representable by the index type; duplicate-heavy input
// would otherwise wrap the Ix-typed offset arithmetic downstream.
func TestFromTriples_EntryCountExceedsIndexRange(t *testing.T) {
	t.Parallel()

	const nnz = 300 // > math.MaxInt8
	ri := make([]int8, nnz)
	ci := make([]int8, nnz)
	vs := make([]float64, nnz)

	// All entries sit on (0,0): the dims stay addressable by int8, only
	// the count overflows.
	_, err := coo.FromTriples[int8, float64](3, 1, ri, ci, vs)
	require.ErrorIs(t, err, coo.ErrTooLarge)

	// 127 entries fit int8 exactly.
	_, err = coo.FromTriples[int8, float64](3, 1, ri[:127], ci[:127], vs[:127])
	require.NoError(t, err)
}

// TestIdentity_EntryCountLimit: n indices 0..n-1 can be addressable
// while the count n itself is not.
func TestIdentity_EntryCountLimit(t *testing.T) {
	t.Parallel()

	id, err := coo.Identity[int8, float64](127)
	require.NoError(t, err)
	require.Equal(t, 127, id.NNZ())

	_, err = coo.Identity[int8, float64](128)
	require.ErrorIs(t, err, coo.ErrTooLarge)
}
