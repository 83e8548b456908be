package prim_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spmat/prim"
)

func TestUniqueByKeyReduce_MergesRuns(t *testing.T) {
	t.Parallel()

	keys := []int32{1, 1, 2, 3, 3, 3}
	vals := []float64{1, 2, 5, 1, 1, 1}
	n, err := prim.UniqueByKeyReduce(keys, vals, prim.Plus[float64]())
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, []int32{1, 2, 3}, keys[:n])
	require.Equal(t, []float64{3, 5, 3}, vals[:n])
}

// TestUniqueByKeyReduce_AdjacentOnly pins that only consecutive
// duplicates merge; unsorted input keeps repeated keys apart.
func TestUniqueByKeyReduce_AdjacentOnly(t *testing.T) {
	t.Parallel()

	keys := []int32{1, 2, 1}
	vals := []float64{10, 20, 30}
	n, err := prim.UniqueByKeyReduce(keys, vals, prim.Plus[float64]())
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, []int32{1, 2, 1}, keys[:n])
}

func TestUniqueByKeyReduce_Empty(t *testing.T) {
	t.Parallel()

	n, err := prim.UniqueByKeyReduce([]int32{}, []float64{}, prim.Plus[float64]())
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestUniquePairsByKeyReduce_MergesPairRuns(t *testing.T) {
	t.Parallel()

	rows := []int32{0, 0, 0, 1, 1}
	cols := []int32{0, 0, 1, 1, 1}
	vals := []float64{2, 3, 4, 5, 6}
	n, err := prim.UniquePairsByKeyReduce(rows, cols, vals, prim.Plus[float64]())
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, []int32{0, 0, 1}, rows[:n])
	require.Equal(t, []int32{0, 1, 1}, cols[:n])
	require.Equal(t, []float64{5, 4, 11}, vals[:n])
}

// TestUniquePairsByKeyReduce_PairEquality checks that equality requires
// both key components: equal rows with differing cols never merge.
func TestUniquePairsByKeyReduce_PairEquality(t *testing.T) {
	t.Parallel()

	rows := []int32{4, 4, 4}
	cols := []int32{0, 1, 2}
	vals := []float64{1, 1, 1}
	n, err := prim.UniquePairsByKeyReduce(rows, cols, vals, prim.Plus[float64]())
	require.NoError(t, err)
	require.Equal(t, 3, n)
}

func TestUniqueByKeyReduce_Errors(t *testing.T) {
	t.Parallel()

	_, err := prim.UniqueByKeyReduce([]int32{1}, []float64{1, 2}, prim.Plus[float64]())
	require.ErrorIs(t, err, prim.ErrLengthMismatch)

	_, err = prim.UniqueByKeyReduce([]int32{1}, []float64{1}, nil)
	require.ErrorIs(t, err, prim.ErrNilOperator)

	_, err = prim.UniquePairsByKeyReduce([]int32{1}, []int32{1, 2}, []float64{1}, prim.Plus[float64]())
	require.ErrorIs(t, err, prim.ErrLengthMismatch)

	_, err = prim.UniquePairsByKeyReduce([]int32{1}, []int32{1}, []float64{1}, nil)
	require.ErrorIs(t, err, prim.ErrNilOperator)
}
