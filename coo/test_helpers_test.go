// Package coo_test: shared helpers for the coo test files.
// Helpers fail the calling test on unexpected errors so test bodies stay
// focused on behavior, not plumbing.

package coo_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spmat/coo"
)

// mustMatrix builds a COO matrix from triples and fails the test on error.
func mustMatrix(t *testing.T, rows, cols int, ri, ci []int32, vs []float64) *coo.Matrix[int32, float64] {
	t.Helper()
	m, err := coo.FromTriples[int32, float64](rows, cols, ri, ci, vs)
	require.NoError(t, err, "FromTriples(%dx%d)", rows, cols)

	return m
}

// mustDense materializes a sparse matrix densely, failing the test on error.
func mustDense(t *testing.T, m *coo.Matrix[int32, float64]) *coo.Dense[float64] {
	t.Helper()
	d, err := coo.ToDense(m)
	require.NoError(t, err, "ToDense")

	return d
}

// mustAt reads one dense element, failing the test on error.
func mustAt(t *testing.T, d *coo.Dense[float64], i, j int) float64 {
	t.Helper()
	v, err := d.At(i, j)
	require.NoError(t, err, "Dense.At(%d,%d)", i, j)

	return v
}

// randSparse builds a random rows×cols matrix with nnz triples
// (duplicate coordinates allowed), stably sorted into row-grouped order
// so it is valid as a Multiply right operand. Values are small integers
// stored as floats, keeping the dense-oracle comparison exact.
func randSparse(t *testing.T, rng *rand.Rand, rows, cols, nnz int) *coo.Matrix[int32, float64] {
	t.Helper()

	ri := make([]int32, nnz)
	ci := make([]int32, nnz)
	vs := make([]float64, nnz)
	for k := 0; k < nnz; k++ {
		ri[k] = int32(rng.Intn(rows))
		ci[k] = int32(rng.Intn(cols))
		vs[k] = float64(rng.Intn(9) - 4) // [-4, 4], zeros included on purpose
	}

	m := mustMatrix(t, rows, cols, ri, ci, vs)
	require.NoError(t, m.SortByRowColumn())

	return m
}

// requireMatchesDenseOracle checks got == A·B by materializing both
// operands densely and multiplying with the naive reference kernel.
func requireMatchesDenseOracle(t *testing.T, got, a, b *coo.Matrix[int32, float64]) {
	t.Helper()

	want, err := coo.MultiplyDense(mustDense(t, a), mustDense(t, b))
	require.NoError(t, err, "MultiplyDense oracle")

	gotDense := mustDense(t, got)
	require.Equal(t, want.Rows(), gotDense.Rows())
	require.Equal(t, want.Cols(), gotDense.Cols())
	for i := 0; i < want.Rows(); i++ {
		for j := 0; j < want.Cols(); j++ {
			require.Equal(t, mustAt(t, want, i, j), mustAt(t, gotDense, i, j),
				"C[%d][%d] disagrees with the dense oracle", i, j)
		}
	}
}
