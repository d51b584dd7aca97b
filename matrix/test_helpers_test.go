// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Small, deterministic fixtures for factories and kernels.
//   • Entrywise assertions that work for either representation.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ringalg/matrix"
	"github.com/katalvlaran/ringalg/ring"
)

// hide wraps any Matrix and reports KindDense, forcing the dense fallback of
// sparse kernels while keeping the wrapped values.
type hide[T any] struct{ matrix.Matrix[T] }

func (hide[T]) Kind() matrix.Kind { return matrix.KindDense }

// MustDense builds a dense matrix from rows or fails the test.
func MustDense[T any](t *testing.T, rows [][]T) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.From(rows)
	require.NoError(t, err)

	return m
}

// MustSparse builds a sparse matrix from rows or fails the test.
func MustSparse[T any](t *testing.T, rows [][]T, r ring.Ring[T]) *matrix.Sparse[T] {
	t.Helper()
	m, err := matrix.SparseFrom(rows, r)
	require.NoError(t, err)

	return m
}

// RequireValues asserts that m holds exactly want (row-major), using Value.
func RequireValues[T any](t *testing.T, m matrix.Matrix[T], want [][]T) {
	t.Helper()
	require.Equal(t, matrix.MustIndexes(len(want)-1, len(want[0])-1), m.Size(), "size")
	for i, row := range want {
		for j, w := range row {
			got, err := m.Value(matrix.MustIndexes(i, j))
			require.NoError(t, err)
			require.Equal(t, w, got, "entry (%d,%d)", i, j)
		}
	}
}

// RequireEqual asserts entrywise equality under r.
func RequireEqual[T any](t *testing.T, want, got matrix.Matrix[T], r ring.Ring[T]) {
	t.Helper()
	eq, err := matrix.Equal(want, got, r)
	require.NoError(t, err)
	require.True(t, eq, "want %v\n got %v", want, got)
}

// RequireSparseInvariant asserts that no stored entry equals r.Zero().
func RequireSparseInvariant[T any](t *testing.T, m matrix.Matrix[T], r ring.Ring[T]) {
	t.Helper()
	require.Equal(t, matrix.KindSparse, m.Kind())
	for idx, v := range m.Map() {
		require.False(t, ring.IsZero(r, v), "stored zero at %s", idx)
	}
}

// RandomInts returns an n×n slice with roughly density·n² non-zero entries
// in [-5, 5], drawn from a seeded source.
func RandomInts(seed int64, n int, density float64) [][]int {
	rng := rand.New(rand.NewSource(seed))
	out := make([][]int, n)
	for i := range out {
		out[i] = make([]int, n)
		for j := range out[i] {
			if rng.Float64() < density {
				out[i][j] = rng.Intn(11) - 5
			}
		}
	}

	return out
}
