// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ringalg/matrix"
	"github.com/katalvlaran/ringalg/ring"
)

func TestSparseElidesZeros(t *testing.T) {
	t.Parallel()
	r := ring.Int{}
	s := MustSparse(t, [][]int{{0, 3, 0}, {0, 0, 0}, {7, 0, 0}}, r)

	require.Equal(t, 2, s.NonZero())
	require.Len(t, s.Map(), 2)
	require.Equal(t, matrix.MustIndexes(2, 2), s.Size())
	RequireSparseInvariant[int](t, s, r)
	RequireValues[int](t, s, [][]int{{0, 3, 0}, {0, 0, 0}, {7, 0, 0}})
}

// TestSparseSizeIsExplicit: an all-zero matrix still knows its size.
func TestSparseSizeIsExplicit(t *testing.T) {
	t.Parallel()
	s, err := matrix.SparseConstant(3, 0, ring.Int{})
	require.NoError(t, err)
	require.Zero(t, s.NonZero())
	require.Equal(t, matrix.MustIndexes(2, 2), s.Size())
}

func TestSparseFactoriesValidation(t *testing.T) {
	t.Parallel()
	r := ring.Int{}
	gen := func(matrix.Indexes) int { return 1 }

	_, err := matrix.NewSparse(0, 1, gen, r)
	require.ErrorIs(t, err, matrix.ErrInvalidLength)
	_, err = matrix.NewSparse[int](1, 1, nil, r)
	require.ErrorIs(t, err, matrix.ErrNilArgument)
	_, err = matrix.NewSparse[int](1, 1, gen, nil)
	require.ErrorIs(t, err, matrix.ErrNilArgument)
	_, err = matrix.SparseIdentity[int](2, nil)
	require.ErrorIs(t, err, matrix.ErrNilArgument)
	_, err = matrix.SparseIdentity[int](0, r)
	require.ErrorIs(t, err, matrix.ErrInvalidLength)
	_, err = matrix.SparseFrom([][]int{{1}, {2, 3}}, r)
	require.ErrorIs(t, err, matrix.ErrInvalidLength)
}

func TestSparseIdentityStoresDiagonalOnly(t *testing.T) {
	t.Parallel()
	s, err := matrix.SparseIdentity(4, ring.Int{})
	require.NoError(t, err)
	require.Equal(t, 4, s.NonZero())
	for idx := range s.Map() {
		require.True(t, idx.AreDiagonal())
	}
}

func TestSparseNewOfSize(t *testing.T) {
	t.Parallel()
	s, err := matrix.NewSparseOfSize(matrix.MustIndexes(0, 3), func(idx matrix.Indexes) int { return idx.Column() % 2 }, ring.Int{})
	require.NoError(t, err)
	require.Equal(t, matrix.MustIndexes(0, 3), s.Size())
	require.Equal(t, 2, s.NonZero())
}

// TestSparseValueOutOfRange: queries beyond the declared size fault, including
// indices that precede the size in row-major order.
func TestSparseValueOutOfRange(t *testing.T) {
	t.Parallel()
	s := MustSparse(t, [][]int{{1, 0}, {0, 0}}, ring.Int{})

	v, err := s.Value(matrix.MustIndexes(1, 1))
	require.NoError(t, err)
	require.Zero(t, v)

	_, err = s.Value(matrix.MustIndexes(0, 2))
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = s.Value(matrix.MustIndexes(2, 0))
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = s.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidLength)

	v, err = s.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, v)
}

// TestSparseUsesRingEquality: zero detection goes through the ring, so fresh
// *big.Int zeros are elided even though they are distinct pointers.
func TestSparseUsesRingEquality(t *testing.T) {
	t.Parallel()
	r := ring.BigInt{}
	s, err := matrix.NewSparse(2, 2, func(idx matrix.Indexes) *big.Int {
		if idx.AreDiagonal() {
			return big.NewInt(int64(idx.Row() + 1))
		}
		return new(big.Int)
	}, r)
	require.NoError(t, err)
	require.Equal(t, 2, s.NonZero())
	RequireSparseInvariant[*big.Int](t, s, r)
}

func TestSparseString(t *testing.T) {
	t.Parallel()
	r := ring.Int{}

	s := MustSparse(t, [][]int{{0, 0}, {0, 5}}, r)
	require.Equal(t, "SparseMatrix [matrix={Indexes[row=1, column=1]=5}]", s.String())

	many := MustSparse(t, [][]int{{0, 2, 0}, {3, 0, 0}, {0, 0, 4}}, r)
	require.Equal(t,
		"SparseMatrix [matrix={Indexes[row=0, column=1]=2, Indexes[row=1, column=0]=3, Indexes[row=2, column=2]=4}]",
		many.String())

	empty, err := matrix.SparseConstant(2, 0, r)
	require.NoError(t, err)
	require.Equal(t, "SparseMatrix [matrix={}]", empty.String())
}

func TestSparseEntriesOrdered(t *testing.T) {
	t.Parallel()
	s := MustSparse(t, [][]int{{0, 2}, {3, 4}}, ring.Int{})
	var got []matrix.Indexes
	for idx := range s.Entries() {
		got = append(got, idx)
	}
	require.Equal(t, []matrix.Indexes{matrix.MustIndexes(0, 1), matrix.MustIndexes(1, 0), matrix.MustIndexes(1, 1)}, got)
}

func TestSparseMapIsSnapshot(t *testing.T) {
	t.Parallel()
	s := MustSparse(t, [][]int{{1, 0}, {0, 2}}, ring.Int{})
	snap := s.Map()
	snap[matrix.MustIndexes(0, 1)] = 9
	require.Equal(t, 2, s.NonZero())
	v, err := s.Value(matrix.MustIndexes(0, 1))
	require.NoError(t, err)
	require.Zero(t, v)
}

// TestDenseSparseRoundTrip: dense → sparse → dense and sparse → dense → sparse
// preserve every value.
func TestDenseSparseRoundTrip(t *testing.T) {
	t.Parallel()
	r := ring.Int{}
	for seed := int64(1); seed <= 5; seed++ {
		vals := RandomInts(seed, 4, 0.4)
		d := MustDense(t, vals)
		s, err := d.ToSparse(r)
		require.NoError(t, err)
		RequireSparseInvariant[int](t, s, r)
		RequireValues[int](t, s.ToDense(), vals)

		back, err := s.ToDense().ToSparse(r)
		require.NoError(t, err)
		require.Equal(t, s.Map(), back.Map())
		require.Equal(t, s.String(), back.String())
	}
}

func TestSparseTranspose(t *testing.T) {
	t.Parallel()
	s := MustSparse(t, [][]int{{0, 1, 0}, {2, 0, 0}}, ring.Int{})
	tr := s.Transpose()
	require.Equal(t, matrix.MustIndexes(2, 1), tr.Size())
	RequireValues[int](t, tr, [][]int{{0, 2}, {1, 0}, {0, 0}})
	require.Equal(t, s.Ring(), tr.Ring())
}
