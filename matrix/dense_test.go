// Package matrix_test contains unit tests for the Dense (MatrixMap)
// representation.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ringalg/matrix"
	"github.com/katalvlaran/ringalg/ring"
)

// TestNewInvalidLength ensures New rejects non-positive dimensions and reports
// which one.
func TestNewInvalidLength(t *testing.T) {
	t.Parallel()
	gen := func(matrix.Indexes) int { return 1 }

	_, err := matrix.New(0, 5, gen)
	require.ErrorIs(t, err, matrix.ErrInvalidLength)
	var lenErr *matrix.InvalidLengthError
	require.True(t, errors.As(err, &lenErr))
	require.Equal(t, matrix.CauseRow, lenErr.Cause)
	require.Equal(t, 0, lenErr.Length)

	_, err = matrix.New(3, -2, gen)
	require.True(t, errors.As(err, &lenErr))
	require.Equal(t, matrix.CauseColumn, lenErr.Cause)
	require.Equal(t, -2, lenErr.Length)

	_, err = matrix.New[int](2, 2, nil)
	require.ErrorIs(t, err, matrix.ErrNilArgument)

	_, err = matrix.Constant(0, 7)
	require.ErrorIs(t, err, matrix.ErrInvalidLength)
	_, err = matrix.Identity(-1, 0, 1)
	require.ErrorIs(t, err, matrix.ErrInvalidLength)
}

// TestNewCallsGeneratorRowMajor checks one generator call per index, in order.
func TestNewCallsGeneratorRowMajor(t *testing.T) {
	t.Parallel()
	var calls []matrix.Indexes
	m, err := matrix.New(2, 2, func(idx matrix.Indexes) int {
		calls = append(calls, idx)
		return idx.Row()*10 + idx.Column()
	})
	require.NoError(t, err)
	require.Len(t, calls, 4)
	require.Equal(t, matrix.MustIndexes(0, 1), calls[1])
	RequireValues[int](t, m, [][]int{{0, 1}, {10, 11}})
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 2, m.Columns())
	require.Equal(t, matrix.KindDense, m.Kind())
}

func TestNewOfSize(t *testing.T) {
	t.Parallel()
	m, err := matrix.NewOfSize(matrix.MustIndexes(1, 2), func(matrix.Indexes) string { return "x" })
	require.NoError(t, err)
	require.Equal(t, matrix.MustIndexes(1, 2), m.Size())
	require.Len(t, m.Map(), 6)
}

// TestConstantVersusIdentity: constant(n, zero) and identity(n, zero, one)
// agree off the diagonal and differ exactly on it.
func TestConstantVersusIdentity(t *testing.T) {
	t.Parallel()
	r := ring.Int{}
	for n := 1; n <= 4; n++ {
		c, err := matrix.Constant(n, r.Zero())
		require.NoError(t, err)
		id, err := matrix.Identity(n, r.Zero(), r.Identity())
		require.NoError(t, err)
		for idx := range matrix.Stream(n, n) {
			cv, _ := c.Value(idx)
			iv, _ := id.Value(idx)
			if idx.AreDiagonal() {
				require.NotEqual(t, cv, iv, "n=%d %s", n, idx)
			} else {
				require.Equal(t, cv, iv, "n=%d %s", n, idx)
			}
		}
	}
}

func TestFromValidation(t *testing.T) {
	t.Parallel()
	_, err := matrix.From[int](nil)
	require.ErrorIs(t, err, matrix.ErrNilArgument)

	_, err = matrix.From([][]int{})
	require.ErrorIs(t, err, matrix.ErrInvalidLength)

	_, err = matrix.From([][]int{{}})
	var lenErr *matrix.InvalidLengthError
	require.True(t, errors.As(err, &lenErr))
	require.Equal(t, matrix.CauseColumn, lenErr.Cause)

	_, err = matrix.From([][]int{{1, 2}, {3}})
	require.True(t, errors.As(err, &lenErr))
	require.Equal(t, matrix.CauseColumn, lenErr.Cause)
	require.Equal(t, 1, lenErr.Length)
}

func TestFromCopiesInput(t *testing.T) {
	t.Parallel()
	src := [][]int{{1, 2}, {3, 4}}
	m := MustDense(t, src)
	src[0][0] = 99
	RequireValues[int](t, m, [][]int{{1, 2}, {3, 4}})

	out := m.Values()
	out[1][1] = -1
	RequireValues[int](t, m, [][]int{{1, 2}, {3, 4}})
}

func TestValueAndAt(t *testing.T) {
	t.Parallel()
	m := MustDense(t, [][]int{{1, 2, 3}, {4, 5, 6}})

	v, err := m.At(0, 0) // index 0 is admitted
	require.NoError(t, err)
	require.Equal(t, 1, v)
	v, err = m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 6, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(-1, 0)
	var lenErr *matrix.InvalidLengthError
	require.True(t, errors.As(err, &lenErr))
	require.Equal(t, matrix.CauseRow, lenErr.Cause)
	_, err = m.At(0, -4)
	require.True(t, errors.As(err, &lenErr))
	require.Equal(t, matrix.CauseColumn, lenErr.Cause)

	_, err = m.Value(matrix.MustIndexes(0, 3))
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestMapIsSnapshot(t *testing.T) {
	t.Parallel()
	m := MustDense(t, [][]int{{1, 2}, {3, 4}})
	snap := m.Map()
	require.Len(t, snap, 4)
	snap[matrix.MustIndexes(0, 0)] = 42
	delete(snap, matrix.MustIndexes(1, 1))

	RequireValues[int](t, m, [][]int{{1, 2}, {3, 4}})
	require.Len(t, m.Map(), 4)
}

func TestDenseString(t *testing.T) {
	t.Parallel()
	m := MustDense(t, [][]int{{1, 2}, {3, 4}})
	require.Equal(t,
		"MatrixMap [matrix={Indexes[row=0, column=0]=1, Indexes[row=0, column=1]=2, "+
			"Indexes[row=1, column=0]=3, Indexes[row=1, column=1]=4}]",
		m.String())
}

func TestDenseTranspose(t *testing.T) {
	t.Parallel()
	m := MustDense(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	RequireValues[int](t, m.Transpose(), [][]int{{1, 4}, {2, 5}, {3, 6}})
}
