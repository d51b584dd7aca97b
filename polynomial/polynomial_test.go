// SPDX-License-Identifier: MIT

package polynomial_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ringalg/polynomial"
	"github.com/katalvlaran/ringalg/ring"
)

func TestFromCopiesAndKeepsLength(t *testing.T) {
	t.Parallel()
	in := []int{0, 0, 1, 2}
	p := polynomial.From(in)
	in[2] = 9

	require.Equal(t, 4, p.Len())
	require.Equal(t, 3, p.Degree())
	require.Equal(t, []int{0, 0, 1, 2}, p.Coefficients())

	out := p.Coefficients()
	out[0] = 7
	require.Equal(t, []int{0, 0, 1, 2}, p.Coefficients())

	empty := polynomial.From[int](nil)
	require.Zero(t, empty.Len())
	require.Equal(t, -1, empty.Degree())
	require.Equal(t, "[]", empty.String())
}

func TestCoefficient(t *testing.T) {
	t.Parallel()
	p := polynomial.From([]int{4, 5})
	c, err := p.Coefficient(0)
	require.NoError(t, err)
	require.Equal(t, 4, c)

	_, err = p.Coefficient(2)
	require.ErrorIs(t, err, polynomial.ErrOutOfRange)
	_, err = p.Coefficient(-1)
	require.ErrorIs(t, err, polynomial.ErrOutOfRange)
}

func TestIterators(t *testing.T) {
	t.Parallel()
	p := polynomial.From([]int{1, 2, 3})

	var fwd, bwd []int
	for i, c := range p.All() {
		require.Equal(t, i+1, c)
		fwd = append(fwd, c)
	}
	for _, c := range p.Backward() {
		bwd = append(bwd, c)
		if len(bwd) == 2 {
			break
		}
	}
	require.Equal(t, []int{1, 2, 3}, fwd)
	require.Equal(t, []int{3, 2}, bwd)
}

func TestString(t *testing.T) {
	t.Parallel()
	require.Equal(t, "[1, 3, 2]", polynomial.From([]int{1, 3, 2}).String())
	require.Equal(t, "[0.5]", polynomial.From([]float64{0.5}).String())
}

func TestPlus(t *testing.T) {
	t.Parallel()
	r := ring.Int{}
	tests := []struct {
		name string
		a, b []int
		want []int
	}{
		{"same length", []int{1, 2}, []int{3, 4}, []int{4, 6}},
		// x²+2x+3 + (x+1): aligned at the constant term
		{"longer first", []int{1, 2, 3}, []int{1, 1}, []int{1, 3, 4}},
		{"longer second", []int{5}, []int{1, 0, 0}, []int{1, 0, 5}},
		{"empty", nil, []int{1, 2}, []int{1, 2}},
		{"both empty", nil, nil, nil},
		{"cancellation keeps length", []int{1, 2}, []int{-1, 0}, []int{0, 2}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a, b := polynomial.From(tc.a), polynomial.From(tc.b)
			got, err := a.Plus(b, r)
			require.NoError(t, err)
			require.Equal(t, len(tc.want), got.Len())
			if len(tc.want) > 0 {
				require.Equal(t, tc.want, got.Coefficients())
			}

			// commutative
			rev, err := b.Plus(a, r)
			require.NoError(t, err)
			require.Equal(t, got.Coefficients(), rev.Coefficients())
		})
	}
}

func TestTimes(t *testing.T) {
	t.Parallel()
	r := ring.Int{}
	tests := []struct {
		name string
		a, b []int
		want []int
	}{
		// (x+2)(x+1) = x²+3x+2
		{"linear factors", []int{1, 2}, []int{1, 1}, []int{1, 3, 2}},
		// (x²+1)(x-1) = x³-x²+x-1
		{"unequal lengths", []int{1, 0, 1}, []int{1, -1}, []int{1, -1, 1, -1}},
		{"constant", []int{3}, []int{1, 2, 3}, []int{3, 6, 9}},
		{"leading zeros kept", []int{0, 1}, []int{0, 1}, []int{0, 0, 1}},
		{"empty with long", nil, []int{1, 2, 3}, []int{0, 0}},
		{"empty with constant", nil, []int{7}, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := polynomial.From(tc.a).Times(polynomial.From(tc.b), r)
			require.NoError(t, err)
			require.Equal(t, len(tc.want), got.Len())
			if len(tc.want) > 0 {
				require.Equal(t, tc.want, got.Coefficients())
			}
		})
	}
}

func TestTimesBigInt(t *testing.T) {
	t.Parallel()
	r := ring.BigInt{}
	// (2^64 x + 1)² = 2^128 x² + 2^65 x + 1
	big64 := new(big.Int).Lsh(big.NewInt(1), 64)
	p := polynomial.From([]*big.Int{big64, big.NewInt(1)})

	sq, err := p.Times(p, r)
	require.NoError(t, err)
	want := []*big.Int{
		new(big.Int).Lsh(big.NewInt(1), 128),
		new(big.Int).Lsh(big.NewInt(1), 65),
		big.NewInt(1),
	}
	for i, w := range want {
		c, err := sq.Coefficient(i)
		require.NoError(t, err)
		require.Zero(t, w.Cmp(c), "coefficient %d: %s", i, c)
	}
	// operands untouched
	require.Zero(t, big64.Cmp(new(big.Int).Lsh(big.NewInt(1), 64)))
}

func TestNilArguments(t *testing.T) {
	t.Parallel()
	p := polynomial.From([]int{1})

	_, err := p.Plus(nil, ring.Int{})
	require.ErrorIs(t, err, polynomial.ErrNilArgument)
	_, err = p.Times(p, nil)
	require.ErrorIs(t, err, polynomial.ErrNilArgument)
	_, err = p.Evaluate(1, nil)
	require.ErrorIs(t, err, polynomial.ErrNilArgument)
	_, err = p.Trim(nil)
	require.ErrorIs(t, err, polynomial.ErrNilArgument)
}

func TestEvaluate(t *testing.T) {
	t.Parallel()
	r := ring.Int{}
	p := polynomial.From([]int{1, 3, 2}) // x²+3x+2

	for x, want := range map[int]int{0: 2, 1: 6, -1: 0, -2: 0, 3: 20} {
		got, err := p.Evaluate(x, r)
		require.NoError(t, err)
		require.Equal(t, want, got, "p(%d)", x)
	}

	got, err := polynomial.From[int](nil).Evaluate(5, r)
	require.NoError(t, err)
	require.Zero(t, got)
}

// TestEvaluateIsHomomorphism: (p·q)(x) = p(x)·q(x) over Z/7Z.
func TestEvaluateIsHomomorphism(t *testing.T) {
	t.Parallel()
	r, err := ring.NewModular(7)
	require.NoError(t, err)
	p := polynomial.From([]uint64{3, 0, 5, 1})
	q := polynomial.From([]uint64{6, 2})
	pq, err := p.Times(q, r)
	require.NoError(t, err)

	for x := uint64(0); x < 7; x++ {
		pv, err := p.Evaluate(x, r)
		require.NoError(t, err)
		qv, err := q.Evaluate(x, r)
		require.NoError(t, err)
		pqv, err := pq.Evaluate(x, r)
		require.NoError(t, err)
		require.Equal(t, r.Product(pv, qv), pqv, "x=%d", x)
	}
}

func TestTrim(t *testing.T) {
	t.Parallel()
	r := ring.Int{}
	got, err := polynomial.From([]int{0, 0, 1, 0}).Trim(r)
	require.NoError(t, err)
	require.Equal(t, []int{1, 0}, got.Coefficients())

	got, err = polynomial.From([]int{0, 0}).Trim(r)
	require.NoError(t, err)
	require.Zero(t, got.Len())
}
