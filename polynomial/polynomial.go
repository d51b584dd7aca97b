// SPDX-License-Identifier: MIT

package polynomial

import (
	"fmt"
	"iter"
	"strings"

	"github.com/katalvlaran/ringalg/ring"
)

// Polynomial is an immutable coefficient sequence, highest degree first.
type Polynomial[T any] struct {
	coefficients []T
}

// From returns a polynomial holding a copy of coefficients (highest degree
// first). A nil or empty slice gives the empty polynomial.
func From[T any](coefficients []T) *Polynomial[T] {
	return &Polynomial[T]{coefficients: append([]T(nil), coefficients...)}
}

// Coefficients returns a fresh copy of the coefficients.
func (p *Polynomial[T]) Coefficients() []T {
	return append([]T(nil), p.coefficients...)
}

// Len returns the number of coefficients.
func (p *Polynomial[T]) Len() int { return len(p.coefficients) }

// Degree returns Len()-1, or -1 for the empty polynomial. Leading zero
// coefficients count; see Trim.
func (p *Polynomial[T]) Degree() int { return len(p.coefficients) - 1 }

// Coefficient returns the coefficient at position i (0 is the lead term).
func (p *Polynomial[T]) Coefficient(i int) (T, error) {
	if i < 0 || i >= len(p.coefficients) {
		var zero T
		return zero, polynomialErrorf(fmt.Sprintf("Polynomial.Coefficient(%d)", i), ErrOutOfRange)
	}

	return p.coefficients[i], nil
}

// All yields (position, coefficient) from the lead term down.
func (p *Polynomial[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, c := range p.coefficients {
			if !yield(i, c) {
				return
			}
		}
	}
}

// Backward yields (position, coefficient) from the constant term up.
func (p *Polynomial[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := len(p.coefficients) - 1; i >= 0; i-- {
			if !yield(i, p.coefficients[i]) {
				return
			}
		}
	}
}

// String renders the coefficients as "[c0, c1, ...]".
func (p *Polynomial[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, c := range p.coefficients {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, c)
	}
	sb.WriteByte(']')

	return sb.String()
}

func validate[T any](tag string, other *Polynomial[T], r ring.Ring[T]) error {
	if other == nil || r == nil {
		return polynomialErrorf(tag, ErrNilArgument)
	}

	return nil
}

// Plus returns p + other. The operands are aligned at the constant term; the
// result has the length of the longer one.
// Errors: ErrNilArgument.
// Complexity: O(max(len)).
func (p *Polynomial[T]) Plus(other *Polynomial[T], r ring.Ring[T]) (*Polynomial[T], error) {
	if err := validate("Polynomial.Plus", other, r); err != nil {
		return nil, err
	}

	long, short := p.coefficients, other.coefficients
	if len(short) > len(long) {
		long, short = short, long
	}
	sum := append([]T(nil), long...)
	shift := len(long) - len(short)
	for i, c := range short {
		sum[shift+i] = r.Sum(sum[shift+i], c)
	}

	return &Polynomial[T]{coefficients: sum}, nil
}

// Times returns the convolution p × other:
//
//	out[k] = Σ p[i] · other[k-i]  over 0 <= i < len(p), 0 <= k-i < len(other)
//
// The result has max(0, len(p)+len(other)-1) coefficients. Products keep
// operand order (p's coefficient on the left), so non-commutative coefficient
// rings are handled.
// Errors: ErrNilArgument.
// Complexity: O(len(p)·len(other)) ring operations.
func (p *Polynomial[T]) Times(other *Polynomial[T], r ring.Ring[T]) (*Polynomial[T], error) {
	if err := validate("Polynomial.Times", other, r); err != nil {
		return nil, err
	}

	a, b := p.coefficients, other.coefficients
	size := max(0, len(a)+len(b)-1)
	out := make([]T, size)
	terms := make([]T, 0, min(len(a), len(b)))
	for k := 0; k < size; k++ {
		// i ranges over the positions of a whose partner k-i lies inside b.
		lo, hi := max(0, k-len(b)+1), min(k, len(a)-1)
		terms = terms[:0]
		for i := lo; i <= hi; i++ {
			terms = append(terms, r.Product(a[i], b[k-i]))
		}
		out[k] = ring.Sum(terms, r)
	}

	return &Polynomial[T]{coefficients: out}, nil
}

// Evaluate returns p(x) by Horner's rule, multiplying the accumulator by x
// from the right. The empty polynomial evaluates to r.Zero().
// Errors: ErrNilArgument.
func (p *Polynomial[T]) Evaluate(x T, r ring.Ring[T]) (T, error) {
	if r == nil {
		var zero T
		return zero, polynomialErrorf("Polynomial.Evaluate", ErrNilArgument)
	}

	acc := r.Zero()
	for _, c := range p.coefficients {
		acc = r.Sum(r.Product(acc, x), c)
	}

	return acc, nil
}

// Trim returns p without its leading zero coefficients under r. An all-zero
// polynomial trims to the empty one.
// Errors: ErrNilArgument.
func (p *Polynomial[T]) Trim(r ring.Ring[T]) (*Polynomial[T], error) {
	if r == nil {
		return nil, polynomialErrorf("Polynomial.Trim", ErrNilArgument)
	}

	lead := 0
	for lead < len(p.coefficients) && ring.IsZero(r, p.coefficients[lead]) {
		lead++
	}

	return From(p.coefficients[lead:]), nil
}
