// SPDX-License-Identifier: MIT

package polynomial

import (
	"slices"

	"github.com/katalvlaran/ringalg/ring"
)

// Ring is the ring of polynomials over an element ring ("PolynomialRing").
// Sum and Product panic with ring.ErrNilOperand on a nil operand: the ring
// contract has no error return.
type Ring[T any] struct {
	elem ring.Ring[T]
}

var (
	_ ring.Ring[*Polynomial[int]]    = (*Ring[int])(nil)
	_ ring.Equaler[*Polynomial[int]] = (*Ring[int])(nil)
)

// NewRing returns the polynomial ring over elem.
// Errors: ErrNilArgument.
func NewRing[T any](elem ring.Ring[T]) (*Ring[T], error) {
	if elem == nil {
		return nil, polynomialErrorf("PolynomialRing.New", ErrNilArgument)
	}

	return &Ring[T]{elem: elem}, nil
}

// Element returns the coefficient ring.
func (pr *Ring[T]) Element() ring.Ring[T] { return pr.elem }

// Zero returns the empty polynomial.
func (pr *Ring[T]) Zero() *Polynomial[T] { return From[T](nil) }

// Identity returns the constant polynomial [1].
func (pr *Ring[T]) Identity() *Polynomial[T] {
	return From([]T{pr.elem.Identity()})
}

// Sum returns x.Plus(y).
func (pr *Ring[T]) Sum(x, y *Polynomial[T]) *Polynomial[T] {
	requireOperands(x, y)
	return must(x.Plus(y, pr.elem))
}

// Product returns x.Times(y).
func (pr *Ring[T]) Product(x, y *Polynomial[T]) *Polynomial[T] {
	requireOperands(x, y)
	return must(x.Times(y, pr.elem))
}

// Equal reports whether x and y agree once leading zero coefficients are
// dropped, so [0, 0] equals the empty polynomial and [0, 1] equals [1].
func (pr *Ring[T]) Equal(x, y *Polynomial[T]) bool {
	requireOperands(x, y)
	tx := must(x.Trim(pr.elem))
	ty := must(y.Trim(pr.elem))

	return slices.EqualFunc(tx.coefficients, ty.coefficients, func(a, b T) bool {
		return ring.Equal(pr.elem, a, b)
	})
}

// String renders "PolynomialRing".
func (pr *Ring[T]) String() string { return "PolynomialRing" }

func requireOperands[T any](x, y *Polynomial[T]) {
	if x == nil || y == nil {
		panic(ring.ErrNilOperand)
	}
}

// must panics with err; it is only reached on a Ring without an element
// ring, such as the zero value.
func must[M any](m M, err error) M {
	if err != nil {
		panic(err)
	}

	return m
}
