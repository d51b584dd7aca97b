// SPDX-License-Identifier: MIT
// Package matrix: Ring, the adapter that turns fixed-size square matrices over
// an element ring into a ring themselves.
//
// Purpose:
//   - Enable recursive composition: Matrix[Matrix[T]], Polynomial[Matrix[T]], ...
//     without any special-casing in the kernels.
//   - Zero/Identity delegate to the Constant/Identity factories; Sum/Product
//     delegate to the operands' own Plus/Times with the element ring.
//
// Panics:
//   - The ring contract has no error return. A nil operand panics with
//     ring.ErrNilOperand; an operand of another size panics with the
//     *InconsistentSizeError from Plus/Times. Both are programmer errors: every
//     element of this ring has the configured size by construction.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/ringalg/ring"
)

// Ring is the ring of size×size matrices over an element ring.
type Ring[T any] struct {
	elem   ring.Ring[T]
	size   int
	sparse bool // build Zero/Identity as *Sparse instead of *Dense
}

var (
	_ ring.Ring[Matrix[int]]    = (*Ring[int])(nil)
	_ ring.Equaler[Matrix[int]] = (*Ring[int])(nil)
)

// NewRing returns the ring of size×size dense matrices over elem.
// Errors: ErrNilArgument, *InvalidLengthError.
func NewRing[T any](elem ring.Ring[T], size int) (*Ring[T], error) {
	return newRing(elem, size, false)
}

// NewSparseRing is NewRing whose Zero and Identity are sparse matrices.
func NewSparseRing[T any](elem ring.Ring[T], size int) (*Ring[T], error) {
	return newRing(elem, size, true)
}

func newRing[T any](elem ring.Ring[T], size int, sparse bool) (*Ring[T], error) {
	if err := validateRing(elem); err != nil {
		return nil, matrixErrorf("MatrixRing.New", err)
	}
	if err := validateLength(CauseRow, size); err != nil {
		return nil, matrixErrorf("MatrixRing.New", err)
	}

	return &Ring[T]{elem: elem, size: size, sparse: sparse}, nil
}

// Size returns the row (and column) count of every element.
func (mr *Ring[T]) Size() int { return mr.size }

// Element returns the element ring.
func (mr *Ring[T]) Element() ring.Ring[T] { return mr.elem }

// Zero returns the all-zero matrix.
func (mr *Ring[T]) Zero() Matrix[T] {
	if mr.sparse {
		return must(SparseConstant(mr.size, mr.elem.Zero(), mr.elem))
	}

	return must(Constant(mr.size, mr.elem.Zero()))
}

// Identity returns the identity matrix.
func (mr *Ring[T]) Identity() Matrix[T] {
	if mr.sparse {
		return must(SparseIdentity(mr.size, mr.elem))
	}

	return must(Identity(mr.size, mr.elem.Zero(), mr.elem.Identity()))
}

// Sum returns x.Plus(y, elem).
func (mr *Ring[T]) Sum(x, y Matrix[T]) Matrix[T] {
	mr.requireOperands(x, y)
	return must(x.Plus(y, mr.elem))
}

// Product returns x.Times(y, elem).
func (mr *Ring[T]) Product(x, y Matrix[T]) Matrix[T] {
	mr.requireOperands(x, y)
	return must(x.Times(y, mr.elem))
}

// Equal compares x and y entrywise through the element ring.
func (mr *Ring[T]) Equal(x, y Matrix[T]) bool {
	mr.requireOperands(x, y)
	eq, err := Equal(x, y, mr.elem)
	return err == nil && eq
}

// String renders "MatrixRing[size=n]".
func (mr *Ring[T]) String() string {
	return fmt.Sprintf("MatrixRing[size=%d]", mr.size)
}

func (mr *Ring[T]) requireOperands(x, y Matrix[T]) {
	if ValidateNotNil(x) != nil || ValidateNotNil(y) != nil {
		panic(ring.ErrNilOperand)
	}
}

// must unwraps results whose error is impossible by construction and panics
// otherwise.
func must[M any](m M, err error) M {
	if err != nil {
		panic(err)
	}

	return m
}
