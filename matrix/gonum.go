// SPDX-License-Identifier: MIT
// Package matrix: bridge to gonum.org/v1/gonum/mat for float64 matrices.
//
// Purpose:
//   - Hand a Matrix[float64] of either representation to gonum routines
//     (factorizations, BLAS-backed products) without copying: AsGonum returns a
//     read-only mat.Matrix view.
//   - Import gonum results back as Dense or Sparse values.

package matrix

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/ringalg/ring"
)

// gonumView adapts Matrix[float64] to mat.Matrix.
type gonumView struct {
	m Matrix[float64]
}

var _ mat.Matrix = gonumView{}

// AsGonum returns a read-only gonum view of m.
// Errors: ErrNilArgument.
func AsGonum(m Matrix[float64]) (mat.Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("AsGonum", err)
	}

	return gonumView{m: m}, nil
}

// Dims returns the row and column counts.
func (v gonumView) Dims() (r, c int) {
	size := v.m.Size()
	return size.row + 1, size.column + 1
}

// At returns the entry at (i, j). Out-of-range access panics with
// mat.ErrIndexOutOfRange, as gonum's own types do.
func (v gonumView) At(i, j int) float64 {
	val, err := v.m.Value(at(i, j))
	if err != nil {
		panic(mat.ErrIndexOutOfRange)
	}

	return val
}

// T returns the implicit transpose.
func (v gonumView) T() mat.Matrix { return mat.Transpose{Matrix: v} }

// FromGonum copies src into a new Dense.
// Errors: ErrNilArgument, *InvalidLengthError for an empty src.
func FromGonum(src mat.Matrix) (*Dense[float64], error) {
	if src == nil {
		return nil, matrixErrorf("FromGonum", ErrNilArgument)
	}
	r, c := src.Dims()

	return New(r, c, func(idx Indexes) float64 { return src.At(idx.row, idx.column) })
}

// SparseFromGonum copies the non-zero entries of src into a new Sparse over r.
func SparseFromGonum(src mat.Matrix, r ring.Ring[float64]) (*Sparse[float64], error) {
	if src == nil {
		return nil, matrixErrorf("SparseFromGonum", ErrNilArgument)
	}
	rows, cols := src.Dims()

	return NewSparse(rows, cols, func(idx Indexes) float64 { return src.At(idx.row, idx.column) }, r)
}
