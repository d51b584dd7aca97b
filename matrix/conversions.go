// SPDX-License-Identifier: MIT

// Package matrix: representation conversions and value-producing helpers.
// Conversions are total over the index space and preserve every value:
// d.ToSparse(r).ToDense() equals d entrywise.
package matrix

import "github.com/katalvlaran/ringalg/ring"

// ToSparse returns a sparse copy of m over r, dropping zero entries.
// Complexity: O(r*c).
func (m *Dense[T]) ToSparse(r ring.Ring[T]) (*Sparse[T], error) {
	return NewSparseOfSize(m.Size(), m.get, r)
}

// ToDense returns a dense copy of s; absent entries become the held ring's zero.
// Complexity: O(r*c).
func (s *Sparse[T]) ToDense() *Dense[T] {
	out, _ := NewOfSize(s.size, func(idx Indexes) T { return s.lookup(idx, s.r.Zero) })
	return out // shape was validated when s was built
}

// Transpose returns mᵀ as a new dense matrix.
func (m *Dense[T]) Transpose() *Dense[T] {
	out, _ := New(m.columns, m.rows, func(idx Indexes) T { return m.get(at(idx.column, idx.row)) })
	return out
}

// Transpose returns sᵀ as a new sparse matrix sharing no storage with s.
func (s *Sparse[T]) Transpose() *Sparse[T] {
	entries := make(map[Indexes]T, len(s.entries))
	for idx, v := range s.entries {
		entries[at(idx.column, idx.row)] = v
	}

	return &Sparse[T]{entries: entries, size: at(s.size.column, s.size.row), r: s.r}
}

// Equal reports whether a and b have the same size and equal entries under r,
// regardless of representation.
// Errors: ErrNilArgument.
// Complexity: O(r*c) Value calls.
func Equal[T any](a, b Matrix[T], r ring.Ring[T]) (bool, error) {
	for _, m := range []Matrix[T]{a, b} {
		if err := ValidateNotNil(m); err != nil {
			return false, matrixErrorf("Equal", err)
		}
	}
	if err := validateRing(r); err != nil {
		return false, matrixErrorf("Equal", err)
	}
	if a.Size() != b.Size() {
		return false, nil
	}
	for idx := range StreamSize(a.Size()) {
		av, err := a.Value(idx)
		if err != nil {
			return false, matrixErrorf("Equal", err)
		}
		bv, err := b.Value(idx)
		if err != nil {
			return false, matrixErrorf("Equal", err)
		}
		if !ring.Equal(r, av, bv) {
			return false, nil
		}
	}

	return true, nil
}

// Trace returns the ring-sum of the diagonal of a square matrix.
// Errors: ErrNilArgument, *NonSquareError.
func Trace[T any](m Matrix[T], r ring.Ring[T]) (T, error) {
	var zero T
	if err := ValidateNotNil(m); err != nil {
		return zero, matrixErrorf("Trace", err)
	}
	if err := validateRing(r); err != nil {
		return zero, matrixErrorf("Trace", err)
	}
	if err := ValidateSquare(m.Size()); err != nil {
		return zero, matrixErrorf("Trace", err)
	}

	n := m.Size().row + 1
	diag := make([]T, 0, n)
	for i := 0; i < n; i++ {
		v, err := m.Value(at(i, i))
		if err != nil {
			return zero, matrixErrorf("Trace", err)
		}
		diag = append(diag, v)
	}

	return ring.Sum(diag, r), nil
}
