// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Entrywise kernels over a ring: Scale, ScaleRows, ScaleColumns, Hadamard.
//   - AllClose, a tolerance comparison for float64 matrices.
//
// Design:
//   - The result keeps the receiver's representation: a sparse input gives a
//     sparse result (zeros elided), anything else a dense one.
//   - Sparse fast-path: only stored entries are visited, since 0·x = 0 in any
//     ring.
//
// Determinism & Performance:
//   - Fixed loop order (row-major) for dense inputs.
//   - Scalars multiply from the left: Scale(c, M)[i,j] = c·M[i,j]. Over a
//     non-commutative ring, ScaleColumns multiplies from the right.

package matrix

import (
	"math"

	"github.com/katalvlaran/ringalg/ring"
)

// ewApply builds a matrix of m's size and representation whose entry at idx
// is f(idx, m[idx]). For a sparse m, f runs on the stored entries only; f must
// map zero to zero.
func ewApply[T any](tag string, m Matrix[T], r ring.Ring[T], f func(Indexes, T) T) (Matrix[T], error) {
	if m.Kind() == KindSparse {
		entries := make(map[Indexes]T)
		for idx, v := range m.Map() {
			if out := f(idx, v); !ring.IsZero(r, out) {
				entries[idx] = out
			}
		}

		return &Sparse[T]{entries: entries, size: m.Size(), r: r}, nil
	}

	vals, err := snapshot(m)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	cols := m.Size().column + 1
	out, err := NewOfSize(m.Size(), func(idx Indexes) T {
		return f(idx, vals[idx.row*cols+idx.column])
	})
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	return out, nil
}

// ewGuard checks the operand and ring shared by every kernel here.
func ewGuard[T any](m Matrix[T], r ring.Ring[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}

	return validateRing(r)
}

// Scale returns c·m.
// Errors: ErrNilArgument.
// Complexity: O(r*c) dense, O(nnz) sparse.
func Scale[T any](c T, m Matrix[T], r ring.Ring[T]) (Matrix[T], error) {
	if err := ewGuard(m, r); err != nil {
		return nil, matrixErrorf("Scale", err)
	}

	return ewApply("Scale", m, r, func(_ Indexes, v T) T { return r.Product(c, v) })
}

// ScaleRows returns diag(factors)·m: row i is multiplied from the left by
// factors[i].
// Errors: ErrNilArgument, ErrInconsistentSize (len(factors) != rows).
func ScaleRows[T any](factors []T, m Matrix[T], r ring.Ring[T]) (Matrix[T], error) {
	if err := ewGuard(m, r); err != nil {
		return nil, matrixErrorf("ScaleRows", err)
	}
	if len(factors) != m.Size().row+1 {
		return nil, matrixErrorf("ScaleRows", ErrInconsistentSize)
	}

	return ewApply("ScaleRows", m, r, func(idx Indexes, v T) T { return r.Product(factors[idx.row], v) })
}

// ScaleColumns returns m·diag(factors): column j is multiplied from the right
// by factors[j].
// Errors: ErrNilArgument, ErrInconsistentSize (len(factors) != columns).
func ScaleColumns[T any](m Matrix[T], factors []T, r ring.Ring[T]) (Matrix[T], error) {
	if err := ewGuard(m, r); err != nil {
		return nil, matrixErrorf("ScaleColumns", err)
	}
	if len(factors) != m.Size().column+1 {
		return nil, matrixErrorf("ScaleColumns", ErrInconsistentSize)
	}

	return ewApply("ScaleColumns", m, r, func(idx Indexes, v T) T { return r.Product(v, factors[idx.column]) })
}

// Hadamard returns the entrywise product a∘b.
// Errors: ErrNilArgument, *InconsistentSizeError.
// Complexity: O(r*c), or O(nnz(a)) reads of b when a is sparse.
func Hadamard[T any](a, b Matrix[T], r ring.Ring[T]) (Matrix[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf("Hadamard", err)
	}
	if err := validateOperands(a, b, r); err != nil {
		return nil, matrixErrorf("Hadamard", err)
	}

	var readErr error
	out, err := ewApply("Hadamard", a, r, func(idx Indexes, v T) T {
		w, err := b.Value(idx)
		if err != nil && readErr == nil {
			readErr = err
		}
		return r.Product(v, w)
	})
	if err != nil {
		return nil, err
	}
	if readErr != nil {
		return nil, matrixErrorf("Hadamard", readErr)
	}

	return out, nil
}

// AllClose reports whether |a[i,j] - b[i,j]| <= atol + rtol·|b[i,j]| holds for
// every entry.
//
// Policy:
//   - a and b must be non-nil and have identical sizes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN or Inf tolerances fail
//     with ErrInvalidTolerance.
//
// Complexity: O(r*c) Value calls; early exit on the first violation.
func AllClose(a, b Matrix[float64], rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf("AllClose", ErrInvalidTolerance)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	if err := ValidateSameSize(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}

	for idx := range StreamSize(a.Size()) {
		av, err := a.Value(idx)
		if err != nil {
			return false, matrixErrorf("AllClose", err)
		}
		bv, err := b.Value(idx)
		if err != nil {
			return false, matrixErrorf("AllClose", err)
		}
		if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
			return false, nil
		}
	}

	return true, nil
}
