// SPDX-License-Identifier: MIT
// Package matrix: arithmetic kernels (Plus, Times) for both representations.
//
// Design:
//   - Every kernel validates first (nil -> size -> square) and only then
//     allocates; inputs are never mutated and the result is always fresh.
//   - Sums of partial products go through ring.Sum so that the fold order is
//     fixed (ascending inner index) for any ring.
//   - Sparse kernels dispatch on other.Kind() once at entry.
//
// Determinism:
//   - Output indices are produced in row-major order; inner index ascends.

package matrix

import (
	"maps"

	"github.com/katalvlaran/ringalg/ring"
)

// snapshot reads every entry of m into a row-major slice.
// Complexity: O(r*c) Value calls.
func snapshot[T any](m Matrix[T]) ([]T, error) {
	size := m.Size()
	out := make([]T, 0, (size.row+1)*(size.column+1))
	for idx := range StreamSize(size) {
		v, err := m.Value(idx)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}

// Plus returns the dense entrywise ring-sum m + other.
// Stage 1 (Validate): other/ring non-nil, sizes equal.
// Stage 2 (Execute): one ring.Sum per index.
// Complexity: O(r*c).
func (m *Dense[T]) Plus(other Matrix[T], r ring.Ring[T]) (Matrix[T], error) {
	if err := validateOperands[T](m, other, r); err != nil {
		return nil, matrixErrorf("MatrixMap.Plus", err)
	}
	ov, err := snapshot(other)
	if err != nil {
		return nil, matrixErrorf("MatrixMap.Plus", err)
	}

	data := make([]T, len(m.data))
	for k := range m.data {
		data[k] = r.Sum(m.data[k], ov[k])
	}

	return &Dense[T]{rows: m.rows, columns: m.columns, data: data}, nil
}

// Times returns the dense ring product m × other:
//
//	out[i,j] = Σ_k  m[i,k] · other[k,j],  k = 0..n-1
//
// with Σ and · taken from r.
// Stage 1 (Validate): other/ring non-nil, sizes equal, receiver square.
// Stage 2 (Prepare): snapshot other once (O(n²) reads).
// Stage 3 (Execute): i→j→k loops, products collected and folded by ring.Sum.
// Complexity: O(n³) ring operations.
func (m *Dense[T]) Times(other Matrix[T], r ring.Ring[T]) (Matrix[T], error) {
	if err := validateProduct[T](m, other, r); err != nil {
		return nil, matrixErrorf("MatrixMap.Times", err)
	}
	ov, err := snapshot(other)
	if err != nil {
		return nil, matrixErrorf("MatrixMap.Times", err)
	}

	n := m.rows
	data := make([]T, n*n)
	terms := make([]T, n) // reused per output cell
	for i := 0; i < n; i++ {
		base := i * n
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				terms[k] = r.Product(m.data[base+k], ov[k*n+j])
			}
			data[base+j] = ring.Sum(terms, r)
		}
	}

	return &Dense[T]{rows: n, columns: n, data: data}, nil
}

// Plus returns the sparse entrywise ring-sum s + other.
//
// Implementation:
//   - other sparse: visit only the union of both stored key sets; indices
//     absent from both are zero + zero and never touched.
//   - other dense: visit the full rectangle.
//   - Results equal to zero are not stored.
//
// Complexity: O(nnz(s) + nnz(other)) for sparse other, O(r*c) otherwise.
func (s *Sparse[T]) Plus(other Matrix[T], r ring.Ring[T]) (Matrix[T], error) {
	if err := validateOperands[T](s, other, r); err != nil {
		return nil, matrixErrorf("SparseMatrix.Plus", err)
	}

	entries := make(map[Indexes]T)
	if other.Kind() != KindSparse {
		ov, err := snapshot(other)
		if err != nil {
			return nil, matrixErrorf("SparseMatrix.Plus", err)
		}
		cols := s.size.column + 1
		storeNonZero(entries, StreamSize(s.size), func(idx Indexes) T {
			return r.Sum(s.lookup(idx, r.Zero), ov[idx.row*cols+idx.column])
		}, r)

		return &Sparse[T]{entries: entries, size: s.size, r: r}, nil
	}

	om := other.Map()
	union := maps.Clone(s.entries)
	for idx, v := range om {
		union[idx] = v
	}
	storeNonZero(entries, maps.Keys(union), func(idx Indexes) T {
		b, ok := om[idx]
		if !ok {
			b = r.Zero()
		}
		return r.Sum(s.lookup(idx, r.Zero), b)
	}, r)

	return &Sparse[T]{entries: entries, size: s.size, r: r}, nil
}

// Times returns the sparse ring product s × other.
//
// Implementation:
//   - Stage 1: validate (nil -> size -> square).
//   - Stage 2: bucket the receiver's stored entries by row (columns ascending).
//   - Stage 3: for every output index (i,j) of the full rectangle, fold
//     s[i,k]·other[k,j] over the stored k of row i. When other is sparse a
//     term is computed only if (k,j) is stored there too; when other is dense
//     every stored s[i,k] contributes.
//   - Stage 4: results equal to zero are not stored.
//
// Pruning skips exactly the terms with a structurally absent (hence zero)
// factor, so the result equals the dense product.
//
// Complexity: O(n² + Σ_i nnz(row i)·n) ring operations.
func (s *Sparse[T]) Times(other Matrix[T], r ring.Ring[T]) (Matrix[T], error) {
	if err := validateProduct[T](s, other, r); err != nil {
		return nil, matrixErrorf("SparseMatrix.Times", err)
	}

	n := s.size.row + 1
	rowCols := make([][]int, n)
	for _, idx := range s.sortedKeys() {
		rowCols[idx.row] = append(rowCols[idx.row], idx.column)
	}

	// factor returns other[k,j] and whether the term must be computed.
	var factor func(k, j int) (T, bool)
	if other.Kind() == KindSparse {
		om := other.Map()
		factor = func(k, j int) (T, bool) {
			v, ok := om[at(k, j)]
			return v, ok
		}
	} else {
		ov, err := snapshot(other)
		if err != nil {
			return nil, matrixErrorf("SparseMatrix.Times", err)
		}
		factor = func(k, j int) (T, bool) { return ov[k*n+j], true }
	}

	entries := make(map[Indexes]T)
	terms := make([]T, 0, n)
	for i := 0; i < n; i++ {
		if len(rowCols[i]) == 0 {
			continue // row i of the product is all zero
		}
		for j := 0; j < n; j++ {
			terms = terms[:0]
			for _, k := range rowCols[i] {
				b, ok := factor(k, j)
				if !ok {
					continue
				}
				terms = append(terms, r.Product(s.entries[at(i, k)], b))
			}
			if v := ring.Sum(terms, r); !ring.IsZero(r, v) {
				entries[at(i, j)] = v
			}
		}
	}

	return &Sparse[T]{entries: entries, size: s.size, r: r}, nil
}
