// Package matrix offers ring-generic matrices in two representations.
//
// The matrix package provides:
//
//   - Indexes, an immutable (row, column) coordinate with a row-major total
//     order, and Stream for lazy row-major iteration.
//   - Dense ("MatrixMap"): every index of the rectangle is stored.
//   - Sparse ("SparseMatrix"): only entries different from the ring's zero
//     are stored; Plus visits the union of stored keys and Times skips terms
//     with an absent factor.
//   - Ring ("MatrixRing"): size×size matrices over a ring form a ring, so
//     matrices nest inside matrices and polynomials.
//   - Entrywise kernels (Scale, ScaleRows, ScaleColumns, Hadamard) and
//     facades (Sum, Product, Power, Trace, Equal) over any ring.
//   - AsGonum / FromGonum bridges for float64 matrices.
//
// Every value is immutable after construction; all operations return new
// matrices, which makes concurrent readers safe without locking.
//
// Faults are returned, never panicked: check classes with errors.Is
// (ErrInvalidLength, ErrInconsistentSize, ErrNonSquare, ErrNilArgument,
// ErrOutOfRange) or payloads with errors.As (*InvalidLengthError,
// *InconsistentSizeError, *NonSquareError).
//
// See the examples in this package for usage patterns.
package matrix
