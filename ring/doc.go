// SPDX-License-Identifier: MIT

// Package ring defines the algebraic capability every other package in ringalg
// is generic over.
//
// A Ring[T] supplies an additive zero, a multiplicative identity and the two
// binary operations Sum and Product. Matrices and polynomials never touch
// concrete numeric types: they fold partial results through a caller-supplied
// Ring, which is what lets them nest (matrices of polynomials of integers, and
// so on).
//
// The package provides:
//
//   - Ring / Equaler contracts and the IsZero / Equal helpers used for
//     zero-elision in sparse storage.
//   - Reduce, Sum, Product: generic folds over a slice of ring elements.
//   - Concrete rings: Int, Int64, Float64, BigInt, Modular, and the MinPlus
//     (tropical) semiring.
//
// Every Ring implementation is stateless or holds only fixed configuration, so
// values are safe for concurrent use.
package ring
