// Package ringalg is a ring-generic linear-algebra and polynomial toolkit:
// matrices and polynomials over any type that supplies a zero, an identity,
// a sum and a product.
//
// 🚀 What is ringalg?
//
//	A small, dependency-light library that brings together:
//		• Rings: Int, Int64, Float64, BigInt, Modular and the MinPlus semiring
//		• Matrices: dense and zero-eliding sparse storage behind one contract
//		• Polynomials: term-wise sum and convolution product
//		• Adapter rings: matrices and polynomials are ring elements themselves
//
// ✨ Why choose ringalg?
//
//   - Values are immutable; every operation returns a new value
//   - Faults are typed errors, matched with errors.Is / errors.As
//   - Nesting needs no special cases: a matrix of polynomials of matrices of
//     big integers uses the same kernels as a matrix of ints
//
// Under the hood, everything is organized under four subpackages:
//
//	ring/       - the Ring contract, folds (Sum, Product) and concrete rings
//	matrix/     - Indexes, Matrix, Dense, Sparse, the matrix Ring, gonum bridge
//	polynomial/ - Polynomial and the polynomial Ring
//	builder/    - structured and random matrix constructors
//
// Quick ASCII example (Fibonacci by matrix power):
//
//	| 1 1 |^n   | F(n+1) F(n)   |
//	| 1 0 |   = | F(n)   F(n-1) |
//
// See examples/ for runnable programs.
//
//	go get github.com/katalvlaran/ringalg
package ringalg
