// Package builder provides reusable "functional-options"-style building blocks
// for structured and random matrices. Constructors describe a matrix as a
// Layout (size plus a value per index); BuildDense and BuildSparse hand the
// layout to the matrix factories.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption: a function that mutates builderConfig before use.
//     – WithSeed / WithRand: the RNG used by stochastic constructors.
//   - Constructors (Constructor[T] implementations):
//     – Diagonal:     diag(values).
//     – Permutation:  the 0/1 matrix with P[i, perm[i]] = 1.
//     – Band:         entries with -lower <= j-i <= upper drawn from a ValueFn.
//     – RandomSparse: each entry kept independently with probability p.
//   - Value distributions (ValueFn[T] implementations):
//     – ConstantValueFn, UniformIntValueFn, UniformFloatValueFn, NormalValueFn.
//
// Guarantees:
//
//   - Determinism: the same constructor, options and seed give the same matrix.
//     Random values are drawn once, in row-major order, when the layout is made.
//   - Fast-fail on invalid option parameters via panics in option and ValueFn
//     constructors.
//   - Constructors never panic; they return errors wrapping the sentinels in
//     errors.go, prefixed with the constructor name.
package builder
