// SPDX-License-Identifier: MIT
// Package ring: generic folds shared by matrix and polynomial multiplication.
//
// Determinism:
//   - Elements are combined strictly left to right; the first element seeds the
//     accumulator directly, so acc is never applied to zero.

package ring

// Reduce folds args into a single value with acc.
// An empty slice yields zero; otherwise the first element seeds the
// accumulator and each following element is combined as acc(result, next).
// Panics with ErrNilAccumulator if acc is nil.
//
// Complexity: O(len(args)) applications of acc.
func Reduce[T any](args []T, zero T, acc func(T, T) T) T {
	if acc == nil {
		panic(ErrNilAccumulator)
	}
	if len(args) == 0 {
		return zero
	}

	result := args[0]
	for _, next := range args[1:] {
		result = acc(result, next)
	}

	return result
}

// Sum returns the ring-sum of args, or r.Zero() when args is empty.
func Sum[T any](args []T, r Ring[T]) T {
	return Reduce(args, r.Zero(), r.Sum)
}

// Product returns the ring-product of args.
// An empty slice yields r.Zero(); use ProductOrIdentity for the empty product
// convention of algebra.
func Product[T any](args []T, r Ring[T]) T {
	return Reduce(args, r.Zero(), r.Product)
}

// ProductOrIdentity returns the ring-product of args, or r.Identity() when
// args is empty.
func ProductOrIdentity[T any](args []T, r Ring[T]) T {
	return Reduce(args, r.Identity(), r.Product)
}
