// SPDX-License-Identifier: MIT
// Package ring: contracts and equality helpers.

package ring

import (
	"errors"
	"reflect"
)

var (
	// ErrNilOperand is the panic value raised when a ring operation receives a
	// nil operand (nil *big.Int, nil matrix, nil polynomial). Passing nil is a
	// programmer error, never a recoverable condition.
	ErrNilOperand = errors.New("ring: nil operand")

	// ErrNilAccumulator is the panic value raised by Reduce on a nil accumulator.
	ErrNilAccumulator = errors.New("ring: nil accumulator")

	// ErrInvalidModulus is returned by NewModular when q < 2.
	ErrInvalidModulus = errors.New("ring: modulus must be >= 2")
)

// Ring is an algebraic structure over T.
//
// Implementations must satisfy the ring laws: Sum is associative and
// commutative with Zero as its identity, Product is associative with Identity
// as its identity, and Product distributes over Sum. Neither operation may
// mutate its operands.
type Ring[T any] interface {
	// Zero returns the additive identity.
	Zero() T

	// Identity returns the multiplicative identity.
	Identity() T

	// Sum returns x + y.
	Sum(x, y T) T

	// Product returns x * y.
	Product(x, y T) T
}

// Equaler is implemented by rings that define their own notion of element
// equality. Sparse storage uses it to decide whether a value equals Zero.
type Equaler[T any] interface {
	Equal(x, y T) bool
}

// Equal reports whether x and y are equal under r.
// It uses r's own Equal when r implements Equaler, and falls back to
// reflect.DeepEqual otherwise.
func Equal[T any](r Ring[T], x, y T) bool {
	if eq, ok := r.(Equaler[T]); ok {
		return eq.Equal(x, y)
	}

	return reflect.DeepEqual(x, y)
}

// IsZero reports whether v equals r.Zero() under Equal.
func IsZero[T any](r Ring[T], v T) bool {
	return Equal(r, v, r.Zero())
}
