// SPDX-License-Identifier: MIT

package ring

import "math/big"

// BigInt is the ring of arbitrary-precision integers.
//
// Zero and Identity return fresh values on every call, so elements are never
// compared by pointer: Equal uses (*big.Int).Cmp. Sum and Product allocate
// their result and never mutate an operand. A nil operand panics with
// ErrNilOperand.
type BigInt struct{}

var (
	_ Ring[*big.Int]    = BigInt{}
	_ Equaler[*big.Int] = BigInt{}
)

// Zero returns a new big.Int holding 0.
func (BigInt) Zero() *big.Int { return new(big.Int) }

// Identity returns a new big.Int holding 1.
func (BigInt) Identity() *big.Int { return big.NewInt(1) }

// Sum returns x + y as a new value.
func (BigInt) Sum(x, y *big.Int) *big.Int {
	requireBig(x, y)
	return new(big.Int).Add(x, y)
}

// Product returns x * y as a new value.
func (BigInt) Product(x, y *big.Int) *big.Int {
	requireBig(x, y)
	return new(big.Int).Mul(x, y)
}

// Equal reports x == y by value.
func (BigInt) Equal(x, y *big.Int) bool {
	requireBig(x, y)
	return x.Cmp(y) == 0
}

func requireBig(x, y *big.Int) {
	if x == nil || y == nil {
		panic(ErrNilOperand)
	}
}
