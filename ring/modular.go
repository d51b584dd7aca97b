// SPDX-License-Identifier: MIT
// Package ring: integers modulo q.
//
// Residues are uint64 values in [0, q). Sums and products are computed with
// math/bits so that no intermediate overflows for any q < 2^64.

package ring

import (
	"fmt"
	"math/bits"
)

// Modular is the ring Z/qZ. Obtain one from NewModular; the zero value
// panics with ErrInvalidModulus on every operation.
type Modular struct {
	q uint64 // modulus, >= 2
}

var (
	_ Ring[uint64]    = Modular{}
	_ Equaler[uint64] = Modular{}
)

// NewModular returns Z/qZ. It fails with ErrInvalidModulus if q < 2.
func NewModular(q uint64) (Modular, error) {
	if q < 2 {
		return Modular{}, fmt.Errorf("NewModular(%d): %w", q, ErrInvalidModulus)
	}

	return Modular{q: q}, nil
}

// Modulus returns q.
func (m Modular) Modulus() uint64 { return m.q }

// Reduce maps an arbitrary uint64 onto its residue in [0, q).
func (m Modular) Reduce(v uint64) uint64 { return v % m.modulus() }

// Zero returns 0.
func (m Modular) Zero() uint64 { return 0 }

// Identity returns 1.
func (m Modular) Identity() uint64 { return 1 }

// Sum returns (x + y) mod q.
func (m Modular) Sum(x, y uint64) uint64 {
	q := m.modulus()
	x, y = x%q, y%q
	s, carry := bits.Add64(x, y, 0)
	// x+y < 2q, so one subtraction is enough.
	if carry != 0 || s >= q {
		s -= q
	}

	return s
}

// Product returns (x * y) mod q.
func (m Modular) Product(x, y uint64) uint64 {
	q := m.modulus()
	x, y = x%q, y%q
	hi, lo := bits.Mul64(x, y)
	// hi < q because x, y < q.
	_, rem := bits.Div64(hi, lo, q)

	return rem
}

// Equal compares residues.
func (m Modular) Equal(x, y uint64) bool {
	q := m.modulus()
	return x%q == y%q
}

// modulus returns q, panicking with ErrInvalidModulus on the zero value.
func (m Modular) modulus() uint64 {
	if m.q == 0 {
		panic(ErrInvalidModulus)
	}

	return m.q
}
