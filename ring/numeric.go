// SPDX-License-Identifier: MIT

package ring

// Int is the ring of machine integers under + and *.
// Overflow wraps as in Go arithmetic.
type Int struct{}

// Int64 is the ring of int64 values under + and *.
type Int64 struct{}

// Float64 is the (approximate) ring of float64 values under + and *.
// Equality is exact comparison; 0 and -0 are equal.
type Float64 struct{}

// Compile-time contract checks.
var (
	_ Ring[int]        = Int{}
	_ Equaler[int]     = Int{}
	_ Ring[int64]      = Int64{}
	_ Equaler[int64]   = Int64{}
	_ Ring[float64]    = Float64{}
	_ Equaler[float64] = Float64{}
)

func (Int) Zero() int { return 0 }

func (Int) Identity() int { return 1 }

func (Int) Sum(x, y int) int { return x + y }

func (Int) Product(x, y int) int { return x * y }

func (Int) Equal(x, y int) bool { return x == y }

func (Int64) Zero() int64 { return 0 }

func (Int64) Identity() int64 { return 1 }

func (Int64) Sum(x, y int64) int64 { return x + y }

func (Int64) Product(x, y int64) int64 { return x * y }

func (Int64) Equal(x, y int64) bool { return x == y }

func (Float64) Zero() float64 { return 0 }

func (Float64) Identity() float64 { return 1 }

func (Float64) Sum(x, y float64) float64 { return x + y }

func (Float64) Product(x, y float64) float64 { return x * y }

func (Float64) Equal(x, y float64) bool { return x == y }
