// SPDX-License-Identifier: MIT

package ring

import "math"

// MinPlus is the tropical semiring over float64: Sum is min, Product is +,
// Zero is +Inf (no path) and Identity is 0 (empty path). Matrix products
// over MinPlus relax path lengths, so the k-th power of a weighted adjacency
// matrix holds the shortest walks of at most k edges when its diagonal is 0.
//
// MinPlus has no additive inverses; everything in this module that only
// needs Zero, Identity, Sum and Product works with it unchanged.
type MinPlus struct{}

var (
	_ Ring[float64]    = MinPlus{}
	_ Equaler[float64] = MinPlus{}
)

func (MinPlus) Zero() float64 { return math.Inf(1) }

func (MinPlus) Identity() float64 { return 0 }

func (MinPlus) Sum(x, y float64) float64 { return math.Min(x, y) }

// Product returns x + y; +Inf absorbs.
func (MinPlus) Product(x, y float64) float64 { return x + y }

func (MinPlus) Equal(x, y float64) bool { return x == y }
