// SPDX-License-Identifier: MIT

package polynomial

import (
	"errors"
	"fmt"
)

var (
	// ErrNilArgument is returned when an operand or ring is nil.
	ErrNilArgument = errors.New("polynomial: nil argument")

	// ErrOutOfRange is returned by Coefficient for a position outside [0, Len()).
	ErrOutOfRange = errors.New("polynomial: position out of range")
)

// polynomialErrorf tags err with the calling operation.
func polynomialErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
