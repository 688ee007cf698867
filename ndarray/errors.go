// SPDX-License-Identifier: MIT
// Package ndarray: sentinel error set.
// All operations return these sentinels (optionally wrapped with call-site
// context via %w); callers match them with errors.Is.

package ndarray

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a shape has no dimensions or a non-positive extent.
	ErrBadShape = errors.New("ndarray: invalid shape")

	// ErrShapeMismatch indicates that two operands disagree on shape where
	// identical shapes are required. There is no broadcasting.
	ErrShapeMismatch = errors.New("ndarray: shape mismatch")

	// ErrIndexOutOfRange indicates a linear or per-dimension index outside its range,
	// or a multi-index with the wrong number of coordinates.
	ErrIndexOutOfRange = errors.New("ndarray: index out of range")

	// ErrDivisionByZero indicates a zero element on the right-hand side of a division.
	ErrDivisionByZero = errors.New("ndarray: division by zero")
)

// arrayErrorf tags err with the Array method that detected it.
func arrayErrorf(method string, err error) error {
	return fmt.Errorf("Array.%s: %w", method, err)
}
