// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check them
// via errors.Is. No operation panics on user-triggered error conditions.

package matrix

import (
	"errors"

	"github.com/katalvlaran/nml/ndarray"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Storage-level conditions are shared with package ndarray: the matrix names below
// are the very same values, so errors.Is matches whichever layer detected them.
// Every other message is prefixed with "matrix: ...". Context is attached with
// fmt.Errorf("ctx: %w", ErrX) at the detection site.

var (
	// ErrShapeMismatch indicates incompatible operand shapes: element-wise
	// arithmetic on different shapes, Dot with a.Cols != b.Rows, or appending
	// matrices whose non-stacked extent differs.
	ErrShapeMismatch = ndarray.ErrShapeMismatch

	// ErrIndexOutOfRange indicates a row/column/linear index, an axis selector
	// or a slicing interval outside its valid domain.
	ErrIndexOutOfRange = ndarray.ErrIndexOutOfRange

	// ErrDivisionByZero indicates a zero element-wise or scalar divisor.
	ErrDivisionByZero = ndarray.ErrDivisionByZero

	// ErrBadShape is returned when a requested shape is invalid (rank != 2 or extent <= 0).
	ErrBadShape = ndarray.ErrBadShape

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned when the determinant is numerically zero during inversion,
	// or a zero pivot is met by the LU kernels in package ops.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrIndivisibleReshape indicates that the element count is not evenly
	// divisible by the requested row count.
	ErrIndivisibleReshape = errors.New("matrix: element count not divisible by row count")

	// ErrEmpty indicates an operation that needs at least one element was given none.
	ErrEmpty = errors.New("matrix: empty matrix")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// BACKWARD-COMPATIBILITY ALIASES.

// ErrDimensionMismatch names the same condition as ErrShapeMismatch.
var ErrDimensionMismatch = ErrShapeMismatch // Deprecated: use ErrShapeMismatch.

// ErrOutOfRange names the same condition as ErrIndexOutOfRange.
var ErrOutOfRange = ErrIndexOutOfRange // Deprecated: use ErrIndexOutOfRange.
