// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the grid, the Dense engine and the kernels.
// This file contains ONLY the public Matrix interface and the Axis selector.
// Errors and options live in dedicated files (errors.go, options.go).
package matrix

import "fmt"

// Matrix represents a two-dimensional mutable array of float64 values.
// Every method enforces bounds checking and returns errors on misuse.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrIndexOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrIndexOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// Complexity: O(rows*cols).
	Clone() Matrix
}

// Axis selects the direction of a reduction, a slice or a concatenation.
//
//	AxisAll (-1): the whole matrix; reductions yield a 1×1 result.
//	AxisRow ( 0): along rows (vertically); reductions yield one value per column (1×c),
//	              slicing/appending/swapping act on rows.
//	AxisCol ( 1): along columns (horizontally); reductions yield one value per row (r×1),
//	              slicing/appending/swapping act on columns.
type Axis int

// Axis selectors.
const (
	AxisAll Axis = -1
	AxisRow Axis = 0
	AxisCol Axis = 1
)

// String implements fmt.Stringer.
func (a Axis) String() string {
	switch a {
	case AxisAll:
		return "all"
	case AxisRow:
		return "row"
	case AxisCol:
		return "col"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}
