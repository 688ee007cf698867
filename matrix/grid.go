// SPDX-License-Identifier: MIT

// Package matrix - Grid: the rank-2 specialization of ndarray.Array.
//
// Purpose:
//   - Fix the rank of the generic array to 2 and expose Rows/Cols as read-only
//     properties derived from the shape.
//   - Provide (i, j) accessors with the row-major offset i*cols + j.
//
// Grid adds no invariant beyond the generic array's; Dense builds the
// linear-algebra surface on top of Grid[float64].

package matrix

import (
	"fmt"

	"github.com/katalvlaran/nml/ndarray"
)

// gridRank is the fixed rank of every Grid.
const gridRank = 2

// gridErrorf wraps an error with a uniform Grid context and callsite indices.
func gridErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, row, col, err)
}

// Grid is a two-dimensional array of T stored row-major.
// The embedded Array keeps exclusive ownership of the buffer.
type Grid[T ndarray.Number] struct {
	ndarray.Array[T]
}

// NewGrid allocates a rows×cols grid of zero values.
//
// Errors:
//   - ErrBadShape when rows <= 0 or cols <= 0.
func NewGrid[T ndarray.Number](rows, cols int) (*Grid[T], error) {
	a, err := ndarray.New[T](ndarray.Shape{rows, cols})
	if err != nil {
		return nil, err
	}

	return &Grid[T]{Array: *a}, nil
}

// GridFromArray deep-copies a rank-2 array into a Grid.
//
// Errors:
//   - ErrNilMatrix for a nil array.
//   - ErrBadShape when the array's rank is not 2.
func GridFromArray[T ndarray.Number](a *ndarray.Array[T]) (*Grid[T], error) {
	if a == nil {
		return nil, fmt.Errorf("GridFromArray: %w", ErrNilMatrix)
	}
	if a.Rank() != gridRank {
		return nil, fmt.Errorf("GridFromArray: rank %d: %w", a.Rank(), ErrBadShape)
	}

	return &Grid[T]{Array: *a.Clone()}, nil
}

// emptyGrid returns a 0×0 grid.
func emptyGrid[T ndarray.Number]() Grid[T] {
	return Grid[T]{Array: *ndarray.Empty[T](gridRank)}
}

// Rows returns the row count.
func (g *Grid[T]) Rows() int { return g.Dim(0) }

// Cols returns the column count.
func (g *Grid[T]) Cols() int { return g.Dim(1) }

// Dims returns (rows, cols).
func (g *Grid[T]) Dims() (rows, cols int) { return g.Dim(0), g.Dim(1) }

// At returns the element at (row, col) or ErrIndexOutOfRange.
func (g *Grid[T]) At(row, col int) (T, error) {
	v, err := g.Array.At(row, col)
	if err != nil {
		return v, gridErrorf("At", row, col, err)
	}

	return v, nil
}

// Set stores v at (row, col) or returns ErrIndexOutOfRange.
func (g *Grid[T]) Set(row, col int, v T) error {
	if err := g.Array.Set(v, row, col); err != nil {
		return gridErrorf("Set", row, col, err)
	}

	return nil
}

// Clone returns a deep copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	return &Grid[T]{Array: *g.Array.Clone()}
}

// row returns the live slice of row i; i must be in range.
func (g *Grid[T]) row(i int) []T {
	c := g.Cols()
	return g.Raw()[i*c : (i+1)*c]
}
