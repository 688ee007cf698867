// SPDX-License-Identifier: MIT

// Package matrix - canonical constructors and structural transforms.
//
// Exposed API:
//   - Values(shape, v) / Zeros(shape) / Ones(shape): fixed-fill matrices.
//   - Eyes(n): the n×n identity.
//   - Permut(n, i, j): the identity with rows i and j exchanged.
//   - (*Dense).Diag(): square → diagonal column; vector → diagonal matrix.
//   - (*Dense).Uniq(): distinct values, ascending, as one row.

package matrix

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/nml/ndarray"
)

// Operation name constants for unified error wrapping.
const (
	opValues = "Values"
	opEyes   = "Eyes"
	opPermut = "Permut"
	opDiag   = "Diag"
)

// Values returns a matrix of the given rank-2 shape with every element set to v.
//
// Errors:
//   - ErrBadShape when the shape is not rank 2 or has a non-positive extent.
func Values(shape ndarray.Shape, v float64) (*Dense, error) {
	if shape.Rank() != gridRank {
		return nil, matrixErrorf(opValues, fmt.Errorf("rank %d: %w", shape.Rank(), ErrBadShape))
	}
	a, err := ndarray.NewFilled(shape, v)
	if err != nil {
		return nil, matrixErrorf(opValues, err)
	}

	return &Dense{Grid: Grid[float64]{Array: *a}}, nil
}

// Zeros returns a matrix of the given shape filled with 0.
func Zeros(shape ndarray.Shape) (*Dense, error) { return Values(shape, 0) }

// Ones returns a matrix of the given shape filled with 1.
func Ones(shape ndarray.Shape) (*Dense, error) { return Values(shape, 1) }

// Eyes returns the n×n identity matrix.
//
// Errors:
//   - ErrBadShape when n <= 0.
func Eyes(n int) (*Dense, error) {
	if n <= 0 {
		return nil, matrixErrorf(opEyes, fmt.Errorf("n=%d: %w", n, ErrBadShape))
	}
	out := newDense(n, n)
	buf := out.Raw()
	for i := 0; i < n; i++ {
		buf[i*n+i] = 1
	}

	return out, nil
}

// Permut returns the n×n elementary permutation matrix that exchanges rows i and j:
// Permut(n, i, j).Dot(A) swaps rows i and j of A; A.Dot(Permut(n, i, j)) swaps columns.
//
// Errors:
//   - ErrBadShape when n <= 0.
//   - ErrIndexOutOfRange when i or j is outside [0, n).
func Permut(n, i, j int) (*Dense, error) {
	p, err := Eyes(n)
	if err != nil {
		return nil, matrixErrorf(opPermut, err)
	}
	if err = p.Swap(i, j, AxisRow); err != nil {
		return nil, matrixErrorf(opPermut, err)
	}

	return p, nil
}

// Diag converts between a square matrix and its main diagonal.
// Implementation:
//   - Square n×n input: returns the diagonal as an n×1 column.
//   - Vector input (1×n or n×1, n > 1): returns the n×n matrix with the vector on its diagonal.
//
// Behavior highlights:
//   - A 1×1 matrix is square and maps to itself.
//
// Errors:
//   - ErrEmpty for an empty matrix.
//   - ErrNonSquare for any other shape.
//
// Complexity:
//   - Time O(n) for extraction, O(n²) for construction.
func (m *Dense) Diag() (*Dense, error) {
	if err := ValidateNonEmpty(m); err != nil {
		return nil, matrixErrorf(opDiag, err)
	}
	r, c := m.Dims()
	src := m.Raw()
	switch {
	case r == c:
		out := newDense(r, 1)
		dst := out.Raw()
		for i := 0; i < r; i++ {
			dst[i] = src[i*c+i]
		}
		return out, nil
	case r == 1 || c == 1:
		n := len(src)
		out := newDense(n, n)
		dst := out.Raw()
		for i, v := range src {
			dst[i*n+i] = v
		}
		return out, nil
	default:
		return nil, matrixErrorf(opDiag, fmt.Errorf("%dx%d is neither square nor a vector: %w", r, c, ErrNonSquare))
	}
}

// Uniq returns the distinct element values in ascending order as a 1×k row.
// Duplicates are collapsed by exact equality. An empty matrix yields the empty matrix.
// Complexity: O(n log n).
func (m *Dense) Uniq() *Dense {
	vals := m.Values()
	if len(vals) == 0 {
		return NewEmpty()
	}
	slices.Sort(vals)
	vals = slices.Compact(vals)
	out := newDense(1, len(vals))
	copy(out.Raw(), vals)

	return out
}
