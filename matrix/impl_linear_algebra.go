// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition, subtraction, Hadamard product, matrix multiplication,
// transpose, scalar scaling and matrix-vector product. All functions validate
// fail-fast and return wrapped sentinels on shape mismatches.
//
// Notes:
//   - Every kernel has a *Dense fast path over the flat buffer and a generic
//     At/Set fallback with fixed i→j order.
//   - Results are always freshly allocated *Dense values; operands are never mutated.

package matrix

import (
	"fmt"
)

// ZeroSum is the initial accumulator of dot products.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opHadamard  = "Hadamard"
	opDiv       = "Div"
	opMatVec    = "MatVec"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// atErr and setErr attach the failing coordinates in fallback loops.
func atErr(tag string, i, j int, err error) error {
	return matrixErrorf(tag, fmt.Errorf("At(%d,%d): %w", i, j, err))
}

func setErr(tag string, i, j int, err error) error {
	return matrixErrorf(tag, fmt.Errorf("Set(%d,%d): %w", i, j, err))
}

// zip computes out[i,j] = f(a[i,j], b[i,j]) for same-shape operands.
// Internal helper shared by Add, Sub and Hadamard.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate the result.
//   - Stage 2: Fast path if both are *Dense - single flat loop 0..n-1.
//     Otherwise, fallback At/Set with fixed i→j order.
func zip(a, b Matrix, opTag string, f func(x, y float64) float64) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	rows, cols := a.Rows(), a.Cols()
	res := newDense(rows, cols)

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			ad, bd, rd := da.Raw(), db.Raw(), res.Raw()
			for idx := range rd {
				rd[idx] = f(ad[idx], bd[idx])
			}
			return res, nil
		}
	}

	var (
		i, j   int
		av, bv float64
		err    error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, atErr(opTag, i, j, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, atErr(opTag, i, j, err)
			}
			if err = res.Set(i, j, f(av, bv)); err != nil {
				return nil, setErr(opTag, i, j, err)
			}
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrShapeMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (Matrix, error) {
	return zip(a, b, opAdd, func(x, y float64) float64 { return x + y })
}

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrShapeMismatch (shape mismatch).
func Sub(a, b Matrix) (Matrix, error) {
	return zip(a, b, opSub, func(x, y float64) float64 { return x - y })
}

// Hadamard computes the element-wise product (a ⊙ b) with a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrShapeMismatch (shape mismatch).
func Hadamard(a, b Matrix) (Matrix, error) {
	return zip(a, b, opHadamard, func(x, y float64) float64 { return x * y })
}

// Div computes the element-wise quotient C = A / B.
// B is scanned first; any zero element yields ErrDivisionByZero and no result.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch, ErrDivisionByZero.
func Div(a, b Matrix) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opDiv, err)
	}
	rows, cols := b.Rows(), b.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := b.At(i, j)
			if err != nil {
				return nil, atErr(opDiv, i, j, err)
			}
			if v == 0 {
				return nil, matrixErrorf(opDiv, fmt.Errorf("divisor at (%d,%d): %w", i, j, ErrDivisionByZero))
			}
		}
	}

	return zip(a, b, opDiv, func(x, y float64) float64 { return x / y })
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use the i→k→j kernel shared with Dense.Dot;
//     otherwise use i→j→k with a fixed order and zero-skip on A[i,k].
//
// Errors:
//   - ErrNilMatrix (nil input), ErrShapeMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			return mulDense(da, db), nil
		}
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res := newDense(aRows, bCols)
	var (
		i, j, k         int
		av, bv, current float64
		err             error
	)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, atErr(opMul, i, k, err)
				}
				if av == 0 {
					continue // skip zero for performance
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, atErr(opMul, k, j, err)
				}
				current += av * bv
			}
			if err = res.Set(i, j, current); err != nil {
				return nil, setErr(opMul, i, j, err)
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The *Dense fast path is Dense.T.
//
// Errors:
//   - ErrNilMatrix.
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	if dm, ok := m.(*Dense); ok {
		return dm.T(), nil
	}

	rows, cols := m.Rows(), m.Cols()
	res := newDense(cols, rows)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, atErr(opTranspose, i, j, err)
			}
			if err = res.Set(j, i, v); err != nil {
				return nil, setErr(opTranspose, j, i, err)
			}
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
//
// Errors:
//   - ErrNilMatrix.
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if dm, ok := m.(*Dense); ok {
		out := dm.Copy()
		out.ScaleInPlace(alpha)
		return out, nil
	}

	rows, cols := m.Rows(), m.Cols()
	res := newDense(rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, atErr(opScale, i, j, err)
			}
			if err = res.Set(i, j, alpha*v); err != nil {
				return nil, setErr(opScale, i, j, err)
			}
		}
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
// Inputs: m (r×c), x (len c). Returns y (len r).
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch (len(x) != c).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	if err := ValidateVecLen(x, cols); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := make([]float64, rows)

	if dm, ok := m.(*Dense); ok {
		for i := 0; i < rows; i++ {
			acc := ZeroSum
			for j, v := range dm.row(i) {
				acc += v * x[j]
			}
			y[i] = acc
		}
		return y, nil
	}

	for i := 0; i < rows; i++ {
		acc := ZeroSum
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, atErr(opMatVec, i, j, err)
			}
			acc += v * x[j]
		}
		y[i] = acc
	}

	return y, nil
}
