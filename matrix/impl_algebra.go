// SPDX-License-Identifier: MIT

// Package matrix - core algebra on *Dense: Dot, Cof, Det, Inv.
//
// Numeric policy:
//   - Det is the recursive first-row cofactor (Laplace) expansion, with the exact
//     summation order entry × sign × det(minor) for j = 0..n-1. It costs O(n!) and
//     is meant for the small feature/kernel blocks this toolkit targets; package
//     ops offers an O(n³) LU determinant for larger inputs.
//   - Inv is the adjugate method: Cof()ᵀ divided element-wise by Det().
//     A determinant that is Almost zero is reported as ErrSingular.

package matrix

import (
	"fmt"
)

// Operation name constants for unified error wrapping.
const (
	opDot = "Dot"
	opCof = "Cof"
	opDet = "Det"
	opInv = "Inv"
)

// Dot returns the matrix product m × o.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch (m.Cols != o.Rows), ErrEmpty.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func (m *Dense) Dot(o *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(m, o); err != nil {
		return nil, matrixErrorf(opDot, err)
	}
	if err := ValidateNonEmpty(m); err != nil {
		return nil, matrixErrorf(opDot, err)
	}
	if err := ValidateNonEmpty(o); err != nil {
		return nil, matrixErrorf(opDot, err)
	}

	return mulDense(m, o), nil
}

// Det returns the determinant by recursive cofactor expansion along the first row.
// Implementation:
//   - Stage 1: validate non-empty square input.
//   - Stage 2: 1×1 → the scalar; otherwise Σ_j a[0][j] · (−1)^j · det(minor(0, j)).
//
// Errors:
//   - ErrNilMatrix, ErrEmpty, ErrNonSquare.
//
// Complexity:
//   - Time O(n!), Space O(n²) across the recursion.
func (m *Dense) Det() (float64, error) {
	if err := ValidateSquareNonEmpty(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	return cofactorDet(m.Raw(), m.Rows()), nil
}

// Cof returns the cofactor matrix: C[i][j] = (−1)^(i+j) · det(minor(i, j)).
// The cofactor matrix of a 1×1 matrix is [1].
//
// Errors:
//   - ErrNilMatrix, ErrEmpty, ErrNonSquare.
//
// Complexity:
//   - Time O(n² · (n-1)!), Space O(n²).
func (m *Dense) Cof() (*Dense, error) {
	if err := ValidateSquareNonEmpty(m); err != nil {
		return nil, matrixErrorf(opCof, err)
	}

	return cofactors(m.Raw(), m.Rows()), nil
}

// Inv returns the inverse by the adjugate method: Cof()ᵀ / Det().
// Implementation:
//   - Stage 1: validate non-empty square input.
//   - Stage 2: compute det; Almost(det, 0, opts...) ⇒ ErrSingular.
//   - Stage 3: transpose the cofactor matrix and divide each element by det.
//
// Inputs:
//   - opts: comparison policy for the singularity check (WithPrecision/WithEpsilon).
//
// Errors:
//   - ErrNilMatrix, ErrEmpty, ErrNonSquare, ErrSingular.
//
// Notes:
//   - Callers that train on kernel sub-blocks should treat ErrSingular as a signal
//     to skip or regularize, not as a crash.
func (m *Dense) Inv(opts ...Option) (*Dense, error) {
	if err := ValidateSquareNonEmpty(m); err != nil {
		return nil, matrixErrorf(opInv, err)
	}
	n := m.Rows()
	det := cofactorDet(m.Raw(), n)
	if Almost(det, 0, opts...) {
		return nil, matrixErrorf(opInv, fmt.Errorf("det=%g: %w", det, ErrSingular))
	}
	adj := cofactors(m.Raw(), n).T()
	if err := adj.DivScalarInPlace(det); err != nil {
		return nil, matrixErrorf(opInv, err)
	}

	return adj, nil
}

// ---------- kernels on flat n×n row-major buffers ----------

// cofactorDet is the recursive Laplace expansion along the first row.
// The empty (0×0) determinant is 1, which makes the 1×1 cofactor equal to 1.
func cofactorDet(a []float64, n int) float64 {
	switch n {
	case 0:
		return 1
	case 1:
		return a[0]
	}
	minor := make([]float64, (n-1)*(n-1))
	det, sign := 0.0, 1.0
	for j := 0; j < n; j++ {
		minorInto(minor, a, n, 0, j)
		det += a[j] * sign * cofactorDet(minor, n-1)
		sign = -sign
	}

	return det
}

// cofactors builds the full cofactor matrix of an n×n buffer.
func cofactors(a []float64, n int) *Dense {
	out := newDense(n, n)
	dst := out.Raw()
	minor := make([]float64, (n-1)*(n-1))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			minorInto(minor, a, n, i, j)
			sign := 1.0
			if (i+j)%2 == 1 {
				sign = -1.0
			}
			dst[i*n+j] = sign * cofactorDet(minor, n-1)
		}
	}

	return out
}

// minorInto writes the (n-1)×(n-1) minor of a without row skipRow and column skipCol into dst.
func minorInto(dst, a []float64, n, skipRow, skipCol int) {
	k := 0
	for i := 0; i < n; i++ {
		if i == skipRow {
			continue
		}
		for j := 0; j < n; j++ {
			if j == skipCol {
				continue
			}
			dst[k] = a[i*n+j]
			k++
		}
	}
}

// mulDense is the row-major i→k→j product kernel; shapes must already be validated.
func mulDense(a, b *Dense) *Dense {
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	out := newDense(aRows, bCols)
	ad, bd, rd := a.Raw(), b.Raw(), out.Raw()
	var rowOffsetA, rowOffsetB, rowOffsetR int
	for i := 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k := 0; k < aCols; k++ {
			av := ad[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * bCols
			for j := 0; j < bCols; j++ {
				rd[rowOffsetR+j] += av * bd[rowOffsetB+j]
			}
		}
	}

	return out
}
