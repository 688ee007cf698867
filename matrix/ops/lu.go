// SPDX-License-Identifier: MIT

// Package ops provides O(n³) factorization routines for the nml/matrix package:
// LU with partial pivoting, the determinant and inverse built on it, linear
// solves, and Jacobi eigen-decomposition of symmetric matrices.
//
// The cofactor Det/Inv of package matrix stay the reference results; the routines
// here agree with them within tolerance and scale to larger inputs.
package ops

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/nml/matrix"
)

// ZeroPivot is the sentinel for detecting a zero pivot.
const ZeroPivot = 0.0

// LU performs Doolittle LU decomposition with partial pivoting: P·A = L·U.
// Blueprint:
//
//	Stage 1 (Validate): m must be a non-empty square matrix.
//	Stage 2 (Prepare):  copy A into a flat working buffer; perm = identity.
//	Stage 3 (Execute):  for each column k pick the row with the largest |a[i][k]|,
//	                    swap it up, then eliminate below the pivot storing the
//	                    multipliers in place.
//	Stage 4 (Finalize): split the buffer into unit-lower L and upper U.
//
// Returns:
//   - L, U: the factors.
//   - perm: row i of P·A is row perm[i] of A.
//   - sign: +1 or -1, the parity of the row exchanges.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrEmpty, matrix.ErrNonSquare.
//   - matrix.ErrSingular when a pivot column is entirely zero.
//
// Complexity: O(n³) time, O(n²) memory.
func LU(m *matrix.Dense) (L, U *matrix.Dense, perm []int, sign float64, err error) {
	// Stage 1: Validate input
	if err = matrix.ValidateSquareNonEmpty(m); err != nil {
		return nil, nil, nil, 0, fmt.Errorf("LU: %w", err)
	}
	n := m.Rows()

	// Stage 2: Working copy and identity permutation
	a := m.Values()
	perm = make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sign = 1

	// Stage 3: Elimination with partial pivoting
	var (
		i, j, k, p int
		best, piv  float64
	)
	for k = 0; k < n; k++ {
		p, best = k, math.Abs(a[k*n+k])
		for i = k + 1; i < n; i++ {
			if v := math.Abs(a[i*n+k]); v > best {
				p, best = i, v
			}
		}
		if best == ZeroPivot {
			return nil, nil, nil, 0, fmt.Errorf("LU: zero pivot in column %d: %w", k, matrix.ErrSingular)
		}
		if p != k {
			for j = 0; j < n; j++ {
				a[k*n+j], a[p*n+j] = a[p*n+j], a[k*n+j]
			}
			perm[k], perm[p] = perm[p], perm[k]
			sign = -sign
		}
		piv = a[k*n+k]
		for i = k + 1; i < n; i++ {
			l := a[i*n+k] / piv
			a[i*n+k] = l
			if l == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				a[i*n+j] -= l * a[k*n+j]
			}
		}
	}

	// Stage 4: Split into L and U
	lower, upper := make([]float64, n*n), make([]float64, n*n)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			switch {
			case j < i:
				lower[i*n+j] = a[i*n+j]
			case j == i:
				lower[i*n+j] = 1
				upper[i*n+j] = a[i*n+j]
			default:
				upper[i*n+j] = a[i*n+j]
			}
		}
	}
	if L, err = matrix.FromSliceRows(lower, n); err != nil {
		return nil, nil, nil, 0, fmt.Errorf("LU: %w", err)
	}
	if U, err = matrix.FromSliceRows(upper, n); err != nil {
		return nil, nil, nil, 0, fmt.Errorf("LU: %w", err)
	}

	return L, U, perm, sign, nil
}

// Det returns det(A) = sign · Π U[i][i]. A singular matrix has determinant 0.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrEmpty, matrix.ErrNonSquare.
func Det(m *matrix.Dense) (float64, error) {
	_, U, _, sign, err := LU(m)
	if errors.Is(err, matrix.ErrSingular) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("Det: %w", err)
	}
	det := sign
	for i := 0; i < U.Rows(); i++ {
		v, _ := U.At(i, i) // in range by construction
		det *= v
	}

	return det, nil
}
