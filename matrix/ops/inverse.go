// SPDX-License-Identifier: MIT

// Inverse and Solve use the pivoted LU factors and forward/backward substitution.
package ops

import (
	"fmt"

	"github.com/katalvlaran/nml/matrix"
)

// ZeroSum is the initial accumulator of the substitution sums.
const ZeroSum = 0.0

// substitute solves L·U·x = b in place of x; L is unit lower, U upper with non-zero diagonal.
func substitute(L, U []float64, n int, b, y, x []float64) {
	var (
		i, k int
		sum  float64
	)
	// Forward substitution: L·y = b
	for i = 0; i < n; i++ {
		sum = ZeroSum
		for k = 0; k < i; k++ {
			sum += L[i*n+k] * y[k]
		}
		y[i] = b[i] - sum
	}
	// Backward substitution: U·x = y
	for i = n - 1; i >= 0; i-- {
		sum = ZeroSum
		for k = i + 1; k < n; k++ {
			sum += U[i*n+k] * x[k]
		}
		x[i] = (y[i] - sum) / U[i*n+i]
	}
}

// Solve returns x with A·x = b for a square non-singular A.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrEmpty, matrix.ErrNonSquare, matrix.ErrSingular.
//   - matrix.ErrShapeMismatch when len(b) != n.
//
// Complexity: O(n³) for the factorization, O(n²) for the substitution.
func Solve(m *matrix.Dense, b []float64) ([]float64, error) {
	L, U, perm, _, err := LU(m)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	n := len(perm)
	if err = matrix.ValidateVecLen(b, n); err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	pb := make([]float64, n)
	for i, p := range perm {
		pb[i] = b[p]
	}
	y, x := make([]float64, n), make([]float64, n)
	substitute(L.Raw(), U.Raw(), n, pb, y, x)

	return x, nil
}

// Inverse returns A⁻¹, or an error if A is not square or is singular.
// Blueprint:
//
//	Stage 1 (Decompose): P·A = L·U.
//	Stage 2 (Execute):   for each basis vector e_col solve L·U·x = P·e_col.
//	Stage 3 (Finalize):  x is column col of the inverse.
//
// Complexity: O(n³) time, O(n²) memory.
func Inverse(m *matrix.Dense) (*matrix.Dense, error) {
	L, U, perm, _, err := LU(m)
	if err != nil {
		return nil, fmt.Errorf("Inverse: %w", err)
	}
	n := len(perm)
	inv, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("Inverse: %w", err)
	}
	lr, ur, out := L.Raw(), U.Raw(), inv.Raw()
	e, y, x := make([]float64, n), make([]float64, n), make([]float64, n)
	for col := 0; col < n; col++ {
		for i, p := range perm {
			e[i] = 0
			if p == col {
				e[i] = 1
			}
		}
		substitute(lr, ur, n, e, y, x)
		for i := 0; i < n; i++ {
			out[i*n+col] = x[i]
		}
	}

	return inv, nil
}
