// SPDX-License-Identifier: MIT

// Eigen computes all eigenvalues and eigenvectors of a real symmetric matrix
// using classical Jacobi rotations. Covariance matrices are its main input.
package ops

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/nml/matrix"
)

// ErrNotSymmetric is returned when the input matrix is not symmetric.
var ErrNotSymmetric = errors.New("ops: matrix is not symmetric")

// ErrEigenFailed is returned if the algorithm does not converge within max iterations.
var ErrEigenFailed = errors.New("ops: eigen decomposition did not converge")

// Eigen performs Jacobi eigenvalue decomposition on a symmetric matrix m.
// It returns the eigenvalues in descending order and the matrix Q whose column k
// is the unit eigenvector of eigenvalue k.
// tol is both the symmetry tolerance and the convergence threshold on the largest
// off-diagonal magnitude; maxIter caps the number of rotations.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrEmpty, matrix.ErrNonSquare.
//   - ErrNotSymmetric, ErrEigenFailed.
//
// Complexity: O(n²) per rotation to locate the pivot plus O(n) to apply it.
func Eigen(m *matrix.Dense, tol float64, maxIter int) ([]float64, *matrix.Dense, error) {
	// Stage 1: Validate input
	if err := matrix.ValidateSquareNonEmpty(m); err != nil {
		return nil, nil, fmt.Errorf("Eigen: %w", err)
	}
	n := m.Rows()
	a := m.Values()
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if math.Abs(a[i*n+j]-a[j*n+i]) > tol {
				return nil, nil, fmt.Errorf("Eigen: (%d,%d): %w", i, j, ErrNotSymmetric)
			}
		}
	}

	// Stage 2: Q starts as the identity
	q := make([]float64, n*n)
	for i = 0; i < n; i++ {
		q[i*n+i] = 1
	}

	// Stage 3: Rotate away the largest off-diagonal element until it drops below tol
	var (
		iter, p, r         int
		maxOff             float64
		theta, t, c, s     float64
		app, aqq, apq      float64
		arp, arq, vrp, vrq float64
		converged          bool
	)
	for iter = 0; iter < maxIter; iter++ {
		maxOff, p, r = 0, 0, 0
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if v := math.Abs(a[i*n+j]); v > maxOff {
					maxOff, p, r = v, i, j
				}
			}
		}
		if maxOff <= tol {
			converged = true
			break
		}
		app, aqq, apq = a[p*n+p], a[r*n+r], a[p*n+r]
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1/(math.Abs(theta)+math.Sqrt(theta*theta+1)), theta)
		c = 1 / math.Sqrt(t*t+1)
		s = t * c

		for k := 0; k < n; k++ {
			if k == p || k == r {
				continue
			}
			arp, arq = a[k*n+p], a[k*n+r]
			a[k*n+p] = c*arp - s*arq
			a[p*n+k] = a[k*n+p]
			a[k*n+r] = s*arp + c*arq
			a[r*n+k] = a[k*n+r]
		}
		a[p*n+p] = app - t*apq
		a[r*n+r] = aqq + t*apq
		a[p*n+r], a[r*n+p] = 0, 0

		for k := 0; k < n; k++ {
			vrp, vrq = q[k*n+p], q[k*n+r]
			q[k*n+p] = c*vrp - s*vrq
			q[k*n+r] = s*vrp + c*vrq
		}
	}
	if !converged {
		return nil, nil, fmt.Errorf("Eigen: %d rotations: %w", maxIter, ErrEigenFailed)
	}

	// Stage 4: Order eigenpairs by descending eigenvalue
	order := make([]int, n)
	for i = range order {
		order[i] = i
	}
	sort.SliceStable(order, func(x, y int) bool { return a[order[x]*n+order[x]] > a[order[y]*n+order[y]] })
	eigs := make([]float64, n)
	vecs := make([]float64, n*n)
	for k, src := range order {
		eigs[k] = a[src*n+src]
		for i = 0; i < n; i++ {
			vecs[i*n+k] = q[i*n+src]
		}
	}
	Q, err := matrix.FromSliceRows(vecs, n)
	if err != nil {
		return nil, nil, fmt.Errorf("Eigen: %w", err)
	}

	return eigs, Q, nil
}
