// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, private element-wise and broadcast kernels (ew*) shared by the
//     statistics transforms and the comparison helpers.
//   - Keep all loops deterministic with Dense fast-paths.
//
// Determinism & Performance:
//   - Fixed loop orders (i→j or flat 0..n-1).
//   - No hidden allocations beyond the output Dense; O(r*c) time and space.

package matrix

import (
	"fmt"
	"math"
)

const (
	opBroadcastSubCols = "broadcastSubCols"
	opBroadcastSubRows = "broadcastSubRows"
	opScaleCols        = "scaleCols"
	opAllClose         = "AllClose"
)

// ewMap computes out[i,j] = f(i, j, X[i,j]) with a Dense fast path.
func ewMap(X Matrix, tag string, f func(i, j int, v float64) float64) (*Dense, error) {
	r, c := X.Rows(), X.Cols()
	out := newDense(r, c)

	if d, ok := X.(*Dense); ok {
		src, dst := d.Raw(), out.Raw()
		for i := 0; i < r; i++ {
			base := i * c
			for j := 0; j < c; j++ {
				dst[base+j] = f(i, j, src[base+j])
			}
		}
		return out, nil
	}

	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := X.At(i, j)
			if err != nil {
				return nil, atErr(tag, i, j, err)
			}
			if err = out.Set(i, j, f(i, j, v)); err != nil {
				return nil, setErr(tag, i, j, err)
			}
		}
	}

	return out, nil
}

// ewBroadcastSubCols computes out[i,j] = X[i,j] - colMeans[j].
// Time: O(r*c). Space: O(r*c).
func ewBroadcastSubCols(X Matrix, colMeans []float64) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opBroadcastSubCols, err)
	}
	if err := ValidateVecLen(colMeans, X.Cols()); err != nil {
		return nil, matrixErrorf(opBroadcastSubCols, err)
	}

	return ewMap(X, opBroadcastSubCols, func(_, j int, v float64) float64 { return v - colMeans[j] })
}

// ewBroadcastSubRows computes out[i,j] = X[i,j] - rowMeans[i].
func ewBroadcastSubRows(X Matrix, rowMeans []float64) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opBroadcastSubRows, err)
	}
	if err := ValidateVecLen(rowMeans, X.Rows()); err != nil {
		return nil, matrixErrorf(opBroadcastSubRows, err)
	}

	return ewMap(X, opBroadcastSubRows, func(i, _ int, v float64) float64 { return v - rowMeans[i] })
}

// ewScaleCols computes out[i,j] = X[i,j] * scale[j].
// Use factors 1/std for z-scoring, or 1 to leave a degenerate column untouched.
func ewScaleCols(X Matrix, scale []float64) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opScaleCols, err)
	}
	if err := ValidateVecLen(scale, X.Cols()); err != nil {
		return nil, matrixErrorf(opScaleCols, err)
	}

	return ewMap(X, opScaleCols, func(_, j int, v float64) float64 { return v * scale[j] })
}

// ewAllClose checks element-wise |a-b| <= atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - Negative tolerances are normalized to their absolute value; NaN/Inf tolerances
//     are rejected with ErrIndexOutOfRange.
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, fmt.Errorf("rtol=%g atol=%g: %w", rtol, atol, ErrIndexOutOfRange))
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	within := func(x, y float64) bool { return math.Abs(x-y) <= atol+rtol*math.Abs(y) }

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			ad, bd := da.Raw(), db.Raw()
			for idx := range ad {
				if !within(ad[idx], bd[idx]) {
					return false, nil // early exit on first violation
				}
			}
			return true, nil
		}
	}

	r, c := a.Rows(), a.Cols()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			av, err := a.At(i, j)
			if err != nil {
				return false, atErr(opAllClose, i, j, err)
			}
			bv, err := b.At(i, j)
			if err != nil {
				return false, atErr(opAllClose, i, j, err)
			}
			if !within(av, bv) {
				return false, nil
			}
		}
	}

	return true, nil
}
