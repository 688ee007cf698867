// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the column-wise transforms used to prepare feature matrices
//     (centering, z-scoring, covariance) as compositions over the canonical
//     kernels (Mul/Transpose) and the ew* micro-kernels.
//
// Exposed API:
//   - CenterColumns(X) -> (Xc, means)        // subtract per-column mean
//   - CenterRows(X)    -> (Xc, means)        // subtract per-row mean
//   - Covariance(X)    -> (Cov, means)       // population covariance: (Xcᵀ Xc)/r
//   - Standardize(X)   -> (Z, means, stds)   // z-score per column; std=0 columns only centered
//
// Covariance divides by r, the same convention as Dense.Var, so the diagonal of
// Covariance(X) equals X.Var(AxisRow).

package matrix

import "math"

const (
	opCenterColumns = "CenterColumns"
	opCenterRows    = "CenterRows"
	opCovariance    = "Covariance"
	opStandardize   = "Standardize"
)

// laneMeans returns per-column (AxisRow) or per-row (AxisCol) means.
func laneMeans(X Matrix, axis Axis, tag string) ([]float64, error) {
	r, c := X.Rows(), X.Cols()
	var means []float64
	if axis == AxisRow {
		means = make([]float64, c)
	} else {
		means = make([]float64, r)
	}

	if d, ok := X.(*Dense); ok {
		src := d.Raw()
		for i := 0; i < r; i++ {
			base := i * c
			for j := 0; j < c; j++ {
				if axis == AxisRow {
					means[j] += src[base+j]
				} else {
					means[i] += src[base+j]
				}
			}
		}
	} else {
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				v, err := X.At(i, j)
				if err != nil {
					return nil, atErr(tag, i, j, err)
				}
				if axis == AxisRow {
					means[j] += v
				} else {
					means[i] += v
				}
			}
		}
	}

	n := float64(r)
	if axis == AxisCol {
		n = float64(c)
	}
	for k := range means {
		means[k] /= n
	}

	return means, nil
}

// CenterColumns subtracts the per-column mean from every element.
// Implementation:
//   - Stage 1: Validate X (non-nil, non-empty).
//   - Stage 2: Compute column means in a deterministic i→j pass.
//   - Stage 3: Apply ewBroadcastSubCols to produce a centered copy.
//
// Returns:
//   - Matrix: centered copy (r×c).
//   - []float64: column means (len=c).
//
// Errors:
//   - ErrNilMatrix, ErrEmpty.
func CenterColumns(X Matrix) (Matrix, []float64, error) {
	if err := ValidateNonEmpty(X); err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	means, err := laneMeans(X, AxisRow, opCenterColumns)
	if err != nil {
		return nil, nil, err
	}
	Xc, err := ewBroadcastSubCols(X, means)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	return Xc, means, nil
}

// CenterRows subtracts the per-row mean from every element.
//
// Errors:
//   - ErrNilMatrix, ErrEmpty.
func CenterRows(X Matrix) (Matrix, []float64, error) {
	if err := ValidateNonEmpty(X); err != nil {
		return nil, nil, matrixErrorf(opCenterRows, err)
	}
	means, err := laneMeans(X, AxisCol, opCenterRows)
	if err != nil {
		return nil, nil, err
	}
	Xc, err := ewBroadcastSubRows(X, means)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterRows, err)
	}

	return Xc, means, nil
}

// Covariance computes the population covariance of the columns: Cov = (Xcᵀ Xc)/r.
// Implementation:
//   - Stage 1: CenterColumns(X).
//   - Stage 2: Xcᵀ via Transpose, product via Mul.
//   - Stage 3: scale by 1/r.
//
// Returns:
//   - Matrix: symmetric c×c covariance.
//   - []float64: column means.
//
// Errors:
//   - ErrNilMatrix, ErrEmpty.
//
// Complexity:
//   - Time O(r*c²), Space O(c²).
func Covariance(X Matrix) (Matrix, []float64, error) {
	Xc, means, err := CenterColumns(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	Xct, err := Transpose(Xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	cov, err := Mul(Xct, Xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	cov.(*Dense).ScaleInPlace(1 / float64(X.Rows()))

	return cov, means, nil
}

// Standardize z-scores every column: Z[i,j] = (X[i,j] - mean_j) / std_j.
// Columns with zero standard deviation are only centered (they become all zeros).
//
// Returns:
//   - Matrix: standardized copy.
//   - []float64: column means.
//   - []float64: column population standard deviations.
//
// Errors:
//   - ErrNilMatrix, ErrEmpty.
func Standardize(X Matrix) (Matrix, []float64, []float64, error) {
	Xc, means, err := CenterColumns(X)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opStandardize, err)
	}
	centered := Xc.(*Dense)
	r, c := centered.Dims()
	stds := make([]float64, c)
	src := centered.Raw()
	for i := 0; i < r; i++ {
		base := i * c
		for j := 0; j < c; j++ {
			stds[j] += src[base+j] * src[base+j]
		}
	}
	scale := make([]float64, c)
	for j := range stds {
		stds[j] = math.Sqrt(stds[j] / float64(r))
		scale[j] = 1
		if stds[j] > 0 {
			scale[j] = 1 / stds[j]
		}
	}
	Z, err := ewScaleCols(centered, scale)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opStandardize, err)
	}

	return Z, means, stds, nil
}
