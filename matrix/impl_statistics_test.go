// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/nml/matrix"
)

func TestCenterColumnsAndRows(t *testing.T) {
	x := MustRows(t, [][]float64{{1, 10}, {3, 20}})

	xc, means, err := matrix.CenterColumns(x)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 15}, means)
	RequireRows(t, [][]float64{{-1, -5}, {1, 5}}, xc.(*matrix.Dense))

	xr, rowMeans, err := matrix.CenterRows(hide{x})
	require.NoError(t, err)
	require.Equal(t, []float64{5.5, 11.5}, rowMeans)
	RequireRows(t, [][]float64{{-4.5, 4.5}, {-8.5, 8.5}}, xr.(*matrix.Dense))

	_, _, err = matrix.CenterColumns(matrix.NewEmpty())
	require.ErrorIs(t, err, matrix.ErrEmpty)
}

// TestCovariance_DiagonalIsVar ties Covariance to the population Var reduction.
func TestCovariance_DiagonalIsVar(t *testing.T) {
	x := RandomDense(t, 8, 3, 5)
	cov, _, err := matrix.Covariance(x)
	require.NoError(t, err)
	vars, err := x.Var(matrix.AxisRow)
	require.NoError(t, err)

	for j := 0; j < 3; j++ {
		require.True(t, matrix.Almost(MustAt(t, vars, 0, j), MustAt(t, cov, j, j)))
		for k := 0; k < 3; k++ {
			require.Equal(t, MustAt(t, cov, j, k), MustAt(t, cov, k, j), "symmetric")
		}
	}
}

// TestCovariance_GonumOracle rescales gonum's sample covariance to the population form.
func TestCovariance_GonumOracle(t *testing.T) {
	const r, c = 10, 4
	x := RandomDense(t, r, c, 77)
	cov, _, err := matrix.Covariance(x)
	require.NoError(t, err)

	var want mat.SymDense
	stat.CovarianceMatrix(&want, mat.NewDense(r, c, x.Values()), nil)
	for i := 0; i < c; i++ {
		for j := 0; j < c; j++ {
			require.InDelta(t, want.At(i, j)*(r-1)/r, MustAt(t, cov, i, j), 1e-12)
		}
	}
}

func TestStandardize(t *testing.T) {
	x := MustRows(t, [][]float64{{1, 5}, {3, 5}})
	z, means, stds, err := matrix.Standardize(x)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 5}, means)
	require.Equal(t, []float64{1, 0}, stds)
	RequireRows(t, [][]float64{{-1, 0}, {1, 0}}, z.(*matrix.Dense))
}
