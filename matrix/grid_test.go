// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nml/matrix"
	"github.com/katalvlaran/nml/ndarray"
)

func TestGrid_GenericInt(t *testing.T) {
	g, err := matrix.NewGrid[int](2, 3)
	require.NoError(t, err)
	require.Equal(t, 2, g.Rows())
	require.Equal(t, 3, g.Cols())
	require.Equal(t, 6, g.Len())

	require.NoError(t, g.Set(1, 2, 7))
	v, err := g.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7, v)
	flat, err := g.Flat(5)
	require.NoError(t, err)
	require.Equal(t, 7, flat, "row-major offset i*cols+j")

	_, err = g.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfRange)
	require.ErrorIs(t, g.Set(0, -1, 1), matrix.ErrIndexOutOfRange)
}

func TestGrid_BadShape(t *testing.T) {
	_, err := matrix.NewGrid[float32](0, 3)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.NewDense(2, -1)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestGrid_CloneIsDeep(t *testing.T) {
	g, err := matrix.NewGrid[int64](2, 2)
	require.NoError(t, err)
	c := g.Clone()
	require.NoError(t, c.Set(0, 0, 9))
	v, _ := g.At(0, 0)
	require.Zero(t, v)
}

func TestGridFromArray(t *testing.T) {
	a, err := ndarray.Wrap(ndarray.Shape{2, 2}, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	g, err := matrix.GridFromArray(a)
	require.NoError(t, err)
	require.NoError(t, a.SetFlat(0, 100))
	v, _ := g.At(0, 0)
	require.Equal(t, 1.0, v, "grid must own a copy")

	cube, err := ndarray.New[float64](ndarray.Shape{2, 2, 2})
	require.NoError(t, err)
	_, err = matrix.GridFromArray(cube)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.GridFromArray[float64](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	d, err := matrix.FromArray(a)
	require.NoError(t, err)
	require.Equal(t, 2, d.Rows())
}
