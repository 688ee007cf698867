// SPDX-License-Identifier: MIT

package ndarray_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nml/ndarray"
)

func mustWrap[T ndarray.Number](t *testing.T, shape ndarray.Shape, data []T) *ndarray.Array[T] {
	t.Helper()
	a, err := ndarray.Wrap(shape, data)
	require.NoError(t, err)

	return a
}

func TestEmpty(t *testing.T) {
	t.Parallel()

	a := ndarray.Empty[float64](2)
	require.True(t, a.Empty())
	require.Equal(t, 0, a.Len())
	require.Equal(t, 2, a.Rank())
	require.Nil(t, a.Raw())
}

func TestNew_DefaultAndFilled(t *testing.T) {
	t.Parallel()

	a, err := ndarray.New[int](ndarray.Shape{2, 3})
	require.NoError(t, err)
	require.Equal(t, []int{0, 0, 0, 0, 0, 0}, a.Values())
	require.False(t, a.Empty())

	f, err := ndarray.NewFilled(ndarray.Shape{2, 2}, 1.5)
	require.NoError(t, err)
	require.Equal(t, []float64{1.5, 1.5, 1.5, 1.5}, f.Values())

	_, err = ndarray.New[int](ndarray.Shape{0, 3})
	require.ErrorIs(t, err, ndarray.ErrBadShape)
}

func TestWrap_CopiesInput(t *testing.T) {
	t.Parallel()

	src := []float64{1, 2, 3, 4}
	a := mustWrap(t, ndarray.Shape{2, 2}, src)
	src[0] = 100
	v, err := a.Flat(0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	_, err = ndarray.Wrap(ndarray.Shape{3, 2}, src)
	require.ErrorIs(t, err, ndarray.ErrShapeMismatch)
}

func TestClone_IsDeep(t *testing.T) {
	t.Parallel()

	a := mustWrap(t, ndarray.Shape{2, 2}, []int{1, 2, 3, 4})
	b := a.Clone()
	require.True(t, a.Equal(b))
	require.NoError(t, b.SetFlat(0, 42))
	v, _ := a.Flat(0)
	require.Equal(t, 1, v)
	require.False(t, a.Equal(b))
}

func TestFlatAccess_Bounds(t *testing.T) {
	t.Parallel()

	a := mustWrap(t, ndarray.Shape{3}, []int{7, 8, 9})
	for _, i := range []int{-1, 3, 10} {
		_, err := a.Flat(i)
		require.ErrorIs(t, err, ndarray.ErrIndexOutOfRange)
		require.ErrorIs(t, a.SetFlat(i, 1), ndarray.ErrIndexOutOfRange)
	}
	require.NoError(t, a.SetFlat(2, 5))
	v, err := a.Flat(2)
	require.NoError(t, err)
	require.Equal(t, 5, v)
}

func TestMultiIndex_RowMajor(t *testing.T) {
	t.Parallel()

	// 2×3×4 cube filled with its own linear offsets.
	data := make([]int, 24)
	for i := range data {
		data[i] = i
	}
	a := mustWrap(t, ndarray.Shape{2, 3, 4}, data)

	off, err := a.Offset(1, 2, 3)
	require.NoError(t, err)
	require.Equal(t, 1*12+2*4+3, off)

	v, err := a.At(1, 0, 2)
	require.NoError(t, err)
	require.Equal(t, 14, v)

	require.NoError(t, a.Set(-1, 0, 1, 1))
	v, _ = a.Flat(5)
	require.Equal(t, -1, v)

	_, err = a.At(0, 3, 0)
	require.ErrorIs(t, err, ndarray.ErrIndexOutOfRange)
	_, err = a.At(0, 0)
	require.ErrorIs(t, err, ndarray.ErrIndexOutOfRange, "wrong arity")
	require.ErrorIs(t, a.Set(1, 2, 0, -1), ndarray.ErrIndexOutOfRange)
}

func TestCompoundArithmetic(t *testing.T) {
	t.Parallel()

	shape := ndarray.Shape{2, 2}
	a := mustWrap(t, shape, []float64{1, 2, 3, 4})
	b := mustWrap(t, shape, []float64{2, 2, 2, 2})

	require.NoError(t, a.AddInPlace(b))
	require.Equal(t, []float64{3, 4, 5, 6}, a.Values())
	require.NoError(t, a.SubInPlace(b))
	require.Equal(t, []float64{1, 2, 3, 4}, a.Values())
	require.NoError(t, a.MulInPlace(b))
	require.Equal(t, []float64{2, 4, 6, 8}, a.Values())
	require.NoError(t, a.DivInPlace(b))
	require.Equal(t, []float64{1, 2, 3, 4}, a.Values())
	require.Equal(t, []float64{2, 2, 2, 2}, b.Values(), "right operand is never mutated")
}

func TestCompoundArithmetic_ShapeMismatch(t *testing.T) {
	t.Parallel()

	a := mustWrap(t, ndarray.Shape{2, 2}, []int{1, 2, 3, 4})
	b := mustWrap(t, ndarray.Shape{4, 1}, []int{1, 2, 3, 4})

	require.ErrorIs(t, a.AddInPlace(b), ndarray.ErrShapeMismatch)
	require.ErrorIs(t, a.SubInPlace(b), ndarray.ErrShapeMismatch)
	require.ErrorIs(t, a.MulInPlace(b), ndarray.ErrShapeMismatch)
	require.ErrorIs(t, a.DivInPlace(b), ndarray.ErrShapeMismatch)
	require.ErrorIs(t, a.AddInPlace(nil), ndarray.ErrShapeMismatch)
	require.Equal(t, []int{1, 2, 3, 4}, a.Values())
}

func TestDivInPlace_ZeroDivisorLeavesReceiver(t *testing.T) {
	t.Parallel()

	a := mustWrap(t, ndarray.Shape{1, 3}, []int{6, 8, 10})
	b := mustWrap(t, ndarray.Shape{1, 3}, []int{2, 0, 5})

	require.ErrorIs(t, a.DivInPlace(b), ndarray.ErrDivisionByZero)
	require.Equal(t, []int{6, 8, 10}, a.Values())
}

func TestReshape(t *testing.T) {
	t.Parallel()

	a := mustWrap(t, ndarray.Shape{2, 3}, []int{1, 2, 3, 4, 5, 6})
	require.NoError(t, a.Reshape(ndarray.Shape{3, 2}))
	require.Equal(t, ndarray.Shape{3, 2}, a.Shape())
	v, err := a.At(2, 0)
	require.NoError(t, err)
	require.Equal(t, 5, v)

	require.ErrorIs(t, a.Reshape(ndarray.Shape{4, 2}), ndarray.ErrShapeMismatch)
	require.ErrorIs(t, a.Reshape(ndarray.Shape{}), ndarray.ErrBadShape)
}
