// SPDX-License-Identifier: MIT

package ndarray_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nml/ndarray"
)

func TestNewShape(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name    string
		extents []int
		size    int
		wantErr bool
	}{
		{"vector", []int{4}, 4, false},
		{"matrix", []int{2, 3}, 6, false},
		{"cube", []int{2, 3, 4}, 24, false},
		{"zero extent", []int{2, 0}, 0, true},
		{"negative extent", []int{-1, 3}, 0, true},
		{"rank zero", nil, 0, true},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			s, err := ndarray.NewShape(tc.extents...)
			if tc.wantErr {
				require.ErrorIs(t, err, ndarray.ErrBadShape)
				return
			}
			require.NoError(t, err)
			require.Equal(t, len(tc.extents), s.Rank())
			require.Equal(t, tc.size, s.Size())
		})
	}
}

func TestShape_EqualCloneStrides(t *testing.T) {
	t.Parallel()

	s := ndarray.Shape{2, 3, 4}
	c := s.Clone()
	require.True(t, s.Equal(c))
	c[0] = 9
	require.False(t, s.Equal(c), "clone must not alias")
	require.False(t, s.Equal(ndarray.Shape{2, 3}))
	require.Equal(t, []int{12, 4, 1}, s.Strides())
	require.Equal(t, "(2×3×4)", s.String())
}
