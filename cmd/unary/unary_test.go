// SPDX-License-Identifier: MIT

package unary

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nml/cmd/internal"
	"github.com/katalvlaran/nml/matrix"
)

func TestOps(t *testing.T) {
	tests := []struct {
		name string
		f    op
		lit  string
		want string
	}{
		{"det", det, "1,2;3,4", "-2\n"},
		{"inv", inv, "1,2;3,4", "-2 1\n1.5 -0.5\n"},
		{"cof", cof, "1,2;3,4", "4 -3\n-2 1\n"},
		{"t", transpose, "1,2,3", "1\n2\n3\n"},
		{"diag square", diag, "1,2;3,4", "1\n4\n"},
		{"diag vector", diag, "1,2", "1 0\n0 2\n"},
		{"uniq", uniq, "3,1;1,2", "1 2 3\n"},
		{"eig", eig, "2,0;0,5", "5 2\n0 1\n1 0\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := internal.ParseMatrix(tc.lit)
			require.NoError(t, err)
			var buf bytes.Buffer
			require.NoError(t, tc.f(&buf, m, internal.DefaultConfig()))
			require.Equal(t, tc.want, buf.String())
		})
	}
}

func TestOps_Errors(t *testing.T) {
	singular, err := internal.ParseMatrix("1,2;2,4")
	require.NoError(t, err)
	var buf bytes.Buffer
	require.ErrorIs(t, inv(&buf, singular, internal.DefaultConfig()), matrix.ErrSingular)

	rect, err := internal.ParseMatrix("1,2,3;4,5,6")
	require.NoError(t, err)
	require.ErrorIs(t, det(&buf, rect, internal.DefaultConfig()), matrix.ErrNonSquare)
	require.ErrorIs(t, diag(&buf, rect, internal.DefaultConfig()), matrix.ErrNonSquare)
	require.Error(t, eig(&buf, rect, internal.DefaultConfig()))
	require.Empty(t, buf.String())
}

func TestCMDs(t *testing.T) {
	var names []string
	for _, cmd := range CMDs {
		names = append(names, cmd.Name())
		require.NotNil(t, cmd.Flags().Lookup("matrix"), cmd.Name())
		require.NotNil(t, cmd.Flags().Lookup("file"), cmd.Name())
	}
	require.Equal(t, "det inv cof t diag uniq eig", strings.Join(names, " "))
}
