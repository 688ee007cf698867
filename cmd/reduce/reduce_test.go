// SPDX-License-Identifier: MIT

package reduce

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nml/cmd/internal"
	"github.com/katalvlaran/nml/matrix"
)

func TestReduce(t *testing.T) {
	m, err := internal.ParseMatrix("1,5;3,2")
	require.NoError(t, err)

	tests := []struct {
		op   string
		axis matrix.Axis
		want string
	}{
		{"sum", matrix.AxisAll, "11\n"},
		{"sum", matrix.AxisRow, "4 7\n"},
		{"sum", matrix.AxisCol, "6\n5\n"},
		{"mean", matrix.AxisRow, "2 3.5\n"},
		{"var", matrix.AxisRow, "1 2.25\n"},
		{"std", matrix.AxisRow, "1 1.5\n"},
		{"min", matrix.AxisAll, "1\n"},
		{"max", matrix.AxisCol, "5\n3\n"},
		{"argmin", matrix.AxisCol, "0\n1\n"},
		{"argmax", matrix.AxisRow, "1 0\n"},
	}
	for _, tc := range tests {
		t.Run(tc.op+"/"+tc.axis.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, reduce(&buf, m, tc.op, tc.axis))
			require.Equal(t, tc.want, buf.String())
		})
	}
}

func TestReduce_Errors(t *testing.T) {
	m, err := internal.ParseMatrix("1,2")
	require.NoError(t, err)
	var buf bytes.Buffer
	require.Error(t, reduce(&buf, m, "median", matrix.AxisAll))
	require.ErrorIs(t, reduce(&buf, m, "sum", matrix.Axis(2)), matrix.ErrIndexOutOfRange)
	require.Empty(t, buf.String())
}
