// SPDX-License-Identifier: MIT

package verify

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nml/cmd/internal"
	"github.com/katalvlaran/nml/matrix"
)

func TestVerify(t *testing.T) {
	c := internal.DefaultConfig()
	c.Verify.MaxSize = 4
	c.Verify.Trials = 5
	var buf bytes.Buffer
	require.NoError(t, verify(context.Background(), &buf, c))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Equal(t, []string{
		"1x1: ok (5 trials)",
		"2x2: ok (5 trials)",
		"3x3: ok (5 trials)",
		"4x4: ok (5 trials)",
	}, lines)
}

func TestVerify_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var buf bytes.Buffer
	require.ErrorIs(t, verify(ctx, &buf, internal.DefaultConfig()), context.Canceled)
	require.Empty(t, buf.String())
}

func TestCheckRandom_Singular(t *testing.T) {
	a, err := matrix.FromRows([][]float64{{1, 2}, {2, 4}})
	require.NoError(t, err)
	failures, err := checkRandom(a, nil)
	require.NoError(t, err)
	require.Empty(t, failures, "the inverse check is skipped for singular input")
}

func TestCheckEyes(t *testing.T) {
	for n := 1; n <= 5; n++ {
		failures, err := checkEyes(n)
		require.NoError(t, err)
		require.Empty(t, failures)
	}
}
