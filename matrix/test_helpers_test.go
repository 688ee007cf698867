// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures and utilities for kernels and algebra tests.
//   - Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nml/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions.
// Use hide{X} to force the At/Set fallback path of the interface kernels.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// MustRows builds a *Dense from nested rows or fails the test.
func MustRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads m(i,j) or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// MustSet writes m(i,j) or fails the test.
func MustSet(t testing.TB, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	require.NoError(t, m.Set(i, j, v))
}

// scalarOf returns a reader for 1×1 reduction results: scalarOf(t)(m.Sum(matrix.AxisAll)).
func scalarOf(t testing.TB) func(m *matrix.Dense, err error) float64 {
	return func(m *matrix.Dense, err error) float64 {
		t.Helper()
		require.NoError(t, err)
		v, err := m.Scalar()
		require.NoError(t, err)

		return v
	}
}

// RandomFill fills m with deterministic values in [-1, 1) drawn from seed.
func RandomFill(t testing.TB, m *matrix.Dense, seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	buf := m.Raw()
	for i := range buf {
		buf[i] = 2*rng.Float64() - 1
	}
}

// RandomDense returns an r×c matrix filled by RandomFill.
func RandomDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	m := MustDense(t, r, c)
	RandomFill(t, m, seed)

	return m
}

// DiagDominant returns a random n×n matrix with a dominant diagonal, hence non-singular.
func DiagDominant(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	m := RandomDense(t, n, n, seed)
	for i := 0; i < n; i++ {
		MustSet(t, m, i, i, float64(n)+MustAt(t, m, i, i))
	}

	return m
}

// RequireRows asserts m equals want exactly.
func RequireRows(t testing.TB, want [][]float64, m *matrix.Dense) {
	t.Helper()
	require.NotNil(t, m)
	require.Equal(t, want, m.RawRows())
}

// RequireClose asserts m equals want within the default Almost tolerance.
func RequireClose(t testing.TB, want [][]float64, m *matrix.Dense, opts ...matrix.Option) {
	t.Helper()
	require.True(t, matrix.Equal(MustRows(t, want), m, opts...), "want %v, got\n%v", want, m)
}
