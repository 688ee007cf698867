// SPDX-License-Identifier: MIT
// Package matrix_test provides benchmarks for core matrix package operations,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/nml/matrix"
)

// benchSizes are the matrix sizes to benchmark the O(n³) kernels with.
var benchSizes = []int{64, 128, 256}

// sinks to defeat dead-code elimination
var (
	sinkM matrix.Matrix
	sinkD *matrix.Dense
	sinkF float64
)

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandomDense(b, n, n, 1337)
			B := RandomDense(b, n, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Add(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkDot(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandomDense(b, n, n, 11)
			B := RandomDense(b, n, n, 22)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := A.Dot(B)
				if err != nil {
					b.Fatal(err)
				}
				sinkD = m
			}
		})
	}
}

func BenchmarkTranspose(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandomDense(b, n, n, 7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkD = A.T()
			}
		})
	}
}

func BenchmarkSumAxis(b *testing.B) {
	b.ReportAllocs()
	for _, axis := range []matrix.Axis{matrix.AxisAll, matrix.AxisRow, matrix.AxisCol} {
		b.Run(axis.String(), func(b *testing.B) {
			A := RandomDense(b, 256, 256, 3)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := A.Sum(axis)
				if err != nil {
					b.Fatal(err)
				}
				sinkD = m
			}
		})
	}
}

// BenchmarkCofactorDet stays on small sizes: the expansion is O(n!).
func BenchmarkCofactorDet(b *testing.B) {
	for n := 4; n <= 8; n += 2 {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := DiagDominant(b, n, int64(n))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d, err := A.Det()
				if err != nil {
					b.Fatal(err)
				}
				sinkF = d
			}
		})
	}
}

func BenchmarkInv(b *testing.B) {
	A := DiagDominant(b, 6, 6)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m, err := A.Inv()
		if err != nil {
			b.Fatal(err)
		}
		sinkD = m
	}
}

func BenchmarkStandardize(b *testing.B) {
	A := RandomDense(b, 1024, 16, 9)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		z, _, _, err := matrix.Standardize(A)
		if err != nil {
			b.Fatal(err)
		}
		sinkM = z
	}
}
