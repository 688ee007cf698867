// Package nml is a small dense-matrix engine for machine-learning
// preprocessing: loading samples, slicing features from labels, axis
// reductions and the classic linear algebra on small square matrices.
//
// 🚀 What is nml?
//
//	A pure-Go library plus a command line tool:
//		• ndarray: generic N-dimensional arrays over a flat row-major buffer
//		• matrix: 2-D float64 matrices with slicing, reductions, statistics,
//		  cofactor determinant/inverse and Matrix-interface kernels
//		• matrix/ops: pivoted LU, linear solves and Jacobi eigen decomposition
//		• cmd/nml: evaluate operations on matrix literals or TOML files
//
// Axis convention:
//
//	AxisAll (-1) reduces the whole matrix to 1×1,
//	AxisRow ( 0) works down the rows and yields one value per column,
//	AxisCol ( 1) works across the columns and yields one value per row.
//
// Quick example:
//
//	m, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
//	det, _ := m.Det() // -2
//	inv, _ := m.Inv() // [[-2, 1], [1.5, -0.5]]
//
// Errors are sentinels wrapped with the failing operation, match them with
// errors.Is. Nothing panics on bad input and a failed operation leaves its
// receiver untouched.
//
//	go install github.com/katalvlaran/nml/cmd/nml@latest
package nml
