// Package matrix is a dense float64 linear-algebra engine for machine-learning
// preprocessing.
//
// The matrix package provides:
//
//   - Grid[T], the rank-2 specialization of ndarray.Array, and Dense, its float64
//     form that carries the whole engine.
//   - Conversion constructors for parsed samples (FromSlice, FromSliceRows,
//     FromRows) and fixed-fill constructors (Zeros, Ones, Values, Eyes, Permut).
//   - Axis-aware slicing, concatenation and reductions (Submat, SubmatRange,
//     Minor, Append, Sum, Mean, Var, Argmax, ...), driven by the Axis selector.
//   - Core algebra: Dot, Cof, Det by cofactor expansion and Inv by adjugate.
//   - Interface kernels over any Matrix (Add, Mul, Transpose, ...) and column
//     statistics (CenterColumns, Covariance, Standardize).
//
// Values are compared with Almost, whose tolerance is set by WithPrecision or
// WithEpsilon. Every failure is reported as a wrapped sentinel error; match it
// with errors.Is.
//
// Det and Inv cost O(n!); they suit the small blocks met when fitting models on
// feature subsets. Package ops offers O(n³) LU routines for larger inputs.
package matrix
