// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points over the canonical kernels.
//   - Facades never change the loop orders or numeric policy of the kernels they
//     forward to; validation happens in the kernels.

package matrix

// ---------- Constructors ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// Thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) { return NewDense(rows, cols) }

// NewIdentity returns I_n. Alias of Eyes.
func NewIdentity(n int) (*Dense, error) { return Eyes(n) }

// CloneMatrix returns a structural clone of m (same type if m is *Dense).
func CloneMatrix(m Matrix) Matrix { return m.Clone() }

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewDense(m.Rows(), m.Cols())
}

// IdentityLike returns I with dimension Rows(m); m must be square.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonEmpty(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return Eyes(m.Rows())
}

// ---------- Algebra ----------

// Product is an alias of Mul (matrix product).
func Product(a, b Matrix) (Matrix, error) { return Mul(a, b) }

// T is an alias of Transpose.
func T(m Matrix) (Matrix, error) { return Transpose(m) }

// Determinant returns the cofactor determinant of a *Dense.
func Determinant(m *Dense) (float64, error) { return m.Det() }

// InverseOf returns the adjugate inverse of a *Dense.
func InverseOf(m *Dense, opts ...Option) (*Dense, error) { return m.Inv(opts...) }

// ---------- Sums ----------

// RowSums returns vector r where r[i] = sum_j m[i,j].
// Implementation: MatVec(m, ones(cols)).
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("RowSums", err)
	}

	return MatVec(m, ones(m.Cols()))
}

// ColSums returns vector c where c[j] = sum_i m[i,j].
// Implementation: Transpose then MatVec with ones(rows).
func ColSums(m Matrix) ([]float64, error) {
	mt, err := Transpose(m)
	if err != nil {
		return nil, matrixErrorf("ColSums", err)
	}

	return MatVec(mt, ones(mt.Cols()))
}

func ones(n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = 1
	}

	return v
}
