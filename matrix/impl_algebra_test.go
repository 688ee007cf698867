// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/nml/matrix"
)

// AlgebraSuite groups Dot/Cof/Det/Inv scenarios around a shared fixture.
type AlgebraSuite struct {
	suite.Suite
	a *matrix.Dense // [[1,2],[3,4]]
}

func (s *AlgebraSuite) SetupTest() {
	a, err := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	s.Require().NoError(err)
	s.a = a
}

func (s *AlgebraSuite) TestDet2x2() {
	det, err := s.a.Det()
	s.Require().NoError(err)
	s.Equal(-2.0, det)
}

func (s *AlgebraSuite) TestInv2x2() {
	inv, err := s.a.Inv()
	s.Require().NoError(err)
	s.True(matrix.Equal(inv, MustRows(s.T(), [][]float64{{-2, 1}, {1.5, -0.5}})), "got\n%v", inv)
}

func (s *AlgebraSuite) TestCof2x2() {
	cof, err := s.a.Cof()
	s.Require().NoError(err)
	s.Equal([][]float64{{4, -3}, {-2, 1}}, cof.RawRows())
}

func (s *AlgebraSuite) TestCof1x1() {
	one := MustRows(s.T(), [][]float64{{7}})
	cof, err := one.Cof()
	s.Require().NoError(err)
	s.Equal([][]float64{{1}}, cof.RawRows())

	inv, err := one.Inv()
	s.Require().NoError(err)
	s.True(matrix.Almost(1.0/7, MustAt(s.T(), inv, 0, 0)))
}

func (s *AlgebraSuite) TestDotInverseIsIdentity() {
	inv, err := s.a.Inv()
	s.Require().NoError(err)
	prod, err := s.a.Dot(inv)
	s.Require().NoError(err)
	eye, err := matrix.Eyes(2)
	s.Require().NoError(err)
	s.True(matrix.Equal(prod, eye))
}

func (s *AlgebraSuite) TestSingular() {
	sing := MustRows(s.T(), [][]float64{{1, 2}, {2, 4}})
	_, err := sing.Inv()
	s.ErrorIs(err, matrix.ErrSingular)

	det, err := sing.Det()
	s.Require().NoError(err)
	s.Zero(det)
}

func (s *AlgebraSuite) TestNonSquareAndEmpty() {
	rect := MustDense(s.T(), 2, 3)
	_, err := rect.Det()
	s.ErrorIs(err, matrix.ErrNonSquare)
	_, err = rect.Cof()
	s.ErrorIs(err, matrix.ErrNonSquare)
	_, err = rect.Inv()
	s.ErrorIs(err, matrix.ErrNonSquare)

	_, err = matrix.NewEmpty().Det()
	s.ErrorIs(err, matrix.ErrEmpty)
}

func TestAlgebraSuite(t *testing.T) {
	suite.Run(t, new(AlgebraSuite))
}

func TestDot(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := MustRows(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})
	p, err := a.Dot(b)
	require.NoError(t, err)
	RequireRows(t, [][]float64{{58, 64}, {139, 154}}, p)

	_, err = a.Dot(a)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
	_, err = a.Dot(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestEyes_DetInv(t *testing.T) {
	for n := 1; n <= 6; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			eye, err := matrix.Eyes(n)
			require.NoError(t, err)
			det, err := eye.Det()
			require.NoError(t, err)
			require.Equal(t, 1.0, det)

			inv, err := eye.Inv()
			require.NoError(t, err)
			require.Equal(t, eye.RawRows(), inv.RawRows())
		})
	}
}

func TestDet_Permutation(t *testing.T) {
	p, err := matrix.Permut(4, 0, 3)
	require.NoError(t, err)
	det, err := p.Det()
	require.NoError(t, err)
	require.Equal(t, -1.0, det)
}

func TestInv_PrecisionOption(t *testing.T) {
	tiny := MustRows(t, [][]float64{{1e-6, 0}, {0, 1e-6}}) // det = 1e-12
	_, err := tiny.Inv()
	require.ErrorIs(t, err, matrix.ErrSingular, "1e-12 is Almost 0 at the default precision")

	inv, err := tiny.Inv(matrix.WithEpsilon(0))
	require.NoError(t, err)
	require.True(t, matrix.Almost(1e6, MustAt(t, inv, 0, 0)))
}

// TestAlgebra_GonumOracle compares Det, Inv and Dot with gonum/mat on random
// diagonally dominant matrices.
func TestAlgebra_GonumOracle(t *testing.T) {
	for n := 1; n <= 6; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			a := DiagDominant(t, n, int64(n))
			g := mat.NewDense(n, n, a.Values())

			det, err := a.Det()
			require.NoError(t, err)
			require.InEpsilon(t, mat.Det(g), det, 1e-9)

			inv, err := a.Inv()
			require.NoError(t, err)
			var gInv mat.Dense
			require.NoError(t, gInv.Inverse(g))
			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					require.InDelta(t, gInv.At(i, j), MustAt(t, inv, i, j), 1e-9)
				}
			}

			b := RandomDense(t, n, 3, int64(100+n))
			prod, err := a.Dot(b)
			require.NoError(t, err)
			var gProd mat.Dense
			gProd.Mul(g, mat.NewDense(n, 3, b.Values()))
			for i := 0; i < n; i++ {
				for j := 0; j < 3; j++ {
					require.InDelta(t, gProd.At(i, j), MustAt(t, prod, i, j), 1e-12)
				}
			}
		})
	}
}
