// SPDX-License-Identifier: MIT

// Package unary defines the nml commands that map one input matrix to
// one result: det, inv, cof, t, diag, uniq and eig.
package unary

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/nml/cmd/internal"
	"github.com/katalvlaran/nml/matrix"
	"github.com/katalvlaran/nml/matrix/ops"
)

// Eigen solver settings for the eig command.
const (
	eigenTol     = 1e-12
	eigenMaxIter = 1000
)

// op computes the result of a command and writes it to w.
type op func(w io.Writer, m *matrix.Dense, c *internal.Config) error

// CMDs lists the unary commands.
var CMDs = []*cobra.Command{
	newCMD("det", "Print the determinant of a square matrix", det),
	newCMD("inv", "Print the inverse of a square matrix", inv),
	newCMD("cof", "Print the cofactor matrix of a square matrix", cof),
	newCMD("t", "Print the transpose of a matrix", transpose),
	newCMD("diag", "Print the diagonal of a square matrix or the diagonal matrix of a vector", diag),
	newCMD("uniq", "Print the distinct values of a matrix in ascending order", uniq),
	newCMD("eig", "Print eigenvalues and eigenvectors of a symmetric matrix", eig),
}

func newCMD(use, short string, f op) *cobra.Command {
	var flags internal.Flags
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Run: func(_ *cobra.Command, _ []string) {
			m, c, err := flags.Load()
			internal.Chk(err)
			internal.Log("%s: %dx%d", use, m.Rows(), m.Cols())
			internal.Chk(f(os.Stdout, m, c))
		},
	}
	flags.Init(cmd)
	return cmd
}

func det(w io.Writer, m *matrix.Dense, _ *internal.Config) error {
	d, err := m.Det()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, d)
	return err
}

func inv(w io.Writer, m *matrix.Dense, c *internal.Config) error {
	res, err := m.Inv(c.Options()...)
	if err != nil {
		return err
	}
	return internal.Print(w, res)
}

func cof(w io.Writer, m *matrix.Dense, _ *internal.Config) error {
	res, err := m.Cof()
	if err != nil {
		return err
	}
	return internal.Print(w, res)
}

func transpose(w io.Writer, m *matrix.Dense, _ *internal.Config) error {
	return internal.Print(w, m.T())
}

func diag(w io.Writer, m *matrix.Dense, _ *internal.Config) error {
	res, err := m.Diag()
	if err != nil {
		return err
	}
	return internal.Print(w, res)
}

func uniq(w io.Writer, m *matrix.Dense, _ *internal.Config) error {
	return internal.Print(w, m.Uniq())
}

// eig prints the eigenvalues on the first line followed by the
// eigenvectors, one per column.
func eig(w io.Writer, m *matrix.Dense, _ *internal.Config) error {
	vals, vecs, err := ops.Eigen(m, eigenTol, eigenMaxIter)
	if err != nil {
		return err
	}
	row, err := matrix.FromSlice(vals)
	if err != nil {
		return err
	}
	if err := internal.Print(w, row); err != nil {
		return err
	}
	return internal.Print(w, vecs)
}
