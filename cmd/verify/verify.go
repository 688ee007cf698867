// SPDX-License-Identifier: MIT

// Package verify checks the algebraic properties of the matrix engine
// on random square matrices.
package verify

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/nml/cmd/internal"
	"github.com/katalvlaran/nml/matrix"
	"github.com/katalvlaran/nml/matrix/ops"
)

// tol is the absolute tolerance for A·A⁻¹ ≈ I and the LU determinant.
const tol = 1e-6

func init() {
	CMD.Flags().StringVarP(&flags.params, "parameters", "P", "", "set path to configuration file")
	CMD.Flags().IntVarP(&flags.maxSize, "max-size", "n", 0, "override the largest matrix size")
	CMD.Flags().IntVarP(&flags.trials, "trials", "t", 0, "override the number of matrices per size")
	CMD.Flags().Uint64VarP(&flags.seed, "seed", "s", 0, "override the random seed")
	CMD.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable logging")
}

var flags = struct {
	params          string
	maxSize, trials int
	seed            uint64
	verbose         bool
}{}

// CMD runs the nml verify command.
var CMD = &cobra.Command{
	Use:   "verify",
	Short: "Check the engine's algebraic properties on random matrices",
	Run:   run,
}

func run(_ *cobra.Command, args []string) {
	c, err := internal.ReadConfig(flags.params)
	internal.Chk(err)
	internal.UpdateInConfig(&c.Verify.MaxSize, flags.maxSize)
	internal.UpdateInConfig(&c.Verify.Trials, flags.trials)
	internal.UpdateInConfig(&c.Verify.Seed, flags.seed)
	internal.UpdateInConfig(&c.Verbose, flags.verbose)
	internal.SetLog(c.Verbose)
	internal.Chk(verify(context.Background(), os.Stdout, c))
}

// verify checks every size in 1..MaxSize in its own goroutine and
// writes one report line per size.  It returns an error if any
// property failed.
func verify(ctx context.Context, w io.Writer, c *internal.Config) error {
	reports := make([][]string, c.Verify.MaxSize)
	g, ctx := errgroup.WithContext(ctx)
	for n := 1; n <= c.Verify.MaxSize; n++ {
		n := n
		g.Go(func() error {
			failures, err := checkSize(ctx, n, c)
			if err != nil {
				return fmt.Errorf("verify %dx%d: %w", n, n, err)
			}
			reports[n-1] = failures
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	var nfail int
	for i, failures := range reports {
		if len(failures) == 0 {
			fmt.Fprintf(w, "%dx%d: ok (%d trials)\n", i+1, i+1, c.Verify.Trials)
			continue
		}
		nfail += len(failures)
		for _, f := range failures {
			fmt.Fprintf(w, "%dx%d: %s\n", i+1, i+1, f)
		}
	}
	if nfail > 0 {
		return fmt.Errorf("verify: %d failed checks", nfail)
	}
	return nil
}

// checkSize runs the identity checks once and the random checks
// c.Verify.Trials times for n×n matrices.
func checkSize(ctx context.Context, n int, c *internal.Config) ([]string, error) {
	failures, err := checkEyes(n)
	if err != nil {
		return nil, err
	}
	dist := distuv.Uniform{
		Min: c.Verify.Min,
		Max: c.Verify.Max,
		Src: rand.NewSource(c.Verify.Seed + uint64(n)),
	}
	for trial := 0; trial < c.Verify.Trials; trial++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		a, err := matrix.NewDense(n, n)
		if err != nil {
			return nil, err
		}
		raw := a.Raw()
		for i := range raw {
			raw[i] = dist.Rand()
		}
		fs, err := checkRandom(a, c.Options())
		if err != nil {
			return nil, err
		}
		for _, f := range fs {
			failures = append(failures, fmt.Sprintf("trial %d: %s", trial, f))
		}
	}
	internal.Log("verify: size %d done (%d failures)", n, len(failures))
	return failures, nil
}

func checkEyes(n int) ([]string, error) {
	eye, err := matrix.Eyes(n)
	if err != nil {
		return nil, err
	}
	var failures []string
	det, err := eye.Det()
	if err != nil {
		return nil, err
	}
	if det != 1 {
		failures = append(failures, fmt.Sprintf("det(I)=%g", det))
	}
	inv, err := eye.Inv()
	if err != nil {
		return nil, err
	}
	if !matrix.Equal(inv, eye) {
		failures = append(failures, "inv(I) != I")
	}
	return failures, nil
}

func checkRandom(a *matrix.Dense, opts []matrix.Option) ([]string, error) {
	var failures []string
	n := a.Rows()

	if !matrix.Equal(a.T().T(), a) {
		failures = append(failures, "T(T(A)) != A")
	}

	for _, axis := range []matrix.Axis{matrix.AxisRow, matrix.AxisCol} {
		ap, err := a.Append(a, axis)
		if err != nil {
			return nil, err
		}
		r, c := ap.Dims()
		if (axis == matrix.AxisRow && (r != 2*n || c != n)) || (axis == matrix.AxisCol && (r != n || c != 2*n)) {
			failures = append(failures, fmt.Sprintf("append along %s: %dx%d", axis, r, c))
		}
	}

	for i := 0; i < n; i++ {
		minor, err := a.Minor(i, matrix.AxisRow)
		if err != nil {
			return nil, err
		}
		if minor.Rows() != n-1 {
			failures = append(failures, fmt.Sprintf("minor %d: %d rows", i, minor.Rows()))
		}
	}

	det, err := a.Det()
	if err != nil {
		return nil, err
	}
	luDet, err := ops.Det(a)
	if err != nil {
		return nil, err
	}
	if math.Abs(det-luDet) > tol*math.Max(1, math.Abs(det)) {
		failures = append(failures, fmt.Sprintf("det: cofactor %g, LU %g", det, luDet))
	}

	if matrix.Almost(det, 0, opts...) {
		return failures, nil
	}
	inv, err := a.Inv(opts...)
	if err != nil {
		return nil, err
	}
	prod, err := a.Dot(inv)
	if err != nil {
		return nil, err
	}
	eye, err := matrix.Eyes(n)
	if err != nil {
		return nil, err
	}
	ok, err := matrix.AllClose(prod, eye, 0, tol)
	if err != nil {
		return nil, err
	}
	if !ok {
		failures = append(failures, fmt.Sprintf("A·inv(A) != I (det=%g)", det))
	}
	return failures, nil
}
