// SPDX-License-Identifier: MIT

package reduce

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/nml/cmd/internal"
	"github.com/katalvlaran/nml/matrix"
)

func init() {
	flags.Init(CMD)
	CMD.Flags().StringVarP(&flags.op, "op", "o", "sum", "set reduction (sum|mean|var|std|min|max|argmin|argmax)")
	CMD.Flags().IntVarP(&flags.axis, "axis", "a", int(matrix.AxisAll), "set axis (-1: all, 0: per column, 1: per row)")
}

var flags = struct {
	internal.Flags
	op   string
	axis int
}{}

// CMD runs the nml reduce command.
var CMD = &cobra.Command{
	Use:   "reduce",
	Short: "Reduce a matrix along an axis",
	Run:   run,
}

func run(_ *cobra.Command, args []string) {
	m, _, err := flags.Load()
	internal.Chk(err)
	internal.Chk(reduce(os.Stdout, m, flags.op, matrix.Axis(flags.axis)))
}

func reduce(w io.Writer, m *matrix.Dense, op string, axis matrix.Axis) error {
	var f func(matrix.Axis) (*matrix.Dense, error)
	switch op {
	case "sum":
		f = m.Sum
	case "mean":
		f = m.Mean
	case "var":
		f = m.Var
	case "std":
		f = m.Std
	case "min":
		f = m.Min
	case "max":
		f = m.Max
	case "argmin":
		f = m.Argmin
	case "argmax":
		f = m.Argmax
	default:
		return fmt.Errorf("reduce: invalid op: %s", op)
	}
	internal.Log("reduce: %s along %s", op, axis)
	res, err := f(axis)
	if err != nil {
		return fmt.Errorf("reduce: %w", err)
	}
	return internal.Print(w, res)
}
