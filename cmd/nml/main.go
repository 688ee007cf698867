// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/nml/cmd/reduce"
	"github.com/katalvlaran/nml/cmd/unary"
	"github.com/katalvlaran/nml/cmd/verify"
	"github.com/katalvlaran/nml/cmd/version"
)

var root = &cobra.Command{
	Use:   "nml",
	Short: "Dense matrix engine for machine-learning preprocessing",
}

func init() {
	root.AddCommand(unary.CMDs...)
	root.AddCommand(
		reduce.CMD,
		verify.CMD,
		version.CMD,
	)
}

func main() {
	root.Execute()
}
