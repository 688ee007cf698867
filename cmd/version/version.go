// SPDX-License-Identifier: MIT

package version

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/nml/cmd/internal"
)

// CMD defines the nml version command.
var CMD = &cobra.Command{
	Use:   "version",
	Short: "Print nml's version",
	Run:   run,
}

func run(_ *cobra.Command, args []string) {
	fmt.Printf("%s version: %s [%s/%s]\n", os.Args[0], internal.Version, runtime.GOOS, runtime.GOARCH)
}
