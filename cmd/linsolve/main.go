// SPDX-License-Identifier: MIT

// Command linsolve solves systems of linear equations from the terminal or
// from YAML files. Run "linsolve --help" for usage.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/linsolve/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
