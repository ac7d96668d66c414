// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linsolve/console"
	"github.com/katalvlaran/linsolve/matrix"
)

// systemInput is a matrix read from a file or the terminal.
type systemInput struct {
	Matrix  *matrix.Dense
	Name    string
	Logging bool // "END -l" was typed
}

// readInput loads the system from path (YAML) or, when path is empty,
// interactively from the command's stdin.
func readInput(cmd *cobra.Command, f *OutputFormatter, path string) (systemInput, *ExitError) {
	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			return systemInput{}, WrapExitError(ExitCommandError, "cannot open system file", err)
		}
		defer file.Close()

		m, sf, err := console.DecodeYAML(file)
		if err != nil {
			return systemInput{}, WrapExitError(ExitCommandError, fmt.Sprintf("invalid system file %s", path), err)
		}
		return systemInput{Matrix: m, Name: sf.Name}, nil
	}

	prompt := f.PromptWriter()
	fmt.Fprintln(prompt, console.PromptWelcome)
	m, dir, err := console.ReadSystem(cmd.InOrStdin(), prompt)
	if err != nil {
		return systemInput{}, WrapExitError(ExitCommandError, "cannot read system", err)
	}
	return systemInput{Matrix: m, Logging: dir.Logging}, nil
}
