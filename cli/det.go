// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linsolve/report"
	"github.com/katalvlaran/linsolve/solver"
)

// DetResult is the JSON payload of the det command.
type DetResult struct {
	Name        string  `json:"name,omitempty"`
	Determinant float64 `json:"determinant"`
}

// NewDetCommand creates the det command.
func NewDetCommand(rootOpts *RootOptions) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "det",
		Short: "Print the determinant of a square matrix",
		Long: `Compute the determinant of a square matrix by cofactor expansion along
the first row. The input is a plain n×n matrix, not an augmented system.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd)
			in, xerr := readInput(cmd, f, file)
			if xerr != nil {
				return f.Error(xerr)
			}

			det, err := solver.Determinant(in.Matrix)
			if err != nil {
				return f.Error(wrapSolveError("cannot compute determinant", err))
			}

			res := DetResult{Name: in.Name, Determinant: det}
			err = f.Success("", res, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "Determinant: %s\n", report.FormatValue(det))
				return err
			})
			if err != nil {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "read the matrix from a YAML file instead of stdin")

	return cmd
}
