// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linsolve/matrix"
	"github.com/katalvlaran/linsolve/report"
	"github.com/katalvlaran/linsolve/solver"
)

// IllConditioned is the 2-norm condition number above which inverse warns
// that the result may be inaccurate.
const IllConditioned = 1e12

// ResidualTolerance is the absolute tolerance of the A·A⁻¹ = I check.
const ResidualTolerance = 1e-6

// InverseResult is the JSON payload of the inverse command.
type InverseResult struct {
	Name      string      `json:"name,omitempty"`
	Inverse   [][]float64 `json:"inverse"`
	Condition *float64    `json:"condition,omitempty"`
}

// NewInverseCommand creates the inverse command.
func NewInverseCommand(rootOpts *RootOptions) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "inverse",
		Short: "Print the inverse of a square matrix",
		Long: `Invert a square matrix by reducing [A | I] to [I | A⁻¹].
The exit code is 1 when the matrix is singular.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInverse(rootOpts, file, cmd)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "read the matrix from a YAML file instead of stdin")

	return cmd
}

func runInverse(rootOpts *RootOptions, file string, cmd *cobra.Command) error {
	f := rootOpts.formatter(cmd)
	logger := rootOpts.logger(cmd.ErrOrStderr())

	in, xerr := readInput(cmd, f, file)
	if xerr != nil {
		return f.Error(xerr)
	}

	inv, err := solver.New(solver.WithLogger(logger)).Inverse(in.Matrix)
	if err != nil {
		return f.Error(wrapSolveError("cannot invert matrix", err))
	}

	cond, err := condition(in.Matrix)
	if err != nil {
		return f.Error(WrapExitError(ExitCommandError, "cannot estimate condition number", err))
	}
	if math.IsInf(cond, 1) {
		return f.Error(wrapSolveError("cannot invert matrix", matrix.ErrSingular))
	}
	if cond > IllConditioned {
		logger.Warn("matrix is ill-conditioned; the inverse may be inaccurate", "cond", cond)
	}
	if ok, err := residualOK(in.Matrix, inv); err != nil {
		return f.Error(WrapExitError(ExitCommandError, "cannot check inverse", err))
	} else if !ok {
		logger.Warn("A·A⁻¹ differs from the identity", "atol", ResidualTolerance)
	}

	res := InverseResult{Name: in.Name, Inverse: inv.ToRows(), Condition: &cond}
	err = f.Success("", res, func(w io.Writer) error {
		if _, err := fmt.Fprintln(w, "Inverse:"); err != nil {
			return err
		}
		return report.WriteSquare(w, inv)
	})
	if err != nil {
		return err
	}
	return nil
}

// residualOK reports whether a·inv is the identity within ResidualTolerance.
func residualOK(a matrix.Matrix, inv *matrix.Dense) (bool, error) {
	prod, err := matrix.Mul(a, inv)
	if err != nil {
		return false, err
	}
	id, err := matrix.NewIdentity(prod.Rows())
	if err != nil {
		return false, err
	}
	return matrix.AllClose(prod, id, 0, ResidualTolerance)
}

// condition returns the 2-norm condition number of m, or +Inf when gonum
// deems it singular.
func condition(m matrix.Matrix) (float64, error) {
	g, err := matrix.ToGonum(m)
	if err != nil {
		return 0, err
	}
	c := mat.Cond(g, 2)
	if math.IsNaN(c) {
		c = math.Inf(1)
	}
	return c, nil
}
