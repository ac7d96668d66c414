// SPDX-License-Identifier: MIT

package cli

import (
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/linsolve/history"
	"github.com/katalvlaran/linsolve/report"
	"github.com/katalvlaran/linsolve/solver"
)

// SolveOptions holds flags of the solve command.
type SolveOptions struct {
	File string
	Log  bool
	Name string
}

// NewSolveCommand creates the solve command.
func NewSolveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SolveOptions{}

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Reduce an augmented matrix and print its solution set",
		Long: `Reduce an augmented matrix [A | b] to reduced row echelon form, rounded
to 5 decimal places, and print the particular solution plus one basis
vector per free variable, or "No solution" for an inconsistent system.

The exit code is 1 when the system has no solution.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "read the system from a YAML file instead of stdin")
	cmd.Flags().BoolVarP(&opts.Log, "log", "l", false, "include every row operation in the output")
	cmd.Flags().StringVar(&opts.Name, "name", "", "label for the report and history")

	return cmd
}

func runSolve(rootOpts *RootOptions, opts *SolveOptions, cmd *cobra.Command) error {
	f := rootOpts.formatter(cmd)
	logger := rootOpts.logger(cmd.ErrOrStderr())

	in, xerr := readInput(cmd, f, opts.File)
	if xerr != nil {
		return f.Error(xerr)
	}
	name := in.Name
	if opts.Name != "" {
		name = opts.Name
	}

	runID, err := uuid.NewV7()
	if err != nil {
		return f.Error(WrapExitError(ExitCommandError, "cannot create run id", err))
	}
	logger = logger.With("run_id", runID.String())

	original := in.Matrix.Clone()
	reduced := in.Matrix
	rec := &solver.Recorder{}
	solverOpts := []solver.Option{
		solver.WithLogger(logger),
		solver.WithObserver(solver.NewLogObserver(logger)),
	}
	if opts.Log || in.Logging {
		solverOpts = append(solverOpts, solver.WithObserver(rec))
	}

	if err = solver.New(solverOpts...).Solve(reduced); err != nil {
		// Show how far the reduction got before failing.
		logger.Error("reduction failed", "error", err, "matrix", solver.FormatRows(reduced.ToRows()))
		return f.Error(wrapSolveError("cannot solve system", err))
	}

	res, err := report.NewResult(name, original, reduced, rec.Events)
	if err != nil {
		return f.Error(wrapSolveError("cannot analyse reduced system", err))
	}
	res.RunID = runID.String()

	if rootOpts.History != "" {
		if err = recordSolve(cmd, rootOpts.History, runID, res); err != nil {
			return f.Error(WrapExitError(ExitCommandError, "cannot record history", err))
		}
		logger.Debug("solve recorded", "history", rootOpts.History)
	}

	if err = f.Success(res.RunID, res, func(w io.Writer) error { return report.WriteText(w, res) }); err != nil {
		return err
	}
	if !res.Solvable {
		return NewExitError(ExitFailure, "system has no solution")
	}

	return nil
}

// recordSolve appends res to the history database at path.
func recordSolve(cmd *cobra.Command, path string, runID uuid.UUID, res report.Result) error {
	store, err := history.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	_, err = store.Record(cmd.Context(), history.Entry{
		ID:       runID,
		Name:     res.Name,
		Input:    res.Original,
		Reduced:  res.Reduced,
		Solvable: res.Solvable,
	})
	return err
}
