// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// Output formats.
const (
	formatText = "text"
	formatJSON = "json"
)

// ValidFormats lists the accepted --format values.
var ValidFormats = []string{formatText, formatJSON}

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool   // debug diagnostics and the structured operation log on stderr
	Format  string // "text" | "json"
	History string // SQLite database path; empty disables history
}

// NewRootCommand creates the root command for the linsolve CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "linsolve",
		Short: "Solve systems of linear equations",
		Long: `Reduce augmented matrices to reduced row echelon form by Gauss-Jordan
elimination and describe the solution set; compute determinants and inverses.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose diagnostics on stderr")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", formatText, "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.History, "history", "", "record solves in this SQLite database")

	cmd.AddCommand(NewSolveCommand(opts))
	cmd.AddCommand(NewDetCommand(opts))
	cmd.AddCommand(NewInverseCommand(opts))
	cmd.AddCommand(NewHistoryCommand(opts))

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// formatter builds the OutputFormatter for cmd.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
	}
}

// logger returns a text logger on w: Warn and above normally, Debug with --verbose.
func (o *RootOptions) logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if o.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
