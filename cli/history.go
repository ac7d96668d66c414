// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/linsolve/console"
	"github.com/katalvlaran/linsolve/history"
	"github.com/katalvlaran/linsolve/matrix"
	"github.com/katalvlaran/linsolve/report"
	"github.com/katalvlaran/linsolve/solver"
)

// HistoryItem is the JSON form of one history entry.
type HistoryItem struct {
	ID        string      `json:"id"`
	Name      string      `json:"name,omitempty"`
	Input     [][]float64 `json:"input"`
	Reduced   [][]float64 `json:"reduced"`
	Solvable  bool        `json:"solvable"`
	CreatedAt time.Time   `json:"created_at"`
}

// NewHistoryCommand creates the history command group.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect recorded solves (requires --history)",
	}
	cmd.AddCommand(newHistoryListCommand(rootOpts))
	cmd.AddCommand(newHistoryShowCommand(rootOpts))

	return cmd
}

func newHistoryListCommand(rootOpts *RootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the most recent solves, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd)
			if rootOpts.History == "" {
				return f.Error(NewExitError(ExitCommandError, "no history database: pass --history <path>"))
			}

			store, err := history.Open(rootOpts.History)
			if err != nil {
				return f.Error(WrapExitError(ExitCommandError, "cannot open history", err))
			}
			defer store.Close()

			entries, err := store.List(cmd.Context(), limit)
			if err != nil {
				return f.Error(WrapExitError(ExitCommandError, "cannot read history", err))
			}

			items := make([]HistoryItem, len(entries))
			for i, e := range entries {
				items[i] = toHistoryItem(e)
			}

			err = f.Success("", items, func(w io.Writer) error { return writeHistory(w, items) })
			if err != nil {
				return err
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "maximum number of entries (0 for all)")

	return cmd
}

func newHistoryShowCommand(rootOpts *RootOptions) *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show one recorded solve",
		Long: `Show the input and reduced matrices of one recorded solve.
With --yaml the input is printed as a system file that "solve --file" accepts.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistoryShow(rootOpts, args[0], asYAML, cmd)
		},
	}

	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print the input system as YAML")

	return cmd
}

func runHistoryShow(rootOpts *RootOptions, rawID string, asYAML bool, cmd *cobra.Command) error {
	f := rootOpts.formatter(cmd)
	if rootOpts.History == "" {
		return f.Error(NewExitError(ExitCommandError, "no history database: pass --history <path>"))
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return f.Error(WrapExitError(ExitCommandError, fmt.Sprintf("invalid run id %q", rawID), err))
	}

	store, err := history.Open(rootOpts.History)
	if err != nil {
		return f.Error(WrapExitError(ExitCommandError, "cannot open history", err))
	}
	defer store.Close()

	e, err := store.Get(cmd.Context(), id)
	if err != nil {
		return f.Error(WrapExitError(ExitCommandError, "cannot read history", err))
	}

	if asYAML {
		input, err := matrix.NewFromRows(e.Input)
		if err != nil {
			return f.Error(WrapExitError(ExitCommandError, "stored input is corrupt", err))
		}
		if err = console.EncodeYAML(cmd.OutOrStdout(), e.Name, input); err != nil {
			return f.Error(WrapExitError(ExitCommandError, "cannot write output", err))
		}
		return nil
	}

	item := toHistoryItem(e)
	return f.Success("", item, func(w io.Writer) error { return writeHistoryEntry(w, item) })
}

func toHistoryItem(e history.Entry) HistoryItem {
	return HistoryItem{
		ID:        e.ID.String(),
		Name:      e.Name,
		Input:     e.Input,
		Reduced:   e.Reduced,
		Solvable:  e.Solvable,
		CreatedAt: e.CreatedAt,
	}
}

// writeHistoryEntry prints one entry with both matrices in report layout.
func writeHistoryEntry(w io.Writer, it HistoryItem) error {
	status := "solvable"
	if !it.Solvable {
		status = report.NoSolution
	}
	if _, err := fmt.Fprintf(w, "Run %s (%s) %s\n", it.ID, it.CreatedAt.Format(time.RFC3339), status); err != nil {
		return err
	}
	if it.Name != "" {
		if _, err := fmt.Fprintf(w, "Name: %s\n", it.Name); err != nil {
			return err
		}
	}
	for _, sec := range []struct {
		title string
		rows  [][]float64
	}{
		{report.HeadingOriginal, it.Input},
		{report.HeadingSimplified, it.Reduced},
	} {
		m, err := matrix.NewFromRows(sec.rows)
		if err != nil {
			return err
		}
		if _, err = fmt.Fprintf(w, "\n%s\n", sec.title); err != nil {
			return err
		}
		if err = report.WriteMatrix(w, m); err != nil {
			return err
		}
	}
	return nil
}

// writeHistory prints one aligned line per entry.
func writeHistory(w io.Writer, items []HistoryItem) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, it := range items {
		status := "solvable"
		if !it.Solvable {
			status = "no solution"
		}
		name := it.Name
		if name == "" {
			name = "-"
		}
		_, _ = tw.Write([]byte(it.ID + "\t" + it.CreatedAt.Format(time.RFC3339) + "\t" + status + "\t" + name + "\t" +
			solver.FormatRows(it.Input) + "\n"))
	}
	return tw.Flush()
}
