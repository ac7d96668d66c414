// SPDX-License-Identifier: MIT

package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/linsolve/matrix"
	"github.com/katalvlaran/linsolve/solver"
)

// Operation is one logged row operation and the matrix after it.
type Operation struct {
	Description string      `json:"description"`
	Matrix      [][]float64 `json:"matrix"`
}

// Result is the outcome of solving one system.
type Result struct {
	RunID      string          `json:"run_id,omitempty"`
	Name       string          `json:"name,omitempty"`
	Original   [][]float64     `json:"original"`
	Operations []Operation     `json:"operations,omitempty"`
	Reduced    [][]float64     `json:"reduced"`
	Solvable   bool            `json:"solvable"`
	Particular matrix.Vector   `json:"particular,omitempty"`
	Basis      []matrix.Vector `json:"basis,omitempty"`
}

// Space reassembles the solution space; nil when the system has no solution.
func (r Result) Space() matrix.SolutionSpace {
	if !r.Solvable {
		return nil
	}
	s := make(matrix.SolutionSpace, 0, len(r.Basis)+1)
	s = append(s, r.Particular)

	return append(s, r.Basis...)
}

// NewResult assembles a Result from the matrix before and after Solve.
// events are the recorded operations, or nil when none were logged.
//
// Errors:
//   - matrix.ErrNilMatrix; shape errors from the solution analysis.
//     An inconsistent system is not an error: Solvable is false.
func NewResult(name string, original, reduced matrix.Matrix, events []solver.Event) (Result, error) {
	in, err := toRows(original)
	if err != nil {
		return Result{}, fmt.Errorf("report: original: %w", err)
	}
	out, err := toRows(reduced)
	if err != nil {
		return Result{}, fmt.Errorf("report: reduced: %w", err)
	}

	res := Result{Name: name, Original: in, Reduced: out}
	for _, e := range events {
		res.Operations = append(res.Operations, Operation{Description: e.Description(), Matrix: e.Snapshot})
	}

	space, err := solver.SolutionSpace(reduced)
	switch {
	case errors.Is(err, solver.ErrNoSolution):
		return res, nil
	case err != nil:
		return Result{}, fmt.Errorf("report: %w", err)
	}
	res.Solvable = true
	res.Particular = space.Particular()
	res.Basis = space.Basis()

	return res, nil
}

// WriteJSON encodes v as indented JSON followed by a newline.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("report: encode json: %w", err)
	}

	return nil
}
