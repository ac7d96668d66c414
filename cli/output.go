// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/linsolve/matrix"
	"github.com/katalvlaran/linsolve/report"
	"github.com/katalvlaran/linsolve/solver"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // successful execution
	ExitFailure      = 1 // well-formed input without an answer (no solution, singular)
	ExitCommandError = 2 // bad input, unreadable file, database errors
)

// ExitError carries the exit code a command failed with.
type ExitError struct {
	Code    int    // ExitFailure or ExitCommandError
	Message string // human-readable summary
	Err     error  // underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates an ExitError without an underlying cause.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps err with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from err.
// Returns ExitSuccess for nil and ExitFailure for errors that are not ExitErrors.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// wrapSolveError picks the exit code for an error from the engine:
// a system without a solution or a singular matrix is a failure, anything
// else means the input could not be processed.
func wrapSolveError(message string, err error) *ExitError {
	if errors.Is(err, solver.ErrNoSolution) || errors.Is(err, matrix.ErrSingular) {
		return WrapExitError(ExitFailure, message, err)
	}
	return WrapExitError(ExitCommandError, message, err)
}

// Response is the JSON envelope of every command.
type Response struct {
	Status string         `json:"status"`           // "ok" or "error"
	RunID  string         `json:"run_id,omitempty"` // set by solve
	Data   any            `json:"data,omitempty"`   // success payload
	Error  *ResponseError `json:"error,omitempty"`  // error details
}

// ResponseError is the error part of a Response.
type ResponseError struct {
	Code    int    `json:"code"` // exit code
	Kind    string `json:"kind"` // solver.Kind of the cause
	Message string `json:"message"`
}

// OutputFormatter writes command results as text or JSON.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // prompts and diagnostics when Writer carries JSON
}

// JSON reports whether machine output was requested.
func (f *OutputFormatter) JSON() bool { return f.Format == formatJSON }

// Success writes data: as a JSON envelope, or through text otherwise.
// A write failure is reported through Error, so JSON callers still get an
// error envelope when the payload itself cannot be encoded.
func (f *OutputFormatter) Success(runID string, data any, text func(io.Writer) error) error {
	var err error
	if f.JSON() {
		err = report.WriteJSON(f.Writer, Response{Status: "ok", RunID: runID, Data: data})
	} else {
		err = text(f.Writer)
	}
	if err != nil {
		return f.Error(WrapExitError(ExitCommandError, "cannot write output", err))
	}
	return nil
}

// Error reports err. JSON output gets an error envelope on Writer; text
// output is left to the caller (main prints the returned error on stderr).
// The ExitError is returned either way.
func (f *OutputFormatter) Error(exitErr *ExitError) error {
	if f.JSON() {
		_ = report.WriteJSON(f.Writer, Response{
			Status: "error",
			Error: &ResponseError{
				Code:    exitErr.Code,
				Kind:    solver.KindOf(exitErr).String(),
				Message: exitErr.Error(),
			},
		})
	}
	return exitErr
}

// PromptWriter is where interactive prompts go: stdout for text output,
// stderr when stdout carries JSON.
func (f *OutputFormatter) PromptWriter() io.Writer {
	if f.JSON() && f.ErrWriter != nil {
		return f.ErrWriter
	}
	return f.Writer
}
