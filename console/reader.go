// SPDX-License-Identifier: MIT

package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/linsolve/matrix"
)

// Terminator starts the line that ends interactive input.
const Terminator = "END"

// LogFlag anywhere on the terminator line enables the operation log.
const LogFlag = "-l"

// Prompt texts.
const (
	PromptWelcome = "Welcome! Keep typing in equations, then type 'END' when you are done.\n" +
		"When typing 'END', you can also include a '-l' tag to log each row operation."
	promptWidth   = "Each row of your matrix needs to be size %d (# of items in first row)"
	promptNumbers = "Please input numbers, separated with spaces"
)

// ErrEmptySystem is returned when input ends before any valid row was read.
var ErrEmptySystem = errors.New("console: no equations entered")

// errRowWidth marks a row whose width differs from the first row.
var errRowWidth = errors.New("console: wrong number of columns")

// errEmptyRow marks a line without any number.
var errEmptyRow = errors.New("console: no numbers")

// Directives carries the options given on the terminator line.
type Directives struct {
	Logging bool // "-l" was present
}

// ReadSystem reads rows from r until a line starting with Terminator (or EOF)
// and returns them as a Dense. Complaints about rejected rows go to prompt;
// pass io.Discard to silence them.
//
// Errors:
//   - ErrEmptySystem when no row was accepted.
//   - read errors from r.
func ReadSystem(r io.Reader, prompt io.Writer) (*matrix.Dense, Directives, error) {
	var (
		rows  [][]float64
		dir   Directives
		width = -1
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if strings.HasPrefix(line, Terminator) {
			dir.Logging = strings.Contains(line, LogFlag)
			break
		}

		row, err := parseRow(line, width)
		switch {
		case errors.Is(err, errRowWidth):
			fmt.Fprintf(prompt, promptWidth+"\n", width)
			continue
		case err != nil:
			fmt.Fprintln(prompt, promptNumbers)
			continue
		}
		if width < 0 {
			width = len(row)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, dir, fmt.Errorf("console: read: %w", err)
	}
	if len(rows) == 0 {
		return nil, dir, ErrEmptySystem
	}

	m, err := matrix.NewFromRows(rows)
	if err != nil {
		return nil, dir, fmt.Errorf("console: %w", err)
	}

	return m, dir, nil
}

// parseRow converts one input line into numbers. width < 0 accepts any width.
func parseRow(line string, width int) ([]float64, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, errEmptyRow
	}
	row := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("console: %q: %w", f, err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("console: %q: %w", f, matrix.ErrNaNInf)
		}
		row = append(row, v)
	}
	if width >= 0 && len(row) != width {
		return nil, errRowWidth
	}

	return row, nil
}
