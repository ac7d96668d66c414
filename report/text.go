// SPDX-License-Identifier: MIT

package report

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/linsolve/matrix"
)

// Text layout literals.
const (
	_rowOpen  = "["
	_rowClose = "]\n"
	_cellEnd  = " \t"
	_bar      = "| "
)

// Section headings of a solve report.
const (
	HeadingOriginal   = "Original Matrix:"
	HeadingSimplified = "Simplified Matrix:"
	HeadingSolution   = "Solution:"
	NoSolution        = "No solution"
)

// FormatValue renders v in shortest round-trip form.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// writeRows prints rows one per line. With augmented set, a bar precedes
// the last column.
func writeRows(w io.Writer, rows [][]float64, augmented bool) error {
	bw := bufio.NewWriter(w)
	for _, row := range rows {
		bw.WriteString(_rowOpen)
		for j, v := range row {
			bw.WriteString(FormatValue(v))
			bw.WriteString(_cellEnd)
			if augmented && j == len(row)-2 {
				bw.WriteString(_bar)
			}
		}
		bw.WriteString(_rowClose)
	}

	return bw.Flush()
}

// WriteMatrix prints an augmented matrix, one row per line.
func WriteMatrix(w io.Writer, m matrix.Matrix) error {
	rows, err := toRows(m)
	if err != nil {
		return err
	}

	return writeRows(w, rows, true)
}

// WriteSquare prints a plain coefficient matrix (no constant column).
func WriteSquare(w io.Writer, m matrix.Matrix) error {
	rows, err := toRows(m)
	if err != nil {
		return err
	}

	return writeRows(w, rows, false)
}

// vectorString renders v as [a, b, c].
func vectorString(v matrix.Vector) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = FormatValue(x)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// WriteSolutionSpace prints the parametric form of s:
//
//	x = [-2, 0, 1.5, 0]
//	  + t1 * [-2, 1, 0, 0]
//	  + t2 * [2, 0, -2, 1]
//
// An empty space prints nothing.
func WriteSolutionSpace(w io.Writer, s matrix.SolutionSpace) error {
	if len(s) == 0 {
		return nil
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "x = %s\n", vectorString(s.Particular()))
	for i, v := range s.Basis() {
		fmt.Fprintf(bw, "  + t%d * %s\n", i+1, vectorString(v))
	}

	return bw.Flush()
}

// WriteText prints a full solve report: the original matrix, every recorded
// operation with the matrix after it, the reduced matrix and the solution
// (or NoSolution).
func WriteText(w io.Writer, res Result) error {
	bw := bufio.NewWriter(w)
	if res.Name != "" {
		fmt.Fprintf(bw, "%s\n\n", res.Name)
	}
	fmt.Fprintln(bw, HeadingOriginal)
	if err := writeRows(bw, res.Original, true); err != nil {
		return err
	}
	for _, op := range res.Operations {
		fmt.Fprintf(bw, "\n%s\n", op.Description)
		if err := writeRows(bw, op.Matrix, true); err != nil {
			return err
		}
	}
	fmt.Fprintf(bw, "\n%s\n", HeadingSimplified)
	if err := writeRows(bw, res.Reduced, true); err != nil {
		return err
	}
	if !res.Solvable {
		fmt.Fprintf(bw, "\n%s\n", NoSolution)
		return bw.Flush()
	}
	fmt.Fprintf(bw, "\n%s\n", HeadingSolution)
	if err := WriteSolutionSpace(bw, res.Space()); err != nil {
		return err
	}

	return bw.Flush()
}

func toRows(m matrix.Matrix) ([][]float64, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, err
	}
	if d, ok := m.(*matrix.Dense); ok {
		return d.ToRows(), nil
	}

	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			v, err := m.At(i, j)
			if err != nil {
				return nil, err
			}
			out[i][j] = v
		}
	}

	return out, nil
}
