// SPDX-License-Identifier: MIT

package solver

import (
	"github.com/katalvlaran/linsolve/matrix"
)

// pivotPos is a (row, column) pair found while scanning a reduced matrix.
type pivotPos struct {
	row, col int
}

// SolutionSpace extracts the parametric solution of a reduced (RREF)
// augmented system.
//
// Implementation:
//   - Stage 1: reject inconsistent systems (ExistsSolution) with ErrNoSolution.
//   - Stage 2: walk the variable columns left to right with an expected pivot
//     row starting at 0. A column whose entry in that row is exactly 1 is a
//     pivot column: its particular value is the row's constant and the walk
//     moves to the next row. Once the last row has received a pivot, every
//     later column is free. Free columns get a particular value of 0.
//   - Stage 3: for every free column f build a basis vector with v[f] = 1 and
//     v[p] = -m[row(p)][f] for every pivot column p (-0 becomes 0).
//
// Returns:
//   - SolutionSpace: [particular, basis for each free column in order].
//     Every vector has length Cols()-1.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions, ErrNoSolution.
//
// Complexity:
//   - Time O(c·(r + k)) for k free columns.
func SolutionSpace(m matrix.Matrix) (matrix.SolutionSpace, error) {
	ok, err := ExistsSolution(m)
	if err != nil {
		return nil, solverErrorf(opSolutionSpace, err)
	}
	if !ok {
		return nil, solverErrorf(opSolutionSpace, ErrNoSolution)
	}

	rows, err := readRows(m)
	if err != nil {
		return nil, solverErrorf(opSolutionSpace, err)
	}
	nRows, nVars := len(rows), m.Cols()-1

	// Stage 2: classify columns.
	var (
		pivots    []pivotPos
		free      []int
		row       int
		exhausted bool
	)
	particular := make(matrix.Vector, nVars)
	for col := 0; col < nVars; col++ {
		if !exhausted && rows[row][col] == 1 {
			pivots = append(pivots, pivotPos{row: row, col: col})
			particular[col] = rows[row][nVars]
			if row == nRows-1 {
				exhausted = true
			} else {
				row++
			}
			continue
		}
		free = append(free, col)
		particular[col] = 0
	}

	// Stage 3: one basis vector per free column.
	space := make(matrix.SolutionSpace, 0, len(free)+1)
	space = append(space, particular)
	for _, f := range free {
		v := make(matrix.Vector, nVars)
		v[f] = 1
		for _, p := range pivots {
			x := -rows[p.row][f]
			if x == 0 {
				x = 0 // drop the sign of -0
			}
			v[p.col] = x
		}
		space = append(space, v)
	}

	return space, nil
}
