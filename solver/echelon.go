// SPDX-License-Identifier: MIT

package solver

import (
	"github.com/katalvlaran/linsolve/matrix"
)

// RowEchelon reduces m in place to row-echelon form by forward elimination.
//
// Implementation:
//   - Stage 1: pivotRow = pivotCol = 0.
//   - Stage 2: while pivotRow < rows and pivotCol < cols:
//     scan rows pivotRow.. for the first nonzero entry in pivotCol; if none,
//     advance pivotCol only (the column stays free).
//   - Stage 3: swap that row up, scale it by 1/pivot and pin the pivot entry
//     to exactly 1, then add -entry × pivot row to every row below.
//   - Stage 4: advance pivotRow and pivotCol.
//
// Behavior highlights:
//   - Leading entries of nonzero rows are exactly 1 and move strictly right
//     going down; rows without a pivot end up at the bottom.
//   - The scale factor is never zero, so ErrInvalidOperation cannot occur here.
//
// Errors:
//   - ErrNilMatrix; ErrNaNInf if a pivot is so small that 1/pivot overflows.
//
// Complexity:
//   - Time O(r²·c), Space O(1) beyond event snapshots.
func (s *Solver) RowEchelon(m *matrix.Dense) error {
	if m == nil {
		return solverErrorf(opRowEchelon, matrix.ErrNilMatrix)
	}

	rows, cols := m.Shape()
	var (
		pivotRow, pivotCol, r int
		v                     float64
		err                   error
	)
	for pivotRow < rows && pivotCol < cols {
		// Stage 2: search for a pivot at or below pivotRow.
		found := -1
		for r = pivotRow; r < rows; r++ {
			if v, err = m.At(r, pivotCol); err != nil {
				return solverErrorf(opRowEchelon, err)
			}
			if v != 0 {
				found = r
				break
			}
		}
		if found < 0 {
			pivotCol++ // no pivot in this column
			continue
		}

		// Stage 3: promote, normalise, eliminate below.
		if err = s.SwapRows(m, pivotRow, found); err != nil {
			return solverErrorf(opRowEchelon, err)
		}
		if v, err = m.At(pivotRow, pivotCol); err != nil {
			return solverErrorf(opRowEchelon, err)
		}
		if err = s.ScaleRow(m, pivotRow, 1/v); err != nil {
			return solverErrorf(opRowEchelon, err)
		}
		// v*(1/v) is not always exactly 1 in binary floating point.
		if err = m.Set(pivotRow, pivotCol, 1); err != nil {
			return solverErrorf(opRowEchelon, err)
		}
		for r = pivotRow + 1; r < rows; r++ {
			if v, err = m.At(r, pivotCol); err != nil {
				return solverErrorf(opRowEchelon, err)
			}
			if err = s.AddRows(m, r, pivotRow, -v); err != nil {
				return solverErrorf(opRowEchelon, err)
			}
		}

		// Stage 4: next pivot position.
		pivotRow++
		pivotCol++
	}
	s.logger.Debug("row echelon form reached", "rows", rows, "cols", cols, "pivots", pivotRow)

	return nil
}

// ReducedRowEchelon turns a row-echelon matrix into RREF by back substitution.
// The precondition (m is already row-echelon) is not re-validated.
//
// Implementation:
//   - For pivot rows from last to first: locate the first column holding
//     exactly 1 (the leading 1), then add -entry × pivot row to every row
//     above so the column is zero everywhere except in the pivot row.
//   - Rows without a 1 (zero rows) are skipped.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r²·c).
func (s *Solver) ReducedRowEchelon(m *matrix.Dense) error {
	if m == nil {
		return solverErrorf(opReducedEch, matrix.ErrNilMatrix)
	}

	rows, cols := m.Shape()
	var (
		v, above float64
		err      error
	)
	for pivotRow := rows - 1; pivotRow >= 0; pivotRow-- {
		for col := 0; col < cols; col++ {
			if v, err = m.At(pivotRow, col); err != nil {
				return solverErrorf(opReducedEch, err)
			}
			if v != 1 {
				continue
			}
			for r := 0; r < pivotRow; r++ {
				if above, err = m.At(r, col); err != nil {
					return solverErrorf(opReducedEch, err)
				}
				if err = s.AddRows(m, r, pivotRow, -above); err != nil {
					return solverErrorf(opReducedEch, err)
				}
			}
			break
		}
	}
	s.logger.Debug("reduced row echelon form reached", "rows", rows, "cols", cols)

	return nil
}

// Solve reduces m in place to RREF and rounds every entry to RoundingPlaces
// decimal places.
//
// Errors from either reduction stage are returned as-is (wrapped with the
// Solve tag); m then holds the partially reduced state, and it is up to the
// caller whether to show it.
func (s *Solver) Solve(m *matrix.Dense) error {
	if err := s.RowEchelon(m); err != nil {
		return solverErrorf(opSolve, err)
	}
	s.logger.Debug("converting to reduced row echelon form")
	if err := s.ReducedRowEchelon(m); err != nil {
		return solverErrorf(opSolve, err)
	}
	if err := matrix.Round(m, RoundingPlaces); err != nil {
		return solverErrorf(opSolve, err)
	}

	return nil
}
