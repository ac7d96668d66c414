// SPDX-License-Identifier: MIT

// Package solver: the three elementary row operations.
//
// Each operation validates its arguments before touching the matrix, so a
// failed call always leaves the matrix unchanged. Calls that do not change
// the matrix (swap of a row with itself, scale by exactly 1, add of a zero
// multiple) succeed without emitting an Event.
package solver

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linsolve/matrix"
)

// checkRows validates m and every row index in idx.
func checkRows(m *matrix.Dense, idx ...int) error {
	if m == nil {
		return matrix.ErrNilMatrix
	}
	for _, i := range idx {
		if i < 0 || i >= m.Rows() {
			return fmt.Errorf("row %d of %d: %w", i, m.Rows(), matrix.ErrOutOfRange)
		}
	}

	return nil
}

// checkScalar rejects NaN and ±Inf multipliers.
func checkScalar(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("scalar %v: %w", v, matrix.ErrNaNInf)
	}

	return nil
}

// SwapRows exchanges rows i and j.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange.
//
// Complexity: O(c).
func (s *Solver) SwapRows(m *matrix.Dense, i, j int) error {
	if err := checkRows(m, i, j); err != nil {
		return solverErrorf(opSwapRows, err)
	}
	if i == j {
		return nil
	}
	if err := m.SwapRowsInPlace(i, j); err != nil {
		return solverErrorf(opSwapRows, err)
	}
	s.emit(m, OpSwap, i, j, 0)

	return nil
}

// ScaleRow multiplies every element of row i by scalar.
// Scaling by exactly 1 is a no-op. Scaling by 0 is irreversible and fails
// with ErrInvalidOperation; the matrix is left unchanged. Negative scalars
// are accepted.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange, ErrInvalidOperation, ErrNaNInf.
//
// Complexity: O(c).
func (s *Solver) ScaleRow(m *matrix.Dense, i int, scalar float64) error {
	if err := checkRows(m, i); err != nil {
		return solverErrorf(opScaleRow, err)
	}
	if scalar == 1 {
		return nil
	}
	if scalar == 0 {
		return solverErrorf(opScaleRow, fmt.Errorf("row %d by zero: %w", i, matrix.ErrInvalidOperation))
	}
	if err := checkScalar(scalar); err != nil {
		return solverErrorf(opScaleRow, err)
	}
	if err := m.ScaleRowInPlace(i, scalar); err != nil {
		return solverErrorf(opScaleRow, err)
	}
	s.emit(m, OpScale, i, i, scalar)

	return nil
}

// AddRows replaces row target with target + c*source. Row source is not
// modified. c == 0 is legal and leaves the matrix untouched.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange, ErrNaNInf.
//
// Complexity: O(c).
func (s *Solver) AddRows(m *matrix.Dense, target, source int, c float64) error {
	if err := checkRows(m, target, source); err != nil {
		return solverErrorf(opAddRows, err)
	}
	if err := checkScalar(c); err != nil {
		return solverErrorf(opAddRows, err)
	}
	if c == 0 {
		return nil
	}
	if err := m.AddScaledRowInPlace(target, source, c); err != nil {
		return solverErrorf(opAddRows, err)
	}
	s.emit(m, OpAdd, target, source, c)

	return nil
}
