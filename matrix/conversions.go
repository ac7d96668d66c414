// SPDX-License-Identifier: MIT
// Package matrix provides the converter from Matrix to gonum's mat.Dense,
// so callers can hand matrices to gonum routines (conditioning,
// factorizations).
package matrix

import (
	"gonum.org/v1/gonum/mat"
)

// ToGonum copies m into a new *mat.Dense with the same shape.
//
// Errors:
//   - ErrNilMatrix; ErrInvalidDimensions for an empty matrix;
//     At errors from non-Dense implementations.
//
// Time Complexity: O(r*c)
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	if d, ok := m.(*Dense); ok {
		buf := make([]float64, len(d.data))
		copy(buf, d.data)

		return mat.NewDense(d.r, d.c, buf), nil
	}

	rows, cols := m.Rows(), m.Cols()
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	buf := make([]float64, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, err
			}
			buf[i*cols+j] = v
		}
	}

	return mat.NewDense(rows, cols, buf), nil
}
