// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsolve/matrix"
)

func TestNewDenseDefaultZero(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{1, 1},
		{3, 4},
		{6, 6},
	} {
		name := fmt.Sprintf("%dx%d", tc.rows, tc.cols)
		t.Run(name, func(t *testing.T) {
			m := MustDense(t, tc.rows, tc.cols)
			// immediately after creation all elements should be 0
			var i, j int
			for i = 0; i < tc.rows; i++ {
				for j = 0; j < tc.cols; j++ {
					require.Equal(t, 0.0, MustAt(t, m, i, j))
				}
			}
		})
	}
}

func TestNewDense_InvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDense(2, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestNewFromRows(t *testing.T) {
	rows := [][]float64{{1, 2, 3}, {4, 5, 6}}
	m := MustFromRows(t, rows)
	Compare(t, rows, m)

	// the input is copied
	rows[0][0] = 99
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
}

func TestNewFromRows_Rejects(t *testing.T) {
	_, err := matrix.NewFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewFromRows([][]float64{{}})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
	require.Contains(t, err.Error(), "row 1")

	_, err = matrix.NewFromRows([][]float64{{1, math.NaN()}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestNewIdentity(t *testing.T) {
	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	Compare(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, id)
}

func TestDense_AtSetBounds(t *testing.T) {
	m := MustDense(t, 2, 2)
	require.NoError(t, m.Set(1, 1, 7))
	require.Equal(t, 7.0, MustAt(t, m, 1, 1))

	_, err := m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)
}

func TestDense_CloneIndependent(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	cp := m.Clone()
	require.NoError(t, cp.Set(0, 0, 42))
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
	require.Equal(t, 42.0, MustAt(t, cp, 0, 0))
}

func TestDense_RowAndToRows(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, matrix.Vector{3, 4}, row)

	row[0] = 100
	require.Equal(t, 3.0, MustAt(t, m, 1, 0), "Row must return a copy")

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	snap := m.ToRows()
	snap[0][0] = -1
	require.Equal(t, 1.0, MustAt(t, m, 0, 0), "ToRows must return a deep copy")
}

func TestDense_SwapRowsInPlace(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	require.NoError(t, m.SwapRowsInPlace(0, 1))
	Compare(t, [][]float64{{4, 5, 6}, {1, 2, 3}, {7, 8, 9}}, m)

	require.NoError(t, m.SwapRowsInPlace(2, 2))
	Compare(t, [][]float64{{4, 5, 6}, {1, 2, 3}, {7, 8, 9}}, m)

	require.ErrorIs(t, m.SwapRowsInPlace(0, 3), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.SwapRowsInPlace(-1, 0), matrix.ErrOutOfRange)
}

func TestDense_ScaleAndAddScaled(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	require.NoError(t, m.ScaleRowInPlace(1, 2))
	Compare(t, [][]float64{{1, 2, 3}, {8, 10, 12}, {7, 8, 9}}, m)

	require.NoError(t, m.AddScaledRowInPlace(2, 0, 3))
	Compare(t, [][]float64{{1, 2, 3}, {8, 10, 12}, {10, 14, 18}}, m)

	require.ErrorIs(t, m.ScaleRowInPlace(3, 2), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.AddScaledRowInPlace(0, 5, 1), matrix.ErrOutOfRange)
}

func TestDense_String(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 2.5}, {-3, 0}})
	require.Equal(t, "[1, 2.5]\n[-3, 0]\n", m.String())
}
