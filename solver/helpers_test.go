// SPDX-License-Identifier: MIT
package solver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsolve/matrix"
)

// hide masks the concrete *Dense type to exercise generic Matrix paths.
type hide struct{ matrix.Matrix }

func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

func requireClose(t *testing.T, want [][]float64, got matrix.Matrix, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(got, mustRows(t, want), 0, atol)
	require.NoError(t, err)
	require.Truef(t, ok, "want %v, got\n%v", want, got)
}
