// SPDX-License-Identifier: MIT
package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsolve/matrix"
)

func TestDet(t *testing.T) {
	stdout, _, err := execute(t, "1 2\n3 4\nEND\n", "det")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Determinant: -2\n")
}

func TestDet_JSON(t *testing.T) {
	path := writeFile(t, "m.yaml", "name: scaled\nrows:\n  - [2, 0]\n  - [0, 3]\n")
	stdout, _, err := execute(t, "", "--format", "json", "det", "-f", path)
	require.NoError(t, err)

	var resp struct {
		Data DetResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, DetResult{Name: "scaled", Determinant: 6}, resp.Data)
}

func TestDet_NonSquare(t *testing.T) {
	_, _, err := execute(t, "1 2 3\nEND\n", "det")
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestInverse(t *testing.T) {
	stdout, _, err := execute(t, "2 0\n0 4\nEND\n", "inverse")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Inverse:\n[0.5 \t0 \t]\n[0 \t0.25 \t]\n")
}

func TestInverse_JSON(t *testing.T) {
	path := writeFile(t, "m.yaml", "rows:\n  - [2, 0]\n  - [0, 4]\n")
	stdout, _, err := execute(t, "", "--format", "json", "inverse", "--file", path)
	require.NoError(t, err)

	var resp struct {
		Status string        `json:"status"`
		Data   InverseResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, [][]float64{{0.5, 0}, {0, 0.25}}, resp.Data.Inverse)
	require.NotNil(t, resp.Data.Condition)
	assert.InDelta(t, 2, *resp.Data.Condition, 1e-12)
}

func TestInverse_Singular(t *testing.T) {
	_, _, err := execute(t, "1 2\n2 4\nEND\n", "inverse")
	require.ErrorIs(t, err, matrix.ErrSingular)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestInverse_IllConditionedWarns(t *testing.T) {
	_, stderr, err := execute(t, "1 1\n1 1.0000000000001\nEND\n", "inverse")
	require.NoError(t, err)
	assert.Contains(t, stderr, "ill-conditioned")
}

func TestInverse_SingularUpToRounding(t *testing.T) {
	_, _, err := execute(t, "1 1.1\n3 3.3\nEND\n", "inverse")
	require.ErrorIs(t, err, matrix.ErrSingular)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}
