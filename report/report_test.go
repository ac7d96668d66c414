// SPDX-License-Identifier: MIT
package report_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsolve/matrix"
	"github.com/katalvlaran/linsolve/report"
	"github.com/katalvlaran/linsolve/solver"
)

// newGolden compares against testdata/golden/<name>.golden.
// Regenerate with: go test ./report -update
func newGolden(t *testing.T) *goldie.Goldie {
	t.Helper()

	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// solve runs a recording solver over a copy of rows.
func solve(t *testing.T, rows [][]float64) (original, reduced *matrix.Dense, events []solver.Event) {
	t.Helper()
	original = mustRows(t, rows)
	reduced = mustRows(t, rows)
	rec := &solver.Recorder{}
	require.NoError(t, solver.New(solver.WithObserver(rec)).Solve(reduced))

	return original, reduced, rec.Events
}

func TestWriteMatrix(t *testing.T) {
	m := mustRows(t, [][]float64{
		{1, 2, 0, -2, -2},
		{0, 0, 1, 2, 1.5},
		{0, 0, 0, 0, 0},
	})
	var buf bytes.Buffer
	require.NoError(t, report.WriteMatrix(&buf, m))
	newGolden(t).Assert(t, "matrix_underdetermined", buf.Bytes())
}

func TestWriteSquare(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteSquare(&buf, mustRows(t, [][]float64{{1, 0}, {0, 1}})))
	require.Equal(t, "[1 \t0 \t]\n[0 \t1 \t]\n", buf.String())
}

func TestWriteMatrix_Nil(t *testing.T) {
	require.ErrorIs(t, report.WriteMatrix(&bytes.Buffer{}, nil), matrix.ErrNilMatrix)
}

func TestWriteSolutionSpace_Unique(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteSolutionSpace(&buf, matrix.SolutionSpace{{3, -0.5, 1e-5}}))
	require.Equal(t, "x = [3, -0.5, 1e-05]\n", buf.String())
}

func TestWriteSolutionSpace(t *testing.T) {
	space := matrix.SolutionSpace{
		{-2, 0, 1.5, 0},
		{-2, 1, 0, 0},
		{2, 0, -2, 1},
	}
	var buf bytes.Buffer
	require.NoError(t, report.WriteSolutionSpace(&buf, space))
	newGolden(t).Assert(t, "solution_underdetermined", buf.Bytes())

	buf.Reset()
	require.NoError(t, report.WriteSolutionSpace(&buf, nil))
	require.Empty(t, buf.String())
}

func TestWriteText_WithOperations(t *testing.T) {
	original, reduced, events := solve(t, [][]float64{{0, 2, 4}, {1, 1, 1}})
	res, err := report.NewResult("", original, reduced, events)
	require.NoError(t, err)
	require.Len(t, res.Operations, 3)

	var buf bytes.Buffer
	require.NoError(t, report.WriteText(&buf, res))
	newGolden(t).Assert(t, "solve_logged", buf.Bytes())
}

func TestWriteText_NoSolution(t *testing.T) {
	original, reduced, _ := solve(t, [][]float64{{1, 1, 2}, {1, 1, 3}})
	res, err := report.NewResult("inconsistent", original, reduced, nil)
	require.NoError(t, err)
	require.False(t, res.Solvable)
	require.Nil(t, res.Space())

	var buf bytes.Buffer
	require.NoError(t, report.WriteText(&buf, res))
	newGolden(t).Assert(t, "solve_inconsistent", buf.Bytes())
}

func TestWriteJSON(t *testing.T) {
	original, reduced, _ := solve(t, [][]float64{{2, 4}})
	res, err := report.NewResult("single", original, reduced, nil)
	require.NoError(t, err)
	res.RunID = "01890a5d-ac96-774b-bcce-b302099a8057"

	var buf bytes.Buffer
	require.NoError(t, report.WriteJSON(&buf, res))
	newGolden(t).Assert(t, "solve_json", buf.Bytes())

	var back report.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	require.Equal(t, res.Space(), back.Space())
}

func TestNewResult_Underdetermined(t *testing.T) {
	original, reduced, _ := solve(t, [][]float64{
		{1, 2, 2, 2, 1},
		{2, 4, 6, 8, 5},
		{3, 6, 8, 10, 6},
	})
	res, err := report.NewResult("", original, reduced, nil)
	require.NoError(t, err)
	require.True(t, res.Solvable)
	require.Equal(t, matrix.Vector{-2, 0, 1.5, 0}, res.Particular)
	require.Equal(t, []matrix.Vector{{-2, 1, 0, 0}, {2, 0, -2, 1}}, res.Basis)
	require.Empty(t, res.Operations)
}

func TestNewResult_Nil(t *testing.T) {
	_, err := report.NewResult("", nil, nil, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
