// SPDX-License-Identifier: MIT
package solver_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsolve/matrix"
	"github.com/katalvlaran/linsolve/solver"
)

func TestSwapRows(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	s := solver.New()

	require.NoError(t, s.SwapRows(m, 0, 1))
	require.Equal(t, [][]float64{{4, 5, 6}, {1, 2, 3}, {7, 8, 9}}, m.ToRows())
}

func TestSwapRows_SelfInverse(t *testing.T) {
	orig := [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	m := mustRows(t, orig)
	s := solver.New()

	require.NoError(t, s.SwapRows(m, 0, 2))
	require.NoError(t, s.SwapRows(m, 0, 2))
	require.Equal(t, orig, m.ToRows())

	require.NoError(t, s.SwapRows(m, 1, 1))
	require.Equal(t, orig, m.ToRows())
}

func TestSwapRows_OutOfRange(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	err := solver.New().SwapRows(m, 0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.Equal(t, solver.KindIndexOutOfRange, solver.KindOf(err))
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, m.ToRows())

	require.ErrorIs(t, solver.New().SwapRows(nil, 0, 0), matrix.ErrNilMatrix)
}

func TestScaleRow(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	require.NoError(t, solver.New().ScaleRow(m, 1, 2))
	require.Equal(t, [][]float64{{1, 2, 3}, {8, 10, 12}, {7, 8, 9}}, m.ToRows())
}

func TestScaleRow_Reversible(t *testing.T) {
	orig := [][]float64{{1, 2, 3}, {4, 5, 6}}
	s := solver.New()
	for _, scalar := range []float64{2, -3, 0.1, 7, -1e-3, 1e6} {
		m := mustRows(t, orig)
		require.NoError(t, s.ScaleRow(m, 0, scalar))
		require.NoError(t, s.ScaleRow(m, 0, 1/scalar))
		requireClose(t, orig, m, 1e-9)
	}
}

func TestScaleRow_ByZero(t *testing.T) {
	orig := [][]float64{{1, 2, 3}, {4, 5, 6}}
	m := mustRows(t, orig)
	rec := &solver.Recorder{}

	err := solver.New(solver.WithObserver(rec)).ScaleRow(m, 1, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidOperation)
	require.Equal(t, solver.KindInvalidOperation, solver.KindOf(err))
	require.Equal(t, orig, m.ToRows(), "a failed scale must not touch the matrix")
	require.Empty(t, rec.Events)
}

func TestScaleRow_Rejects(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2}})
	s := solver.New()
	require.ErrorIs(t, s.ScaleRow(m, 1, 2), matrix.ErrOutOfRange)
	require.ErrorIs(t, s.ScaleRow(m, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, s.ScaleRow(m, 0, math.Inf(1)), matrix.ErrNaNInf)
}

func TestAddRows(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	require.NoError(t, solver.New().AddRows(m, 2, 1, 3))
	require.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {19, 23, 27}}, m.ToRows())
}

func TestAddRows_Reversible(t *testing.T) {
	orig := [][]float64{{1, -2, 3, 0.5}, {4, 5, -6, 2}}
	m := mustRows(t, orig)
	s := solver.New()

	require.NoError(t, s.AddRows(m, 0, 1, 4))
	require.NoError(t, s.AddRows(m, 0, 1, -4))
	require.Equal(t, orig, m.ToRows())

	// zero multiple is legal and harmless
	require.NoError(t, s.AddRows(m, 1, 0, 0))
	require.Equal(t, orig, m.ToRows())
}

func TestAddRows_OutOfRange(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2}})
	require.ErrorIs(t, solver.New().AddRows(m, 0, -1, 1), matrix.ErrOutOfRange)
}
