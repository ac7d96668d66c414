// SPDX-License-Identifier: MIT

package solver

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linsolve/matrix"
)

// ErrNoSolution is returned by SolutionSpace when the reduced system
// contains a "0 = nonzero" row.
var ErrNoSolution = errors.New("solver: system has no solution")

// Operation tags used when wrapping errors.
const (
	opSwapRows      = "SwapRows"
	opScaleRow      = "ScaleRow"
	opAddRows       = "AddRows"
	opRowEchelon    = "RowEchelon"
	opReducedEch    = "ReducedRowEchelon"
	opSolve         = "Solve"
	opExistsSol     = "ExistsSolution"
	opExistsInv     = "ExistsInverse"
	opDeterminant   = "Determinant"
	opInverse       = "Inverse"
	opSolutionSpace = "SolutionSpace"
)

// solverErrorf wraps err with an operation tag, preserving it for errors.Is.
func solverErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Kind classifies engine failures.
type Kind int

const (
	// KindOther covers everything outside the three engine failure kinds
	// (nil input, non-square input, singular matrix, I/O and so on).
	KindOther Kind = iota
	// KindInvalidOperation: a row was scaled by exactly zero.
	KindInvalidOperation
	// KindShapeMismatch: rows of unequal length or incompatible shapes.
	KindShapeMismatch
	// KindIndexOutOfRange: a row or column index outside the matrix.
	KindIndexOutOfRange
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindInvalidOperation:
		return "InvalidOperation"
	case KindShapeMismatch:
		return "ShapeMismatch"
	case KindIndexOutOfRange:
		return "IndexOutOfRange"
	default:
		return "Other"
	}
}

// KindOf reports which failure kind err belongs to. A nil error is KindOther.
func KindOf(err error) Kind {
	switch {
	case errors.Is(err, matrix.ErrInvalidOperation):
		return KindInvalidOperation
	case errors.Is(err, matrix.ErrShapeMismatch):
		return KindShapeMismatch
	case errors.Is(err, matrix.ErrOutOfRange):
		return KindIndexOutOfRange
	default:
		return KindOther
	}
}
