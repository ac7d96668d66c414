// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// and solver packages. All algorithms MUST return these sentinels (optionally
// wrapped with an operation tag) and tests MUST check them via errors.Is.
// No algorithm should panic on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. If context is essential, wrap with
// fmt.Errorf("ctx: %w", ErrX) at the outer boundary; callers still match
// with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape/index -> numeric policy -> algorithmic (singular, invalid op).

var (
	// ErrInvalidOperation is returned when an elementary row operation would be
	// irreversible, i.e. scaling a row by exactly zero. It is never reachable
	// from a correct elimination, so seeing it indicates a logic defect.
	ErrInvalidOperation = errors.New("matrix: invalid row operation")

	// ErrShapeMismatch indicates rows of unequal length, or operands whose
	// shapes are incompatible for the requested operation.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) and row primitives MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (ingestion, Set).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrSingular is returned when a square matrix has no inverse
	// (its reduced form does not reach the identity).
	ErrSingular = errors.New("matrix: singular matrix")
)

