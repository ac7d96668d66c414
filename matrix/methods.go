// SPDX-License-Identifier: MIT
// Package matrix provides the small set of kernels needed around elimination:
// matrix multiplication, column-wise augmentation and extraction, decimal
// rounding and approximate comparison. All functions perform strict
// fail-fast validation and return clear errors on shape mismatches.
//
// Notes:
//   - Inputs are never mutated except by Round, which works in place by contract.
//   - Errors are sentinels wrapped via matrixErrorf with an op* tag.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial value for dot-product accumulation.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul      = "Mul"
	opAugment  = "Augment"
	opColumns  = "Columns"
	opRound    = "Round"
	opAllClose = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides and skip zeros;
//     otherwise use i→j→k with a fixed order via At.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrShapeMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int // loop iterators
		av, bv, current float64
	)
	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if av == 0 {
					continue
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// Augment concatenates a and b column-wise into a new Dense [a | b].
// Neither operand is mutated; this is how the engine avoids extending a
// caller's matrix in place.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch (row counts differ).
//
// Complexity:
//   - Time O(r*(ca+cb)), Space O(r*(ca+cb)).
func Augment(a, b Matrix) (*Dense, error) {
	if err := ValidateSameRows(a, b); err != nil {
		return nil, matrixErrorf(opAugment, err)
	}

	rows, ca, cb := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(rows, ca+cb)
	if err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	var v float64
	for i := 0; i < rows; i++ {
		base := i * res.c
		for j := 0; j < ca; j++ {
			if v, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opAugment, err)
			}
			res.data[base+j] = v
		}
		for j := 0; j < cb; j++ {
			if v, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opAugment, err)
			}
			res.data[base+ca+j] = v
		}
	}

	return res, nil
}

// Columns copies the half-open column range [from, to) of every row into a
// new Dense.
//
// Errors:
//   - ErrNilMatrix; ErrOutOfRange when the range is empty or exceeds Cols().
//
// Complexity:
//   - Time O(r*(to-from)).
func Columns(m Matrix, from, to int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opColumns, err)
	}
	if from < 0 || to > m.Cols() || from >= to {
		return nil, matrixErrorf(opColumns, fmt.Errorf("[%d,%d) of %d columns: %w", from, to, m.Cols(), ErrOutOfRange))
	}

	res, err := NewDense(m.Rows(), to-from)
	if err != nil {
		return nil, matrixErrorf(opColumns, err)
	}
	var v float64
	for i := 0; i < m.Rows(); i++ {
		for j := from; j < to; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opColumns, err)
			}
			res.data[i*res.c+j-from] = v
		}
	}

	return res, nil
}

// exactInt is 2^52: a float64 at least this large in magnitude has no
// fractional part.
const exactInt = 1 << 52

// RoundValue rounds v to the given number of decimal places
// (multiply by 10^places, round to nearest with ties toward +Inf, divide back).
// A result of -0 is normalised to +0 so rounded values compare and print
// as plain zeros. Values too large to carry the requested decimals are
// returned unchanged, so a finite input never rounds to ±Inf.
func RoundValue(v float64, places int) float64 {
	multi := math.Pow(10, float64(places))
	if math.Abs(v) >= exactInt/multi || math.IsInf(v*multi, 0) {
		return v
	}
	r := math.Floor(v*multi+0.5) / multi
	if r == 0 {
		return 0
	}

	return r
}

// Round rounds every entry of m in place to the given number of decimal places.
//
// Errors:
//   - ErrNilMatrix; Set errors from non-Dense implementations.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func Round(m Matrix, places int) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opRound, err)
	}
	if d, ok := m.(*Dense); ok {
		for k, v := range d.data {
			d.data[k] = RoundValue(v, places)
		}

		return nil
	}

	var (
		v   float64
		err error
	)
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return matrixErrorf(opRound, err)
			}
			if err = m.Set(i, j, RoundValue(v, places)); err != nil {
				return matrixErrorf(opRound, err)
			}
		}
	}

	return nil
}

// AllClose reports whether |a[i,j]-b[i,j]| <= atol + rtol*|b[i,j]| for all entries.
//
// Errors:
//   - ErrNilMatrix; ErrShapeMismatch when shapes differ.
//
// Complexity:
//   - Time O(r*c).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if err := ValidateSameRows(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if a.Cols() != b.Cols() {
		return false, matrixErrorf(opAllClose, ErrShapeMismatch)
	}

	var (
		av, bv float64
		err    error
	)
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
				return false, nil
			}
		}
	}

	return true, nil
}
