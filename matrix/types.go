// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the storage layer and the engine.
// Errors live in errors.go, validation in validators.go.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}

// Vector is an ordered sequence of values over the variable columns of an
// augmented system (length = Cols()-1 of that system).
type Vector []float64

// SolutionSpace describes every solution of a linear system.
// Element 0 is the particular solution (all free variables = 0); elements
// 1..k are the null-space basis vectors, one per free column, in the order
// the free columns appear left to right.
type SolutionSpace []Vector

// Particular returns the particular solution, or nil for an empty space.
func (s SolutionSpace) Particular() Vector {
	if len(s) == 0 {
		return nil
	}

	return s[0]
}

// Basis returns the null-space basis vectors (possibly empty).
func (s SolutionSpace) Basis() []Vector {
	if len(s) < 2 {
		return nil
	}

	return s[1:]
}

// Unique reports whether the system has exactly one solution,
// i.e. the space has no free directions.
func (s SolutionSpace) Unique() bool { return len(s) == 1 }
