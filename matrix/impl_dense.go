// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set and row primitives return
//     errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce a numeric policy (rejection of NaN/Inf on Set and ingestion).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c);
//     SwapRowsInPlace/ScaleRowInPlace/AddScaledRowInPlace: O(c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt        = "At"        // method tag used in error wrappers
	ctxSet       = "Set"       // method tag used in error wrappers
	ctxRow       = "Row"       // method tag used in error wrappers
	ctxSwapRows  = "SwapRows"  // row primitive tag
	ctxScaleRow  = "ScaleRow"  // row primitive tag
	ctxAddScaled = "AddScaled" // row primitive tag
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Keep tags in constants for grep-ability and consistency.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts (> 0)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil) // *Dense implements our public Matrix interface
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	// make() zero-fills the buffer deterministically.
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewFromRows builds a Dense from an ordered sequence of rows.
// The input is copied; later edits to rows do not affect the result.
//
// Implementation:
//   - Stage 1: ValidateRows (non-empty, rectangular, finite).
//   - Stage 2: flatten into a row-major buffer.
//
// Errors:
//   - ErrInvalidDimensions when there are no rows or the first row is empty.
//   - ErrShapeMismatch (wrapped with the offending row) for ragged input.
//   - ErrNaNInf when any value is not finite.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows(rows [][]float64) (*Dense, error) {
	if err := ValidateRows(rows); err != nil {
		return nil, err
	}

	r, c := len(rows), len(rows[0])
	buf := make([]float64, 0, r*c)
	for _, row := range rows {
		buf = append(buf, row...)
	}

	return &Dense{r: r, c: c, data: buf}, nil
}

// NewIdentity returns the n×n identity matrix.
// Complexity: O(n²).
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Returns the bare sentinel; public methods wrap with coordinates.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// checkRow validates a row index for the row primitives.
func (m *Dense) checkRow(method string, row int) error {
	if row < 0 || row >= m.r {
		return denseErrorf(method, row, 0, ErrOutOfRange)
	}

	return nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; returns a wrapped sentinel.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for non-finite values.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v // direct flat write

	return nil
}

// Clone returns a deep copy. Mutations on the copy never reach the original.
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	return m.copyDense()
}

// copyDense is Clone with the concrete return type.
func (m *Dense) copyDense() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Row returns a copy of row i.
// Errors: ErrOutOfRange.
func (m *Dense) Row(i int) (Vector, error) {
	if err := m.checkRow(ctxRow, i); err != nil {
		return nil, err
	}
	out := make(Vector, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// ToRows returns a deep copy of the matrix as a slice of rows.
// Used for snapshots handed to observers and renderers.
// Complexity: O(r*c).
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]float64, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// SwapRowsInPlace exchanges rows i and j element-wise.
// i == j is a valid no-op.
//
// Errors:
//   - ErrOutOfRange (wrapped with the offending index).
//
// Complexity:
//   - Time O(c), Space O(1).
func (m *Dense) SwapRowsInPlace(i, j int) error {
	if err := m.checkRow(ctxSwapRows, i); err != nil {
		return err
	}
	if err := m.checkRow(ctxSwapRows, j); err != nil {
		return err
	}
	if i == j {
		return nil
	}

	ri := m.data[i*m.c : (i+1)*m.c]
	rj := m.data[j*m.c : (j+1)*m.c]
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}

	return nil
}

// ScaleRowInPlace multiplies every element of row i by s.
// The primitive carries no elimination policy (zero and one are accepted);
// callers enforce the rules of elementary operations.
//
// Errors:
//   - ErrOutOfRange for an invalid row.
//
// Complexity:
//   - Time O(c), Space O(1).
func (m *Dense) ScaleRowInPlace(i int, s float64) error {
	if err := m.checkRow(ctxScaleRow, i); err != nil {
		return err
	}

	row := m.data[i*m.c : (i+1)*m.c]
	for k := range row {
		row[k] *= s
	}

	return nil
}

// AddScaledRowInPlace replaces row dst with dst + c*src; src is unmodified.
// dst == src is permitted and yields (1+c)*row.
//
// Errors:
//   - ErrOutOfRange for an invalid row.
//
// Complexity:
//   - Time O(cols), Space O(1).
func (m *Dense) AddScaledRowInPlace(dst, src int, c float64) error {
	if err := m.checkRow(ctxAddScaled, dst); err != nil {
		return err
	}
	if err := m.checkRow(ctxAddScaled, src); err != nil {
		return err
	}

	d := m.data[dst*m.c : (dst+1)*m.c]
	s := m.data[src*m.c : (src+1)*m.c]
	for k := range d {
		d[k] += c * s[k]
	}

	return nil
}

// String renders matrix rows as lines with comma-separated values.
// Intended for logs and debugging; see package report for user-facing output.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
