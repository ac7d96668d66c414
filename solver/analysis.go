// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linsolve/matrix"
)

// SingularCondition is the 2-norm condition number at or above which a
// square matrix is treated as singular. It sits just below 1/eps (2^52),
// where the smallest singular value is lost in float64 rounding.
const SingularCondition = 1e15

// nearlySingular reports whether m is singular to working precision,
// judged by gonum's condition number estimate.
func nearlySingular(m matrix.Matrix) (bool, error) {
	g, err := matrix.ToGonum(m)
	if err != nil {
		return false, err
	}
	c := mat.Cond(g, 2)

	return math.IsNaN(c) || c >= SingularCondition, nil
}

// readRows copies m into a slice of rows, using the Dense fast path when possible.
func readRows(m matrix.Matrix) ([][]float64, error) {
	if d, ok := m.(*matrix.Dense); ok {
		return d.ToRows(), nil
	}

	out := make([][]float64, m.Rows())
	var err error
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			if out[i][j], err = m.At(i, j); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// ExistsSolution reports whether a reduced augmented system is consistent.
// It returns false as soon as a row has a nonzero constant while all its
// coefficients are zero ("0 = nonzero"), and true otherwise, including for
// systems with infinitely many solutions.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions (fewer than two columns).
//
// Complexity: O(r*c).
func ExistsSolution(m matrix.Matrix) (bool, error) {
	if err := matrix.ValidateAugmented(m); err != nil {
		return false, solverErrorf(opExistsSol, err)
	}

	rows, err := readRows(m)
	if err != nil {
		return false, solverErrorf(opExistsSol, err)
	}
	last := m.Cols() - 1
	for _, row := range rows {
		if row[last] == 0 {
			continue
		}
		consistent := false
		for _, v := range row[:last] {
			if v != 0 {
				consistent = true
				break
			}
		}
		if !consistent {
			return false, nil
		}
	}

	return true, nil
}

// Determinant computes det(m) by recursive cofactor expansion along the
// first row: the 1×1 base case is the sole entry; otherwise each first-row
// entry a[0][i] multiplies the determinant of the minor without row 0 and
// column i, added for even i and subtracted for odd i.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n!), so only small matrices are practical. No LU shortcut.
func Determinant(m matrix.Matrix) (float64, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return 0, solverErrorf(opDeterminant, err)
	}

	rows, err := readRows(m)
	if err != nil {
		return 0, solverErrorf(opDeterminant, err)
	}

	return cofactor(rows), nil
}

// cofactor expands a square row slice along its first row.
func cofactor(a [][]float64) float64 {
	n := len(a)
	if n == 1 {
		return a[0][0]
	}

	total := 0.0
	for i := 0; i < n; i++ {
		term := a[0][i] * cofactor(minor(a, i))
		if i%2 == 0 {
			total += term
		} else {
			total -= term
		}
	}

	return total
}

// minor returns a without row 0 and column col, as a fresh slice.
func minor(a [][]float64, col int) [][]float64 {
	n := len(a)
	sub := make([][]float64, 0, n-1)
	for r := 1; r < n; r++ {
		row := make([]float64, 0, n-1)
		row = append(row, a[r][:col]...)
		row = append(row, a[r][col+1:]...)
		sub = append(sub, row)
	}

	return sub
}

// ExistsInverse reports whether m is invertible: det(m) != 0 and m is not
// singular to working precision (condition number below SingularCondition).
// It answers true exactly when Inverse succeeds.
//
// Errors: as Determinant.
func ExistsInverse(m matrix.Matrix) (bool, error) {
	det, err := Determinant(m)
	if err != nil {
		return false, err
	}
	if det == 0 {
		return false, nil
	}
	singular, err := nearlySingular(m)
	if err != nil {
		return false, solverErrorf(opExistsInv, err)
	}

	return !singular, nil
}

// Inverse computes m⁻¹ by Gauss–Jordan elimination on [m | I].
//
// Implementation:
//   - Stage 1: ValidateSquare; reject matrices whose condition number is
//     at least SingularCondition (rank deficient up to rounding), then
//     build a private augmented copy [m | Iₙ].
//   - Stage 2: RowEchelon + ReducedRowEchelon on the 2n-column copy
//     (events are reported against the copy).
//   - Stage 3: require the left block to be exactly Iₙ, else ErrSingular.
//   - Stage 4: return columns n..2n-1.
//
// Behavior highlights:
//   - m is never modified; the augmented copy is private to this call.
//   - The result is not rounded.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func (s *Solver) Inverse(m matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, solverErrorf(opInverse, err)
	}

	// Rounding can leave a tiny nonzero pivot where exact arithmetic gives
	// zero; elimination would then scale it into a bogus inverse.
	singular, err := nearlySingular(m)
	if err != nil {
		return nil, solverErrorf(opInverse, err)
	}
	if singular {
		return nil, solverErrorf(opInverse, fmt.Errorf("condition number >= %g: %w", float64(SingularCondition), matrix.ErrSingular))
	}

	n := m.Rows()
	id, err := matrix.NewIdentity(n)
	if err != nil {
		return nil, solverErrorf(opInverse, err)
	}
	aug, err := matrix.Augment(m, id)
	if err != nil {
		return nil, solverErrorf(opInverse, err)
	}

	if err = s.RowEchelon(aug); err != nil {
		return nil, solverErrorf(opInverse, err)
	}
	if err = s.ReducedRowEchelon(aug); err != nil {
		return nil, solverErrorf(opInverse, err)
	}

	// Full rank leaves exactly Iₙ on the left: pivots are pinned to 1 and
	// eliminated entries cancel to exact zeros. Anything else is a rank
	// deficiency the condition estimate did not catch.
	var v, want float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if v, err = aug.At(i, j); err != nil {
				return nil, solverErrorf(opInverse, err)
			}
			want = 0
			if i == j {
				want = 1
			}
			if v != want {
				return nil, solverErrorf(opInverse, fmt.Errorf("rank deficient at (%d,%d): %w", i, j, matrix.ErrSingular))
			}
		}
	}

	inv, err := matrix.Columns(aug, n, 2*n)
	if err != nil {
		return nil, solverErrorf(opInverse, err)
	}
	s.logger.Debug("inverse computed", "n", n)

	return inv, nil
}
