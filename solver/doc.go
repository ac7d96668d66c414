// SPDX-License-Identifier: MIT

// Package solver is the elimination engine of linsolve.
//
// What & Why:
//
//	A Solver reduces an augmented coefficient matrix to row-echelon form and
//	then to reduced row-echelon form (RREF) using only the three elementary
//	row operations (swap, scale, add-multiple). From the RREF the package
//	derives solvability, the full solution space (particular solution plus
//	null-space basis) and, for square matrices, the inverse. The determinant
//	is computed independently by cofactor expansion.
//
// Layers (each depends on the one before it):
//
//	rowops.go          — SwapRows, ScaleRow, AddRows (emit Events)
//	echelon.go         — RowEchelon, ReducedRowEchelon, Solve
//	analysis.go        — ExistsSolution, Determinant, ExistsInverse, Inverse
//	solution_space.go  — SolutionSpace
//
// Observability:
//
//	Every row operation that changes the matrix is reported to the configured
//	Observer as an Event carrying a description and a snapshot of the matrix.
//	Observers never influence results. NewLogObserver adapts a *slog.Logger;
//	Recorder collects events for tests.
//
// Ownership:
//
//	Elimination mutates the caller's *matrix.Dense in place. Determinant,
//	Inverse and SolutionSpace never mutate their input and return fresh values.
//
// Complexity:
//
//	RowEchelon/ReducedRowEchelon: O(r²·c). Determinant: O(n!) (cofactor expansion),
//	only for small matrices. Inverse: O(n³).
package solver
