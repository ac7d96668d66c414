// Package linsolve solves systems of linear equations given as augmented
// matrices [A | b] by Gauss-Jordan elimination.
//
// 🚀 What is linsolve?
//
//	A small, deterministic toolkit that brings together:
//		• Storage: a row-major Dense matrix with safe accessors and row primitives
//		• Engine: elementary row operations, row-echelon and reduced row-echelon forms
//		• Analyses: solvability, cofactor determinant, invertibility and inverse
//		• Solutions: particular solution plus one null-space vector per free variable
//		• Front ends: interactive console input, YAML files, text/JSON reports, a CLI
//
// ✨ Why choose linsolve?
//
//   - Every row operation can be observed (WithObserver) for step-by-step logs
//   - Errors, not panics: sentinels matched with errors.Is
//   - Results are rounded to 5 decimal places, so 0.1+0.2 reads as 0.3
//
// Everything is organized under a handful of subpackages:
//
//	matrix/  — Dense storage, validators, rounding, gonum interop
//	solver/  — row operations, elimination, determinant, inverse, solution space
//	console/ — line-oriented terminal input and YAML system files
//	report/  — text and JSON rendering of matrices and results
//	history/ — SQLite log of solved systems
//	cli/     — the linsolve command (cobra)
//
// Quick example:
//
//	m, _ := matrix.NewFromRows([][]float64{{0, 2, 4}, {1, 1, 1}})
//	_ = solver.Solve(m)                 // [[1 0 | -1] [0 1 | 2]]
//	space, _ := solver.SolutionSpace(m) // x = [-1, 2]
//
//	go install github.com/katalvlaran/linsolve/cmd/linsolve@latest
package linsolve
