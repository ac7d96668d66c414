// SPDX-License-Identifier: MIT

// Package matrix provides the dense storage layer for the linsolve engine.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and
//     row-level primitives (swap, scale, add-scaled) used by elimination.
//   - Constructors from row slices (NewFromRows) with strict shape checks,
//     identity matrices and column-wise augmentation.
//   - Small kernels needed around elimination: Mul, Columns, Round.
//   - Interop with gonum (ToGonum).
//   - A single sentinel error set (errors.go) matched with errors.Is.
//
// A matrix handed to the engine is owned by the caller. Row primitives
// mutate it in place; every other helper returns freshly allocated values.
//
// See package solver for the elimination engine built on top of Dense.
package matrix
