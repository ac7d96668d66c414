// SPDX-License-Identifier: MIT

// Package report renders matrices, solution spaces and solve results for
// people (tab-separated text) and for programs (JSON).
//
// The text layout of an augmented row puts a bar before the constant column:
//
//	[1 	2 	| 3 	]
//
// Values are printed in Go's shortest round-trip form, so rounded entries
// read as 1.5 rather than 1.50000.
package report
