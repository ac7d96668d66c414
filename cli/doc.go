// SPDX-License-Identifier: MIT

// Package cli implements the linsolve command line:
//
//	linsolve solve   [--file system.yaml] [--log] [--name label]
//	linsolve det     [--file matrix.yaml]
//	linsolve inverse [--file matrix.yaml]
//	linsolve history list [--limit n]
//
// Without --file, rows are read interactively from stdin until a line
// starting with END ("END -l" also turns on the operation log).
// Global flags select the output format (text or json), verbose
// diagnostics on stderr and an optional SQLite history database.
package cli
