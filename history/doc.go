// SPDX-License-Identifier: MIT

// Package history keeps a durable SQLite log of solved systems.
//
// Every entry carries the run ID (a UUIDv7, so IDs sort by creation), the
// input matrix, its reduced form and whether the system is solvable.
// Matrices are stored as JSON arrays of rows.
//
// # Database Configuration
//
//   - WAL mode with synchronous=NORMAL
//   - 5-second busy timeout
//   - a single open connection (SQLite allows one writer)
//
// Listing is ordered by insertion sequence, newest first.
package history
