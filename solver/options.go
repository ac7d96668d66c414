// SPDX-License-Identifier: MIT

// Package solver: functional configuration of the elimination engine.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package solver

import (
	"io"
	"log/slog"
)

// RoundingPlaces is the fixed number of decimal places Solve rounds to,
// absorbing floating-point drift accumulated across row operations.
const RoundingPlaces = 5

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicNilObserver = "solver: WithObserver: observer must not be nil"
	panicNilLogger   = "solver: WithLogger: logger must not be nil"
)

// Option mutates the solver configuration.
type Option func(*options)

// options is the effective configuration after applying Option setters.
type options struct {
	observers []Observer   // notified after each mutating row operation
	logger    *slog.Logger // phase-level diagnostics (Debug)
}

// WithObserver registers an Observer for row operation events.
// Several observers may be registered; they are notified in order.
// Panics on a nil observer.
func WithObserver(o Observer) Option {
	if o == nil {
		panic(panicNilObserver)
	}

	return func(opts *options) { opts.observers = append(opts.observers, o) }
}

// WithLogger sets the logger used for reduction phase diagnostics.
// Row operation events are NOT logged through it; use
// WithObserver(NewLogObserver(logger)) for an operation log.
// Panics on a nil logger.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(opts *options) { opts.logger = l }
}

// gatherOptions applies setters over the defaults: no observers, discarded logs.
func gatherOptions(opts ...Option) options {
	o := options{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
