// SPDX-License-Identifier: MIT

package solver

import (
	"log/slog"

	"github.com/katalvlaran/linsolve/matrix"
)

// Solver is the elimination engine. It holds only immutable configuration,
// so one Solver may serve many matrices; a given matrix must not be reduced
// by two goroutines at once.
type Solver struct {
	observer Observer // nil when nobody listens; snapshots are skipped then
	logger   *slog.Logger
}

// New builds a Solver from options. With no options the Solver is silent.
func New(opts ...Option) *Solver {
	o := gatherOptions(opts...)
	s := &Solver{logger: o.logger}
	switch len(o.observers) {
	case 0:
	case 1:
		s.observer = o.observers[0]
	default:
		s.observer = multiObserver(o.observers)
	}

	return s
}

// emit reports a mutating operation to the observer, if any.
func (s *Solver) emit(m *matrix.Dense, op OpKind, target, source int, scalar float64) {
	if s.observer == nil {
		return
	}
	s.observer.Observe(Event{
		Op:       op,
		Target:   target,
		Source:   source,
		Scalar:   scalar,
		Snapshot: m.ToRows(),
	})
}

// Solve reduces m to rounded RREF in place using a silent Solver.
func Solve(m *matrix.Dense) error { return New().Solve(m) }

// Inverse returns the inverse of a square matrix using a silent Solver.
// m is not modified.
func Inverse(m matrix.Matrix) (*matrix.Dense, error) { return New().Inverse(m) }
