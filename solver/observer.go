// SPDX-License-Identifier: MIT

package solver

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// OpKind names an elementary row operation.
type OpKind int

const (
	// OpSwap exchanges two rows.
	OpSwap OpKind = iota + 1
	// OpScale multiplies one row by a nonzero scalar.
	OpScale
	// OpAdd adds a multiple of one row to another.
	OpAdd
)

// String returns a stable lower-case name used as a log attribute.
func (k OpKind) String() string {
	switch k {
	case OpSwap:
		return "swap"
	case OpScale:
		return "scale"
	case OpAdd:
		return "add"
	default:
		return "unknown"
	}
}

// Event describes one row operation that changed a matrix.
//
//   - OpSwap:  Target and Source are the exchanged rows; Scalar is unused.
//   - OpScale: Target is the scaled row; Source == Target.
//   - OpAdd:   Target += Scalar * Source.
//
// Snapshot is a deep copy of the matrix after the operation; observers may
// keep it.
type Event struct {
	Op       OpKind
	Target   int
	Source   int
	Scalar   float64
	Snapshot [][]float64
}

// Description renders the event the way an operation log reads it.
func (e Event) Description() string {
	switch e.Op {
	case OpSwap:
		return fmt.Sprintf("Swapping rows #%d and #%d", e.Target, e.Source)
	case OpScale:
		return fmt.Sprintf("Scaling row #%d by %s", e.Target, formatFloat(e.Scalar))
	case OpAdd:
		return fmt.Sprintf("Row #%d -> row #%d + row #%d * %s", e.Target, e.Target, e.Source, formatFloat(e.Scalar))
	default:
		return "unknown operation"
	}
}

// Observer receives an Event after every row operation that changed the matrix.
// Implementations must not mutate the matrix under reduction.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(Event)

// Observe calls f(e).
func (f ObserverFunc) Observe(e Event) { f(e) }

// multiObserver fans an event out to several observers in registration order.
type multiObserver []Observer

func (m multiObserver) Observe(e Event) {
	for _, o := range m {
		o.Observe(e)
	}
}

// Recorder is an Observer that keeps every event it sees.
// The zero value is ready to use. Not safe for concurrent use.
type Recorder struct {
	Events []Event
}

// Observe appends e.
func (r *Recorder) Observe(e Event) { r.Events = append(r.Events, e) }

// Descriptions returns the description of every recorded event, in order.
func (r *Recorder) Descriptions() []string {
	out := make([]string, len(r.Events))
	for i, e := range r.Events {
		out[i] = e.Description()
	}

	return out
}

// NewLogObserver returns an Observer writing one Info record per event to
// logger, with the snapshot attached as the "matrix" attribute.
func NewLogObserver(logger *slog.Logger) Observer {
	return ObserverFunc(func(e Event) {
		logger.LogAttrs(context.Background(), slog.LevelInfo, e.Description(),
			slog.String("op", e.Op.String()),
			slog.Int("target", e.Target),
			slog.Int("source", e.Source),
			slog.Float64("scalar", e.Scalar),
			slog.String("matrix", FormatRows(e.Snapshot)),
		)
	})
}

// FormatRows renders rows compactly on one line: [[1 2 | 3] [4 5 | 6]].
// The bar separates coefficients from the constant column.
func FormatRows(rows [][]float64) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, row := range rows {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte('[')
		for j, v := range row {
			if j > 0 {
				b.WriteByte(' ')
			}
			if j == len(row)-1 && j > 0 {
				b.WriteString("| ")
			}
			b.WriteString(formatFloat(v))
		}
		b.WriteByte(']')
	}
	b.WriteByte(']')

	return b.String()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
