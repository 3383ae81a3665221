// SPDX-License-Identifier: MIT

// Package matrix - staged elimination driver.
//
// Purpose:
//   - Express every normal form as a composition of phases over one target.
//   - Record every applied elementary operation in a row log and a column log
//     so that transformation matrices can be rebuilt afterwards.
//
// Implementation:
//   - A phase is a plain function over a *worker. Phases compose by calling
//     worker.run (same frame) or worker.runTransposed (transpose the target,
//     run, transpose back, and dualize the sub-log), so column forms are row
//     forms of the transpose and no phase is written twice.
//   - Each sub-run returns its own opLog which the caller merges; ordering of
//     operations inside each log is the application order.
//
// Concurrency:
//   - Single-threaded and synchronous. The target is owned exclusively by the
//     running phases.
package matrix

import (
	"fmt"

	"github.com/katalvlaran/smith/ring"
)

// Phase names, reported through TraceEvent.Phase.
const (
	phaseRowEchelon = "rowEchelon"
	phaseColEchelon = "colEchelon"
	phaseRowHermite = "rowHermite"
	phaseColHermite = "colHermite"
	phaseDiagonal   = "diagonal"
	phaseSmith      = "smith"
)

// Trace markers for phase boundaries.
const (
	traceStart = "start"
	traceDone  = "done"
)

// opLog holds the row and column operations of one run, in application order.
type opLog[E any] struct {
	rows []Operation[E]
	cols []Operation[E]
}

func (l *opLog[E]) merge(o opLog[E]) {
	l.rows = append(l.rows, o.rows...)
	l.cols = append(l.cols, o.cols...)
}

// transposed maps a log recorded on Aᵀ back to A: row ops of the transposed
// run become column ops and vice versa.
func (l opLog[E]) transposed() opLog[E] {
	out := opLog[E]{
		rows: make([]Operation[E], len(l.cols)),
		cols: make([]Operation[E], len(l.rows)),
	}
	for k, op := range l.cols {
		out.rows[k] = op.Transpose()
	}
	for k, op := range l.rows {
		out.cols[k] = op.Transpose()
	}

	return out
}

// tracer forwards events to the optional hook and numbers applied ops.
// A nil hook makes every method a cheap no-op.
type tracer struct {
	hook func(TraceEvent)
	step int
}

func (t *tracer) enabled() bool { return t != nil && t.hook != nil }

func (t *tracer) boundary(phase, marker string, flipped bool) {
	if !t.enabled() {
		return
	}
	t.hook(TraceEvent{Phase: phase, Step: t.step, Op: marker, Transposed: flipped})
}

func (t *tracer) applied(phase string, op fmt.Stringer, kind OpKind, flipped bool) {
	if t == nil {
		return
	}
	t.step++
	if t.hook == nil {
		return
	}
	t.hook(TraceEvent{Phase: phase, Step: t.step, Op: op.String(), Kind: kind, Transposed: flipped})
}

// phase is one elimination stage.
type phase[E any] func(w *worker[E])

// worker is the state a phase runs against.
type worker[E any] struct {
	r       ring.Ring[E]
	target  *SparseMatrix[E]
	log     opLog[E]
	tr      *tracer
	name    string
	flipped bool // target is currently the transpose of the caller's matrix
}

// apply performs op on the target and records it.
func (w *worker[E]) apply(op Operation[E]) {
	op.apply(w.target)
	if op.IsRow() {
		w.log.rows = append(w.log.rows, op)
	} else {
		w.log.cols = append(w.log.cols, op)
	}
	w.tr.applied(w.name, op, op.Kind, w.flipped)
}

// run executes p on the same target and merges its log.
func (w *worker[E]) run(name string, p phase[E]) {
	w.log.merge(runPhase(name, p, w.target, w.tr, w.flipped))
}

// runTransposed executes p on the transposed target and merges the dual log.
func (w *worker[E]) runTransposed(name string, p phase[E]) {
	w.log.merge(runTransposed(name, p, w.target, w.tr, w.flipped))
}

// runPhase executes p on target and returns the operations it applied.
func runPhase[E any](name string, p phase[E], target *SparseMatrix[E], tr *tracer, flipped bool) opLog[E] {
	w := &worker[E]{r: target.r, target: target, tr: tr, name: name, flipped: flipped}
	tr.boundary(name, traceStart, flipped)
	p(w)
	tr.boundary(name, traceDone, flipped)

	return w.log
}

// runTransposed transposes target in place, runs p, transposes back and
// returns the log expressed in the original frame.
func runTransposed[E any](name string, p phase[E], target *SparseMatrix[E], tr *tracer, flipped bool) opLog[E] {
	target.Transpose()
	l := runPhase(name, p, target, tr, !flipped)
	target.Transpose()

	return l.transposed()
}

// phaseFor returns the top-level phase producing form f.
func phaseFor[E any](f Form) (string, phase[E]) {
	switch f {
	case RowEchelon:
		return phaseRowEchelon, rowEchelon[E]
	case ColEchelon:
		return phaseColEchelon, colEchelon[E]
	case RowHermite:
		return phaseRowHermite, rowHermite[E]
	case ColHermite:
		return phaseColHermite, colHermite[E]
	case Diagonal:
		return phaseDiagonal, diagonal[E]
	default:
		return phaseSmith, smith[E]
	}
}

// eliminate runs form f on target (mutated in place) and returns the log.
// Callers validate f beforehand.
func eliminate[E any](target *SparseMatrix[E], f Form, tr *tracer) opLog[E] {
	name, p := phaseFor[E](f)

	return runPhase(name, p, target, tr, false)
}
