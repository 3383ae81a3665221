// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Eliminate and its facades.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - The engine logs nothing by itself. WithTrace / WithTraceWriter are the
//     only diagnostic channel and never alter results.
package matrix

import (
	"fmt"
	"io"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMode lets the requested Form pick its natural Mode.
	DefaultMode = ModeAuto
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicModeInvalid   = "matrix: WithMode: unknown mode"
	panicTraceNil      = "matrix: WithTrace: hook must be non-nil"
	panicTraceWriteNil = "matrix: WithTraceWriter: writer must be non-nil"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	mode  Mode             // DefaultMode
	trace func(TraceEvent) // nil ⇒ tracing disabled
}

// TraceEvent describes one step of an elimination, delivered to the hook
// installed by WithTrace.
//
// Phase boundaries carry Kind == 0 and Op "start" or "done"; applied
// operations carry their OpKind and the rendered operation in Op.
// Step counts applied operations across the whole elimination, starting at 1.
// Transposed is true while a column phase runs on the transposed target;
// Op is then rendered in the transposed frame.
type TraceEvent struct {
	Phase      string
	Step       int
	Op         string
	Kind       OpKind
	Transposed bool
}

func (e TraceEvent) String() string {
	t := ""
	if e.Transposed {
		t = " (T)"
	}
	if e.Kind == 0 {
		return fmt.Sprintf("%s: %s%s", e.Phase, e.Op, t)
	}
	return fmt.Sprintf("%s #%d: %s%s", e.Phase, e.Step, e.Op, t)
}

// ---------- Constructors (WithX) ----------

// WithMode sets the elimination mode.
// Implementation:
//   - Stage 1: validate m is one of the declared modes.
//   - Stage 2: return a setter that writes m into Options.
//
// Behavior highlights:
//   - Compatibility with the Form is checked by Eliminate (ErrModeForm),
//     not here: the same Option value may be reused across forms.
//
// Errors:
//   - Panics with a stable message when m is not a declared Mode.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithMode(m Mode) Option {
	if m >= modeCount {
		panic(panicModeInvalid)
	}

	return func(o *Options) { o.mode = m }
}

// WithTrace installs a hook receiving one TraceEvent per phase boundary and
// per applied elementary operation.
//
// Behavior highlights:
//   - Opt-in: without it no event is built and no operation is rendered.
//   - The hook runs synchronously on the eliminating goroutine.
//
// Errors:
//   - Panics with a stable message when fn is nil.
func WithTrace(fn func(TraceEvent)) Option {
	if fn == nil {
		panic(panicTraceNil)
	}

	return func(o *Options) { o.trace = fn }
}

// WithTraceWriter is WithTrace writing one formatted line per event to w.
// Write errors are ignored; tracing must not change elimination results.
func WithTraceWriter(w io.Writer) Option {
	if w == nil {
		panic(panicTraceWriteNil)
	}

	return WithTrace(func(ev TraceEvent) {
		_, _ = fmt.Fprintln(w, ev.String())
	})
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Implementation:
//   - Stage 1: start from documented defaults.
//   - Stage 2: apply setters in order (last-writer-wins).
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		mode: DefaultMode,
	}
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins semantics
		}
	}

	return o
}

// resolveMode maps (form, requested mode) to the effective mode.
//
// Compatibility:
//   - row forms accept ModeBoth and ModeRowsOnly;
//   - column forms accept ModeBoth and ModeColsOnly;
//   - Diagonal and Smith require ModeBoth.
//
// ModeAuto resolves to RowsOnly / ColsOnly / Both respectively.
func resolveMode(f Form, m Mode) (Mode, error) {
	if !f.valid() {
		return 0, ErrUnknownForm
	}

	var natural Mode
	switch {
	case f.isRowForm():
		natural = ModeRowsOnly
	case f.isColForm():
		natural = ModeColsOnly
	default:
		natural = ModeBoth
	}

	if m == ModeAuto || m == natural {
		return natural, nil
	}
	if m == ModeBoth && natural != ModeBoth {
		return ModeBoth, nil
	}

	return 0, ErrModeForm
}
