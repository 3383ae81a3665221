// SPDX-License-Identifier: MIT

package matrix

// Test bridge: exposes unexported option state and panic messages to
// matrix_test without widening the production API.

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicModeInvalid_TestOnly   = panicModeInvalid
	PanicTraceNil_TestOnly      = panicTraceNil
	PanicTraceWriteNil_TestOnly = panicTraceWriteNil
)

// OptionsSnapshot is a read-only view of the effective Options.
type OptionsSnapshot struct {
	Mode     Mode
	HasTrace bool
}

// GatherOptionsSnapshot_TestOnly applies opts on top of the defaults.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Mode: o.mode, HasTrace: o.trace != nil}
}

// ResolveMode_TestOnly exposes resolveMode.
func ResolveMode_TestOnly(f Form, m Mode) (Mode, error) { return resolveMode(f, m) }
