// SPDX-License-Identifier: MIT

// Package matrix: small enumerations shared by storage, operations and the
// eliminator. Errors and options live in dedicated files (errors.go,
// options.go).
package matrix

import "fmt"

// Alignment names the primary axis of a SparseMatrix table: with AlignRows
// every bucket is a row holding (col, value) pairs, with AlignCols every
// bucket is a column holding (row, value) pairs.
type Alignment uint8

const (
	AlignRows Alignment = iota // buckets are rows (default)
	AlignCols                  // buckets are columns
)

func (a Alignment) String() string {
	switch a {
	case AlignRows:
		return "Rows"
	case AlignCols:
		return "Cols"
	default:
		return fmt.Sprintf("Alignment(%d)", uint8(a))
	}
}

// flip returns the other alignment.
func (a Alignment) flip() Alignment {
	if a == AlignRows {
		return AlignCols
	}
	return AlignRows
}

// Entry is one (row, col, value) triple, used by NewSparse and Entries.
type Entry[E any] struct {
	Row, Col int
	Value    E
}

// Mode restricts which kinds of elementary operations an elimination may use.
type Mode uint8

const (
	// ModeAuto picks the natural mode of the requested Form.
	ModeAuto Mode = iota
	// ModeBoth allows row and column operations.
	ModeBoth
	// ModeRowsOnly allows row operations only.
	ModeRowsOnly
	// ModeColsOnly allows column operations only.
	ModeColsOnly

	modeCount // sentinel for validation; keep last
)

func (m Mode) String() string {
	switch m {
	case ModeAuto:
		return "Auto"
	case ModeBoth:
		return "Both"
	case ModeRowsOnly:
		return "RowsOnly"
	case ModeColsOnly:
		return "ColsOnly"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// Form is the target normal form of an elimination.
type Form uint8

const (
	formUnknown Form = iota // zero value is rejected by Eliminate

	// RowEchelon: row operations only; pivots step strictly right and down,
	// every pivot is normalized (NormalizeUnit(p) == 1).
	RowEchelon
	// ColEchelon is RowEchelon of the transpose, expressed with column operations.
	ColEchelon
	// RowHermite is RowEchelon with entries above each pivot reduced modulo it.
	RowHermite
	// ColHermite is RowHermite of the transpose, expressed with column operations.
	ColHermite
	// Diagonal: nonzero entries only at (i, i) for i < rank, units normalized.
	Diagonal
	// Smith: Diagonal with d[i] | d[i+1] for consecutive nonzero entries.
	Smith

	formCount // sentinel for validation; keep last
)

func (f Form) String() string {
	switch f {
	case RowEchelon:
		return "RowEchelon"
	case ColEchelon:
		return "ColEchelon"
	case RowHermite:
		return "RowHermite"
	case ColHermite:
		return "ColHermite"
	case Diagonal:
		return "Diagonal"
	case Smith:
		return "Smith"
	default:
		return fmt.Sprintf("Form(%d)", uint8(f))
	}
}

func (f Form) valid() bool { return f > formUnknown && f < formCount }

func (f Form) isRowForm() bool { return f == RowEchelon || f == RowHermite }
func (f Form) isColForm() bool { return f == ColEchelon || f == ColHermite }

// isDiagonal reports whether the result of f is a diagonal matrix.
func (f Form) isDiagonal() bool { return f == Diagonal || f == Smith }
