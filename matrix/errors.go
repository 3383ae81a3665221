// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Constructors, accessors and Result methods return these sentinels
// (wrapped with a call-site tag) and tests check them via errors.Is.
// User-triggered conditions never panic; panics are reserved for ring
// precondition violations (division by zero, inverting a non-unit).

package matrix

import (
	"errors"

	"github.com/katalvlaran/smith/ring"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Detection
// sites wrap with matrixErrorf / validatorErrorf / sparseErrorf so the message
// reads "Mul: ValidateMulCompatible: matrix: dimension mismatch" while
// errors.Is still matches the sentinel.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index -> dimension mismatch -> form/mode -> algebraic (singular).

var (
	// ErrBadShape is returned when a requested shape has a negative dimension.
	// Zero-sized shapes (0×n, n×0) are legal: kernels and images may be empty.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index or half-open range is outside bounds.
	// Public indexers (At/Set/Row/Col/Submatrix) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add on different shapes, Mul where a.Cols != b.Rows, or a dense grid
	// whose length is not rows*cols.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil *SparseMatrix or *Result was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrSingular is returned by Inverse when the matrix has no inverse over
	// its ring: rank deficiency or a non-unit diagonal entry.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrUnknownForm is returned by Eliminate for a Form value outside the
	// declared set.
	ErrUnknownForm = errors.New("matrix: unknown elimination form")

	// ErrModeForm is returned by Eliminate when the requested Mode cannot
	// produce the requested Form (e.g. Smith with ModeRowsOnly).
	ErrModeForm = errors.New("matrix: elimination mode incompatible with form")

	// ErrFormUnsupported is returned by Result accessors that are only defined
	// for some forms (e.g. ImageMatrix on a row-echelon result).
	ErrFormUnsupported = errors.New("matrix: operation not supported for this form")
)

// Ring-level sentinels re-exported so callers of this package can match them
// without importing ring.
var (
	// ErrNilRing is returned by constructors given a nil ring.
	ErrNilRing = ring.ErrNilRing

	// ErrNotInvertible is the panic value of Operation.Inverse on a MulRow /
	// MulCol whose multiplier is not a unit.
	ErrNotInvertible = ring.ErrNotInvertible
)
