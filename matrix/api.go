// SPDX-License-Identifier: MIT
// Package matrix public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid logic duplication: each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or pivot rules of the eliminator.
//   - Inputs are never mutated: Eliminate works on a clone.

package matrix

import "github.com/katalvlaran/smith/ring"

// ---------- Constructors ----------

// Identity returns I_n over r (row-aligned).
// Errors: ErrNilRing, ErrBadShape (n < 0).
// Complexity: O(n).
func Identity[E any](r ring.Ring[E], n int) (*SparseMatrix[E], error) {
	if r == nil {
		return nil, matrixErrorf(opIdentity, ErrNilRing)
	}
	if err := ValidateShape(n, n); err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}

	return identity(r, n, AlignRows), nil
}

// Zeros returns the rows×cols zero matrix over r.
// Errors: ErrNilRing, ErrBadShape.
// Complexity: O(rows) for the empty bucket table.
func Zeros[E any](r ring.Ring[E], rows, cols int) (*SparseMatrix[E], error) {
	if r == nil {
		return nil, matrixErrorf(opZeros, ErrNilRing)
	}
	if err := ValidateShape(rows, cols); err != nil {
		return nil, matrixErrorf(opZeros, err)
	}

	return newSparse(r, rows, cols, AlignRows), nil
}

// ---------- Elimination ----------

// Eliminate reduces a copy of m to the normal form f.
// MAIN DESCRIPTION:
//   - Runs the staged eliminator for f and returns a Result carrying the
//     final matrix M and the operation logs with P·m·Q = M.
//
// Implementation:
//   - Stage 1: validate m and resolve the effective Mode for f.
//   - Stage 2: clone m (the caller's matrix is never mutated).
//   - Stage 3: run the phase composition for f, emitting trace events when
//     WithTrace / WithTraceWriter is given.
//
// Errors:
//   - ErrNilMatrix, ErrUnknownForm, ErrModeForm.
//
// Panics:
//   - Only on ring precondition violations inside a broken Ring
//     implementation (ring.ErrDivisionByZero, ring.ErrNotInvertible).
//
// Complexity:
//   - Dominated by the phases; see rowEchelon and euclideanSmith.
func Eliminate[E any](m *SparseMatrix[E], f Form, opts ...Option) (*Result[E], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opEliminate, err)
	}

	o := gatherOptions(opts...)
	mode, err := resolveMode(f, o.mode)
	if err != nil {
		return nil, matrixErrorf(opEliminate, err)
	}

	target := m.Clone()
	l := eliminate(target, f, &tracer{hook: o.trace})

	return newResult(f, mode, target, l), nil
}

// SmithForm is Eliminate(m, Smith, opts...).
func SmithForm[E any](m *SparseMatrix[E], opts ...Option) (*Result[E], error) {
	return Eliminate(m, Smith, opts...)
}

// HermiteForm is Eliminate(m, RowHermite, opts...).
func HermiteForm[E any](m *SparseMatrix[E], opts ...Option) (*Result[E], error) {
	return Eliminate(m, RowHermite, opts...)
}

// Rank returns the rank of m via row-echelon elimination.
func Rank[E any](m *SparseMatrix[E]) (int, error) {
	res, err := Eliminate(m, RowEchelon)
	if err != nil {
		return 0, err
	}

	return res.Rank(), nil
}

// Determinant returns det(m) via row-echelon elimination.
// Errors: ErrNilMatrix, ErrNonSquare.
func Determinant[E any](m *SparseMatrix[E]) (E, error) {
	if err := ValidateSquare(m); err != nil {
		var zero E
		return zero, matrixErrorf(opDeterminant, err)
	}
	res, err := Eliminate(m, RowEchelon)
	if err != nil {
		var zero E
		return zero, err
	}

	return res.Determinant()
}

// Inverse returns m⁻¹ over its ring via diagonal elimination.
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular.
func Inverse[E any](m *SparseMatrix[E]) (*SparseMatrix[E], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	res, err := Eliminate(m, Diagonal)
	if err != nil {
		return nil, err
	}

	return res.Inverse()
}

// Kernel returns a matrix whose columns form a basis of ker m, via
// column-echelon elimination.
func Kernel[E any](m *SparseMatrix[E]) (*SparseMatrix[E], error) {
	res, err := Eliminate(m, ColEchelon)
	if err != nil {
		return nil, err
	}

	return res.KernelMatrix()
}
