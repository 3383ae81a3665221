// SPDX-License-Identifier: MIT

// Package matrix - elimination result & derived quantities.
//
// Purpose:
//   - Hold the final matrix M of an elimination together with its row and
//     column operation logs, such that  P · A · Q = M  with
//     P = Left() and Q = Right().
//   - Derive rank, determinant, inverse, kernel, image and transition
//     matrices on demand.
//
// Concurrency:
//   - A Result is immutable after Eliminate returns. Every derived quantity is
//     computed at most once behind a sync.Once cell, so concurrent first
//     access is safe. Accessors return copies; callers may mutate them freely.
package matrix

import (
	"slices"

	"github.com/katalvlaran/smith/ring"
)

// Result is the outcome of Eliminate.
type Result[E any] struct {
	form   Form
	mode   Mode
	r      ring.Ring[E]
	m      *SparseMatrix[E]
	rowOps []Operation[E]
	colOps []Operation[E]

	rank     lazy[int]
	diag     lazy[[]E]
	det      lazy[E]
	inv      lazy[*SparseMatrix[E]]
	left     lazy[*SparseMatrix[E]]
	leftInv  lazy[*SparseMatrix[E]]
	right    lazy[*SparseMatrix[E]]
	rightInv lazy[*SparseMatrix[E]]
	kernel   lazy[*SparseMatrix[E]]
	image    lazy[*SparseMatrix[E]]
	kernelTr lazy[*SparseMatrix[E]]
	imageTr  lazy[*SparseMatrix[E]]
	unitDiag lazy[[]E] // diagonal form entries, for IsSurjective on any form
}

func newResult[E any](f Form, mode Mode, m *SparseMatrix[E], l opLog[E]) *Result[E] {
	return &Result[E]{form: f, mode: mode, r: m.r, m: m, rowOps: l.rows, colOps: l.cols}
}

// Form returns the requested normal form.
func (res *Result[E]) Form() Form { return res.form }

// Mode returns the effective elimination mode.
func (res *Result[E]) Mode() Mode { return res.mode }

// Matrix returns a copy of the final matrix M.
func (res *Result[E]) Matrix() *SparseMatrix[E] { return res.m.Clone() }

// RowOps returns a copy of the row operation log in application order.
func (res *Result[E]) RowOps() []Operation[E] { return slices.Clone(res.rowOps) }

// ColOps returns a copy of the column operation log in application order.
func (res *Result[E]) ColOps() []Operation[E] { return slices.Clone(res.colOps) }

// Rank returns the number of nonzero rows (row forms), nonzero columns
// (column forms) or nonzero diagonal entries (Diagonal, Smith).
func (res *Result[E]) Rank() int {
	return res.rank.must(func() int {
		if res.form.isColForm() {
			return res.m.countLines(AlignCols)
		}
		return res.m.countLines(AlignRows)
	})
}

// Nullity returns Cols - Rank, the rank of the kernel.
func (res *Result[E]) Nullity() int { return res.m.cols - res.Rank() }

// CokernelRank returns Rows - Rank, the free rank of the cokernel.
func (res *Result[E]) CokernelRank() int { return res.m.rows - res.Rank() }

// Diagonal returns the first Rank diagonal entries for Diagonal and Smith
// results, and the nonzero (i, i) entries otherwise.
func (res *Result[E]) Diagonal() []E {
	d := res.diag.must(func() []E {
		if !res.form.isDiagonal() {
			return res.m.Diagonal()
		}
		out := make([]E, res.Rank())
		for i := range out {
			out[i] = res.m.at(i, i)
		}
		return out
	})

	return slices.Clone(d)
}

// Determinant returns det(A) of the eliminated matrix A.
// MAIN DESCRIPTION:
//   - det(P)·det(A)·det(Q) = det(M); the elementary determinants are units,
//     so det(A) = det(M) · (Π det(op))⁻¹.
//
// Implementation:
//   - Stage 1: square check.
//   - Stage 2: rank < rows ⇒ zero.
//   - Stage 3: M is triangular or diagonal with full rank, so det(M) is the
//     product of the (i, i) entries.
//
// Errors:
//   - ErrNonSquare.
//
// Complexity:
//   - Time O(n log k + |ops|).
func (res *Result[E]) Determinant() (E, error) {
	if !res.m.IsSquare() {
		var zero E
		return zero, matrixErrorf(opDeterminant, ErrNonSquare)
	}

	return res.det.get(func() (E, error) {
		rg := res.r
		if res.Rank() < res.m.rows {
			return rg.Zero(), nil
		}

		prod := rg.One()
		for i := 0; i < res.m.rows; i++ {
			prod = rg.Mul(prod, res.m.at(i, i))
		}
		units := rg.One()
		for _, op := range res.rowOps {
			units = rg.Mul(units, op.Determinant(rg))
		}
		for _, op := range res.colOps {
			units = rg.Mul(units, op.Determinant(rg))
		}

		return rg.Mul(prod, ring.MustInverse(rg, units)), nil
	})
}

// Inverse returns A⁻¹ = Q · M⁻¹ · P for a diagonal result M.
//
// Errors:
//   - ErrNonSquare: A is not square.
//   - ErrFormUnsupported: the result is neither Diagonal nor Smith.
//   - ErrSingular: rank deficiency or a non-unit diagonal entry.
func (res *Result[E]) Inverse() (*SparseMatrix[E], error) {
	if !res.m.IsSquare() {
		return nil, matrixErrorf(opInverse, ErrNonSquare)
	}
	if !res.form.isDiagonal() {
		return nil, matrixErrorf(opInverse, ErrFormUnsupported)
	}

	inv, err := res.inv.get(func() (*SparseMatrix[E], error) {
		rg := res.r
		n := res.m.rows
		if res.Rank() < n {
			return nil, ErrSingular
		}

		dinv := newSparse(rg, n, n, AlignRows)
		for i := 0; i < n; i++ {
			u, ok := rg.Inverse(res.m.at(i, i))
			if !ok {
				return nil, ErrSingular
			}
			dinv.table[i] = []cell[E]{{idx: i, val: u}}
		}

		return mul(mul(res.rightM(), dinv), res.leftM()), nil
	})
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return inv.Clone(), nil
}

// ---------- transformation matrices ----------

// Left returns P, the product of the row operations (P·A·Q = M).
func (res *Result[E]) Left() *SparseMatrix[E] { return res.leftM().Clone() }

// LeftInverse returns P⁻¹.
func (res *Result[E]) LeftInverse() *SparseMatrix[E] {
	return res.leftInv.must(func() *SparseMatrix[E] {
		return replayInverse(identity(res.r, res.m.rows, AlignRows), res.rowOps)
	}).Clone()
}

// Right returns Q, the product of the column operations.
func (res *Result[E]) Right() *SparseMatrix[E] { return res.rightM().Clone() }

// RightInverse returns Q⁻¹.
func (res *Result[E]) RightInverse() *SparseMatrix[E] {
	return res.rightInv.must(func() *SparseMatrix[E] {
		return replayInverse(identity(res.r, res.m.cols, AlignCols), res.colOps)
	}).Clone()
}

func (res *Result[E]) leftM() *SparseMatrix[E] {
	return res.left.must(func() *SparseMatrix[E] {
		return replay(identity(res.r, res.m.rows, AlignRows), res.rowOps)
	})
}

func (res *Result[E]) rightM() *SparseMatrix[E] {
	return res.right.must(func() *SparseMatrix[E] {
		return replay(identity(res.r, res.m.cols, AlignCols), res.colOps)
	})
}

// leftInverseCols computes P⁻¹[:, lo:hi] without building all of P⁻¹:
// row operations act on every column independently.
func (res *Result[E]) leftInverseCols(lo, hi int) *SparseMatrix[E] {
	base := identity(res.r, res.m.rows, AlignRows).submatrix(0, res.m.rows, lo, hi)

	return replayInverse(base, res.rowOps)
}

// rightInverseRows computes Q⁻¹[lo:hi, :]; column operations act on every
// row independently.
func (res *Result[E]) rightInverseRows(lo, hi int) *SparseMatrix[E] {
	base := identity(res.r, res.m.cols, AlignCols).submatrix(lo, hi, 0, res.m.cols)

	return replayInverse(base, res.colOps)
}

// source rebuilds A = P⁻¹ · M · Q⁻¹.
func (res *Result[E]) source() *SparseMatrix[E] {
	pinv := replayInverse(identity(res.r, res.m.rows, AlignRows), res.rowOps)
	qinv := replayInverse(identity(res.r, res.m.cols, AlignCols), res.colOps)

	return mul(mul(pinv, res.m), qinv)
}

// ---------- kernel & image ----------

// KernelMatrix returns Z = Q[:, rank:], whose columns form a basis of ker A
// (A·Z = 0). Defined for Diagonal, Smith and column forms.
//
// Errors: ErrFormUnsupported.
func (res *Result[E]) KernelMatrix() (*SparseMatrix[E], error) {
	if !res.form.isDiagonal() && !res.form.isColForm() {
		return nil, matrixErrorf(opKernel, ErrFormUnsupported)
	}
	z := res.kernel.must(func() *SparseMatrix[E] {
		return res.rightM().submatrix(0, res.m.cols, res.Rank(), res.m.cols)
	})

	return z.Clone(), nil
}

// ImageMatrix returns B = P⁻¹[:, :rank] · M[:rank, :rank], whose columns
// generate im A in the standard basis. Defined for Diagonal and Smith.
//
// Errors: ErrFormUnsupported.
func (res *Result[E]) ImageMatrix() (*SparseMatrix[E], error) {
	if !res.form.isDiagonal() {
		return nil, matrixErrorf(opImage, ErrFormUnsupported)
	}
	b := res.image.must(func() *SparseMatrix[E] {
		k := res.Rank()
		return mul(res.leftInverseCols(0, k), res.m.submatrix(0, k, 0, k))
	})

	return b.Clone(), nil
}

// KernelTransitionMatrix returns T = Q⁻¹[rank:, :], satisfying T·Z = I for
// Z = KernelMatrix(). Defined for Diagonal and Smith.
//
// Errors: ErrFormUnsupported.
func (res *Result[E]) KernelTransitionMatrix() (*SparseMatrix[E], error) {
	if !res.form.isDiagonal() {
		return nil, matrixErrorf(opKernelTrans, ErrFormUnsupported)
	}
	t := res.kernelTr.must(func() *SparseMatrix[E] {
		return res.rightInverseRows(res.Rank(), res.m.cols)
	})

	return t.Clone(), nil
}

// ImageTransitionMatrix returns T = P[:rank, :], satisfying T·B = D for
// B = ImageMatrix() and D the leading rank×rank block of M.
// Defined for Diagonal and Smith.
//
// Errors: ErrFormUnsupported.
func (res *Result[E]) ImageTransitionMatrix() (*SparseMatrix[E], error) {
	if !res.form.isDiagonal() {
		return nil, matrixErrorf(opImageTrans, ErrFormUnsupported)
	}
	t := res.imageTr.must(func() *SparseMatrix[E] {
		return res.leftM().submatrix(0, res.Rank(), 0, res.m.rows)
	})

	return t.Clone(), nil
}

// InvariantFactors returns the non-unit nonzero diagonal entries of a Smith
// result: the torsion coefficients of the cokernel, in divisibility order.
//
// Errors: ErrFormUnsupported for non-Smith results.
func (res *Result[E]) InvariantFactors() ([]E, error) {
	if res.form != Smith {
		return nil, matrixErrorf(opInvFactors, ErrFormUnsupported)
	}

	var out []E
	for _, d := range res.Diagonal() {
		if !ring.IsUnit(res.r, d) {
			out = append(out, d)
		}
	}

	return out, nil
}

// ---------- predicates ----------

// IsInjective reports Cols <= Rows and Rank == Cols.
func (res *Result[E]) IsInjective() bool {
	return res.m.cols <= res.m.rows && res.Rank() == res.m.cols
}

// IsSurjective reports Cols >= Rows, Rank == Rows and every diagonal entry of
// the diagonal form being a unit. Non-diagonal results compute that diagonal
// form once from the reconstructed source matrix.
func (res *Result[E]) IsSurjective() bool {
	if res.m.cols < res.m.rows || res.Rank() != res.m.rows {
		return false
	}

	d := res.unitDiag.must(func() []E {
		if res.form.isDiagonal() {
			return res.Diagonal()
		}
		a := res.source()
		eliminate(a, Diagonal, nil)
		return a.Diagonal()
	})
	for _, x := range d {
		if !ring.IsUnit(res.r, x) {
			return false
		}
	}

	return true
}

// IsBijective reports IsInjective && IsSurjective.
func (res *Result[E]) IsBijective() bool { return res.IsInjective() && res.IsSurjective() }
