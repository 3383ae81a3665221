// SPDX-License-Identifier: MIT
// Package matrix provides exact arithmetic on SparseMatrix values:
// product, sum, difference, negation and scalar scaling. All functions
// perform strict fail-fast validation and return wrapped sentinels on nil
// operands or dimension mismatches. Operands are never mutated.
//
// Purpose:
//   - Declare the operation tags shared by facades and kernels for uniform
//     error reporting.
//   - Implement the sparse kernels with deterministic loop orders.

package matrix

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/smith/ring"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opNewFromDense = "NewFromDense"
	opNewFromRows  = "NewFromRows"
	opNewSparse    = "NewSparse"
	opIdentity     = "Identity"
	opZeros        = "Zeros"
	opAdd          = "Add"
	opSub          = "Sub"
	opMul          = "Mul"
	opNeg          = "Neg"
	opScale        = "Scale"
	opApply        = "Apply"
	opEliminate    = "Eliminate"
	opDeterminant  = "Determinant"
	opInverse      = "Inverse"
	opKernel       = "KernelMatrix"
	opImage        = "ImageMatrix"
	opKernelTrans  = "KernelTransitionMatrix"
	opImageTrans   = "ImageTransitionMatrix"
	opInvFactors   = "InvariantFactors"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting across facades.
//
// Implementation:
//   - Stage 1: Wrap using fmt.Errorf("%s: %w", tag, err) to enable errors.Is/As.
//
// Inputs:
//   - tag: operation name/label (use package-level op* constants; no magic strings).
//   - err: underlying non-nil error to wrap.
//
// Notes:
//   - Wrapping nil with %w yields a non-nil error that wraps a nil cause; do not do this.
//     Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul returns the product a·b.
// MAIN DESCRIPTION:
//   - Sparse row-by-row accumulation: for every nonzero a[i,k] the row k of b
//     is scaled and added into a dense accumulator for output row i.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b).
//   - Stage 2: view both operands row-aligned (copies only if needed).
//   - Stage 3: per output row, accumulate into acc[] and remember touched
//     columns; emit touched columns in increasing order, dropping zero sums.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Determinism:
//   - Fixed i→k→j loop order; output buckets are sorted.
//
// Complexity:
//   - Time O(Σ_i Σ_{k∈row i} |row k of b| + rows·t log t), Space O(cols(b)).
func Mul[E any](a, b *SparseMatrix[E]) (*SparseMatrix[E], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return mul(a, b), nil
}

// mul is Mul without validation (internal).
func mul[E any](a, b *SparseMatrix[E]) *SparseMatrix[E] {
	rg := a.r
	ar, br := a.aligned(AlignRows), b.aligned(AlignRows)
	out := newSparse(rg, a.rows, b.cols, AlignRows)

	acc := make([]E, b.cols)
	mark := make([]bool, b.cols)
	var touched []int
	for i, row := range ar.table {
		touched = touched[:0]
		for _, ak := range row {
			for _, bkj := range br.table[ak.idx] {
				j := bkj.idx
				prod := rg.Mul(ak.val, bkj.val)
				if !mark[j] {
					mark[j] = true
					acc[j] = prod
					touched = append(touched, j)
					continue
				}
				acc[j] = rg.Add(acc[j], prod)
			}
		}
		if len(touched) == 0 {
			continue
		}

		slices.Sort(touched)
		bucket := make([]cell[E], 0, len(touched))
		for _, j := range touched {
			if !ring.IsZero(rg, acc[j]) {
				bucket = append(bucket, cell[E]{idx: j, val: acc[j]})
			}
			mark[j] = false
		}
		if len(bucket) > 0 {
			out.table[i] = bucket
		}
	}

	return out
}

// Add returns a + b.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(nnz(a) + nnz(b) + rows).
func Add[E any](a, b *SparseMatrix[E]) (*SparseMatrix[E], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	return addScaled(a, b, a.r.One()), nil
}

// Sub returns a - b.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Sub[E any](a, b *SparseMatrix[E]) (*SparseMatrix[E], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	return addScaled(a, b, a.r.Neg(a.r.One())), nil
}

// addScaled computes a + s*b bucket by bucket with the two-pointer merge.
func addScaled[E any](a, b *SparseMatrix[E], s E) *SparseMatrix[E] {
	ar, br := a.aligned(AlignRows), b.aligned(AlignRows)
	out := newSparse(a.r, a.rows, a.cols, AlignRows)
	for i := range out.table {
		merged := mergeAdd(a.r, ar.table[i], br.table[i], s)
		if len(merged) > 0 {
			out.table[i] = slices.Clone(merged)
		}
	}

	return out
}

// Neg returns -a.
func Neg[E any](a *SparseMatrix[E]) (*SparseMatrix[E], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opNeg, err)
	}

	return scale(a, a.r.Neg(a.r.One())), nil
}

// Scale returns r·a (every entry multiplied by r on the left).
func Scale[E any](a *SparseMatrix[E], r E) (*SparseMatrix[E], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return scale(a, r), nil
}

func scale[E any](a *SparseMatrix[E], r E) *SparseMatrix[E] {
	out := a.Clone()
	for p := range out.table {
		out.scaleBucket(p, r)
	}

	return out
}
