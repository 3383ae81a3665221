// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/smith/ring"
)

// OpKind enumerates the six elementary operations.
type OpKind uint8

const (
	OpAddRow   OpKind = iota + 1 // row J += R * row I
	OpMulRow                     // row I *= R
	OpSwapRows                   // rows I and J exchanged
	OpAddCol                     // col J += R * col I
	OpMulCol                     // col I *= R
	OpSwapCols                   // cols I and J exchanged
)

func (k OpKind) String() string {
	switch k {
	case OpAddRow:
		return "AddRow"
	case OpMulRow:
		return "MulRow"
	case OpSwapRows:
		return "SwapRows"
	case OpAddCol:
		return "AddCol"
	case OpMulCol:
		return "MulCol"
	case OpSwapCols:
		return "SwapCols"
	default:
		return fmt.Sprintf("OpKind(%d)", uint8(k))
	}
}

// Operation is one logged elementary operation.
//
// A row operation applied to A yields E·A, a column operation yields A·F,
// where E and F are the corresponding invertible elementary matrices. J and R
// are unused by the kinds that do not need them.
type Operation[E any] struct {
	Kind OpKind
	I, J int
	R    E
}

// IsRow reports whether op acts on rows.
func (op Operation[E]) IsRow() bool {
	return op.Kind == OpAddRow || op.Kind == OpMulRow || op.Kind == OpSwapRows
}

// ApplyTo applies op to m in place after bounds checks.
// Errors: ErrNilMatrix, ErrOutOfRange.
func (op Operation[E]) ApplyTo(m *SparseMatrix[E]) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opApply, err)
	}

	var err error
	switch op.Kind {
	case OpAddRow:
		err = m.AddRow(op.I, op.J, op.R)
	case OpMulRow:
		err = m.MultiplyRow(op.I, op.R)
	case OpSwapRows:
		err = m.SwapRows(op.I, op.J)
	case OpAddCol:
		err = m.AddCol(op.I, op.J, op.R)
	case OpMulCol:
		err = m.MultiplyCol(op.I, op.R)
	case OpSwapCols:
		err = m.SwapCols(op.I, op.J)
	default:
		err = fmt.Errorf("%v: %w", op.Kind, ErrOutOfRange)
	}
	if err != nil {
		return matrixErrorf(opApply, err)
	}

	return nil
}

// apply is ApplyTo without checks; the eliminator only logs valid ops.
func (op Operation[E]) apply(m *SparseMatrix[E]) {
	switch op.Kind {
	case OpAddRow:
		m.addRow(op.I, op.J, op.R)
	case OpMulRow:
		m.multiplyRow(op.I, op.R)
	case OpSwapRows:
		m.swapRows(op.I, op.J)
	case OpAddCol:
		m.addCol(op.I, op.J, op.R)
	case OpMulCol:
		m.multiplyCol(op.I, op.R)
	case OpSwapCols:
		m.swapCols(op.I, op.J)
	}
}

// Inverse returns the operation undoing op.
// Add negates the multiplier, Mul inverts it (panics with ErrNotInvertible
// when R is not a unit), Swap is its own inverse.
func (op Operation[E]) Inverse(r ring.Ring[E]) Operation[E] {
	switch op.Kind {
	case OpAddRow, OpAddCol:
		op.R = r.Neg(op.R)
	case OpMulRow, OpMulCol:
		op.R = ring.MustInverse(r, op.R)
	}

	return op
}

// Transpose returns the dual operation: (E·Aᵀ)ᵀ = A·Eᵀ, and Eᵀ of a row
// operation is the column operation with the same indices and multiplier.
func (op Operation[E]) Transpose() Operation[E] {
	switch op.Kind {
	case OpAddRow:
		op.Kind = OpAddCol
	case OpAddCol:
		op.Kind = OpAddRow
	case OpMulRow:
		op.Kind = OpMulCol
	case OpMulCol:
		op.Kind = OpMulRow
	case OpSwapRows:
		op.Kind = OpSwapCols
	case OpSwapCols:
		op.Kind = OpSwapRows
	}

	return op
}

// Determinant returns det of the elementary matrix: 1 for Add, R for Mul,
// -1 for Swap.
func (op Operation[E]) Determinant(r ring.Ring[E]) E {
	switch op.Kind {
	case OpMulRow, OpMulCol:
		return op.R
	case OpSwapRows, OpSwapCols:
		return r.Neg(r.One())
	default:
		return r.One()
	}
}

func (op Operation[E]) String() string {
	switch op.Kind {
	case OpAddRow, OpAddCol:
		return fmt.Sprintf("%v(%d -> %d, %v)", op.Kind, op.I, op.J, op.R)
	case OpMulRow, OpMulCol:
		return fmt.Sprintf("%v(%d, %v)", op.Kind, op.I, op.R)
	default:
		return fmt.Sprintf("%v(%d, %d)", op.Kind, op.I, op.J)
	}
}

// replay applies ops in order to a copy of base and returns it.
func replay[E any](base *SparseMatrix[E], ops []Operation[E]) *SparseMatrix[E] {
	out := base.Clone()
	for _, op := range ops {
		op.apply(out)
	}

	return out
}

// replayInverse applies the inverses of ops in reverse order.
func replayInverse[E any](base *SparseMatrix[E], ops []Operation[E]) *SparseMatrix[E] {
	out := base.Clone()
	for k := len(ops) - 1; k >= 0; k-- {
		ops[k].Inverse(out.r).apply(out)
	}

	return out
}
