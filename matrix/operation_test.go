// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/smith/matrix"
	"github.com/katalvlaran/smith/ring"
)

// sampleOps covers every kind on a 3×3 matrix.
var sampleOps = []matrix.Operation[int]{
	{Kind: matrix.OpAddRow, I: 0, J: 2, R: -3},
	{Kind: matrix.OpMulRow, I: 1, R: -1},
	{Kind: matrix.OpSwapRows, I: 0, J: 1},
	{Kind: matrix.OpAddCol, I: 2, J: 0, R: 5},
	{Kind: matrix.OpMulCol, I: 2, R: -1},
	{Kind: matrix.OpSwapCols, I: 1, J: 2},
}

// TestOperation_InverseUndoes applies op then op⁻¹ and expects the original.
func TestOperation_InverseUndoes(t *testing.T) {
	t.Parallel()

	base := RandInts(t, 3, 3, 3, 0.9, 6)
	for _, op := range sampleOps {
		op := op
		t.Run(op.String(), func(t *testing.T) {
			m := base.Clone()
			require.NoError(t, op.ApplyTo(m))
			require.NoError(t, op.Inverse(Z).ApplyTo(m))
			RequireSameMatrix(t, base, m)
		})
	}
}

// TestOperation_TransposeDual checks (E·Aᵀ)ᵀ = A·Eᵀ for every kind.
func TestOperation_TransposeDual(t *testing.T) {
	base := RandInts(t, 5, 3, 3, 0.9, 6)
	for _, op := range sampleOps {
		viaT := base.Transposed()
		require.NoError(t, op.ApplyTo(viaT))
		viaT.Transpose()

		direct := base.Clone()
		dual := op.Transpose()
		require.NotEqual(t, op.IsRow(), dual.IsRow())
		require.NoError(t, dual.ApplyTo(direct))

		RequireSameMatrix(t, viaT, direct)
	}
}

// TestOperation_DeterminantMatchesElementaryMatrix compares det(op) with op applied to I.
func TestOperation_DeterminantMatchesElementaryMatrix(t *testing.T) {
	for _, op := range sampleOps {
		e := MustIdentity(t, 3)
		require.NoError(t, op.ApplyTo(e))
		det, err := matrix.Determinant(e)
		require.NoError(t, err)
		require.Equal(t, op.Determinant(Z), det, op.String())
	}
}

// TestOperation_String renders kind, indices and multiplier.
func TestOperation_String(t *testing.T) {
	require.Equal(t, "AddRow(0 -> 2, -3)", sampleOps[0].String())
	require.Equal(t, "MulRow(1, -1)", sampleOps[1].String())
	require.Equal(t, "SwapRows(0, 1)", sampleOps[2].String())
	require.Equal(t, "AddCol(2 -> 0, 5)", sampleOps[3].String())
	require.Equal(t, "OpKind(9)", matrix.OpKind(9).String())
}

// TestOperation_ApplyToErrors reports nil targets and bad indices.
func TestOperation_ApplyToErrors(t *testing.T) {
	op := matrix.Operation[int]{Kind: matrix.OpSwapCols, I: 0, J: 4}
	require.ErrorIs(t, op.ApplyTo(MustIdentity(t, 2)), matrix.ErrOutOfRange)
	require.ErrorIs(t, op.ApplyTo(nil), matrix.ErrNilMatrix)

	bad := matrix.Operation[int]{Kind: matrix.OpKind(0)}
	require.ErrorIs(t, bad.ApplyTo(MustIdentity(t, 2)), matrix.ErrOutOfRange)
}

// TestOperation_InverseOfNonUnitPanics: MulRow by a non-unit has no inverse.
func TestOperation_InverseOfNonUnitPanics(t *testing.T) {
	op := matrix.Operation[int]{Kind: matrix.OpMulRow, I: 0, R: 2}
	require.PanicsWithValue(t, ring.ErrNotInvertible, func() { _ = op.Inverse(Z) })
	require.Equal(t, matrix.ErrNotInvertible, ring.ErrNotInvertible)
}
