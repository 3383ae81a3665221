// SPDX-License-Identifier: MIT
package matrix_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/smith/matrix"
	"github.com/katalvlaran/smith/ring"
)

// TestConstructors_Errors checks the sentinel returned by each constructor.
func TestConstructors_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.NewFromDense[int](nil, 1, 1, []int{1})
	require.ErrorIs(t, err, matrix.ErrNilRing)

	_, err = matrix.NewFromDense[int](Z, -1, 2, nil)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewFromDense[int](Z, 2, 2, []int{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewFromRows[int](Z, [][]int{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewSparse[int](Z, 2, 2, []matrix.Entry[int]{{Row: 2, Col: 0, Value: 1}})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = matrix.Identity[int](Z, -3)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.Zeros[int](nil, 1, 1)
	require.ErrorIs(t, err, matrix.ErrNilRing)
}

// TestNewSparse_AccumulatesDuplicates sums repeated triples and drops zero sums.
func TestNewSparse_AccumulatesDuplicates(t *testing.T) {
	m, err := matrix.NewSparse[int](Z, 2, 3, []matrix.Entry[int]{
		{Row: 1, Col: 2, Value: 4},
		{Row: 0, Col: 1, Value: 2},
		{Row: 1, Col: 2, Value: 3},
		{Row: 0, Col: 0, Value: 5},
		{Row: 0, Col: 0, Value: -5}, // cancels
	})
	require.NoError(t, err)
	RequireDense(t, [][]int{{0, 2, 0}, {0, 0, 7}}, m)
	require.Equal(t, 2, m.NonZeros())
	require.Equal(t, []matrix.Entry[int]{{Row: 0, Col: 1, Value: 2}, {Row: 1, Col: 2, Value: 7}}, m.Entries())
}

// TestAtSet_RoundTrip covers reads, writes, zero-removal and bounds.
func TestAtSet_RoundTrip(t *testing.T) {
	m, err := matrix.Zeros[int](Z, 2, 3)
	require.NoError(t, err)
	require.True(t, m.IsZero())

	require.NoError(t, m.Set(1, 2, 9))
	require.NoError(t, m.Set(1, 0, 4))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 9, v)
	require.Equal(t, 2, m.NonZeros())

	require.NoError(t, m.Set(1, 2, 0)) // zero removes the cell
	require.Equal(t, 1, m.NonZeros())
	require.InDelta(t, 1.0/6.0, m.Density(), 1e-12)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
	_, err = m.Row(5)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Col(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestRowCol_BothAlignments reads lines in either alignment.
func TestRowCol_BothAlignments(t *testing.T) {
	m := MustInts(t, []int{1, 0, 2}, []int{0, 3, 0})
	for _, a := range []matrix.Alignment{matrix.AlignRows, matrix.AlignCols} {
		m.SwitchAlignment(a)
		require.Equal(t, a, m.Alignment())

		row, err := m.Row(0)
		require.NoError(t, err)
		require.Equal(t, []int{1, 0, 2}, row)

		col, err := m.Col(1)
		require.NoError(t, err)
		require.Equal(t, []int{0, 3}, col)
	}
}

// TestSwitchAlignment_PreservesEntries rebuilds the table without changing values.
func TestSwitchAlignment_PreservesEntries(t *testing.T) {
	m := RandInts(t, 7, 6, 9, 0.4, 5)
	orig := m.Clone()

	m.SwitchAlignment(matrix.AlignCols)
	require.Equal(t, matrix.AlignCols, m.Alignment())
	require.Equal(t, orig.ToDense(), m.ToDense())
	require.True(t, orig.Equal(m), "Equal ignores alignment")
	require.Equal(t, orig.Entries(), m.Entries())

	m.SwitchAlignment(matrix.AlignRows)
	require.Equal(t, orig.ToDense(), m.ToDense())
}

// TestTranspose_InPlace swaps shape and entries.
func TestTranspose_InPlace(t *testing.T) {
	m := MustInts(t, []int{1, 2, 3}, []int{4, 5, 6})
	tr := m.Transposed()
	RequireDense(t, [][]int{{1, 2, 3}, {4, 5, 6}}, m) // Transposed copies

	m.Transpose()
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 2, m.Cols())
	require.Equal(t, matrix.AlignCols, m.Alignment())
	RequireDense(t, [][]int{{1, 4}, {2, 5}, {3, 6}}, m)
	RequireSameMatrix(t, tr, m)

	m.Transpose()
	RequireDense(t, [][]int{{1, 2, 3}, {4, 5, 6}}, m)
}

// TestSubmatrix extracts blocks in both alignments.
func TestSubmatrix(t *testing.T) {
	m := MustInts(t,
		[]int{1, 2, 3, 4},
		[]int{5, 6, 7, 8},
		[]int{9, 10, 11, 12},
	)
	want := [][]int{{6, 7}, {10, 11}}

	s, err := m.Submatrix(1, 3, 1, 3)
	require.NoError(t, err)
	RequireDense(t, want, s)

	m.SwitchAlignment(matrix.AlignCols)
	s, err = m.Submatrix(1, 3, 1, 3)
	require.NoError(t, err)
	RequireDense(t, want, s)

	empty, err := m.Submatrix(2, 2, 0, 4)
	require.NoError(t, err)
	require.Equal(t, 0, empty.Rows())
	require.Equal(t, 4, empty.Cols())

	_, err = m.Submatrix(0, 4, 0, 1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestElementaryMutations covers the public row/column operations.
func TestElementaryMutations(t *testing.T) {
	m := MustInts(t, []int{1, 2}, []int{3, 4})

	require.NoError(t, m.AddRow(0, 1, -3)) // row1 += -3 row0
	RequireDense(t, [][]int{{1, 2}, {0, -2}}, m)

	require.NoError(t, m.AddCol(0, 1, -2)) // col1 += -2 col0
	RequireDense(t, [][]int{{1, 0}, {0, -2}}, m)

	require.NoError(t, m.MultiplyRow(1, -1))
	require.NoError(t, m.SwapCols(0, 1))
	RequireDense(t, [][]int{{0, 1}, {2, 0}}, m)

	require.NoError(t, m.SwapRows(0, 1))
	require.NoError(t, m.MultiplyCol(0, 0)) // zero clears the column
	RequireDense(t, [][]int{{0, 0}, {0, 1}}, m)

	require.ErrorIs(t, m.AddRow(0, 2, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.SwapCols(-1, 0), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.MultiplyRow(9, 1), matrix.ErrOutOfRange)
}

// TestAddRow_SelfAndCancellation keeps buckets free of zeros.
func TestAddRow_SelfAndCancellation(t *testing.T) {
	m := MustInts(t, []int{1, 0, 2}, []int{-1, 5, -2})

	require.NoError(t, m.AddRow(0, 1, 1)) // entries 0 and 2 cancel
	RequireDense(t, [][]int{{1, 0, 2}, {0, 5, 0}}, m)
	require.Equal(t, 3, m.NonZeros())

	require.NoError(t, m.AddRow(1, 1, 1)) // row1 += row1
	RequireDense(t, [][]int{{1, 0, 2}, {0, 10, 0}}, m)
}

// TestEqual_ShapeAndNil covers nil-safety and shape mismatch.
func TestEqual_ShapeAndNil(t *testing.T) {
	var a, b *matrix.SparseMatrix[int]
	assert.True(t, a.Equal(b))

	c := MustInts(t, []int{1, 2})
	assert.False(t, c.Equal(nil))
	assert.False(t, c.Equal(MustInts(t, []int{1}, []int{2})))
	assert.True(t, c.Equal(c.Clone()))
}

// TestClone_Independent ensures mutations on a clone stay local.
func TestClone_Independent(t *testing.T) {
	m := MustInts(t, []int{1, 2}, []int{3, 4})
	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 7))
	require.NoError(t, c.SwapRows(0, 1))

	RequireDense(t, [][]int{{1, 2}, {3, 4}}, m)
}

// TestDiagonalQueries covers IsDiagonal and Diagonal.
func TestDiagonalQueries(t *testing.T) {
	d := MustInts(t, []int{2, 0, 0}, []int{0, 0, 0}, []int{0, 0, 6})
	require.True(t, d.IsDiagonal())
	require.Equal(t, []int{2, 6}, d.Diagonal())

	d.SwitchAlignment(matrix.AlignCols)
	require.True(t, d.IsDiagonal())

	require.False(t, MustInts(t, []int{1, 1}, []int{0, 1}).IsDiagonal())
	require.True(t, MustIdentity(t, 0).IsDiagonal())
}

// TestString_Format renders one bracketed line per row.
func TestString_Format(t *testing.T) {
	m := MustInts(t, []int{1, 0}, []int{-3, 4})
	require.Equal(t, "[1, 0]\n[-3, 4]\n", m.String())
}

// TestNonIntegerRing stores rationals exactly.
func TestNonIntegerRing(t *testing.T) {
	m := MustRats(t, []string{"1/2", "0"}, []string{"0", "-3/4"})
	require.Equal(t, 2, m.NonZeros())
	require.Equal(t, "[1/2, 0/1]\n[0/1, -3/4]\n", m.String()) // *big.Rat formatting

	require.NoError(t, m.AddRow(0, 1, ring.Rat(3, 2)))
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 0, v.Cmp(ring.Rat(3, 4)))
	require.True(t, errors.Is(m.Set(3, 3, ring.Rat(1, 1)), matrix.ErrOutOfRange))
}
