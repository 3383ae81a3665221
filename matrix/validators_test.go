// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/smith/matrix"
)

// TestValidateSameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	zeros := func(r, c int) *matrix.SparseMatrix[int] {
		m, err := matrix.Zeros[int](Z, r, c)
		require.NoError(t, err)
		return m
	}

	tests := []struct {
		name    string
		a, b    *matrix.SparseMatrix[int]
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, zeros(2, 2), matrix.ErrNilMatrix},
		{"second nil", zeros(2, 2), nil, matrix.ErrNilMatrix},
		{"equal 2x3", zeros(2, 3), zeros(2, 3), nil},
		{"row mismatch", zeros(2, 3), zeros(3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", zeros(2, 3), zeros(2, 4), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateBinarySameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
			}
		})
	}
}

// TestValidateSquare covers nil inputs, square and non-square cases.
func TestValidateSquare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		m    *matrix.SparseMatrix[int]
		want error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"1x1", MustIdentity(t, 1), nil},
		{"3x3", MustIdentity(t, 3), nil},
		{"0x0", MustIdentity(t, 0), nil},
		{"2x3", MustInts(t, []int{1, 2, 3}, []int{4, 5, 6}), matrix.ErrNonSquare},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSquare(tc.m)
			if tc.want == nil {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.True(t, errors.Is(err, tc.want), "got %v", err)
			}
		})
	}
}

// TestValidateMulCompatible checks inner dimensions.
func TestValidateMulCompatible(t *testing.T) {
	a := MustInts(t, []int{1, 2, 3})
	b := MustInts(t, []int{1}, []int{2}, []int{3})

	require.NoError(t, matrix.ValidateMulCompatible(a, b))
	require.ErrorIs(t, matrix.ValidateMulCompatible(a, a), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible[int](nil, b), matrix.ErrNilMatrix)
}

// TestValidateIndexAndRange covers inclusive/exclusive bounds.
func TestValidateIndexAndRange(t *testing.T) {
	require.NoError(t, matrix.ValidateIndex(0, 1))
	require.ErrorIs(t, matrix.ValidateIndex(1, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, matrix.ValidateIndex(-1, 3), matrix.ErrOutOfRange)

	require.NoError(t, matrix.ValidateRange(0, 0, 0)) // empty range
	require.NoError(t, matrix.ValidateRange(1, 3, 3))
	require.ErrorIs(t, matrix.ValidateRange(2, 1, 3), matrix.ErrOutOfRange)
	require.ErrorIs(t, matrix.ValidateRange(0, 4, 3), matrix.ErrOutOfRange)

	require.NoError(t, matrix.ValidateShape(0, 5))
	require.ErrorIs(t, matrix.ValidateShape(-1, 5), matrix.ErrBadShape)
}
