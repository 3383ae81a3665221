// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures (integer and rational matrices).
//   • Keep fatal-on-error constructors out of the test bodies.

package matrix_test

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/smith/matrix"
	"github.com/katalvlaran/smith/ring"
)

// Z is the integer ring every int fixture lives in.
var Z = ring.Integers[int]{}

// Q is the rational field for *big.Rat fixtures.
var Q = ring.Rationals{}

// MustInts BUILDS an integer matrix from row literals or fails the test.
func MustInts(t testing.TB, rows ...[]int) *matrix.SparseMatrix[int] {
	t.Helper()
	m, err := matrix.NewFromRows[int](Z, rows)
	require.NoError(t, err)

	return m
}

// MustIdentity RETURNS I_n over Z.
func MustIdentity(t testing.TB, n int) *matrix.SparseMatrix[int] {
	t.Helper()
	m, err := matrix.Identity[int](Z, n)
	require.NoError(t, err)

	return m
}

// MustMul RETURNS a·b or fails the test.
func MustMul[E any](t testing.TB, a, b *matrix.SparseMatrix[E]) *matrix.SparseMatrix[E] {
	t.Helper()
	p, err := matrix.Mul(a, b)
	require.NoError(t, err)

	return p
}

// MustRats BUILDS a rational matrix from "num/den" literals.
func MustRats(t testing.TB, rows ...[]string) *matrix.SparseMatrix[*big.Rat] {
	t.Helper()
	data := make([][]*big.Rat, len(rows))
	for i, row := range rows {
		data[i] = make([]*big.Rat, len(row))
		for j, s := range row {
			v, ok := new(big.Rat).SetString(s)
			require.Truef(t, ok, "bad rational literal %q", s)
			data[i][j] = v
		}
	}
	m, err := matrix.NewFromRows[*big.Rat](Q, data)
	require.NoError(t, err)

	return m
}

// RequireSameMatrix ASSERTS a and b have equal shape and entries.
func RequireSameMatrix[E any](t testing.TB, want, got *matrix.SparseMatrix[E]) {
	t.Helper()
	require.Truef(t, want.Equal(got), "matrices differ\nwant:\n%v\ngot:\n%v", want, got)
}

// RequireDense ASSERTS m equals the integer literal rows.
func RequireDense(t testing.TB, want [][]int, m *matrix.SparseMatrix[int]) {
	t.Helper()
	require.Equal(t, want, m.ToDense())
}

// RandInts FILLS a rows×cols integer matrix with values in [-bound, bound],
// about density of them nonzero. Deterministic for a given seed.
func RandInts(t testing.TB, seed int64, rows, cols int, density float64, bound int) *matrix.SparseMatrix[int] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	grid := make([]int, rows*cols)
	for k := range grid {
		if rng.Float64() < density {
			grid[k] = rng.Intn(2*bound+1) - bound
		}
	}
	m, err := matrix.NewFromDense[int](Z, rows, cols, grid)
	require.NoError(t, err)

	return m
}

// ExpectPanic FAILS the test unless fn panics.
func ExpectPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic, got nil")
		}
	}()
	fn()
}

// ExpectPanicMessage FAILS the test unless fn panics with exactly msg.
func ExpectPanicMessage(t *testing.T, msg string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic %q, got nil", msg)
		}
		if s, ok := r.(string); !ok || s != msg {
			t.Fatalf("panic = %v, want %q", r, msg)
		}
	}()
	fn()
}
