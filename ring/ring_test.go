// SPDX-License-Identifier: MIT
package ring_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/smith/ring"
)

var zi = ring.Integers[int]{}

// TestIntegers_EucDiv truncates toward zero so |r| < |b|.
func TestIntegers_EucDiv(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b, q, r int
	}{
		{7, 2, 3, 1},
		{-7, 2, -3, -1},
		{7, -2, -3, 1},
		{-7, -2, 3, -1},
		{0, 5, 0, 0},
		{4, 4, 1, 0},
	}
	for _, tc := range tests {
		q, r := zi.EucDiv(tc.a, tc.b)
		assert.Equal(t, tc.q, q, "%d / %d", tc.a, tc.b)
		assert.Equal(t, tc.r, r, "%d %% %d", tc.a, tc.b)
		assert.Equal(t, tc.a, q*tc.b+r)
		assert.Less(t, zi.EucDegree(r), zi.EucDegree(tc.b))
	}

	require.PanicsWithValue(t, ring.ErrDivisionByZero, func() { zi.EucDiv(1, 0) })
}

// TestIntegers_Units covers Inverse and NormalizeUnit.
func TestIntegers_Units(t *testing.T) {
	inv, ok := zi.Inverse(-1)
	require.True(t, ok)
	require.Equal(t, -1, inv)

	_, ok = zi.Inverse(2)
	require.False(t, ok)
	require.False(t, ring.IsUnit[int](zi, 0))

	require.Equal(t, -1, zi.NormalizeUnit(-6))
	require.Equal(t, 1, zi.NormalizeUnit(0))
	require.Equal(t, 6, ring.Normalize[int](zi, -6))
	require.False(t, zi.IsField())
}

// TestHelpers covers Sub, Quo, Rem, Divides and Product.
func TestHelpers(t *testing.T) {
	require.Equal(t, -3, ring.Sub[int](zi, 2, 5))
	require.Equal(t, 3, ring.Quo[int](zi, 17, 5))
	require.Equal(t, 2, ring.Rem[int](zi, 17, 5))

	require.True(t, ring.Divides[int](zi, 3, 12))
	require.False(t, ring.Divides[int](zi, 5, 12))
	require.True(t, ring.Divides[int](zi, 0, 0))
	require.False(t, ring.Divides[int](zi, 0, 4))

	require.Equal(t, 60, ring.Product[int](zi, 2, 5, 6))
	require.Equal(t, 1, ring.Product[int](zi))

	require.PanicsWithValue(t, ring.ErrNotInvertible, func() { ring.MustInverse[int](zi, 4) })
}

// TestBezout checks p*a + q*b = g and the normalized gcd.
func TestBezout(t *testing.T) {
	t.Parallel()

	pairs := [][2]int{{12, 18}, {-12, 18}, {7, 5}, {0, 9}, {9, 0}, {60, 2}, {2, 60}}
	for _, pr := range pairs {
		a, b := pr[0], pr[1]
		p, q, g := ring.Bezout[int](zi, a, b)
		assert.Equal(t, g, p*a+q*b, "bezout(%d, %d)", a, b)
		assert.True(t, ring.Divides[int](zi, g, a))
		assert.True(t, ring.Divides[int](zi, g, b))
	}

	require.Equal(t, 6, ring.GCD[int](zi, -12, 18))
	require.Equal(t, 1, ring.GCD[int](zi, 7, 5))
	require.Equal(t, 9, ring.GCD[int](zi, 0, -9))
}

// TestIntegers_NarrowType wraps like the underlying machine type.
func TestIntegers_NarrowType(t *testing.T) {
	r := ring.Integers[int8]{}
	require.Equal(t, int8(math.MinInt8), r.Add(math.MaxInt8, 1))
	require.Equal(t, 127, r.EucDegree(-127))
}

// TestBigIntegers covers arithmetic, nil-as-zero and degree clamping.
func TestBigIntegers(t *testing.T) {
	r := ring.BigIntegers{}

	require.True(t, r.Equal(nil, r.Zero()))
	require.Equal(t, "5", r.Add(nil, ring.Int(5)).String())
	require.Equal(t, "-12", r.Mul(ring.Int(3), ring.Int(-4)).String())

	q, rem := r.EucDiv(ring.Int(-7), ring.Int(2))
	require.Equal(t, "-3", q.String())
	require.Equal(t, "-1", rem.String())
	require.PanicsWithValue(t, ring.ErrDivisionByZero, func() { r.EucDiv(ring.Int(1), nil) })

	inv, ok := r.Inverse(ring.Int(-1))
	require.True(t, ok)
	require.Equal(t, "-1", inv.String())
	_, ok = r.Inverse(ring.Int(3))
	require.False(t, ok)

	require.Equal(t, "-1", r.NormalizeUnit(ring.Int(-8)).String())

	huge := new(big.Int).Lsh(big.NewInt(1), 200)
	require.Equal(t, int(^uint(0)>>1), r.EucDegree(huge))
	require.Equal(t, 42, r.EucDegree(ring.Int(-42)))

	g := ring.GCD[*big.Int](r, ring.Int(84), ring.Int(-60))
	require.Equal(t, "12", g.String())
}

// TestBigIntegers_Immutable: results never alias operands.
func TestBigIntegers_Immutable(t *testing.T) {
	r := ring.BigIntegers{}
	a := ring.Int(7)
	sum := r.Add(a, ring.Int(1))
	sum.SetInt64(100)
	require.Equal(t, "7", a.String())
}

// TestRationals covers field behaviour and exact division.
func TestRationals(t *testing.T) {
	r := ring.Rationals{}
	require.True(t, r.IsField())

	half := ring.Rat(1, 2)
	require.Equal(t, "3/2", r.Add(half, ring.Rat(1, 1)).RatString())
	require.True(t, r.Equal(nil, r.Zero()))

	inv, ok := r.Inverse(ring.Rat(-3, 4))
	require.True(t, ok)
	require.Equal(t, "-4/3", inv.RatString())
	_, ok = r.Inverse(nil)
	require.False(t, ok)

	q, rem := r.EucDiv(ring.Rat(3, 4), ring.Rat(1, 2))
	require.Equal(t, "3/2", q.RatString())
	require.True(t, ring.IsZero[*big.Rat](r, rem))
	require.PanicsWithValue(t, ring.ErrDivisionByZero, func() { r.EucDiv(half, r.Zero()) })

	require.True(t, ring.IsOne[*big.Rat](r, ring.Normalize[*big.Rat](r, ring.Rat(-5, 7))))
	require.Equal(t, 0, r.EucDegree(ring.Rat(99, 1)))
}
