// SPDX-License-Identifier: MIT

package ring

import (
	"fmt"
	"math/big"
)

// primalityRounds is the Miller-Rabin round count passed to ProbablyPrime.
// ProbablyPrime is exact for inputs below 2^64 regardless of rounds.
const primalityRounds = 20

// IntegersMod is the prime field Z/p. Elements are int64 residues in [0, p).
// Products fall back to big.Int only when the operands could overflow int64.
type IntegersMod struct {
	p int64
}

var _ Ring[int64] = (*IntegersMod)(nil)

// NewIntegersMod validates p and returns the field Z/p.
//
// Errors:
//   - ErrBadModulus when p < 2.
//   - ErrNotPrime when p is composite (Z/n is not a Euclidean domain then).
func NewIntegersMod(p int64) (*IntegersMod, error) {
	if p < 2 {
		return nil, fmt.Errorf("NewIntegersMod(%d): %w", p, ErrBadModulus)
	}
	if !big.NewInt(p).ProbablyPrime(primalityRounds) {
		return nil, fmt.Errorf("NewIntegersMod(%d): %w", p, ErrNotPrime)
	}
	return &IntegersMod{p: p}, nil
}

// Modulus returns p.
func (z *IntegersMod) Modulus() int64 { return z.p }

// Elem reduces any int64 into the canonical residue range [0, p).
func (z *IntegersMod) Elem(v int64) int64 {
	v %= z.p
	if v < 0 {
		v += z.p
	}
	return v
}

func (z *IntegersMod) Zero() int64           { return 0 }
func (z *IntegersMod) One() int64            { return 1 }
func (z *IntegersMod) Equal(a, b int64) bool { return z.Elem(a) == z.Elem(b) }
func (z *IntegersMod) IsField() bool         { return true }
func (z *IntegersMod) EucDegree(int64) int   { return 0 }

func (z *IntegersMod) Add(a, b int64) int64 {
	a, b = z.Elem(a), z.Elem(b)
	// a, b < p <= MaxInt64, so a - (p - b) never overflows.
	if a >= z.p-b {
		return a - (z.p - b)
	}
	return a + b
}

func (z *IntegersMod) Neg(a int64) int64 {
	a = z.Elem(a)
	if a == 0 {
		return 0
	}
	return z.p - a
}

func (z *IntegersMod) Mul(a, b int64) int64 {
	a, b = z.Elem(a), z.Elem(b)
	if a < 1<<31 && b < 1<<31 {
		return (a * b) % z.p
	}
	prod := new(big.Int).Mul(big.NewInt(a), big.NewInt(b))
	return prod.Mod(prod, big.NewInt(z.p)).Int64()
}

// Inverse delegates to big.Int.ModInverse.
func (z *IntegersMod) Inverse(a int64) (int64, bool) {
	a = z.Elem(a)
	if a == 0 {
		return 0, false
	}
	inv := new(big.Int).ModInverse(big.NewInt(a), big.NewInt(z.p))
	if inv == nil {
		return 0, false
	}
	return inv.Int64(), true
}

func (z *IntegersMod) NormalizeUnit(a int64) int64 {
	if inv, ok := z.Inverse(a); ok {
		return inv
	}
	return 1
}

func (z *IntegersMod) EucDiv(a, b int64) (int64, int64) {
	inv, ok := z.Inverse(b)
	if !ok {
		panic(ErrDivisionByZero)
	}
	return z.Mul(a, inv), 0
}
