// SPDX-License-Identifier: MIT

package ring

import "math/big"

// Rationals is the field Q on *big.Rat. Elements are immutable after
// creation; a nil element is read as zero.
type Rationals struct{}

var _ Ring[*big.Rat] = Rationals{}

// Rat is a convenience constructor for the fraction num/den.
// It panics when den == 0, like big.NewRat.
func Rat(num, den int64) *big.Rat { return big.NewRat(num, den) }

var ratZero = new(big.Rat)

func br(a *big.Rat) *big.Rat {
	if a == nil {
		return ratZero
	}
	return a
}

func (Rationals) Zero() *big.Rat { return new(big.Rat) }
func (Rationals) One() *big.Rat  { return big.NewRat(1, 1) }

func (Rationals) Add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(br(a), br(b)) }
func (Rationals) Neg(a *big.Rat) *big.Rat    { return new(big.Rat).Neg(br(a)) }
func (Rationals) Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(br(a), br(b)) }

func (Rationals) Equal(a, b *big.Rat) bool { return br(a).Cmp(br(b)) == 0 }
func (Rationals) IsField() bool            { return true }
func (Rationals) EucDegree(*big.Rat) int   { return 0 }

func (Rationals) Inverse(a *big.Rat) (*big.Rat, bool) {
	if br(a).Sign() == 0 {
		return new(big.Rat), false
	}
	return new(big.Rat).Inv(a), true
}

// NormalizeUnit returns a⁻¹ so that every nonzero element normalizes to 1.
func (q Rationals) NormalizeUnit(a *big.Rat) *big.Rat {
	if inv, ok := q.Inverse(a); ok {
		return inv
	}
	return q.One()
}

// EucDiv divides exactly; the remainder is always zero.
func (Rationals) EucDiv(a, b *big.Rat) (*big.Rat, *big.Rat) {
	if br(b).Sign() == 0 {
		panic(ErrDivisionByZero)
	}
	return new(big.Rat).Quo(br(a), b), new(big.Rat)
}
