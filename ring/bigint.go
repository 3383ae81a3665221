// SPDX-License-Identifier: MIT

package ring

import "math/big"

// BigIntegers is Z on arbitrary-precision integers.
// Elements are *big.Int values that are never mutated after creation;
// a nil element is read as zero.
type BigIntegers struct{}

var _ Ring[*big.Int] = BigIntegers{}

var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
)

// Int is a convenience constructor for BigIntegers elements.
func Int(v int64) *big.Int { return big.NewInt(v) }

func bi(a *big.Int) *big.Int {
	if a == nil {
		return bigZero
	}
	return a
}

func (BigIntegers) Zero() *big.Int { return new(big.Int) }
func (BigIntegers) One() *big.Int  { return big.NewInt(1) }

func (BigIntegers) Add(a, b *big.Int) *big.Int { return new(big.Int).Add(bi(a), bi(b)) }
func (BigIntegers) Neg(a *big.Int) *big.Int    { return new(big.Int).Neg(bi(a)) }
func (BigIntegers) Mul(a, b *big.Int) *big.Int { return new(big.Int).Mul(bi(a), bi(b)) }

func (BigIntegers) Equal(a, b *big.Int) bool { return bi(a).Cmp(bi(b)) == 0 }
func (BigIntegers) IsField() bool            { return false }

func (BigIntegers) Inverse(a *big.Int) (*big.Int, bool) {
	if bi(a).CmpAbs(bigOne) == 0 {
		return new(big.Int).Set(a), true
	}
	return new(big.Int), false
}

func (BigIntegers) NormalizeUnit(a *big.Int) *big.Int {
	if bi(a).Sign() < 0 {
		return big.NewInt(-1)
	}
	return big.NewInt(1)
}

// EucDegree returns |a| clamped to the int range; only the ordering of
// degrees matters to callers.
func (BigIntegers) EucDegree(a *big.Int) int {
	abs := new(big.Int).Abs(bi(a))
	if !abs.IsInt64() || abs.Int64() > int64(maxInt) {
		return maxInt
	}
	return int(abs.Int64())
}

// EucDiv uses truncated division (big.Int.QuoRem), so |r| < |b|.
func (BigIntegers) EucDiv(a, b *big.Int) (*big.Int, *big.Int) {
	if bi(b).Sign() == 0 {
		panic(ErrDivisionByZero)
	}
	q, r := new(big.Int).QuoRem(bi(a), bi(b), new(big.Int))
	return q, r
}

const maxInt = int(^uint(0) >> 1)
