// SPDX-License-Identifier: MIT

package ring

import "golang.org/x/exp/constraints"

// Integers is the Euclidean domain Z on a machine integer type T.
// Degree is |a|; division truncates toward zero so |r| < |b|.
// Arithmetic wraps on overflow exactly like T does; use BigIntegers when
// intermediate values may exceed T.
type Integers[T constraints.Signed] struct{}

// Compile-time check.
var _ Ring[int] = Integers[int]{}

func (Integers[T]) Zero() T             { return 0 }
func (Integers[T]) One() T              { return 1 }
func (Integers[T]) Add(a, b T) T        { return a + b }
func (Integers[T]) Neg(a T) T           { return -a }
func (Integers[T]) Mul(a, b T) T        { return a * b }
func (Integers[T]) Equal(a, b T) bool   { return a == b }
func (Integers[T]) IsField() bool       { return false }
func (Integers[T]) EucDegree(a T) int   { return int(abs(a)) }

// Inverse: the only units of Z are ±1.
func (Integers[T]) Inverse(a T) (T, bool) {
	if a == 1 || a == -1 {
		return a, true
	}
	return 0, false
}

// NormalizeUnit maps a to its non-negative associate.
func (Integers[T]) NormalizeUnit(a T) T {
	if a < 0 {
		return -1
	}
	return 1
}

func (Integers[T]) EucDiv(a, b T) (T, T) {
	if b == 0 {
		panic(ErrDivisionByZero)
	}
	return a / b, a % b
}

func abs[T constraints.Signed](a T) T {
	if a < 0 {
		return -a
	}
	return a
}
