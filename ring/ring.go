// SPDX-License-Identifier: MIT

package ring

// Ring is the capability surface of a commutative Euclidean ring with
// element type E. Implementations must satisfy the ring axioms; fields
// report IsField() == true and divide exactly.
type Ring[E any] interface {
	// Zero returns the additive identity.
	Zero() E
	// One returns the multiplicative identity.
	One() E

	Add(a, b E) E
	Neg(a E) E
	Mul(a, b E) E
	Equal(a, b E) bool

	// Inverse returns a⁻¹ and true when a is a unit, otherwise (Zero, false).
	Inverse(a E) (E, bool)

	// NormalizeUnit returns the unit u such that u*a is the canonical
	// associate of a (non-negative integer, monic polynomial, 1 in a field).
	// For a == 0 it returns One.
	NormalizeUnit(a E) E

	// EucDegree is the Euclidean degree of a nonzero element.
	EucDegree(a E) int

	// EucDiv returns (q, r) with a = q*b + r and r == 0 or deg(r) < deg(b).
	// Panics with ErrDivisionByZero when b is zero.
	EucDiv(a, b E) (q, r E)

	// IsField reports whether every nonzero element is a unit.
	IsField() bool
}

// Sub returns a - b.
func Sub[E any](r Ring[E], a, b E) E { return r.Add(a, r.Neg(b)) }

// IsZero reports a == 0.
func IsZero[E any](r Ring[E], a E) bool { return r.Equal(a, r.Zero()) }

// IsOne reports a == 1.
func IsOne[E any](r Ring[E], a E) bool { return r.Equal(a, r.One()) }

// IsUnit reports whether a has a multiplicative inverse.
func IsUnit[E any](r Ring[E], a E) bool {
	_, ok := r.Inverse(a)
	return ok
}

// MustInverse returns a⁻¹ or panics with ErrNotInvertible.
func MustInverse[E any](r Ring[E], a E) E {
	inv, ok := r.Inverse(a)
	if !ok {
		panic(ErrNotInvertible)
	}
	return inv
}

// Normalize returns the canonical associate NormalizeUnit(a)*a.
func Normalize[E any](r Ring[E], a E) E { return r.Mul(r.NormalizeUnit(a), a) }

// Quo returns the Euclidean quotient of a by b.
func Quo[E any](r Ring[E], a, b E) E {
	q, _ := r.EucDiv(a, b)
	return q
}

// Rem returns the Euclidean remainder of a by b.
func Rem[E any](r Ring[E], a, b E) E {
	_, rem := r.EucDiv(a, b)
	return rem
}

// Divides reports whether a | b. Zero divides only zero.
func Divides[E any](r Ring[E], a, b E) bool {
	if IsZero(r, a) {
		return IsZero(r, b)
	}
	return IsZero(r, Rem(r, b, a))
}

// Product multiplies xs together; the empty product is One.
func Product[E any](r Ring[E], xs ...E) E {
	acc := r.One()
	for _, x := range xs {
		acc = r.Mul(acc, x)
	}
	return acc
}

// Bezout runs the extended Euclidean algorithm and returns (p, q, g) with
// g = p*a + q*b a greatest common divisor of a and b. g is not normalized.
//
// Complexity: O(number of division steps), bounded by EucDegree(b)+1.
func Bezout[E any](r Ring[E], a, b E) (p, q, g E) {
	r0, r1 := a, b
	s0, s1 := r.One(), r.Zero()
	t0, t1 := r.Zero(), r.One()

	for !IsZero(r, r1) {
		quo, rem := r.EucDiv(r0, r1)
		r0, r1 = r1, rem
		s0, s1 = s1, Sub(r, s0, r.Mul(quo, s1))
		t0, t1 = t1, Sub(r, t0, r.Mul(quo, t1))
	}

	return s0, t0, r0
}

// GCD returns the normalized greatest common divisor of a and b.
func GCD[E any](r Ring[E], a, b E) E {
	_, _, g := Bezout(r, a, b)
	return Normalize(r, g)
}
