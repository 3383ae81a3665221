// SPDX-License-Identifier: MIT

// Package ring defines the arithmetic capability surface consumed by the
// matrix elimination engine, together with a handful of concrete rings.
//
// What & Why:
//
//	Go has no static members on type parameters, so a ring is modelled as a
//	dictionary value: Ring[E] carries Zero/One and the operations for the
//	element type E. The elimination engine is generic over E and receives the
//	ring value once, at matrix construction time.
//
// Provided rings:
//
//	Integers[T]     Z on machine integers (any constraints.Signed type)
//	BigIntegers     Z on *big.Int (exact, no overflow)
//	Rationals       Q on *big.Rat (field)
//	IntegersMod     Z/p for prime p (field)
//	Polynomials[E]  K[x] over a field K (Euclidean domain)
//
// Contract:
//
//	EucDiv(a, b) returns (q, r) with a = q*b + r and either r == 0 or
//	EucDegree(r) < EucDegree(b). Dividing by zero is a programmer error and
//	panics with ErrDivisionByZero. Elements handed out by a ring are treated as
//	immutable values; pointer-backed rings (big.Int, big.Rat, Poly) always
//	allocate fresh results.
package ring
