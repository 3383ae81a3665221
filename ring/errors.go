// SPDX-License-Identifier: MIT

package ring

import "errors"

// Sentinel errors of the ring package. Constructors return them; arithmetic
// preconditions panic with them (see package doc).
var (
	// ErrDivisionByZero is the panic value of EucDiv/Inverse on the zero element.
	ErrDivisionByZero = errors.New("ring: division by zero")

	// ErrNotInvertible is the panic value when a unit was required but the
	// element has no multiplicative inverse.
	ErrNotInvertible = errors.New("ring: element is not invertible")

	// ErrBadModulus is returned by NewIntegersMod for p < 2.
	ErrBadModulus = errors.New("ring: modulus must be >= 2")

	// ErrNotPrime is returned by NewIntegersMod for composite p; Z/n is only a
	// Euclidean domain when n is prime.
	ErrNotPrime = errors.New("ring: modulus is not prime")

	// ErrNotField is returned by NewPolynomials when the coefficient ring is
	// not a field.
	ErrNotField = errors.New("ring: coefficient ring is not a field")

	// ErrNilRing indicates a nil ring argument.
	ErrNilRing = errors.New("ring: nil ring")
)
