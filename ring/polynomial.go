// SPDX-License-Identifier: MIT

package ring

import (
	"fmt"
	"strings"
)

// Poly is a polynomial with coefficients in E, constant term first.
// Values produced by Polynomials never carry trailing zero coefficients,
// so the zero polynomial is the empty slice.
type Poly[E any] []E

// Polynomials is the Euclidean domain K[x] over a field K.
// EucDegree is the polynomial degree; units are the nonzero constants and
// NormalizeUnit makes a polynomial monic.
type Polynomials[E any] struct {
	k Ring[E]
}

var _ Ring[Poly[int64]] = (*Polynomials[int64])(nil)

// NewPolynomials returns K[x] for the field k.
//
// Errors:
//   - ErrNilRing if k is nil.
//   - ErrNotField if k.IsField() is false: long division needs an inverse
//     for every leading coefficient.
func NewPolynomials[E any](k Ring[E]) (*Polynomials[E], error) {
	if k == nil {
		return nil, fmt.Errorf("NewPolynomials: %w", ErrNilRing)
	}
	if !k.IsField() {
		return nil, fmt.Errorf("NewPolynomials: %w", ErrNotField)
	}
	return &Polynomials[E]{k: k}, nil
}

// Coefficients returns the coefficient field.
func (ps *Polynomials[E]) Coefficients() Ring[E] { return ps.k }

// New builds a polynomial from coefficients c0 + c1 x + c2 x^2 + ...
// Trailing zeros are dropped and the input slice is not retained.
func (ps *Polynomials[E]) New(coeffs ...E) Poly[E] {
	out := make(Poly[E], len(coeffs))
	copy(out, coeffs)
	return ps.trim(out)
}

// Monomial returns c*x^n.
func (ps *Polynomials[E]) Monomial(c E, n int) Poly[E] {
	if IsZero(ps.k, c) || n < 0 {
		return nil
	}
	out := make(Poly[E], n+1)
	for i := 0; i < n; i++ {
		out[i] = ps.k.Zero()
	}
	out[n] = c
	return out
}

// Degree returns the polynomial degree, -1 for the zero polynomial.
func (ps *Polynomials[E]) Degree(p Poly[E]) int { return len(ps.trim(p)) - 1 }

// Eval evaluates p at x with Horner's scheme.
func (ps *Polynomials[E]) Eval(p Poly[E], x E) E {
	acc := ps.k.Zero()
	for i := len(p) - 1; i >= 0; i-- {
		acc = ps.k.Add(ps.k.Mul(acc, x), p[i])
	}
	return acc
}

// Format renders p as "c0 + c1x + c2x^2" using %v for coefficients.
func (ps *Polynomials[E]) Format(p Poly[E]) string {
	p = ps.trim(p)
	if len(p) == 0 {
		return "0"
	}
	var b strings.Builder
	first := true
	for i, c := range p {
		if IsZero(ps.k, c) {
			continue
		}
		if !first {
			b.WriteString(" + ")
		}
		first = false
		switch i {
		case 0:
			fmt.Fprintf(&b, "%v", c)
		case 1:
			fmt.Fprintf(&b, "%vx", c)
		default:
			fmt.Fprintf(&b, "%vx^%d", c, i)
		}
	}
	return b.String()
}

func (ps *Polynomials[E]) Zero() Poly[E] { return nil }
func (ps *Polynomials[E]) One() Poly[E]  { return Poly[E]{ps.k.One()} }

func (ps *Polynomials[E]) Add(a, b Poly[E]) Poly[E] {
	if len(a) < len(b) {
		a, b = b, a
	}
	out := make(Poly[E], len(a))
	for i := range a {
		if i < len(b) {
			out[i] = ps.k.Add(a[i], b[i])
		} else {
			out[i] = a[i]
		}
	}
	return ps.trim(out)
}

func (ps *Polynomials[E]) Neg(a Poly[E]) Poly[E] {
	out := make(Poly[E], len(a))
	for i, c := range a {
		out[i] = ps.k.Neg(c)
	}
	return ps.trim(out)
}

func (ps *Polynomials[E]) Mul(a, b Poly[E]) Poly[E] {
	a, b = ps.trim(a), ps.trim(b)
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	out := make(Poly[E], len(a)+len(b)-1)
	for i := range out {
		out[i] = ps.k.Zero()
	}
	for i, x := range a {
		if IsZero(ps.k, x) {
			continue
		}
		for j, y := range b {
			out[i+j] = ps.k.Add(out[i+j], ps.k.Mul(x, y))
		}
	}
	return ps.trim(out)
}

func (ps *Polynomials[E]) Equal(a, b Poly[E]) bool {
	a, b = ps.trim(a), ps.trim(b)
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !ps.k.Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func (ps *Polynomials[E]) IsField() bool { return false }

// EucDegree clamps the zero polynomial to 0; callers never divide by it.
func (ps *Polynomials[E]) EucDegree(a Poly[E]) int {
	if d := ps.Degree(a); d > 0 {
		return d
	}
	return 0
}

// Inverse: only nonzero constants are units.
func (ps *Polynomials[E]) Inverse(a Poly[E]) (Poly[E], bool) {
	a = ps.trim(a)
	if len(a) != 1 {
		return nil, false
	}
	inv, ok := ps.k.Inverse(a[0])
	if !ok {
		return nil, false
	}
	return Poly[E]{inv}, true
}

// NormalizeUnit returns the inverse of the leading coefficient.
func (ps *Polynomials[E]) NormalizeUnit(a Poly[E]) Poly[E] {
	a = ps.trim(a)
	if len(a) == 0 {
		return ps.One()
	}
	return Poly[E]{MustInverse(ps.k, a[len(a)-1])}
}

// EucDiv is schoolbook long division.
// Complexity: O(deg(a) * deg(b)) coefficient operations.
func (ps *Polynomials[E]) EucDiv(a, b Poly[E]) (Poly[E], Poly[E]) {
	b = ps.trim(b)
	if len(b) == 0 {
		panic(ErrDivisionByZero)
	}
	rem := ps.New(a...)
	if len(rem) < len(b) {
		return nil, rem
	}

	lcInv := MustInverse(ps.k, b[len(b)-1])
	quo := make(Poly[E], len(rem)-len(b)+1)
	for i := range quo {
		quo[i] = ps.k.Zero()
	}

	for len(rem) >= len(b) {
		shift := len(rem) - len(b)
		c := ps.k.Mul(rem[len(rem)-1], lcInv)
		quo[shift] = c
		for j, y := range b {
			rem[shift+j] = Sub(ps.k, rem[shift+j], ps.k.Mul(c, y))
		}
		// the leading term cancels exactly in a field; drop it even if the
		// coefficient ring's equality is representation-sensitive.
		rem = ps.trim(rem[:len(rem)-1])
	}

	return ps.trim(quo), rem
}

func (ps *Polynomials[E]) trim(p Poly[E]) Poly[E] {
	n := len(p)
	for n > 0 && IsZero(ps.k, p[n-1]) {
		n--
	}
	if n == 0 {
		return nil
	}
	return p[:n]
}
