// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/smith/ring"

// smithStrategy refines a normalized diagonal target into Smith form.
type smithStrategy[E any] func(w *worker[E])

// smithStrategyFor dispatches on the ring's static field flag.
func smithStrategyFor[E any](rg ring.Ring[E]) smithStrategy[E] {
	if rg.IsField() {
		return fieldSmith[E]
	}

	return euclideanSmith[E]
}

// smith runs the diagonal phase and then the strategy matching the ring.
func smith[E any](w *worker[E]) {
	w.run(phaseDiagonal, diagonal[E])
	smithStrategyFor(w.r)(w)
}

// fieldSmith: over a field every nonzero entry is a unit, so the divisibility
// chain holds as soon as each diagonal entry is normalized to 1.
func fieldSmith[E any](w *worker[E]) {
	m, rg := w.target, w.r
	rank := diagonalRank(m)
	for i := 0; i < rank; i++ {
		if u := rg.NormalizeUnit(m.at(i, i)); !ring.IsOne(rg, u) {
			w.apply(Operation[E]{Kind: OpMulRow, I: i, R: u})
		}
	}
}

// euclideanSmith enforces d[0] | d[1] | ... | d[rank-1].
//
// Implementation:
//   - At index t pick i0 in [t, rank) with minimal degree (lowest index wins).
//   - Unless d[i0] is a unit, scan the other indices in increasing order for
//     the first d[i] not divisible by d[i0] and replace the pair by
//     (gcd, lcm) with diagonalGCD; then retry t.
//   - Once d[i0] divides the rest, normalize it and swap row and column i0
//     into position t.
//
// Every diagonalGCD strictly lowers the minimal degree, so t advances after
// finitely many retries.
func euclideanSmith[E any](w *worker[E]) {
	m, rg := w.target, w.r
	rank := diagonalRank(m)

	for t := 0; t < rank; {
		i0 := t
		a0 := m.at(t, t)
		d0 := rg.EucDegree(a0)
		for i := t + 1; i < rank; i++ {
			if a := m.at(i, i); rg.EucDegree(a) < d0 {
				i0, a0, d0 = i, a, rg.EucDegree(a)
			}
		}

		if !ring.IsUnit(rg, a0) {
			split := false
			for i := t; i < rank; i++ {
				if i == i0 {
					continue
				}
				if a := m.at(i, i); !ring.Divides(rg, a0, a) {
					diagonalGCD(w, i0, a0, i, a)
					split = true
					break
				}
			}
			if split {
				continue
			}
		}

		if u := rg.NormalizeUnit(a0); !ring.IsOne(rg, u) {
			w.apply(Operation[E]{Kind: OpMulRow, I: i0, R: u})
		}
		if i0 != t {
			w.apply(Operation[E]{Kind: OpSwapRows, I: i0, J: t})
			w.apply(Operation[E]{Kind: OpSwapCols, I: i0, J: t})
		}
		t++
	}
}

// diagonalGCD turns diag(a, b) at positions i, j into diag(g, -ab/g) with
// g = pa + qb = gcd(a, b), using five elementary operations:
//
//	[a 0; 0 b] → [a 0; pa b] → [a 0; g b] → [0 -ab/g; g b] → [0 -ab/g; g 0] → [g 0; 0 -ab/g]
func diagonalGCD[E any](w *worker[E], i int, a E, j int, b E) {
	rg := w.r
	p, q, g := ring.Bezout(rg, a, b)

	w.apply(Operation[E]{Kind: OpAddRow, I: i, J: j, R: p})
	w.apply(Operation[E]{Kind: OpAddCol, I: j, J: i, R: q})
	w.apply(Operation[E]{Kind: OpAddRow, I: j, J: i, R: rg.Neg(ring.Quo(rg, a, g))})
	w.apply(Operation[E]{Kind: OpAddCol, I: i, J: j, R: rg.Neg(ring.Quo(rg, b, g))})
	w.apply(Operation[E]{Kind: OpSwapRows, I: i, J: j})
}

// diagonalRank counts nonzero lines of a diagonal target.
func diagonalRank[E any](m *SparseMatrix[E]) int {
	n := 0
	for _, b := range m.table {
		if len(b) > 0 {
			n++
		}
	}

	return n
}
