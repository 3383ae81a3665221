// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/smith/ring"

// rowHermite brings the target to row-echelon form and then reduces every
// entry above a pivot by the Euclidean quotient: a -= (a / p) * p.
// Zero quotients are skipped so already-reduced entries cost no operation.
//
// After rowEchelon the nonzero rows are exactly rows 0..rank-1, which bounds
// the pivot walk.
func rowHermite[E any](w *worker[E]) {
	w.run(phaseRowEchelon, rowEchelon[E])

	m, rg := w.target, w.r
	rank := m.countLines(AlignRows)

	row, col := 0, 0
	for row < rank && col < m.cols {
		a0 := m.at(row, col)
		if ring.IsZero(rg, a0) {
			col++
			continue
		}

		for i := 0; i < row; i++ {
			a := m.at(i, col)
			if ring.IsZero(rg, a) {
				continue
			}
			if q := ring.Quo(rg, a, a0); !ring.IsZero(rg, q) {
				w.apply(Operation[E]{Kind: OpAddRow, I: row, J: i, R: rg.Neg(q)})
			}
		}
		row++
		col++
	}
}

// colHermite is rowHermite of the transpose.
func colHermite[E any](w *worker[E]) {
	w.runTransposed(phaseRowHermite, rowHermite[E])
}
