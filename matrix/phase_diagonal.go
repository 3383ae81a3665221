// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/smith/ring"

// diagonal alternates rowHermite and colHermite until the target is diagonal
// with its nonzero entries packed at (0,0)..(r-1,r-1) and every entry
// normalized. Each colHermite pass can only shrink the degree of the leading
// pivot, so the alternation terminates.
func diagonal[E any](w *worker[E]) {
	for !isDiagonalDone(w.r, w.target) {
		w.run(phaseRowHermite, rowHermite[E])
		if isDiagonalDone(w.r, w.target) {
			return
		}
		w.runTransposed(phaseRowHermite, rowHermite[E])
	}
}

// isDiagonalDone checks the terminal state of the diagonal phase.
// With n nonempty buckets, every nonempty bucket p must satisfy p < n, hold
// exactly one cell at idx p, and that entry must already be normalized.
// The test reads the table in either alignment and never mutates it.
func isDiagonalDone[E any](rg ring.Ring[E], m *SparseMatrix[E]) bool {
	n := 0
	for _, b := range m.table {
		if len(b) > 0 {
			n++
		}
	}

	for p, b := range m.table {
		if len(b) == 0 {
			continue
		}
		if p >= n || len(b) != 1 || b[0].idx != p {
			return false
		}
		if !ring.IsOne(rg, rg.NormalizeUnit(b[0].val)) {
			return false
		}
	}

	return true
}
