// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/smith/ring"

// rowEchelon reduces the target to row-echelon form with row operations.
//
// Implementation:
//   - A (row, col) cursor walks the matrix. Candidates are the rows ≥ row
//     whose leading entry sits in col; rows ≥ row never hold entries left of
//     col, so an empty candidate set means column col is already clear.
//   - The pivot is the candidate of minimum Euclidean degree, ties broken by
//     lower row weight (sum of degrees), then by lower index.
//   - Every other candidate i is reduced by AddRow(i0 -> i, -q). If some
//     remainder is nonzero the column is retried, and the next pivot is taken
//     among the rows that kept a remainder only. Each retry strictly lowers
//     the pivot magnitude, which also guarantees termination for rings whose
//     degree saturates (BigIntegers beyond int range).
//   - Otherwise the pivot is normalized, swapped to row and the cursor moves
//     diagonally.
//
// Complexity:
//   - O(cols · retries · Σ candidate row lengths) ring operations.
func rowEchelon[E any](w *worker[E]) {
	m, rg := w.target, w.r
	m.SwitchAlignment(AlignRows)

	row, col := 0, 0
	var pool []int // restricts the next pivot after a retry
	for row < m.rows && col < m.cols {
		cands := echelonCandidates(m, row, col)
		if len(cands) == 0 {
			col++
			pool = nil
			continue
		}

		var i0 int
		if pool != nil {
			i0 = minDegreeRow(m, pool, false)
		} else {
			i0 = minDegreeRow(m, cands, true)
		}
		a0 := m.table[i0][0].val

		var again []int
		for _, i := range cands {
			if i == i0 {
				continue
			}
			q, rem := rg.EucDiv(m.table[i][0].val, a0)
			if !ring.IsZero(rg, q) {
				w.apply(Operation[E]{Kind: OpAddRow, I: i0, J: i, R: rg.Neg(q)})
			}
			if !ring.IsZero(rg, rem) {
				again = append(again, i)
			}
		}
		if len(again) > 0 {
			pool = again
			continue
		}
		pool = nil

		if u := rg.NormalizeUnit(a0); !ring.IsOne(rg, u) {
			w.apply(Operation[E]{Kind: OpMulRow, I: i0, R: u})
		}
		if i0 != row {
			w.apply(Operation[E]{Kind: OpSwapRows, I: i0, J: row})
		}
		row++
		col++
	}
}

// colEchelon is rowEchelon of the transpose.
func colEchelon[E any](w *worker[E]) {
	w.runTransposed(phaseRowEchelon, rowEchelon[E])
}

// echelonCandidates lists rows ≥ from whose leading entry is in column col.
// The target must be row-aligned.
func echelonCandidates[E any](m *SparseMatrix[E], from, col int) []int {
	var out []int
	for i := from; i < m.rows; i++ {
		if b := m.table[i]; len(b) > 0 && b[0].idx == col {
			out = append(out, i)
		}
	}

	return out
}

// minDegreeRow picks the row whose leading entry has minimum degree.
// With useWeight, ties go to the lighter row; remaining ties to the lower index
// (rows are scanned in increasing order and only strict improvements win).
func minDegreeRow[E any](m *SparseMatrix[E], rows []int, useWeight bool) int {
	best := rows[0]
	bestDeg := m.r.EucDegree(m.table[best][0].val)
	bestW := -1
	if useWeight {
		bestW = rowWeight(m, best)
	}

	for _, i := range rows[1:] {
		d := m.r.EucDegree(m.table[i][0].val)
		if d > bestDeg || (d == bestDeg && !useWeight) {
			continue
		}
		if d == bestDeg {
			wt := rowWeight(m, i)
			if wt < bestW {
				best, bestW = i, wt
			}
			continue
		}
		best, bestDeg = i, d
		if useWeight {
			bestW = rowWeight(m, i)
		}
	}

	return best
}

// rowWeight is the saturating sum of the degrees of row i.
func rowWeight[E any](m *SparseMatrix[E], i int) int {
	sum := 0
	for _, c := range m.table[i] {
		d := m.r.EucDegree(c.val)
		if sum > maxInt-d {
			return maxInt
		}
		sum += d
	}

	return sum
}

const maxInt = int(^uint(0) >> 1)
