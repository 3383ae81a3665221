// SPDX-License-Identifier: MIT

// Package matrix - sparse exact storage & safe accessors.
//
// Purpose:
//   - Store a rows×cols matrix over an arbitrary ring.Ring[E] as a table of
//     buckets indexed by the primary axis (rows or cols, see Alignment).
//   - Each bucket is a list of (secondary index, value) cells sorted strictly
//     by index and never holding the ring zero.
//   - Guarantee safety at the public surface: At/Set/Row/Col/Submatrix return
//     errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Hints:
//   - Row mutations switch the table to AlignRows, column mutations to
//     AlignCols. Batch row work before column work to avoid rebuilds.
//   - Transpose is O(1): it swaps the dimensions and flips the alignment,
//     the table itself is untouched.
//   - Read operations never switch alignment on the receiver; when they need
//     the other axis they work on an aligned copy.
//
// Complexity quicksheet:
//   - At/Set: O(log k) per bucket of length k; SwitchAlignment: O(nnz + dim);
//     AddRow/AddCol: O(|src| + |dst|); Clone: O(nnz + dim).

package matrix

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/smith/ring"
)

// ---------- error context tags ----------

const (
	ctxAt        = "At"          // method tag used in error wrappers
	ctxSet       = "Set"         // method tag used in error wrappers
	ctxRow       = "Row"         // method tag used in error wrappers
	ctxCol       = "Col"         // method tag used in error wrappers
	ctxSubmatrix = "Submatrix"   // ctor tag for SparseMatrix.Submatrix
	ctxMulRow    = "MultiplyRow" // mutation tags
	ctxMulCol    = "MultiplyCol"
	ctxAddRow    = "AddRow"
	ctxAddCol    = "AddCol"
	ctxSwapRows  = "SwapRows"
	ctxSwapCols  = "SwapCols"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// sparseErrorf wraps an error with a uniform SparseMatrix context and the
// call-site indices, e.g. "SparseMatrix.At(3,-1): matrix: index out of range".
func sparseErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("SparseMatrix.%s(%d,%d): %w", method, i, j, err)
}

// cell is one stored entry of a bucket: idx is the secondary index.
type cell[E any] struct {
	idx int
	val E
}

// SparseMatrix is an exact rows×cols matrix over the ring r.
//   - table has one bucket per primary index (rows for AlignRows, cols for
//     AlignCols); a nil bucket is an all-zero line.
//   - Buckets are sorted strictly by idx and never contain the ring zero.
//   - Elements are treated as immutable values; pointer-backed element types
//     (big.Int, big.Rat, ring.Poly) may be shared between clones.
//
// A SparseMatrix is not safe for concurrent mutation. Read operations are
// safe to run concurrently with each other.
type SparseMatrix[E any] struct {
	r     ring.Ring[E]
	rows  int
	cols  int
	align Alignment
	table [][]cell[E]
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*SparseMatrix[int])(nil)

// newSparse allocates an empty matrix without validation (internal).
func newSparse[E any](r ring.Ring[E], rows, cols int, align Alignment) *SparseMatrix[E] {
	m := &SparseMatrix[E]{r: r, rows: rows, cols: cols, align: align}
	m.table = make([][]cell[E], m.primaryLen())

	return m
}

// identity returns I_n with the given alignment (internal, no validation).
func identity[E any](r ring.Ring[E], n int, align Alignment) *SparseMatrix[E] {
	m := newSparse(r, n, n, align)
	for i := 0; i < n; i++ {
		m.table[i] = []cell[E]{{idx: i, val: r.One()}}
	}

	return m
}

// NewFromDense builds a rows×cols matrix from a row-major grid.
// MAIN DESCRIPTION:
//   - Copies nonzero grid entries into a row-aligned table.
//
// Implementation:
//   - Stage 1: validate ring, shape and len(grid) == rows*cols.
//   - Stage 2: walk the grid in row-major order appending nonzero cells, so
//     buckets come out sorted without an extra pass.
//
// Errors:
//   - ErrNilRing, ErrBadShape, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(rows*cols), Space O(nnz + rows).
func NewFromDense[E any](r ring.Ring[E], rows, cols int, grid []E) (*SparseMatrix[E], error) {
	if r == nil {
		return nil, matrixErrorf(opNewFromDense, ErrNilRing)
	}
	if err := ValidateShape(rows, cols); err != nil {
		return nil, matrixErrorf(opNewFromDense, err)
	}
	if len(grid) != rows*cols {
		return nil, matrixErrorf(opNewFromDense, ErrDimensionMismatch)
	}

	m := newSparse(r, rows, cols, AlignRows)
	for i := 0; i < rows; i++ {
		base := i * cols
		for j := 0; j < cols; j++ {
			v := grid[base+j]
			if !ring.IsZero(r, v) {
				m.table[i] = append(m.table[i], cell[E]{idx: j, val: v})
			}
		}
	}

	return m, nil
}

// NewFromRows builds a matrix from nested row slices. All rows must share the
// same length; an empty outer slice yields a 0×0 matrix.
//
// Errors: ErrNilRing, ErrDimensionMismatch (ragged rows).
func NewFromRows[E any](r ring.Ring[E], data [][]E) (*SparseMatrix[E], error) {
	if r == nil {
		return nil, matrixErrorf(opNewFromRows, ErrNilRing)
	}
	rows, cols := len(data), 0
	if rows > 0 {
		cols = len(data[0])
	}
	grid := make([]E, 0, rows*cols)
	for _, row := range data {
		if len(row) != cols {
			return nil, matrixErrorf(opNewFromRows, ErrDimensionMismatch)
		}
		grid = append(grid, row...)
	}

	return NewFromDense(r, rows, cols, grid)
}

// NewSparse builds a rows×cols matrix from (row, col, value) triples.
// MAIN DESCRIPTION:
//   - COO ingestion: entries may come in any order; duplicates accumulate
//     through ring Add; zero values and zero sums are dropped.
//
// Errors:
//   - ErrNilRing, ErrBadShape, ErrOutOfRange (a triple outside the shape).
//
// Complexity:
//   - Time O(k log k) for k entries, Space O(k + rows).
func NewSparse[E any](r ring.Ring[E], rows, cols int, entries []Entry[E]) (*SparseMatrix[E], error) {
	if r == nil {
		return nil, matrixErrorf(opNewSparse, ErrNilRing)
	}
	if err := ValidateShape(rows, cols); err != nil {
		return nil, matrixErrorf(opNewSparse, err)
	}

	m := newSparse(r, rows, cols, AlignRows)
	for _, e := range entries {
		if e.Row < 0 || e.Row >= rows || e.Col < 0 || e.Col >= cols {
			return nil, matrixErrorf(opNewSparse, sparseErrorf(ctxSet, e.Row, e.Col, ErrOutOfRange))
		}
		m.table[e.Row] = append(m.table[e.Row], cell[E]{idx: e.Col, val: e.Value})
	}
	for i, b := range m.table {
		m.table[i] = compactBucket(r, b)
	}

	return m, nil
}

// compactBucket sorts b by idx, sums duplicates and drops zeros, in place.
func compactBucket[E any](r ring.Ring[E], b []cell[E]) []cell[E] {
	if len(b) == 0 {
		return nil
	}
	slices.SortStableFunc(b, func(x, y cell[E]) int { return cmp.Compare(x.idx, y.idx) })

	out := b[:0]
	for k := 0; k < len(b); {
		c := b[k]
		k++
		for k < len(b) && b[k].idx == c.idx {
			c.val = r.Add(c.val, b[k].val)
			k++
		}
		if !ring.IsZero(r, c.val) {
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		return nil
	}

	return out
}

// ---------- shape & layout ----------

// Rows returns the number of rows.
func (m *SparseMatrix[E]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *SparseMatrix[E]) Cols() int { return m.cols }

// Alignment returns the current primary axis of the table.
func (m *SparseMatrix[E]) Alignment() Alignment { return m.align }

// Ring returns the element ring.
func (m *SparseMatrix[E]) Ring() ring.Ring[E] { return m.r }

// IsSquare reports Rows == Cols.
func (m *SparseMatrix[E]) IsSquare() bool { return m.rows == m.cols }

func (m *SparseMatrix[E]) primaryLen() int {
	if m.align == AlignRows {
		return m.rows
	}
	return m.cols
}

func (m *SparseMatrix[E]) secondaryLen() int {
	if m.align == AlignRows {
		return m.cols
	}
	return m.rows
}

// key maps (row, col) to (bucket, idx) under the current alignment.
func (m *SparseMatrix[E]) key(i, j int) (p, s int) {
	if m.align == AlignRows {
		return i, j
	}
	return j, i
}

// search finds idx s in a sorted bucket.
func search[E any](b []cell[E], s int) (int, bool) {
	return slices.BinarySearchFunc(b, s, func(c cell[E], t int) int { return cmp.Compare(c.idx, t) })
}

// ---------- element access ----------

// at is the unchecked element read.
func (m *SparseMatrix[E]) at(i, j int) E {
	p, s := m.key(i, j)
	b := m.table[p]
	if k, ok := search(b, s); ok {
		return b[k].val
	}

	return m.r.Zero()
}

// set is the unchecked element write; zero removes the cell.
func (m *SparseMatrix[E]) set(i, j int, v E) {
	p, s := m.key(i, j)
	b := m.table[p]
	k, ok := search(b, s)
	zero := ring.IsZero(m.r, v)
	switch {
	case ok && zero:
		m.table[p] = slices.Delete(b, k, k+1)
	case ok:
		b[k].val = v
	case !zero:
		m.table[p] = slices.Insert(b, k, cell[E]{idx: s, val: v})
	}
}

// At returns the element at (i, j) or ErrOutOfRange.
// Complexity: O(log k) binary search in one bucket.
func (m *SparseMatrix[E]) At(i, j int) (E, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		var zero E
		return zero, sparseErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return m.at(i, j), nil
}

// Set stores v at (i, j); storing the ring zero removes the cell.
// Set keeps the current alignment.
//
// Errors: ErrOutOfRange.
// Complexity: O(k) worst case for the bucket insert/delete.
func (m *SparseMatrix[E]) Set(i, j int, v E) error {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return sparseErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	m.set(i, j, v)

	return nil
}

// Row returns row i as a dense slice.
func (m *SparseMatrix[E]) Row(i int) ([]E, error) {
	if err := ValidateIndex(i, m.rows); err != nil {
		return nil, sparseErrorf(ctxRow, i, -1, err)
	}

	return m.line(i, AlignRows), nil
}

// Col returns column j as a dense slice.
func (m *SparseMatrix[E]) Col(j int) ([]E, error) {
	if err := ValidateIndex(j, m.cols); err != nil {
		return nil, sparseErrorf(ctxCol, -1, j, err)
	}

	return m.line(j, AlignCols), nil
}

// line densifies row (a == AlignRows) or column (a == AlignCols) number n.
func (m *SparseMatrix[E]) line(n int, a Alignment) []E {
	length := m.cols
	if a == AlignCols {
		length = m.rows
	}
	out := make([]E, length)
	for k := range out {
		out[k] = m.r.Zero()
	}

	if m.align == a {
		for _, c := range m.table[n] {
			out[c.idx] = c.val
		}
		return out
	}
	for p, b := range m.table {
		if k, ok := search(b, n); ok {
			out[p] = b[k].val
		}
	}

	return out
}

// ---------- structural queries ----------

// NonZeros returns the number of stored (nonzero) entries.
func (m *SparseMatrix[E]) NonZeros() int {
	n := 0
	for _, b := range m.table {
		n += len(b)
	}

	return n
}

// Density returns NonZeros / (Rows*Cols), 0 for an empty shape.
func (m *SparseMatrix[E]) Density() float64 {
	if m.rows == 0 || m.cols == 0 {
		return 0
	}

	return float64(m.NonZeros()) / float64(m.rows*m.cols)
}

// IsZero reports whether every entry is zero.
func (m *SparseMatrix[E]) IsZero() bool {
	for _, b := range m.table {
		if len(b) > 0 {
			return false
		}
	}

	return true
}

// IsDiagonal reports whether nonzero entries occur only where row == col.
func (m *SparseMatrix[E]) IsDiagonal() bool {
	for p, b := range m.table {
		for _, c := range b {
			if c.idx != p {
				return false
			}
		}
	}

	return true
}

// Diagonal returns the nonzero (i, i) entries in increasing i.
func (m *SparseMatrix[E]) Diagonal() []E {
	var out []E
	for p, b := range m.table {
		if k, ok := search(b, p); ok {
			out = append(out, b[k].val)
		}
	}

	return out
}

// Entries returns all nonzero entries in row-major order.
func (m *SparseMatrix[E]) Entries() []Entry[E] {
	rm := m.aligned(AlignRows)
	out := make([]Entry[E], 0, rm.NonZeros())
	for i, b := range rm.table {
		for _, c := range b {
			out = append(out, Entry[E]{Row: i, Col: c.idx, Value: c.val})
		}
	}

	return out
}

// countLines counts nonzero rows (a == AlignRows) or nonzero columns.
func (m *SparseMatrix[E]) countLines(a Alignment) int {
	n := 0
	if m.align == a {
		for _, b := range m.table {
			if len(b) > 0 {
				n++
			}
		}
		return n
	}

	seen := make([]bool, m.secondaryLen())
	for _, b := range m.table {
		for _, c := range b {
			if !seen[c.idx] {
				seen[c.idx] = true
				n++
			}
		}
	}

	return n
}

// ---------- copies ----------

// Clone returns a deep copy of the table (elements are shared values).
// Complexity: O(nnz + dim).
func (m *SparseMatrix[E]) Clone() *SparseMatrix[E] {
	out := &SparseMatrix[E]{r: m.r, rows: m.rows, cols: m.cols, align: m.align}
	out.table = make([][]cell[E], len(m.table))
	for p, b := range m.table {
		if len(b) > 0 {
			out.table[p] = slices.Clone(b)
		}
	}

	return out
}

// aligned returns m itself when it already has alignment a, otherwise a
// realigned copy. The receiver is never modified.
func (m *SparseMatrix[E]) aligned(a Alignment) *SparseMatrix[E] {
	if m.align == a {
		return m
	}
	c := m.Clone()
	c.SwitchAlignment(a)

	return c
}

// Transposed returns a transposed copy.
func (m *SparseMatrix[E]) Transposed() *SparseMatrix[E] {
	c := m.Clone()
	c.Transpose()

	return c
}

// Submatrix copies the block [rowLo, rowHi) × [colLo, colHi).
// MAIN DESCRIPTION:
//   - Copy-based extraction preserving the receiver's alignment.
//
// Implementation:
//   - Stage 1: validate both half-open ranges (empty ranges are legal).
//   - Stage 2: per primary line in range, binary-search the secondary bounds
//     and copy the slice between them with shifted indices.
//
// Errors:
//   - ErrOutOfRange.
//
// Complexity:
//   - Time O(lines * log k + copied), Space O(copied + lines).
func (m *SparseMatrix[E]) Submatrix(rowLo, rowHi, colLo, colHi int) (*SparseMatrix[E], error) {
	if err := ValidateRange(rowLo, rowHi, m.rows); err != nil {
		return nil, sparseErrorf(ctxSubmatrix, rowLo, rowHi, err)
	}
	if err := ValidateRange(colLo, colHi, m.cols); err != nil {
		return nil, sparseErrorf(ctxSubmatrix, colLo, colHi, err)
	}

	return m.submatrix(rowLo, rowHi, colLo, colHi), nil
}

func (m *SparseMatrix[E]) submatrix(rowLo, rowHi, colLo, colHi int) *SparseMatrix[E] {
	out := newSparse(m.r, rowHi-rowLo, colHi-colLo, m.align)
	pLo, pHi, sLo, sHi := rowLo, rowHi, colLo, colHi
	if m.align == AlignCols {
		pLo, pHi, sLo, sHi = colLo, colHi, rowLo, rowHi
	}

	for p := pLo; p < pHi; p++ {
		b := m.table[p]
		from, _ := search(b, sLo)
		to, _ := search(b, sHi)
		if from == to {
			continue
		}
		nb := make([]cell[E], to-from)
		for k := from; k < to; k++ {
			nb[k-from] = cell[E]{idx: b[k].idx - sLo, val: b[k].val}
		}
		out.table[p-pLo] = nb
	}

	return out
}

// Equal reports whether m and o have the same shape and entries.
// Alignment is not compared: o is realigned on a copy when needed.
func (m *SparseMatrix[E]) Equal(o *SparseMatrix[E]) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}

	oa := o.aligned(m.align)
	for p, b := range m.table {
		ob := oa.table[p]
		if len(b) != len(ob) {
			return false
		}
		for k := range b {
			if b[k].idx != ob[k].idx || !m.r.Equal(b[k].val, ob[k].val) {
				return false
			}
		}
	}

	return true
}

// ToDense returns the entries as nested row slices.
func (m *SparseMatrix[E]) ToDense() [][]E {
	out := make([][]E, m.rows)
	for i := range out {
		out[i] = make([]E, m.cols)
		for j := range out[i] {
			out[i][j] = m.r.Zero()
		}
	}
	for p, b := range m.table {
		for _, c := range b {
			i, j := p, c.idx
			if m.align == AlignCols {
				i, j = j, i
			}
			out[i][j] = c.val
		}
	}

	return out
}

// String renders one "[a, b, c]" line per row, values formatted with %v.
// Intended for debugging and examples; not for hot paths.
func (m *SparseMatrix[E]) String() string {
	var b strings.Builder
	for _, row := range m.ToDense() {
		b.WriteString(_fmtRowOpen)
		for j, v := range row {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			fmt.Fprint(&b, v)
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// ---------- layout mutations ----------

// SwitchAlignment physically rebuilds the table around axis a.
// MAIN DESCRIPTION:
//   - Regroups cells by their secondary index. Walking primary lines in
//     increasing order keeps every new bucket sorted without a sort pass.
//
// Complexity:
//   - Time O(nnz + rows + cols), Space O(nnz + dim). No-op if already aligned.
func (m *SparseMatrix[E]) SwitchAlignment(a Alignment) {
	if m.align == a {
		return
	}

	counts := make([]int, m.secondaryLen())
	for _, b := range m.table {
		for _, c := range b {
			counts[c.idx]++
		}
	}
	nt := make([][]cell[E], len(counts))
	for s, n := range counts {
		if n > 0 {
			nt[s] = make([]cell[E], 0, n)
		}
	}
	for p, b := range m.table {
		for _, c := range b {
			nt[c.idx] = append(nt[c.idx], cell[E]{idx: p, val: c.val})
		}
	}

	m.table = nt
	m.align = a
}

// Transpose transposes m in place in O(1): the row table of m is the column
// table of mᵀ, so only the dimensions and the alignment change.
func (m *SparseMatrix[E]) Transpose() {
	m.rows, m.cols = m.cols, m.rows
	m.align = m.align.flip()
}

// ---------- elementary mutations ----------

// MultiplyRow scales row i by r; r == 0 clears the row.
func (m *SparseMatrix[E]) MultiplyRow(i int, r E) error {
	if err := ValidateIndex(i, m.rows); err != nil {
		return sparseErrorf(ctxMulRow, i, -1, err)
	}
	m.multiplyRow(i, r)

	return nil
}

// MultiplyCol scales column j by r; r == 0 clears the column.
func (m *SparseMatrix[E]) MultiplyCol(j int, r E) error {
	if err := ValidateIndex(j, m.cols); err != nil {
		return sparseErrorf(ctxMulCol, -1, j, err)
	}
	m.multiplyCol(j, r)

	return nil
}

// AddRow performs row dst += r * row src.
// Complexity: O(|row src| + |row dst|) after alignment.
func (m *SparseMatrix[E]) AddRow(src, dst int, r E) error {
	if err := ValidateIndex(src, m.rows); err != nil {
		return sparseErrorf(ctxAddRow, src, dst, err)
	}
	if err := ValidateIndex(dst, m.rows); err != nil {
		return sparseErrorf(ctxAddRow, src, dst, err)
	}
	m.addRow(src, dst, r)

	return nil
}

// AddCol performs col dst += r * col src.
func (m *SparseMatrix[E]) AddCol(src, dst int, r E) error {
	if err := ValidateIndex(src, m.cols); err != nil {
		return sparseErrorf(ctxAddCol, src, dst, err)
	}
	if err := ValidateIndex(dst, m.cols); err != nil {
		return sparseErrorf(ctxAddCol, src, dst, err)
	}
	m.addCol(src, dst, r)

	return nil
}

// SwapRows exchanges rows i and j.
func (m *SparseMatrix[E]) SwapRows(i, j int) error {
	if err := ValidateIndex(i, m.rows); err != nil {
		return sparseErrorf(ctxSwapRows, i, j, err)
	}
	if err := ValidateIndex(j, m.rows); err != nil {
		return sparseErrorf(ctxSwapRows, i, j, err)
	}
	m.swapRows(i, j)

	return nil
}

// SwapCols exchanges columns i and j.
func (m *SparseMatrix[E]) SwapCols(i, j int) error {
	if err := ValidateIndex(i, m.cols); err != nil {
		return sparseErrorf(ctxSwapCols, i, j, err)
	}
	if err := ValidateIndex(j, m.cols); err != nil {
		return sparseErrorf(ctxSwapCols, i, j, err)
	}
	m.swapCols(i, j)

	return nil
}

// unchecked variants used by Operation.apply and the eliminator.

func (m *SparseMatrix[E]) multiplyRow(i int, r E) {
	m.SwitchAlignment(AlignRows)
	m.scaleBucket(i, r)
}

func (m *SparseMatrix[E]) multiplyCol(j int, r E) {
	m.SwitchAlignment(AlignCols)
	m.scaleBucket(j, r)
}

func (m *SparseMatrix[E]) addRow(src, dst int, r E) {
	m.SwitchAlignment(AlignRows)
	m.table[dst] = mergeAdd(m.r, m.table[dst], m.table[src], r)
}

func (m *SparseMatrix[E]) addCol(src, dst int, r E) {
	m.SwitchAlignment(AlignCols)
	m.table[dst] = mergeAdd(m.r, m.table[dst], m.table[src], r)
}

func (m *SparseMatrix[E]) swapRows(i, j int) {
	m.SwitchAlignment(AlignRows)
	m.table[i], m.table[j] = m.table[j], m.table[i]
}

func (m *SparseMatrix[E]) swapCols(i, j int) {
	m.SwitchAlignment(AlignCols)
	m.table[i], m.table[j] = m.table[j], m.table[i]
}

// scaleBucket multiplies bucket p by r in place, dropping zero products
// (possible in rings with wrap-around, e.g. Integers[int8]).
func (m *SparseMatrix[E]) scaleBucket(p int, r E) {
	if ring.IsZero(m.r, r) {
		m.table[p] = nil
		return
	}

	b := m.table[p]
	out := b[:0]
	for _, c := range b {
		if v := m.r.Mul(r, c.val); !ring.IsZero(m.r, v) {
			out = append(out, cell[E]{idx: c.idx, val: v})
		}
	}
	m.table[p] = out
}

// mergeAdd returns dst + r*src for two sorted buckets.
// MAIN DESCRIPTION:
//   - Two-pointer merge over strictly increasing indices; cells whose sum
//     is zero are dropped, so the result keeps the bucket invariant.
//
// Behavior highlights:
//   - Allocates a fresh bucket; dst and src are never written, so src == dst
//     (row += r*row) is safe.
//
// Complexity:
//   - Time O(|dst| + |src|), Space O(|dst| + |src|).
func mergeAdd[E any](rg ring.Ring[E], dst, src []cell[E], r E) []cell[E] {
	if len(src) == 0 || ring.IsZero(rg, r) {
		return dst
	}

	out := make([]cell[E], 0, len(dst)+len(src))
	i, j := 0, 0
	for i < len(dst) || j < len(src) {
		switch {
		case j == len(src) || (i < len(dst) && dst[i].idx < src[j].idx):
			out = append(out, dst[i])
			i++
		case i == len(dst) || src[j].idx < dst[i].idx:
			if v := rg.Mul(r, src[j].val); !ring.IsZero(rg, v) {
				out = append(out, cell[E]{idx: src[j].idx, val: v})
			}
			j++
		default: // same index
			if v := rg.Add(dst[i].val, rg.Mul(r, src[j].val)); !ring.IsZero(rg, v) {
				out = append(out, cell[E]{idx: dst[i].idx, val: v})
			}
			i++
			j++
		}
	}

	return out
}
