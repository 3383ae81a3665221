// SPDX-License-Identifier: MIT

// Package matrix implements exact matrix elimination over an arbitrary
// Euclidean ring (see package ring).
//
// The matrix package provides:
//
//   - SparseMatrix[E], an alignment-switchable sparse table with O(1)
//     in-place transpose, two-pointer row/column merges and bounds-checked
//     accessors, plus exact Mul/Add/Sub/Neg/Scale kernels.
//   - Operation[E], the elementary row/column operations, with inverse,
//     transpose dual and determinant contribution.
//   - Eliminate, reducing a matrix to RowEchelon, ColEchelon, RowHermite,
//     ColHermite, Diagonal or Smith normal form while logging every applied
//     operation.
//   - Result[E], deriving rank, determinant, inverse, kernel, image,
//     transition matrices and the invariant factors from the logs.
//
// For a result with final matrix M the logs satisfy P·A·Q = M, where
// P = Left() replays the row operations on the identity and Q = Right()
// replays the column operations.
//
// Example (Smith form over Z):
//
//	a, _ := matrix.NewFromRows[int](ring.Integers[int]{}, [][]int{{2, 4}, {6, 8}})
//	res, _ := matrix.SmithForm(a)
//	fmt.Println(res.Diagonal()) // [2 4]
//
// Errors are package-level sentinels matched with errors.Is; user-facing
// conditions never panic. Diagnostics are opt-in through WithTrace.
package matrix
