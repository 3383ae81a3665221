// Package smith is an exact matrix elimination engine over Euclidean rings:
// row echelon, Hermite, diagonal and Smith normal forms, with every
// elementary operation logged so the transformation matrices can be rebuilt.
//
// What is inside?
//
//	ring/    the Ring[E] capability interface, Bezout/GCD helpers and the
//	         concrete rings Z (machine and big ints), Q, Z/p and K[x]
//	matrix/  SparseMatrix[E], elementary Operation[E], the staged
//	         eliminator and Result[E] (rank, determinant, inverse, kernel,
//	         image, transition matrices, invariant factors)
//
// Why exact?
//
//   - No floating point anywhere: every entry is a ring element.
//   - Transforms are first-class: P·A·Q = M holds for every result.
//   - Deterministic pivot rules: the same input always yields the same log.
//
// Quick example (invariant factors of a 2×2 integer matrix):
//
//	a, _ := matrix.NewFromRows[int](ring.Integers[int]{}, [][]int{{2, 4}, {6, 8}})
//	res, _ := matrix.SmithForm(a)
//	factors, _ := res.InvariantFactors() // [2 4]
//
//	go get github.com/katalvlaran/smith
package smith
