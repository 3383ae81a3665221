// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"math/big"
	"os"

	"github.com/katalvlaran/smith/matrix"
	"github.com/katalvlaran/smith/ring"
)

// ExampleSmithForm computes the invariant factors of a small integer matrix.
func ExampleSmithForm() {
	a, _ := matrix.NewFromRows[int](ring.Integers[int]{}, [][]int{
		{2, 4},
		{6, 8},
	})

	res, _ := matrix.SmithForm(a)
	fmt.Print(res.Matrix())
	fmt.Println("diagonal:", res.Diagonal())

	factors, _ := res.InvariantFactors()
	fmt.Println("invariant factors:", factors)

	// Output:
	// [2, 0]
	// [0, 4]
	// diagonal: [2 4]
	// invariant factors: [2 4]
}

// ExampleEliminate shows the transformation matrices P and Q with P·A·Q = M.
func ExampleEliminate() {
	a, _ := matrix.NewFromRows[int](ring.Integers[int]{}, [][]int{
		{1, 2},
		{3, 4},
	})

	res, _ := matrix.Eliminate(a, matrix.RowHermite)
	fmt.Print("M =\n", res.Matrix())

	pa, _ := matrix.Mul(res.Left(), a)
	fmt.Println("P·A == M:", pa.Equal(res.Matrix()))

	det, _ := res.Determinant()
	fmt.Println("det:", det)

	// Output:
	// M =
	// [1, 0]
	// [0, 2]
	// P·A == M: true
	// det: -2
}

// ExampleResult_KernelMatrix finds an integer basis of the null space.
func ExampleResult_KernelMatrix() {
	a, _ := matrix.NewFromRows[int](ring.Integers[int]{}, [][]int{
		{1, 2, 3},
		{2, 4, 6},
	})

	res, _ := matrix.SmithForm(a)
	z, _ := res.KernelMatrix()
	az, _ := matrix.Mul(a, z)

	fmt.Println("rank:", res.Rank(), "nullity:", res.Nullity())
	fmt.Println("A·Z is zero:", az.IsZero())

	// Output:
	// rank: 1 nullity: 2
	// A·Z is zero: true
}

// ExampleInverse inverts a rational matrix exactly.
func ExampleInverse() {
	a, _ := matrix.NewFromRows[*big.Rat](ring.Rationals{}, [][]*big.Rat{
		{ring.Rat(2, 1), ring.Rat(1, 1)},
		{ring.Rat(1, 1), ring.Rat(1, 1)},
	})

	inv, _ := matrix.Inverse(a)
	fmt.Print(inv)

	// Output:
	// [1/1, -1/1]
	// [-1/1, 2/1]
}

// ExampleWithTraceWriter prints every phase boundary and elementary operation.
func ExampleWithTraceWriter() {
	a, _ := matrix.NewFromRows[int](ring.Integers[int]{}, [][]int{
		{1, 2},
		{3, 4},
	})

	_, _ = matrix.Eliminate(a, matrix.RowEchelon, matrix.WithTraceWriter(os.Stdout))

	// Output:
	// rowEchelon: start
	// rowEchelon #1: AddRow(0 -> 1, -3)
	// rowEchelon #2: MulRow(1, -1)
	// rowEchelon: done
}
