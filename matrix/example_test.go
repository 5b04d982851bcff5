package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/zigzag/matrix"
)

// ExampleSample prints the fixed driver grid and its plain total.
func ExampleSample() {
	m := matrix.Sample()
	fmt.Print(m)
	fmt.Println("total:", m.Total())
	// Output:
	// [1, 2, 3]
	// [4, 5, 6]
	// [7, 8, 9]
	// total: 45
}

// ExampleFromRows shows how ragged input is rejected.
func ExampleFromRows() {
	_, err := matrix.FromRows([][]int{{1, 2}, {3}})
	fmt.Println(err)
	// Output:
	// ValidateRows: row 1 has 1 values, want 2: matrix: matrix is not square
}
