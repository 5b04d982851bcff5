// SPDX-License-Identifier: MIT

package matrix

// Square is a concrete row-major n×n grid of ints.
//   - n is the side length (n ≥ 0; zero only through FromRows of an empty set).
//   - data is a flat buffer of length n*n in row-major order (offset = i*n + j).
type Square struct {
	n    int   // side length
	data []int // contiguous row-major storage (len == n*n)
}

// sampleRows is the fixed grid the zigzag driver runs on by default.
var sampleRows = [][]int{
	{1, 2, 3},
	{4, 5, 6},
	{7, 8, 9},
}
