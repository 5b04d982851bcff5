// Package zigzag walks a square grid one anti-diagonal at a time and
// accumulates a signed sum: primes count negatively, everything else as is.
//
// 🚀 What is a zigzag traversal?
//
//	Cells (row, col) with the same row+col form an anti-diagonal d.
//	The walk visits d = 0 … 2n-2 and flips direction on each one:
//	  • even d: bottom-left → top-right (row descending)
//	  • odd d:  top-right → bottom-left (row ascending)
//
//	    [1, 2, 3]
//	    [4, 5, 6]     order: 1 2 4 7 5 3 6 8 9
//	    [7, 8, 9]
//
// ✨ Key features:
//   - Classic mode: every cell visited exactly once (default).
//   - Legacy mode: bug-for-bug replay of an older, defective walk that
//     skips even diagonals and re-reads a single cell on odd ones.
//   - Pluggable primality (WithClassifier) and per-cell hook (WithOnVisit).
//
// ⚙️ Usage:
//
//	sum, err := zigzag.Sum(matrix.Sample())            // 11
//	sum, err = zigzag.Sum(m, zigzag.WithMode(zigzag.Legacy))
//
// Errors:
//   - ErrNilMatrix       — nil grid.
//   - ErrOptionViolation — invalid option value (unknown mode, nil classifier).
//
// A coordinate that leaves the grid mid-walk means the order generator is
// broken; Traverse panics with an error wrapping matrix.ErrOutOfRange.
//
// Complexity: O(n²) visits; each prime check is O(√|v|).
package zigzag
