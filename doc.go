// Package zigzag is the module root for signed zigzag traversal over square
// integer grids.
//
// 🚀 What is in here?
//
//	A small library plus a driver that walks an n×n grid one anti-diagonal
//	at a time, alternating direction, and sums the cells with every prime
//	negated:
//		• primes/   — trial-division primality and the Classifier type
//		• matrix/   — Square, a row-major n×n int grid with safe accessors
//		• zigzag/   — visiting order (Order, Diagonal) and the signed walk
//		• config/   — YAML run configuration for the driver
//		• cmd/zigzag — cobra command that prints "Zigzag sum = <n>"
//
// Quick ASCII example:
//
//	[1, 2, 3]
//	[4, 5, 6]    visit: 1 2 4 7 5 3 6 8 9
//	[7, 8, 9]    sum:   1-2+4-7-5-3+6+8+9 = 11
//
//	go run github.com/katalvlaran/zigzag/cmd/zigzag
package zigzag
