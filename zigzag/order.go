package zigzag

// step is one planned visit: the cell and the diagonal it was scheduled on.
type step struct {
	Coord
	diag int
}

// diagonalSpan returns the first row index and cell count of anti-diagonal d
// in an n×n grid. Cells on d have rows in [start, start+count).
func diagonalSpan(n, d int) (start, count int) {
	if d < n {
		return 0, d + 1
	}

	return d - n + 1, 2*n - d - 1
}

// Diagonal returns the cells of anti-diagonal d in Classic visiting order:
// even d runs row-descending, odd d runs row-ascending.
// Returns nil when n ≤ 0 or d is outside [0, 2n-2].
//
// Complexity: O(min(d+1, 2n-1-d)).
func Diagonal(n, d int) []Coord {
	if n <= 0 || d < 0 || d > 2*n-2 {
		return nil
	}
	start, count := diagonalSpan(n, d)
	cells := make([]Coord, count)
	for i := 0; i < count; i++ {
		row := start + i
		if d%2 == 0 {
			row = start + count - 1 - i
		}
		cells[i] = Coord{Row: row, Col: d - row}
	}

	return cells
}

// Order returns the full Classic zigzag order for an n×n grid:
// every cell exactly once, diagonal by diagonal.
// Returns an empty slice for n ≤ 0.
//
// Complexity: O(n²) time and memory.
func Order(n int) []Coord {
	if n <= 0 {
		return []Coord{}
	}
	out := make([]Coord, 0, n*n)
	for d := 0; d <= 2*n-2; d++ {
		out = append(out, Diagonal(n, d)...)
	}

	return out
}

// plan builds the visit schedule for the chosen mode.
func plan(n int, mode Mode) []step {
	if mode == Legacy {
		return legacyPlan(n)
	}
	steps := make([]step, 0, n*n)
	for d := 0; d <= 2*n-2; d++ {
		for _, c := range Diagonal(n, d) {
			steps = append(steps, step{Coord: c, diag: d})
		}
	}

	return steps
}

// legacyPlan reproduces the historical walk. Even diagonals schedule
// nothing; odd diagonal d schedules cell (start+1, d-start-1) count times,
// ignoring the per-cell index entirely.
func legacyPlan(n int) []step {
	var steps []step
	for d := 0; d <= 2*n-2; d++ {
		if d%2 == 0 {
			continue
		}
		start, count := diagonalSpan(n, d)
		row := start + 1
		for i := 0; i < count; i++ {
			steps = append(steps, step{Coord: Coord{Row: row, Col: d - row}, diag: d})
		}
	}

	return steps
}
