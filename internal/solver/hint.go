package solver

import (
	"github.com/jlave-dev/squarewise/internal/grid"
	"github.com/jlave-dev/squarewise/internal/puzzle"
)

// Hint scans the progress grid's empty cells in row-major order and returns
// the first naked single: a cell with exactly one value passing the row and
// column check.  Cage feasibility is deliberately ignored — this is a cheap
// heuristic, not a solve.  If no naked single exists the first empty cell is
// returned as a best-effort hint; nil means the grid is full.
func Hint(p *puzzle.Puzzle, progress grid.Grid) *grid.Cell {
	var firstEmpty *grid.Cell

	for r := 0; r < p.Size; r++ {
		for c := 0; c < p.Size; c++ {
			if progress[r][c] != grid.EmptyCell {
				continue
			}
			if firstEmpty == nil {
				firstEmpty = &grid.Cell{Row: r, Col: c}
			}
			if _, ok := soleCandidate(progress, p.Size, r, c); ok {
				return &grid.Cell{Row: r, Col: c}
			}
		}
	}
	return firstEmpty
}

// soleCandidate returns the only value legal in (r,c) by row/column
// constraints, if exactly one exists.
func soleCandidate(g grid.Grid, size, r, c int) (int, bool) {
	last := 0
	count := 0
	for v := 1; v <= size; v++ {
		if rowColHas(g, size, r, c, v) {
			continue
		}
		count++
		last = v
		if count > 1 {
			return 0, false
		}
	}
	return last, count == 1
}

func rowColHas(g grid.Grid, size, r, c, v int) bool {
	for i := 0; i < size; i++ {
		if g[r][i] == v || g[i][c] == v {
			return true
		}
	}
	return false
}
