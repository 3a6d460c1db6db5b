// Package validator implements play-time move checking over a puzzle and a
// caller-owned progress grid.  It never mutates either.
package validator

import (
	"github.com/jlave-dev/squarewise/internal/cage"
	"github.com/jlave-dev/squarewise/internal/grid"
	"github.com/jlave-dev/squarewise/internal/puzzle"
)

// Result reports the outcome of a candidate move.
type Result struct {
	Valid      bool        `json:"valid"`
	Conflicts  []grid.Cell `json:"conflicts"`
	CageErrors []grid.Cell `json:"cageErrors"`
}

// Validator checks moves against one puzzle's constraints.
type Validator struct {
	puzzle *puzzle.Puzzle
}

// New returns a Validator for the given puzzle.
func New(p *puzzle.Puzzle) *Validator {
	return &Validator{puzzle: p}
}

// IsValidMove checks placing value at cell on the progress grid.
//
// Conflicts are other cells in the same row or column already holding the
// value.  Cage errors appear only when the tentative placement fills the
// cell's cage completely and the exact arithmetic fails — partially filled
// cages never report errors.
func (v *Validator) IsValidMove(g grid.Grid, cell grid.Cell, value int) Result {
	res := Result{Valid: true}
	n := v.puzzle.Size

	for i := 0; i < n; i++ {
		if i != cell.Col && g[cell.Row][i] == value {
			res.Conflicts = append(res.Conflicts, grid.Cell{Row: cell.Row, Col: i})
		}
		if i != cell.Row && g[i][cell.Col] == value {
			res.Conflicts = append(res.Conflicts, grid.Cell{Row: i, Col: cell.Col})
		}
	}

	if cg := v.puzzle.CageFor(cell); cg != nil {
		values := make([]int, 0, len(cg.Cells))
		full := true
		for _, c := range cg.Cells {
			val := g[c.Row][c.Col]
			if c == cell {
				val = value
			}
			if val == grid.EmptyCell {
				full = false
				break
			}
			values = append(values, val)
		}
		if full && !cage.ValidateClue(cg.Clue, values) {
			res.CageErrors = append(res.CageErrors, cg.Cells...)
		}
	}

	res.Valid = len(res.Conflicts) == 0 && len(res.CageErrors) == 0
	return res
}

// FindAllErrors returns every filled cell whose value disagrees with the
// solution — the strict per-cell check behind "show mistakes" mode.
func (v *Validator) FindAllErrors(g grid.Grid) []grid.Cell {
	var errs []grid.Cell
	for r := 0; r < v.puzzle.Size; r++ {
		for c := 0; c < v.puzzle.Size; c++ {
			val := g[r][c]
			if val != grid.EmptyCell && val != v.puzzle.Solution[r][c] {
				errs = append(errs, grid.Cell{Row: r, Col: c})
			}
		}
	}
	return errs
}

// IsComplete reports whether the progress grid matches the solution exactly.
func (v *Validator) IsComplete(g grid.Grid) bool {
	for r := 0; r < v.puzzle.Size; r++ {
		for c := 0; c < v.puzzle.Size; c++ {
			if g[r][c] != v.puzzle.Solution[r][c] {
				return false
			}
		}
	}
	return true
}

// IsFull reports whether every cell is filled, correct or not.
func (v *Validator) IsFull(g grid.Grid) bool {
	for r := 0; r < v.puzzle.Size; r++ {
		for c := 0; c < v.puzzle.Size; c++ {
			if g[r][c] == grid.EmptyCell {
				return false
			}
		}
	}
	return true
}

// Progress returns the fill percentage of the progress grid.
func (v *Validator) Progress(g grid.Grid) float64 {
	total := v.puzzle.Size * v.puzzle.Size
	filled := 0
	for r := 0; r < v.puzzle.Size; r++ {
		for c := 0; c < v.puzzle.Size; c++ {
			if g[r][c] != grid.EmptyCell {
				filled++
			}
		}
	}
	return float64(filled) / float64(total) * 100
}
