// Package solver implements the backtracking search shared by solution
// finding, uniqueness verification, and hints, plus the difficulty heuristic.
package solver

import (
	"github.com/jlave-dev/squarewise/internal/cage"
	"github.com/jlave-dev/squarewise/internal/grid"
	"github.com/jlave-dev/squarewise/internal/puzzle"
)

// search carries the mutable state of one backtracking run: a working grid
// mutated with undo-on-backtrack, and a flat cell→cage index built once.
type search struct {
	size   int
	g      grid.Grid
	cages  []cage.Cage
	cageOf []int // pos (row*size+col) → index into cages
}

func newSearch(p *puzzle.Puzzle) *search {
	s := &search{
		size:   p.Size,
		g:      grid.New(p.Size),
		cages:  p.Cages,
		cageOf: make([]int, p.Size*p.Size),
	}
	for i, cg := range p.Cages {
		for _, c := range cg.Cells {
			s.cageOf[c.Row*p.Size+c.Col] = i
		}
	}
	return s
}

// Solve searches for a completion of the puzzle's cage constraints.
// Returns the first solution found, or false if none exists — an expected
// outcome for malformed or adversarial cage configurations, not an error.
func Solve(p *puzzle.Puzzle) (grid.Grid, bool) {
	s := newSearch(p)
	if !s.solve(0) {
		return nil, false
	}
	return s.g.Clone(), true
}

// solve is the single-solution recursion: stop at the first full assignment.
func (s *search) solve(pos int) bool {
	if pos == s.size*s.size {
		return true
	}
	r, c := pos/s.size, pos%s.size
	for v := 1; v <= s.size; v++ {
		if !s.rowColFree(r, c, v) {
			continue
		}
		s.g[r][c] = v
		if s.cageFeasible(pos) && s.solve(pos+1) {
			return true
		}
		s.g[r][c] = grid.EmptyCell
	}
	return false
}

// rowColFree reports whether v appears nowhere else in row r or column c.
func (s *search) rowColFree(r, c, v int) bool {
	for i := 0; i < s.size; i++ {
		if s.g[r][i] == v || s.g[i][c] == v {
			return false
		}
	}
	return true
}

// cageFeasible checks the cage containing pos after a tentative placement.
//
// A fully filled cage is checked exactly.  A partially filled cage gets only
// a conservative bound: the running sum/product of a +/× cage must not
// exceed the target.  That is necessary but not sufficient; -/÷ cages depend
// on both operands and are never partially checked.  The weak pruning is
// intentional — generation timing depends on it.
func (s *search) cageFeasible(pos int) bool {
	cg := &s.cages[s.cageOf[pos]]

	filled := 0
	sum := 0
	product := 1
	for _, c := range cg.Cells {
		v := s.g[c.Row][c.Col]
		if v == grid.EmptyCell {
			continue
		}
		filled++
		sum += v
		product *= v
	}

	if filled == len(cg.Cells) {
		values := make([]int, 0, len(cg.Cells))
		for _, c := range cg.Cells {
			values = append(values, s.g[c.Row][c.Col])
		}
		return cage.ValidateClue(cg.Clue, values)
	}

	switch cg.Clue.Operation {
	case cage.OpAdd:
		return sum <= cg.Clue.Target
	case cage.OpMultiply:
		return product <= cg.Clue.Target
	default:
		// Subtraction and division need both operands; OpNone cages are
		// single cells and hit the full-cage branch above.
		return true
	}
}
