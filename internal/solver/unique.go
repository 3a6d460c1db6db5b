package solver

import (
	"github.com/jlave-dev/squarewise/internal/grid"
	"github.com/jlave-dev/squarewise/internal/puzzle"
)

// CountSolutions counts full completions of the puzzle, stopping the instant
// the count reaches limit.  For most sizes exhaustive counting is infeasible,
// so callers only ever distinguish 0, 1, or ≥limit — never an exact total.
func CountSolutions(p *puzzle.Puzzle, limit int) int {
	s := newSearch(p)
	count := 0

	// The recursion returns true to propagate "stop" once the limit is hit,
	// rather than continuing to explore.
	var dfs func(pos int) bool
	dfs = func(pos int) bool {
		if pos == s.size*s.size {
			count++
			return count >= limit
		}
		r, c := pos/s.size, pos%s.size
		for v := 1; v <= s.size; v++ {
			if !s.rowColFree(r, c, v) {
				continue
			}
			s.g[r][c] = v
			if s.cageFeasible(pos) && dfs(pos+1) {
				return true
			}
			s.g[r][c] = grid.EmptyCell
		}
		return false
	}
	dfs(0)
	return count
}

// HasUniqueSolution reports whether the puzzle has exactly one completion.
// The search keeps going after the first solution and exits early at two.
func HasUniqueSolution(p *puzzle.Puzzle) bool {
	return CountSolutions(p, 2) == 1
}
