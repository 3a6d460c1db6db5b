package solver

import (
	"github.com/jlave-dev/squarewise/internal/cage"
	"github.com/jlave-dev/squarewise/internal/puzzle"
)

// opWeights reflects how much reasoning each operation tends to demand.
var opWeights = map[cage.Operation]int{
	cage.OpAdd:      5,
	cage.OpSubtract: 10,
	cage.OpMultiply: 15,
	cage.OpDivide:   20,
}

// Score returns a heuristic difficulty estimate for a puzzle.  It is used to
// sanity-check generator presets, never to gate generation acceptance.
//
// Base score grows with grid size; each operation adds a fixed weight; large
// cages subtract (more constraint leverage makes them easier) and single-cell
// cages subtract further (they are trivially easy).
func Score(p *puzzle.Puzzle) int {
	score := p.Size * 10

	totalCells := 0
	singles := 0
	for _, cg := range p.Cages {
		score += opWeights[cg.Clue.Operation]
		totalCells += len(cg.Cells)
		if len(cg.Cells) == 1 {
			singles++
		}
	}

	if len(p.Cages) > 0 {
		avg := float64(totalCells) / float64(len(p.Cages))
		score -= int(2 * avg)
	}
	score -= 5 * singles

	return score
}
