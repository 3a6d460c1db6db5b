// Package puzzle defines the immutable puzzle value handed to play-time
// layers, the difficulty preset table, and full-puzzle validation.
package puzzle

import (
	"errors"
	"fmt"

	"github.com/jlave-dev/squarewise/internal/cage"
	"github.com/jlave-dev/squarewise/internal/grid"
)

// Difficulty labels a generation preset.
type Difficulty string

const (
	Beginner Difficulty = "beginner"
	Easy     Difficulty = "easy"
	Medium   Difficulty = "medium"
	Hard     Difficulty = "hard"
	Expert   Difficulty = "expert"
)

var (
	ErrUnknownDifficulty = errors.New("unknown difficulty")
	ErrBadSolution       = errors.New("solution is not a Latin square")
	ErrBadCoverage       = errors.New("cages do not cover the grid exactly")
	ErrBadClue           = errors.New("clue does not match solution values")
)

// Puzzle is the full serialized puzzle shape consumed by save/resume and
// rendering layers.  Constructed once by the generator; never mutated —
// play-time code keeps its own separate progress grid.
type Puzzle struct {
	ID         string      `json:"id"`
	Size       int         `json:"size"`
	Difficulty Difficulty  `json:"difficulty"`
	Cages      []cage.Cage `json:"cages"`
	Solution   grid.Grid   `json:"solution"`
	Seed       string      `json:"seed,omitempty"`
}

// CageFor returns the cage containing c, or nil if none does.
func (p *Puzzle) CageFor(c grid.Cell) *cage.Cage {
	for i := range p.Cages {
		for _, cc := range p.Cages[i].Cells {
			if cc == c {
				return &p.Cages[i]
			}
		}
	}
	return nil
}

// Validate checks the puzzle invariants end to end: Latin solution, exact
// non-overlapping cage coverage, and clue/solution agreement for every cage.
func Validate(p *Puzzle) error {
	if p.Solution.Size() != p.Size || !p.Solution.IsLatin() {
		return ErrBadSolution
	}
	if err := cage.CheckCoverage(p.Cages, p.Size); err != nil {
		return fmt.Errorf("%w: %v", ErrBadCoverage, err)
	}
	for _, cg := range p.Cages {
		values := make([]int, len(cg.Cells))
		for i, c := range cg.Cells {
			values[i] = p.Solution.Get(c)
		}
		if !cage.ValidateClue(cg.Clue, values) {
			return fmt.Errorf("%w: cage %d", ErrBadClue, cg.ID)
		}
	}
	return nil
}
