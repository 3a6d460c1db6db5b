package cage

import (
	"github.com/jlave-dev/squarewise/internal/grid"
	"github.com/jlave-dev/squarewise/internal/rng"
)

// Bounds limits cage sizes during partitioning.
type Bounds struct {
	Min int
	Max int
}

// Partition carves the full size×size cell space into connected cages.
//
// Cells are visited in row-major order; each uncovered cell seeds a new
// region that grows by repeatedly claiming a uniformly random orthogonal
// neighbor of the region until a per-region target size is reached or no
// unclaimed neighbor remains.  A region trapped against already-claimed
// cells stays smaller than its target — accepted, not an error.
//
// With probability singleProb a region's target is forced to 1, which is how
// presets inject easy single-cell cages.  Clues are left zero-valued here;
// DeriveClues fills them from the solution.
func Partition(size int, src *rng.Source, bounds Bounds, singleProb float64) []Cage {
	claimed := make([]bool, size*size)
	var cages []Cage

	for pos := 0; pos < size*size; pos++ {
		if claimed[pos] {
			continue
		}

		target := 1
		if !src.Bool(singleProb) {
			target = src.IntN(bounds.Min, bounds.Max)
		}

		seed := grid.Cell{Row: pos / size, Col: pos % size}
		claimed[pos] = true
		cells := []grid.Cell{seed}

		for len(cells) < target {
			candidates := frontier(cells, claimed, size)
			if len(candidates) == 0 {
				break // trapped against claimed cells
			}
			next := rng.Pick(src, candidates)
			claimed[next.Row*size+next.Col] = true
			cells = append(cells, next)
		}

		cages = append(cages, Cage{ID: len(cages), Cells: cells})
	}

	return cages
}

// frontier returns the deduplicated unclaimed orthogonal neighbors of every
// cell in the region, in deterministic row-major discovery order so that the
// subsequent Pick draw is reproducible.
func frontier(cells []grid.Cell, claimed []bool, size int) []grid.Cell {
	seen := make(map[grid.Cell]bool, len(cells)*2)
	var out []grid.Cell
	for _, c := range cells {
		for _, nb := range neighbors(c, size) {
			if claimed[nb.Row*size+nb.Col] || seen[nb] {
				continue
			}
			seen[nb] = true
			out = append(out, nb)
		}
	}
	return out
}

// neighbors returns the in-bounds orthogonal neighbors of c.
func neighbors(c grid.Cell, size int) []grid.Cell {
	var buf [4]grid.Cell
	n := 0
	if c.Row > 0 {
		buf[n] = grid.Cell{Row: c.Row - 1, Col: c.Col}
		n++
	}
	if c.Row < size-1 {
		buf[n] = grid.Cell{Row: c.Row + 1, Col: c.Col}
		n++
	}
	if c.Col > 0 {
		buf[n] = grid.Cell{Row: c.Row, Col: c.Col - 1}
		n++
	}
	if c.Col < size-1 {
		buf[n] = grid.Cell{Row: c.Row, Col: c.Col + 1}
		n++
	}
	return buf[:n]
}
