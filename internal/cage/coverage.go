package cage

import (
	"errors"
	"fmt"

	"github.com/jlave-dev/squarewise/internal/grid"
)

var (
	ErrCellUncovered = errors.New("cell belongs to no cage")
	ErrCellDoubled   = errors.New("cell belongs to more than one cage")
	ErrDisconnected  = errors.New("cage cells are not orthogonally connected")
)

// CheckCoverage asserts that the cages partition the size×size cell space
// exactly: every cell in exactly one cage, every cage 4-connected.
//
// This is a verification utility for generator output and tests, not a
// runtime guard — hot paths trust the partitioner's invariants.
func CheckCoverage(cages []Cage, size int) error {
	owner := make([]int, size*size)
	for i := range owner {
		owner[i] = -1
	}

	for _, cg := range cages {
		for _, c := range cg.Cells {
			pos := c.Row*size + c.Col
			if owner[pos] != -1 {
				return fmt.Errorf("%w: cell (%d,%d) in cages %d and %d",
					ErrCellDoubled, c.Row, c.Col, owner[pos], cg.ID)
			}
			owner[pos] = cg.ID
		}
		if !connected(cg.Cells, size) {
			return fmt.Errorf("%w: cage %d", ErrDisconnected, cg.ID)
		}
	}

	for pos, id := range owner {
		if id == -1 {
			return fmt.Errorf("%w: cell (%d,%d)", ErrCellUncovered, pos/size, pos%size)
		}
	}
	return nil
}

// connected reports whether cells form a single 4-connected region,
// using a BFS flood fill from the first cell.
func connected(cells []grid.Cell, size int) bool {
	if len(cells) == 0 {
		return false
	}
	inRegion := make(map[grid.Cell]bool, len(cells))
	for _, c := range cells {
		inRegion[c] = true
	}

	visited := map[grid.Cell]bool{cells[0]: true}
	queue := []grid.Cell{cells[0]}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, nb := range neighbors(c, size) {
			if inRegion[nb] && !visited[nb] {
				visited[nb] = true
				queue = append(queue, nb)
			}
		}
	}
	return len(visited) == len(cells)
}
