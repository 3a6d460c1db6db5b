// Package grid holds the cell and grid primitives shared by generation,
// solving, and play-time validation.
package grid

import (
	"errors"
	"fmt"
	"strings"
)

// EmptyCell marks an unfilled grid cell.
const EmptyCell = 0

var (
	ErrInvalidSize = errors.New("grid size must be at least 2")
	ErrNotLatin    = errors.New("grid is not a Latin square")
)

// Cell identifies a grid position. Value type, immutable once constructed.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Grid is a size×size matrix of values in [0, size], 0 meaning empty.
// A solution grid never contains 0.
type Grid [][]int

// New returns an empty size×size grid.
func New(size int) Grid {
	g := make(Grid, size)
	for r := range g {
		g[r] = make([]int, size)
	}
	return g
}

// Size returns the grid dimension.
func (g Grid) Size() int {
	return len(g)
}

// Get returns the value at c.
func (g Grid) Get(c Cell) int {
	return g[c.Row][c.Col]
}

// Clone returns an independent copy of the grid.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for r := range g {
		out[r] = make([]int, len(g[r]))
		copy(out[r], g[r])
	}
	return out
}

// IsLatin reports whether every row and column is a permutation of 1..size.
// Uses one bitmask per unit; bit i represents value i+1.
func (g Grid) IsLatin() bool {
	n := len(g)
	full := uint(1)<<n - 1

	for r := 0; r < n; r++ {
		var mask uint
		for c := 0; c < n; c++ {
			v := g[r][c]
			if v < 1 || v > n {
				return false
			}
			mask |= 1 << (v - 1)
		}
		if mask != full {
			return false
		}
	}
	for c := 0; c < n; c++ {
		var mask uint
		for r := 0; r < n; r++ {
			v := g[r][c]
			if v < 1 || v > n {
				return false
			}
			mask |= 1 << (v - 1)
		}
		if mask != full {
			return false
		}
	}
	return true
}

// String renders the grid row by row, '.' for empty cells.
func (g Grid) String() string {
	var sb strings.Builder
	for r := range g {
		for c, v := range g[r] {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if v == EmptyCell {
				sb.WriteByte('.')
			} else {
				fmt.Fprintf(&sb, "%d", v)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
