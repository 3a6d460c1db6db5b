package grid

import (
	"fmt"

	"github.com/jlave-dev/squarewise/internal/rng"
)

// Transposition count bounds for value relabeling.
const (
	minTranspositions = 5
	maxTranspositions = 15
)

// GenerateLatin builds a valid size×size Latin square from the random source.
//
// It starts from the canonical cyclic pattern ((row+col) mod n)+1 and applies,
// in strict order: a Fisher–Yates shuffle of rows, a Fisher–Yates shuffle of
// columns, and a random number of value transpositions that each swap every
// occurrence of two values grid-wide.  Each step maps Latin squares to Latin
// squares, so the invariant holds without re-verification.
//
// The order of operations is part of the seed contract: reordering them
// changes the output for a given seed and breaks reproducibility for
// daily-challenge callers.
func GenerateLatin(size int, src *rng.Source) (Grid, error) {
	if size < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}

	g := New(size)
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			g[r][c] = (r+c)%size + 1
		}
	}

	// Row shuffle: permuting whole rows preserves the Latin property.
	rng.Shuffle(src, g)

	// Column shuffle: permute column indices, then rebuild each row.
	cols := make([]int, size)
	for i := range cols {
		cols[i] = i
	}
	rng.Shuffle(src, cols)
	for r := 0; r < size; r++ {
		row := make([]int, size)
		for c, from := range cols {
			row[c] = g[r][from]
		}
		g[r] = row
	}

	// Value relabeling: each transposition is a global bijection on values.
	// Drawing the same value twice is a no-op but still advances the stream.
	swaps := src.IntN(minTranspositions, maxTranspositions)
	for i := 0; i < swaps; i++ {
		a := src.IntN(1, size)
		b := src.IntN(1, size)
		for r := 0; r < size; r++ {
			for c := 0; c < size; c++ {
				switch g[r][c] {
				case a:
					g[r][c] = b
				case b:
					g[r][c] = a
				}
			}
		}
	}

	return g, nil
}
