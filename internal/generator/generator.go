// Package generator composes the random source, Latin square builder, cage
// partitioner, and clue deriver into finished puzzles, gated by uniqueness
// verification with a bounded retry loop.
package generator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jlave-dev/squarewise/internal/cage"
	"github.com/jlave-dev/squarewise/internal/grid"
	"github.com/jlave-dev/squarewise/internal/puzzle"
	"github.com/jlave-dev/squarewise/internal/rng"
	"github.com/jlave-dev/squarewise/internal/solver"
)

var (
	ErrGenerationFailed = errors.New("failed to generate a puzzle with a unique solution")
)

// Generator builds puzzles from a difficulty preset.
type Generator struct {
	options *Options
}

// New returns a Generator with the given options (nil means defaults).
func New(options *Options) *Generator {
	if options == nil {
		options = DefaultOptions()
	}
	return &Generator{options: options}
}

// Generate produces a verified puzzle for the given size and difficulty.
//
// One random source is constructed up front (from the configured seed, or
// time-based when absent) and every attempt continues the same stream rather
// than resetting it, so the whole run is a deterministic function of the
// seed.  Each attempt rebuilds the full pipeline: Latin square, cage layout,
// clues.  For sizes within the verification threshold a candidate must have
// a unique solution or it is discarded.  Exceeding the attempt cap is a hard
// failure; callers decide how to present it.
//
// ctx is consulted between attempts only — a started verification runs to
// completion or its internal two-solutions early exit.
func (g *Generator) Generate(ctx context.Context, size int, difficulty puzzle.Difficulty) (*puzzle.Puzzle, error) {
	preset, err := g.preset(difficulty)
	if err != nil {
		return nil, err
	}

	seed := g.options.Seed
	if seed == "" {
		seed = fmt.Sprintf("%d", time.Now().UnixNano())
	}
	src := rng.NewString(seed)

	verify := g.options.EnsureUnique && size <= g.options.VerifyMaxSize

	for attempt := 0; attempt < g.options.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		p, err := g.build(size, difficulty, seed, preset, src)
		if err != nil {
			return nil, err
		}
		if verify && !solver.HasUniqueSolution(p) {
			continue
		}
		return p, nil
	}
	return nil, fmt.Errorf("%w: size %d, difficulty %s, %d attempts",
		ErrGenerationFailed, size, difficulty, g.options.MaxAttempts)
}

// GenerateSync produces a puzzle without uniqueness verification: lower
// latency, no single-solution guarantee.  The first candidate always wins.
func (g *Generator) GenerateSync(size int, difficulty puzzle.Difficulty) (*puzzle.Puzzle, error) {
	preset, err := g.preset(difficulty)
	if err != nil {
		return nil, err
	}

	seed := g.options.Seed
	if seed == "" {
		seed = fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return g.build(size, difficulty, seed, preset, rng.NewString(seed))
}

// build runs one pipeline pass: solution grid, cage layout, clues, identity.
func (g *Generator) build(size int, difficulty puzzle.Difficulty, seed string, preset puzzle.Preset, src *rng.Source) (*puzzle.Puzzle, error) {
	solution, err := grid.GenerateLatin(size, src)
	if err != nil {
		return nil, err
	}

	cages := cage.Partition(size, src, preset.Bounds(), preset.SingleProb)
	cage.DeriveClues(cages, solution, preset.OpSet())

	return &puzzle.Puzzle{
		ID:         newID(size, difficulty),
		Size:       size,
		Difficulty: difficulty,
		Cages:      cages,
		Solution:   solution,
		Seed:       seed,
	}, nil
}

// preset resolves the difficulty label against the override table when one
// is configured, the built-in table otherwise.
func (g *Generator) preset(d puzzle.Difficulty) (puzzle.Preset, error) {
	if g.options.Presets != nil {
		p, ok := g.options.Presets[d]
		if !ok {
			return puzzle.Preset{}, fmt.Errorf("%w: %q", puzzle.ErrUnknownDifficulty, d)
		}
		return p, nil
	}
	return puzzle.PresetFor(d)
}

// newID combines difficulty, size, a timestamp, and a random suffix.
// IDs are intentionally non-deterministic; the determinism law covers the
// solution, cages, and clues only.
func newID(size int, difficulty puzzle.Difficulty) string {
	return fmt.Sprintf("%s-%dx%d-%d-%s",
		difficulty, size, size, time.Now().UnixMilli(), uuid.NewString()[:8])
}
