package generator

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jlave-dev/squarewise/internal/puzzle"
	"github.com/jlave-dev/squarewise/internal/solver"
)

func TestGenerate_EndToEnd(t *testing.T) {
	g := New(&Options{
		Seed:          "e2e",
		MaxAttempts:   DefaultMaxAttempts,
		VerifyMaxSize: DefaultVerifyMaxSize,
		EnsureUnique:  true,
	})
	p, err := g.Generate(context.Background(), 4, puzzle.Beginner)
	require.NoError(t, err)

	require.NoError(t, puzzle.Validate(p))
	assert.Equal(t, 4, p.Size)
	assert.Equal(t, puzzle.Beginner, p.Difficulty)
	assert.Equal(t, "e2e", p.Seed)
	assert.True(t, solver.HasUniqueSolution(p))
}

func TestGenerate_AllDifficulties(t *testing.T) {
	for _, d := range puzzle.Difficulties() {
		d := d
		t.Run(string(d), func(t *testing.T) {
			// Large sum-only cages make uniqueness rarer on small grids, so
			// give the retry loop more room than the default cap.
			g := New(&Options{
				Seed:          "all-" + string(d),
				MaxAttempts:   400,
				VerifyMaxSize: DefaultVerifyMaxSize,
				EnsureUnique:  true,
			})
			p, err := g.Generate(context.Background(), 4, d)
			require.NoError(t, err)
			require.NoError(t, puzzle.Validate(p))
		})
	}
}

func TestGenerate_DeterminismLaw(t *testing.T) {
	opts := func() *Options {
		return &Options{
			Seed:          "determinism",
			MaxAttempts:   DefaultMaxAttempts,
			VerifyMaxSize: DefaultVerifyMaxSize,
			EnsureUnique:  true,
		}
	}
	a, err := New(opts()).Generate(context.Background(), 5, puzzle.Medium)
	require.NoError(t, err)
	b, err := New(opts()).Generate(context.Background(), 5, puzzle.Medium)
	require.NoError(t, err)

	// IDs differ (timestamp + random suffix); everything else is identical.
	assert.Equal(t, a.Solution, b.Solution)
	assert.Equal(t, a.Cages, b.Cages)
	assert.Equal(t, a.Seed, b.Seed)
}

func TestGenerate_UnknownDifficulty(t *testing.T) {
	g := New(nil)
	_, err := g.Generate(context.Background(), 4, "nightmare")
	assert.ErrorIs(t, err, puzzle.ErrUnknownDifficulty)
}

func TestGenerate_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New(&Options{Seed: "c", MaxAttempts: 5, VerifyMaxSize: 6, EnsureUnique: true}).
		Generate(ctx, 4, puzzle.Easy)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerateSync_SkipsVerification(t *testing.T) {
	g := New(&Options{Seed: "sync", MaxAttempts: 1, VerifyMaxSize: 6, EnsureUnique: true})
	p, err := g.GenerateSync(6, puzzle.Expert)
	require.NoError(t, err)
	require.NoError(t, puzzle.Validate(p))
}

func TestGenerate_LargeSizeSkipsGate(t *testing.T) {
	// Size above the verification threshold: first candidate is accepted.
	g := New(&Options{Seed: "big", MaxAttempts: 1, VerifyMaxSize: 6, EnsureUnique: true})
	p, err := g.Generate(context.Background(), 7, puzzle.Hard)
	require.NoError(t, err)
	require.NoError(t, puzzle.Validate(p))
}

func TestGenerate_IDFormat(t *testing.T) {
	g := New(&Options{Seed: "id", MaxAttempts: DefaultMaxAttempts, VerifyMaxSize: DefaultVerifyMaxSize, EnsureUnique: true})
	p, err := g.Generate(context.Background(), 4, puzzle.Easy)
	require.NoError(t, err)

	parts := strings.Split(p.ID, "-")
	require.GreaterOrEqual(t, len(parts), 4)
	assert.Equal(t, "easy", parts[0])
	assert.Equal(t, "4x4", parts[1])
}

func TestGenerate_PresetOverride(t *testing.T) {
	base, err := puzzle.PresetFor(puzzle.Easy)
	require.NoError(t, err)
	base.SingleProb = 1 // force every cage to a single cell

	g := New(&Options{
		Seed:          "override",
		MaxAttempts:   DefaultMaxAttempts,
		VerifyMaxSize: DefaultVerifyMaxSize,
		EnsureUnique:  true,
		Presets:       map[puzzle.Difficulty]puzzle.Preset{puzzle.Easy: base},
	})
	p, err := g.Generate(context.Background(), 3, puzzle.Easy)
	require.NoError(t, err)
	assert.Len(t, p.Cages, 9)
	for _, cg := range p.Cages {
		assert.Len(t, cg.Cells, 1)
	}
}
