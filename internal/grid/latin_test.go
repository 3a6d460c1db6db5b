package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jlave-dev/squarewise/internal/rng"
)

func TestGenerateLatin_Invariant(t *testing.T) {
	for size := 2; size <= 9; size++ {
		for seed := uint32(0); seed < 20; seed++ {
			g, err := GenerateLatin(size, rng.New(seed))
			require.NoError(t, err)
			assert.True(t, g.IsLatin(), "size %d seed %d:\n%s", size, seed, g)
		}
	}
}

func TestGenerateLatin_Deterministic(t *testing.T) {
	a, err := GenerateLatin(6, rng.NewString("repeat"))
	require.NoError(t, err)
	b, err := GenerateLatin(6, rng.NewString("repeat"))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerateLatin_SeedsDiffer(t *testing.T) {
	a, _ := GenerateLatin(6, rng.New(1))
	b, _ := GenerateLatin(6, rng.New(2))
	assert.NotEqual(t, a, b)
}

func TestGenerateLatin_RejectsTinySizes(t *testing.T) {
	_, err := GenerateLatin(1, rng.New(0))
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestIsLatin_Detectors(t *testing.T) {
	good := Grid{{1, 2}, {2, 1}}
	assert.True(t, good.IsLatin())

	dupRow := Grid{{1, 1}, {2, 2}}
	assert.False(t, dupRow.IsLatin())

	dupCol := Grid{{1, 2}, {1, 2}}
	assert.False(t, dupCol.IsLatin())

	empty := Grid{{1, 0}, {0, 1}}
	assert.False(t, empty.IsLatin())
}

func TestClone_Independent(t *testing.T) {
	g := Grid{{1, 2}, {2, 1}}
	c := g.Clone()
	c[0][0] = 9
	assert.Equal(t, 1, g[0][0])
}
