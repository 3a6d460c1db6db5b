package puzzle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jlave-dev/squarewise/internal/cage"
)

func TestPresetFor_KnownLabels(t *testing.T) {
	for _, d := range Difficulties() {
		p, err := PresetFor(d)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, p.MinCageSize, 1)
		assert.GreaterOrEqual(t, p.MaxCageSize, p.MinCageSize)
		assert.NotEmpty(t, p.Ops)
	}
}

func TestPresetFor_Unknown(t *testing.T) {
	_, err := PresetFor("nightmare")
	assert.ErrorIs(t, err, ErrUnknownDifficulty)
}

func TestLoadPresets_Override(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "presets.yaml")
	content := `
easy:
  ops: ["+", "×"]
  minCageSize: 2
  maxCageSize: 4
  singleProb: 0.5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	merged, err := LoadPresets(path)
	require.NoError(t, err)

	easy := merged[Easy]
	assert.Equal(t, []cage.Operation{cage.OpAdd, cage.OpMultiply}, easy.Ops)
	assert.Equal(t, 2, easy.MinCageSize)
	assert.Equal(t, 4, easy.MaxCageSize)
	assert.Equal(t, 0.5, easy.SingleProb)

	// Untouched difficulties keep their built-in values.
	hard, _ := PresetFor(Hard)
	assert.Equal(t, hard, merged[Hard])
}

func TestLoadPresets_UnknownKey(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "presets.yaml")
	require.NoError(t, os.WriteFile(path, []byte("nightmare: {minCageSize: 1, maxCageSize: 2}"), 0o644))

	_, err := LoadPresets(path)
	assert.ErrorIs(t, err, ErrUnknownDifficulty)
}

func TestLoadPresets_MissingFile(t *testing.T) {
	_, err := LoadPresets(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
