package puzzle

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jlave-dev/squarewise/internal/cage"
)

// Preset is the read-only generation configuration for one difficulty:
// which operations clues may use, cage size bounds, and the probability of
// forcing single-cell cages.
type Preset struct {
	Ops         []cage.Operation `yaml:"ops"`
	MinCageSize int              `yaml:"minCageSize"`
	MaxCageSize int              `yaml:"maxCageSize"`
	SingleProb  float64          `yaml:"singleProb"`
}

// OpSet returns the preset's allowed operations as a set.
func (p Preset) OpSet() cage.OpSet {
	return cage.NewOpSet(p.Ops...)
}

// Bounds returns the preset's cage size bounds.
func (p Preset) Bounds() cage.Bounds {
	return cage.Bounds{Min: p.MinCageSize, Max: p.MaxCageSize}
}

// presets is the fixed difficulty table.  Larger cages and more operations
// raise difficulty; single-cell cages lower it.
var presets = map[Difficulty]Preset{
	Beginner: {
		Ops:         []cage.Operation{cage.OpAdd, cage.OpSubtract},
		MinCageSize: 1, MaxCageSize: 2,
		SingleProb: 0.25,
	},
	Easy: {
		Ops:         []cage.Operation{cage.OpAdd, cage.OpSubtract, cage.OpMultiply},
		MinCageSize: 1, MaxCageSize: 3,
		SingleProb: 0.15,
	},
	Medium: {
		Ops:         []cage.Operation{cage.OpAdd, cage.OpSubtract, cage.OpMultiply, cage.OpDivide},
		MinCageSize: 2, MaxCageSize: 3,
		SingleProb: 0.1,
	},
	Hard: {
		Ops:         []cage.Operation{cage.OpAdd, cage.OpSubtract, cage.OpMultiply, cage.OpDivide},
		MinCageSize: 2, MaxCageSize: 4,
		SingleProb: 0.05,
	},
	Expert: {
		Ops:         []cage.Operation{cage.OpAdd, cage.OpSubtract, cage.OpMultiply, cage.OpDivide},
		MinCageSize: 3, MaxCageSize: 5,
		SingleProb: 0,
	},
}

// PresetFor returns the preset for a difficulty label.
func PresetFor(d Difficulty) (Preset, error) {
	p, ok := presets[d]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %q", ErrUnknownDifficulty, d)
	}
	return p, nil
}

// Difficulties returns the known difficulty labels in ascending order.
func Difficulties() []Difficulty {
	return []Difficulty{Beginner, Easy, Medium, Hard, Expert}
}

// LoadPresets reads difficulty preset overrides from a YAML file and merges
// them over the built-in table, returning the effective table.  Unknown
// difficulty keys are rejected so typos fail loudly.
func LoadPresets(path string) (map[Difficulty]Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read presets: %w", err)
	}
	var overrides map[Difficulty]Preset
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("parse presets: %w", err)
	}

	merged := make(map[Difficulty]Preset, len(presets))
	for d, p := range presets {
		merged[d] = p
	}
	for d, p := range overrides {
		if _, ok := presets[d]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownDifficulty, d)
		}
		merged[d] = p
	}
	return merged, nil
}
