package generator

import (
	"github.com/jlave-dev/squarewise/internal/puzzle"
)

const (
	// DefaultMaxAttempts caps the retry loop; exceeding it is a hard failure.
	DefaultMaxAttempts = 50

	// DefaultVerifyMaxSize bounds uniqueness verification.  The search is
	// exponential in the worst case, so larger grids skip the gate.
	DefaultVerifyMaxSize = 6
)

// Options configures puzzle generation behavior.
type Options struct {
	// Seed makes generation reproducible ("" = time-based).
	Seed string

	// MaxAttempts bounds the retry loop for uniqueness failures.
	MaxAttempts int

	// VerifyMaxSize is the largest grid size that gets uniqueness
	// verification; above it candidates are accepted unverified.
	VerifyMaxSize int

	// EnsureUnique toggles the uniqueness gate for sizes within
	// VerifyMaxSize.
	EnsureUnique bool

	// Presets overrides the built-in difficulty table (nil = built-in).
	Presets map[puzzle.Difficulty]puzzle.Preset
}

// DefaultOptions returns standard generator options.
func DefaultOptions() *Options {
	return &Options{
		Seed:          "",
		MaxAttempts:   DefaultMaxAttempts,
		VerifyMaxSize: DefaultVerifyMaxSize,
		EnsureUnique:  true,
	}
}
