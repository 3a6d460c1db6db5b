package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jlave-dev/squarewise/internal/generator"
	"github.com/jlave-dev/squarewise/internal/puzzle"
	"github.com/jlave-dev/squarewise/internal/solver"
)

var (
	genSize       int
	genDifficulty string
	genSeed       string
	genCount      int
	genOutput     string
	genPresets    string
	genUnique     bool
	genShowGrid   bool
)

func init() {
	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate puzzles",
		Long: `Generate one or more puzzles at a given size and difficulty, emitted as JSON.

Examples:
  squarewise gen --size 4 --difficulty beginner
  squarewise gen -s 6 -d hard --seed daily-2024-06-01
  squarewise gen -n 10 -d medium -o puzzles.json`,
		RunE: runGen,
	}

	genCmd.Flags().IntVarP(&genSize, "size", "s", 4, "Grid size (2-9)")
	genCmd.Flags().StringVarP(&genDifficulty, "difficulty", "d", "easy", "Difficulty: beginner, easy, medium, hard, expert")
	genCmd.Flags().StringVar(&genSeed, "seed", "", "Seed for reproducible puzzles (empty = time-based)")
	genCmd.Flags().IntVarP(&genCount, "number", "n", 1, "Number of puzzles to generate")
	genCmd.Flags().StringVarP(&genOutput, "output", "o", "", "Output file (default stdout)")
	genCmd.Flags().StringVar(&genPresets, "presets", "", "YAML file overriding the difficulty preset table")
	genCmd.Flags().BoolVar(&genUnique, "unique", true, "Verify solution uniqueness (sizes up to the verification threshold)")
	genCmd.Flags().BoolVar(&genShowGrid, "show-solution", false, "Print the solution grid to stderr")

	rootCmd.AddCommand(genCmd)
}

func runGen(cmd *cobra.Command, args []string) error {
	opts := generator.DefaultOptions()
	opts.Seed = genSeed
	opts.EnsureUnique = genUnique

	if genPresets != "" {
		presets, err := puzzle.LoadPresets(genPresets)
		if err != nil {
			return err
		}
		opts.Presets = presets
	}

	difficulty := puzzle.Difficulty(genDifficulty)
	gen := generator.New(opts)

	puzzles := make([]*puzzle.Puzzle, 0, genCount)
	for i := 0; i < genCount; i++ {
		start := time.Now()
		p, err := gen.Generate(context.Background(), genSize, difficulty)
		if err != nil {
			return fmt.Errorf("puzzle %d/%d: %w", i+1, genCount, err)
		}
		slog.Debug("generated",
			"id", p.ID,
			"cages", len(p.Cages),
			"score", solver.Score(p),
			"elapsed", time.Since(start))
		if genShowGrid {
			fmt.Fprint(os.Stderr, p.Solution)
		}
		puzzles = append(puzzles, p)
	}

	out := os.Stdout
	if genOutput != "" {
		f, err := os.Create(genOutput)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if genCount == 1 {
		return enc.Encode(puzzles[0])
	}
	return enc.Encode(puzzles)
}
