package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jlave-dev/squarewise/internal/puzzle"
	"github.com/jlave-dev/squarewise/internal/server"
)

var (
	serveAddr    string
	servePresets string
)

func init() {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the puzzle HTTP API",
		RunE:  runServe,
	}

	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", ":8080", "Listen address")
	serveCmd.Flags().StringVar(&servePresets, "presets", "", "YAML file overriding the difficulty preset table")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	var presets map[puzzle.Difficulty]puzzle.Preset
	if servePresets != "" {
		loaded, err := puzzle.LoadPresets(servePresets)
		if err != nil {
			return err
		}
		presets = loaded
	}
	return server.New(slog.Default(), presets).ListenAndServe(serveAddr)
}
