package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/maze/internal/core"
	"github.com/vovakirdan/maze/internal/games/maze"
	"github.com/vovakirdan/maze/internal/platform/desktop"
	"github.com/vovakirdan/maze/internal/storage"
)

var flagAssets string

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start a run in a desktop window with sprites, music and sound.

Images and sounds are read from the asset directory. Missing images are
drawn as flat rectangles and missing sounds stay silent.

Controls:
  Arrows        - Move
  Click/Space   - Fire at the mouse pointer
  Q/Esc         - Quit

Examples:
  maze window
  maze window --assets ./assets --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom maze config (YAML or TOML)")
	windowCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	windowCmd.Flags().StringVar(&flagAssets, "assets", "", "Asset directory (overrides the config)")
}

func runWindow(_ *cobra.Command, _ []string) error {
	logger := newStderrLogger()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}
	if flagAssets != "" {
		cfg.Assets.Dir = expandHome(flagAssets)
	}

	opts := desktop.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  cfg.Window.Width,
			ScreenH:  cfg.Window.Height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Logger: logger,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("run history disabled", "error", err)
	} else {
		opts.Store = store
		defer store.Close()
	}

	if err := desktop.Run(maze.NewWithConfig(cfg), opts); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}
