package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/maze/internal/core"
	"github.com/vovakirdan/maze/internal/games/maze"
	"github.com/vovakirdan/maze/internal/platform/tui"
	"github.com/vovakirdan/maze/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a run in the terminal.

Controls:
  Arrows         - Move
  Space/Click    - Fire at the mouse pointer
  Ctrl+S         - Save a text screenshot
  Q/Esc/Ctrl+C   - Quit

Difficulty options:
  easy   - Slower cyborg, longer respawn
  normal - Original speed and respawn (default)
  hard   - Faster cyborg, shorter respawn

Examples:
  maze play
  maze play --difficulty easy
  maze play --config ./my-maze.toml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom maze config (YAML or TOML)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newFileLogger(flagLogPath)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("run history disabled", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		store = nil
	}

	var saver tui.RunSaver
	if store != nil {
		saver = store
		defer store.Close()
	}

	if err := tui.Run(maze.NewWithConfig(cfg), saver, logger, runtime); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
