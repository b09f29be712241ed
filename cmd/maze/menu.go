package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/maze/internal/config"
	"github.com/vovakirdan/maze/internal/core"
	"github.com/vovakirdan/maze/internal/games/maze"
	"github.com/vovakirdan/maze/internal/platform/tui"
	"github.com/vovakirdan/maze/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start menu with difficulty choice and run history",
	Long: `Start the game in interactive menu mode.

Pick a difficulty to start a run. After the run ends you return to the
menu. Tab opens the run history.

Examples:
  maze menu
  maze menu --fps 30
  maze menu --config ./my-maze.yaml`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom maze config (YAML or TOML)")
	rootCmd.AddCommand(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newFileLogger(flagLogPath)
	if err != nil {
		return err
	}
	defer closeLog()

	base, src, err := config.LoadMazeWithSource(flagConfig)
	if err != nil {
		return err
	}
	logger.Info("config loaded", "source", src)

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

	width, height := 80, 24
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

	difficulty := config.DifficultyNormal
	for {
		res, err := tui.RunMenu("Maze", difficulty, runtime)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}
		runtime = res.Config

		switch res.Item.Choice {
		case tui.MenuChoicePlay:
			difficulty = res.Item.Difficulty
			cfg := base
			config.ApplyMazePreset(&cfg, difficulty)
			logger.Info("difficulty selected", "difficulty", difficulty)
			if err := tui.Run(maze.NewWithConfig(cfg), saver, logger, runtime); err != nil {
				return fmt.Errorf("run game: %w", err)
			}

		case tui.MenuChoiceScoreboard:
			if store == nil {
				continue
			}
			if err := tui.RunScoreboard(store, gameID, "Maze", runtime.ScreenW, runtime.ScreenH); err != nil {
				return fmt.Errorf("scoreboard: %w", err)
			}

		default:
			return nil
		}
	}
}
