// maze is a maze shooter that runs in the terminal or in a desktop window.
//
// Usage:
//
//	maze play               - Play in the terminal
//	maze window             - Play in a desktop window with sprites and sound
//	maze list               - List available games
//	maze scores             - Print run history
//	maze board              - Browse run history interactively
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.maze/runs.db)
//	--log <path>    - Set log file for terminal play (default: ~/.maze/maze.log)
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/maze/internal/config"

	// Import games to register them
	_ "github.com/vovakirdan/maze/internal/games/maze"
)

const gameID = "maze"

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogPath string

	// Shared by play and window
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "maze",
	Short: "Maze - shoot the cyborg, grab the treasure",
	Long: `Maze is an arcade shooter. Walk the hero through the maze with the
arrow keys, shoot the roaming cyborg and reach the treasure. Touching a
wall or the cyborg ends the run.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  list     - Show registered games
  scores   - Print run history
  board    - Browse run history

Examples:
  maze play
  maze play --difficulty hard
  maze window --assets ./assets
  maze scores`,
	SilenceUsage:      true,
	PersistentPreRunE: loadEnv,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.maze/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.maze/maze.log", "Log file for terminal play")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
}

// loadEnv reads .env from the working directory and fills in flags the
// user did not set. A missing .env is not an error.
func loadEnv(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	envFlag(cmd, "db", "MAZE_DB")
	envFlag(cmd, "log", "MAZE_LOG")
	envFlag(cmd, "assets", "MAZE_ASSETS")
	return nil
}

func envFlag(cmd *cobra.Command, name, env string) {
	f := cmd.Flags().Lookup(name)
	if f == nil || f.Changed {
		return
	}
	if v, ok := os.LookupEnv(env); ok && v != "" {
		//nolint:errcheck // string flags accept any value
		f.Value.Set(v)
	}
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// newFileLogger writes to path so log lines never land on the alt screen.
// The returned close func is safe to call once.
func newFileLogger(path string) (*log.Logger, func(), error) {
	path = expandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          gameID,
	})
	return logger, func() { f.Close() }, nil
}

// newStderrLogger is used when the terminal is free for output.
func newStderrLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          gameID,
	})
}

// loadConfig resolves the config file and applies the difficulty preset.
func loadConfig(logger *log.Logger) (config.MazeConfig, error) {
	cfg, src, err := config.LoadMazeWithSource(flagConfig)
	if err != nil {
		return config.MazeConfig{}, err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.MazeConfig{}, err
	}
	config.ApplyMazePreset(&cfg, preset)
	logger.Info("config loaded", "source", src, "difficulty", preset)
	return cfg, nil
}
