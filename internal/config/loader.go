package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Source describes where a loaded configuration came from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

// LoadMaze loads maze configuration.
// Search order: customPath -> ~/.maze/configs/maze.yaml -> ./configs/maze.yaml -> embedded default
func LoadMaze(customPath string) (MazeConfig, error) {
	cfg, _, err := LoadMazeWithSource(customPath)
	return cfg, err
}

// LoadMazeWithSource is LoadMaze that also reports which file was used.
// Files are decoded on top of the defaults, so partial files only
// override the keys they set.
func LoadMazeWithSource(customPath string) (MazeConfig, Source, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadMazeFile(customPath)
		if err != nil {
			return DefaultMazeConfig(), SourceCustom, err
		}
		return cfg, SourceCustom, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("maze.yaml"); userCfgPath != "" {
		if cfg, err := loadMazeFile(userCfgPath); err == nil {
			return cfg, SourceUser, nil
		}
	}

	// Try local configs directory
	if cfg, err := loadMazeFile(filepath.Join("configs", "maze.yaml")); err == nil {
		return cfg, SourceLocal, nil
	}

	// Use embedded default YAML
	cfg := DefaultMazeConfig()
	if err := yaml.Unmarshal(defaultMazeYAML, &cfg); err != nil {
		return DefaultMazeConfig(), SourceBuiltin, nil
	}
	return cfg, SourceEmbedded, nil
}

// loadMazeFile reads one config file, choosing the decoder by extension,
// and validates the result.
func loadMazeFile(path string) (MazeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return MazeConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := ParseMaze(data, filepath.Ext(path))
	if err != nil {
		return MazeConfig{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseMaze decodes a maze config from data in the format named by ext
// (".yaml", ".yml" or ".toml") over the defaults and validates it.
func ParseMaze(data []byte, ext string) (MazeConfig, error) {
	cfg := DefaultMazeConfig()
	switch strings.ToLower(ext) {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, err
		}
	case ".yaml", ".yml", "":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	default:
		return cfg, fmt.Errorf("unsupported config format %q", ext)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".maze", "configs", filename)
}

// Validate checks that the configuration describes a playable maze.
func (c MazeConfig) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Window.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps must be positive, got %d", c.Window.FPS))
	}
	if c.Player.Size <= 0 || c.Enemy.Size <= 0 || c.Bullet.Size <= 0 || c.Treasure.Size <= 0 {
		errs = append(errs, errors.New("entity sizes must be positive"))
	}
	if c.Player.Speed < 0 || c.Enemy.Speed() < 0 || c.Bullet.Speed < 0 {
		errs = append(errs, errors.New("speeds must not be negative"))
	}
	if c.Enemy.SpawnAttempts < 0 {
		errs = append(errs, fmt.Errorf("spawn attempts must not be negative, got %d", c.Enemy.SpawnAttempts))
	}
	if c.Timing.RespawnCooldownMS < 0 || c.Timing.WinHoldMS < 0 || c.Timing.LoseHoldMS < 0 {
		errs = append(errs, errors.New("timings must not be negative"))
	}
	for i, w := range c.Walls.Rects {
		if w.W <= 0 || w.H <= 0 {
			errs = append(errs, fmt.Errorf("wall %d has non-positive size %dx%d", i, w.W, w.H))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid maze config: %w", errors.Join(errs...))
	}
	return nil
}

// ParsePreset converts a preset name to a DifficultyPreset.
// The empty string selects the normal preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch DifficultyPreset(strings.ToLower(strings.TrimSpace(name))) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	}
	return DifficultyNormal, fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", name)
}

// ApplyMazePreset modifies the config based on a difficulty preset.
// Normal leaves the config untouched.
func ApplyMazePreset(cfg *MazeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Enemy.SpeedScale = max(1, cfg.Enemy.SpeedScale*3/5)
		cfg.Timing.RespawnCooldownMS = cfg.Timing.RespawnCooldownMS * 3 / 2
	case DifficultyHard:
		cfg.Enemy.SpeedScale = cfg.Enemy.SpeedScale * 7 / 5
		cfg.Timing.RespawnCooldownMS = cfg.Timing.RespawnCooldownMS / 2
	}
}
