// Package config provides YAML/TOML game configuration loading and
// difficulty presets for the maze game.
package config

import (
	"time"

	"github.com/vovakirdan/maze/internal/core"
)

// MazeConfig contains all configuration for the maze game.
type MazeConfig struct {
	Window   MazeWindow   `yaml:"window" toml:"window"`
	Player   MazePlayer   `yaml:"player" toml:"player"`
	Enemy    MazeEnemy    `yaml:"enemy" toml:"enemy"`
	Bullet   MazeBullet   `yaml:"bullet" toml:"bullet"`
	Treasure MazeTreasure `yaml:"treasure" toml:"treasure"`
	Walls    MazeWalls    `yaml:"walls" toml:"walls"`
	Timing   MazeTiming   `yaml:"timing" toml:"timing"`
	Assets   MazeAssets   `yaml:"assets" toml:"assets"`
}

// MazeWindow defines the playfield (canvas) dimensions.
type MazeWindow struct {
	Title  string `yaml:"title" toml:"title"`
	Width  int    `yaml:"width" toml:"width"`
	Height int    `yaml:"height" toml:"height"`
	FPS    int    `yaml:"fps" toml:"fps"`
}

// MazePlayer defines player parameters.
type MazePlayer struct {
	StartX int `yaml:"start_x" toml:"start_x"`
	StartY int `yaml:"start_y" toml:"start_y"`
	Size   int `yaml:"size" toml:"size"`
	Speed  int `yaml:"speed" toml:"speed"`
	// Movement is clamped to [MinEdge, window-MaxEdge] on both axes.
	MinEdge int `yaml:"min_edge" toml:"min_edge"`
	MaxEdge int `yaml:"max_edge" toml:"max_edge"`
}

// MazeEnemy defines enemy parameters.
type MazeEnemy struct {
	Size          int `yaml:"size" toml:"size"`
	BaseSpeed     int `yaml:"base_speed" toml:"base_speed"`
	SpeedScale    int `yaml:"speed_scale" toml:"speed_scale"`
	SpawnMargin   int `yaml:"spawn_margin" toml:"spawn_margin"`
	SpawnAttempts int `yaml:"spawn_attempts" toml:"spawn_attempts"`
}

// Speed returns the effective enemy speed in pixels per tick.
func (e MazeEnemy) Speed() int {
	return e.BaseSpeed * e.SpeedScale
}

// MazeBullet defines projectile parameters.
type MazeBullet struct {
	Size  int     `yaml:"size" toml:"size"`
	Speed float64 `yaml:"speed" toml:"speed"`
}

// MazeTreasure defines the win target.
type MazeTreasure struct {
	X    int `yaml:"x" toml:"x"`
	Y    int `yaml:"y" toml:"y"`
	Size int `yaml:"size" toml:"size"`
}

// MazeWalls defines the static maze layout.
type MazeWalls struct {
	Color Color      `yaml:"color" toml:"color"`
	Rects []WallRect `yaml:"rects" toml:"rects"`
}

// WallRect is a single wall rectangle.
type WallRect struct {
	X int `yaml:"x" toml:"x"`
	Y int `yaml:"y" toml:"y"`
	W int `yaml:"w" toml:"w"`
	H int `yaml:"h" toml:"h"`
}

// Rect converts the wall to a core rectangle.
func (w WallRect) Rect() core.Rect {
	return core.NewRect(w.X, w.Y, w.W, w.H)
}

// Color is an RGB triple as written in config files.
type Color struct {
	R uint8 `yaml:"r" toml:"r"`
	G uint8 `yaml:"g" toml:"g"`
	B uint8 `yaml:"b" toml:"b"`
}

// RGB converts to the core color triple.
func (c Color) RGB() core.RGB {
	return core.RGB{R: c.R, G: c.G, B: c.B}
}

// MazeTiming defines cooldowns and end-of-game holds, in milliseconds.
type MazeTiming struct {
	RespawnCooldownMS int `yaml:"respawn_cooldown_ms" toml:"respawn_cooldown_ms"`
	WinHoldMS         int `yaml:"win_hold_ms" toml:"win_hold_ms"`
	LoseHoldMS        int `yaml:"lose_hold_ms" toml:"lose_hold_ms"`
}

// RespawnCooldown returns the enemy respawn cooldown.
func (t MazeTiming) RespawnCooldown() time.Duration {
	return time.Duration(t.RespawnCooldownMS) * time.Millisecond
}

// WinHold returns how long the win screen stays up.
func (t MazeTiming) WinHold() time.Duration {
	return time.Duration(t.WinHoldMS) * time.Millisecond
}

// LoseHold returns how long the lose screen stays up.
func (t MazeTiming) LoseHold() time.Duration {
	return time.Duration(t.LoseHoldMS) * time.Millisecond
}

// MazeAssets names the media files consumed by the window renderer.
// Paths are relative to Dir unless absolute.
type MazeAssets struct {
	Dir         string `yaml:"dir" toml:"dir"`
	Hero        string `yaml:"hero" toml:"hero"`
	Treasure    string `yaml:"treasure" toml:"treasure"`
	Enemy       string `yaml:"enemy" toml:"enemy"`
	Bullet      string `yaml:"bullet" toml:"bullet"`
	Background  string `yaml:"background" toml:"background"`
	Music       string `yaml:"music" toml:"music"`
	WinSound    string `yaml:"win_sound" toml:"win_sound"`
	ImpactSound string `yaml:"impact_sound" toml:"impact_sound"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)
