package config

import (
	_ "embed"
)

//go:embed defaults/maze.yaml
var defaultMazeYAML []byte

// DefaultMazeConfig returns the default maze configuration.
// It mirrors defaults/maze.yaml and is used when the embedded file cannot
// be parsed.
func DefaultMazeConfig() MazeConfig {
	return MazeConfig{
		Window: MazeWindow{
			Title:  "Maze",
			Width:  1200,
			Height: 700,
			FPS:    60,
		},
		Player: MazePlayer{
			StartX:  120,
			StartY:  120,
			Size:    65,
			Speed:   4,
			MinEdge: 5,
			MaxEdge: 70,
		},
		Enemy: MazeEnemy{
			Size:          65,
			BaseSpeed:     2,
			SpeedScale:    5,
			SpawnMargin:   100,
			SpawnAttempts: 20,
		},
		Bullet: MazeBullet{
			Size:  20,
			Speed: 18,
		},
		Treasure: MazeTreasure{
			X:    1000,
			Y:    150,
			Size: 65,
		},
		Walls: MazeWalls{
			Color: Color{R: 0, G: 255, B: 0},
			Rects: DefaultWalls(),
		},
		Timing: MazeTiming{
			RespawnCooldownMS: 20000,
			WinHoldMS:         5000,
			LoseHoldMS:        3000,
		},
		Assets: MazeAssets{
			Dir:         "assets",
			Hero:        "hero.png",
			Treasure:    "treasure.png",
			Enemy:       "cyborg.png",
			Bullet:      "bullet.png",
			Background:  "background.jpg",
			Music:       "jungles.ogg",
			WinSound:    "money.ogg",
			ImpactSound: "kick.ogg",
		},
	}
}

// DefaultWalls returns the fixed 14-wall maze layout.
func DefaultWalls() []WallRect {
	return []WallRect{
		// outer frame
		{X: 100, Y: 100, W: 1000, H: 20},
		{X: 100, Y: 580, W: 1000, H: 20},
		{X: 100, Y: 100, W: 20, H: 500},
		{X: 1080, Y: 100, W: 20, H: 500},
		// inner segments
		{X: 300, Y: 150, W: 300, H: 20},
		{X: 300, Y: 150, W: 20, H: 200},
		{X: 600, Y: 300, W: 200, H: 20},
		{X: 600, Y: 300, W: 20, H: 150},
		{X: 450, Y: 450, W: 200, H: 20},
		{X: 450, Y: 450, W: 20, H: 80},
		{X: 800, Y: 200, W: 20, H: 200},
		{X: 200, Y: 350, W: 200, H: 20},
		{X: 900, Y: 400, W: 20, H: 180},
		{X: 700, Y: 500, W: 150, H: 20},
	}
}
