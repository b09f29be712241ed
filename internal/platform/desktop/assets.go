// Package desktop runs the maze in a native window with ebiten. Sprites
// and sounds come from the asset directory; anything that fails to load
// falls back to flat rectangles or silence.
package desktop

import (
	"fmt"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/vovakirdan/maze/internal/config"
	"github.com/vovakirdan/maze/internal/core"
)

// Sprites holds the decoded images. A nil field is drawn as a rectangle.
type Sprites struct {
	Hero       *ebiten.Image
	Enemy      *ebiten.Image
	Bullet     *ebiten.Image
	Treasure   *ebiten.Image
	Background *ebiten.Image
}

// Fallback fill colors for sprites that could not be loaded.
var (
	heroColor     = color.RGBA{60, 140, 230, 255}
	enemyColor    = color.RGBA{220, 60, 60, 255}
	bulletColor   = color.RGBA{240, 220, 60, 255}
	treasureColor = color.RGBA{255, 200, 0, 255}
	backColor     = color.RGBA{20, 24, 28, 255}
)

// LoadSprites reads every image named in assets. Missing files are
// logged and left nil.
func LoadSprites(assets config.MazeAssets, logger *log.Logger) Sprites {
	load := func(name string) *ebiten.Image {
		if name == "" {
			return nil
		}
		img, err := loadImage(assetPath(assets.Dir, name))
		if err != nil {
			if logger != nil {
				logger.Warn("cannot load image", "error", err)
			}
			return nil
		}
		return img
	}
	return Sprites{
		Hero:       load(assets.Hero),
		Enemy:      load(assets.Enemy),
		Bullet:     load(assets.Bullet),
		Treasure:   load(assets.Treasure),
		Background: load(assets.Background),
	}
}

func loadImage(path string) (*ebiten.Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("desktop: load %s: %w", path, err)
	}
	return img, nil
}

func assetPath(dir, name string) string {
	if filepath.IsAbs(name) || dir == "" {
		return name
	}
	return filepath.Join(dir, name)
}

// rgba converts a core color to an opaque color.RGBA.
func rgba(c core.RGB) color.RGBA {
	return color.RGBA{c.R, c.G, c.B, 255}
}
