package maze

import (
	"math"

	"github.com/vovakirdan/maze/internal/core"
)

// SpriteID names the image a renderer should draw for an entity.
type SpriteID int

const (
	SpriteHero SpriteID = iota
	SpriteEnemy
	SpriteBullet
	SpriteTreasure
	SpriteWall
)

// String returns the sprite name.
func (s SpriteID) String() string {
	switch s {
	case SpriteHero:
		return "hero"
	case SpriteEnemy:
		return "enemy"
	case SpriteBullet:
		return "bullet"
	case SpriteTreasure:
		return "treasure"
	case SpriteWall:
		return "wall"
	default:
		return "unknown"
	}
}

// Entity is anything drawn on the playfield.
type Entity interface {
	Bounds() core.Rect
	Advance()
	Sprite() SpriteID
}

// Player is the hero. It moves only in response to input.
type Player struct {
	X, Y  int
	Size  int
	Speed int

	// Allowed top-left range is [MinEdge, world-MaxEdge] on each axis.
	MinEdge int
	MaxEdge int
}

// Bounds returns the player's rectangle.
func (p *Player) Bounds() core.Rect {
	return core.NewRect(p.X, p.Y, p.Size, p.Size)
}

// Advance is a no-op: the player has no velocity of its own.
func (p *Player) Advance() {}

// Sprite returns the hero sprite.
func (p *Player) Sprite() SpriteID { return SpriteHero }

// Move displaces the player by Speed for every held direction and clamps
// the result into the allowed range for a worldW x worldH playfield.
func (p *Player) Move(in core.InputFrame, worldW, worldH int) {
	if in.Has(core.ActionLeft) {
		p.X -= p.Speed
	}
	if in.Has(core.ActionRight) {
		p.X += p.Speed
	}
	if in.Has(core.ActionUp) {
		p.Y -= p.Speed
	}
	if in.Has(core.ActionDown) {
		p.Y += p.Speed
	}
	p.X = clampEdge(p.X, p.MinEdge, worldW-p.MaxEdge)
	p.Y = clampEdge(p.Y, p.MinEdge, worldH-p.MaxEdge)
}

// clampEdge clamps v into [lo, hi]. A playfield too small for the margins
// pins v to lo.
func clampEdge(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return core.Clamp(v, lo, hi)
}

// Center returns the player's center point.
func (p *Player) Center() core.Point {
	cx, cy := p.Bounds().Center()
	return core.Point{X: cx, Y: cy}
}

// Fire creates a bullet centered on the player and heading for target at
// the given speed. A target at the player's exact center divides by one
// instead of zero, which leaves the bullet at rest.
func (p *Player) Fire(target core.Point, size int, speed float64) *Bullet {
	c := p.Center()
	dx := float64(target.X - c.X)
	dy := float64(target.Y - c.Y)
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		dist = 1
	}
	return &Bullet{
		X:    float64(c.X - size/2),
		Y:    float64(c.Y - size/2),
		VX:   dx / dist * speed,
		VY:   dy / dist * speed,
		Size: size,
	}
}

// Enemy roams the playfield in a straight diagonal and bounces off its edges.
type Enemy struct {
	X, Y   int
	Size   int
	Speed  int
	DX, DY int // each -1 or 1

	worldW, worldH int
}

// NewEnemy creates an enemy bouncing inside a worldW x worldH playfield.
func NewEnemy(x, y, size, speed, dx, dy, worldW, worldH int) *Enemy {
	return &Enemy{X: x, Y: y, Size: size, Speed: speed, DX: dx, DY: dy, worldW: worldW, worldH: worldH}
}

// Bounds returns the enemy's rectangle.
func (e *Enemy) Bounds() core.Rect {
	return core.NewRect(e.X, e.Y, e.Size, e.Size)
}

// Advance moves the enemy one step and flips each axis that reached an
// edge. Both axes can flip in the same step near a corner.
func (e *Enemy) Advance() {
	e.X += e.Speed * e.DX
	e.Y += e.Speed * e.DY

	r := e.Bounds()
	if r.Right() >= e.worldW || r.Left() <= 0 {
		e.DX = -e.DX
	}
	if r.Bottom() >= e.worldH || r.Top() <= 0 {
		e.DY = -e.DY
	}
}

// Sprite returns the enemy sprite.
func (e *Enemy) Sprite() SpriteID { return SpriteEnemy }

// Bullet is a projectile. Position is kept in floating point so slow
// diagonal shots do not drift.
type Bullet struct {
	X, Y   float64
	VX, VY float64
	Size   int
}

// Bounds returns the bullet's rectangle, truncated to whole pixels.
func (b *Bullet) Bounds() core.Rect {
	return core.NewRect(int(b.X), int(b.Y), b.Size, b.Size)
}

// Advance moves the bullet by its velocity.
func (b *Bullet) Advance() {
	b.X += b.VX
	b.Y += b.VY
}

// Sprite returns the bullet sprite.
func (b *Bullet) Sprite() SpriteID { return SpriteBullet }

// Offscreen reports whether the bullet lies entirely outside a w x h window.
// Touching an edge still counts as on screen.
func (b *Bullet) Offscreen(w, h int) bool {
	r := b.Bounds()
	return r.Right() < 0 || r.Left() > w || r.Bottom() < 0 || r.Top() > h
}

// Wall is a static solid rectangle.
type Wall struct {
	Rect  core.Rect
	Color core.RGB
}

// Bounds returns the wall rectangle.
func (w Wall) Bounds() core.Rect { return w.Rect }

// Advance is a no-op.
func (w Wall) Advance() {}

// Sprite returns the wall sprite.
func (w Wall) Sprite() SpriteID { return SpriteWall }

// Treasure is the win target.
type Treasure struct {
	Rect core.Rect
}

// Bounds returns the treasure rectangle.
func (t Treasure) Bounds() core.Rect { return t.Rect }

// Advance is a no-op.
func (t Treasure) Advance() {}

// Sprite returns the treasure sprite.
func (t Treasure) Sprite() SpriteID { return SpriteTreasure }

var (
	_ Entity = (*Player)(nil)
	_ Entity = (*Enemy)(nil)
	_ Entity = (*Bullet)(nil)
	_ Entity = Wall{}
	_ Entity = Treasure{}
)
