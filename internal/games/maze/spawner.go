package maze

import (
	"math/rand"

	"github.com/vovakirdan/maze/internal/core"
)

// Spawner places new enemies where they do not start inside a wall or
// on top of the player.
type Spawner struct {
	WorldW, WorldH int
	Margin         int // candidates are drawn from [Margin, world-Margin]
	Attempts       int
	Size           int
	Speed          int
}

// Spawn returns a new enemy. Each attempt draws a position and direction
// from rng and is accepted if it overlaps neither a wall nor the player.
// When every attempt fails the enemy is placed with its top-left corner at
// the middle of the world, without any overlap check.
func (s Spawner) Spawn(rng *rand.Rand, walls []core.Rect, player core.Rect) *Enemy {
	for range s.Attempts {
		x := randRange(rng, s.Margin, s.WorldW-s.Margin)
		y := randRange(rng, s.Margin, s.WorldH-s.Margin)
		dx, dy := randSign(rng), randSign(rng)

		e := NewEnemy(x, y, s.Size, s.Speed, dx, dy, s.WorldW, s.WorldH)
		r := e.Bounds()
		if !r.IntersectsAny(walls) && !r.Intersects(player) {
			return e
		}
	}
	return NewEnemy(s.WorldW/2, s.WorldH/2, s.Size, s.Speed, randSign(rng), randSign(rng), s.WorldW, s.WorldH)
}

// randRange returns a uniform integer in [lo, hi]. An empty range yields lo.
func randRange(rng *rand.Rand, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// randSign returns -1 or 1 with equal probability.
func randSign(rng *rand.Rand) int {
	if rng.Intn(2) == 0 {
		return -1
	}
	return 1
}
