package maze

import (
	"time"

	"github.com/vovakirdan/maze/internal/core"
)

// Snapshot is a read-only copy of everything a renderer needs for one
// frame. It shares no memory with the game.
type Snapshot struct {
	Tick      uint64
	Outcome   core.Outcome
	Aborted   bool
	Score     int
	Kills     int
	Shots     int
	RespawnIn time.Duration

	WorldW, WorldH int

	Player   core.Rect
	Treasure core.Rect
	Enemies  []core.Rect
	Bullets  []core.Rect
	Walls    []Wall
	Aim      core.Point

	// HasKill and LastKill describe the pending respawn timer.
	HasKill  bool
	LastKill time.Duration
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	w, h := g.WorldSize()
	snap := Snapshot{
		Tick:      g.tick,
		Outcome:   g.outcome,
		Aborted:   g.aborted,
		Score:     g.Score(),
		Kills:     g.kills,
		Shots:     g.shots,
		RespawnIn: g.RespawnIn(),
		WorldW:    w,
		WorldH:    h,
		Treasure:  g.treasure.Rect,
		Enemies:   make([]core.Rect, len(g.enemies)),
		Bullets:   make([]core.Rect, len(g.bullets)),
		Walls:     make([]Wall, len(g.walls)),
		Aim:       g.aim,
		HasKill:   g.hasKill,
		LastKill:  g.lastKill,
	}
	if g.player != nil {
		snap.Player = g.player.Bounds()
	}
	for i, e := range g.enemies {
		snap.Enemies[i] = e.Bounds()
	}
	for i, b := range g.bullets {
		snap.Bullets[i] = b.Bounds()
	}
	copy(snap.Walls, g.walls)
	return snap
}

// Message returns the end-of-run banner, or "" while playing.
func (snap *Snapshot) Message() string {
	switch snap.Outcome {
	case core.OutcomeWon:
		return WinText
	case core.OutcomeLost:
		return LoseText
	}
	return ""
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Outcome) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Kills)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Shots)   //#nosec G115 -- hash computation
	h = hashRect(h, snap.Player)
	for _, r := range snap.Enemies {
		h = hashRect(h, r)
	}
	for _, r := range snap.Bullets {
		h = hashRect(h, r)
	}
	return h
}

func hashRect(h uint64, r core.Rect) uint64 {
	for _, v := range [...]int{r.X, r.Y, r.W, r.H} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}
