// Package maze implements the maze shooter: the hero walks through a maze
// of walls, shoots a roaming cyborg and wins by reaching the treasure.
// Touching a wall or the cyborg loses the run.
package maze

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/maze/internal/config"
	"github.com/vovakirdan/maze/internal/core"
	"github.com/vovakirdan/maze/internal/registry"
)

// Points awarded per kill and for reaching the treasure.
const (
	KillScore = 100
	WinBonus  = 1000
)

// Game implements the maze game logic. It is driven one tick at a time by
// a platform and never blocks, sleeps or plays media itself.
type Game struct {
	// Entities
	player   *Player
	enemies  []*Enemy
	bullets  []*Bullet
	walls    []Wall
	treasure Treasure

	// Cached wall rectangles for collision checks
	wallRects []core.Rect

	// Game state
	outcome  core.Outcome
	aborted  bool
	lastKill time.Duration
	hasKill  bool
	aim      core.Point
	tick     uint64
	kills    int
	shots    int
	started  time.Duration
	ended    time.Duration
	pending  []core.Event

	// Configuration
	runtime core.RuntimeConfig
	cfg     config.MazeConfig
	fixed   bool // cfg was supplied by the caller and is not reloaded
	clock   core.Clock
	rng     *rand.Rand
	spawner Spawner

	// Last viewport used by Render, for mapping pointer cells back to pixels
	view core.Viewport
}

// New creates a maze game that loads its configuration on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a maze game that always uses cfg.
func NewWithConfig(cfg config.MazeConfig) *Game {
	return &Game{cfg: cfg, fixed: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "maze"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Maze"
}

// Config returns the configuration in use.
func (g *Game) Config() config.MazeConfig {
	return g.cfg
}

// WorldSize returns the playfield size in pixels.
func (g *Game) WorldSize() (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if !g.fixed {
		cfg, err := config.LoadMaze("")
		if err != nil {
			cfg = config.DefaultMazeConfig()
		}
		g.cfg = cfg
	}
	cfg := g.cfg

	g.clock = runtime.ClockOrDefault()
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	g.walls = make([]Wall, 0, len(cfg.Walls.Rects))
	g.wallRects = make([]core.Rect, 0, len(cfg.Walls.Rects))
	for _, w := range cfg.Walls.Rects {
		g.walls = append(g.walls, Wall{Rect: w.Rect(), Color: cfg.Walls.Color.RGB()})
		g.wallRects = append(g.wallRects, w.Rect())
	}
	g.treasure = Treasure{Rect: core.NewRect(cfg.Treasure.X, cfg.Treasure.Y, cfg.Treasure.Size, cfg.Treasure.Size)}

	g.player = &Player{
		X:       cfg.Player.StartX,
		Y:       cfg.Player.StartY,
		Size:    cfg.Player.Size,
		Speed:   cfg.Player.Speed,
		MinEdge: cfg.Player.MinEdge,
		MaxEdge: cfg.Player.MaxEdge,
	}

	g.spawner = Spawner{
		WorldW:   cfg.Window.Width,
		WorldH:   cfg.Window.Height,
		Margin:   cfg.Enemy.SpawnMargin,
		Attempts: cfg.Enemy.SpawnAttempts,
		Size:     cfg.Enemy.Size,
		Speed:    cfg.Enemy.Speed(),
	}

	g.outcome = core.OutcomePlaying
	g.aborted = false
	g.hasKill = false
	g.lastKill = 0
	g.aim = core.Point{}
	g.tick = 0
	g.kills = 0
	g.shots = 0
	g.started = g.clock.Now()
	g.ended = 0
	g.bullets = nil
	g.enemies = []*Enemy{g.spawner.Spawn(g.rng, g.wallRects, g.player.Bounds())}

	// Music starts with the run and is reported on the first tick.
	g.pending = []core.Event{{Kind: core.EventMusicStart}}
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	events := g.pending
	g.pending = nil

	if g.outcome != core.OutcomePlaying || g.aborted {
		return core.StepResult{State: g.State(), Events: events}
	}

	if in.Has(core.ActionQuit) {
		g.Abort()
		return core.StepResult{State: g.State(), Events: events}
	}

	g.tick++
	w, h := g.WorldSize()

	if in.HasPointer {
		g.aim = in.Pointer
	}
	if in.Has(core.ActionFire) {
		g.bullets = append(g.bullets, g.player.Fire(g.aim, g.cfg.Bullet.Size, g.cfg.Bullet.Speed))
		g.shots++
	}

	g.player.Move(in, w, h)
	for _, e := range g.enemies {
		e.Advance()
	}
	live := g.bullets[:0]
	for _, b := range g.bullets {
		b.Advance()
		if !b.Offscreen(w, h) {
			live = append(live, b)
		}
	}
	g.bullets = live

	now := g.clock.Now()
	if g.resolveHits() {
		events = append(events, core.PlaySound(core.SoundImpact))
		g.lastKill = now
		g.hasKill = true
	}

	if len(g.enemies) == 0 && g.hasKill && now-g.lastKill >= g.cfg.Timing.RespawnCooldown() {
		g.enemies = append(g.enemies, g.spawner.Spawn(g.rng, g.wallRects, g.player.Bounds()))
		g.hasKill = false
	}

	pr := g.player.Bounds()
	switch {
	case pr.Intersects(g.treasure.Rect):
		g.outcome = core.OutcomeWon
		g.ended = now
		events = append(events,
			core.Event{Kind: core.EventMusicStop},
			core.PlaySound(core.SoundCoin),
			core.EndGame(core.OutcomeWon, g.cfg.Timing.WinHold()),
		)
	case g.touchesEnemy(pr) || pr.IntersectsAny(g.wallRects):
		g.outcome = core.OutcomeLost
		g.ended = now
		events = append(events,
			core.Event{Kind: core.EventMusicStop},
			core.PlaySound(core.SoundImpact),
			core.EndGame(core.OutcomeLost, g.cfg.Timing.LoseHold()),
		)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// Abort ends a run in progress without a win or a loss.
func (g *Game) Abort() {
	if g.outcome != core.OutcomePlaying || g.aborted {
		return
	}
	g.aborted = true
	g.ended = g.clock.Now()
}

// resolveHits destroys every enemy touched by a bullet together with the
// bullets touching it. A bullet is spent on the first enemy it hits.
// Reports whether anything was destroyed.
func (g *Game) resolveHits() bool {
	hit := false
	survivors := g.enemies[:0]
	for _, e := range g.enemies {
		er := e.Bounds()
		kept := g.bullets[:0]
		struck := false
		for _, b := range g.bullets {
			if er.Intersects(b.Bounds()) {
				struck = true
				continue
			}
			kept = append(kept, b)
		}
		g.bullets = kept
		if struck {
			hit = true
			g.kills++
			continue
		}
		survivors = append(survivors, e)
	}
	g.enemies = survivors
	return hit
}

func (g *Game) touchesEnemy(r core.Rect) bool {
	for _, e := range g.enemies {
		if r.Intersects(e.Bounds()) {
			return true
		}
	}
	return false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.Score(),
		Outcome:  g.outcome,
		GameOver: g.outcome != core.OutcomePlaying || g.aborted,
	}
}

// Score returns the points earned so far.
func (g *Game) Score() int {
	s := g.kills * KillScore
	if g.outcome == core.OutcomeWon {
		s += WinBonus
	}
	return s
}

// Stats returns the run summary. Outcome is "quit" for aborted runs.
func (g *Game) Stats() core.RunStats {
	end := g.ended
	if g.outcome == core.OutcomePlaying && !g.aborted && g.clock != nil {
		end = g.clock.Now()
	}
	outcome := g.outcome.String()
	if g.aborted {
		outcome = "quit"
	}
	return core.RunStats{
		GameID:   g.ID(),
		Outcome:  outcome,
		Score:    g.Score(),
		Kills:    g.kills,
		Shots:    g.shots,
		Ticks:    g.tick,
		Duration: end - g.started,
	}
}

// Register the game with the registry
func init() {
	registry.Register("maze", func() registry.Game {
		return New()
	})
}
