package maze

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/maze/internal/config"
	"github.com/vovakirdan/maze/internal/core"
)

func newTestGame(t *testing.T) (*Game, *core.ManualClock) {
	t.Helper()
	clock := &core.ManualClock{}
	g := NewWithConfig(config.DefaultMazeConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42, Clock: clock})
	return g, clock
}

func hasEvent(events []core.Event, want core.Event) bool {
	for _, e := range events {
		if e == want {
			return true
		}
	}
	return false
}

func TestResetLayout(t *testing.T) {
	g, _ := newTestGame(t)

	if len(g.walls) != 14 {
		t.Errorf("walls = %d, expected 14", len(g.walls))
	}
	if got := g.player.Bounds(); got != core.NewRect(120, 120, 65, 65) {
		t.Errorf("player = %+v", got)
	}
	if g.treasure.Rect != core.NewRect(1000, 150, 65, 65) {
		t.Errorf("treasure = %+v", g.treasure.Rect)
	}
	if len(g.enemies) != 1 {
		t.Fatalf("enemies = %d, expected 1", len(g.enemies))
	}
	e := g.enemies[0]
	if e.Speed != 10 || e.Size != 65 {
		t.Errorf("enemy speed/size = %d/%d", e.Speed, e.Size)
	}
	if e.Bounds().IntersectsAny(g.wallRects) || e.Bounds().Intersects(g.player.Bounds()) {
		t.Errorf("initial enemy at %+v overlaps a wall or the player", e.Bounds())
	}
	if g.State().GameOver {
		t.Error("new game should not be over")
	}
}

func TestFirstStepStartsMusic(t *testing.T) {
	g, _ := newTestGame(t)
	g.enemies = nil

	res := g.Step(core.NewInputFrame())
	if !hasEvent(res.Events, core.Event{Kind: core.EventMusicStart}) {
		t.Errorf("first step events = %+v, expected music start", res.Events)
	}
	res = g.Step(core.NewInputFrame())
	if len(res.Events) != 0 {
		t.Errorf("second step events = %+v, expected none", res.Events)
	}
}

func TestFireUsesPointer(t *testing.T) {
	g, _ := newTestGame(t)
	g.enemies = nil

	in := core.NewInputFrame()
	in.Set(core.ActionFire)
	in.SetPointer(452, 152)
	g.Step(in)

	if len(g.bullets) != 1 {
		t.Fatalf("bullets = %d, expected 1", len(g.bullets))
	}
	b := g.bullets[0]
	if b.VX != 18 || b.VY != 0 {
		t.Errorf("velocity = (%v,%v), expected (18,0)", b.VX, b.VY)
	}
	// spawned at 142 and advanced once in the same tick
	if b.X != 160 {
		t.Errorf("bullet x = %v, expected 160", b.X)
	}
	if g.shots != 1 {
		t.Errorf("shots = %d", g.shots)
	}

	// no pointer this tick: the last aim is reused
	in = core.NewInputFrame()
	in.Set(core.ActionFire)
	g.Step(in)
	if len(g.bullets) != 2 || g.bullets[1].VX != 18 {
		t.Errorf("second shot should reuse the last aim")
	}
}

func TestOffscreenBulletsDropped(t *testing.T) {
	g, _ := newTestGame(t)
	g.enemies = nil
	g.bullets = []*Bullet{
		{X: 1190, Y: 300, VX: 18, Size: 20},
		{X: 600, Y: 300, VX: 18, Size: 20},
	}

	g.Step(core.NewInputFrame())
	if len(g.bullets) != 1 || g.bullets[0].X != 618 {
		t.Fatalf("bullets after step = %d, expected only the on-screen one", len(g.bullets))
	}
}

func TestBulletKillsEnemy(t *testing.T) {
	g, clock := newTestGame(t)
	clock.Set(3 * time.Second)
	g.enemies = []*Enemy{
		NewEnemy(600, 620, 65, 0, 1, 1, testW, testH),
		NewEnemy(900, 620, 65, 0, 1, 1, testW, testH),
	}
	g.bullets = []*Bullet{
		{X: 610, Y: 630, Size: 20},
		{X: 620, Y: 640, Size: 20},
		{X: 100, Y: 650, Size: 20},
	}

	res := g.Step(core.NewInputFrame())

	if !hasEvent(res.Events, core.PlaySound(core.SoundImpact)) {
		t.Errorf("events = %+v, expected impact sound", res.Events)
	}
	if len(g.enemies) != 1 || g.enemies[0].X != 900 {
		t.Errorf("enemies = %d, expected only the untouched one", len(g.enemies))
	}
	if len(g.bullets) != 1 {
		t.Errorf("bullets = %d, expected 1 survivor", len(g.bullets))
	}
	if !g.hasKill || g.lastKill != 3*time.Second {
		t.Errorf("kill time = %v (recorded %v), expected 3s", g.lastKill, g.hasKill)
	}
	if g.kills != 1 || res.State.Score != KillScore {
		t.Errorf("kills = %d score = %d", g.kills, res.State.Score)
	}
}

func TestBulletSpentOnFirstEnemy(t *testing.T) {
	g, _ := newTestGame(t)
	g.enemies = []*Enemy{
		NewEnemy(600, 600, 65, 0, 1, 1, testW, testH),
		NewEnemy(640, 600, 65, 0, 1, 1, testW, testH),
	}
	g.bullets = []*Bullet{{X: 645, Y: 610, Size: 20}}

	g.Step(core.NewInputFrame())
	if len(g.enemies) != 1 || g.enemies[0].X != 640 {
		t.Errorf("one bullet should destroy one enemy, %d left", len(g.enemies))
	}
}

func TestRespawnAfterCooldown(t *testing.T) {
	g, clock := newTestGame(t)
	g.enemies = []*Enemy{NewEnemy(600, 620, 65, 0, 1, 1, testW, testH)}
	g.bullets = []*Bullet{{X: 610, Y: 630, Size: 20}}

	kill := 2 * time.Second
	clock.Set(kill)
	g.Step(core.NewInputFrame())
	if len(g.enemies) != 0 || !g.hasKill {
		t.Fatalf("enemy should be dead with kill time recorded")
	}

	clock.Set(kill + 19999*time.Millisecond)
	g.Step(core.NewInputFrame())
	if len(g.enemies) != 0 {
		t.Fatalf("respawned before the cooldown elapsed")
	}
	if d := g.RespawnIn(); d != time.Millisecond {
		t.Errorf("RespawnIn() = %v, expected 1ms", d)
	}

	clock.Set(kill + 20000*time.Millisecond)
	g.Step(core.NewInputFrame())
	if len(g.enemies) != 1 {
		t.Fatalf("enemies = %d after cooldown, expected 1", len(g.enemies))
	}
	if g.hasKill {
		t.Error("kill time should be cleared after respawn")
	}
	if g.RespawnIn() != 0 {
		t.Error("no respawn should be pending")
	}

	clock.Set(kill + 60*time.Second)
	g.Step(core.NewInputFrame())
	if len(g.enemies) != 1 {
		t.Errorf("enemies = %d, respawn should happen exactly once", len(g.enemies))
	}
}

func TestWinBeatsLose(t *testing.T) {
	g, _ := newTestGame(t)
	g.player.X, g.player.Y = 1000, 150
	g.enemies = []*Enemy{NewEnemy(1000, 150, 65, 0, 1, 1, testW, testH)}

	res := g.Step(core.NewInputFrame())

	if res.State.Outcome != core.OutcomeWon || !res.State.GameOver {
		t.Fatalf("state = %+v, expected won", res.State)
	}
	for _, want := range []core.Event{
		{Kind: core.EventMusicStop},
		core.PlaySound(core.SoundCoin),
		core.EndGame(core.OutcomeWon, 5*time.Second),
	} {
		if !hasEvent(res.Events, want) {
			t.Errorf("events = %+v, missing %+v", res.Events, want)
		}
	}
	if hasEvent(res.Events, core.EndGame(core.OutcomeLost, 3*time.Second)) {
		t.Error("lost must not be reached on a winning tick")
	}
	if res.State.Score != WinBonus {
		t.Errorf("score = %d, expected %d", res.State.Score, WinBonus)
	}

	// terminal: later ticks change nothing
	res = g.Step(core.NewInputFrame())
	if res.State.Outcome != core.OutcomeWon || len(res.Events) != 0 {
		t.Errorf("after win: state %+v events %+v", res.State, res.Events)
	}
}

func TestLoseOnWall(t *testing.T) {
	g, _ := newTestGame(t)
	g.enemies = nil

	in := core.NewInputFrame()
	in.Set(core.ActionUp)
	res := g.Step(in) // 120 -> 116 touches the top wall

	if res.State.Outcome != core.OutcomeLost {
		t.Fatalf("outcome = %s, expected lost", res.State.Outcome)
	}
	end, ok := core.FindEnd(res.Events)
	if !ok || end.Hold != 3*time.Second {
		t.Errorf("end event = %+v, expected 3s hold", end)
	}
	if !hasEvent(res.Events, core.PlaySound(core.SoundImpact)) {
		t.Error("lose should play the impact sound")
	}

	tick := g.tick
	g.Step(in)
	if g.tick != tick || g.player.Y != 116 {
		t.Error("no gameplay updates after a terminal state")
	}
}

func TestLoseOnEnemy(t *testing.T) {
	g, _ := newTestGame(t)
	g.enemies = []*Enemy{NewEnemy(150, 150, 65, 0, 1, 1, testW, testH)}

	res := g.Step(core.NewInputFrame())
	if res.State.Outcome != core.OutcomeLost {
		t.Errorf("outcome = %s, expected lost", res.State.Outcome)
	}
}

func TestQuitAborts(t *testing.T) {
	g, clock := newTestGame(t)
	clock.Advance(1500 * time.Millisecond)

	in := core.NewInputFrame()
	in.Set(core.ActionQuit)
	res := g.Step(in)

	if !res.State.GameOver || res.State.Outcome != core.OutcomePlaying {
		t.Errorf("state = %+v, expected aborted run", res.State)
	}
	if _, ok := core.FindEnd(res.Events); ok {
		t.Error("quit must not run the end sequence")
	}
	st := g.Stats()
	if st.Outcome != "quit" || st.Duration != 1500*time.Millisecond {
		t.Errorf("stats = %+v", st)
	}
}

func TestDeterminism(t *testing.T) {
	cfg := core.RuntimeConfig{Seed: 12345, ScreenW: 80, ScreenH: 24}

	run := func() Snapshot {
		cfg.Clock = &core.ManualClock{}
		g := NewWithConfig(config.DefaultMazeConfig())
		g.Reset(cfg)
		in := core.NewInputFrame()
		for i := 0; i < 120; i++ {
			in.Clear()
			if i%10 == 0 {
				in.Set(core.ActionFire)
				in.SetPointer(600+i, 400-i)
			}
			if i > 30 && i < 40 {
				in.Set(core.ActionRight)
			}
			g.Step(in)
		}
		return g.Snapshot()
	}

	s1, s2 := run(), run()
	if s1.Hash() != s2.Hash() {
		t.Errorf("hash mismatch: %d vs %d", s1.Hash(), s2.Hash())
	}
	if s1.Player != s2.Player || len(s1.Enemies) != len(s2.Enemies) {
		t.Errorf("snapshots differ: %+v vs %+v", s1.Player, s2.Player)
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	g, _ := newTestGame(t)
	snap := g.Snapshot()
	snap.Walls[0].Rect.X = -1
	snap.Enemies[0].X = -1

	if g.walls[0].Rect.X == -1 || g.enemies[0].X == -1 {
		t.Error("snapshot must not alias game state")
	}
	if snap.WorldW != 1200 || snap.WorldH != 700 || len(snap.Walls) != 14 {
		t.Errorf("snapshot = %+v", snap)
	}
	if snap.Message() != "" {
		t.Errorf("Message() = %q while playing", snap.Message())
	}
}

func TestRender(t *testing.T) {
	g, _ := newTestGame(t)
	screen := core.NewScreen(120, 36)
	g.Render(screen)

	out := screen.String()
	for _, ch := range []rune{WallChar, HeroChar, TreasureChar, EnemyChar} {
		if !strings.ContainsRune(out, ch) {
			t.Errorf("render missing %q", ch)
		}
	}
	if !strings.Contains(screen.Row(0), "MAZE") {
		t.Errorf("HUD row = %q", screen.Row(0))
	}

	g.player.X, g.player.Y = 1000, 150
	g.Step(core.NewInputFrame())
	g.Render(screen)
	if !strings.Contains(screen.String(), WinText) {
		t.Error("won frame should show the win banner")
	}
}

func TestScreenToWorld(t *testing.T) {
	g, _ := newTestGame(t)
	if p := g.ScreenToWorld(7, 9); p != (core.Point{X: 7, Y: 9}) {
		t.Errorf("before render got %+v", p)
	}

	screen := core.NewScreen(120, 71)
	g.Render(screen)

	// 10 px per cell on both axes below the HUD row
	if p := g.ScreenToWorld(0, 1); p != (core.Point{X: 5, Y: 5}) {
		t.Errorf("ScreenToWorld(0,1) = %+v, expected (5,5)", p)
	}
	if p := g.ScreenToWorld(45, 16); p != (core.Point{X: 455, Y: 155}) {
		t.Errorf("ScreenToWorld(45,16) = %+v, expected (455,155)", p)
	}
	// the HUD row maps to the top of the playfield
	if p := g.ScreenToWorld(0, 0); p.Y != 5 {
		t.Errorf("ScreenToWorld(0,0).Y = %d, expected 5", p.Y)
	}
}
