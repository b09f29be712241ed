package maze

import (
	"fmt"
	"time"

	"github.com/vovakirdan/maze/internal/core"
)

// Visual characters for rendering
const (
	HeroChar     = '@'
	EnemyChar    = 'X'
	BulletChar   = '•'
	TreasureChar = '$'
	WallChar     = '█'
)

// End-of-run banners.
const (
	WinText  = "YOU WIN!"
	LoseText = "YOU LOSE!"
)

// hudRows is the number of screen rows above the playfield.
const hudRows = 1

// Render draws the current game state to the screen. The pixel playfield
// is scaled to fit below the HUD row.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.player == nil || dst.Width() < 1 || dst.Height() <= hudRows {
		return
	}

	w, h := g.WorldSize()
	g.view = core.NewViewport(w, h, core.NewRect(0, hudRows, dst.Width(), dst.Height()-hudRows))

	g.drawHUD(dst)

	// Walls go first so that nothing sharing a cell with a wall is hidden.
	for _, wall := range g.walls {
		g.fill(dst, wall.Rect, WallChar, wall.Color.Nearest())
	}
	g.fill(dst, g.treasure.Rect, TreasureChar, core.ColorGold)
	for _, e := range g.enemies {
		g.fill(dst, e.Bounds(), EnemyChar, core.ColorBrightRed)
	}
	for _, b := range g.bullets {
		g.fill(dst, b.Bounds(), BulletChar, core.ColorBrightYellow)
	}
	g.fill(dst, g.player.Bounds(), HeroChar, core.ColorBrightCyan)

	switch g.outcome {
	case core.OutcomeWon:
		g.drawCenteredMessage(dst, WinText, fmt.Sprintf("Score %d", g.Score()), core.ColorGold)
	case core.OutcomeLost:
		g.drawCenteredMessage(dst, LoseText, fmt.Sprintf("Score %d", g.Score()), core.ColorBrightRed)
	}
}

// fill paints the cells covered by a world rectangle.
func (g *Game) fill(dst *core.Screen, r core.Rect, ch rune, c core.Color) {
	dst.DrawRectColored(g.view.ToScreen(r), ch, c)
}

func (g *Game) drawHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" MAZE  Score: %d  Kills: %d  Shots: %d", g.Score(), g.kills, g.shots)
	if d := g.RespawnIn(); d > 0 {
		hud += fmt.Sprintf("  Respawn: %ds", int((d+time.Second-1)/time.Second))
	}
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string, c core.Color) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBoxColored(core.NewRect(boxX, boxY, boxW, boxH), c)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, c)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// RespawnIn returns how long until the next enemy appears, or zero when
// no respawn is pending.
func (g *Game) RespawnIn() time.Duration {
	if !g.hasKill || len(g.enemies) > 0 || g.clock == nil {
		return 0
	}
	left := g.cfg.Timing.RespawnCooldown() - (g.clock.Now() - g.lastKill)
	return max(left, 0)
}

// ScreenToWorld maps a screen cell from the last Render back to a world
// pixel. Before the first render the coordinates pass through unchanged.
func (g *Game) ScreenToWorld(x, y int) core.Point {
	if !g.view.Valid() {
		return core.Point{X: x, Y: y}
	}
	a := g.view.Area
	x = core.Clamp(x, a.Left(), a.Right()-1)
	y = core.Clamp(y, a.Top(), a.Bottom()-1)
	return g.view.ToWorld(x, y)
}
