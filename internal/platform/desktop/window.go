package desktop

import (
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	sfx "github.com/vovakirdan/maze/internal/audio"
	"github.com/vovakirdan/maze/internal/core"
	"github.com/vovakirdan/maze/internal/games/maze"
)

// RunSaver stores finished runs. *storage.Store implements it.
type RunSaver interface {
	SaveRun(run core.RunStats) (string, error)
}

// Options configures a window run. Store, Logger and Audio may be nil.
type Options struct {
	Runtime core.RuntimeConfig
	Store   RunSaver
	Logger  *log.Logger
	// Audio overrides the ebiten mixer, mostly for headless tools.
	Audio sfx.Player
}

// banner sizes and colors
const bannerScale = 6

var (
	winColor  = color.RGBA{255, 215, 0, 255}
	loseColor = color.RGBA{230, 40, 40, 255}
)

// Window adapts a maze.Game to ebiten.Game.
type Window struct {
	game    *maze.Game
	runtime core.RuntimeConfig
	sprites Sprites
	audio   sfx.Player
	store   RunSaver
	logger  *log.Logger
	clock   core.Clock

	snap   maze.Snapshot
	ending bool
	endAt  time.Duration
	saved  bool
}

// NewWindow resets game and prepares sprites and sounds.
func NewWindow(game *maze.Game, opts Options) *Window {
	rt := opts.Runtime
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.Clock == nil {
		rt.Clock = core.NewWallClock()
	}

	game.Reset(rt)
	cfg := game.Config()
	if rt.TickRate <= 0 {
		rt.TickRate = cfg.Window.FPS
	}

	w := &Window{
		game:    game,
		runtime: rt,
		store:   opts.Store,
		logger:  opts.Logger,
		clock:   rt.Clock,
		audio:   opts.Audio,
		sprites: LoadSprites(cfg.Assets, opts.Logger),
	}
	if w.audio == nil {
		w.audio = NewMixer(cfg.Assets, opts.Logger)
	}
	w.snap = game.Snapshot()

	if w.logger != nil {
		w.logger.Info("run started", "game", game.ID(), "seed", rt.Seed, "backend", "window")
	}
	return w
}

// moveKeys maps held keys to movement actions.
var moveKeys = map[ebiten.Key]core.Action{
	ebiten.KeyArrowUp:    core.ActionUp,
	ebiten.KeyArrowDown:  core.ActionDown,
	ebiten.KeyArrowLeft:  core.ActionLeft,
	ebiten.KeyArrowRight: core.ActionRight,
}

// Update runs one tick. It returns ebiten.Termination to close the window.
func (w *Window) Update() error {
	if w.ending {
		if w.clock.Now() >= w.endAt {
			return ebiten.Termination
		}
		return nil
	}

	if ebiten.IsWindowBeingClosed() ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		w.game.Abort()
		w.saveRun()
		return ebiten.Termination
	}

	res := w.game.Step(w.inputFrame())
	sfx.Dispatch(w.audio, res.Events, w.logger)
	w.snap = w.game.Snapshot()

	if end, ok := core.FindEnd(res.Events); ok {
		w.ending = true
		w.endAt = w.clock.Now() + end.Hold
		w.saveRun()
	}
	return nil
}

func (w *Window) inputFrame() core.InputFrame {
	frame := core.NewInputFrame()
	for k, a := range moveKeys {
		if ebiten.IsKeyPressed(k) {
			frame.Set(a)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		frame.Set(core.ActionFire)
	}
	x, y := ebiten.CursorPosition()
	frame.SetPointer(x, y)
	return frame
}

func (w *Window) saveRun() {
	if w.saved {
		return
	}
	w.saved = true

	stats := w.game.Stats()
	if w.logger != nil {
		w.logger.Info("run finished", "outcome", stats.Outcome, "score", stats.Score,
			"kills", stats.Kills, "shots", stats.Shots, "duration", stats.Duration.Round(time.Millisecond))
	}
	if w.store == nil {
		return
	}
	if _, err := w.store.SaveRun(stats); err != nil && w.logger != nil {
		w.logger.Warn("cannot save run", "error", err)
	}
}

// Draw renders the last snapshot.
func (w *Window) Draw(screen *ebiten.Image) {
	snap := &w.snap

	if w.sprites.Background != nil {
		drawSprite(screen, w.sprites.Background, core.NewRect(0, 0, snap.WorldW, snap.WorldH), backColor)
	} else {
		screen.Fill(backColor)
	}

	drawSprite(screen, w.sprites.Hero, snap.Player, heroColor)
	for _, r := range snap.Enemies {
		drawSprite(screen, w.sprites.Enemy, r, enemyColor)
	}
	for _, wall := range snap.Walls {
		fillRect(screen, wall.Rect, rgba(wall.Color))
	}
	drawSprite(screen, w.sprites.Treasure, snap.Treasure, treasureColor)
	for _, r := range snap.Bullets {
		drawSprite(screen, w.sprites.Bullet, r, bulletColor)
	}

	hud := fmt.Sprintf("Score: %d  Kills: %d  Shots: %d", snap.Score, snap.Kills, snap.Shots)
	if snap.HasKill && len(snap.Enemies) == 0 {
		hud += fmt.Sprintf("\nRespawn in %ds", int(snap.RespawnIn.Round(time.Second)/time.Second))
	}
	ebitenutil.DebugPrint(screen, hud)

	switch snap.Outcome {
	case core.OutcomeWon:
		drawBanner(screen, snap.Message(), winColor)
	case core.OutcomeLost:
		drawBanner(screen, snap.Message(), loseColor)
	}
}

// Layout keeps the logical screen at the world size; ebiten scales it to
// the window.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.snap.WorldW, w.snap.WorldH
}

// drawSprite stretches img over r, or fills r with fallback when img is nil.
func drawSprite(dst, img *ebiten.Image, r core.Rect, fallback color.Color) {
	if img == nil {
		fillRect(dst, r, fallback)
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.W)/float64(b.Dx()), float64(r.H)/float64(b.Dy()))
	op.GeoM.Translate(float64(r.X), float64(r.Y))
	dst.DrawImage(img, op)
}

func fillRect(dst *ebiten.Image, r core.Rect, c color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

// drawBanner prints text with the debug font, scaled up and centred.
func drawBanner(dst *ebiten.Image, text string, c color.Color) {
	const glyphW, glyphH = 6, 16
	tw, th := len(text)*glyphW+4, glyphH+4

	panel := ebiten.NewImage(tw, th)
	panel.Fill(color.RGBA{0, 0, 0, 160})
	ebitenutil.DebugPrintAt(panel, text, 2, 2)

	sw, sh := dst.Bounds().Dx(), dst.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(bannerScale, bannerScale)
	op.GeoM.Translate(float64(sw-tw*bannerScale)/2, float64(sh-th*bannerScale)/2)
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(panel, op)
	panel.Deallocate()
}

// Run opens the window and blocks until the run ends or the window is
// closed.
func Run(game *maze.Game, opts Options) error {
	w := NewWindow(game, opts)
	cfg := game.Config()

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetTPS(max(1, w.runtime.TickRate))
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("desktop: %w", err)
	}
	return nil
}
