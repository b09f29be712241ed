package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/maze/internal/audio"
	"github.com/vovakirdan/maze/internal/core"
	"github.com/vovakirdan/maze/internal/registry"
)

// KeyHoldTicks is how long a movement key counts as held after its last
// press or auto-repeat.
const KeyHoldTicks = 10

// captionTicks is how long a sound caption stays on the HUD.
const captionTicks = 45

// RunSaver stores finished runs. *storage.Store implements it.
type RunSaver interface {
	SaveRun(run core.RunStats) (string, error)
}

// endHoldMsg is sent when the final frame has been shown long enough.
type endHoldMsg struct{}

// Model is the Bubble Tea model for running the game in a terminal.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     RunSaver
	logger    *log.Logger
	config    core.RuntimeConfig
	keys      *KeyMapper
	held      *HeldKeys
	help      help.Model
	sounds    *audio.Recorder
	gameState core.GameState

	// Pending one-shot input for the next tick
	fire       bool
	pointer    core.Point
	hasPointer bool

	caption      string
	captionLeft  int
	ending       bool // end sequence running, no more ticks
	quitting     bool
	runSaved     bool
	lastSavedRun string
}

// NewModel creates a new Bubble Tea model for the given game.
// store and logger may be nil.
func NewModel(game registry.Game, store RunSaver, logger *log.Logger, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if cfg.Clock == nil {
		cfg.Clock = core.NewWallClock()
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-1)), // last row is the help bar
		store:  store,
		logger: logger,
		config: cfg,
		keys:   NewKeyMapper(),
		held:   NewHeldKeys(KeyHoldTicks),
		help:   h,
		sounds: &audio.Recorder{},
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	if m.logger != nil {
		m.logger.Info("run started", "game", m.game.ID(), "seed", m.config.Seed)
	}

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case endHoldMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.IsScreenshot(msg) {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		return m.quit()
	}

	switch action {
	case core.ActionFire:
		m.fire = true
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		m.held.Press(action)
	}
	return m, nil
}

// handleMouse tracks the pointer and fires on a left click.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionMotion, tea.MouseActionPress:
		m.pointer = m.toWorld(msg.X, msg.Y)
		m.hasPointer = true
	}
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.fire = true
	}
	return m, nil
}

// toWorld maps a terminal cell to the game's coordinate space.
func (m Model) toWorld(x, y int) core.Point {
	if pm, ok := m.game.(registry.PointerMapper); ok {
		return pm.ScreenToWorld(x, y)
	}
	return core.Point{X: x, Y: y}
}

// handleResize processes window resize events. The playfield is scaled,
// so the run continues undisturbed.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(1, msg.Height-1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.ending || m.quitting {
		return m, nil
	}

	frame := m.buildFrame()
	before := len(m.sounds.Sounds)
	result := m.game.Step(frame)
	m.gameState = result.State

	audio.Dispatch(m.sounds, result.Events, m.logger)
	if len(m.sounds.Sounds) > before {
		s, _ := m.sounds.Last()
		m.caption = "♪ " + s.String()
		m.captionLeft = captionTicks
	} else if m.captionLeft > 0 {
		m.captionLeft--
	}

	if end, ok := core.FindEnd(result.Events); ok {
		m.ending = true
		m.saveRun()
		hold := end.Hold
		return m, tea.Tick(hold, func(time.Time) tea.Msg { return endHoldMsg{} })
	}

	return m, tickCmd(m.config.TickRate)
}

// buildFrame assembles this tick's input and consumes one-shot state.
func (m *Model) buildFrame() core.InputFrame {
	frame := core.NewInputFrame()
	m.held.Apply(&frame)
	m.held.Tick()
	if m.fire {
		frame.Set(core.ActionFire)
		m.fire = false
	}
	if m.hasPointer {
		frame.SetPointer(m.pointer.X, m.pointer.Y)
		m.hasPointer = false
	}
	return frame
}

// quit aborts the run immediately, without the end sequence.
func (m Model) quit() (tea.Model, tea.Cmd) {
	if !m.ending {
		if r, ok := m.game.(registry.Reporter); ok {
			r.Abort()
		}
		m.saveRun()
	}
	m.quitting = true
	return m, tea.Quit
}

// saveRun records the run once. Failures are logged and ignored.
func (m *Model) saveRun() {
	if m.runSaved {
		return
	}
	m.runSaved = true

	stats := core.RunStats{
		GameID:  m.game.ID(),
		Outcome: m.gameState.Outcome.String(),
		Score:   m.gameState.Score,
	}
	if r, ok := m.game.(registry.Reporter); ok {
		stats = r.Stats()
	}

	if m.logger != nil {
		m.logger.Info("run finished", "outcome", stats.Outcome, "score", stats.Score,
			"kills", stats.Kills, "shots", stats.Shots, "duration", stats.Duration.Round(time.Millisecond))
	}
	if m.store == nil {
		return
	}
	id, err := m.store.SaveRun(stats)
	if err != nil {
		if m.logger != nil {
			m.logger.Warn("cannot save run", "error", err)
		}
		return
	}
	m.lastSavedRun = id
}

// LastSavedRun returns the id of the stored run, or "".
func (m Model) LastSavedRun() string {
	return m.lastSavedRun
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".maze", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		if m.logger != nil {
			m.logger.Warn("cannot save screenshot", "error", err)
		}
		return
	}
	if m.logger != nil {
		m.logger.Info("screenshot saved", "path", path)
	}
	m.caption = "saved " + filename
	m.captionLeft = captionTicks
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)
	if m.captionLeft > 0 {
		x := m.screen.Width() - lipgloss.Width(m.caption) - 1
		m.screen.DrawTextColored(x, 0, m.caption, core.ColorBrightMagenta)
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys.Keys()))
}

// Run starts the Bubble Tea program for game and blocks until it exits.
func Run(game registry.Game, store RunSaver, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Aim follows the mouse without a button held
	)

	_, err := p.Run()
	return err
}
