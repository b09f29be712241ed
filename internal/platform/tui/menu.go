package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/maze/internal/config"
	"github.com/vovakirdan/maze/internal/core"
)

// MenuChoice is what the start menu asks the caller to do next.
type MenuChoice int

const (
	MenuChoiceNone MenuChoice = iota
	MenuChoicePlay
	MenuChoiceScoreboard
	MenuChoiceQuit
)

// MenuItem is one line of the start menu.
type MenuItem struct {
	Label      string
	Choice     MenuChoice
	Difficulty config.DifficultyPreset // Set for MenuChoicePlay
}

// DefaultMenuItems returns the start menu entries.
func DefaultMenuItems() []MenuItem {
	return []MenuItem{
		{Label: "Play (easy)", Choice: MenuChoicePlay, Difficulty: config.DifficultyEasy},
		{Label: "Play (normal)", Choice: MenuChoicePlay, Difficulty: config.DifficultyNormal},
		{Label: "Play (hard)", Choice: MenuChoicePlay, Difficulty: config.DifficultyHard},
		{Label: "Run history", Choice: MenuChoiceScoreboard},
		{Label: "Quit", Choice: MenuChoiceQuit},
	}
}

// MenuKeyMap defines key bindings for the start menu.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Scores key.Binding
	Quit   key.Binding
}

// DefaultMenuKeyMap returns default menu bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "w", "k"), key.WithHelp("up", "previous")),
		Down:   key.NewBinding(key.WithKeys("down", "s", "j"), key.WithHelp("down", "next")),
		Select: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		Scores: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "history")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

// MenuModel is the Bubble Tea model for the start menu.
type MenuModel struct {
	title    string
	items    []MenuItem
	cursor   int
	width    int
	height   int
	config   core.RuntimeConfig
	keys     MenuKeyMap
	selected MenuItem
	done     bool
}

// NewMenuModel creates a start menu. The cursor starts on the entry for
// current, or the first entry if none matches.
func NewMenuModel(title string, current config.DifficultyPreset, cfg core.RuntimeConfig) MenuModel {
	items := DefaultMenuItems()
	cursor := 0
	for i, it := range items {
		if it.Choice == MenuChoicePlay && it.Difficulty == current {
			cursor = i
			break
		}
	}
	return MenuModel{
		title:  title,
		items:  items,
		cursor: cursor,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
		keys:   DefaultMenuKeyMap(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.selected = MenuItem{Choice: MenuChoiceQuit}
		m.done = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		m.selected = m.items[m.cursor]
		m.done = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Scores):
		m.selected = MenuItem{Choice: MenuChoiceScoreboard}
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.done {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	hintStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(spaced(m.title)), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%-14s", cursor, item.Label), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(hintStyle.Render("Up/Down: Navigate  |  Enter: Select  |  Tab: History  |  Q: Quit"), m.width))
	b.WriteString("\n")

	return b.String()
}

// spaced turns "Maze" into "M A Z E".
func spaced(s string) string {
	return strings.Join(strings.Split(strings.ToUpper(s), ""), " ")
}

// Selected returns the chosen entry, or false while the menu is open.
func (m MenuModel) Selected() (MenuItem, bool) {
	return m.selected, m.done
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Item   MenuItem
	Config core.RuntimeConfig
}

// RunMenu shows the start menu and returns the selection.
func RunMenu(title string, current config.DifficultyPreset, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(title, current, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Item: MenuItem{Choice: MenuChoiceQuit}, Config: cfg}, nil
	}
	item, done := m.Selected()
	if !done {
		item = MenuItem{Choice: MenuChoiceQuit}
	}
	return MenuResult{Item: item, Config: m.Config()}, nil
}
