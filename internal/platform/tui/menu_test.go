package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/maze/internal/config"
	"github.com/vovakirdan/maze/internal/core"
)

func menuKey(m MenuModel, k tea.KeyMsg) (MenuModel, tea.Cmd) {
	next, cmd := m.Update(k)
	return next.(MenuModel), cmd
}

func TestMenuStartsOnCurrentDifficulty(t *testing.T) {
	tests := []struct {
		preset config.DifficultyPreset
		cursor int
	}{
		{config.DifficultyEasy, 0},
		{config.DifficultyNormal, 1},
		{config.DifficultyHard, 2},
		{"", 0},
	}
	for _, tc := range tests {
		m := NewMenuModel("Maze", tc.preset, core.DefaultConfig())
		if m.cursor != tc.cursor {
			t.Errorf("preset %q: cursor = %d, expected %d", tc.preset, m.cursor, tc.cursor)
		}
	}
}

func TestMenuNavigationAndSelect(t *testing.T) {
	m := NewMenuModel("Maze", config.DifficultyNormal, core.DefaultConfig())

	m, _ = menuKey(m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = menuKey(m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = menuKey(m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = menuKey(m, tea.KeyMsg{Type: tea.KeyDown}) // clamps at the last entry
	if m.cursor != len(m.items)-1 {
		t.Fatalf("cursor = %d, expected last entry", m.cursor)
	}
	m, _ = menuKey(m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = menuKey(m, tea.KeyMsg{Type: tea.KeyUp})

	m, cmd := menuKey(m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("select should quit the menu program")
	}
	item, done := m.Selected()
	if !done || item.Choice != MenuChoicePlay || item.Difficulty != config.DifficultyHard {
		t.Errorf("Selected() = %+v, %v; expected play hard", item, done)
	}
	if m.View() != "" {
		t.Error("View should be empty after a selection")
	}
}

func TestMenuShortcuts(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want MenuChoice
	}{
		{"tab opens history", tea.KeyMsg{Type: tea.KeyTab}, MenuChoiceScoreboard},
		{"q quits", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, MenuChoiceQuit},
		{"esc quits", tea.KeyMsg{Type: tea.KeyEsc}, MenuChoiceQuit},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMenuModel("Maze", config.DifficultyNormal, core.DefaultConfig())
			m, _ = menuKey(m, tc.msg)
			item, done := m.Selected()
			if !done || item.Choice != tc.want {
				t.Errorf("Selected() = %+v, %v; expected choice %d", item, done, tc.want)
			}
		})
	}
}

func TestMenuView(t *testing.T) {
	m := NewMenuModel("Maze", config.DifficultyNormal, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	view := m.View()
	for _, want := range []string{"M A Z E", "> Play (normal)", "Run history", "Quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	if cfg := next.(MenuModel).Config(); cfg.ScreenW != 100 || cfg.ScreenH != 30 {
		t.Errorf("Config() after resize = %dx%d, expected 100x30", cfg.ScreenW, cfg.ScreenH)
	}
}
