package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/maze/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawTextColored(0, 0, "YOU", core.ColorGold)
	s.DrawText(4, 0, "WIN!")
	s.SetColored(0, 1, '█', core.ColorBrightGreen)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, expected 2", len(lines))
	}
	if !strings.Contains(out, "YOU") || !strings.Contains(out, "WIN!") || !strings.Contains(out, "█") {
		t.Errorf("RenderScreen lost text: %q", out)
	}
}

func TestRenderScreenDefaultRunsArePlain(t *testing.T) {
	s := core.NewScreen(5, 1)
	s.DrawText(0, 0, "maze!")
	if got := RenderScreen(s); got != "maze!" {
		t.Errorf("RenderScreen() = %q, expected unstyled text", got)
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	plain := styleFor(core.ColorDefault).Render("x")
	if got := styleFor(core.Color(200)).Render("x"); got != plain {
		t.Errorf("unknown color rendered %q, expected %q", got, plain)
	}
}
