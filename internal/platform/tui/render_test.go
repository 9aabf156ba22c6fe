package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-2048/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawText(0, 0, "Score: 4")
	s.DrawTextColored(0, 1, "  2 ", core.ColorTileIvory)
	s.DrawTextColored(4, 1, "2048", core.ColorTileGold)

	out := RenderScreen(s)
	lines := strings.Split(ansi.Strip(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0] != "Score: 4    " {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != "  2 2048    " {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestEveryTileColorHasStyle(t *testing.T) {
	for c := core.ColorTileEmpty; c <= core.ColorTileOverflow; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for tile color %d", c)
		}
	}
}
