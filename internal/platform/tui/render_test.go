package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	screen := core.NewScreen(12, 2)
	screen.DrawText(0, 0, "Lives: 3", core.ColorWhite)
	screen.DrawText(0, 1, "ab", core.ColorGreen)
	screen.SetCell(2, 1, core.Cell{Rune: 'c', Color: core.ColorRed})

	out := RenderScreen(screen)

	if lines := strings.Split(out, "\n"); len(lines) != 2 {
		t.Fatalf("lines = %d, expected 2", len(lines))
	}
	for _, want := range []string{"Lives: 3", "ab", "c"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen() missing %q", want)
		}
	}
}

func TestColorStylesCoverPalette(t *testing.T) {
	colors := []core.Color{
		core.ColorDefault, core.ColorWhite, core.ColorGray, core.ColorGreen,
		core.ColorRed, core.ColorOrange, core.ColorYellow, core.ColorCyan,
	}
	for _, c := range colors {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("colorStyles missing color %d", c)
		}
	}
}
