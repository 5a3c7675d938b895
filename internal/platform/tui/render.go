package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorOrange:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
}

// helpStyle renders the key help line under the play area.
var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// RenderScreen turns the screen buffer into styled terminal output.
// Each row is split into runs of one color so a style is applied once per run.
func RenderScreen(s *core.Screen) string {
	rows := make([]string, s.Height())
	run := make([]rune, 0, s.Width())

	for y := range rows {
		var line strings.Builder
		current := s.GetCell(0, y).Color
		run = run[:0]

		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != current {
				line.WriteString(styleFor(current).Render(string(run)))
				current = cell.Color
				run = run[:0]
			}
			run = append(run, cell.Rune)
		}
		line.WriteString(styleFor(current).Render(string(run)))
		rows[y] = line.String()
	}
	return strings.Join(rows, "\n")
}

// styleFor returns the style for c, falling back to the default style.
func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}
