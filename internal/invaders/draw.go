package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Font sizes in surface units.
const (
	titleSize = 30
	bodySize  = 16
	hudSize   = 14
)

// Paints for entities. Glyphs are hints for character surfaces.
var (
	shipPaint    = core.Paint{Color: core.ColorGray, Glyph: '█'}
	invaderPaint = core.Paint{Color: core.ColorGreen, Glyph: '▓'}
	rocketPaint  = core.Paint{Color: core.ColorRed, Glyph: '|'}
	bombPaint    = core.Paint{Color: core.ColorOrange, Glyph: '*'}
)

// clearAll erases the whole surface.
func clearAll(g *Game, s core.Surface) {
	s.ClearRect(core.Bounds{Right: g.width, Bottom: g.height})
}

// drawTitle draws a large centred line.
func drawTitle(s core.Surface, text string, x, y float64, c core.Color) {
	s.FillText(text, x, y, core.TextStyle{
		Size:     titleSize,
		Align:    core.AlignCenter,
		Baseline: core.BaselineMiddle,
		Color:    c,
	})
}

// drawBody draws a normal centred line.
func drawBody(s core.Surface, text string, x, y float64) {
	s.FillText(text, x, y, core.TextStyle{
		Size:     bodySize,
		Align:    core.AlignCenter,
		Baseline: core.BaselineMiddle,
		Color:    core.ColorWhite,
	})
}

// drawDebug outlines the surface and the play area.
func drawDebug(g *Game, s core.Surface) {
	if !g.debug {
		return
	}
	s.StrokeRect(core.Bounds{Right: g.width, Bottom: g.height}, core.ColorRed)
	s.StrokeRect(g.bounds, core.ColorCyan)
}
