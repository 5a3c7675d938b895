package tui

import (
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// defaultGlyph fills rectangles whose paint carries no glyph.
const defaultGlyph = '█'

// CellSurface is a core.Surface that maps a logical drawing area onto the
// character cells of a Screen. Every drawn rectangle covers at least one cell.
type CellSurface struct {
	screen *core.Screen
	width  float64 // Logical width
	height float64 // Logical height
}

// NewCellSurface creates a surface of the given logical size drawing into screen.
func NewCellSurface(screen *core.Screen, width, height float64) *CellSurface {
	return &CellSurface{screen: screen, width: width, height: height}
}

// Width returns the logical width.
func (s *CellSurface) Width() float64 { return s.width }

// Height returns the logical height.
func (s *CellSurface) Height() float64 { return s.height }

// scale returns cells per logical unit on each axis.
func (s *CellSurface) scale() (sx, sy float64) {
	return float64(s.screen.Width()) / s.width, float64(s.screen.Height()) / s.height
}

// cellRect converts logical bounds to the covered cell rectangle.
func (s *CellSurface) cellRect(b core.Bounds) core.Rect {
	sx, sy := s.scale()
	x0 := int(math.Floor(b.Left * sx))
	y0 := int(math.Floor(b.Top * sy))
	x1 := int(math.Floor(b.Right * sx))
	y1 := int(math.Floor(b.Bottom * sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// LogicalX converts a cell column to the logical x of the cell's centre.
func (s *CellSurface) LogicalX(col int) float64 {
	sx, _ := s.scale()
	if sx == 0 {
		return 0
	}
	return (float64(col) + 0.5) / sx
}

// ClearRect blanks the covered cells.
func (s *CellSurface) ClearRect(b core.Bounds) {
	s.screen.DrawRect(s.cellRect(b), core.Cell{Rune: ' '})
}

// FillRect paints the covered cells with the paint's glyph.
func (s *CellSurface) FillRect(b core.Bounds, p core.Paint) {
	glyph := p.Glyph
	if glyph == 0 {
		glyph = defaultGlyph
	}
	s.screen.DrawRect(s.cellRect(b), core.Cell{Rune: glyph, Color: p.Color})
}

// StrokeRect outlines the covered cells. Boxes too small for an outline are filled.
func (s *CellSurface) StrokeRect(b core.Bounds, c core.Color) {
	r := s.cellRect(b)
	if r.W < 2 || r.H < 2 {
		s.screen.DrawRect(r, core.Cell{Rune: '·', Color: c})
		return
	}
	s.screen.DrawBox(r, c)
}

// FillText writes text anchored at the logical point (x, y).
func (s *CellSurface) FillText(text string, x, y float64, style core.TextStyle) {
	sx, sy := s.scale()
	col := int(math.Round(x * sx))
	n := utf8.RuneCountInString(text)

	switch style.Align {
	case core.AlignCenter:
		col -= n / 2
	case core.AlignRight:
		col -= n
	}

	var row int
	switch style.Baseline {
	case core.BaselineTop, core.BaselineMiddle:
		row = int(math.Floor(y * sy))
	default:
		// Alphabetic and bottom sit on the line above y
		row = int(math.Ceil(y*sy)) - 1
	}

	s.screen.DrawText(col, row, text, style.Color)
}
