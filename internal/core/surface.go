package core

// Color represents a foreground color for drawing.
// Platforms map these to whatever their output supports (ANSI codes for terminals).
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorWhite
	ColorGray
	ColorGreen
	ColorRed
	ColorOrange
	ColorYellow
	ColorCyan
)

// Paint describes how a filled rectangle looks.
// A zero Glyph lets the surface pick its default fill.
type Paint struct {
	Color Color
	Glyph rune
}

// Align is the horizontal text alignment relative to the anchor x.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Baseline is the vertical text alignment relative to the anchor y.
type Baseline int

const (
	BaselineAlphabetic Baseline = iota
	BaselineTop
	BaselineMiddle
	BaselineBottom
)

// TextStyle carries the font and alignment for FillText.
type TextStyle struct {
	Size     int // Nominal font size in surface units
	Align    Align
	Baseline Baseline
	Color    Color
}

// Surface is the drawing capability set the game renders through.
// Coordinates are in surface units; the game never reads pixels back.
type Surface interface {
	// Width returns the logical surface width.
	Width() float64
	// Height returns the logical surface height.
	Height() float64
	// ClearRect erases a region.
	ClearRect(b Bounds)
	// FillRect paints a solid region.
	FillRect(b Bounds, p Paint)
	// StrokeRect outlines a region.
	StrokeRect(b Bounds, c Color)
	// FillText draws text anchored at (x, y).
	FillText(text string, x, y float64, style TextStyle)
}
