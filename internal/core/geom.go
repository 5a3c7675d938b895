// Package core provides fundamental types and utilities for the invaders game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Vec is a 2-D vector in surface units (pixels of the logical surface).
type Vec struct {
	X, Y float64
}

// Add returns the component-wise sum of two vectors.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns the vector multiplied by s.
func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// Bounds is an axis-aligned box in surface units.
// Y grows downward, so Top < Bottom for a non-empty box.
type Bounds struct {
	Left, Top, Right, Bottom float64
}

// BoxAt builds the bounds of a w×h box centred on (cx, cy).
func BoxAt(cx, cy, w, h float64) Bounds {
	return Bounds{
		Left:   cx - w/2,
		Top:    cy - h/2,
		Right:  cx + w/2,
		Bottom: cy + h/2,
	}
}

// CenteredBounds returns a w×h box centred inside a surface of the given size.
func CenteredBounds(surfaceW, surfaceH, w, h float64) Bounds {
	return BoxAt(surfaceW/2, surfaceH/2, w, h)
}

// Width returns the horizontal extent.
func (b Bounds) Width() float64 {
	return b.Right - b.Left
}

// Height returns the vertical extent.
func (b Bounds) Height() float64 {
	return b.Bottom - b.Top
}

// CenterX returns the horizontal centre.
func (b Bounds) CenterX() float64 {
	return (b.Left + b.Right) / 2
}

// CenterY returns the vertical centre.
func (b Bounds) CenterY() float64 {
	return (b.Top + b.Bottom) / 2
}

// Contains returns true if (x, y) lies inside the box or on its edge.
func (b Bounds) Contains(x, y float64) bool {
	return x >= b.Left && x <= b.Right && y >= b.Top && y <= b.Bottom
}

// Overlaps returns true if the two boxes share at least one point.
// Edges are inclusive: boxes that exactly touch overlap, any positive gap does not.
func (b Bounds) Overlaps(other Bounds) bool {
	if b.Right < other.Left || other.Right < b.Left {
		return false
	}
	if b.Bottom < other.Top || other.Bottom < b.Top {
		return false
	}
	return true
}

// Rect represents an integer cell rectangle on a Screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
