// Package core provides fundamental types and utilities shared by the game and
// its presentation adapters. It has no external dependencies (no Bubble Tea, no
// Ebiten) so the simulation stays pure and testable.
package core

// Box is an axis-aligned rectangle in world pixels.
// Position is real-valued, origin top-left, y grows downward.
type Box struct {
	X, Y float64 // Top-left corner
	W, H float64 // Width and height
}

// NewBox creates a box at (x, y) with the given size.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Overlaps reports whether b and other share a region of positive area.
func (b Box) Overlaps(other Box) bool {
	return Overlaps(b, other)
}

// Overlaps is the collision primitive used for every entity pair check.
// The comparisons are strict, so boxes that only touch along an edge or at a
// corner do not collide.
func Overlaps(a, b Box) bool {
	return a.X+a.W > b.X &&
		a.X < b.X+b.W &&
		a.Y+a.H > b.Y &&
		a.Y < b.Y+b.H
}

// Rect represents an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}
