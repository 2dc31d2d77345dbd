// Package core provides fundamental types shared by the snake game and its
// front ends. It has no UI dependencies (no Bubble Tea, no tcell) so game
// logic stays pure and testable.
package core

import "fmt"

// Cell is one grid-aligned position, measured in grid coordinates.
type Cell struct {
	X, Y int
}

// Add returns the component-wise sum of two cells.
func (c Cell) Add(o Cell) Cell {
	return Cell{X: c.X + o.X, Y: c.Y + o.Y}
}

// Neg returns the component-wise negation.
func (c Cell) Neg() Cell {
	return Cell{X: -c.X, Y: -c.Y}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Mod returns a mod m in [0, m) for positive m.
func Mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

// Rect represents an axis-aligned box in screen coordinates.
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
