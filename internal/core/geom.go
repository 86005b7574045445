// Package core provides the engine-neutral types shared by games and the
// platform layer. It has no external dependencies (especially no Bubble Tea)
// so game logic stays pure and testable.
package core

// Rect is an axis-aligned rectangle in screen cells.
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

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Point is a cell position; X is the column and Y the row.
type Point struct {
	X, Y int
}

// Move returns p shifted by the direction of a movement action,
// clamped to [0, size) on both axes.
func (p Point) Move(a Action, size int) Point {
	switch a {
	case ActionUp:
		p.Y--
	case ActionDown:
		p.Y++
	case ActionLeft:
		p.X--
	case ActionRight:
		p.X++
	}
	if size <= 0 {
		return Point{}
	}
	p.X = Clamp(p.X, 0, size-1)
	p.Y = Clamp(p.Y, 0, size-1)
	return p
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
