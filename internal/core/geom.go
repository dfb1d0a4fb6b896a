// Package core provides fundamental types and utilities shared by the quiz
// logic and the terminal platform. It contains no external dependencies
// (especially no Bubble Tea) to keep game logic pure and testable.
//
// Coordinates are logical view units with the origin at the bottom-left
// corner and y growing upward.
package core

// Point is a position in logical view coordinates.
type Point struct {
	X, Y int
}

// Rect represents an axis-aligned bounding box used for hit testing.
type Rect struct {
	X, Y int // Bottom-left corner position
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

// Top returns the y-coordinate of the top edge (exclusive).
func (r Rect) Top() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Top() || other.Y >= r.Top() {
		return false
	}
	return true
}

// Contains returns true if the point p is inside this rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Top()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
