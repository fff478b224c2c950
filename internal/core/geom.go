// Package core provides fundamental types and utilities for the pong game.
// It contains no external dependencies (especially no Bubble Tea or Ebiten) to
// keep game logic pure and testable.
package core

// Vec2 is a pair of world coordinates. Used for positions, sizes and velocity.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for constructing a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the component-wise sum of two vectors.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// IsColliding reports whether a circle overlaps an axis-aligned box.
//
// The circle is treated as its bounding square. Overlap is strict on both axes:
// a circle whose edge lands exactly on the box edge is not colliding.
func IsColliding(boxOrigin, boxSize, center Vec2, radius float64) bool {
	withinLeft := center.X+radius > boxOrigin.X
	withinRight := center.X-radius < boxOrigin.X+boxSize.X
	withinTop := center.Y+radius > boxOrigin.Y
	withinBottom := center.Y-radius < boxOrigin.Y+boxSize.Y
	return withinLeft && withinRight && withinTop && withinBottom
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

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
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

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
