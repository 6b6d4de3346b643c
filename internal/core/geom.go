// Package core provides fundamental types and utilities shared by the Pong
// simulation and its hosts. It contains no external dependencies (especially
// no Bubble Tea) to keep game logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned block of screen cells.
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

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ClampF restricts a float64 value to be within [min, max].
// Values sitting exactly on a bound collapse to that bound.
func ClampF(val, min, max float64) float64 {
	if val <= min {
		return min
	}
	if val >= max {
		return max
	}
	return val
}

// InRange reports whether val lies in [min, max], inclusive on both ends.
func InRange(val, min, max float64) bool {
	return val >= min && val <= max
}

// Float64Source is anything that yields uniform floats in [0, 1).
// *math/rand.Rand satisfies it.
type Float64Source interface {
	Float64() float64
}

// RandomInt draws an integer from [a, b) as floor(r*(b-a)+a).
// It never returns b.
func RandomInt(src Float64Source, a, b int) int {
	return int(math.Floor(src.Float64()*float64(b-a) + float64(a)))
}
