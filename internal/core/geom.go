// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep
// simulation logic pure and testable.
package core

// Span is a half-open interval [Start, End) on one axis, in field pixels.
type Span struct {
	Start, End float64
}

// NewSpan creates a span starting at start with the given length.
func NewSpan(start, length float64) Span {
	return Span{Start: start, End: start + length}
}

// Len returns the length of the span.
func (s Span) Len() float64 {
	return s.End - s.Start
}

// Overlaps reports whether the two spans share any interior.
// Spans that only touch at an edge do not overlap.
func (s Span) Overlaps(other Span) bool {
	return s.Start < other.End && other.Start < s.End
}

// Within reports whether s lies entirely inside outer. Equal edges count as inside.
func (s Span) Within(outer Span) bool {
	return s.Start >= outer.Start && s.End <= outer.End
}

// Rect represents an axis-aligned box in screen cells.
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

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
