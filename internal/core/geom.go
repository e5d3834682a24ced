// Package core provides fundamental types and utilities for the platformer.
// It contains no external dependencies (especially no Bubble Tea) to keep the
// simulation pure and testable.
package core

import "math"

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

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// RectF is an axis-aligned rectangle in world pixels.
// The simulation works exclusively in RectF; cells only exist at render time.
type RectF struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// NewRectF creates a world rectangle.
func NewRectF(x, y, w, h float64) RectF {
	return RectF{X: x, Y: y, W: w, H: h}
}

// Left returns the x-coordinate of the left edge.
func (r RectF) Left() float64 { return r.X }

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 { return r.X + r.W }

// Top returns the y-coordinate of the top edge.
func (r RectF) Top() float64 { return r.Y }

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 { return r.Y + r.H }

// CenterX returns the horizontal center.
func (r RectF) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical center.
func (r RectF) CenterY() float64 { return r.Y + r.H/2 }

// SetRight moves the rect so its right edge lies at x.
func (r *RectF) SetRight(x float64) { r.X = x - r.W }

// SetBottom moves the rect so its bottom edge lies at y.
func (r *RectF) SetBottom(y float64) { r.Y = y - r.H }

// SetCenterX moves the rect so its horizontal center lies at x.
func (r *RectF) SetCenterX(x float64) { r.X = x - r.W/2 }

// SetCenterY moves the rect so its vertical center lies at y.
func (r *RectF) SetCenterY(y float64) { r.Y = y - r.H/2 }

// Intersects reports a strict overlap. Rects that only share an edge do not
// intersect, so an entity resting on a blocker is not colliding with it.
func (r RectF) Intersects(other RectF) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Offset returns a copy moved by (dx, dy).
func (r RectF) Offset(dx, dy float64) RectF {
	return RectF{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Inflate returns a copy grown by d on every side.
func (r RectF) Inflate(d float64) RectF {
	return RectF{X: r.X - d, Y: r.Y - d, W: r.W + 2*d, H: r.H + 2*d}
}

// ClampInto returns a copy moved so it lies inside bounds. When r is larger
// than bounds on an axis it is aligned to the bounds' top-left on that axis.
func (r RectF) ClampInto(bounds RectF) RectF {
	out := r
	if out.W >= bounds.W {
		out.X = bounds.X
	} else {
		out.X = ClampF(out.X, bounds.X, bounds.Right()-out.W)
	}
	if out.H >= bounds.H {
		out.Y = bounds.Y
	} else {
		out.Y = ClampF(out.Y, bounds.Y, bounds.Bottom()-out.H)
	}
	return out
}

// Cells converts a world rect to screen cells relative to origin,
// using cellW x cellH pixels per cell. Edges are floored so adjacent
// world rects stay adjacent on screen.
func (r RectF) Cells(originX, originY float64, cellW, cellH int) Rect {
	x0 := int(math.Floor((r.X - originX) / float64(cellW)))
	y0 := int(math.Floor((r.Y - originY) / float64(cellH)))
	x1 := int(math.Floor((r.Right() - originX - 1) / float64(cellW)))
	y1 := int(math.Floor((r.Bottom() - originY - 1) / float64(cellH)))
	return NewRect(x0, y0, Max(x1-x0+1, 1), Max(y1-y0+1, 1))
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

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
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
