// Package vmath provides the float64 geometry primitives the simulation is
// built on: axis-aligned rectangles, circle-vs-rect tests and axis
// reflections. No package in here knows about game entities.
package vmath

import "math"

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Magnitude returns vector length
func Magnitude(x, y float64) float64 {
	return math.Hypot(x, y)
}

// ReflectAxisX returns velocity reflected off a vertical surface
// Use for left/right wall and horizontal block-side collision
func ReflectAxisX(velX, velY float64) (float64, float64) {
	return -velX, velY
}

// ReflectAxisY returns velocity reflected off a horizontal surface
// Use for top wall, paddle and vertical block-side collision
func ReflectAxisY(velX, velY float64) (float64, float64) {
	return velX, -velY
}

// Rect is an axis-aligned rectangle addressed by its center point,
// matching how entities carry their position.
type Rect struct {
	CX, CY float64
	W, H   float64
}

// Left returns the minimum x edge
func (r Rect) Left() float64 { return r.CX - r.W/2 }

// Right returns the maximum x edge
func (r Rect) Right() float64 { return r.CX + r.W/2 }

// Top returns the maximum y edge (y grows upward)
func (r Rect) Top() float64 { return r.CY + r.H/2 }

// Bottom returns the minimum y edge
func (r Rect) Bottom() float64 { return r.CY - r.H/2 }

// ClosestPoint returns the point on or inside the rectangle nearest to (px, py)
func (r Rect) ClosestPoint(px, py float64) (float64, float64) {
	return Clamp(px, r.Left(), r.Right()), Clamp(py, r.Bottom(), r.Top())
}

// CircleOverlap reports whether a circle at (cx, cy) with radius rad touches
// the rectangle. dx and dy are the offsets from the closest rectangle point
// to the circle center; their relative magnitude decides the bounce axis.
func (r Rect) CircleOverlap(cx, cy, rad float64) (hit bool, dx, dy float64) {
	px, py := r.ClosestPoint(cx, cy)
	dx = cx - px
	dy = cy - py
	return dx*dx+dy*dy <= rad*rad, dx, dy
}
