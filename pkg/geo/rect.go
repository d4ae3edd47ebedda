package geo

import "math"

// Rect is an axis-aligned rectangle with (X, Y) at the top-left corner.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// R is a shorthand constructor for Rect.
func R(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Area returns the rectangle area.
func (r Rect) Area() float64 {
	return r.W * r.H
}

// Center returns the rectangle center point as (x, y).
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Inset returns r shrunk inward by m on all four sides.
// The result may have negative width or height if m is too large.
func (r Rect) Inset(m float64) Rect {
	return Rect{X: r.X + m, Y: r.Y + m, W: r.W - 2*m, H: r.H - 2*m}
}

// Gap returns the Euclidean gap between two rectangles: zero when they
// overlap or touch, otherwise the straight-line distance between their
// nearest edges or corners. Symmetric in its arguments.
func Gap(a, b Rect) float64 {
	dx := math.Max(0, math.Max(a.X-b.Right(), b.X-a.Right()))
	dy := math.Max(0, math.Max(a.Y-b.Bottom(), b.Y-a.Bottom()))
	return math.Hypot(dx, dy)
}

// Overlaps reports whether a and b intersect with nonzero area.
// Touching edges do not count.
func Overlaps(a, b Rect) bool {
	return a.X < b.Right() && b.X < a.Right() &&
		a.Y < b.Bottom() && b.Y < a.Bottom()
}

// WithinBounds reports whether r lies entirely inside site shrunk inward
// by clearance on all four sides.
func WithinBounds(r, site Rect, clearance float64) bool {
	inner := site.Inset(clearance)
	return r.X >= inner.X && r.Y >= inner.Y &&
		r.Right() <= inner.Right() && r.Bottom() <= inner.Bottom()
}
