// Package geom holds the small amount of 2D math the simulation needs:
// vectors, rectangles and the two collision tests used by the resolver.
package geom

import "math"

// Vec2 is a point or direction in world units.
type Vec2 struct {
	X, Y float32
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the euclidean length of the vector.
func (v Vec2) Len() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
}

// Normalize returns the unit vector in the same direction.
// The zero vector is returned unchanged.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Dist returns the distance between two points.
func Dist(a, b Vec2) float32 {
	return a.Sub(b).Len()
}

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float32
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// CircleCircle reports whether two circles overlap.
// Touching circles (distance == r1+r2) do not collide.
func CircleCircle(c1 Vec2, r1 float32, c2 Vec2, r2 float32) bool {
	dx := c2.X - c1.X
	dy := c2.Y - c1.Y
	return dx*dx+dy*dy < (r1+r2)*(r1+r2)
}

// CircleRect reports whether a circle overlaps a rectangle.
func CircleRect(c Vec2, radius float32, rec Rect) bool {
	if rec.W <= 0 || rec.H <= 0 {
		return false
	}

	center := rec.Center()
	dx := abs(c.X - center.X)
	dy := abs(c.Y - center.Y)

	if dx > rec.W/2+radius || dy > rec.H/2+radius {
		return false
	}
	if dx <= rec.W/2 || dy <= rec.H/2 {
		return true
	}

	cornerSq := (dx-rec.W/2)*(dx-rec.W/2) + (dy-rec.H/2)*(dy-rec.H/2)
	return cornerSq <= radius*radius
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(deg float32) float32 {
	return deg * math.Pi / 180
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Sincos returns sin and cos of an angle in radians as float32.
func Sincos(rad float32) (float32, float32) {
	s, c := math.Sincos(float64(rad))
	return float32(s), float32(c)
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
