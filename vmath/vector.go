package vmath

import "math"

// Vec2 is a 2D vector in world units, screen convention (y grows downward)
// All operations return new values; a Vec2 is never shared by reference
type Vec2 struct {
	X, Y float64
}

func V2(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

func (v Vec2) Neg() Vec2 { return Vec2{-v.X, -v.Y} }

// Dot returns x1*x2 + y1*y2
func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

// Cross returns the z component of the 3D cross product
func (v Vec2) Cross(o Vec2) float64 { return v.X*o.Y - v.Y*o.X }

func (v Vec2) LenSq() float64 { return v.X*v.X + v.Y*v.Y }

func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

func (v Vec2) Distance(o Vec2) float64 { return v.Sub(o).Len() }

// Normalize returns the unit vector, zero-safe
// ok is false and the zero vector returned when length is below Epsilon
func (v Vec2) Normalize() (Vec2, bool) {
	l := v.Len()
	if l < Epsilon {
		return Vec2{}, false
	}
	return Vec2{v.X / l, v.Y / l}, true
}

// ScaleToLength rescales v to length l preserving direction
// A zero vector is returned unchanged
func (v Vec2) ScaleToLength(l float64) Vec2 {
	n, ok := v.Normalize()
	if !ok {
		return v
	}
	return n.Scale(l)
}

// Rotate rotates v by angle radians (positive turns +X toward +Y)
func (v Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Perpendicular returns v rotated 90° toward +Y
func (v Vec2) Perpendicular() Vec2 { return Vec2{-v.Y, v.X} }

// Lerp interpolates from v to o by t
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{v.X + (o.X-v.X)*t, v.Y + (o.Y-v.Y)*t}
}

func Midpoint(a, b Vec2) Vec2 { return Vec2{(a.X + b.X) / 2, (a.Y + b.Y) / 2} }

// IsFinite reports whether both components are finite
func (v Vec2) IsFinite() bool { return IsFinite(v.X) && IsFinite(v.Y) }
