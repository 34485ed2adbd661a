package vmath

import "math"

// Vec2 is a 2D point or vector in canvas pixel space
type Vec2 struct {
	X, Y float64
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v scaled by factor
func (v Vec2) Scale(factor float64) Vec2 {
	return Vec2{v.X * factor, v.Y * factor}
}

// Mag returns Euclidean vector length
func (v Vec2) Mag() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns Euclidean distance between v and o
func (v Vec2) Dist(o Vec2) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// Norm returns unit vector in the direction of v, zero-safe
func (v Vec2) Norm() Vec2 {
	mag := v.Mag()
	if mag == 0 {
		return Vec2{}
	}
	return Vec2{v.X / mag, v.Y / mag}
}

// Rotate rotates v by angle radians counter-clockwise
func (v Vec2) Rotate(angle float64) Vec2 {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Vec2{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

// Lerp returns v + t*(o - v)
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{v.X + t*(o.X-v.X), v.Y + t*(o.Y-v.Y)}
}

// Clamp01 limits x to [0, 1]
func Clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Clamp limits x to [lo, hi]
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
