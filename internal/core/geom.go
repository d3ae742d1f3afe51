// Package core provides fundamental types and utilities for the clicker game.
// It imports no frontend (Bubble Tea, Ebiten or raylib) so game logic stays
// pure and testable.
package core

import "math"

// Vec2 is a point or displacement in world units.
type Vec2 struct {
	X, Y float64
}

// V creates a new vector.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the component-wise sum of two vectors.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the component-wise difference v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// LenSq returns the squared length of the vector.
func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Len returns the length of the vector.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.LenSq())
}

// Size is a width/height pair in world units.
type Size struct {
	W, H float64
}

// Circle is a filled circle used for hit testing.
type Circle struct {
	Center Vec2
	Radius float64
}

// Contains returns true if p lies inside the circle or exactly on its edge.
func (c Circle) Contains(p Vec2) bool {
	return p.Sub(c.Center).LenSq() <= c.Radius*c.Radius
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
