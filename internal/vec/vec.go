// Package vec provides 2D vector math for the simulation core.
// It contains no external dependencies to keep the physics pure and testable.
package vec

import "math"

// Vec is an immutable 2D vector. All operations return new values.
type Vec struct {
	X, Y float64
}

// New creates a vector from its components.
func New(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// FromAngle returns the unit vector pointing along the given angle in degrees.
// Angle 0 points along +X; angles grow counter-clockwise in world coordinates.
func FromAngle(degrees float64) Vec {
	rad := degrees * math.Pi / 180
	return Vec{X: math.Cos(rad), Y: math.Sin(rad)}
}

// Add returns the sum of two vectors.
func (v Vec) Add(other Vec) Vec {
	return Vec{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vec) Sub(other Vec) Vec {
	return Vec{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale returns the vector multiplied by a scalar.
func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// Length returns the Euclidean magnitude.
func (v Vec) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the Euclidean distance between two points.
func (v Vec) Dist(other Vec) float64 {
	return v.Sub(other).Length()
}

// Rotate returns the vector rotated by the given angle in degrees.
func (v Vec) Rotate(degrees float64) Vec {
	rad := degrees * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return Vec{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Orthogonal returns the vector rotated 90 degrees counter-clockwise.
// Equivalent to Rotate(90) without trigonometry.
func (v Vec) Orthogonal() Vec {
	return Vec{X: -v.Y, Y: v.X}
}
