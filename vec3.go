package scad

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Lift returns v as a 3D vector with a zero z component. Mixed 2D/3D
// arithmetic lifts the 2D operand first.
func Lift(v r2.Vec) r3.Vec {
	return r3.Vec{X: v.X, Y: v.Y}
}

// SetZ returns v as a 3D vector with the given z component.
func SetZ(v r2.Vec, z float64) r3.Vec {
	return r3.Vec{X: v.X, Y: v.Y, Z: z}
}

// Delta3 returns b - a.
func Delta3(a, b r3.Vec) r3.Vec {
	return r3.Sub(b, a)
}

// Add3 returns the component-wise sum of a and b.
func Add3(a, b r3.Vec) r3.Vec {
	return r3.Add(a, b)
}

// Mul3 returns the component-wise product of a and b.
func Mul3(a, b r3.Vec) r3.Vec {
	return r3.Vec{X: a.X * b.X, Y: a.Y * b.Y, Z: a.Z * b.Z}
}

// Scale3 multiplies every component of v by k.
func Scale3(v r3.Vec, k float64) r3.Vec {
	return r3.Scale(k, v)
}

// Equal3 reports whether a and b have exactly equal coordinates.
func Equal3(a, b r3.Vec) bool {
	return a == b
}
