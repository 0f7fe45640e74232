package scad

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// 2D vector algebra on gonum's r2.Vec. All functions are pure.

// Delta returns the vector from a to b, that is b - a.
func Delta(a, b r2.Vec) r2.Vec {
	return r2.Sub(b, a)
}

// Add returns the component-wise sum of a and b.
func Add(a, b r2.Vec) r2.Vec {
	return r2.Add(a, b)
}

// AddTo returns a function adding a to its argument. Useful with MapPath
// to translate every point of a path.
func AddTo(a r2.Vec) func(r2.Vec) r2.Vec {
	return func(b r2.Vec) r2.Vec { return r2.Add(a, b) }
}

// Mul returns the component-wise product of a and b.
func Mul(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: a.X * b.X, Y: a.Y * b.Y}
}

// MulBy returns a function multiplying its argument component-wise by a.
func MulBy(a r2.Vec) func(r2.Vec) r2.Vec {
	return func(b r2.Vec) r2.Vec { return Mul(a, b) }
}

// Scale multiplies every component of v by k.
func Scale(v r2.Vec, k float64) r2.Vec {
	return r2.Scale(k, v)
}

// Inverse negates all components of v.
func Inverse(v r2.Vec) r2.Vec {
	return r2.Scale(-1, v)
}

// Length returns the euclidean norm of v.
func Length(v r2.Vec) float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Distance returns the euclidean distance between a and b.
func Distance(a, b r2.Vec) float64 {
	return Length(Delta(a, b))
}

// Normal returns v rotated by -90 degrees, [y, -x]. The result has the
// same length as v; it is not normalized.
func Normal(v r2.Vec) r2.Vec {
	return r2.Vec{X: v.Y, Y: -v.X}
}

// SetLength returns a vector pointing along v with length l.
// A zero-length v yields non-finite components.
func SetLength(v r2.Vec, l float64) r2.Vec {
	ratio := l / Length(v)
	return r2.Vec{X: v.X * ratio, Y: v.Y * ratio}
}

// UnitVector returns the unit vector at angle degrees from the positive x axis.
func UnitVector(degrees float64) r2.Vec {
	rad := DtoR(degrees)
	return r2.Vec{X: math.Cos(rad), Y: math.Sin(rad)}
}

// Angle returns the angle in degrees from the positive x axis to v,
// in the range (-180, 180].
func Angle(v r2.Vec) float64 {
	return AngleBetween(r2.Vec{}, v)
}

// AngleBetween returns the angle in degrees of the vector starting at
// start and ending at end, measured from the positive x axis.
func AngleBetween(start, end r2.Vec) float64 {
	d := Delta(start, end)
	return RtoD(math.Atan2(d.Y, d.X))
}

// RotateAroundOrigin rotates p counter-clockwise by degrees around the origin.
//
// It is computed as the row vector p times the matrix
// [[cos t, -sin t], [sin t, cos t]] with t = -degrees.
func RotateAroundOrigin(p r2.Vec, degrees float64) r2.Vec {
	theta := -degrees / 180 * math.Pi
	s, c := math.Sin(theta), math.Cos(theta)
	return r2.Vec{
		X: p.X*c + p.Y*s,
		Y: p.X*-s + p.Y*c,
	}
}

// Equal reports whether a and b have exactly equal coordinates.
func Equal(a, b r2.Vec) bool {
	return a.X == b.X && a.Y == b.Y
}

// MapPath returns a new path with f applied to every point of path.
func MapPath(path []r2.Vec, f func(r2.Vec) r2.Vec) []r2.Vec {
	out := make([]r2.Vec, len(path))
	for i, p := range path {
		out[i] = f(p)
	}
	return out
}
