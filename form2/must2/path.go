package must2

import (
	"math"

	"github.com/soypat/scad"
	"github.com/soypat/scad/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Vertex is a path vertex with an optional chamfer annotation.
type Vertex struct {
	Pos r2.Vec
	// Chamfer is the distance from Pos along each incident edge at which
	// the corner is cut. Zero leaves the vertex sharp.
	Chamfer float64
}

// V returns an unannotated vertex at (x, y).
func V(x, y float64) Vertex { return Vertex{Pos: r2.Vec{X: x, Y: y}} }

// AnnotatedPath is a path whose vertices carry chamfer annotations.
// It is turned into a plain path by TweakPath.
type AnnotatedPath []Vertex

// ClosePath returns path with its first point appended when the first and
// last points differ. A path that is already closed, or empty, is returned as is.
func ClosePath(path []r2.Vec) []r2.Vec {
	n := len(path)
	if n == 0 || scad.Equal(path[0], path[n-1]) {
		return path
	}
	closed := make([]r2.Vec, n+1)
	copy(closed, path)
	closed[n] = path[0]
	return closed
}

// ChunkChain returns the chained pairs of adjacent elements of a.
// Given [1, 2, 3, 4] it returns [[1, 2], [2, 3], [3, 4]]. The last element
// is not paired with the first.
func ChunkChain[T any](a []T) [][2]T {
	if len(a) < 2 {
		return nil
	}
	pairs := make([][2]T, len(a)-1)
	for i := range pairs {
		pairs[i] = [2]T{a[i], a[i+1]}
	}
	return pairs
}

// PointTriples maps every element of a to a triple holding the previous,
// current and next element. The first and last triples wrap around the ends of a.
// PointTriples panics if a has fewer than three elements.
func PointTriples[T any](a []T) [][3]T {
	n := len(a)
	if n < 3 {
		panic(scad.ErrMsg(scad.ErrInvalidArgument, "must have at least three points"))
	}
	triples := make([][3]T, n)
	for i := range a {
		triples[i] = [3]T{a[(i+n-1)%n], a[i], a[(i+1)%n]}
	}
	return triples
}

// ChamferPoint cuts the corner at the middle point of t and returns the two
// points replacing it: the first lies radius away toward t[0], the second
// radius away toward t[2].
//
// The direction toward each neighbour comes from its slope angle, atan(dy/dx).
// Only the x offset takes the sign of dx; the y offset keeps the sign of the
// slope angle, so for a diagonal neighbour left of the corner the point is
// mirrored across the horizontal through the corner. Axis-aligned edges are
// exact. Vertical edges divide by zero and resolve through atan(±Inf) = ±90°.
// ChamferPoint panics with scad.ErrDegenerateGeometry when a neighbour
// coincides with the corner.
func ChamferPoint(t [3]r2.Vec, radius float64) [2]r2.Vec {
	cut, err := chamferPoint(t, radius)
	if err != nil {
		panic(err)
	}
	return cut
}

func chamferPoint(t [3]r2.Vec, radius float64) ([2]r2.Vec, error) {
	mid := t[1]
	cut := [2]r2.Vec{
		chamferToward(mid, t[0], radius),
		chamferToward(mid, t[2], radius),
	}
	if !d2.Finite(cut[0]) || !d2.Finite(cut[1]) {
		return cut, scad.ErrMsg(scad.ErrDegenerateGeometry, "chamfered vertex coincides with a neighbour")
	}
	return cut, nil
}

// chamferToward returns the point radius away from mid in the slope direction of other.
func chamferToward(mid, other r2.Vec, radius float64) r2.Vec {
	dx := other.X - mid.X
	if dx == 0 {
		dx = 0 // -0 would flip the sign of the infinite slope.
	}
	theta := math.Atan((other.Y - mid.Y) / dx)
	return r2.Vec{
		X: mid.X + radius*math.Cos(theta)*scad.Sign(dx),
		Y: mid.Y + radius*math.Sin(theta),
	}
}

// TweakPath returns the plain path described by path. Every vertex with a
// non-zero, non-NaN chamfer is replaced by the two points ChamferPoint computes from
// its neighbours, wrapping around the path ends; other vertices pass through.
// TweakPath panics if path has fewer than three vertices.
func TweakPath(path AnnotatedPath) []r2.Vec {
	out := make([]r2.Vec, 0, len(path)+len(path)/2)
	for _, t := range PointTriples(path) {
		v := t[1]
		if v.Chamfer == 0 || math.IsNaN(v.Chamfer) {
			out = append(out, v.Pos)
			continue
		}
		cut := ChamferPoint([3]r2.Vec{t[0].Pos, v.Pos, t[2].Pos}, v.Chamfer)
		out = append(out, cut[0], cut[1])
	}
	return out
}

// Bounds returns the bounding box of path. An empty path has a zero box.
func Bounds(path []r2.Vec) r2.Box {
	return r2.Box(d2.Set(path).Bounds())
}

// Reverse returns a copy of path with its points in reverse order.
func Reverse(path []r2.Vec) []r2.Vec {
	n := len(path)
	rev := make([]r2.Vec, n)
	for i, p := range path {
		rev[n-1-i] = p
	}
	return rev
}
