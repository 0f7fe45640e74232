package must2

import (
	"math"

	"github.com/soypat/scad"
	"github.com/soypat/scad/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

const tolerance = 1e-9

// polygon is an SDF2 made from a closed set of line segments.
type polygon struct {
	vertex []r2.Vec  // vertices, closed
	vector []r2.Vec  // unit line vectors
	length []float64 // line lengths
	bb     r2.Box    // bounding box
}

// Polygon returns an SDF2 made from a path, closing it if the first and
// last points are further apart than a small tolerance. The path is not
// modified. Polygon panics if the path has fewer than three points or two
// consecutive coincident points.
func Polygon(path []r2.Vec) scad.SDF2 {
	n := len(path)
	if n < 3 {
		panic(scad.ErrMsg(scad.ErrInvalidArgument, "polygon must have at least three points"))
	}
	s := polygon{}
	s.vertex = make([]r2.Vec, n, n+1)
	copy(s.vertex, path)
	if !d2.EqualWithin(path[0], path[n-1], tolerance) {
		s.vertex = append(s.vertex, path[0])
	}

	nsegs := len(s.vertex) - 1
	s.vector = make([]r2.Vec, nsegs)
	s.length = make([]float64, nsegs)
	for i := 0; i < nsegs; i++ {
		l := scad.Delta(s.vertex[i], s.vertex[i+1])
		s.length[i] = scad.Length(l)
		if s.length[i] == 0 {
			panic(scad.ErrMsg(scad.ErrDegenerateGeometry, "polygon has coincident consecutive points"))
		}
		s.vector[i] = scad.SetLength(l, 1)
	}
	s.bb = Bounds(s.vertex)
	return &s
}

// Evaluate returns the minimum distance for a 2d polygon.
func (s *polygon) Evaluate(p r2.Vec) float64 {
	dd := math.MaxFloat64 // d^2 to polygon (>0)
	wn := 0               // winding number (inside/outside)

	nsegs := len(s.vertex) - 1
	pb := r2.Sub(p, s.vertex[0])

	for i := 0; i < nsegs; i++ {
		a := s.vertex[i]
		b := s.vertex[i+1]

		pa := pb
		pb = r2.Sub(p, b)

		t := r2.Dot(pa, s.vector[i])               // t-parameter of projection onto line
		dn := r2.Dot(pa, scad.Normal(s.vector[i])) // normal distance from p to line

		// Distance to line segment
		if t < 0 {
			dd = math.Min(dd, r2.Norm2(pa)) // distance to vertex[0] of line
		} else if t > s.length[i] {
			dd = math.Min(dd, r2.Norm2(pb)) // distance to vertex[1] of line
		} else {
			dd = math.Min(dd, dn*dn) // normal distance to line
		}

		// Is the point in the polygon?
		// See: http://geomalgorithms.com/a03-_inclusion.html
		if a.Y <= p.Y {
			if b.Y > p.Y && dn < 0 { // upward crossing, p left of segment
				wn++
			}
		} else if b.Y <= p.Y && dn > 0 { // downward crossing, p right of segment
			wn--
		}
	}

	d := math.Sqrt(dd)
	if wn != 0 {
		return -d
	}
	return d
}

// Bounds returns the bounding box of a 2d polygon.
func (s *polygon) Bounds() r2.Box {
	return s.bb
}

// Nagon return the vertices of a N sided regular polygon.
func Nagon(n int, radius float64) []r2.Vec {
	if n < 3 {
		panic(scad.ErrMsg(scad.ErrInvalidArgument, "nagon must have at least three sides"))
	}
	step := 360 / float64(n)
	v := make([]r2.Vec, n)
	for i := range v {
		v[i] = scad.RotateAroundOrigin(r2.Vec{X: radius}, step*float64(i))
	}
	return v
}
