package form2

import (
	"runtime/debug"

	"github.com/soypat/glgl/math/ms2"
	"github.com/soypat/scad/form2/must2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Vertex is a path vertex with an optional chamfer annotation.
type Vertex = must2.Vertex

// AnnotatedPath is a path whose vertices carry chamfer annotations.
type AnnotatedPath = must2.AnnotatedPath

// ClosePath returns path with its first point appended when the first and last points differ.
func ClosePath(path []r2.Vec) []r2.Vec {
	return must2.ClosePath(path)
}

// ChunkChain returns the chained pairs of adjacent points of path.
func ChunkChain(path []r2.Vec) [][2]r2.Vec {
	return must2.ChunkChain(path)
}

// PointTriples returns the (previous, current, next) window around every
// point of path, wrapping around both ends.
func PointTriples(path []r2.Vec) (t [][3]r2.Vec, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must2.PointTriples(path), err
}

// ChamferPoint returns the two points that replace the corner t[1] when
// it is chamfered by radius.
func ChamferPoint(t [3]r2.Vec, radius float64) (cut [2]r2.Vec, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must2.ChamferPoint(t, radius), err
}

// TweakPath returns the plain path described by an annotated path,
// chamfering every annotated vertex.
func TweakPath(path AnnotatedPath) (p []r2.Vec, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must2.TweakPath(path), err
}

// Bounds returns the bounding box of path.
func Bounds(path []r2.Vec) r2.Box {
	return must2.Bounds(path)
}

// PathToMS2 converts path to single precision vectors for GPU shape builders.
func PathToMS2(path []r2.Vec) []ms2.Vec {
	v := make([]ms2.Vec, len(path))
	for i, p := range path {
		v[i] = ms2.Vec{X: float32(p.X), Y: float32(p.Y)}
	}
	return v
}

// Reverse returns a copy of path with its points in reverse order.
func Reverse(path []r2.Vec) []r2.Vec {
	return must2.Reverse(path)
}
