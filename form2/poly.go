package form2

import (
	"runtime/debug"

	"github.com/soypat/scad"
	"github.com/soypat/scad/form2/must2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Polygon returns an SDF2 made from a path, closing it if needed.
func Polygon(path []r2.Vec) (s scad.SDF2, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must2.Polygon(path), err
}

// NewTurtle returns a turtle with its pen at start, heading north.
// Check Turtle.Err after building for chamfers that could not be computed.
func NewTurtle(start r2.Vec) *must2.Turtle {
	return must2.NewTurtle(start)
}

// Nagon return the vertices of a N sided regular polygon.
func Nagon(n int, radius float64) (v []r2.Vec, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must2.Nagon(n, radius), err
}
