package form2

import (
	"runtime/debug"

	"github.com/soypat/scad/form2/must2"
	"gonum.org/v1/gonum/spatial/r2"
)

// DefaultArcSteps is the conventional arc segment count.
const DefaultArcSteps = must2.DefaultArcSteps

// UnitArc returns steps+1 points on the unit circle from startDeg to endDeg.
func UnitArc(startDeg, endDeg float64, steps int) (arc []r2.Vec, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must2.UnitArc(startDeg, endDeg, steps), err
}

// UnitArcTo returns the unit arc from 0 to endDeg degrees.
func UnitArcTo(endDeg float64, steps int) (arc []r2.Vec, err error) {
	return UnitArc(0, endDeg, steps)
}

// ArcLeft returns an arc starting at start along heading that curves left.
func ArcLeft(start r2.Vec, heading, radius, degrees float64, steps int) (arc []r2.Vec, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must2.ArcLeft(start, heading, radius, degrees, steps), err
}

// ArcRight returns an arc starting at start along heading that curves right.
func ArcRight(start r2.Vec, heading, radius, degrees float64, steps int) (arc []r2.Vec, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must2.ArcRight(start, heading, radius, degrees, steps), err
}
