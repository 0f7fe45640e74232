package must2

import (
	"math"

	"github.com/soypat/scad"
	"gonum.org/v1/gonum/spatial/r2"
)

// DefaultArcSteps is the number of segments callers conventionally use
// to approximate an arc when they have no fidelity requirement.
const DefaultArcSteps = 8

// UnitArc returns steps+1 points on the unit circle evenly spaced in angle
// from startDeg to endDeg, both in degrees. The arc is never closed, even
// when it spans a full turn; see ClosePath.
// UnitArc panics if steps < 1.
func UnitArc(startDeg, endDeg float64, steps int) []r2.Vec {
	if steps < 1 {
		panic(scad.ErrMsg(scad.ErrInvalidArgument, "arc steps must be at least 1"))
	}
	start := startDeg / 180 * math.Pi
	sweep := (endDeg - startDeg) / 180 * math.Pi
	points := make([]r2.Vec, steps+1)
	for i := range points {
		a := start + sweep*float64(i)/float64(steps)
		points[i] = r2.Vec{X: math.Cos(a), Y: math.Sin(a)}
	}
	return points
}

// UnitArcTo returns the unit arc from the positive x axis to endDeg.
func UnitArcTo(endDeg float64, steps int) []r2.Vec {
	return UnitArc(0, endDeg, steps)
}

// ArcLeft returns an arc of the given radius spanning degrees that starts at
// start travelling along heading (degrees, 90 is north) and curves to the left.
func ArcLeft(start r2.Vec, heading, radius, degrees float64, steps int) []r2.Vec {
	// Centre of the unit arc moves to (-1,0) so the arc begins at the origin heading north.
	return placeArc(UnitArcTo(degrees, steps), scad.AddTo(r2.Vec{X: -1}), start, heading, radius)
}

// ArcRight is like ArcLeft but curves to the right.
func ArcRight(start r2.Vec, heading, radius, degrees float64, steps int) []r2.Vec {
	mirror := func(p r2.Vec) r2.Vec {
		return scad.Add(r2.Vec{X: 1}, scad.Mul(r2.Vec{X: -1, Y: 1}, p))
	}
	return placeArc(UnitArcTo(degrees, steps), mirror, start, heading, radius)
}

func placeArc(arc []r2.Vec, originize func(r2.Vec) r2.Vec, start r2.Vec, heading, radius float64) []r2.Vec {
	arc = scad.MapPath(arc, originize)
	arc = scad.MapPath(arc, scad.MulBy(r2.Vec{X: radius, Y: radius}))
	arc = scad.MapPath(arc, func(p r2.Vec) r2.Vec { return scad.RotateAroundOrigin(p, heading-90) })
	return scad.MapPath(arc, scad.AddTo(start))
}
