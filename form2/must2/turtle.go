package must2

import (
	"github.com/soypat/scad"
	"gonum.org/v1/gonum/spatial/r2"
)

// Headings set by the cardinal moves, in degrees.
const (
	headingEast  = 0
	headingNorth = 90
	headingWest  = 180
	headingSouth = 270
)

// Turtle accumulates a path from relative moves of a pen.
// A Turtle is owned by one caller; it is not safe for concurrent use.
type Turtle struct {
	pen     r2.Vec
	heading float64   // degrees from the positive x axis.
	path    []r2.Vec  // committed points, never empty.
	pending pendingOp // applied to the last committed vertex on the next move.
	err     error     // first degenerate chamfer.
}

type opKind int

const (
	opNone opKind = iota
	opChamfer
)

// pendingOp is an operation armed by the caller and consumed by the next move.
type pendingOp struct {
	kind   opKind
	radius float64
}

// NewTurtle returns a turtle with its pen at start, heading north.
func NewTurtle(start r2.Vec) *Turtle {
	return &Turtle{
		pen:     start,
		heading: headingNorth,
		path:    []r2.Vec{start},
	}
}

// North moves the pen n units in the positive Y direction.
func (t *Turtle) North(n float64) *Turtle {
	return t.cardinal(r2.Vec{Y: n}, headingNorth)
}

// South moves the pen n units in the negative Y direction.
func (t *Turtle) South(n float64) *Turtle {
	return t.cardinal(r2.Vec{Y: -n}, headingSouth)
}

// East moves the pen n units in the positive X direction.
func (t *Turtle) East(n float64) *Turtle {
	return t.cardinal(r2.Vec{X: n}, headingEast)
}

// West moves the pen n units in the negative X direction.
func (t *Turtle) West(n float64) *Turtle {
	return t.cardinal(r2.Vec{X: -n}, headingWest)
}

func (t *Turtle) cardinal(d r2.Vec, heading float64) *Turtle {
	t.heading = heading
	t.step(r2.Add(t.pen, d))
	return t
}

// Walk moves the pen n units along the current heading.
func (t *Turtle) Walk(n float64) *Turtle {
	t.step(scad.Add(scad.Scale(scad.UnitVector(t.heading), n), t.pen))
	return t
}

// Turn adds degrees to the heading.
func (t *Turtle) Turn(degrees float64) *Turtle {
	t.heading += degrees
	return t
}

// TurnLeft turns the heading counter-clockwise by degrees.
func (t *Turtle) TurnLeft(degrees float64) *Turtle { return t.Turn(degrees) }

// TurnRight turns the heading clockwise by degrees.
func (t *Turtle) TurnRight(degrees float64) *Turtle { return t.Turn(-degrees) }

// Chamfer arms a chamfer of the given radius on the corner the next move
// creates at the current pen position. A later Chamfer call before a move
// replaces it. Chamfer(0) disarms.
func (t *Turtle) Chamfer(radius float64) *Turtle {
	if radius == 0 {
		t.pending = pendingOp{}
		return t
	}
	t.pending = pendingOp{kind: opChamfer, radius: radius}
	return t
}

// step moves the pen to p and commits it, consuming any pending operation.
func (t *Turtle) step(p r2.Vec) {
	op := t.pending
	t.pending = pendingOp{}
	t.pen = p
	var applied bool
	var err error
	t.path, applied, err = commit(t.path, op, p)
	switch {
	case err != nil:
		if t.err == nil {
			t.err = err
		}
	case op.kind == opChamfer && !applied:
		scad.Logger().Warn("too few points in turtle path to chamfer",
			"radius", op.radius, "points", len(t.path)-1)
	}
}

// commit appends p to path, first applying op to the last committed vertex.
// applied is false when op needs more history than path holds; p is then
// appended as a plain point. On a degenerate chamfer p is appended plainly
// and the error returned.
func commit(path []r2.Vec, op pendingOp, p r2.Vec) (next []r2.Vec, applied bool, err error) {
	n := len(path)
	if op.kind != opChamfer || n < 2 {
		return append(path, p), false, nil
	}
	cut, err := chamferPoint([3]r2.Vec{path[n-2], path[n-1], p}, op.radius)
	if err != nil {
		return append(path, p), false, err
	}
	return append(path[:n-1], cut[0], cut[1], p), true, nil
}

// Pos returns the pen position.
func (t *Turtle) Pos() r2.Vec { return t.pen }

// Heading returns the heading in degrees.
func (t *Turtle) Heading() float64 { return t.heading }

// Len returns the number of committed points.
func (t *Turtle) Len() int { return len(t.path) }

// Err returns the first error from a chamfer that could not be computed.
// The moves that produced it committed their points without chamfering.
func (t *Turtle) Err() error { return t.err }

// Path returns a copy of the points walked by the turtle.
func (t *Turtle) Path() []r2.Vec {
	path := make([]r2.Vec, len(t.path))
	copy(path, t.path)
	return path
}
