package d2

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// Box is a 2d bounding box.
type Box r2.Box

// Size returns the size of a 2d box.
func (a Box) Size() r2.Vec {
	return r2.Sub(a.Max, a.Min)
}

// Center returns the center of a 2d box.
func (a Box) Center() r2.Vec {
	return r2.Add(a.Min, r2.Scale(0.5, a.Size()))
}

// Enlarge returns a new 2d box enlarged by a size vector.
func (a Box) Enlarge(v r2.Vec) Box {
	v = r2.Scale(0.5, v)
	return Box{r2.Sub(a.Min, v), r2.Add(a.Max, v)}
}
