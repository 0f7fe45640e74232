package matter

import (
	"github.com/soypat/scad"
	"gonum.org/v1/gonum/spatial/r2"
)

var (
	// PLA (polylactic acid) is the most widely used plastic filament material in 3D printing.
	PLA = ViscousMaterial{shrink: 0.2e-2, pullShrink: .45} // 0.2% shrinkage
)

type ViscousMaterial struct {
	// shrink is the thermal contraction shrinkage of a material once the material
	// cools to room temperature after the heated bed is turned off.
	shrink float64
	// pullShrink takes into account viscoelastic shrinkage.
	pullShrink float64
}

// ScalePath scales a profile about the origin so it measures as designed
// once the printed part has cooled.
func (m ViscousMaterial) ScalePath(path []r2.Vec) []r2.Vec {
	scale := 1 / (1 - m.shrink)
	return scad.MapPath(path, scad.MulBy(r2.Vec{X: scale, Y: scale}))
}

// InternalDimScale returns the dimension to draw so that an internal
// feature (a hole or slot) of size real is not undersized after printing.
func (m ViscousMaterial) InternalDimScale(real float64) float64 {
	if real <= 0 {
		panic(scad.ErrMsg(scad.ErrInvalidArgument, "InternalDimScale only works for non-zero dimensions"))
	}
	return real*(m.shrink+1) + m.pullShrink
}
