package obj2

import (
	"github.com/soypat/scad"
	"github.com/soypat/scad/form2/must2"
	"gonum.org/v1/gonum/spatial/r2"
)

/*

2D Panel outline with chamfered corners and edge hole positions.

Note: The hole pattern is used to layout multiple holes along an edge.

Examples:

"x" - single hole on edge
"xx" - two holes on edge
"x.x" = two holes on edge with spacing
"xx.x.xx" = five holes on edge with spacing
etc.

*/

// PanelParams defines the parameters for a 2D panel.
type PanelParams struct {
	Size        r2.Vec     // size of the panel
	Chamfer     float64    // corner chamfer distance
	HoleMargin  [4]float64 // hole margins for top, right, bottom, left
	HolePattern [4]string  // hole pattern for top, right, bottom, left
}

// Panel returns the counter-clockwise outline of a panel centered on the origin.
func Panel(k PanelParams) []r2.Vec {
	if k.Size.X <= 0 || k.Size.Y <= 0 {
		panic(scad.ErrMsg(scad.ErrInvalidArgument, "panel size must be positive"))
	}
	if 2*k.Chamfer >= k.Size.X || 2*k.Chamfer >= k.Size.Y {
		panic(scad.ErrMsg(scad.ErrInvalidArgument, "panel chamfer too large for size"))
	}
	hx, hy := 0.5*k.Size.X, 0.5*k.Size.Y
	outline := must2.AnnotatedPath{
		{Pos: r2.Vec{X: -hx, Y: -hy}, Chamfer: k.Chamfer},
		{Pos: r2.Vec{X: hx, Y: -hy}, Chamfer: k.Chamfer},
		{Pos: r2.Vec{X: hx, Y: hy}, Chamfer: k.Chamfer},
		{Pos: r2.Vec{X: -hx, Y: hy}, Chamfer: k.Chamfer},
	}
	return must2.TweakPath(outline)
}

// PanelHoles returns the centres of the edge holes of a panel.
func PanelHoles(k PanelParams) []r2.Vec {
	tl := r2.Vec{X: -0.5*k.Size.X + k.HoleMargin[3], Y: 0.5*k.Size.Y - k.HoleMargin[0]}
	tr := r2.Vec{X: 0.5*k.Size.X - k.HoleMargin[1], Y: 0.5*k.Size.Y - k.HoleMargin[0]}
	br := r2.Vec{X: 0.5*k.Size.X - k.HoleMargin[1], Y: -0.5*k.Size.Y + k.HoleMargin[2]}
	bl := r2.Vec{X: -0.5*k.Size.X + k.HoleMargin[3], Y: -0.5*k.Size.Y + k.HoleMargin[2]}

	var holes []r2.Vec
	// clockwise: top, right, bottom, left
	holes = lineOf(holes, tl, tr, k.HolePattern[0])
	holes = lineOf(holes, tr, br, k.HolePattern[1])
	holes = lineOf(holes, br, bl, k.HolePattern[2])
	holes = lineOf(holes, bl, tl, k.HolePattern[3])
	return holes
}

// lineOf appends positions along the line from p0 to p1 where pattern has an 'x'.
func lineOf(dst []r2.Vec, p0, p1 r2.Vec, pattern string) []r2.Vec {
	if pattern == "" {
		return dst
	}
	x := p0
	dx := scad.Scale(scad.Delta(p0, p1), 1/float64(len(pattern)))
	for _, c := range pattern {
		if c == 'x' {
			dst = append(dst, x)
		}
		x = r2.Add(x, dx)
	}
	return dst
}

// EuroRack Module Panels: http://www.doepfer.de/a100_man/a100m_e.htm

const erU = 1.75 * scad.MillimetresPerInch
const erHP = 0.2 * scad.MillimetresPerInch

// gaps between adjacent panels (doepfer 3U module spec)
const erUGap = ((3 * erU) - 128.5) * 0.5
const erHPGap = ((3 * erHP) - 15) * 0.5

// EuroRackParams defines the parameters for a eurorack panel.
type EuroRackParams struct {
	U       float64 // U-size (vertical)
	HP      float64 // HP-size (horizontal)
	Chamfer float64 // corner chamfer distance
}

func (k EuroRackParams) HPSize() float64 {
	return (k.HP * erHP) - (2 * erHPGap)
}

func (k EuroRackParams) USize() float64 {
	return (k.U * erU) - (2 * erUGap)
}

// EuroRackPanel returns the panel parameters of a eurorack synthesizer
// module panel (in mm) with its mounting hole layout.
func EuroRackPanel(k EuroRackParams) PanelParams {
	if k.U < 1 {
		panic(scad.ErrMsg(scad.ErrInvalidArgument, "k.U < 1"))
	}
	if k.HP <= 1 {
		panic(scad.ErrMsg(scad.ErrInvalidArgument, "k.HP <= 1"))
	}
	if k.Chamfer < 0 {
		panic(scad.ErrMsg(scad.ErrInvalidArgument, "k.Chamfer < 0"))
	}

	// edge to mount hole margins
	const vMargin = 3.0
	const hMargin = (3 * erHP * 0.5) - erHPGap

	pk := PanelParams{
		Size:       r2.Vec{X: k.HPSize(), Y: k.USize()},
		Chamfer:    k.Chamfer,
		HoleMargin: [4]float64{vMargin, hMargin, vMargin, hMargin},
	}
	if k.HP < 8 {
		// two holes
		pk.HolePattern = [4]string{"x", "", "", "x"}
	} else {
		// four holes
		pk.HolePattern = [4]string{"x", "x", "x", "x"}
	}
	return pk
}
