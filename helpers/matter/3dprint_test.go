package matter_test

import (
	"testing"

	"github.com/soypat/scad/helpers/matter"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestScalePath(t *testing.T) {
	path := []r2.Vec{{X: 10}, {X: 10, Y: -20}}
	got := matter.PLA.ScalePath(path)
	scale := 1 / (1 - 0.2e-2)
	for i := range path {
		want := r2.Scale(scale, path[i])
		if !scalar.EqualWithinAbs(got[i].X, want.X, 1e-12) || !scalar.EqualWithinAbs(got[i].Y, want.Y, 1e-12) {
			t.Errorf("point %d = %v, want %v", i, got[i], want)
		}
	}
	if path[0] != (r2.Vec{X: 10}) {
		t.Error("ScalePath modified its input")
	}
}

func TestInternalDimScale(t *testing.T) {
	if got := matter.PLA.InternalDimScale(10); got <= 10 {
		t.Errorf("internal dimension should grow, got %v", got)
	}
	defer func() {
		if recover() == nil {
			t.Error("expected panic for zero dimension")
		}
	}()
	matter.PLA.InternalDimScale(0)
}
