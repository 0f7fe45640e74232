package must2_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/soypat/scad"
	"github.com/soypat/scad/form2/must2"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestTurtleSquare(t *testing.T) {
	tt := must2.NewTurtle(r2.Vec{})
	if tt.Heading() != 90 {
		t.Errorf("initial heading %v, want 90", tt.Heading())
	}
	tt.East(10).North(10).West(10).South(10)
	want := []r2.Vec{{}, {X: 10}, {X: 10, Y: 10}, {Y: 10}, {}}
	if got := tt.Path(); !pathEqual(got, want) {
		t.Errorf("Path = %v, want %v", got, want)
	}
	if tt.Heading() != 270 {
		t.Errorf("heading after South %v, want 270", tt.Heading())
	}
	if tt.Len() != 5 || tt.Pos() != (r2.Vec{}) {
		t.Errorf("Len=%d Pos=%v", tt.Len(), tt.Pos())
	}
	if tt.Err() != nil {
		t.Error(tt.Err())
	}
}

func TestTurtleChamfer(t *testing.T) {
	tt := must2.NewTurtle(r2.Vec{}).East(10).Chamfer(2).North(10)
	want := []r2.Vec{{}, {X: 8}, {X: 10, Y: 2}, {X: 10, Y: 10}}
	if got := tt.Path(); !pathEqual(got, want) {
		t.Errorf("Path = %v, want %v", got, want)
	}
	// The chamfer is consumed by the move.
	tt.East(5)
	if tt.Len() != 5 {
		t.Errorf("chamfer applied twice, Len=%d", tt.Len())
	}
}

func TestTurtleChamferRearmAndDisarm(t *testing.T) {
	tt := must2.NewTurtle(r2.Vec{}).East(10).Chamfer(5).Chamfer(1).North(10)
	if got := tt.Path(); !vecEqual(got[1], r2.Vec{X: 9}) {
		t.Errorf("last Chamfer call should win, got %v", got)
	}
	tt = must2.NewTurtle(r2.Vec{}).East(10).Chamfer(2).Chamfer(0).North(10)
	if tt.Len() != 3 {
		t.Errorf("Chamfer(0) should disarm, got %v", tt.Path())
	}
}

func TestTurtleChamferTooFewPoints(t *testing.T) {
	var buf bytes.Buffer
	scad.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { scad.SetLogger(nil) })

	tt := must2.NewTurtle(r2.Vec{}).Chamfer(1).East(5)
	if got := tt.Path(); !pathEqual(got, []r2.Vec{{}, {X: 5}}) {
		t.Errorf("Path = %v", got)
	}
	if !strings.Contains(buf.String(), "too few points") {
		t.Errorf("expected warning, log was %q", buf.String())
	}
	// The chamfer must not linger to the next corner.
	tt.North(5)
	if tt.Len() != 3 {
		t.Errorf("stale chamfer applied: %v", tt.Path())
	}
	if tt.Err() != nil {
		t.Error(tt.Err())
	}
}

func TestTurtleDegenerateChamfer(t *testing.T) {
	tt := must2.NewTurtle(r2.Vec{}).East(10).Chamfer(1).East(0)
	if !errors.Is(tt.Err(), scad.ErrDegenerateGeometry) {
		t.Fatalf("Err = %v, want degenerate geometry", tt.Err())
	}
	if tt.Len() != 3 {
		t.Errorf("point should still be committed, got %v", tt.Path())
	}
	first := tt.Err()
	tt.Chamfer(1).East(0)
	if tt.Err() != first {
		t.Error("Err should keep the first error")
	}
}

func TestTurtlePathIsCopy(t *testing.T) {
	tt := must2.NewTurtle(r2.Vec{X: 1}).North(1)
	p := tt.Path()
	p[0] = r2.Vec{X: 100}
	if tt.Path()[0] != (r2.Vec{X: 1}) {
		t.Error("Path exposed internal storage")
	}
}

func TestTurtleWalk(t *testing.T) {
	tt := must2.NewTurtle(r2.Vec{}).Walk(10)
	if got := tt.Pos(); !vecEqual2(got, r2.Vec{Y: 10}, 1e-9) {
		t.Errorf("Walk north ended at %v", got)
	}
	tt.TurnRight(90).Walk(5).TurnLeft(180).Walk(5)
	if got := tt.Pos(); !vecEqual2(got, r2.Vec{Y: 10}, 1e-9) {
		t.Errorf("there and back ended at %v", got)
	}

	hex := must2.NewTurtle(r2.Vec{})
	for i := 0; i < 6; i++ {
		hex.Walk(3).Turn(-60)
	}
	if got := hex.Pos(); !vecEqual2(got, r2.Vec{}, 1e-9) {
		t.Errorf("hexagon did not close, ended at %v", got)
	}
	if hex.Len() != 7 {
		t.Errorf("hexagon has %d points", hex.Len())
	}
}

func TestTurtleWalkChamfer(t *testing.T) {
	tt := must2.NewTurtle(r2.Vec{}).North(10).TurnRight(90).Chamfer(1).Walk(10)
	got := tt.Path()
	if len(got) != 4 {
		t.Fatalf("Walk did not apply chamfer: %v", got)
	}
	if !vecEqual2(got[1], r2.Vec{Y: 9}, 1e-9) || !vecEqual2(got[2], r2.Vec{X: 1, Y: 10}, 1e-9) {
		t.Errorf("chamfer points %v %v", got[1], got[2])
	}
}

func vecEqual2(a, b r2.Vec, tol float64) bool {
	return scad.Length(scad.Delta(a, b)) <= tol
}
