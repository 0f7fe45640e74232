package render_test

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/soypat/scad/form2/must2"
	"github.com/soypat/scad/render"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestWritePlotPNG(t *testing.T) {
	var buf bytes.Buffer
	opts := render.Options{Title: "hexagon", Points: true, Close: true}
	err := render.WritePlot(&buf, "png", opts, must2.Nagon(6, 10), must2.UnitArcTo(90, must2.DefaultArcSteps))
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() == 0 || b.Dx() != b.Dy() {
		t.Errorf("preview size %v not square", b)
	}
}

func TestWritePlotEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := render.WritePlot(&buf, "png", render.Options{}); err == nil {
		t.Error("expected error for no paths")
	}
	if err := render.WritePlot(&buf, "png", render.Options{}, nil, []r2.Vec{}); err == nil {
		t.Error("expected error for empty paths")
	}
}

func TestCreatePNGAndThumbnail(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "square.png")
	dst := filepath.Join(dir, "square_thumb.png")
	square := []r2.Vec{{}, {X: 1}, {X: 1, Y: 1}, {Y: 1}}
	if err := render.CreatePNG(src, render.Options{Close: true}, square); err != nil {
		t.Fatal(err)
	}
	if err := render.CreateThumbnail(src, dst, 64); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(dst)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width > 64 || cfg.Height > 64 {
		t.Errorf("thumbnail %dx%d exceeds 64", cfg.Width, cfg.Height)
	}
}

func TestThumbnail(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 200, 100))
	th := render.Thumbnail(img, 50)
	if b := th.Bounds(); b.Dx() != 50 || b.Dy() != 25 {
		t.Errorf("thumbnail size %v, want 50x25", b)
	}
	small := render.Thumbnail(img, 400)
	if b := small.Bounds(); b.Dx() != 200 || b.Dy() != 100 {
		t.Errorf("small image resized to %v", b)
	}
}
