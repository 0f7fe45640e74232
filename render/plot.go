package render

import (
	"errors"
	"image"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/nfnt/resize"
	"github.com/soypat/scad/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// DefaultSize is the side length of a preview when Options leaves it unset.
const DefaultSize = 4 * vg.Inch

// Options configures a path preview.
type Options struct {
	Title string
	// Size is the side length of the square preview. Zero uses DefaultSize.
	Size vg.Length
	// Points draws a marker on every path point.
	Points bool
	// Close draws the segment from the last point of each path back to its first.
	Close bool
}

// WritePlot draws paths on equally scaled axes and writes the preview to w.
// format is any format gonum/plot supports: "png", "svg", "pdf", "eps", "jpg", "tif".
func WritePlot(w io.Writer, format string, opts Options, paths ...[]r2.Vec) error {
	p, err := newPlot(opts, paths)
	if err != nil {
		return err
	}
	size := opts.Size
	if size <= 0 {
		size = DefaultSize
	}
	wt, err := p.WriterTo(size, size, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// CreatePNG writes a PNG preview of paths to the file at path.
func CreatePNG(path string, opts Options, paths ...[]r2.Vec) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	err = WritePlot(file, "png", opts, paths...)
	if err != nil {
		return err
	}
	return file.Close()
}

func newPlot(opts Options, paths [][]r2.Vec) (*plot.Plot, error) {
	var all d2.Set
	for _, path := range paths {
		all = append(all, path...)
	}
	if len(all) == 0 {
		return nil, errors.New("no points to plot")
	}
	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	for i, path := range paths {
		if len(path) == 0 {
			continue
		}
		if opts.Close && len(path) > 2 {
			path = append(path[:len(path):len(path)], path[0])
		}
		xys := toXYs(path)
		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, err
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		if opts.Points {
			sc, err := plotter.NewScatter(xys)
			if err != nil {
				return nil, err
			}
			sc.GlyphStyle.Color = plotutil.Color(i)
			sc.GlyphStyle.Radius = vg.Points(2)
			p.Add(sc)
		}
	}

	// Equal scale on both axes so chamfers and arcs are not distorted.
	bb := all.Bounds()
	side := math.Max(bb.Size().X, bb.Size().Y)
	if side == 0 {
		side = 1
	}
	side *= 1.1
	bb = d2.Box{Min: bb.Center(), Max: bb.Center()}.Enlarge(r2.Vec{X: side, Y: side})
	p.X.Min, p.X.Max = bb.Min.X, bb.Max.X
	p.Y.Min, p.Y.Max = bb.Min.Y, bb.Max.Y
	return p, nil
}

func toXYs(path []r2.Vec) plotter.XYs {
	xys := make(plotter.XYs, len(path))
	for i, v := range path {
		xys[i].X = v.X
		xys[i].Y = v.Y
	}
	return xys
}

// Thumbnail downsizes img to fit in a maxSize square, keeping its aspect ratio.
// Images already small enough are returned unchanged.
func Thumbnail(img image.Image, maxSize uint) image.Image {
	return resize.Thumbnail(maxSize, maxSize, img, resize.Bilinear)
}

// CreateThumbnail reads the PNG at src and writes a thumbnail of it to dst.
func CreateThumbnail(src, dst string, maxSize uint) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	img, err := png.Decode(in)
	if err != nil {
		return err
	}
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()
	err = png.Encode(out, Thumbnail(img, maxSize))
	if err != nil {
		return err
	}
	return out.Close()
}
