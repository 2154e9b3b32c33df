package spinpak

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	svg "github.com/ajstarks/svgo/float"
)

const (
	// DefaultPadding is the margin added around the geometry, in logical
	// units.
	DefaultPadding = 0.2
	// DefaultPixelsPerUnit maps logical units to canvas pixels.
	DefaultPixelsPerUnit = 300
)

// Layer is one stroked contour of an export document. Strokes only: layers
// are never filled.
type Layer struct {
	Curve   Curve
	Stroke  string
	Width   float64
	Opacity float64
}

// Document is a renderable vector document: ordered stroked layers over a
// white background, with a metadata label. The viewBox is the padded
// bounding box of the geometry, in logical coordinates; the pixel size
// additionally scales by PixelsPerUnit.
type Document struct {
	Layers        []Layer
	Padding       float64
	PixelsPerUnit float64
	Label         string
}

// Bounds returns the padded axis-aligned bounding box over every point of
// every layer, or [ErrEmptyGeometry] when there are no points at all.
func (d *Document) Bounds() (Rect, error) {
	var bounds Rect
	empty := true
	for _, l := range d.Layers {
		if len(l.Curve) == 0 {
			continue
		}
		b := l.Curve.BoundingBox()
		if empty {
			bounds = b
			empty = false
		} else {
			bounds = bounds.Union(b)
		}
	}
	if empty {
		return Rect{}, ErrEmptyGeometry
	}
	return bounds.Inflate(d.Padding), nil
}

// WriteSVG serializes the document to w: one background rectangle, one open
// stroked path per layer in layer order, and the label at a fixed offset
// from the top-left corner of the bounds.
func (d *Document) WriteSVG(w io.Writer) error {
	bounds, err := d.Bounds()
	if err != nil {
		return err
	}
	width := bounds.Width()
	height := bounds.Height()

	canvas := svg.New(w)
	canvas.Startview(width*d.PixelsPerUnit, height*d.PixelsPerUnit, bounds.X0, bounds.Y0, width, height)
	canvas.Rect(bounds.X0, bounds.Y0, width, height, "fill:white")
	for _, l := range d.Layers {
		canvas.Path(pathData(l.Curve),
			fmt.Sprintf("stroke:%s;stroke-width:%g;fill:none;opacity:%g", l.Stroke, l.Width, l.Opacity))
	}
	if d.Label != "" {
		canvas.Text(bounds.X0+0.05, bounds.Y0+0.15, d.Label, "font-size:0.1;fill:gray")
	}
	canvas.End()
	return nil
}

// Save writes the document to the named file. The write is buffered but not
// atomic: a failure mid-write can leave a partial file behind, and callers
// needing atomicity must provide it themselves.
func (d *Document) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	w := bufio.NewWriter(f)
	if err := d.WriteSVG(w); err != nil {
		f.Close()
		return err
	}
	// svgo reports no write errors of its own; the buffered writer
	// surfaces them here.
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("export: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}

// pathData renders a curve as an absolute move-to/line-to sequence, left
// open: no close command is emitted.
func pathData(c Curve) string {
	var sb strings.Builder
	for i, pt := range c {
		if i == 0 {
			fmt.Fprintf(&sb, "M %g,%g", pt.X, pt.Y)
		} else {
			fmt.Fprintf(&sb, " L %g,%g", pt.X, pt.Y)
		}
	}
	return sb.String()
}
