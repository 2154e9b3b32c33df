package spinpak

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testDocument() *Document {
	return &Document{
		Layers: []Layer{
			{Curve: Curve{Pt(0, 0), Pt(2, 0), Pt(0, 1)}, Stroke: "blue", Width: 0.01, Opacity: 0.6},
			{Curve: Curve{Pt(-1, 0), Pt(1, 3)}, Stroke: "red", Width: 0.015, Opacity: 0.8},
		},
		Padding:       DefaultPadding,
		PixelsPerUnit: DefaultPixelsPerUnit,
		Label:         "test",
	}
}

func TestDocumentBounds(t *testing.T) {
	doc := testDocument()

	bounds, err := doc.Bounds()
	if err != nil {
		t.Fatal(err)
	}
	// Raw extents are x ∈ [-1, 2], y ∈ [0, 3]; padding adds 0.2 per side.
	if got, want := bounds.Width(), 3+2*doc.Padding; math.Abs(got-want) > 1e-12 {
		t.Errorf("got width %v, expected %v", got, want)
	}
	if got, want := bounds.Height(), 3+2*doc.Padding; math.Abs(got-want) > 1e-12 {
		t.Errorf("got height %v, expected %v", got, want)
	}
	for _, l := range doc.Layers {
		for i, pt := range l.Curve {
			if !bounds.Contains(pt) {
				t.Errorf("point %d (%s) outside bounds %+v", i, pt, bounds)
			}
		}
	}
}

func TestDocumentBoundsEmpty(t *testing.T) {
	doc := &Document{Layers: []Layer{{Curve: Curve{}}}}
	if _, err := doc.Bounds(); !errors.Is(err, ErrEmptyGeometry) {
		t.Fatalf("got %v, expected ErrEmptyGeometry", err)
	}
	if err := doc.WriteSVG(&bytes.Buffer{}); !errors.Is(err, ErrEmptyGeometry) {
		t.Fatalf("got %v, expected ErrEmptyGeometry", err)
	}
}

func TestWriteSVG(t *testing.T) {
	doc := testDocument()

	var buf bytes.Buffer
	if err := doc.WriteSVG(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for _, want := range []string{"<svg", "viewBox", "fill:white", "stroke:blue", "stroke:red", ">test<"} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q", want)
		}
	}
	// Strokes only, one open path per layer, drawn in layer order.
	if n := strings.Count(out, "fill:none"); n != len(doc.Layers) {
		t.Errorf("got %d unfilled paths, expected %d", n, len(doc.Layers))
	}
	if strings.Contains(out, " Z") {
		t.Error("output contains a close-path command")
	}
	if strings.Index(out, "stroke:blue") > strings.Index(out, "stroke:red") {
		t.Error("layers drawn out of order")
	}
}

func TestDocumentSave(t *testing.T) {
	doc := testDocument()
	path := filepath.Join(t.TempDir(), "out.svg")

	if err := doc.Save(path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "</svg>") {
		t.Error("saved file is not a finished SVG document")
	}

	if err := doc.Save(filepath.Join(t.TempDir(), "no", "such", "dir", "out.svg")); err == nil {
		t.Error("expected an error for an unwritable path")
	}
}
