// Command spinpak-svg renders the SpinPAK logo, the static three-fold
// emblem plus a parametrized Joukowsky airfoil overlay, and writes it as an
// SVG document, optionally with a PNG preview.
//
// Usage:
//
//	spinpak-svg -r 0.85 -xc -0.1 -yc 0.23 -rev 3 -o logo.svg
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/hugo-peni/spinpak"
	"gonum.org/v1/plot/vg"
)

var (
	radius  = flag.Float64("r", 0.85, "radius of the generating circle, in [0.50, 1.20]")
	xCenter = flag.Float64("xc", -0.1, "x center of the generating circle, in [-0.50, 0.50]")
	yCenter = flag.Float64("yc", 0.23, "y center of the generating circle, in [0.00, 0.50]")
	scale   = flag.Float64("scale", 1.0, "airfoil scale factor, in [0.10, 3.00]")
	yOffset = flag.Float64("yoffset", 0, "airfoil vertical offset, in [-1.00, 1.00]")
	revs    = flag.Int("rev", 1, "number of airfoil revolutions, 1 to 12")
	out     = flag.String("o", "", "output SVG path (default spinpak_logo_<rev>rev.svg)")
	pngOut  = flag.String("png", "", "optional raster preview path")
	ppu     = flag.Float64("ppu", spinpak.DefaultPixelsPerUnit, "canvas pixels per logical unit")
	padding = flag.Float64("padding", spinpak.DefaultPadding, "margin around the geometry, in logical units")
)

func main() {
	flag.Parse()
	if err := validate(); err != nil {
		log.Fatal(err)
	}

	scene, err := spinpak.NewScene()
	if err != nil {
		log.Fatalf("building emblem: %v", err)
	}
	scene.Airfoil = spinpak.AirfoilParams{R: *radius, XCenter: *xCenter, YCenter: *yCenter, Scale: *scale}
	scene.YOffset = *yOffset
	scene.Revolutions = *revs

	doc, err := scene.Document()
	if err != nil {
		log.Fatalf("composing document: %v", err)
	}
	doc.Padding = *padding
	doc.PixelsPerUnit = *ppu

	name := *out
	if name == "" {
		name = fmt.Sprintf("spinpak_logo_%drev.svg", *revs)
	}
	if err := doc.Save(name); err != nil {
		log.Fatalf("writing %s: %v", name, err)
	}
	log.Printf("wrote %s", name)

	if *pngOut != "" {
		contours := append([]spinpak.Curve(nil), scene.Emblem.Paths...)
		overlay, err := scene.Overlay()
		if err != nil {
			log.Fatalf("computing overlay: %v", err)
		}
		contours = append(contours, overlay...)
		if err := spinpak.WritePNG(*pngOut, doc.Label, contours, 8*vg.Inch, 8*vg.Inch); err != nil {
			log.Fatalf("writing %s: %v", *pngOut, err)
		}
		log.Printf("wrote %s", *pngOut)
	}
}

func validate() error {
	checks := []struct {
		name     string
		val      float64
		lo, hi   float64
	}{
		{"-r", *radius, 0.50, 1.20},
		{"-xc", *xCenter, -0.50, 0.50},
		{"-yc", *yCenter, 0.00, 0.50},
		{"-scale", *scale, 0.10, 3.00},
		{"-yoffset", *yOffset, -1.00, 1.00},
	}
	for _, c := range checks {
		if c.val < c.lo || c.val > c.hi {
			return fmt.Errorf("%s must be in [%.2f, %.2f], got %g", c.name, c.lo, c.hi, c.val)
		}
	}
	if *revs < 1 || *revs > 12 {
		return fmt.Errorf("-rev must be between 1 and 12, got %d", *revs)
	}
	return nil
}
