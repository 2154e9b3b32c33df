package spinpak

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// WritePNG renders the contours as colored polylines to a raster preview
// file, the offline counterpart of the interactive canvas. The image
// format follows the file extension, as understood by gonum/plot.
func WritePNG(path, title string, contours []Curve, width, height vg.Length) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"
	for i, c := range contours {
		xys := make(plotter.XYs, len(c))
		for j, pt := range c {
			xys[j].X, xys[j].Y = pt.Splat()
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return err
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
	}
	return p.Save(width, height, path)
}
