package spinpak

import (
	"fmt"
)

// DefaultAirfoil holds the generating-circle parameters the interactive
// application starts from.
var DefaultAirfoil = AirfoilParams{R: 0.85, XCenter: -0.1, YCenter: 0.23, Scale: 1.0}

// Scene owns one constructed emblem and the live overlay parameters. The
// emblem is built once and immutable; everything derived from the airfoil
// parameters is recomputed in full on every call, never cached or
// incrementally updated.
//
// Parameter ranges are the caller's responsibility (YOffset ∈ [−1.00, 1.00],
// Revolutions ∈ {1..12}, and the [AirfoilParams] ranges); the scene does not
// clamp.
type Scene struct {
	Emblem      *Emblem
	Airfoil     AirfoilParams
	YOffset     float64
	Revolutions int
}

// NewScene constructs the static emblem and a scene with the default
// overlay parameters.
func NewScene() (*Scene, error) {
	emblem, err := NewEmblem()
	if err != nil {
		return nil, err
	}
	return &Scene{
		Emblem:      emblem,
		Airfoil:     DefaultAirfoil,
		Revolutions: 1,
	}, nil
}

// Overlay computes the airfoil replica set for the current parameters: the
// Joukowsky curve shifted by YOffset and replicated Revolutions times about
// the origin. With a single revolution the unrotated curve is returned as
// is.
func (s *Scene) Overlay() ([]Curve, error) {
	base, err := Joukowsky(s.Airfoil)
	if err != nil {
		return nil, err
	}
	if s.YOffset != 0 {
		base = base.Translate(Vec(0, s.YOffset))
	}
	if s.Revolutions <= 1 {
		return []Curve{base}, nil
	}
	return Replicate([]Curve{base}, RevolutionAngles(s.Revolutions)), nil
}

// Layers assembles the export layer list: the emblem paths in the blue
// structural tier, then the overlay replicas in the red tier. A single
// unreplicated airfoil is drawn fully opaque.
func (s *Scene) Layers() ([]Layer, error) {
	overlay, err := s.Overlay()
	if err != nil {
		return nil, err
	}
	layers := make([]Layer, 0, len(s.Emblem.Paths)+len(overlay))
	for _, p := range s.Emblem.Paths {
		layers = append(layers, Layer{Curve: p, Stroke: "blue", Width: 0.01, Opacity: 0.6})
	}
	opacity := 0.8
	if s.Revolutions <= 1 {
		opacity = 1
	}
	for _, p := range overlay {
		layers = append(layers, Layer{Curve: p, Stroke: "red", Width: 0.015, Opacity: opacity})
	}
	return layers, nil
}

// Document builds an export document for the scene with the default padding
// and pixel density.
func (s *Scene) Document() (*Document, error) {
	layers, err := s.Layers()
	if err != nil {
		return nil, err
	}
	return &Document{
		Layers:        layers,
		Padding:       DefaultPadding,
		PixelsPerUnit: DefaultPixelsPerUnit,
		Label:         fmt.Sprintf("SpinPAK Logo - %d× Revolution", s.Revolutions),
	}, nil
}
