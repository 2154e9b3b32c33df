package spinpak

import (
	"errors"
	"math"
	"testing"
)

func TestJoukowsky(t *testing.T) {
	c, err := Joukowsky(AirfoilParams{R: 0.85, XCenter: -0.1, YCenter: 0.23, Scale: 1.0})
	if err != nil {
		t.Fatal(err)
	}
	if len(c) != AirfoilSamples {
		t.Fatalf("got %d points, expected %d", len(c), AirfoilSamples)
	}
	if c.IsInf() || c.IsNaN() {
		t.Fatal("curve contains non-finite points")
	}
	// θ = 0 and θ = 2π map to the same point.
	assertNear(t, c.Start(), c.End(), 1e-9)
}

func TestJoukowskyScale(t *testing.T) {
	p := AirfoilParams{R: 0.85, XCenter: -0.1, YCenter: 0.23, Scale: 1.0}
	base, err := Joukowsky(p)
	if err != nil {
		t.Fatal(err)
	}
	p.Scale = 2.5
	scaled, err := Joukowsky(p)
	if err != nil {
		t.Fatal(err)
	}
	assertCurveNear(t, scaled, base.Transform(Scale(2.5, 2.5)), 1e-12)
}

func TestJoukowskySymmetric(t *testing.T) {
	// A generating circle centered on the x axis yields an airfoil that is
	// mirror-symmetric about it.
	c, err := Joukowsky(AirfoilParams{R: 1, XCenter: 0.25, YCenter: 0, Scale: 1})
	if err != nil {
		t.Fatal(err)
	}
	for i, pt := range c {
		mirror := c[len(c)-1-i]
		if d := math.Abs(pt.Y + mirror.Y); d > 1e-9 {
			t.Fatalf("point %d: asymmetry %g", i, d)
		}
	}
}

func TestJoukowskyDegenerate(t *testing.T) {
	_, err := Joukowsky(AirfoilParams{R: 0.5, XCenter: 0.5, YCenter: 0, Scale: 1.0})
	var domainErr *DomainError
	if !errors.As(err, &domainErr) {
		t.Fatalf("got %v, expected a DomainError", err)
	}
}
