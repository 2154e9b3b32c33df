package spinpak

import (
	"math"
	"testing"
)

func TestSegmentNearest(t *testing.T) {
	const epsilon = 1e-12
	s := Segment{P0: Pt(0, 0), P1: Pt(10, 0)}

	// Interior projection.
	pt, d := s.Nearest(Pt(3, 4))
	assertNear(t, pt, Pt(3, 0), epsilon)
	if math.Abs(d-4) > epsilon {
		t.Errorf("got distance %v, expected 4", d)
	}

	// Clamped to the endpoints.
	pt, d = s.Nearest(Pt(-3, 4))
	assertNear(t, pt, Pt(0, 0), epsilon)
	if math.Abs(d-5) > epsilon {
		t.Errorf("got distance %v, expected 5", d)
	}
	pt, _ = s.Nearest(Pt(14, -3))
	assertNear(t, pt, Pt(10, 0), epsilon)
}

func TestSegmentLength(t *testing.T) {
	s := Segment{P0: Pt(1, 1), P1: Pt(4, 5)}
	if l := s.Length(); l != 5 {
		t.Errorf("got length %v, expected 5", l)
	}
	diff(t, Curve{Pt(1, 1), Pt(4, 5)}, s.Curve())
}

func TestSampledArcNearest(t *testing.T) {
	arc := NewSampledArc(Point{}, 1, 0, math.Pi/2, 0)
	if len(arc.Points) != ArcObstacleSamples {
		t.Fatalf("got %d samples, expected %d", len(arc.Points), ArcObstacleSamples)
	}

	// The true nearest point to (2, 2) is at 45°; the sampled answer must
	// agree within the sampling error bound.
	pt, d := arc.Nearest(Pt(2, 2))
	bound := (math.Pi / 2) / float64(ArcObstacleSamples-1)
	assertNear(t, pt, Pt(math.Sqrt2/2, math.Sqrt2/2), bound)
	if want := math.Hypot(2, 2) - 1; math.Abs(d-want) > bound {
		t.Errorf("got distance %v, expected about %v", d, want)
	}
}
