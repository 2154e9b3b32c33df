package spinpak

import (
	"testing"
)

func TestRevolutionAngles(t *testing.T) {
	diff(t, []float64{0}, RevolutionAngles(1))
	diff(t, []float64{0}, RevolutionAngles(0))
	diff(t, []float64{0, 120, 240}, RevolutionAngles(3))
	diff(t, []float64{0, 90, 180, 270}, RevolutionAngles(4))
}

func TestReplicate(t *testing.T) {
	a := Curve{Pt(1, 0)}
	b := Curve{Pt(0, 2)}

	out := Replicate([]Curve{a, b}, []float64{0, 90})
	if len(out) != 4 {
		t.Fatalf("got %d curves, expected 4", len(out))
	}
	// Angle-major order, and the zero angle passes the originals through.
	diff(t, a, out[0])
	diff(t, b, out[1])
	assertNear(t, out[2][0], Pt(0, 1), 1e-12)
	assertNear(t, out[3][0], Pt(-2, 0), 1e-12)
}
