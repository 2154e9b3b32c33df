package spinpak

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

func assertCurveNear(t *testing.T, got, want Curve, epsilon float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d points, expected %d", len(got), len(want))
	}
	for i := range got {
		if d := got[i].Sub(want[i]).Hypot(); d > epsilon {
			t.Fatalf("point %d: got %s, expected %s", i, got[i], want[i])
		}
	}
}
