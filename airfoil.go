package spinpak

import (
	"math"
)

// AirfoilSamples is the number of points produced by [Joukowsky]. The first
// and last points correspond to θ = 0 and θ = 2π and are approximately, but
// not exactly, equal.
const AirfoilSamples = 400

// AirfoilParams parametrizes the generating circle of a Joukowsky airfoil.
// Callers are expected to supply values inside the designed ranges
// (r ∈ [0.50, 1.20], xCenter ∈ [−0.50, 0.50], yCenter ∈ [0.00, 0.50],
// scale ∈ [0.10, 3.00]); the generator itself does not clamp.
type AirfoilParams struct {
	R       float64
	XCenter float64
	YCenter float64
	Scale   float64
}

// Joukowsky maps a circle of radius r centered on (xCenter, yCenter) through
// the conformal map z = w + r²/w, producing an airfoil-shaped closed curve
// of [AirfoilSamples] points scaled by scale.
//
// The map is undefined where w = 0, so a generating circle passing through
// the origin yields a [*DomainError].
func Joukowsky(p AirfoilParams) (Curve, error) {
	return joukowsky(p, AirfoilSamples)
}

func joukowsky(p AirfoilParams, n int) (Curve, error) {
	if math.Abs(math.Hypot(p.XCenter, p.YCenter)-math.Abs(p.R)) < 1e-12 {
		return nil, &DomainError{
			Op:     "joukowsky",
			Reason: "generating circle passes through the origin",
		}
	}
	out := make(Curve, n)
	step := 2 * math.Pi / float64(n-1)
	for i := range out {
		sin, cos := math.Sincos(float64(i) * step)
		w := complex(p.XCenter+p.R*cos, p.YCenter+p.R*sin)
		z := w + complex(p.R*p.R, 0)/w
		out[i] = Pt(real(z)*p.Scale, imag(z)*p.Scale)
	}
	return out, nil
}
