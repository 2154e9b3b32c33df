package spinpak

// Replicate produces rotated copies of the base contours about the origin:
// one copy of every contour per angle, in degrees. Output order is
// deterministic (angle-major, then contour-minor) so that draw order, and
// hence visual layering, is reproducible. An angle of zero passes contours
// through unrotated rather than copying them.
func Replicate(contours []Curve, angles []float64) []Curve {
	out := make([]Curve, 0, len(contours)*len(angles))
	for _, deg := range angles {
		for _, c := range contours {
			out = append(out, c.Rotate(deg, Point{}))
		}
	}
	return out
}

// RevolutionAngles returns the n angles {0, 360/n, 2·360/n, …} in degrees.
// For n ≤ 1 it degenerates to the single angle 0.
func RevolutionAngles(n int) []float64 {
	if n <= 1 {
		return []float64{0}
	}
	angles := make([]float64, n)
	step := 360.0 / float64(n)
	for i := range angles {
		angles[i] = float64(i) * step
	}
	return angles
}
