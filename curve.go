package spinpak

import (
	"math"
)

// Curve is an ordered sequence of points, traversed in slice order. It is
// open unless its first and last points coincide; no other ordering
// guarantee exists beyond the traversal order at creation. Curves are
// treated as immutable: all methods return new curves (or the receiver
// itself when the operation is the identity) and never modify points in
// place.
type Curve []Point

// Start returns the first point of the curve.
func (c Curve) Start() Point {
	return c[0]
}

// End returns the last point of the curve.
func (c Curve) End() Point {
	return c[len(c)-1]
}

// Transform applies aff to every point.
func (c Curve) Transform(aff Affine) Curve {
	out := make(Curve, len(c))
	for i, pt := range c {
		out[i] = pt.Transform(aff)
	}
	return out
}

// Translate moves every point by v.
func (c Curve) Translate(v Vec2) Curve {
	out := make(Curve, len(c))
	for i, pt := range c {
		out[i] = pt.Translate(v)
	}
	return out
}

// Rotate rotates the curve by deg degrees about center. A rotation of zero
// degrees returns the receiver unchanged, not a copy.
func (c Curve) Rotate(deg float64, center Point) Curve {
	if deg == 0 {
		return c
	}
	return c.Transform(RotateAbout(radians(deg), center))
}

// Reflect mirrors the curve across the line through the origin at axisDeg
// degrees.
func (c Curve) Reflect(axisDeg float64) Curve {
	return c.Transform(Reflect(Point{}, VecFromAngle(radians(axisDeg))))
}

// Reverse returns the curve traversed in the opposite direction.
func (c Curve) Reverse() Curve {
	out := make(Curve, len(c))
	for i, pt := range c {
		out[len(c)-1-i] = pt
	}
	return out
}

// BoundingBox returns the axis-aligned bounding box over all points. It
// returns the zero rectangle for an empty curve.
func (c Curve) BoundingBox() Rect {
	if len(c) == 0 {
		return Rect{}
	}
	r := Rect{c[0].X, c[0].Y, c[0].X, c[0].Y}
	for _, pt := range c[1:] {
		r = r.UnionPoint(pt)
	}
	return r
}

// NearestIndex returns the index of the sample closest to pt. It returns -1
// for an empty curve.
func (c Curve) NearestIndex(pt Point) int {
	best := -1
	bestDist := math.Inf(1)
	for i, p := range c {
		if d := p.DistanceSquared(pt); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// IsInf reports whether any point has an infinite coordinate.
func (c Curve) IsInf() bool {
	for _, pt := range c {
		if pt.IsInf() {
			return true
		}
	}
	return false
}

// IsNaN reports whether any point has a NaN coordinate.
func (c Curve) IsNaN() bool {
	for _, pt := range c {
		if pt.IsNaN() {
			return true
		}
	}
	return false
}

// Join concatenates curves into one, dropping the first point of every
// subsequent piece: adjoining pieces are expected to share their join point,
// and the duplicate vertex would otherwise remain in the output.
func Join(pieces ...Curve) Curve {
	var n int
	for _, p := range pieces {
		n += len(p)
	}
	out := make(Curve, 0, n)
	for i, p := range pieces {
		if i > 0 && len(p) > 0 {
			p = p[1:]
		}
		out = append(out, p...)
	}
	return out
}

// ArcPoints samples a circular arc of the given radius about center,
// sweeping the angle linearly from startAngle to endAngle (radians, either
// order) over n points inclusive of both ends.
func ArcPoints(center Point, radius, startAngle, endAngle float64, n int) Curve {
	out := make(Curve, n)
	step := (endAngle - startAngle) / float64(n-1)
	for i := range out {
		sin, cos := math.Sincos(startAngle + float64(i)*step)
		out[i] = center.Translate(Vec2{
			X: cos * radius,
			Y: sin * radius,
		})
	}
	return out
}

func radians(deg float64) float64 {
	return deg / 180 * math.Pi
}
