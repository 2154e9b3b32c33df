package spinpak

// An Obstacle is a piece of geometry a fillet circle must be tangent to.
// Nearest returns the closest point on the obstacle to pt, and its distance.
type Obstacle interface {
	Nearest(pt Point) (Point, float64)
}

// Segment is a straight obstacle between two endpoints. Its distance is the
// exact perpendicular distance where the projection falls inside the
// segment, and the endpoint distance otherwise.
type Segment struct {
	P0 Point
	P1 Point
}

// Length returns the length of the segment.
func (s Segment) Length() float64 {
	return s.P1.Sub(s.P0).Hypot()
}

// Curve returns the segment as a two-point curve.
func (s Segment) Curve() Curve {
	return Curve{s.P0, s.P1}
}

func (s Segment) Nearest(pt Point) (Point, float64) {
	d := s.P1.Sub(s.P0)
	dotp := d.Dot(pt.Sub(s.P0))
	dSquared := d.Dot(d)
	switch {
	case dotp <= 0.0:
		return s.P0, pt.Distance(s.P0)
	case dotp >= dSquared:
		return s.P1, pt.Distance(s.P1)
	default:
		proj := s.P0.Lerp(s.P1, dotp/dSquared)
		return proj, pt.Distance(proj)
	}
}

// ArcObstacleSamples is the default sampling resolution of [NewSampledArc].
const ArcObstacleSamples = 100

// SampledArc is an arc obstacle represented by discrete samples. Its
// distance is the minimum over the samples, an approximation whose error is
// bounded by the arc length divided by the sample count.
type SampledArc struct {
	// Points holds the samples. The closest point reported by Nearest is
	// always one of them.
	Points Curve
}

// NewSampledArc samples an arc about center from startAngle to endAngle
// (radians) at the given resolution. A non-positive n falls back to
// [ArcObstacleSamples].
func NewSampledArc(center Point, radius, startAngle, endAngle float64, n int) SampledArc {
	if n <= 0 {
		n = ArcObstacleSamples
	}
	return SampledArc{Points: ArcPoints(center, radius, startAngle, endAngle, n)}
}

func (a SampledArc) Nearest(pt Point) (Point, float64) {
	i := a.Points.NearestIndex(pt)
	return a.Points[i], pt.Distance(a.Points[i])
}
