package spinpak

import (
	"math"
)

// Design constants of the emblem. The static geometry is derived from these
// once, in [NewEmblem], and shared as immutable data afterwards.
const (
	emblemInnerRadius  = 1.0
	emblemOuterRadius  = 1.2
	emblemCornerRadius = 0.05
	emblemJointRadius  = 0.3
	emblemMirrorDeg    = 150

	// Acceptance tolerance on the squared tangency residual of a fitted
	// corner. The sampled-arc distance approximation alone contributes on
	// the order of 1e-8, so anything above this indicates a fit that
	// wandered off.
	emblemFitTolerance = 1e-6
)

// Emblem is the static three-fold mark: one rounded flank sector, the
// rounded joint closing the sector against its mirror image, and the mirror
// itself, replicated at 0°, 120° and 240° about the origin.
//
// The value returned by [NewEmblem] is never mutated and is safe to share
// across any number of concurrent readers.
type Emblem struct {
	// Sector is the rounded flank: outer arc, flank segment and inner arc
	// stitched together with the three fitted corner fillets.
	Sector Curve
	// Joint runs from the sector's lower contact down to the rounded tip
	// and back up to the mirrored sector.
	Joint Curve
	// Mirror is Sector reflected across the axis at 150°.
	Mirror Curve
	// Paths holds all nine paths of the finished mark: the three base
	// curves above replicated at 0°, 120° and 240°, angle-major.
	Paths []Curve
}

// NewEmblem constructs the static emblem geometry. The three corner fillets
// are fitted numerically; a fit whose residual exceeds the acceptance
// tolerance surfaces as a [*FitError] so that bad geometry is never cached.
func NewEmblem() (*Emblem, error) {
	const (
		r1 = emblemInnerRadius
		r2 = emblemOuterRadius
		cr = emblemCornerRadius
	)
	origin := Point{}

	// Key points of one sector: the flank runs vertically at x = -0.7
	// between the two arcs, the base vertically at x = -0.1 from the inner
	// arc down to the tip region.
	p1 := Pt(-0.7, math.Sqrt(r1*r1-0.49))
	p2 := Pt(-0.7, math.Sqrt(r2*r2-0.49))
	p3 := Pt(-0.1, math.Sqrt(r1*r1-0.01))
	p4 := Pt(-0.1, 0)

	outerArc := NewSampledArc(origin, r2, math.Pi/2, math.Acos(-0.7/r2), ArcObstacleSamples)
	flank := Segment{P0: p2, P1: p1}
	innerArc := NewSampledArc(origin, r1, math.Acos(-0.7/r1), math.Acos(-0.1/r1), ArcObstacleSamples)
	base := Segment{P0: p3, P1: p4}

	// Corner 1: outer arc against the flank, rounded from inside. The
	// keep-out holds the center inside radius r2-cr so the fillet cannot
	// escape through the outer arc.
	center1, res1 := FitTangentCircle(
		Pt(-0.7+cr, 1.0),
		[]Obstacle{outerArc, flank},
		cr,
		[]KeepOut{{Center: origin, Radius: r2 - cr, Weight: 10, Inside: true}},
	)
	if res1 > emblemFitTolerance {
		return nil, &FitError{Site: "outer corner", Residual: res1}
	}
	f1 := TangentFillet(center1, outerArc, flank, cr, CounterClockwise, FilletSamples)

	// Corner 2: flank against the inner arc. The corner at p1 is acute, so
	// this fillet sweeps well past a quarter turn. The keep-out holds the
	// center outside radius r1+cr.
	center2, res2 := FitTangentCircle(
		Pt(-0.65, 0.8),
		[]Obstacle{flank, innerArc},
		cr,
		[]KeepOut{{Center: origin, Radius: r1 + cr, Weight: 1000}},
	)
	if res2 > emblemFitTolerance {
		return nil, &FitError{Site: "flank corner", Residual: res2}
	}
	f2 := TangentFillet(center2, flank, innerArc, cr, CounterClockwise, FilletSamples)

	// Corner 3: inner arc against the base segment. The center's x is fixed
	// first by tangency to the base alone, then its y by tangency to the
	// arc; both are bounded one-dimensional fits. The x interval lies left
	// of the base line so the fit selects the outward tangency rather than
	// the degenerate one collapsing onto p3.
	x3 := MinimizeScalar(func(cx float64) float64 {
		_, d := base.Nearest(Pt(cx, 0.3))
		return math.Abs(d - cr)
	}, -0.3, -0.1)
	y3 := MinimizeScalar(func(cy float64) float64 {
		_, d := innerArc.Nearest(Pt(x3, cy))
		return math.Abs(d - cr)
	}, 0.3, 1.0)
	center3 := Pt(x3, y3)
	if res3 := tangencyResidual(center3, cr, base, innerArc); res3 > emblemFitTolerance {
		return nil, &FitError{Site: "base corner", Residual: res3}
	}
	f3 := TangentFillet(center3, innerArc, base, cr, Clockwise, FilletSamples)

	// Stitch the sector: each raw piece is truncated at the sample nearest
	// the adjoining fillet contact, and Join drops the duplicated join
	// points.
	outer := outerArc.Points
	inner := innerArc.Points
	i1 := outer.NearestIndex(f1.ContactA)
	i2 := inner.NearestIndex(f2.ContactB)
	i3 := inner.NearestIndex(f3.ContactA)
	sector := Join(
		outer[:i1+1],
		f1.Arc,
		Curve{f1.ContactB, f2.ContactA},
		f2.Arc,
		inner[i2:i3+1],
		f3.Arc,
	)

	// Close the wedge: the base segment's remainder meets its own mirror
	// image at the tip, rounded by the closed-form joint fillet.
	mirror := Reflect(Point{}, VecFromAngle(radians(emblemMirrorDeg)))
	a := f3.ContactB
	c := a.Transform(mirror)
	joint, err := JointFillet(a, p4, c, emblemJointRadius, FilletSamples)
	if err != nil {
		return nil, err
	}
	jointPath := Join(
		Curve{a, joint.ContactA},
		joint.Arc,
		Curve{joint.ContactB, c},
	)

	mirrorSector := sector.Reflect(emblemMirrorDeg)

	e := &Emblem{
		Sector: sector,
		Joint:  jointPath,
		Mirror: mirrorSector,
	}
	e.Paths = Replicate([]Curve{e.Sector, e.Joint, e.Mirror}, []float64{0, 120, 240})
	return e, nil
}

// tangencyResidual is the sum of squared tangency errors of a circle of the
// given radius about center against the obstacles, the same quantity the
// two-dimensional fit minimizes.
func tangencyResidual(center Point, radius float64, obstacles ...Obstacle) float64 {
	sum := 0.0
	for _, obs := range obstacles {
		_, d := obs.Nearest(center)
		sum += (d - radius) * (d - radius)
	}
	return sum
}
