package spinpak

import (
	"math"

	"gonum.org/v1/gonum/optimize"
)

// FilletSamples is the number of points used to discretize a fillet arc.
const FilletSamples = 100

// Orientation fixes the sweep direction of a fillet arc. It is supplied
// explicitly at every construction site; it is never inferred from the
// magnitudes of the contact angles.
type Orientation int

const (
	CounterClockwise Orientation = iota
	Clockwise
)

func (o Orientation) String() string {
	switch o {
	case CounterClockwise:
		return "counter-clockwise"
	case Clockwise:
		return "clockwise"
	default:
		return "unknown orientation"
	}
}

// Fillet is a rounded corner: a circular arc tangent to two adjoining pieces
// of geometry at a fixed radius. Arc starts at ContactA and ends at
// ContactB, both within numeric tolerance of the points where the fitted
// circle touches its obstacles.
type Fillet struct {
	Center   Point
	ContactA Point
	ContactB Point
	Arc      Curve
}

// KeepOut is a soft constraint on a tangent-circle fit: the fitted center
// must stay outside (or, with Inside set, inside) the disk of the given
// radius about Center. Violations are penalized quadratically with Weight;
// the constraint contributes nothing while satisfied.
type KeepOut struct {
	Center Point
	Radius float64
	Weight float64
	Inside bool
}

func (k KeepOut) penalty(pt Point) float64 {
	d := pt.Distance(k.Center)
	if k.Inside {
		if excess := d - k.Radius; excess > 0 {
			return k.Weight * excess * excess
		}
		return 0
	}
	if short := k.Radius - d; short > 0 {
		return k.Weight * short * short
	}
	return 0
}

// FitTangentCircle fits the center of a circle of the given radius tangent
// to every obstacle, minimizing the sum of squared tangency errors plus any
// keep-out penalties with a Nelder–Mead search seeded from initial.
//
// Convergence is not guaranteed: the best iterate is returned regardless of
// quality, together with the final objective value. Callers that need
// certainty must inspect the residual. The search is deterministic: equal
// inputs produce equal results.
func FitTangentCircle(initial Point, obstacles []Obstacle, radius float64, keepOut []KeepOut) (Point, float64) {
	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			center := Pt(x[0], x[1])
			sum := 0.0
			for _, obs := range obstacles {
				_, d := obs.Nearest(center)
				sum += (d - radius) * (d - radius)
			}
			for _, k := range keepOut {
				sum += k.penalty(center)
			}
			return sum
		},
	}
	// A convergence error still carries the best iterate; only a missing
	// result falls back to the seed.
	res, _ := optimize.Minimize(problem, []float64{initial.X, initial.Y}, nil, &optimize.NelderMead{})
	if res == nil || len(res.X) != 2 {
		return initial, math.Inf(1)
	}
	return Pt(res.X[0], res.X[1]), res.F
}

// MinimizeScalar minimizes f over the closed interval [lo, hi], for fits
// where one coordinate is already fixed by a separate geometric condition.
// The interval bound is enforced by a quadratic out-of-interval penalty on
// top of a one-dimensional Nelder–Mead search started at the midpoint.
//
// Like [FitTangentCircle], it returns its best iterate regardless of the
// residual magnitude.
func MinimizeScalar(f func(float64) float64, lo, hi float64) float64 {
	const outOfBounds = 1e6
	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			t := x[0]
			switch {
			case t < lo:
				return f(lo) + outOfBounds*(lo-t)*(lo-t)
			case t > hi:
				return f(hi) + outOfBounds*(t-hi)*(t-hi)
			}
			return f(t)
		},
	}
	res, _ := optimize.Minimize(problem, []float64{0.5 * (lo + hi)}, nil, &optimize.NelderMead{})
	if res == nil || len(res.X) != 1 {
		return 0.5 * (lo + hi)
	}
	return min(hi, max(lo, res.X[0]))
}

// TangentFillet builds the fillet arc for an already fitted center: the two
// contact points are the closest points on each obstacle to center, and the
// arc sweeps from ContactA's polar angle about center to ContactB's in the
// given orientation.
func TangentFillet(center Point, a, b Obstacle, radius float64, dir Orientation, n int) Fillet {
	ca, _ := a.Nearest(center)
	cb, _ := b.Nearest(center)
	return Fillet{
		Center:   center,
		ContactA: ca,
		ContactB: cb,
		Arc:      arcBetween(center, radius, ca, cb, dir, n),
	}
}

// JointFillet is the closed-form fillet between two straight segments that
// share the vertex b, with far endpoints a and c. The fillet circle sits on
// the angle bisector at b; its arc runs from the tangency on segment ab to
// the tangency on segment bc, swept through the side away from b.
//
// A [*DomainError] is returned when the segments are nearly collinear at b:
// with the half-angle near zero the center distance diverges, and with the
// segments folded onto one line the bisector is undefined.
func JointFillet(a, b, c Point, radius float64, n int) (Fillet, error) {
	const degenerate = 1e-9

	u := a.Sub(b).Normalize()
	v := c.Sub(b).Normalize()

	half := math.Acos(clamp(u.Dot(v), -1, 1)) / 2
	if math.Sin(half) < degenerate {
		return Fillet{}, &DomainError{
			Op:     "joint fillet",
			Reason: "segments are nearly collinear at the shared vertex",
		}
	}
	bisector := u.Add(v)
	if bisector.Hypot() < degenerate {
		return Fillet{}, &DomainError{
			Op:     "joint fillet",
			Reason: "segments fold onto one line, bisector is undefined",
		}
	}
	bisector = bisector.Normalize()
	center := b.Translate(bisector.Mul(radius / math.Sin(half)))

	// The contacts are the feet of the perpendiculars from the center onto
	// the segments; the winding of (a, b, c) fixes which way the arc must
	// sweep to stay on the side away from b.
	contactAB, _ := Segment{P0: a, P1: b}.Nearest(center)
	contactBC, _ := Segment{P0: b, P1: c}.Nearest(center)
	dir := Clockwise
	if u.Cross(v) < 0 {
		dir = CounterClockwise
	}

	return Fillet{
		Center:   center,
		ContactA: contactAB,
		ContactB: contactBC,
		Arc:      arcBetween(center, radius, contactAB, contactBC, dir, n),
	}, nil
}

// arcBetween samples the arc of the given radius about center from the polar
// angle of from to the polar angle of to, sweeping in the direction dir.
func arcBetween(center Point, radius float64, from, to Point, dir Orientation, n int) Curve {
	a0 := from.Sub(center).Angle()
	a1 := sweepTo(a0, to.Sub(center).Angle(), dir)
	return ArcPoints(center, radius, a0, a1, n)
}

// sweepTo normalizes end so that the sweep from start reaches it in the
// given direction, moving by strictly less than a full turn. A span within
// floating tolerance of zero stays zero rather than wrapping into a full
// circle.
func sweepTo(start, end float64, dir Orientation) float64 {
	const tol = 1e-9
	delta := math.Mod(end-start, 2*math.Pi)
	if math.Abs(delta) < tol {
		return start
	}
	switch dir {
	case CounterClockwise:
		if delta < 0 {
			delta += 2 * math.Pi
		}
	case Clockwise:
		if delta > 0 {
			delta -= 2 * math.Pi
		}
	}
	return start + delta
}

func clamp(x, lo, hi float64) float64 {
	return min(hi, max(lo, x))
}
