// Package spinpak generates the SpinPAK mark: a three-fold emblem assembled
// from circular arcs, straight segments, and numerically fitted rounded
// corners, overlaid with a Joukowsky airfoil that can be replicated under
// rotational symmetry.
//
// # Geometry
//
// The package carries a small set of planar primitives, [Point], [Vec2],
// [Affine], [Rect], and [Curve] (an ordered polyline), in which all shapes
// are expressed. Curves are plain point slices and are treated as immutable
// once produced.
//
// # Fillets
//
// Rounded corners come in two flavors. [JointFillet] is the closed-form
// fillet between two straight segments meeting at a vertex.
// [FitTangentCircle] fits a circle of fixed radius tangent to two arbitrary
// [Obstacle] values (a [Segment] or a [SampledArc]) by minimizing the
// squared tangency error with a Nelder–Mead search, optionally subject to
// soft [KeepOut] constraints. The sweep direction of every fillet arc is
// fixed by an explicit [Orientation], never inferred from angle magnitudes.
//
// # The emblem and the overlay
//
// [NewEmblem] constructs the static emblem geometry once; the result is
// immutable and safe to share across any number of readers. The airfoil
// overlay, in contrast, is ephemeral: [Scene.Overlay] recomputes it from its
// parameters on every call. [Replicate] produces the rotated copies of both.
//
// # Export
//
// [Document] serializes layered curves to an SVG document of stroked open
// paths, and [WritePNG] renders a quick raster preview. Neither produces
// filled regions.
package spinpak
