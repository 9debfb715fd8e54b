package geometry

import "math"

// Segment is a directed line segment. Rays and obstacles are both Segments:
// a ray is repositioned every frame via Update, an obstacle is positioned
// once at scene setup. End is always Start translated by Length along the
// local +y axis and rotated by Angle degrees around Start.
type Segment struct {
	Start Vector2D
	End   Vector2D

	// Angle and Length are fixed at construction; Update only moves Start
	// and recomputes End from them.
	Angle  float64
	Length float64

	// Style is opaque to the geometry and handed through to the renderer.
	Style Style

	// IntersectionPoint is where the segment visually terminates. It is
	// the natural End until RayBundle.Intersect clips it against an
	// obstacle. Update does not reset it; Intersect owns that.
	IntersectionPoint Vector2D
}

// NewSegment creates a segment of the given length at angleDeg degrees,
// positioned at start.
func NewSegment(start Vector2D, length, angleDeg float64, style Style) *Segment {
	s := &Segment{
		Angle:  angleDeg,
		Length: length,
		Style:  style,
	}
	s.Update(start)
	s.IntersectionPoint = s.End
	return s
}

// NewSegmentBetween creates a segment with explicit endpoints. Length and
// Angle are derived so that Update keeps the same orientation.
func NewSegmentBetween(start, end Vector2D, style Style) *Segment {
	dir := end.Subtract(start)
	s := &Segment{
		Angle:             dir.Angle()*180/math.Pi - 90,
		Length:            dir.Magnitude(),
		Style:             style,
		Start:             start,
		End:               end,
		IntersectionPoint: end,
	}
	return s
}

// Update moves the segment's start point to origin and recomputes End.
// IntersectionPoint is left as is; see RayBundle.Intersect.
func (s *Segment) Update(origin Vector2D) {
	s.Start = origin
	s.End = s.Start.AddScalar(0, s.Length).Rotate(s.Start, s.Angle)
}

// IntersectionKind classifies the relative configuration of two segments.
type IntersectionKind int

const (
	// NoIntersection means the segments' lines cross outside the finite
	// bounds of at least one segment.
	NoIntersection IntersectionKind = iota
	// Intersecting means the segments cross within both their bounds; the
	// result carries the crossing point.
	Intersecting
	// ParallelNonIntersecting means the segments are parallel and not on
	// the same line.
	ParallelNonIntersecting
	// ColinearOverlapping means the segments lie on the same line and
	// share an endpoint exactly.
	ColinearOverlapping
	// ColinearJoint means the segments lie on the same line and the
	// endpoint-difference sign test considers them touching.
	ColinearJoint
	// ColinearDisjoint means the segments lie on the same line with no
	// detected contact.
	ColinearDisjoint
)

// String returns the kind's name.
func (k IntersectionKind) String() string {
	switch k {
	case NoIntersection:
		return "no-intersection"
	case Intersecting:
		return "intersection"
	case ParallelNonIntersecting:
		return "parallel-non-intersecting"
	case ColinearOverlapping:
		return "colinear-overlapping"
	case ColinearJoint:
		return "colinear-joint"
	case ColinearDisjoint:
		return "colinear-disjoint"
	default:
		return "unknown"
	}
}

// IntersectionResult is the outcome of a segment-segment intersection test.
// Point is meaningful only when Kind is Intersecting.
type IntersectionResult struct {
	Kind  IntersectionKind
	Point Vector2D
}

// HasPoint reports whether the result carries a crossing point.
func (r IntersectionResult) HasPoint() bool {
	return r.Kind == Intersecting
}

// Intersection computes the intersection of s with other using the 2D
// cross-product formulation. With p = s.Start, r = s.End - s.Start,
// q = other.Start, s2 = other.End - other.Start:
//
//	numerator   = (q - p) x r
//	denominator = r x s2
//
// Both zero means the segments are colinear, a zero denominator alone means
// they are parallel, and otherwise the parametric positions t and u decide
// whether the lines cross within both segments' bounds.
func (s *Segment) Intersection(other *Segment) IntersectionResult {
	p := s.Start
	r := s.End.Subtract(p)
	q := other.Start
	s2 := other.End.Subtract(q)

	qp := q.Subtract(p)
	numerator := qp.Cross(r)
	denominator := r.Cross(s2)

	if numerator == 0 && denominator == 0 {
		return IntersectionResult{Kind: s.classifyColinear(other)}
	}
	if denominator == 0 {
		return IntersectionResult{Kind: ParallelNonIntersecting}
	}

	u := numerator / denominator
	t := qp.Cross(s2) / denominator
	if t >= 0 && t <= 1 && u >= 0 && u <= 1 {
		return IntersectionResult{
			Kind:  Intersecting,
			Point: p.Add(r.MultiplyScalar(t)),
		}
	}
	return IntersectionResult{Kind: NoIntersection}
}

// classifyColinear distinguishes the colinear sub-cases. Segments sharing
// an endpoint exactly are overlapping. Otherwise the four difference
// vectors between every endpoint pairing are inspected: all components
// negative counts as joint, anything else as disjoint. This sign test is a
// heuristic, not a rigorous 1D range-overlap check on the shared line.
func (s *Segment) classifyColinear(other *Segment) IntersectionKind {
	if s.Start.Equals(other.Start) || s.Start.Equals(other.End) ||
		s.End.Equals(other.Start) || s.End.Equals(other.End) {
		return ColinearOverlapping
	}

	diffs := [4]Vector2D{
		s.Start.Subtract(other.Start),
		s.Start.Subtract(other.End),
		s.End.Subtract(other.Start),
		s.End.Subtract(other.End),
	}
	for _, d := range diffs {
		if d.X >= 0 || d.Y >= 0 {
			return ColinearDisjoint
		}
	}
	return ColinearJoint
}

// Draw hands the segment's visible span and style to the surface. The span
// runs from Start to IntersectionPoint, which is the natural End unless an
// obstacle clipped it.
func (s *Segment) Draw(surface StrokeSurface) {
	surface.StrokeSegment(s.Start, s.IntersectionPoint, s.Style)
}
