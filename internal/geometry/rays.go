package geometry

import "math"

// RayBundle owns a fan of ray segments at evenly distributed angles sharing
// one origin. Construct it once at scene setup; per frame, Update moves the
// shared origin and Intersect clips every ray against the obstacle set.
type RayBundle struct {
	rays []*Segment
}

// RayBundleConfig describes a bundle: Amount rays spread over the angle
// span [AngleMin, AngleMax), each of the given length and style, starting
// at Origin.
type RayBundleConfig struct {
	Amount   int
	AngleMin float64
	AngleMax float64
	Length   float64
	Origin   Vector2D
	Style    Style
}

// NewRayBundle builds the bundle's segments with angles
// AngleMin + i*(AngleMax-AngleMin)/Amount for i in [0, Amount). A zero
// Amount or an empty angle span (AngleMin == AngleMax) yields an empty
// bundle on which every operation is a no-op.
func NewRayBundle(cfg RayBundleConfig) *RayBundle {
	b := &RayBundle{}
	if cfg.Amount <= 0 || cfg.AngleMin == cfg.AngleMax {
		return b
	}
	step := (cfg.AngleMax - cfg.AngleMin) / float64(cfg.Amount)
	b.rays = make([]*Segment, 0, cfg.Amount)
	for i := 0; i < cfg.Amount; i++ {
		angle := cfg.AngleMin + float64(i)*step
		b.rays = append(b.rays, NewSegment(cfg.Origin, cfg.Length, angle, cfg.Style))
	}
	return b
}

// Rays returns the bundle's segments. The slice is owned by the bundle;
// callers must not grow or reorder it.
func (b *RayBundle) Rays() []*Segment {
	return b.rays
}

// Len returns the number of rays in the bundle.
func (b *RayBundle) Len() int {
	return len(b.rays)
}

// Update moves every ray's start point to origin and recomputes its end.
func (b *RayBundle) Update(origin Vector2D) {
	for _, ray := range b.rays {
		ray.Update(origin)
	}
}

// Intersect resolves each ray's visible terminus against the obstacles.
// Per ray it resets the best-hit tracking, scans every obstacle, and keeps
// the crossing point closest to the ray's start; the ray's
// IntersectionPoint ends up at that point, or at the natural End when
// nothing was hit. Obstacles are only borrowed for the duration of the
// call. O(len(rays) * len(obstacles)).
func (b *RayBundle) Intersect(obstacles []*Segment) {
	for _, ray := range b.rays {
		closest := ray.End
		best := math.Inf(1)
		for _, obstacle := range obstacles {
			res := ray.Intersection(obstacle)
			if !res.HasPoint() {
				continue
			}
			if d := ray.Start.Distance(res.Point); d < best {
				best = d
				closest = res.Point
			}
		}
		ray.IntersectionPoint = closest
	}
}

// Draw strokes every ray's visible span onto the surface.
func (b *RayBundle) Draw(surface StrokeSurface) {
	for _, ray := range b.rays {
		ray.Draw(surface)
	}
}
