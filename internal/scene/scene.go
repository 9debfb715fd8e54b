package scene

import (
	"math/rand"
	"time"

	"chosenoffset.com/lightrays/internal/geometry"
)

// Scene is a built scene: the ray bundle plus the obstacle set it is
// clipped against. Fixed obstacles come from the config's obstacle list;
// random ones are rolled at build time and re-rolled by Regenerate.
type Scene struct {
	cfg *Config
	rng *rand.Rand

	Bundle *geometry.RayBundle

	fixed  []*geometry.Segment
	random []*geometry.Segment
}

// New builds a scene from a validated config. A random seed of zero picks a
// time-derived seed, so two runs differ unless the scene pins one.
func New(cfg *Config) *Scene {
	s := &Scene{
		cfg: cfg,
		Bundle: geometry.NewRayBundle(geometry.RayBundleConfig{
			Amount:   cfg.Rays.Amount,
			AngleMin: cfg.Rays.AngleMin,
			AngleMax: cfg.Rays.AngleMax,
			Length:   cfg.Rays.Length,
			Origin:   geometry.NewVector2D(cfg.Rays.Origin.X, cfg.Rays.Origin.Y),
			Style:    cfg.Rays.Style.Style(),
		}),
	}

	for _, o := range cfg.Obstacles {
		s.fixed = append(s.fixed, geometry.NewSegment(
			geometry.NewVector2D(o.X, o.Y), o.Length, o.Angle, o.Style.Style()))
	}

	if cfg.Random != nil && cfg.Random.Count > 0 {
		seed := cfg.Random.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		s.rng = rand.New(rand.NewSource(seed))
		s.random = s.rollObstacles()
	}
	return s
}

// Obstacles returns the current obstacle set, fixed first.
func (s *Scene) Obstacles() []*geometry.Segment {
	obstacles := make([]*geometry.Segment, 0, len(s.fixed)+len(s.random))
	obstacles = append(obstacles, s.fixed...)
	obstacles = append(obstacles, s.random...)
	return obstacles
}

// Origin returns the configured fixed origin of the bundle.
func (s *Scene) Origin() geometry.Vector2D {
	return geometry.NewVector2D(s.cfg.Rays.Origin.X, s.cfg.Rays.Origin.Y)
}

// FollowPointer reports whether the bundle's origin tracks the cursor.
func (s *Scene) FollowPointer() bool {
	return s.cfg.Rays.FollowPointer
}

// Regenerate re-rolls the random obstacles and returns how many there are.
// Fixed obstacles are untouched; scenes without a random block are a no-op.
func (s *Scene) Regenerate() int {
	if s.rng == nil {
		return 0
	}
	s.random = s.rollObstacles()
	return len(s.random)
}

func (s *Scene) rollObstacles() []*geometry.Segment {
	rc := s.cfg.Random
	style := rc.Style.Style()
	w := float64(s.cfg.Window.Width)
	h := float64(s.cfg.Window.Height)

	within := func(span, margin float64) float64 {
		usable := span - 2*margin
		if usable <= 0 {
			return span / 2
		}
		return margin + s.rng.Float64()*usable
	}

	obstacles := make([]*geometry.Segment, 0, rc.Count)
	for i := 0; i < rc.Count; i++ {
		start := geometry.NewVector2D(within(w, rc.Margin), within(h, rc.Margin))
		length := rc.MinLength + s.rng.Float64()*(rc.MaxLength-rc.MinLength)
		angle := s.rng.Float64() * 360
		obstacles = append(obstacles, geometry.NewSegment(start, length, angle, style))
	}
	return obstacles
}
