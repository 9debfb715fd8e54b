// Package scene loads scene configuration files and turns them into the
// obstacle set and ray bundle the game runs with.
package scene

import (
	"fmt"
	"image/color"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"chosenoffset.com/lightrays/internal/geometry"
)

// Config is the root of a scene file.
type Config struct {
	Window    WindowConfig     `yaml:"window"`
	Rays      RaysConfig       `yaml:"rays"`
	Obstacles []ObstacleConfig `yaml:"obstacles"`
	Random    *RandomConfig    `yaml:"random"`
}

// WindowConfig sets up the application window.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// PointConfig is a 2D position in a scene file.
type PointConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// RaysConfig describes the ray bundle. Angles are degrees; the bundle
// spreads Amount rays over [AngleMin, AngleMax). With FollowPointer the
// bundle's origin tracks the cursor each tick, otherwise it stays at Origin.
type RaysConfig struct {
	Amount        int         `yaml:"amount"`
	AngleMin      float64     `yaml:"angle_min"`
	AngleMax      float64     `yaml:"angle_max"`
	Length        float64     `yaml:"length"`
	FollowPointer bool        `yaml:"follow_pointer"`
	Origin        PointConfig `yaml:"origin"`
	Style         StyleConfig `yaml:"style"`
}

// ObstacleConfig places one opaque wall segment: a start position plus the
// angle/length form the geometry uses for construction.
type ObstacleConfig struct {
	X      float64     `yaml:"x"`
	Y      float64     `yaml:"y"`
	Angle  float64     `yaml:"angle"`
	Length float64     `yaml:"length"`
	Style  StyleConfig `yaml:"style"`
}

// RandomConfig enables randomly generated obstacles on top of the fixed
// ones. A zero Seed means a time-derived seed.
type RandomConfig struct {
	Count     int         `yaml:"count"`
	Seed      int64       `yaml:"seed"`
	MinLength float64     `yaml:"min_length"`
	MaxLength float64     `yaml:"max_length"`
	Margin    float64     `yaml:"margin"`
	Style     StyleConfig `yaml:"style"`
}

// StyleConfig is the serialized form of geometry.Style. Colors are hex
// strings (#RGB, #RRGGBB or #RRGGBBAA).
type StyleConfig struct {
	Color    string               `yaml:"color"`
	Width    float64              `yaml:"width"`
	Gradient []GradientStopConfig `yaml:"gradient"`
}

// GradientStopConfig is one gradient stop in a scene file.
type GradientStopConfig struct {
	Offset float64 `yaml:"offset"`
	Color  string  `yaml:"color"`
}

// LoadConfig reads and validates a scene file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scene file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene in %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks the configuration for values the geometry or renderer
// cannot work with.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window dimensions: %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Rays.Amount < 0 {
		return fmt.Errorf("invalid ray amount: %d", c.Rays.Amount)
	}
	if c.Rays.Length <= 0 {
		return fmt.Errorf("invalid ray length: %v", c.Rays.Length)
	}
	if c.Rays.AngleMax < c.Rays.AngleMin {
		return fmt.Errorf("angle range [%v, %v) is reversed", c.Rays.AngleMin, c.Rays.AngleMax)
	}
	if err := c.Rays.Style.validate("rays.style"); err != nil {
		return err
	}

	for i, o := range c.Obstacles {
		if o.Length <= 0 {
			return fmt.Errorf("obstacle %d: invalid length %v", i, o.Length)
		}
		if err := o.Style.validate(fmt.Sprintf("obstacle %d style", i)); err != nil {
			return err
		}
	}

	if c.Random != nil {
		if c.Random.Count < 0 {
			return fmt.Errorf("random obstacles: invalid count %d", c.Random.Count)
		}
		if c.Random.MinLength <= 0 || c.Random.MaxLength < c.Random.MinLength {
			return fmt.Errorf("random obstacles: invalid length range [%v, %v]",
				c.Random.MinLength, c.Random.MaxLength)
		}
		if err := c.Random.Style.validate("random obstacle style"); err != nil {
			return err
		}
	}
	return nil
}

func (s StyleConfig) validate(context string) error {
	if s.Width < 0 {
		return fmt.Errorf("%s: invalid stroke width %v", context, s.Width)
	}
	if s.Color != "" {
		if _, err := ParseHexColor(s.Color); err != nil {
			return fmt.Errorf("%s: %w", context, err)
		}
	}
	prev := -1.0
	for _, stop := range s.Gradient {
		if stop.Offset < 0 || stop.Offset > 1 {
			return fmt.Errorf("%s: gradient offset %v outside [0, 1]", context, stop.Offset)
		}
		if stop.Offset < prev {
			return fmt.Errorf("%s: gradient offsets must be ascending", context)
		}
		prev = stop.Offset
		if _, err := ParseHexColor(stop.Color); err != nil {
			return fmt.Errorf("%s: %w", context, err)
		}
	}
	return nil
}

// Style converts the serialized form into the geometry's pass-through
// style. A missing color falls back to opaque white, a missing width to 1.
func (s StyleConfig) Style() geometry.Style {
	style := geometry.Style{
		Color: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Width: 1,
	}
	if s.Color != "" {
		if clr, err := ParseHexColor(s.Color); err == nil {
			style.Color = clr
		}
	}
	if s.Width > 0 {
		style.Width = s.Width
	}
	for _, stop := range s.Gradient {
		clr, err := ParseHexColor(stop.Color)
		if err != nil {
			continue
		}
		style.Gradient = append(style.Gradient, geometry.GradientStop{
			Offset: stop.Offset,
			Color:  clr,
		})
	}
	sort.SliceStable(style.Gradient, func(i, j int) bool {
		return style.Gradient[i].Offset < style.Gradient[j].Offset
	})
	return style
}

// ParseHexColor parses #RGB, #RRGGBB and #RRGGBBAA color strings.
func ParseHexColor(s string) (color.RGBA, error) {
	if len(s) == 0 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("invalid color %q: must start with #", s)
	}

	hexVal := func(b byte) (uint8, bool) {
		switch {
		case b >= '0' && b <= '9':
			return b - '0', true
		case b >= 'a' && b <= 'f':
			return b - 'a' + 10, true
		case b >= 'A' && b <= 'F':
			return b - 'A' + 10, true
		}
		return 0, false
	}
	pair := func(hi, lo byte) (uint8, bool) {
		h, ok1 := hexVal(hi)
		l, ok2 := hexVal(lo)
		return h<<4 | l, ok1 && ok2
	}

	var c color.RGBA
	var ok bool
	switch len(s) {
	case 4: // #RGB
		var r, g, b uint8
		var ok1, ok2, ok3 bool
		r, ok1 = hexVal(s[1])
		g, ok2 = hexVal(s[2])
		b, ok3 = hexVal(s[3])
		c = color.RGBA{R: r * 17, G: g * 17, B: b * 17, A: 255}
		ok = ok1 && ok2 && ok3
	case 7: // #RRGGBB
		var ok1, ok2, ok3 bool
		c.R, ok1 = pair(s[1], s[2])
		c.G, ok2 = pair(s[3], s[4])
		c.B, ok3 = pair(s[5], s[6])
		c.A = 255
		ok = ok1 && ok2 && ok3
	case 9: // #RRGGBBAA
		var ok1, ok2, ok3, ok4 bool
		c.R, ok1 = pair(s[1], s[2])
		c.G, ok2 = pair(s[3], s[4])
		c.B, ok3 = pair(s[5], s[6])
		c.A, ok4 = pair(s[7], s[8])
		ok = ok1 && ok2 && ok3 && ok4
	default:
		return color.RGBA{}, fmt.Errorf("invalid color %q: bad length", s)
	}
	if !ok {
		return color.RGBA{}, fmt.Errorf("invalid color %q: non-hex digit", s)
	}
	return c, nil
}

// DefaultConfig is the scene used when no file is given: a pointer-driven
// 360 degree bundle with a handful of random walls.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{Width: 1280, Height: 800, Title: "Light Rays"},
		Rays: RaysConfig{
			Amount:        240,
			AngleMin:      0,
			AngleMax:      360,
			Length:        1600,
			FollowPointer: true,
			Origin:        PointConfig{X: 640, Y: 400},
			Style: StyleConfig{
				Width: 1,
				Gradient: []GradientStopConfig{
					{Offset: 0, Color: "#ffffffff"},
					{Offset: 1, Color: "#ffffff00"},
				},
			},
		},
		Random: &RandomConfig{
			Count:     8,
			MinLength: 80,
			MaxLength: 320,
			Margin:    40,
			Style:     StyleConfig{Color: "#4fc3f7", Width: 3},
		},
	}
}
