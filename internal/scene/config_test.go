package scene

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const sampleScene = `
window:
  width: 800
  height: 600
  title: "Test Scene"
rays:
  amount: 120
  angle_min: 0
  angle_max: 360
  length: 1000
  follow_pointer: true
  origin: {x: 400, y: 300}
  style:
    width: 1.5
    gradient:
      - {offset: 0, color: "#ffffffff"}
      - {offset: 1, color: "#ffffff00"}
obstacles:
  - {x: 100, y: 100, angle: 45, length: 200, style: {color: "#4fc3f7", width: 3}}
  - {x: 500, y: 200, angle: 130, length: 150, style: {color: "#f74f4f", width: 3}}
random:
  count: 4
  seed: 42
  min_length: 50
  max_length: 250
  margin: 20
  style: {color: "#888888", width: 2}
`

func TestConfigParsing(t *testing.T) {
	var cfg Config
	require.NoError(t, yaml.Unmarshal([]byte(sampleScene), &cfg))
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, "Test Scene", cfg.Window.Title)

	assert.Equal(t, 120, cfg.Rays.Amount)
	assert.Equal(t, 360.0, cfg.Rays.AngleMax)
	assert.True(t, cfg.Rays.FollowPointer)
	assert.Equal(t, 400.0, cfg.Rays.Origin.X)
	require.Len(t, cfg.Rays.Style.Gradient, 2)
	assert.Equal(t, 1.0, cfg.Rays.Style.Gradient[1].Offset)

	require.Len(t, cfg.Obstacles, 2)
	assert.Equal(t, 45.0, cfg.Obstacles[0].Angle)
	assert.Equal(t, "#4fc3f7", cfg.Obstacles[0].Style.Color)

	require.NotNil(t, cfg.Random)
	assert.Equal(t, int64(42), cfg.Random.Seed)
	assert.Equal(t, 20.0, cfg.Random.Margin)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleScene), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 120, cfg.Rays.Amount)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window: ["), 0o644))
	_, err = LoadConfig(path)
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	base := func() *Config {
		var cfg Config
		require.NoError(t, yaml.Unmarshal([]byte(sampleScene), &cfg))
		return &cfg
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero window width", func(c *Config) { c.Window.Width = 0 }},
		{"negative ray amount", func(c *Config) { c.Rays.Amount = -1 }},
		{"zero ray length", func(c *Config) { c.Rays.Length = 0 }},
		{"reversed angle range", func(c *Config) { c.Rays.AngleMin = 270; c.Rays.AngleMax = 90 }},
		{"bad ray color", func(c *Config) { c.Rays.Style.Color = "red" }},
		{"gradient offset out of range", func(c *Config) { c.Rays.Style.Gradient[0].Offset = 1.5 }},
		{"descending gradient offsets", func(c *Config) {
			c.Rays.Style.Gradient[0].Offset = 0.9
			c.Rays.Style.Gradient[1].Offset = 0.1
		}},
		{"zero obstacle length", func(c *Config) { c.Obstacles[0].Length = 0 }},
		{"bad obstacle color", func(c *Config) { c.Obstacles[1].Style.Color = "#zzzzzz" }},
		{"negative random count", func(c *Config) { c.Random.Count = -2 }},
		{"reversed random length range", func(c *Config) {
			c.Random.MinLength = 300
			c.Random.MaxLength = 100
		}},
	}

	require.NoError(t, base().Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in       string
		expected color.RGBA
	}{
		{"#fff", color.RGBA{255, 255, 255, 255}},
		{"#f00", color.RGBA{255, 0, 0, 255}},
		{"#4fc3f7", color.RGBA{0x4f, 0xc3, 0xf7, 255}},
		{"#FFFFFF", color.RGBA{255, 255, 255, 255}},
		{"#ffffff00", color.RGBA{255, 255, 255, 0}},
		{"#10203040", color.RGBA{0x10, 0x20, 0x30, 0x40}},
	}
	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.expected, got, tt.in)
	}

	for _, bad := range []string{"", "fff", "#ff", "#ffff", "#gggggg", "#12345"} {
		_, err := ParseHexColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestStyleConversion(t *testing.T) {
	// Empty style falls back to opaque white, width 1.
	style := StyleConfig{}.Style()
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, style.Color)
	assert.Equal(t, 1.0, style.Width)
	assert.Empty(t, style.Gradient)

	style = StyleConfig{
		Color: "#4fc3f7",
		Width: 3,
		Gradient: []GradientStopConfig{
			{Offset: 0, Color: "#ffffffff"},
			{Offset: 1, Color: "#ffffff00"},
		},
	}.Style()
	assert.Equal(t, color.RGBA{0x4f, 0xc3, 0xf7, 255}, style.Color)
	assert.Equal(t, 3.0, style.Width)
	require.Len(t, style.Gradient, 2)
	assert.Equal(t, uint8(0), style.Gradient[1].Color.A)
}

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}
