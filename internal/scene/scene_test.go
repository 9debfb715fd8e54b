package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func buildConfig(t *testing.T) *Config {
	t.Helper()
	var cfg Config
	require.NoError(t, yaml.Unmarshal([]byte(sampleScene), &cfg))
	require.NoError(t, cfg.Validate())
	return &cfg
}

func TestNewBuildsScene(t *testing.T) {
	s := New(buildConfig(t))

	assert.Equal(t, 120, s.Bundle.Len())
	// Two fixed walls plus four random ones.
	assert.Len(t, s.Obstacles(), 6)
	assert.True(t, s.FollowPointer())
	assert.Equal(t, 400.0, s.Origin().X)
}

func TestRandomObstaclesAreDeterministicPerSeed(t *testing.T) {
	cfg := buildConfig(t)

	a := New(cfg)
	b := New(cfg)

	obsA := a.Obstacles()
	obsB := b.Obstacles()
	require.Equal(t, len(obsA), len(obsB))
	for i := range obsA {
		assert.True(t, obsA[i].Start.Equals(obsB[i].Start), "obstacle %d start", i)
		assert.True(t, obsA[i].End.Equals(obsB[i].End), "obstacle %d end", i)
	}
}

func TestRandomObstaclesRespectBounds(t *testing.T) {
	cfg := buildConfig(t)
	cfg.Random.Count = 50
	s := New(cfg)

	w := float64(cfg.Window.Width)
	h := float64(cfg.Window.Height)
	margin := cfg.Random.Margin
	for _, o := range s.Obstacles()[len(cfg.Obstacles):] {
		assert.GreaterOrEqual(t, o.Start.X, margin)
		assert.LessOrEqual(t, o.Start.X, w-margin)
		assert.GreaterOrEqual(t, o.Start.Y, margin)
		assert.LessOrEqual(t, o.Start.Y, h-margin)
		assert.GreaterOrEqual(t, o.Length, cfg.Random.MinLength)
		assert.LessOrEqual(t, o.Length, cfg.Random.MaxLength)
	}
}

func TestRegenerateReplacesOnlyRandomObstacles(t *testing.T) {
	cfg := buildConfig(t)
	s := New(cfg)

	before := s.Obstacles()
	require.Equal(t, 4, s.Regenerate())
	after := s.Obstacles()

	// Fixed obstacles are the same instances, random ones are fresh.
	for i := range cfg.Obstacles {
		assert.Same(t, before[i], after[i])
	}
	changed := false
	for i := len(cfg.Obstacles); i < len(before); i++ {
		if !before[i].Start.Equals(after[i].Start) {
			changed = true
		}
	}
	assert.True(t, changed, "regeneration should roll new random obstacles")
}

func TestRegenerateWithoutRandomBlock(t *testing.T) {
	cfg := buildConfig(t)
	cfg.Random = nil
	s := New(cfg)

	assert.Zero(t, s.Regenerate())
	assert.Len(t, s.Obstacles(), len(cfg.Obstacles))
}
