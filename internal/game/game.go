// Package game drives the per-frame tick: read the pointer, reposition the
// ray bundle, clip it against the scene's obstacles, and draw the result.
package game

import (
	"image/color"

	"go.uber.org/zap"

	"chosenoffset.com/lightrays/internal/geometry"
	"chosenoffset.com/lightrays/internal/render"
	"chosenoffset.com/lightrays/internal/scene"
)

var backgroundColor = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xff}

// Game holds the running state and implements render.Game.
type Game struct {
	screenWidth  int
	screenHeight int

	scene  *scene.Scene
	input  render.InputManager
	canvas *canvas
	log    *zap.Logger

	renderer render.Renderer
	origin   geometry.Vector2D
}

// New creates a game over a built scene.
func New(s *scene.Scene, renderer render.Renderer, input render.InputManager, width, height int, log *zap.Logger) *Game {
	return &Game{
		screenWidth:  width,
		screenHeight: height,
		scene:        s,
		input:        input,
		canvas:       newCanvas(renderer),
		log:          log,
		renderer:     renderer,
		origin:       s.Origin(),
	}
}

// Update advances one tick: input, then the update/intersect pass over the
// bundle. Implements render.Game.
func (g *Game) Update() error {
	if g.input.IsKeyJustPressed(render.KeyEscape) {
		return render.Termination
	}
	if g.input.IsKeyJustPressed(render.KeyR) {
		if n := g.scene.Regenerate(); n > 0 {
			g.log.Info("regenerated random obstacles", zap.Int("count", n))
		}
	}

	if g.scene.FollowPointer() {
		x, y := g.input.GetCursorPosition()
		g.origin = geometry.NewVector2D(float64(x), float64(y))
	} else {
		g.origin = g.scene.Origin()
	}

	g.scene.Bundle.Update(g.origin)
	g.scene.Bundle.Intersect(g.scene.Obstacles())
	return nil
}

// Draw renders the frame: background, obstacles, clipped rays, and the
// pivot marker. Implements render.Game.
func (g *Game) Draw(screen render.Image) {
	screen.Fill(backgroundColor)
	g.canvas.setTarget(screen)

	// Obstacles are never clipped, so their visible span is the full
	// segment and they can go through the same stroke path as the rays.
	for _, obstacle := range g.scene.Obstacles() {
		obstacle.Draw(g.canvas)
	}
	g.scene.Bundle.Draw(g.canvas)

	g.renderer.FillCircle(screen,
		float32(g.origin.X), float32(g.origin.Y), 4,
		color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
}

// Layout implements render.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenWidth, g.screenHeight
}
