// Package render defines the backend-agnostic rendering, input, and game
// loop interfaces. Game logic only sees these; the ebiten backend under
// render/ebiten implements them.
package render

import (
	"errors"
	"image"
	"image/color"
)

// Termination signals a clean shutdown when returned from Game.Update. The
// backend translates it into stopping the game loop without reporting an
// error.
var Termination = errors.New("render: termination requested")

// Renderer is the main rendering interface that abstracts the underlying
// graphics engine.
type Renderer interface {
	// NewImage creates an offscreen image with the given dimensions.
	NewImage(width, height int) Image

	// StrokeLine draws a straight stroke between two points.
	StrokeLine(dst Image, x0, y0, x1, y1 float32, strokeWidth float32, clr color.Color)

	// FillCircle draws a filled circle on the destination image.
	FillCircle(dst Image, x, y, radius float32, clr color.Color)
}

// Image represents a renderable surface that can be drawn to.
type Image interface {
	Bounds() image.Rectangle
	Size() (width, height int)

	// Fill fills the entire image with the given color.
	Fill(clr color.Color)
	// Clear clears the image to transparent.
	Clear()

	// DrawTriangles draws triangles textured by img. Vertex colors are
	// multiplied with the texture, so a white texture yields the vertex
	// colors directly.
	DrawTriangles(vertices []Vertex, indices []uint16, img Image, opts *DrawTrianglesOptions)

	// Dispose releases the image resources.
	Dispose()
}

// DrawTrianglesOptions contains options for drawing triangles.
type DrawTrianglesOptions struct {
	AntiAlias bool
}

// Vertex represents a vertex for triangle rendering.
type Vertex struct {
	DstX   float32
	DstY   float32
	SrcX   float32
	SrcY   float32
	ColorR float32
	ColorG float32
	ColorB float32
	ColorA float32
}

// InputManager handles input from the user (keyboard, mouse, etc).
type InputManager interface {
	IsKeyJustPressed(key Key) bool
	GetCursorPosition() (x, y int)
	IsMouseButtonPressed(button MouseButton) bool
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the app reacts to.
const (
	KeyR Key = iota // regenerate random obstacles
	KeySpace
	KeyEscape
)

// MouseButton represents a mouse button.
type MouseButton int

// Mouse button constants
const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// Game represents the game interface that the engine will call.
type Game interface {
	// Update updates the game logic. It is called every tick (typically 60
	// times per second). Returning Termination stops the loop cleanly.
	Update() error

	// Draw draws the game screen. It is called every frame.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the
	// logical screen size used for rendering and input coordinates.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the game engine that manages the game loop and window.
type Engine interface {
	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// SetWindowResizable enables or disables window resizing.
	SetWindowResizable(resizable bool)

	// RunGame runs the game loop with the provided game. This is a
	// blocking call that runs until the game ends.
	RunGame(game Game) error
}
