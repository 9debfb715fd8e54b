package game

import (
	"image/color"

	"chosenoffset.com/lightrays/internal/geometry"
	"chosenoffset.com/lightrays/internal/render"
)

// canvas adapts the renderer to the geometry's StrokeSurface boundary.
// Solid styles go through the renderer's line stroking; gradient styles are
// drawn as a triangle strip over a white texture, one quad per consecutive
// pair of gradient stops with the stop colors on the quad's end vertices.
type canvas struct {
	renderer render.Renderer
	white    render.Image
	dst      render.Image
}

func newCanvas(renderer render.Renderer) *canvas {
	// 3x3 so the sampled center texel is unaffected by edge filtering.
	white := renderer.NewImage(3, 3)
	white.Fill(color.White)
	return &canvas{renderer: renderer, white: white}
}

// setTarget points the canvas at the frame's destination image.
func (c *canvas) setTarget(dst render.Image) {
	c.dst = dst
}

// StrokeSegment implements geometry.StrokeSurface.
func (c *canvas) StrokeSegment(from, to geometry.Vector2D, style geometry.Style) {
	if c.dst == nil {
		return
	}
	if len(style.Gradient) < 2 {
		clr := style.Color
		if len(style.Gradient) == 1 {
			clr = style.Gradient[0].Color
		}
		c.renderer.StrokeLine(c.dst,
			float32(from.X), float32(from.Y),
			float32(to.X), float32(to.Y),
			float32(style.Width), clr)
		return
	}
	c.strokeGradient(from, to, style)
}

func (c *canvas) strokeGradient(from, to geometry.Vector2D, style geometry.Style) {
	span := to.Subtract(from)
	if span.Magnitude() == 0 {
		return
	}

	// Half-width normal to the stroke direction.
	unit := span.Normalize()
	normal := geometry.NewVector2D(-unit.Y, unit.X).MultiplyScalar(style.Width / 2)

	stops := style.Gradient
	if stops[0].Offset > 0 {
		stops = append([]geometry.GradientStop{{Offset: 0, Color: stops[0].Color}}, stops...)
	}
	if last := stops[len(stops)-1]; last.Offset < 1 {
		stops = append(stops, geometry.GradientStop{Offset: 1, Color: last.Color})
	}

	vertices := make([]render.Vertex, 0, 2*len(stops))
	for _, stop := range stops {
		p := from.Add(span.MultiplyScalar(stop.Offset))
		r := float32(stop.Color.R) / 255
		g := float32(stop.Color.G) / 255
		b := float32(stop.Color.B) / 255
		a := float32(stop.Color.A) / 255
		for _, corner := range [2]geometry.Vector2D{p.Add(normal), p.Subtract(normal)} {
			vertices = append(vertices, render.Vertex{
				DstX: float32(corner.X), DstY: float32(corner.Y),
				SrcX: 1, SrcY: 1,
				ColorR: r, ColorG: g, ColorB: b, ColorA: a,
			})
		}
	}

	indices := make([]uint16, 0, 6*(len(stops)-1))
	for i := 0; i < len(stops)-1; i++ {
		base := uint16(2 * i)
		indices = append(indices,
			base, base+1, base+2,
			base+1, base+3, base+2)
	}

	c.dst.DrawTriangles(vertices, indices, c.white, &render.DrawTrianglesOptions{AntiAlias: true})
}
