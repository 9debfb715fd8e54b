package geometry

import "image/color"

// GradientStop pairs a fractional offset along a stroke, in [0, 1], with
// the color at that offset.
type GradientStop struct {
	Offset float64
	Color  color.RGBA
}

// Style describes how a segment is drawn. The geometry never interprets it;
// it travels with the segment so the renderer can stroke each visible span.
// When Gradient is non-empty it takes precedence over Color.
type Style struct {
	Color    color.RGBA
	Width    float64
	Gradient []GradientStop
}

// StrokeSurface is the drawing boundary consumed by Segment.Draw and
// RayBundle.Draw. The renderer glue implements it; the geometry only hands
// over resolved spans.
type StrokeSurface interface {
	StrokeSegment(from, to Vector2D, style Style)
}
