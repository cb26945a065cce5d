// Package render turns a lobster's traits into an ordered list of vector
// draw commands. Later commands are drawn on top of earlier ones.
package render

import "github.com/f3rmion/lobstr/internal/lobster"

// Shape identifies the primitive a Command draws.
type Shape uint8

const (
	ShapeRect    Shape = iota + 1 // Points[0]=min corner, Points[1]=max corner
	ShapeEllipse                  // Points is the bounding box, as for ShapeRect
	ShapePolygon                  // Points are the vertices, implicitly closed
	ShapeLine                     // Points form an open polyline
	ShapeArc                      // Points is the ellipse bounding box; Start/End in degrees
)

func (s Shape) String() string {
	switch s {
	case ShapeRect:
		return "rect"
	case ShapeEllipse:
		return "ellipse"
	case ShapePolygon:
		return "polygon"
	case ShapeLine:
		return "line"
	case ShapeArc:
		return "arc"
	}
	return "unknown"
}

// Point is a canvas coordinate. Y grows downwards.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Command is one primitive draw instruction.
//
// Fill and Outline are optional; nil means "do not fill" or "do not stroke".
// Lines and arcs are stroked only, with Outline as the stroke color.
// Arc angles are measured in degrees clockwise from the positive X axis.
type Command struct {
	Shape   Shape          `json:"shape"`
	Points  []Point        `json:"points"`
	Fill    *lobster.Color `json:"fill,omitempty"`
	Outline *lobster.Color `json:"outline,omitempty"`
	Width   float64        `json:"width,omitempty"`
	Start   float64        `json:"start,omitempty"`
	End     float64        `json:"end,omitempty"`
}

func paint(c lobster.Color) *lobster.Color {
	return &c
}

// Rect builds a rectangle command from its corner coordinates.
func Rect(x0, y0, x1, y1 float64, fill, outline *lobster.Color, width float64) Command {
	return Command{Shape: ShapeRect, Points: []Point{Pt(x0, y0), Pt(x1, y1)}, Fill: fill, Outline: outline, Width: width}
}

// Ellipse builds an ellipse command inscribed in the given box.
func Ellipse(x0, y0, x1, y1 float64, fill, outline *lobster.Color, width float64) Command {
	return Command{Shape: ShapeEllipse, Points: []Point{Pt(x0, y0), Pt(x1, y1)}, Fill: fill, Outline: outline, Width: width}
}

// Circle builds an ellipse command for a circle of radius r around (cx, cy).
func Circle(cx, cy, r float64, fill, outline *lobster.Color, width float64) Command {
	return Ellipse(cx-r, cy-r, cx+r, cy+r, fill, outline, width)
}

// Polygon builds a closed polygon command.
func Polygon(pts []Point, fill, outline *lobster.Color, width float64) Command {
	return Command{Shape: ShapePolygon, Points: pts, Fill: fill, Outline: outline, Width: width}
}

// Line builds a stroked polyline command.
func Line(pts []Point, c lobster.Color, width float64) Command {
	return Command{Shape: ShapeLine, Points: pts, Outline: paint(c), Width: width}
}

// Segment builds a two-point line command.
func Segment(x0, y0, x1, y1 float64, c lobster.Color, width float64) Command {
	return Line([]Point{Pt(x0, y0), Pt(x1, y1)}, c, width)
}

// Arc builds a stroked elliptical arc inscribed in the given box.
func Arc(x0, y0, x1, y1, start, end float64, c lobster.Color, width float64) Command {
	return Command{Shape: ShapeArc, Points: []Point{Pt(x0, y0), Pt(x1, y1)}, Outline: paint(c), Width: width, Start: start, End: end}
}

// Source yields uniform floats in [0, 1). It feeds the few recipes that
// carry bounded jitter.
type Source interface {
	Float64() float64
}

// centered is used when no Source is supplied; every jitter is zero.
type centered struct{}

func (centered) Float64() float64 { return 0.5 }

// uniform draws from [lo, hi).
func uniform(rnd Source, lo, hi float64) float64 {
	return lo + (hi-lo)*rnd.Float64()
}
