// Package canvas replays render commands onto a drawing surface.
package canvas

import (
	"fmt"
	"math"

	"github.com/f3rmion/lobstr/internal/lobster"
	"github.com/f3rmion/lobstr/internal/render"
)

// arcSteps is the number of line segments an arc is flattened into.
const arcSteps = 32

// Surface is the minimal set of primitives Draw needs. Rectangles are sent
// as four-point polygons and arcs as polylines.
type Surface interface {
	Polygon(pts []render.Point, fill, outline *lobster.Color, width float64) error
	Ellipse(box render.Box, fill, outline *lobster.Color, width float64) error
	Polyline(pts []render.Point, c lobster.Color, width float64) error
}

// Draw replays cmds onto s in order. It stops at the first failing command.
func Draw(s Surface, cmds []render.Command) error {
	for i, c := range cmds {
		if err := drawOne(s, c); err != nil {
			return fmt.Errorf("drawing command %d (%s): %w", i, c.Shape, err)
		}
	}
	return nil
}

func drawOne(s Surface, c render.Command) error {
	switch c.Shape {
	case render.ShapeRect:
		if len(c.Points) != 2 {
			return fmt.Errorf("rect needs 2 points, got %d", len(c.Points))
		}
		a, b := c.Points[0], c.Points[1]
		pts := []render.Point{a, render.Pt(b.X, a.Y), b, render.Pt(a.X, b.Y)}
		return s.Polygon(pts, c.Fill, c.Outline, c.Width)
	case render.ShapeEllipse:
		if len(c.Points) != 2 {
			return fmt.Errorf("ellipse needs 2 points, got %d", len(c.Points))
		}
		return s.Ellipse(render.Box{Min: c.Points[0], Max: c.Points[1]}, c.Fill, c.Outline, c.Width)
	case render.ShapePolygon:
		if len(c.Points) < 3 {
			return fmt.Errorf("polygon needs at least 3 points, got %d", len(c.Points))
		}
		return s.Polygon(c.Points, c.Fill, c.Outline, c.Width)
	case render.ShapeLine:
		if len(c.Points) < 2 {
			return fmt.Errorf("line needs at least 2 points, got %d", len(c.Points))
		}
		if c.Outline == nil {
			return nil
		}
		return s.Polyline(c.Points, *c.Outline, c.Width)
	case render.ShapeArc:
		if len(c.Points) != 2 {
			return fmt.Errorf("arc needs 2 points, got %d", len(c.Points))
		}
		if c.Outline == nil {
			return nil
		}
		return s.Polyline(ArcPoints(render.Box{Min: c.Points[0], Max: c.Points[1]}, c.Start, c.End), *c.Outline, c.Width)
	}
	return fmt.Errorf("unknown shape %d", c.Shape)
}

// ArcPoints flattens the arc of the ellipse inscribed in box from start to
// end degrees, measured clockwise from the positive X axis.
func ArcPoints(box render.Box, start, end float64) []render.Point {
	for end < start {
		end += 360
	}
	cx := (box.Min.X + box.Max.X) / 2
	cy := (box.Min.Y + box.Max.Y) / 2
	rx, ry := box.Width()/2, box.Height()/2

	pts := make([]render.Point, 0, arcSteps+1)
	for i := 0; i <= arcSteps; i++ {
		a := (start + (end-start)*float64(i)/arcSteps) * math.Pi / 180
		pts = append(pts, render.Pt(cx+rx*math.Cos(a), cy+ry*math.Sin(a)))
	}
	return pts
}
