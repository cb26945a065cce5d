package render

import "github.com/f3rmion/lobstr/internal/lobster"

var gold = lobster.RGB(255, 215, 0)

// tailRecipe decorates the shared segmented tail. Nil hooks draw nothing.
type tailRecipe struct {
	segmentFill func(shell lobster.Color, i int) lobster.Color
	overlay     func(seg Box, dark lobster.Color, rnd Source) []Command
	fanTrim     func(fan []Point) []Command
}

func tailRecipeFor(style lobster.TailStyle) (tailRecipe, bool) {
	switch style {
	case lobster.TailPlain:
		return tailRecipe{}, true
	case lobster.TailStriped:
		return tailRecipe{segmentFill: stripedFill}, true
	case lobster.TailSpotted:
		return tailRecipe{overlay: spottedOverlay}, true
	case lobster.TailFancy:
		return tailRecipe{overlay: fancyOverlay, fanTrim: fancyTrim}, true
	}
	return tailRecipe{}, false
}

// drawTail emits the tail segments, top to bottom, then the fan.
func drawTail(a AnchorSet, shell, dark lobster.Color, r tailRecipe, rnd Source) []Command {
	x, y := a.Center.X, a.Center.Y
	segH := TailHeight / TailSegments

	var cmds []Command
	for i := 0; i < TailSegments; i++ {
		segY := y + float64(i)*segH
		segW := TailWidth - float64(i)*TailTaper
		seg := Box{Min: Pt(x-segW/2, segY), Max: Pt(x+segW/2, segY+segH)}

		fill := shell
		if r.segmentFill != nil {
			fill = r.segmentFill(shell, i)
		}
		cmds = append(cmds, Rect(seg.Min.X, seg.Min.Y, seg.Max.X, seg.Max.Y, paint(fill), paint(dark), LineWidth))
		if r.overlay != nil {
			cmds = append(cmds, r.overlay(seg, dark, rnd)...)
		}
	}

	fanY := y + TailHeight
	fan := []Point{
		Pt(x-60, fanY),
		Pt(x-45, fanY+40),
		Pt(x-20, fanY+50),
		Pt(x, fanY+55),
		Pt(x+20, fanY+50),
		Pt(x+45, fanY+40),
		Pt(x+60, fanY),
	}
	cmds = append(cmds, Polygon(fan, paint(shell), paint(dark), LineWidth))
	if r.fanTrim != nil {
		cmds = append(cmds, r.fanTrim(fan)...)
	}
	return cmds
}

func stripedFill(shell lobster.Color, i int) lobster.Color {
	if i%2 == 1 {
		return shell.Lighten(40)
	}
	return shell
}

// spottedOverlay places one dot per segment, jittered horizontally by up
// to 20px.
func spottedOverlay(seg Box, dark lobster.Color, rnd Source) []Command {
	cx := (seg.Min.X+seg.Max.X)/2 + uniform(rnd, -20, 20)
	cy := seg.Min.Y + 15
	return []Command{Circle(cx, cy, 6, paint(dark), nil, 0)}
}

// fancyOverlay draws a gold scallop across the lower half of a segment.
func fancyOverlay(seg Box, _ lobster.Color, _ Source) []Command {
	return []Command{Arc(seg.Min.X+8, seg.Min.Y+4, seg.Max.X-8, seg.Max.Y-4, 20, 160, gold, 4)}
}

func fancyTrim(fan []Point) []Command {
	first, last := fan[0], fan[len(fan)-1]
	return []Command{Segment(first.X, first.Y, last.X, last.Y, gold, 4)}
}
