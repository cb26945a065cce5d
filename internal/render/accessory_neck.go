package render

import "github.com/f3rmion/lobstr/internal/lobster"

// Neck and body accessories use AnchorSet.Neck, near the bottom of the body.
// The bandana is tied around the head instead.

func bowTie(a AnchorSet, dark lobster.Color) []Command {
	x, y := a.Neck.X, a.Neck.Y
	red := lobster.RGB(200, 50, 50)
	return []Command{
		Polygon([]Point{Pt(x-35, y-12), Pt(x-15, y-18), Pt(x-15, y+18), Pt(x-35, y+12)}, paint(red), paint(dark), LineWidth),
		Polygon([]Point{Pt(x+35, y-12), Pt(x+15, y-18), Pt(x+15, y+18), Pt(x+35, y+12)}, paint(red), paint(dark), LineWidth),
		Circle(x, y, 12, paint(red), paint(dark), LineWidth),
	}
}

// goldChain is seven links with a triangular pendant.
func goldChain(a AnchorSet, dark lobster.Color) []Command {
	x := a.Neck.X
	y := a.Neck.Y - 15
	cmds := make([]Command, 0, 8)
	for i := 0; i < 7; i++ {
		cmds = append(cmds, Circle(x-30+float64(i)*10, y, 4, paint(gold), paint(dark), 2))
	}
	return append(cmds, Polygon([]Point{Pt(x-8, y+5), Pt(x+8, y+5), Pt(x, y+20)}, paint(gold), paint(dark), 2))
}

func scarf(a AnchorSet, dark lobster.Color) []Command {
	x, y := a.Neck.X, a.Neck.Y
	pts := []Point{
		Pt(x-25, y-15), Pt(x+25, y-15), Pt(x+30, y+15),
		Pt(x+15, y+40), Pt(x-15, y+40), Pt(x-30, y+15),
	}
	return []Command{Polygon(pts, paint(lobster.RGB(200, 100, 100)), paint(dark), LineWidth)}
}

func bandana(a AnchorSet, dark lobster.Color) []Command {
	x, y := a.Head.X, a.Head.Y
	pts := []Point{Pt(x-40, y), Pt(x+40, y), Pt(x+30, y+15), Pt(x-30, y+15)}
	return []Command{Polygon(pts, paint(lobster.RGB(220, 50, 50)), paint(dark), LineWidth)}
}
