package render

import "github.com/f3rmion/lobstr/internal/lobster"

// angelWings fans three feathers out from each side of the body, drawn over
// the claws.
func angelWings(a AnchorSet, dark lobster.Color) []Command {
	x := a.Center.X
	y := a.Body.Min.Y + 60
	cmds := make([]Command, 0, 6)
	for i := 0; i < 3; i++ {
		fi := float64(i)
		wx := x - 60 - fi*15
		cmds = append(cmds, Ellipse(wx-20, y-10-fi*8, wx+5, y+20+fi*8, paint(white), paint(dark), LineWidth))
	}
	for i := 0; i < 3; i++ {
		fi := float64(i)
		wx := x + 60 + fi*15
		cmds = append(cmds, Ellipse(wx-5, y-10-fi*8, wx+20, y+20+fi*8, paint(white), paint(dark), LineWidth))
	}
	return cmds
}

// devilHorns rise from the head rim 35px either side of center.
func devilHorns(a AnchorSet, dark lobster.Color) []Command {
	red := lobster.RGB(200, 50, 50)
	y := a.Head.Y - HeadRadius - 5
	cmds := make([]Command, 0, 2)
	for side := Left; side <= Right; side++ {
		s := sideSign(side)
		hx := a.Head.X + s*35
		pts := []Point{Pt(hx, y), Pt(hx+s*10, y-25), Pt(hx+s*15, y-15), Pt(hx+s*5, y)}
		cmds = append(cmds, Polygon(pts, paint(red), paint(dark), LineWidth))
	}
	return cmds
}
