package render

import "github.com/f3rmion/lobstr/internal/lobster"

// drawClaws emits the left then the right claw: an arm from the body edge
// to the pivot, then two kite-shaped pincers. Pincer size is ClawBase
// multiplied by scale; the right claw mirrors the left about the center.
func drawClaws(a AnchorSet, shell, dark lobster.Color, scale float64) []Command {
	k := ClawBase * scale
	cx := a.Center.X

	var cmds []Command
	for side := Left; side <= Right; side++ {
		s := sideSign(side)
		p := a.ClawPivot[side]

		// arm spans from 15px beyond the pivot to 5px inside the body edge
		outer := p.X + s*15
		inner := cx + s*(BodyWidth/2-5)
		x0, x1 := min(outer, inner), max(outer, inner)
		cmds = append(cmds, Rect(x0, p.Y-12, x1, p.Y+12, paint(shell), paint(dark), LineWidth))

		for _, dir := range [2]float64{-1, 1} {
			pincer := []Point{
				p,
				Pt(p.X+s*k*0.7, p.Y+dir*k*0.4),
				Pt(p.X+s*k*1.1, p.Y+dir*k*0.2),
				Pt(p.X+s*k*0.6, p.Y),
			}
			cmds = append(cmds, Polygon(pincer, paint(shell), paint(dark), LineWidth))
		}
	}
	return cmds
}
