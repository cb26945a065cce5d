package render

import (
	"math"

	"github.com/f3rmion/lobstr/internal/lobster"
)

var (
	white = lobster.RGB(255, 255, 255)
	black = lobster.RGB(0, 0, 0)
)

// eyeRecipe draws both eyes from the two stalk tips.
type eyeRecipe func(tips [2]Point, dark lobster.Color, rnd Source) []Command

func eyeRecipeFor(style lobster.EyeStyle) (eyeRecipe, bool) {
	switch style {
	case lobster.EyeNormal:
		return normalEyes, true
	case lobster.EyeGoogly:
		return googlyEyes, true
	case lobster.EyeAngry:
		return angryEyes, true
	case lobster.EyeHearts:
		return heartEyes, true
	case lobster.EyeStars:
		return starEyes, true
	case lobster.EyeLaser:
		return laserEyes, true
	}
	return nil, false
}

// drawStalks emits the two stalks from base to tip.
func drawStalks(a AnchorSet, shell lobster.Color) []Command {
	cmds := make([]Command, 0, 2)
	for side := Left; side <= Right; side++ {
		b, t := a.StalkBase[side], a.EyeTip[side]
		cmds = append(cmds, Segment(b.X, b.Y, t.X, t.Y, shell, LineWidth+2))
	}
	return cmds
}

func eyeball(tip Point, dark lobster.Color) Command {
	return Circle(tip.X, tip.Y, EyeSize/2, paint(white), paint(dark), LineWidth)
}

func normalEyes(tips [2]Point, dark lobster.Color, _ Source) []Command {
	var cmds []Command
	for _, e := range tips {
		cmds = append(cmds,
			eyeball(e, dark),
			Circle(e.X, e.Y, 6, paint(black), nil, 0),
		)
	}
	return cmds
}

// googlyEyes offsets each pupil by up to 5px on both axes.
func googlyEyes(tips [2]Point, dark lobster.Color, rnd Source) []Command {
	var cmds []Command
	for _, e := range tips {
		dx := uniform(rnd, -5, 5)
		dy := uniform(rnd, -5, 5)
		cmds = append(cmds,
			eyeball(e, dark),
			Circle(e.X+dx, e.Y+dy, 5, paint(black), nil, 0),
		)
	}
	return cmds
}

// angryEyes slant the brows down toward the middle; right mirrors left.
func angryEyes(tips [2]Point, dark lobster.Color, _ Source) []Command {
	var cmds []Command
	for side, e := range tips {
		var brow Command
		if side == Left {
			brow = Segment(e.X-12, e.Y-15, e.X+8, e.Y-8, dark, LineWidth)
		} else {
			brow = Segment(e.X-8, e.Y-8, e.X+12, e.Y-15, dark, LineWidth)
		}
		cmds = append(cmds,
			eyeball(e, dark),
			brow,
			Circle(e.X, e.Y, 5, paint(black), nil, 0),
		)
	}
	return cmds
}

var pink = lobster.RGB(255, 100, 150)

func heartEyes(tips [2]Point, dark lobster.Color, _ Source) []Command {
	var cmds []Command
	for _, e := range tips {
		cmds = append(cmds,
			Ellipse(e.X-10, e.Y-12, e.X, e.Y-2, paint(pink), paint(dark), 3),
			Ellipse(e.X, e.Y-12, e.X+10, e.Y-2, paint(pink), paint(dark), 3),
			Polygon([]Point{Pt(e.X-10, e.Y-6), Pt(e.X+10, e.Y-6), Pt(e.X, e.Y+8)}, paint(pink), paint(dark), 3),
		)
	}
	return cmds
}

// starPoints returns a ten-vertex star alternating outer and inner radii,
// starting straight up.
func starPoints(c Point, outer, inner float64) []Point {
	pts := make([]Point, 10)
	for i := range pts {
		angle := float64(i*36-90) * math.Pi / 180
		r := outer
		if i%2 == 1 {
			r = inner
		}
		pts[i] = Pt(c.X+r*math.Cos(angle), c.Y+r*math.Sin(angle))
	}
	return pts
}

func starEyes(tips [2]Point, dark lobster.Color, _ Source) []Command {
	yellow := lobster.RGB(255, 220, 100)
	var cmds []Command
	for _, e := range tips {
		cmds = append(cmds, Polygon(starPoints(e, 12, 5), paint(yellow), paint(dark), 3))
	}
	return cmds
}

func laserEyes(tips [2]Point, _ lobster.Color, _ Source) []Command {
	red := lobster.RGB(255, 0, 0)
	glow := lobster.RGB(255, 100, 100)
	var cmds []Command
	for _, e := range tips {
		cmds = append(cmds,
			Circle(e.X, e.Y, EyeSize/2, paint(red), paint(glow), 4),
			Segment(e.X, e.Y-EyeSize/2, e.X, e.Y-80, red, 5),
		)
	}
	return cmds
}
