package render

import "github.com/f3rmion/lobstr/internal/lobster"

// Head-worn accessories sit on AnchorSet.Hat, the brim line just above the
// head.

func crown(a AnchorSet, dark lobster.Color) []Command {
	x, y := a.Hat.X, a.Hat.Y
	pts := []Point{
		Pt(x-35, y), Pt(x-25, y-25), Pt(x-12, y-10),
		Pt(x, y-30), Pt(x+12, y-10), Pt(x+25, y-25), Pt(x+35, y),
	}
	return []Command{Polygon(pts, paint(gold), paint(dark), LineWidth)}
}

func chefHat(a AnchorSet, dark lobster.Color) []Command {
	x, y := a.Hat.X, a.Hat.Y
	return []Command{
		Rect(x-45, y, x+45, y+15, paint(white), paint(dark), LineWidth),
		Ellipse(x-40, y-40, x+40, y+8, paint(white), paint(dark), LineWidth),
	}
}

var charcoal = lobster.RGB(40, 40, 40)

func pirateHat(a AnchorSet, dark lobster.Color) []Command {
	x, y := a.Hat.X, a.Hat.Y
	pts := []Point{Pt(x-55, y), Pt(x-40, y-35), Pt(x+40, y-35), Pt(x+55, y)}
	return []Command{
		Polygon(pts, paint(charcoal), paint(dark), LineWidth),
		Ellipse(x-15, y-25, x+15, y-5, paint(white), paint(dark), 3),
	}
}

func topHat(a AnchorSet, dark lobster.Color) []Command {
	x, y := a.Hat.X, a.Hat.Y
	return []Command{
		Rect(x-50, y, x+50, y+12, paint(charcoal), paint(dark), LineWidth),
		Rect(x-35, y-50, x+35, y, paint(charcoal), paint(dark), LineWidth),
	}
}

func wizardHat(a AnchorSet, dark lobster.Color) []Command {
	x, y := a.Hat.X, a.Hat.Y
	cmds := []Command{
		Polygon([]Point{Pt(x-50, y), Pt(x, y-60), Pt(x+50, y)}, paint(lobster.RGB(80, 60, 150)), paint(dark), LineWidth),
	}
	for _, sx := range [2]float64{x - 15, x + 15} {
		cmds = append(cmds, Circle(sx, y-30, 4, paint(gold), nil, 0))
	}
	return cmds
}

func cowboyHat(a AnchorSet, dark lobster.Color) []Command {
	x, y := a.Hat.X, a.Hat.Y
	leather := lobster.RGB(139, 90, 43)
	return []Command{
		Ellipse(x-55, y-5, x+55, y+15, paint(leather), paint(dark), LineWidth),
		Ellipse(x-35, y-35, x+35, y+5, paint(leather), paint(dark), LineWidth),
	}
}

func vikingHelmet(a AnchorSet, dark lobster.Color) []Command {
	x, y := a.Hat.X, a.Hat.Y
	steel := lobster.RGB(180, 180, 180)
	horn := lobster.RGB(220, 220, 200)
	return []Command{
		Ellipse(x-40, y-30, x+40, y+10, paint(steel), paint(dark), LineWidth),
		Polygon([]Point{Pt(x-40, y-10), Pt(x-55, y-40), Pt(x-35, y-15)}, paint(horn), paint(dark), LineWidth),
		Polygon([]Point{Pt(x+40, y-10), Pt(x+55, y-40), Pt(x+35, y-15)}, paint(horn), paint(dark), LineWidth),
	}
}

func birthdayHat(a AnchorSet, dark lobster.Color) []Command {
	x, y := a.Hat.X, a.Hat.Y
	return []Command{
		Polygon([]Point{Pt(x-30, y), Pt(x, y-50), Pt(x+30, y)}, paint(pink), paint(dark), LineWidth),
		Circle(x, y-50, 8, paint(gold), nil, 0),
	}
}

// halo is an unfilled gold ring floating above the brim line.
func halo(a AnchorSet, _ lobster.Color) []Command {
	x, y := a.Hat.X, a.Hat.Y
	return []Command{Ellipse(x-35, y-50, x+35, y-35, nil, paint(gold), 6)}
}
