package render

import "github.com/f3rmion/lobstr/internal/lobster"

// Face-worn accessories hang off AnchorSet.Glasses, with lenses centered
// EyeSpacing either side of it.

func lensPair(a AnchorSet, left, right lobster.Color, dark lobster.Color, width float64) []Command {
	x, y := a.Glasses.X, a.Glasses.Y
	return []Command{
		Ellipse(x-EyeSpacing-18, y-15, x-EyeSpacing+18, y+15, paint(left), paint(dark), width),
		Ellipse(x+EyeSpacing-18, y-15, x+EyeSpacing+18, y+15, paint(right), paint(dark), width),
	}
}

func bridge(a AnchorSet, c lobster.Color, width float64) Command {
	x, y := a.Glasses.X, a.Glasses.Y
	return Segment(x-12, y, x+12, y, c, width)
}

func sunglasses(a AnchorSet, dark lobster.Color) []Command {
	return append(lensPair(a, charcoal, charcoal, dark, LineWidth), bridge(a, dark, LineWidth))
}

func glasses3D(a AnchorSet, dark lobster.Color) []Command {
	red := lobster.RGB(255, 50, 50)
	blue := lobster.RGB(50, 150, 255)
	return append(lensPair(a, red, blue, dark, LineWidth), bridge(a, dark, LineWidth))
}

// monocle sits over the right eye with a short chain.
func monocle(a AnchorSet, dark lobster.Color) []Command {
	x, y := a.Glasses.X+EyeSpacing, a.Glasses.Y
	return []Command{
		Ellipse(x-15, y-15, x+15, y+15, nil, paint(dark), LineWidth+1),
		Segment(x+15, y, x+25, y+15, dark, LineWidth),
	}
}

// eyePatch covers the left eye; its strap runs to both sides of the head.
func eyePatch(a AnchorSet, dark lobster.Color) []Command {
	x, y := a.Glasses.X, a.Glasses.Y
	ex := x - EyeSpacing
	return []Command{
		Ellipse(ex-15, y-15, ex+15, y+15, paint(charcoal), paint(dark), LineWidth),
		Segment(ex-15, y, x-60, y-20, dark, LineWidth),
		Segment(ex+15, y, x+60, y-20, dark, LineWidth),
	}
}

func goggles(a AnchorSet, dark lobster.Color) []Command {
	glass := lobster.RGB(150, 200, 220)
	return append(lensPair(a, glass, glass, dark, LineWidth+1), bridge(a, lobster.RGB(100, 100, 100), LineWidth+2))
}
