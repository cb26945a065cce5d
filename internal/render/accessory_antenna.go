package render

import (
	"math"

	"github.com/f3rmion/lobstr/internal/lobster"
)

// Antennae grow from the two AntennaBase points on the head's upper rim and
// lean outwards.

func straightAntennae(a AnchorSet, c lobster.Color, length, lean, width float64) []Command {
	cmds := make([]Command, 0, 2)
	for side := Left; side <= Right; side++ {
		b := a.AntennaBase[side]
		cmds = append(cmds, Segment(b.X, b.Y, b.X+sideSign(side)*lean, b.Y-length, c, width))
	}
	return cmds
}

func shortAntennae(a AnchorSet, dark lobster.Color) []Command {
	return straightAntennae(a, dark, 50, 10, LineWidth)
}

func longAntennae(a AnchorSet, dark lobster.Color) []Command {
	return straightAntennae(a, dark, 90, 15, LineWidth)
}

// curlyAntennae bend inwards along a sine curve, 12px per step.
func curlyAntennae(a AnchorSet, dark lobster.Color) []Command {
	cmds := make([]Command, 0, 2)
	for side := Left; side <= Right; side++ {
		b := a.AntennaBase[side]
		s := sideSign(side)
		pts := []Point{b}
		for i := 1; i < 5; i++ {
			off := -s * 15 * math.Sin(float64(i)*0.8)
			pts = append(pts, Pt(b.X+off, b.Y-float64(i)*12))
		}
		cmds = append(cmds, Line(pts, dark, LineWidth))
	}
	return cmds
}

var rainbow = [6]lobster.Color{
	lobster.RGB(255, 0, 0),
	lobster.RGB(255, 127, 0),
	lobster.RGB(255, 255, 0),
	lobster.RGB(0, 255, 0),
	lobster.RGB(0, 0, 255),
	lobster.RGB(75, 0, 130),
}

// rainbowAntennae stacks six thin bands, each shifted 2px down.
func rainbowAntennae(a AnchorSet, _ lobster.Color) []Command {
	cmds := make([]Command, 0, 2*len(rainbow))
	for i, c := range rainbow {
		off := float64(i * 2)
		for side := Left; side <= Right; side++ {
			b := a.AntennaBase[side]
			s := sideSign(side)
			cmds = append(cmds, Segment(b.X, b.Y+off, b.X+s*15, b.Y-70+off, c, 2))
		}
	}
	return cmds
}
