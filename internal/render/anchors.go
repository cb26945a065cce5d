package render

import "github.com/f3rmion/lobstr/internal/lobster"

// Figure geometry, in pixels at the reference 1400x1400 canvas.
const (
	LineWidth = 7.0

	TailWidth    = 100.0
	TailHeight   = 180.0
	TailSegments = 4
	TailTaper    = 8.0

	BodyWidth  = 120.0
	BodyHeight = 150.0
	BodyRise   = 80.0 // body top above the figure center

	HeadRadius = 50.0
	HeadRise   = 20.0 // head center above the body top

	EyeSpacing  = 30.0
	EyeSize     = 20.0
	StalkHeight = 35.0
	StalkRise   = 10.0 // stalk base above the head center

	ClawDrop  = 50.0 // claw axis below the body top
	ClawReach = 25.0 // pivot distance outside the body edge
	ClawBase  = 65.0 // pincer length at scale 1

	HatGap         = 10.0
	GlassesRise    = 5.0
	NeckRise       = 20.0 // neck baseline above the body bottom
	AntennaSpacing = 25.0

	// OutlineFactor darkens the shell color for every outline.
	OutlineFactor = 0.6
)

// Box is an axis-aligned rectangle.
type Box struct {
	Min Point `json:"min"`
	Max Point `json:"max"`
}

// Width returns the horizontal extent of b.
func (b Box) Width() float64 { return b.Max.X - b.Min.X }

// Height returns the vertical extent of b.
func (b Box) Height() float64 { return b.Max.Y - b.Min.Y }

// Side indexes left/right pairs in an AnchorSet.
const (
	Left  = 0
	Right = 1
)

// AnchorSet holds the coordinates every recipe is keyed off. It is derived
// once per figure and never modified by recipes.
type AnchorSet struct {
	Center      Point    `json:"center"`
	Body        Box      `json:"body"`
	Head        Point    `json:"head"`
	StalkBase   [2]Point `json:"stalk_base"`
	EyeTip      [2]Point `json:"eye_tip"`
	ClawPivot   [2]Point `json:"claw_pivot"`
	Hat         Point    `json:"hat"`     // brim baseline above the head
	Glasses     Point    `json:"glasses"` // eyewear baseline
	Neck        Point    `json:"neck"`    // baseline for neckwear
	AntennaBase [2]Point `json:"antenna_base"`
}

// Anchors derives the anchor set for a figure centered at c.
func Anchors(c Point) AnchorSet {
	bodyTop := c.Y - BodyRise
	head := Pt(c.X, bodyTop-HeadRise)
	stalkY := head.Y - StalkRise
	tipY := stalkY - StalkHeight
	clawY := bodyTop + ClawDrop
	pivotDX := BodyWidth/2 + ClawReach
	rimY := head.Y - HeadRadius

	return AnchorSet{
		Center: c,
		Body: Box{
			Min: Pt(c.X-BodyWidth/2, bodyTop),
			Max: Pt(c.X+BodyWidth/2, bodyTop+BodyHeight),
		},
		Head:        head,
		StalkBase:   [2]Point{Pt(c.X-EyeSpacing, stalkY), Pt(c.X+EyeSpacing, stalkY)},
		EyeTip:      [2]Point{Pt(c.X-EyeSpacing, tipY), Pt(c.X+EyeSpacing, tipY)},
		ClawPivot:   [2]Point{Pt(c.X-pivotDX, clawY), Pt(c.X+pivotDX, clawY)},
		Hat:         Pt(c.X, rimY-HatGap),
		Glasses:     Pt(c.X, stalkY-GlassesRise),
		Neck:        Pt(c.X, bodyTop+BodyHeight-NeckRise),
		AntennaBase: [2]Point{Pt(c.X-AntennaSpacing, rimY), Pt(c.X+AntennaSpacing, rimY)},
	}
}

// sideSign returns -1 for Left and +1 for Right.
func sideSign(side int) float64 {
	if side == Left {
		return -1
	}
	return 1
}

// Outline returns the darkened outline color for a shell color.
func Outline(shell lobster.Color) lobster.Color {
	return shell.Scale(OutlineFactor)
}
