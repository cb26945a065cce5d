package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// Labeler draws centered text captions in a white box.
type Labeler struct {
	face    font.Face
	padding int
}

// NewLabeler loads Go Regular at the given point size.
func NewLabeler(points float64) (*Labeler, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing label font: %w", err)
	}
	face := truetype.NewFace(f, &truetype.Options{
		Size:    points,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	return &Labeler{face: face, padding: 10}, nil
}

// Measure returns the pixel size of the box Label would draw for s.
func (l *Labeler) Measure(s string) image.Point {
	m := l.face.Metrics()
	w := font.MeasureString(l.face, s).Ceil()
	h := (m.Ascent + m.Descent).Ceil()
	return image.Pt(w+2*l.padding, h+2*l.padding)
}

// Label draws s horizontally centered on centerX with the box top at top.
// It returns the box that was painted.
func (l *Labeler) Label(dst draw.Image, s string, centerX, top int) image.Rectangle {
	size := l.Measure(s)
	box := image.Rect(centerX-size.X/2, top, centerX-size.X/2+size.X, top+size.Y)

	draw.Draw(dst, box, image.NewUniform(color.White), image.Point{}, draw.Src)
	outline := image.NewUniform(color.Black)
	for x := box.Min.X; x < box.Max.X; x++ {
		dst.Set(x, box.Min.Y, outline.C)
		dst.Set(x, box.Max.Y-1, outline.C)
	}
	for y := box.Min.Y; y < box.Max.Y; y++ {
		dst.Set(box.Min.X, y, outline.C)
		dst.Set(box.Max.X-1, y, outline.C)
	}

	d := &font.Drawer{
		Dst:  dst,
		Src:  outline,
		Face: l.face,
		Dot:  fixed.P(box.Min.X+l.padding, box.Min.Y+l.padding+l.face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
	return box
}

// Close releases the font face.
func (l *Labeler) Close() error {
	return l.face.Close()
}
