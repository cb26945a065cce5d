package canvas

import (
	"fmt"
	"image"
	"image/draw"
	"io"

	"github.com/gogpu/gg"

	"github.com/f3rmion/lobstr/internal/lobster"
	"github.com/f3rmion/lobstr/internal/render"
)

// Raster is a Surface backed by an anti-aliased gg context. A Raster is not
// safe for concurrent use; each worker owns its own.
type Raster struct {
	dc *gg.Context
}

// NewRaster allocates a transparent width x height raster.
func NewRaster(width, height int) *Raster {
	dc := gg.NewContext(width, height)
	dc.SetLineJoin(gg.LineJoinRound)
	dc.SetLineCap(gg.LineCapRound)
	return &Raster{dc: dc}
}

// Width returns the raster width in pixels.
func (r *Raster) Width() int { return r.dc.Width() }

// Height returns the raster height in pixels.
func (r *Raster) Height() int { return r.dc.Height() }

func (r *Raster) paint(fill, outline *lobster.Color, width float64) error {
	if fill != nil {
		r.dc.SetColor(*fill)
		if err := r.dc.FillPreserve(); err != nil {
			r.dc.ClearPath()
			return fmt.Errorf("filling path: %w", err)
		}
	}
	if outline != nil && width > 0 {
		r.dc.SetColor(*outline)
		r.dc.SetLineWidth(width)
		if err := r.dc.StrokePreserve(); err != nil {
			r.dc.ClearPath()
			return fmt.Errorf("stroking path: %w", err)
		}
	}
	r.dc.ClearPath()
	return nil
}

// Polygon fills then outlines a closed polygon.
func (r *Raster) Polygon(pts []render.Point, fill, outline *lobster.Color, width float64) error {
	r.dc.ClearPath()
	r.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		r.dc.LineTo(p.X, p.Y)
	}
	r.dc.ClosePath()
	return r.paint(fill, outline, width)
}

// Ellipse fills then outlines the ellipse inscribed in box.
func (r *Raster) Ellipse(box render.Box, fill, outline *lobster.Color, width float64) error {
	r.dc.ClearPath()
	r.dc.DrawEllipse((box.Min.X+box.Max.X)/2, (box.Min.Y+box.Max.Y)/2, box.Width()/2, box.Height()/2)
	return r.paint(fill, outline, width)
}

// Polyline strokes an open path.
func (r *Raster) Polyline(pts []render.Point, c lobster.Color, width float64) error {
	r.dc.ClearPath()
	r.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		r.dc.LineTo(p.X, p.Y)
	}
	r.dc.SetColor(c)
	r.dc.SetLineWidth(width)
	if err := r.dc.Stroke(); err != nil {
		return fmt.Errorf("stroking polyline: %w", err)
	}
	return nil
}

// Image returns the current pixels as an RGBA image owned by the caller.
func (r *Raster) Image() *image.RGBA {
	src := r.dc.Image()
	if rgba, ok := src.(*image.RGBA); ok {
		return rgba
	}
	dst := image.NewRGBA(src.Bounds())
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
	return dst
}

// SavePNG writes the raster to path.
func (r *Raster) SavePNG(path string) error {
	if err := r.dc.SavePNG(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

// EncodePNG writes the raster as PNG to w.
func (r *Raster) EncodePNG(w io.Writer) error {
	return r.dc.EncodePNG(w)
}

// Close releases the underlying context.
func (r *Raster) Close() error {
	return r.dc.Close()
}

// Paint rasterizes cmds onto a fresh width x height canvas.
func Paint(width, height int, cmds []render.Command) (*Raster, error) {
	r := NewRaster(width, height)
	if err := Draw(r, cmds); err != nil {
		_ = r.Close()
		return nil, err
	}
	return r, nil
}
