// Package showcase lays out one lobster per option of a category in a
// labeled grid.
package showcase

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/f3rmion/lobstr/internal/canvas"
	"github.com/f3rmion/lobstr/internal/catalog"
	"github.com/f3rmion/lobstr/internal/lobster"
	"github.com/f3rmion/lobstr/internal/render"
)

// BaseTraits is the lobster every cell starts from.
var BaseTraits = lobster.Traits{
	lobster.CategoryBackground: "Ocean Blue",
	lobster.CategoryShell:      "Classic Red",
	lobster.CategoryClaw:       "Medium",
	lobster.CategoryEyes:       "Normal",
	lobster.CategoryTail:       "Plain",
	lobster.CategoryAccessory:  "None",
}

var paper = lobster.RGB(240, 240, 240)

// Options configures a grid.
type Options struct {
	Category string
	Columns  int
	Cell     int
	// Base fills every category other than Category. Defaults to BaseTraits.
	Base lobster.Traits
	// FontSize of the cell labels in points.
	FontSize float64
}

func (o *Options) setDefaults() {
	if o.Category == "" {
		o.Category = lobster.CategoryAccessory
	}
	if o.Columns <= 0 {
		o.Columns = 5
	}
	if o.Cell <= 0 {
		o.Cell = 700
	}
	if o.Base == nil {
		o.Base = BaseTraits
	}
	if o.FontSize <= 0 {
		o.FontSize = 22
	}
}

// Cell is one rendered grid cell.
type Cell struct {
	Option string
	Bounds image.Rectangle
	Label  image.Rectangle
}

// Grid is a rendered showcase.
type Grid struct {
	Image *image.RGBA
	Cells []Cell
}

// Commands returns the draw commands of the whole grid without labels.
func Commands(cat *catalog.Catalog, opts Options) ([]render.Command, []Cell, int, int, error) {
	opts.setDefaults()
	names := cat.Names(opts.Category)
	if names == nil {
		return nil, nil, 0, 0, &lobster.ConfigError{Category: opts.Category, Reason: "unknown category"}
	}
	rows := (len(names) + opts.Columns - 1) / opts.Columns
	w, h := opts.Cell*opts.Columns, opts.Cell*rows

	cmds := []render.Command{render.Background(w, h, paper)}
	cells := make([]Cell, 0, len(names))
	for i, name := range names {
		x0 := float64((i % opts.Columns) * opts.Cell)
		y0 := float64((i / opts.Columns) * opts.Cell)
		size := float64(opts.Cell)

		t := opts.Base.Clone()
		t[opts.Category] = name
		bg, err := cat.Payload(t, lobster.CategoryBackground)
		if err != nil {
			return nil, nil, 0, 0, err
		}
		fig, err := render.Compose(cat, render.Pt(x0+size/2, y0+size/2-50), t, nil)
		if err != nil {
			return nil, nil, 0, 0, fmt.Errorf("rendering %s: %w", name, err)
		}

		bgc := bg.Color
		cmds = append(cmds, render.Rect(x0+2, y0+2, x0+size-2, y0+size-2, &bgc, nil, 0))
		cmds = append(cmds, fig...)
		cells = append(cells, Cell{
			Option: name,
			Bounds: image.Rect(int(x0), int(y0), int(x0+size), int(y0+size)),
		})
	}
	return cmds, cells, w, h, nil
}

// Render draws the grid and labels each cell with its option name.
func Render(cat *catalog.Catalog, opts Options) (*Grid, error) {
	opts.setDefaults()
	cmds, cells, w, h, err := Commands(cat, opts)
	if err != nil {
		return nil, err
	}

	r, err := canvas.Paint(w, h, cmds)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	img := r.Image()

	labels, err := canvas.NewLabeler(opts.FontSize)
	if err != nil {
		return nil, err
	}
	defer labels.Close()

	for i := range cells {
		c := &cells[i]
		size := labels.Measure(c.Option)
		top := c.Bounds.Max.Y - size.Y - 15
		c.Label = labels.Label(img, c.Option, (c.Bounds.Min.X+c.Bounds.Max.X)/2, top)
	}
	return &Grid{Image: img, Cells: cells}, nil
}

// Save writes the grid image to path as PNG.
func (g *Grid) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := png.Encode(f, g.Image); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}
