package tui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
	"github.com/charmbracelet/lipgloss"
)

// Cell is one terminal cell of a preview: two stacked pixels drawn with
// an upper half block.
type Cell struct {
	Top    color.RGBA
	Bottom color.RGBA
}

// Cells scales img down to cols x rows*2 pixels and pairs them into cells.
func Cells(img image.Image, cols, rows int) [][]Cell {
	if img == nil || cols <= 0 || rows <= 0 {
		return nil
	}
	small := transform.Resize(img, cols, rows*2, transform.Linear)

	out := make([][]Cell, rows)
	for row := range out {
		out[row] = make([]Cell, cols)
		for col := range out[row] {
			out[row][col] = Cell{
				Top:    small.RGBAAt(col, row*2),
				Bottom: small.RGBAAt(col, row*2+1),
			}
		}
	}
	return out
}

// Preview renders img as colored half-block art.
func Preview(img image.Image, cols, rows int) string {
	cells := Cells(img, cols, rows)
	lines := make([]string, len(cells))
	for i, row := range cells {
		var b strings.Builder
		for _, c := range row {
			b.WriteString(lipgloss.NewStyle().
				Foreground(hex(c.Top)).
				Background(hex(c.Bottom)).
				Render("▀"))
		}
		lines[i] = b.String()
	}
	return strings.Join(lines, "\n")
}

// LoadPreview decodes the image at path and renders it with Preview.
func LoadPreview(path string, cols, rows int) (string, error) {
	img, err := imgio.Open(path)
	if err != nil {
		return "", fmt.Errorf("loading %s: %w", path, err)
	}
	return Preview(img, cols, rows), nil
}

func hex(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}
