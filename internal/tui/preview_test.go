package tui

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red  = color.RGBA{255, 0, 0, 255}
	blue = color.RGBA{0, 0, 255, 255}
)

// split returns a size x size image, red on top and blue below.
func split(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, image.Rect(0, 0, size, size/2), &image.Uniform{red}, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(0, size/2, size, size), &image.Uniform{blue}, image.Point{}, draw.Src)
	return img
}

func writePNG(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func assertColor(t *testing.T, want, got color.RGBA) {
	t.Helper()
	assert.InDelta(t, want.R, got.R, 1)
	assert.InDelta(t, want.G, got.G, 1)
	assert.InDelta(t, want.B, got.B, 1)
}

func TestCellsPairPixelRows(t *testing.T) {
	cells := Cells(split(40), 4, 2)
	require.Len(t, cells, 2)
	for _, row := range cells {
		require.Len(t, row, 4)
	}

	assertColor(t, red, cells[0][0].Top)
	assertColor(t, red, cells[0][3].Top)
	assertColor(t, blue, cells[1][0].Bottom)
	assertColor(t, blue, cells[1][3].Bottom)
}

func TestCellsRejectsEmptyTarget(t *testing.T) {
	assert.Nil(t, Cells(split(10), 0, 4))
	assert.Nil(t, Cells(split(10), 4, 0))
	assert.Nil(t, Cells(nil, 4, 4))
}

func TestPreviewShape(t *testing.T) {
	out := Preview(split(40), 6, 3)
	assert.Len(t, strings.Split(out, "\n"), 3)
	assert.Equal(t, 18, strings.Count(out, "▀"))
}

func TestLoadPreview(t *testing.T) {
	dir := t.TempDir()
	path := writePNG(t, dir, "1.png", split(20))

	out, err := LoadPreview(path, 5, 2)
	require.NoError(t, err)
	assert.Equal(t, 10, strings.Count(out, "▀"))

	_, err = LoadPreview(filepath.Join(dir, "missing.png"), 5, 2)
	assert.ErrorContains(t, err, "missing.png")
}

func TestHex(t *testing.T) {
	assert.EqualValues(t, "#ff0080", hex(color.RGBA{255, 0, 128, 255}))
}
