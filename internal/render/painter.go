//go:build ebiten

package render

import (
	"image/color"

	"lifegrid/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image from board cell data and
// scales it onto the screen.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the provided cells and hints into the painter image and
// draws it at the given pixel offset and scale.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, hints []core.Hint, on, off color.Color, offsetX, offsetY, scale int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillCellRGBA(gp.buf, cells, hints, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(float64(offsetX), float64(offsetY))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
