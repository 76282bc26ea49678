//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"rule-ca/internal/core"
)

// GridPainter holds the visible part of a finished grid as an ebiten image.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter crops cells to maxDrawWidth and uploads them once.
func NewGridPainter(cells []uint8, size core.Size, maxDrawWidth int, on, off color.Color) *GridPainter {
	visible, w := Crop(cells, size, maxDrawWidth)
	gp := &GridPainter{w: w, h: size.H, buf: make([]byte, 4*w*size.H)}
	fillBinaryRGBA(gp.buf, visible, on, off)
	if w > 0 && size.H > 0 {
		gp.img = ebiten.NewImage(w, size.H)
		gp.img.WritePixels(gp.buf)
	}
	return gp
}

// Blit draws the grid so that every cell covers a scale x scale square.
func (gp *GridPainter) Blit(dst *ebiten.Image, scale int) {
	if gp.img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image in cells.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
