package render

import (
	"image"
	"image/color"

	"rule-ca/internal/core"
)

var (
	// ActiveColor fills active cells.
	ActiveColor color.Color = color.RGBA{R: 24, G: 24, B: 28, A: 255}
	// InactiveColor fills inactive cells.
	InactiveColor color.Color = color.RGBA{R: 236, G: 236, B: 232, A: 255}
)

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// Frame renders the visible part of a grid at one pixel per cell.
func Frame(cells []uint8, size core.Size, maxDrawWidth int) *image.RGBA {
	visible, w := Crop(cells, size, maxDrawWidth)
	img := image.NewRGBA(image.Rect(0, 0, w, size.H))
	fillBinaryRGBA(img.Pix, visible, ActiveColor, InactiveColor)
	return img
}
