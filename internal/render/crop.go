package render

import "rule-ca/internal/core"

// Margin returns how many columns are trimmed from each side of a grid of
// gridWidth columns so that it fits maxDrawWidth. A grid that already fits
// still loses one column per side: the outermost columns are padding that the
// growth logic keeps inactive.
func Margin(gridWidth, maxDrawWidth int) int {
	if gridWidth > maxDrawWidth {
		return (gridWidth - maxDrawWidth) / 2
	}
	return 1
}

// Visible returns the half-open column range [lo, hi) left after trimming.
// When the grid is wider than maxDrawWidth the range is exactly maxDrawWidth
// columns; an odd surplus column is taken from the left.
func Visible(gridWidth, maxDrawWidth int) (lo, hi int) {
	m := Margin(gridWidth, maxDrawWidth)
	lo, hi = m, gridWidth-m
	if gridWidth > maxDrawWidth {
		lo += (gridWidth - maxDrawWidth) % 2
	}
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

// Crop copies the visible columns of a row-major cell buffer. It returns the
// cropped cells and their width.
func Crop(cells []uint8, size core.Size, maxDrawWidth int) ([]uint8, int) {
	lo, hi := Visible(size.W, maxDrawWidth)
	w := hi - lo
	out := make([]uint8, 0, w*size.H)
	for y := 0; y < size.H; y++ {
		row := cells[y*size.W : (y+1)*size.W]
		out = append(out, row[lo:hi]...)
	}
	return out, w
}
