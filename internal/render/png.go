package render

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/draw"

	"rule-ca/internal/core"
)

// Scale enlarges a frame so that every cell becomes a cellSize square.
func Scale(src image.Image, cellSize int) *image.RGBA {
	if cellSize < 1 {
		cellSize = 1
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*cellSize, b.Dy()*cellSize))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

// PNGPresenter encodes the visible grid as a PNG image.
type PNGPresenter struct {
	opts core.PresentOptions
}

// NewPNGPresenter builds a PNG presenter. Output defaults to stdout.
func NewPNGPresenter(opts core.PresentOptions) (core.Presenter, error) {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	return &PNGPresenter{opts: opts}, nil
}

// Present writes one PNG with a cell-size rectangle per visible cell.
func (p *PNGPresenter) Present(ctx context.Context, sim core.Sim) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return WritePNG(p.opts.Out, Scale(Frame(sim.Cells(), sim.Size(), p.opts.MaxDrawWidth), p.opts.CellSize))
}

// WritePNG encodes img to w.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

func init() {
	core.Register("png", NewPNGPresenter)
}
