package render

import (
	"bufio"
	"context"
	"io"
	"os"

	"rule-ca/internal/core"
)

// WriteGlyphs prints one line per row with one glyph per visible cell.
func WriteGlyphs(w io.Writer, cells []uint8, size core.Size, maxDrawWidth int, on, off string) error {
	visible, vw := Crop(cells, size, maxDrawWidth)
	bw := bufio.NewWriter(w)
	for y := 0; y < size.H; y++ {
		for _, c := range visible[y*vw : (y+1)*vw] {
			if c != 0 {
				bw.WriteString(on)
			} else {
				bw.WriteString(off)
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// TextPresenter prints the finished grid as glyph lines.
type TextPresenter struct {
	opts core.PresentOptions
}

// NewTextPresenter builds a text presenter. Output defaults to stdout.
func NewTextPresenter(opts core.PresentOptions) (core.Presenter, error) {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	return &TextPresenter{opts: opts}, nil
}

// Present writes the grid once; it never waits for input.
func (p *TextPresenter) Present(ctx context.Context, sim core.Sim) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return WriteGlyphs(p.opts.Out, sim.Cells(), sim.Size(), p.opts.MaxDrawWidth, p.opts.GlyphOn, p.opts.GlyphOff)
}

func init() {
	core.Register("text", NewTextPresenter)
}
