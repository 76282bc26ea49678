// Package term shows a finished grid in the terminal until the user quits.
package term

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"rule-ca/internal/core"
	"rule-ca/internal/render"
)

// Viewer draws glyph rows on a tcell screen and waits for Esc, q or Ctrl-C.
type Viewer struct {
	opts      core.PresentOptions
	newScreen func() (tcell.Screen, error)
}

// NewViewer builds a viewer on the process terminal.
func NewViewer(opts core.PresentOptions) (core.Presenter, error) {
	return &Viewer{opts: opts, newScreen: openScreen}, nil
}

func openScreen() (tcell.Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("opening terminal: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("initialising terminal: %w", err)
	}
	return s, nil
}

// Present draws the grid and blocks until a quit key or ctx is cancelled.
func (v *Viewer) Present(ctx context.Context, sim core.Sim) error {
	screen, err := v.newScreen()
	if err != nil {
		return err
	}
	defer screen.Fini()

	visible, w := render.Crop(sim.Cells(), sim.Size(), v.opts.MaxDrawWidth)
	rows := sim.Size().H

	stop := context.AfterFunc(ctx, func() {
		screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	v.draw(screen, visible, w, rows)
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			v.draw(screen, visible, w, rows)
			screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				return nil
			}
		case *tcell.EventInterrupt:
			return ctx.Err()
		}
	}
}

func (v *Viewer) draw(screen tcell.Screen, cells []uint8, w, rows int) {
	screen.Clear()
	on := []rune(v.opts.GlyphOn)
	off := []rune(v.opts.GlyphOff)
	maxX, maxY := screen.Size()
	for y := 0; y < rows && y < maxY; y++ {
		x := 0
		for _, c := range cells[y*w : (y+1)*w] {
			glyph := off
			if c != 0 {
				glyph = on
			}
			for _, r := range glyph {
				if x >= maxX {
					break
				}
				screen.SetContent(x, y, r, nil, tcell.StyleDefault)
				x += max(runewidth.RuneWidth(r), 1)
			}
		}
	}
	screen.Show()
}

func init() {
	core.Register("term", NewViewer)
}
