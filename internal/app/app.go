//go:build ebiten

package app

import (
	"context"
	"errors"
	"fmt"

	"rule-ca/internal/core"
	"rule-ca/internal/render"
	"rule-ca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a finished simulation to the ebiten.Game interface. The frame
// is static: nothing is recomputed after the window opens.
type Game struct {
	ctx     context.Context
	painter *render.GridPainter
	hud     *ui.HUD

	scale         int
	width, height int
}

// New constructs a Game for the provided simulation.
func New(ctx context.Context, sim core.Sim, opts core.PresentOptions) *Game {
	scale := opts.CellSize
	if scale <= 0 {
		scale = 1
	}
	return &Game{
		ctx:     ctx,
		painter: render.NewGridPainter(sim.Cells(), sim.Size(), opts.MaxDrawWidth, render.ActiveColor, render.InactiveColor),
		hud:     ui.NewHUD(sim),
		scale:   scale,
		width:   opts.Width,
		height:  opts.Height,
	}
}

// Update watches for quit requests.
func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.hud.Update()
	return nil
}

// Draw clears the screen and paints one rectangle per visible cell.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(render.InactiveColor)
	g.painter.Blit(screen, g.scale)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Window presents a simulation in a fixed-size desktop window.
type Window struct {
	opts core.PresentOptions
}

// NewWindow builds the window presenter.
func NewWindow(opts core.PresentOptions) (core.Presenter, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("window size %dx%d is not drawable", opts.Width, opts.Height)
	}
	return &Window{opts: opts}, nil
}

// Present opens the window and blocks until it is closed, Esc or Q is
// pressed, or ctx is cancelled.
func (w *Window) Present(ctx context.Context, sim core.Sim) error {
	game := New(ctx, sim, w.opts)

	ebiten.SetWindowTitle(w.opts.Title)
	ebiten.SetWindowSize(w.opts.Width, w.opts.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("running window: %w", err)
	}
	return ctx.Err()
}

func init() {
	core.Register("window", NewWindow)
}
