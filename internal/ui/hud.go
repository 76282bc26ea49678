//go:build ebiten

package ui

import (
	"image/color"

	"rule-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding    = 8
	panelLineHeight = 16
	panelWidth      = 220
)

// HUD renders the parameter panel over the top-left corner of the grid.
// Tab toggles it.
type HUD struct {
	sim     core.Sim
	visible bool
	lines   []string
	panel   *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation.
func NewHUD(sim core.Sim) *HUD {
	h := &HUD{sim: sim}
	h.refresh()
	return h
}

func (h *HUD) refresh() {
	var snap core.ParameterSnapshot
	if provider, ok := h.sim.(core.ParameterProvider); ok {
		snap = provider.Parameters()
	}
	h.lines = Lines(buildTitle(h.sim), snap)
	h.panel = nil
}

// Update handles the toggle key.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		h.visible = !h.visible
	}
}

// Draw paints the panel when it is visible.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || !h.visible {
		return
	}
	if h.panel == nil {
		h.panel = ebiten.NewImage(panelWidth, panelPadding*2+len(h.lines)*panelLineHeight)
		h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 220})
		face := basicfont.Face7x13
		for i, line := range h.lines {
			clr := color.RGBA{R: 220, G: 220, B: 230, A: 255}
			if i == 0 {
				clr = color.RGBA{R: 200, G: 200, B: 210, A: 255}
			}
			text.Draw(h.panel, line, face, panelPadding, panelPadding+(i+1)*panelLineHeight-4, clr)
		}
	}
	screen.DrawImage(h.panel, &ebiten.DrawImageOptions{})
}
