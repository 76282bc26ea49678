package core

import (
	"context"
	"io"
	"sort"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the contract a history-grid automaton exposes to presenters.
type Sim interface {
	Name() string
	Size() Size
	Reset()
	// Step computes the next generation and reports whether one was computed.
	Step() bool
	Cells() []uint8
}

// PresentOptions carries the display settings shared by all presenters.
type PresentOptions struct {
	Title        string
	Width        int
	Height       int
	CellSize     int
	MaxDrawWidth int
	GlyphOn      string
	GlyphOff     string
	Out          io.Writer
}

// Presenter displays a finished simulation. Present blocks until the display
// is dismissed or ctx is cancelled.
type Presenter interface {
	Present(ctx context.Context, sim Sim) error
}

// Factory constructs a Presenter from display options.
type Factory func(opts PresentOptions) (Presenter, error)

var presenters = map[string]Factory{}

// Register adds a presenter factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	presenters[name] = f
}

// Presenters exposes the registry of available presenter factories.
func Presenters() map[string]Factory {
	return presenters
}

// PresenterNames lists registered presenters in sorted order.
func PresenterNames() []string {
	names := make([]string, 0, len(presenters))
	for name := range presenters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
