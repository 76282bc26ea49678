//go:build !ebiten

package app

import (
	"errors"

	"rule-ca/internal/core"
)

// ErrNoWindow is returned when the binary was built without window support.
var ErrNoWindow = errors.New("the window presenter requires building with the 'ebiten' tag")

// NewWindow reports that the headless build cannot open windows.
func NewWindow(core.PresentOptions) (core.Presenter, error) {
	return nil, ErrNoWindow
}

func init() {
	core.Register("window", NewWindow)
}
