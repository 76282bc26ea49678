// Package ui draws the on-screen parameter panel for the window presenter.
package ui

import (
	"fmt"
	"strings"

	"rule-ca/internal/core"
)

// Lines formats a parameter snapshot as panel text, one group header followed
// by its "Label: value" rows.
func Lines(title string, snap core.ParameterSnapshot) []string {
	lines := []string{title}
	for _, g := range snap.Groups {
		lines = append(lines, "", strings.ToUpper(g.Name))
		for _, p := range g.Params {
			lines = append(lines, fmt.Sprintf("%s: %s", p.Label, p.Value))
		}
	}
	return lines
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Parameters"
	}
	return sim.Name() + " parameters"
}
