// Package telemetry records how the history grid grows while it is computed.
package telemetry

import "log/slog"

// GenerationStats describes one computed row.
type GenerationStats struct {
	Generation      int `csv:"generation"`
	Width           int `csv:"width"`
	Active          int `csv:"active"`
	LeftExpansions  int `csv:"left_expansions"`
	RightExpansions int `csv:"right_expansions"`
	Passes          int `csv:"passes"`
}

// History accumulates per-generation stats in computation order.
type History struct {
	records []GenerationStats
}

// Add appends a record.
func (h *History) Add(s GenerationStats) {
	if h == nil {
		return
	}
	h.records = append(h.records, s)
}

// Reset drops all records.
func (h *History) Reset() {
	if h == nil {
		return
	}
	h.records = h.records[:0]
}

// Records returns the recorded stats. Callers must not modify the slice.
func (h *History) Records() []GenerationStats {
	if h == nil {
		return nil
	}
	return h.records
}

// Summary aggregates the recorded history.
type Summary struct {
	Generations     int
	FinalWidth      int
	PeakActive      int
	LeftExpansions  int
	RightExpansions int
}

// Summarize folds the history into totals.
func (h *History) Summarize() Summary {
	var s Summary
	for _, r := range h.Records() {
		s.Generations++
		s.FinalWidth = r.Width
		if r.Active > s.PeakActive {
			s.PeakActive = r.Active
		}
		s.LeftExpansions += r.LeftExpansions
		s.RightExpansions += r.RightExpansions
	}
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("generations", s.Generations),
		slog.Int("final_width", s.FinalWidth),
		slog.Int("peak_active", s.PeakActive),
		slog.Int("left_expansions", s.LeftExpansions),
		slog.Int("right_expansions", s.RightExpansions),
	)
}
