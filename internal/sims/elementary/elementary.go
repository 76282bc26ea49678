package elementary

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"rule-ca/internal/core"
	"rule-ca/internal/telemetry"
)

// ErrInvalidDimensions reports a zero or negative generation count or width.
var ErrInvalidDimensions = errors.New("invalid grid dimensions")

// Config holds parameters for the elementary cellular automaton.
type Config struct {
	Generations  int
	InitialWidth int
	Rule         int
	// MaxWidth caps lateral growth. Values at or below InitialWidth disable it.
	MaxWidth int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Generations: 51, InitialWidth: 3, Rule: 30, MaxWidth: 101}
}

// Initialize allocates a history grid of generations rows and initialWidth
// columns with a single active seed in the middle of row 0.
func Initialize(generations, initialWidth int) (*core.Grid, error) {
	if generations <= 0 || initialWidth <= 0 {
		return nil, fmt.Errorf("%w: %d generations x %d columns", ErrInvalidDimensions, generations, initialWidth)
	}
	g := core.NewGrid(initialWidth, generations)
	g.Set(0, (initialWidth-1)/2, true)
	return g, nil
}

// Growth reports what happened while a row was grown and recomputed.
type Growth struct {
	Left   int
	Right  int
	Passes int
}

// Engine computes a one-dimensional Wolfram code as a history grid, one row
// per generation, widening the grid whenever activity touches an edge.
type Engine struct {
	cfg        Config
	table      Table
	grid       *core.Grid
	generation int
	cells      []uint8
	history    telemetry.History
	log        *slog.Logger
}

// New creates an engine with a freshly seeded grid. A nil logger discards
// expansion events.
func New(cfg Config, log *slog.Logger) (*Engine, error) {
	table, err := Build(cfg.Rule)
	if err != nil {
		return nil, err
	}
	grid, err := Initialize(cfg.Generations, cfg.InitialWidth)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Engine{cfg: cfg, table: table, grid: grid, log: log}, nil
}

// Name returns the simulation identifier.
func (e *Engine) Name() string { return "elementary" }

// Size returns the current grid dimensions.
func (e *Engine) Size() core.Size { return core.Size{W: e.grid.Width(), H: e.grid.Height()} }

// Cells exposes the grid as a row-major byte buffer (1 = active).
func (e *Engine) Cells() []uint8 {
	e.cells = e.grid.Bytes(e.cells)
	return e.cells
}

// Grid exposes the history grid for reading.
func (e *Engine) Grid() *core.Grid { return e.grid }

// Table returns the rule table the engine applies.
func (e *Engine) Table() Table { return e.table }

// Generation returns the index of the last fully computed row.
func (e *Engine) Generation() int { return e.generation }

// History returns the per-generation growth record.
func (e *Engine) History() *telemetry.History { return &e.history }

// Done reports whether every generation has been computed.
func (e *Engine) Done() bool { return e.generation >= e.grid.Height()-1 }

// Reset shrinks the grid back to its initial width and reseeds row 0.
func (e *Engine) Reset() {
	e.grid.Reset(e.cfg.InitialWidth)
	e.grid.Set(0, (e.grid.Width()-1)/2, true)
	e.generation = 0
	e.history.Reset()
}

// ReadCell returns the state at (row, col); out-of-range reads are inactive.
func (e *Engine) ReadCell(row, col int) bool {
	return e.grid.Get(row, col)
}

// AncestorTriple returns the cells of row-1 at col-1, col and col+1. Column 0
// has no left ancestor; it is reported inactive without forming index -1.
func (e *Engine) AncestorTriple(row, col int) (left, center, right bool) {
	if col == 0 {
		return false, e.ReadCell(row-1, col), e.ReadCell(row-1, col+1)
	}
	return e.ReadCell(row-1, col-1), e.ReadCell(row-1, col), e.ReadCell(row-1, col+1)
}

// ComputeCell writes the rule outcome for (row, col).
func (e *Engine) ComputeCell(row, col int, t Table) {
	e.grid.Set(row, col, t.Next(e.AncestorTriple(row, col)))
}

// ComputeRow computes every column of row from left to right.
func (e *Engine) ComputeRow(row int, t Table) {
	w := e.grid.Width()
	for col := 0; col < w; col++ {
		e.ComputeCell(row, col, t)
	}
}

// ExpandLeft inserts an inactive column at index 0 of every row.
func (e *Engine) ExpandLeft() { e.grid.InsertColumn() }

// ExpandRight appends an inactive column to every row.
func (e *Engine) ExpandRight() { e.grid.AppendColumn() }

// GrowAndRecompute computes row and, while the grid is narrower than
// maxWidth, widens it on each edge that ended up active and recomputes the
// whole row against the shifted ancestors. It stops once a pass triggers no
// growth or the cap is reached. The cap is checked once per pass, so a pass
// that expands both edges can leave the grid one column wider than maxWidth.
func (e *Engine) GrowAndRecompute(row int, t Table, maxWidth int) Growth {
	var g Growth
	for {
		e.ComputeRow(row, t)
		g.Passes++
		if e.grid.Width() >= maxWidth {
			return g
		}
		grew := false
		if e.ReadCell(row, 0) {
			e.ExpandLeft()
			g.Left++
			grew = true
			e.log.Debug("expanded grid", "row", row, "side", "left", "width", e.grid.Width())
		}
		if e.ReadCell(row, e.grid.Width()-1) {
			e.ExpandRight()
			g.Right++
			grew = true
			e.log.Debug("expanded grid", "row", row, "side", "right", "width", e.grid.Width())
		}
		if !grew {
			return g
		}
	}
}

// Step computes the next generation using the configured rule and growth
// cap. It reports false once all generations have been computed.
func (e *Engine) Step() bool {
	if e.Done() {
		return false
	}
	e.advance(e.table, e.cfg.MaxWidth)
	return true
}

// Run computes all remaining generations with the given table and cap.
func (e *Engine) Run(t Table, maxWidth int) {
	for !e.Done() {
		e.advance(t, maxWidth)
	}
}

func (e *Engine) advance(t Table, maxWidth int) {
	row := e.generation + 1
	g := e.GrowAndRecompute(row, t, maxWidth)
	active := 0
	for _, c := range e.grid.Row(row) {
		if c {
			active++
		}
	}
	e.history.Add(telemetry.GenerationStats{
		Generation:      row,
		Width:           e.grid.Width(),
		Active:          active,
		LeftExpansions:  g.Left,
		RightExpansions: g.Right,
		Passes:          g.Passes,
	})
	e.generation = row
}

// Parameters describes the engine settings and current grid width.
func (e *Engine) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Rule",
			Params: []core.Parameter{
				intParam("rule", "Rule", e.table.Code()),
				{Key: "rule_bits", Label: "Rule bits", Type: core.ParamTypeString, Value: e.table.String()},
			},
		},
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("generations", "Generations", e.grid.Height()),
				intParam("initial_width", "Initial width", e.cfg.InitialWidth),
				intParam("max_computing_length", "Max computing length", e.cfg.MaxWidth),
				intParam("width", "Current width", e.grid.Width()),
				intParam("generation", "Generation", e.generation),
			},
		},
	}}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}
