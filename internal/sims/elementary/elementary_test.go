package elementary

import (
	"errors"
	"slices"
	"testing"

	"rule-ca/internal/telemetry"
)

func newEngine(t *testing.T, cfg Config) *Engine {
	t.Helper()
	e, err := New(cfg, nil)
	if err != nil {
		t.Fatalf("New(%+v): %v", cfg, err)
	}
	return e
}

func rowsOf(e *Engine) [][]bool {
	g := e.Grid()
	rows := make([][]bool, g.Height())
	for r := range rows {
		rows[r] = append([]bool(nil), g.Row(r)...)
	}
	return rows
}

func TestInitializeSeedsMidpoint(t *testing.T) {
	tests := []struct {
		generations, width, seed int
	}{
		{2, 3, 1},
		{4, 5, 2},
		{1, 4, 1},
		{3, 1, 0},
	}
	for _, tt := range tests {
		g, err := Initialize(tt.generations, tt.width)
		if err != nil {
			t.Fatalf("Initialize(%d,%d): %v", tt.generations, tt.width, err)
		}
		if g.Height() != tt.generations || g.Width() != tt.width {
			t.Fatalf("Initialize(%d,%d) = %dx%d", tt.generations, tt.width, g.Height(), g.Width())
		}
		active := 0
		for r := 0; r < g.Height(); r++ {
			for c := 0; c < g.Width(); c++ {
				if g.Get(r, c) {
					active++
				}
			}
		}
		if active != 1 || !g.Get(0, tt.seed) {
			t.Fatalf("Initialize(%d,%d): want single seed at column %d, got %d active", tt.generations, tt.width, tt.seed, active)
		}
	}
}

func TestInitializeRejectsZeroDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 3}, {3, 0}, {-1, 3}} {
		if _, err := Initialize(dims[0], dims[1]); !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("Initialize(%d,%d) error = %v, want ErrInvalidDimensions", dims[0], dims[1], err)
		}
	}
	if _, err := New(Config{Generations: 0, InitialWidth: 3, Rule: 30}, nil); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("New with zero generations error = %v", err)
	}
	if _, err := New(Config{Generations: 3, InitialWidth: 3, Rule: 300}, nil); !errors.Is(err, ErrRuleOutOfRange) {
		t.Errorf("New with rule 300 error = %v", err)
	}
}

func TestReadCellNeverFails(t *testing.T) {
	e := newEngine(t, Config{Generations: 2, InitialWidth: 3, Rule: 30, MaxWidth: 0})
	for _, rc := range [][2]int{{-1, -1}, {-1, 1}, {0, -1}, {0, 3}, {2, 0}, {1 << 20, 1 << 20}} {
		if e.ReadCell(rc[0], rc[1]) {
			t.Errorf("ReadCell(%d,%d) = true, want inactive", rc[0], rc[1])
		}
	}
	if !e.ReadCell(0, 1) {
		t.Error("ReadCell(0,1) should see the seed")
	}
}

func TestAncestorTripleLeftEdge(t *testing.T) {
	e := newEngine(t, Config{Generations: 2, InitialWidth: 1, Rule: 30, MaxWidth: 0})

	l, c, r := e.AncestorTriple(1, 0)
	if l || !c || r {
		t.Fatalf("AncestorTriple(1,0) = (%v,%v,%v), want (false,true,false)", l, c, r)
	}
	l, c, r = e.AncestorTriple(1, 1)
	if !l || c || r {
		t.Fatalf("AncestorTriple(1,1) = (%v,%v,%v), want (true,false,false)", l, c, r)
	}
	l, c, r = e.AncestorTriple(0, 0)
	if l || c || r {
		t.Fatalf("AncestorTriple(0,0) = (%v,%v,%v), want all inactive above row 0", l, c, r)
	}
}

func TestRule255WithoutGrowth(t *testing.T) {
	e := newEngine(t, Config{Generations: 2, InitialWidth: 3, Rule: 255, MaxWidth: 3})
	e.Run(e.Table(), 3)

	if got := e.Grid().Row(1); !slices.Equal(got, []bool{true, true, true}) {
		t.Fatalf("row 1 = %v, want [true true true]", got)
	}
	if e.Size().W != 3 {
		t.Fatalf("width = %d, growth should be disabled", e.Size().W)
	}
	if want := []uint8{0, 1, 0, 1, 1, 1}; !slices.Equal(e.Cells(), want) {
		t.Fatalf("Cells() = %v, want %v", e.Cells(), want)
	}
}

func TestRule102SingleStep(t *testing.T) {
	e := newEngine(t, Config{Generations: 2, InitialWidth: 3, Rule: 102, MaxWidth: 0})
	table := e.Table()

	e.ComputeCell(1, 1, table)
	if !e.ReadCell(1, 1) {
		t.Fatal("rule 102 should activate column 1 below a lone seed")
	}

	e.ComputeRow(1, table)
	if got := e.Grid().Row(1); !slices.Equal(got, []bool{true, true, false}) {
		t.Fatalf("row 1 = %v, want [true true false]", got)
	}
}

func TestRule30GrowsSymmetrically(t *testing.T) {
	e := newEngine(t, Config{Generations: 3, InitialWidth: 3, Rule: 30, MaxWidth: 100})
	for e.Step() {
	}

	want := [][]bool{
		{false, false, false, true, false, false, false},
		{false, false, true, true, true, false, false},
		{false, true, true, false, false, true, false},
	}
	got := rowsOf(e)
	for r := range want {
		if !slices.Equal(got[r], want[r]) {
			t.Fatalf("row %d = %v, want %v", r, got[r], want[r])
		}
	}

	wantStats := []telemetry.GenerationStats{
		{Generation: 1, Width: 5, Active: 3, LeftExpansions: 1, RightExpansions: 1, Passes: 2},
		{Generation: 2, Width: 7, Active: 3, LeftExpansions: 1, RightExpansions: 1, Passes: 2},
	}
	if !slices.Equal(e.History().Records(), wantStats) {
		t.Fatalf("history = %+v, want %+v", e.History().Records(), wantStats)
	}
	if e.Generation() != 2 || !e.Done() {
		t.Fatalf("generation = %d, done = %v", e.Generation(), e.Done())
	}
}

func TestGrowthChecksCapOncePerPass(t *testing.T) {
	tests := []struct {
		name string
		rule int
		want []bool
	}{
		{"rule 30", 30, []bool{false, true, true, true, false}},
		{"rule 255", 255, []bool{true, true, true, true, true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEngine(t, Config{Generations: 3, InitialWidth: 3, Rule: tt.rule, MaxWidth: 4})

			g := e.GrowAndRecompute(1, e.Table(), 4)
			if g != (Growth{Left: 1, Right: 1, Passes: 2}) {
				t.Fatalf("growth = %+v, want both edges expanded in the pass that crossed the cap", g)
			}
			if e.Size().W != 5 {
				t.Fatalf("width = %d, want 5", e.Size().W)
			}
			if got := e.Grid().Row(1); !slices.Equal(got, tt.want) {
				t.Fatalf("row 1 = %v, want recomputed %v", got, tt.want)
			}
		})
	}
}

func TestCapBelowInitialWidthComputesOnce(t *testing.T) {
	e := newEngine(t, Config{Generations: 2, InitialWidth: 3, Rule: 30, MaxWidth: 1})
	g := e.GrowAndRecompute(1, e.Table(), 1)
	if g.Passes != 1 || g.Left != 0 || g.Right != 0 {
		t.Fatalf("growth = %+v, want a single pass without expansion", g)
	}
	if e.Size().W != 3 {
		t.Fatalf("width = %d, want 3", e.Size().W)
	}
}

func TestGrowthIdempotentOnStableRow(t *testing.T) {
	e := newEngine(t, Config{Generations: 3, InitialWidth: 3, Rule: 30, MaxWidth: 100})
	e.Run(e.Table(), 100)

	before := rowsOf(e)
	g := e.GrowAndRecompute(2, e.Table(), 100)
	if g.Left != 0 || g.Right != 0 || g.Passes != 1 {
		t.Fatalf("regrowing a stable row gave %+v", g)
	}
	after := rowsOf(e)
	for r := range before {
		if !slices.Equal(before[r], after[r]) {
			t.Fatalf("row %d changed from %v to %v", r, before[r], after[r])
		}
	}
}

func TestWidthGrowsMonotonically(t *testing.T) {
	for _, rule := range []int{30, 90, 110, 150, 255} {
		e := newEngine(t, Config{Generations: 40, InitialWidth: 5, Rule: rule, MaxWidth: 61})
		last := e.Size().W
		for e.Step() {
			w := e.Size().W
			if w < last {
				t.Fatalf("rule %d: width shrank from %d to %d", rule, last, w)
			}
			if w > 62 {
				t.Fatalf("rule %d: width %d overshoots the cap by more than one column", rule, w)
			}
			last = w
		}
	}
}

func TestResetRestoresSeed(t *testing.T) {
	e := newEngine(t, Config{Generations: 3, InitialWidth: 3, Rule: 30, MaxWidth: 100})
	e.Run(e.Table(), 100)
	first := rowsOf(e)

	e.Reset()
	if e.Size().W != 3 || e.Generation() != 0 || len(e.History().Records()) != 0 {
		t.Fatalf("Reset left width %d, generation %d, %d records", e.Size().W, e.Generation(), len(e.History().Records()))
	}
	if !e.ReadCell(0, 1) || e.ReadCell(1, 1) {
		t.Fatal("Reset must leave only the seed active")
	}

	for e.Step() {
	}
	second := rowsOf(e)
	for r := range first {
		if !slices.Equal(first[r], second[r]) {
			t.Fatalf("row %d differs after Reset: %v vs %v", r, first[r], second[r])
		}
	}
}

func TestStepOnSingleGeneration(t *testing.T) {
	e := newEngine(t, Config{Generations: 1, InitialWidth: 3, Rule: 30, MaxWidth: 10})
	if e.Step() {
		t.Fatal("a single-row grid has nothing to compute")
	}
}

func TestParameters(t *testing.T) {
	e := newEngine(t, DefaultConfig())
	values := map[string]string{}
	for _, g := range e.Parameters().Groups {
		for _, p := range g.Params {
			values[p.Key] = p.Value
		}
	}
	if values["rule"] != "30" || values["rule_bits"] != "00011110" {
		t.Errorf("rule params = %q/%q", values["rule"], values["rule_bits"])
	}
	if values["generations"] != "51" || values["width"] != "3" {
		t.Errorf("grid params = %v", values)
	}
}
