package core

import (
	"slices"
	"testing"
)

func TestGridOutOfBoundsReadsInactive(t *testing.T) {
	g := NewGrid(3, 2)
	g.Set(0, 1, true)

	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 3}, {-5, -5}, {100, 100}} {
		if g.Get(rc[0], rc[1]) {
			t.Fatalf("Get(%d,%d) = true, want inactive outside bounds", rc[0], rc[1])
		}
	}
	if !g.Get(0, 1) {
		t.Fatal("Get(0,1) = false, want the cell just set")
	}

	g.Set(5, 5, true)
	g.Set(-1, 0, true)
	if g.Width() != 3 || g.Height() != 2 {
		t.Fatalf("out-of-bounds Set resized grid to %dx%d", g.Width(), g.Height())
	}
}

func TestGridColumnsStayRectangular(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(0, 0, true)
	g.Set(1, 2, true)

	g.InsertColumn()
	g.AppendColumn()
	g.AppendColumn()

	if g.Width() != 6 {
		t.Fatalf("width = %d, want 6", g.Width())
	}
	for r := 0; r < g.Height(); r++ {
		if len(g.Row(r)) != g.Width() {
			t.Fatalf("row %d has %d columns, want %d", r, len(g.Row(r)), g.Width())
		}
	}
	if !g.Get(0, 1) || g.Get(0, 0) {
		t.Fatal("InsertColumn must shift existing cells right by one")
	}
	if !g.Get(1, 3) {
		t.Fatal("cell (1,2) should now be at (1,3)")
	}
	if g.Get(1, 4) || g.Get(1, 5) {
		t.Fatal("appended columns must be inactive")
	}
}

func TestGridBytesAndReset(t *testing.T) {
	g := NewGrid(2, 2)
	g.Set(0, 1, true)
	g.Set(1, 0, true)

	got := g.Bytes(nil)
	if want := []uint8{0, 1, 1, 0}; !slices.Equal(got, want) {
		t.Fatalf("Bytes() = %v, want %v", got, want)
	}

	g.AppendColumn()
	got = g.Bytes(got)
	if want := []uint8{0, 1, 0, 1, 0, 0}; !slices.Equal(got, want) {
		t.Fatalf("Bytes() after append = %v, want %v", got, want)
	}

	g.Reset(1)
	if g.Width() != 1 || g.Get(0, 0) || g.Get(1, 0) {
		t.Fatal("Reset must shrink and clear the grid")
	}
}

func TestNewGridClampsDimensions(t *testing.T) {
	g := NewGrid(0, -3)
	if g.Width() != 1 || g.Height() != 1 {
		t.Fatalf("NewGrid(0,-3) = %dx%d, want 1x1", g.Width(), g.Height())
	}
}
