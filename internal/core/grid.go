package core

// Grid stores generations of boolean cells as equally sized rows. Columns can be
// added on either edge; every row receives the new column so the grid stays
// rectangular.
type Grid struct {
	rows [][]bool
}

// NewGrid allocates an inactive grid with w columns and h rows.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	rows := make([][]bool, h)
	for i := range rows {
		rows[i] = make([]bool, w)
	}
	return &Grid{rows: rows}
}

// Width returns the current number of columns.
func (g *Grid) Width() int { return len(g.rows[0]) }

// Height returns the number of rows.
func (g *Grid) Height() int { return len(g.rows) }

// Get returns the cell at (row, col). Anything outside the grid is inactive.
func (g *Grid) Get(row, col int) bool {
	if row < 0 || row >= len(g.rows) {
		return false
	}
	r := g.rows[row]
	if col < 0 || col >= len(r) {
		return false
	}
	return r[col]
}

// Set writes the cell at (row, col). Writes outside the grid are dropped.
func (g *Grid) Set(row, col int, v bool) {
	if row < 0 || row >= len(g.rows) {
		return
	}
	r := g.rows[row]
	if col < 0 || col >= len(r) {
		return
	}
	r[col] = v
}

// Row exposes a row for reading. Callers must not modify it.
func (g *Grid) Row(row int) []bool {
	if row < 0 || row >= len(g.rows) {
		return nil
	}
	return g.rows[row]
}

// InsertColumn prepends an inactive column, shifting every existing column right.
func (g *Grid) InsertColumn() {
	for i, r := range g.rows {
		r = append(r, false)
		copy(r[1:], r[:len(r)-1])
		r[0] = false
		g.rows[i] = r
	}
}

// AppendColumn adds an inactive column on the right edge.
func (g *Grid) AppendColumn() {
	for i, r := range g.rows {
		g.rows[i] = append(r, false)
	}
}

// Reset shrinks the grid back to w columns and clears every cell.
func (g *Grid) Reset(w int) {
	if w <= 0 {
		w = 1
	}
	for i := range g.rows {
		g.rows[i] = make([]bool, w)
	}
}

// Bytes flattens the grid into buf in row-major order (1 = active) and returns
// the possibly reallocated buffer.
func (g *Grid) Bytes(buf []uint8) []uint8 {
	total := g.Width() * g.Height()
	if cap(buf) < total {
		buf = make([]uint8, total)
	}
	buf = buf[:total]
	i := 0
	for _, r := range g.rows {
		for _, c := range r {
			buf[i] = 0
			if c {
				buf[i] = 1
			}
			i++
		}
	}
	return buf
}
