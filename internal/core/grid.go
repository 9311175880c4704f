package core

// Size describes the dimensions of a grid.
type Size struct {
	W int
	H int
}

// Liveness values stored per cell.
const (
	Dead  uint8 = 0
	Alive uint8 = 1
)

// Grid stores a 2D board of cell liveness values in row-major order,
// alongside the display hint attached to each cell. Dimensions are
// fixed for the lifetime of the grid.
type Grid struct {
	w, h  int
	cells []uint8
	hints []Hint
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Grid{
		w:     w,
		h:     h,
		cells: make([]uint8, w*h),
		hints: make([]Hint, w*h),
	}, nil
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.w, H: g.h} }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.w + x }

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// IsAlive reports the liveness at (x, y). Out-of-bounds coordinates
// read as dead, so callers can scan a cell's neighborhood without
// clamping at the edges.
func (g *Grid) IsAlive(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.cells[g.Index(x, y)] == Alive
}

// SetAlive writes the liveness at (x, y). Dying cells lose their hint.
// Out-of-bounds writes are ignored.
func (g *Grid) SetAlive(x, y int, alive bool) {
	if !g.InBounds(x, y) {
		return
	}
	idx := g.Index(x, y)
	if alive {
		g.cells[idx] = Alive
		return
	}
	g.cells[idx] = Dead
	g.hints[idx] = NoHint
}

// HintAt returns the display hint at (x, y), or NoHint when the cell
// has none or the coordinate is out of bounds.
func (g *Grid) HintAt(x, y int) Hint {
	if !g.InBounds(x, y) {
		return NoHint
	}
	return g.hints[g.Index(x, y)]
}

// SetHint attaches a display hint at (x, y). Out-of-bounds writes are
// ignored.
func (g *Grid) SetHint(x, y int, h Hint) {
	if !g.InBounds(x, y) {
		return
	}
	g.hints[g.Index(x, y)] = h
}

// Cells exposes the backing liveness slice for painters. Callers must
// treat it as read-only.
func (g *Grid) Cells() []uint8 { return g.cells }

// Hints exposes the backing hint slice for painters. Callers must
// treat it as read-only.
func (g *Grid) Hints() []Hint { return g.hints }

// Clear resets every cell to dead and drops all hints.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Dead
		g.hints[i] = NoHint
	}
}

// Blank returns a new all-dead grid with the same dimensions.
func (g *Grid) Blank() *Grid {
	return &Grid{
		w:     g.w,
		h:     g.h,
		cells: make([]uint8, len(g.cells)),
		hints: make([]Hint, len(g.hints)),
	}
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := g.Blank()
	copy(c.cells, g.cells)
	copy(c.hints, g.hints)
	return c
}
