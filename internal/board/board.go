// Package board owns the authoritative simulation state: the liveness
// grid, the run flag, and the generation counter. Display drivers feed
// it discrete events and read it back through the query methods; they
// hold no board state of their own.
//
// A Board is not safe for concurrent use. The driving loop must
// serialize events and ticks, which every driver in this repo does by
// owning its board from a single goroutine.
package board

import (
	"lifegrid/internal/core"
	"lifegrid/internal/life"
)

// Board is the single source of truth for one Game of Life session.
type Board struct {
	grid       *core.Grid
	running    bool
	generation uint64
	hints      core.HintSource
}

// New returns a paused board of the given dimensions with every cell
// dead. hints supplies the display hint attached to automaton births;
// it may be nil, in which case births carry no hint.
func New(w, h int, hints core.HintSource) (*Board, error) {
	grid, err := core.NewGrid(w, h)
	if err != nil {
		return nil, err
	}
	return &Board{grid: grid, hints: hints}, nil
}

// Size returns the grid dimensions.
func (b *Board) Size() core.Size { return b.grid.Size() }

// ToggleCell flips the liveness at (x, y) and returns
// core.ErrOutOfBounds for coordinates outside the grid. Cells toggled
// dead lose their hint; cells toggled alive get none, so user-placed
// life stays visually distinct from automaton births.
func (b *Board) ToggleCell(x, y int) error {
	if !b.grid.InBounds(x, y) {
		return core.ErrOutOfBounds
	}
	b.grid.SetAlive(x, y, !b.grid.IsAlive(x, y))
	return nil
}

// SetRunning sets the run flag directly.
func (b *Board) SetRunning(running bool) { b.running = running }

// ToggleRunning flips between playing and paused.
func (b *Board) ToggleRunning() { b.running = !b.running }

// Running reports whether ticks currently advance the simulation.
func (b *Board) Running() bool { return b.running }

// Reset clears the grid, pauses the simulation, and rewinds the
// generation counter. Dimensions are unchanged.
func (b *Board) Reset() {
	b.grid.Clear()
	b.running = false
	b.generation = 0
}

// Tick advances the simulation by one generation and returns the new
// generation count. While paused it changes nothing and returns the
// current count. The grid swap is all-or-nothing: readers never see a
// partially stepped board.
func (b *Board) Tick() uint64 {
	if !b.running {
		return b.generation
	}
	b.grid = life.Next(b.grid, b.hints)
	b.generation++
	return b.generation
}

// StepOnce advances exactly one generation regardless of the run flag
// and returns the new generation count. Drivers use it for manual
// single-stepping while paused.
func (b *Board) StepOnce() uint64 {
	b.grid = life.Next(b.grid, b.hints)
	b.generation++
	return b.generation
}

// Generation returns the number of generations stepped since the last
// reset.
func (b *Board) Generation() uint64 { return b.generation }

// IsAlive reports the liveness at (x, y); out-of-bounds reads as dead.
func (b *Board) IsAlive(x, y int) bool { return b.grid.IsAlive(x, y) }

// DisplayHint returns the hint at (x, y) and whether one is attached.
func (b *Board) DisplayHint(x, y int) (core.Hint, bool) {
	h := b.grid.HintAt(x, y)
	return h, h != core.NoHint
}

// Cells exposes the liveness slice for painters; read-only.
func (b *Board) Cells() []uint8 { return b.grid.Cells() }

// Hints exposes the hint slice for painters; read-only.
func (b *Board) Hints() []core.Hint { return b.grid.Hints() }
