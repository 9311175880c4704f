// Package life implements the Conway's Game of Life transition rule on
// a bounded, non-wrapping grid.
package life

import "lifegrid/internal/core"

// Next computes the generation following src and returns it as a fresh
// grid; src is never modified. Every neighbor count is taken against
// src, so the order cells are visited in cannot influence the result.
//
// The grid does not wrap: neighbors beyond an edge count as dead,
// which makes corner cells top out at three neighbors.
//
// Survivors keep whatever hint they carried. Newly born cells get one
// from hints; the liveness outcome never depends on the drawn value.
func Next(src *core.Grid, hints core.HintSource) *core.Grid {
	size := src.Size()
	dst := src.Blank()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			n := liveNeighbors(src, x, y)
			alive := src.IsAlive(x, y)
			switch {
			case alive && (n == 2 || n == 3):
				dst.SetAlive(x, y, true)
				dst.SetHint(x, y, src.HintAt(x, y))
			case !alive && n == 3:
				dst.SetAlive(x, y, true)
				if hints != nil {
					dst.SetHint(x, y, hints.Next())
				}
			}
		}
	}
	return dst
}

// liveNeighbors counts live cells among the up to eight in-bounds
// neighbors of (x, y).
func liveNeighbors(g *core.Grid, x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.IsAlive(x+dx, y+dy) {
				n++
			}
		}
	}
	return n
}
