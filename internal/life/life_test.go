package life

import (
	"testing"

	"lifegrid/internal/core"
)

func newGrid(t *testing.T, w, h int) *core.Grid {
	t.Helper()
	g, err := core.NewGrid(w, h)
	if err != nil {
		t.Fatalf("NewGrid(%d, %d): %v", w, h, err)
	}
	return g
}

func assertAliveSet(t *testing.T, g *core.Grid, want map[[2]int]bool) {
	t.Helper()
	size := g.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			alive := g.IsAlive(x, y)
			_, shouldBeAlive := want[[2]int{x, y}]
			if shouldBeAlive != alive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	g := newGrid(t, 5, 5)
	g.SetAlive(1, 2, true)
	g.SetAlive(2, 2, true)
	g.SetAlive(3, 2, true)

	g2 := Next(g, nil)
	assertAliveSet(t, g2, map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	})

	g3 := Next(g2, nil)
	assertAliveSet(t, g3, map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	})
}

func TestBlockIsStable(t *testing.T) {
	g := newGrid(t, 6, 6)
	block := map[[2]int]bool{
		{2, 2}: true, {3, 2}: true,
		{2, 3}: true, {3, 3}: true,
	}
	for p := range block {
		g.SetAlive(p[0], p[1], true)
	}

	for i := 0; i < 10; i++ {
		g = Next(g, nil)
		assertAliveSet(t, g, block)
	}
}

func TestLoneCellDies(t *testing.T) {
	g := newGrid(t, 5, 5)
	g.SetAlive(2, 2, true)

	g = Next(g, nil)
	assertAliveSet(t, g, nil)
}

func TestEdgesDoNotWrap(t *testing.T) {
	// A horizontal blinker pressed against the top edge loses its
	// off-grid birth site. On a torus it would oscillate forever; on
	// a bounded grid it collapses and dies out.
	g := newGrid(t, 5, 5)
	g.SetAlive(1, 0, true)
	g.SetAlive(2, 0, true)
	g.SetAlive(3, 0, true)

	g = Next(g, nil)
	assertAliveSet(t, g, map[[2]int]bool{
		{2, 0}: true,
		{2, 1}: true,
	})

	g = Next(g, nil)
	assertAliveSet(t, g, nil)
}

func TestCornerNeighborhoodIsBounded(t *testing.T) {
	// All three in-bounds neighbors of the corner are live, so the
	// corner survives with exactly three neighbors; a wrapped count
	// would see more and kill it.
	g := newGrid(t, 5, 5)
	g.SetAlive(0, 0, true)
	g.SetAlive(1, 0, true)
	g.SetAlive(0, 1, true)
	g.SetAlive(1, 1, true)
	// Opposite-edge cells must not count as corner neighbors.
	g.SetAlive(4, 4, true)
	g.SetAlive(4, 0, true)

	if n := liveNeighbors(g, 0, 0); n != 3 {
		t.Fatalf("corner (0,0) neighbors = %d, want 3", n)
	}

	g2 := Next(g, nil)
	if !g2.IsAlive(0, 0) {
		t.Fatal("corner cell with three neighbors died")
	}
}

func TestNextDoesNotMutateInput(t *testing.T) {
	g := newGrid(t, 5, 5)
	g.SetAlive(1, 2, true)
	g.SetAlive(2, 2, true)
	g.SetAlive(3, 2, true)
	before := g.Clone()

	_ = Next(g, nil)

	size := g.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			if g.IsAlive(x, y) != before.IsAlive(x, y) {
				t.Fatalf("input grid mutated at (%d,%d)", x, y)
			}
		}
	}
}

func TestBirthsGetHints(t *testing.T) {
	hint := core.PackHint(140, 220, 90)
	g := newGrid(t, 5, 5)
	g.SetAlive(1, 2, true)
	g.SetAlive(2, 2, true)
	g.SetAlive(3, 2, true)

	g = Next(g, core.FixedHintSource(hint))

	// (2,1) and (2,3) are births; (2,2) survived without a hint.
	if h := g.HintAt(2, 1); h != hint {
		t.Fatalf("birth (2,1) hint = %#x, want %#x", uint32(h), uint32(hint))
	}
	if h := g.HintAt(2, 3); h != hint {
		t.Fatalf("birth (2,3) hint = %#x, want %#x", uint32(h), uint32(hint))
	}
	if h := g.HintAt(2, 2); h != core.NoHint {
		t.Fatalf("survivor (2,2) gained hint %#x", uint32(h))
	}
}

func TestSurvivorsKeepHints(t *testing.T) {
	hint := core.PackHint(150, 230, 100)
	g := newGrid(t, 6, 6)
	for _, p := range [][2]int{{2, 2}, {3, 2}, {2, 3}, {3, 3}} {
		g.SetAlive(p[0], p[1], true)
	}
	g.SetHint(2, 2, hint)

	g = Next(g, core.FixedHintSource(core.PackHint(1, 1, 1)))
	if h := g.HintAt(2, 2); h != hint {
		t.Fatalf("stable cell hint = %#x, want %#x", uint32(h), uint32(hint))
	}
}

func TestLivenessIgnoresHintSource(t *testing.T) {
	g := newGrid(t, 5, 5)
	g.SetAlive(1, 2, true)
	g.SetAlive(2, 2, true)
	g.SetAlive(3, 2, true)

	withHints := Next(g, core.FixedHintSource(core.PackHint(9, 9, 9)))
	withoutHints := Next(g, nil)

	size := g.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			if withHints.IsAlive(x, y) != withoutHints.IsAlive(x, y) {
				t.Fatalf("hint source changed liveness at (%d,%d)", x, y)
			}
		}
	}
}
