package web

import (
	"encoding/json"
	"testing"

	"lifegrid/internal/board"
	"lifegrid/internal/core"
)

func newServer(t *testing.T, w, h int) *Server {
	t.Helper()
	b, err := board.New(w, h, core.FixedHintSource(core.PackHint(140, 220, 90)))
	if err != nil {
		t.Fatalf("New(%d, %d): %v", w, h, err)
	}
	return NewServer(b, 40)
}

func TestSnapshotListsLiveCells(t *testing.T) {
	s := newServer(t, 4, 4)
	_ = s.board.ToggleCell(1, 2)

	snap := s.snapshot()
	if snap.Width != 4 || snap.Height != 4 {
		t.Fatalf("snapshot dims = %dx%d", snap.Width, snap.Height)
	}
	if snap.Running || snap.Generation != 0 {
		t.Fatalf("fresh snapshot running=%v generation=%d", snap.Running, snap.Generation)
	}
	if len(snap.Cells) != 1 {
		t.Fatalf("snapshot lists %d cells, want 1", len(snap.Cells))
	}
	cell := snap.Cells[0]
	if cell.X != 1 || cell.Y != 2 {
		t.Fatalf("snapshot cell at (%d,%d), want (1,2)", cell.X, cell.Y)
	}
	if cell.Color != manualColor {
		t.Fatalf("manual cell color = %q, want %q", cell.Color, manualColor)
	}
}

func TestSnapshotUsesBirthHintColor(t *testing.T) {
	s := newServer(t, 5, 5)
	for _, p := range [][2]int{{1, 2}, {2, 2}, {3, 2}} {
		_ = s.board.ToggleCell(p[0], p[1])
	}
	s.apply(Event{Type: EventPlayPause})
	s.apply(Event{Type: EventTick})

	snap := s.snapshot()
	var birth *CellView
	for i := range snap.Cells {
		if snap.Cells[i].X == 2 && snap.Cells[i].Y == 1 {
			birth = &snap.Cells[i]
		}
	}
	if birth == nil {
		t.Fatal("blinker birth (2,1) missing from snapshot")
	}
	if birth.Color != "#8cdc5a" {
		t.Fatalf("birth color = %q, want hint color #8cdc5a", birth.Color)
	}
}

func TestApplyDispatchesEvents(t *testing.T) {
	s := newServer(t, 4, 4)

	s.apply(Event{Type: EventToggle, X: 2, Y: 2})
	if !s.board.IsAlive(2, 2) {
		t.Fatal("toggle event did not flip the cell")
	}

	s.apply(Event{Type: EventPlayPause})
	if !s.board.Running() {
		t.Fatal("playpause event did not start the board")
	}

	s.apply(Event{Type: EventTick})
	if s.board.Generation() != 1 {
		t.Fatalf("tick event left generation at %d", s.board.Generation())
	}

	s.apply(Event{Type: EventReset})
	if s.board.Running() || s.board.Generation() != 0 || s.board.IsAlive(2, 2) {
		t.Fatal("reset event did not clear the board")
	}
}

func TestApplyIgnoresBadEvents(t *testing.T) {
	s := newServer(t, 3, 3)
	// Neither must panic or change state.
	s.apply(Event{Type: EventToggle, X: 9, Y: 9})
	s.apply(Event{Type: "bogus"})
	if s.board.Generation() != 0 || s.board.Running() {
		t.Fatal("bad events changed board state")
	}
}

func TestEventDecoding(t *testing.T) {
	var ev Event
	if err := json.Unmarshal([]byte(`{"type":"toggle","x":3,"y":7}`), &ev); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if ev.Type != EventToggle || ev.X != 3 || ev.Y != 7 {
		t.Fatalf("decoded %+v", ev)
	}
}
