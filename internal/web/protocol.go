package web

import (
	"fmt"

	"lifegrid/internal/board"
)

// Event types accepted over the websocket. Tick is internal to the run
// loop and rejected from peers.
const (
	EventToggle    = "toggle"
	EventPlayPause = "playpause"
	EventReset     = "reset"
	EventTick      = "tick"
)

// Event is one input message from a peer.
type Event struct {
	Type string `json:"type"`
	X    int    `json:"x,omitempty"`
	Y    int    `json:"y,omitempty"`
}

// CellView is one live cell in a snapshot, with its display color as a
// CSS hex string.
type CellView struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Color string `json:"color"`
}

// Snapshot is the full board state pushed to every peer. Only live
// cells are listed.
type Snapshot struct {
	Width      int        `json:"width"`
	Height     int        `json:"height"`
	Running    bool       `json:"running"`
	Generation uint64     `json:"generation"`
	Cells      []CellView `json:"cells"`
}

// manualColor is the hex used for user-placed life, matching the GUI's
// fixed dark cell color.
const manualColor = "#1a1a1a"

// snapshot flattens the board into the wire form.
func (s *Server) snapshot() Snapshot {
	return snapshotOf(s.board)
}

func snapshotOf(b *board.Board) Snapshot {
	size := b.Size()
	snap := Snapshot{
		Width:      size.W,
		Height:     size.H,
		Running:    b.Running(),
		Generation: b.Generation(),
	}
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			if !b.IsAlive(x, y) {
				continue
			}
			cv := CellView{X: x, Y: y, Color: manualColor}
			if hint, ok := b.DisplayHint(x, y); ok {
				r, g, bb := hint.RGB()
				cv.Color = fmt.Sprintf("#%02x%02x%02x", r, g, bb)
			}
			snap.Cells = append(snap.Cells, cv)
		}
	}
	return snap
}
