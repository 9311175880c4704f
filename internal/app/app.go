//go:build ebiten

package app

import (
	"image/color"

	"lifegrid/internal/board"
	"lifegrid/internal/core"
	"lifegrid/internal/render"
	"lifegrid/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// headerHeight is the pixel strip above the grid reserved for the
// status line.
const headerHeight = 24

// Game adapts a board to the ebiten.Game interface. It owns the only
// reference that mutates the board, so ticks and input events are
// naturally serialized by ebiten's update loop.
type Game struct {
	board   *board.Board
	painter *render.GridPainter
	status  *ui.StatusBar
	stepper *core.FixedStep

	manualColor color.Color
	emptyColor  color.Color

	scale int
}

// New constructs a Game driving the provided board at the given tick
// rate.
func New(b *board.Board, scale, tps int) *Game {
	size := b.Size()
	return &Game{
		board:       b,
		painter:     render.NewGridPainter(size.W, size.H),
		status:      ui.NewStatusBar(headerHeight),
		stepper:     core.NewFixedStep(tps),
		manualColor: color.RGBA{R: 26, G: 26, B: 26, A: 255},
		emptyColor:  color.White,
		scale:       scale,
	}
}

// Update handles input events and advances the simulation on its fixed
// cadence.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.board.ToggleRunning()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.board.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) && !g.board.Running() {
		g.board.StepOnce()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		cx, cy := ebiten.CursorPosition()
		// Clicks on the header strip are not cell events.
		if cy >= headerHeight {
			x := cx / g.scale
			y := (cy - headerHeight) / g.scale
			_ = g.board.ToggleCell(x, y)
		}
	}

	for i := g.stepper.Due(); i > 0; i-- {
		g.board.Tick()
	}
	return nil
}

// Draw renders the status line and the current board.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.board.Cells(), g.board.Hints(), g.manualColor, g.emptyColor, 0, headerHeight, g.scale)
	g.status.Draw(screen, g.board.Running(), g.board.Generation())
}

// Layout returns the logical screen size: the scaled grid plus the
// header strip.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := g.board.Size()
	return size.W * g.scale, size.H*g.scale + headerHeight
}
