//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// StatusBar draws the run state and generation count in the header
// strip reserved above the grid.
type StatusBar struct {
	height int
}

// NewStatusBar constructs a status bar occupying the given pixel
// height at the top of the screen.
func NewStatusBar(height int) *StatusBar {
	if height < 0 {
		height = 0
	}
	return &StatusBar{height: height}
}

// Height returns the pixel height reserved for the bar.
func (s *StatusBar) Height() int {
	if s == nil {
		return 0
	}
	return s.height
}

// Draw renders the status line onto the screen.
func (s *StatusBar) Draw(screen *ebiten.Image, running bool, generation uint64) {
	if s == nil || s.height <= 0 {
		return
	}
	face := basicfont.Face7x13
	baseline := (s.height + face.Ascent) / 2

	state := "Stopped"
	stateColor := color.RGBA{R: 220, G: 60, B: 60, A: 255}
	if running {
		state = "Playing"
		stateColor = color.RGBA{R: 80, G: 200, B: 90, A: 255}
	}

	text.Draw(screen, "State: ", face, 4, baseline, color.White)
	stateX := 4 + font7x13Width("State: ")
	text.Draw(screen, state, face, stateX, baseline, stateColor)

	gen := fmt.Sprintf("gen %d", generation)
	genX := stateX + font7x13Width(state) + 2*font7x13Width(" ")
	text.Draw(screen, gen, face, genX, baseline, color.White)
}

func font7x13Width(s string) int {
	return len(s) * basicfont.Face7x13.Advance
}
