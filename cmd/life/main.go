//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"lifegrid/internal/app"
	"lifegrid/internal/board"
	"lifegrid/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	b, err := board.New(cfg.Width, cfg.Height, core.NewRangeHintSource(cfg.Seed))
	if err != nil {
		log.Fatalf("new board: %v", err)
	}

	game := app.New(b, cfg.Scale, cfg.TPS)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("lifegrid")
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
