package main

import (
	"flag"
	"log"

	"lifegrid/internal/app"
	"lifegrid/internal/board"
	"lifegrid/internal/core"
	"lifegrid/internal/web"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	addr := flag.String("addr", ":8080", "HTTP listen address")
	flag.Parse()

	b, err := board.New(cfg.Width, cfg.Height, core.NewRangeHintSource(cfg.Seed))
	if err != nil {
		log.Fatalf("new board: %v", err)
	}

	srv := web.NewServer(b, cfg.TPS)
	log.Printf("lifegrid serving %dx%d board on %s", cfg.Width, cfg.Height, *addr)
	if err := srv.ListenAndServe(*addr); err != nil {
		log.Fatal(err)
	}
}
