package main

import (
	"context"
	"log"

	"resume-extractor/internal/bootstrap"
	"resume-extractor/internal/shared/config"
	"resume-extractor/internal/shared/server"
)

func main() {
	cfg := config.Load()
	app, err := bootstrap.Build(context.Background(), cfg)
	if err != nil {
		log.Fatalf("bootstrap error: %v", err)
	}
	defer app.Close()

	addr := server.Addr(cfg.Port)
	log.Printf("Starting API server on %s (record store: %s)", addr, cfg.RecordStore)

	if err := app.Router.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
