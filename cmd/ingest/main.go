// Package main provides the CSV dataset loader for the GoodBooks database.
//
// It streams the five dataset files (books, ratings, tags, book_tags, to_read)
// from the configured data directory into their MongoDB collections using
// chunked bulk upserts. Re-running it refreshes existing documents in place.
//
// Usage:
//
//	DATA_DIR=./data go run ./cmd/ingest
//	go run ./cmd/ingest --data-dir ./data --dataset goodbooks-10k
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/goodbooksapp/goodbooks-server/internal/config"
	"github.com/goodbooksapp/goodbooks-server/internal/ingest"
	"github.com/goodbooksapp/goodbooks-server/internal/logger"
	"github.com/goodbooksapp/goodbooks-server/internal/store"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:       logger.ParseLevel(cfg.Logger.Level),
		AddSource:   false,
		Environment: cfg.App.Environment,
	})

	ctx := context.Background()

	connectCtx, cancel := context.WithTimeout(ctx, cfg.Mongo.Timeout)
	db, err := store.Connect(connectCtx, cfg.Mongo.URI, cfg.Mongo.Database, log.Logger)
	cancel()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := db.Close(ctx); err != nil {
			log.Error("Failed to close database", "error", err)
		}
	}()

	loader := ingest.NewLoader(db, cfg.DatasetPath(), cfg.Ingest.ChunkSize, log.Logger)

	log.Info("Starting ingest",
		"data_dir", cfg.DatasetPath(),
		"chunk_size", cfg.Ingest.ChunkSize,
	)

	if err := loader.LoadAll(ctx); err != nil {
		log.Fatalf("Ingest failed: %v", err)
	}

	log.Info("Ingest complete")
}
