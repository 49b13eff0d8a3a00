package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/hetulpatel/socialnetwork/internal/config"
	"github.com/hetulpatel/socialnetwork/internal/llm"
	"github.com/hetulpatel/socialnetwork/internal/logging"
	"github.com/hetulpatel/socialnetwork/internal/seed"
	"github.com/hetulpatel/socialnetwork/internal/storage/sqlite"
)

func main() {
	logging.InitFromEnv()
	logger := logging.New("create-db")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		logger.Fatalf("open sqlite: %v", err)
	}
	defer store.Close()

	if err := store.CreateTables(ctx); err != nil {
		logger.Fatalf("create tables: %v", err)
	}

	gen, err := newGenerator(cfg)
	if err != nil {
		logger.Fatalf("generator: %v", err)
	}

	n, err := seed.Populate(ctx, store, gen, cfg.Count)
	if err != nil {
		logger.Fatalf("populate people: %v", err)
	}
	logger.Infof("inserted %d fake people into %s (bios: %s)", n, store.Path(), cfg.BioSource)
}

func newGenerator(cfg config.Config) (*seed.Generator, error) {
	opts := seed.Options{Locale: cfg.Locale, Seed: cfg.RandomSeed}
	if cfg.BioSource == config.BioSourceLLM {
		client, err := llm.New(llm.Config{
			APIKey:      cfg.LLM.APIKey,
			BaseURL:     cfg.LLM.BaseURL,
			Model:       cfg.LLM.Model,
			Timeout:     cfg.LLM.Timeout,
			Temperature: 0.9,
		})
		if err != nil {
			return nil, err
		}
		opts.Completer = client
	}
	return seed.NewGenerator(opts)
}
