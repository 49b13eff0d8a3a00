package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/hetulpatel/socialnetwork/internal/config"
	"github.com/hetulpatel/socialnetwork/internal/logging"
	"github.com/hetulpatel/socialnetwork/internal/report"
	"github.com/hetulpatel/socialnetwork/internal/storage/sqlite"
)

func main() {
	logging.InitFromEnv()
	logger := logging.New("old-people")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}
	if _, err := os.Stat(cfg.DBPath); err != nil {
		logger.Fatalf("database %s: %v (run create_db first)", cfg.DBPath, err)
	}

	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		logger.Fatalf("open sqlite: %v", err)
	}
	defer store.Close()

	records, err := report.Run(ctx, store, report.Options{
		MinimumAge: cfg.MinimumAge,
		CSVPath:    cfg.CSVPath,
	}, os.Stdout)
	if err != nil {
		logger.Fatalf("report: %v", err)
	}
	logger.Infof("wrote %d people aged %d+ to %s", len(records), cfg.MinimumAge, cfg.CSVPath)
}
