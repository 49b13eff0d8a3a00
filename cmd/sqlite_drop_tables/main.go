package main

import (
	"context"

	"github.com/hetulpatel/socialnetwork/internal/config"
	"github.com/hetulpatel/socialnetwork/internal/logging"
	"github.com/hetulpatel/socialnetwork/internal/storage/sqlite"
)

func main() {
	logging.InitFromEnv()
	logger := logging.New("sqlite")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}
	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		logger.Fatalf("open sqlite: %v", err)
	}
	defer store.Close()

	if err := store.DropTables(context.Background()); err != nil {
		logger.Fatalf("drop tables: %v", err)
	}
	logger.Infof("people table dropped at %s", store.Path())
}
