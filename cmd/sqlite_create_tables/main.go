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

	if err := store.CreateTables(context.Background()); err != nil {
		logger.Fatalf("create tables: %v", err)
	}
	logger.Infof("people table ready at %s", store.Path())
}
