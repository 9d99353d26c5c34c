package main

import (
	"context"
	"fmt"

	"healthdash/internal/adapter/csvstore"
	"healthdash/internal/adapter/memory"
	"healthdash/internal/adapter/postgres"
	"healthdash/internal/adapter/sqlite"
	"healthdash/internal/config"
	"healthdash/internal/domain"
)

// openStore returns the configured repository and a func that releases it.
func openStore(ctx context.Context, cfg *config.Config) (domain.RecordRepository, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Store {
	case config.StoreCSV:
		return csvstore.New(cfg.DataFile), noop, nil
	case config.StoreSQLite:
		db, err := sqlite.Open(ctx, cfg.DataFile)
		if err != nil {
			return nil, nil, fmt.Errorf("sqlite open: %w", err)
		}
		return db, db.Close, nil
	case config.StorePostgres:
		db, err := postgres.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("db open: %w", err)
		}
		return db, db.Close, nil
	case config.StoreMemory:
		return memory.New(), noop, nil
	}
	return nil, nil, fmt.Errorf("unknown store %q", cfg.Store)
}
