package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"whit-sponsors/internal/adapter/boltstore"
	"whit-sponsors/internal/adapter/postgres"
	"whit-sponsors/internal/config"
	"whit-sponsors/internal/config/configs"
	"whit-sponsors/internal/core/port"
	"whit-sponsors/internal/db"
)

// newLogger builds the structured logger selected by the configuration.
func newLogger(cfg config.Config, w io.Writer) *slog.Logger {
	return slog.New(cfg.Log.NewHandler(w)).With(slog.String("env", cfg.Env))
}

// loadApp loads configuration and the logger every command needs.
func loadApp() (config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, nil, err
	}
	return cfg, newLogger(cfg, os.Stderr), nil
}

// openStore opens the configured campaign store. The returned close
// function releases the underlying connection.
func openStore(ctx context.Context, cfg config.Config) (port.CampaignStore, func(), error) {
	if cfg.Store.Driver == configs.StoreDriverBolt {
		bdb, err := db.OpenBolt(cfg.Store)
		if err != nil {
			return nil, nil, err
		}
		store, err := boltstore.NewSponsorStore(bdb)
		if err != nil {
			_ = bdb.Close()
			return nil, nil, err
		}
		return store, func() { _ = bdb.Close() }, nil
	}

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return nil, nil, err
	}
	return postgres.NewSponsorRepository(pool), pool.Close, nil
}
