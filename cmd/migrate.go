package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"whit-sponsors/internal/config/configs"
	"whit-sponsors/internal/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply PostgreSQL migrations",
	RunE:  runMigrate,
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := loadApp()
	if err != nil {
		return err
	}
	if cfg.Store.Driver != configs.StoreDriverPostgres {
		return errors.New("migrations only apply to the postgres store")
	}
	if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	logger.Info("migrations applied successfully")
	return nil
}
