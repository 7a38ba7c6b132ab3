package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	httpadapter "whit-sponsors/internal/adapter/http"
	"whit-sponsors/internal/adapter/redis"
	"whit-sponsors/internal/adapter/scheduler"
	"whit-sponsors/internal/adapter/usecase"
	"whit-sponsors/internal/config/configs"
	"whit-sponsors/internal/db"
	"whit-sponsors/internal/metrics"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and the lifecycle sweeper",
	RunE:  runServe,
}

// runServe optionally runs database migrations, opens the store, then
// starts the HTTP server. On SIGINT or SIGTERM it gracefully shuts down.
func runServe(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := loadApp()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Store.Driver == configs.StoreDriverPostgres && cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer closeStore()

	m := metrics.New()
	svc := usecase.NewSponsorUseCase(store, logger, m)

	var limiter httpadapter.Limiter
	if cfg.Redis.Enabled() {
		rdb, err := db.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer rdb.Close()
		limiter = redis.NewLimiter(rdb, cfg.Redis.BeaconLimit, cfg.Redis.BeaconWindow, logger)
	}

	if cfg.Sweeper.Enabled() {
		sweeper := scheduler.NewSweeper(store, logger, m)
		if err = sweeper.Start(cfg.Sweeper.Schedule); err != nil {
			return err
		}
		defer sweeper.Stop()
		logger.Info("sweeper scheduled", slog.String("schedule", cfg.Sweeper.Schedule))
	}

	handler := httpadapter.NewHandler(svc, logger, m, limiter)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			slog.Int("port", int(cfg.HTTP.Port)),
			slog.String("store", cfg.Store.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err = <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		return err
	}
	logger.Info("server gracefully stopped")
	return nil
}
