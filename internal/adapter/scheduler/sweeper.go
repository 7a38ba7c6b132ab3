package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"whit-sponsors/internal/core/domain"
	"whit-sponsors/internal/core/port"
	"whit-sponsors/internal/metrics"
)

// sweepTimeout bounds one scheduled run.
const sweepTimeout = time.Minute

// Sweeper moves active campaigns whose end_at has passed to completed.
type Sweeper struct {
	store   port.CampaignStore
	logger  *slog.Logger
	metrics *metrics.Metrics
	now     func() time.Time

	cron *cron.Cron
}

// NewSweeper creates a sweeper. m may be nil.
func NewSweeper(store port.CampaignStore, logger *slog.Logger, m *metrics.Metrics) *Sweeper {
	return &Sweeper{store: store, logger: logger, metrics: m, now: time.Now}
}

// Sweep completes every active campaign that ended before now and returns
// how many were updated. A failed update does not stop the others.
func (s *Sweeper) Sweep(ctx context.Context, now time.Time) (int, error) {
	active := domain.StatusActive
	expired, err := s.store.ListCampaigns(ctx, port.CampaignQuery{Status: &active, EndedBefore: &now})
	if err != nil {
		return 0, fmt.Errorf("list expired campaigns: %w", err)
	}

	var (
		done int
		errs []error
	)
	for _, c := range expired {
		err = s.store.UpdateCampaignStatus(ctx, c.ID, domain.StatusCompleted)
		if errors.Is(err, port.ErrCampaignNotFound) {
			continue
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("complete campaign %d: %w", c.ID, err))
			continue
		}
		s.logger.Info("campaign completed",
			slog.Int64("campaign_id", c.ID),
			slog.Time("end_at", c.EndAt))
		done++
	}
	s.metrics.ObserveCompleted(done)
	return done, errors.Join(errs...)
}

// Start schedules Sweep with a standard cron spec or descriptor such as
// "@every 5m".
func (s *Sweeper) Start(spec string) error {
	c := cron.New(cron.WithLocation(time.UTC))
	if _, err := c.AddFunc(spec, s.run); err != nil {
		return fmt.Errorf("add sweeper job: %w", err)
	}
	s.cron = c
	c.Start()
	return nil
}

// Stop waits for a running sweep to finish.
func (s *Sweeper) Stop() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
}

func (s *Sweeper) run() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	n, err := s.Sweep(ctx, s.now())
	if err != nil {
		s.logger.Error("sweep error", slog.Int("completed", n), slog.Any("error", err))
		return
	}
	s.logger.Debug("sweep finished", slog.Int("completed", n))
}
