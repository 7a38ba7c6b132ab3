package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"whit-sponsors/internal/core/domain"
	"whit-sponsors/internal/core/port"
	"whit-sponsors/internal/core/port/mocks"
	"whit-sponsors/internal/metrics"
)

var now = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

func newSweeper(t *testing.T) (*Sweeper, *mocks.MockCampaignStore, *metrics.Metrics) {
	store := mocks.NewMockCampaignStore(t)
	m := metrics.New()
	return NewSweeper(store, slog.New(slog.NewTextHandler(io.Discard, nil)), m), store, m
}

func expiredQuery(q port.CampaignQuery) bool {
	return q.Status != nil && *q.Status == domain.StatusActive &&
		q.EndedBefore != nil && q.EndedBefore.Equal(now)
}

func TestSweepCompletesExpired(t *testing.T) {
	ctx := context.Background()
	s, store, m := newSweeper(t)

	store.EXPECT().ListCampaigns(ctx, mock.MatchedBy(expiredQuery)).
		Return([]domain.Campaign{{ID: 1}, {ID: 2}}, nil)
	store.EXPECT().UpdateCampaignStatus(ctx, int64(1), domain.StatusCompleted).Return(nil)
	store.EXPECT().UpdateCampaignStatus(ctx, int64(2), domain.StatusCompleted).Return(nil)

	n, err := s.Sweep(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 2.0, testutil.ToFloat64(m.CampaignsCompletedTotal))
}

func TestSweepContinuesAfterFailure(t *testing.T) {
	ctx := context.Background()
	s, store, _ := newSweeper(t)

	store.EXPECT().ListCampaigns(ctx, mock.Anything).
		Return([]domain.Campaign{{ID: 1}, {ID: 2}, {ID: 3}}, nil)
	store.EXPECT().UpdateCampaignStatus(ctx, int64(1), domain.StatusCompleted).Return(errors.New("db down"))
	store.EXPECT().UpdateCampaignStatus(ctx, int64(2), domain.StatusCompleted).Return(port.ErrCampaignNotFound)
	store.EXPECT().UpdateCampaignStatus(ctx, int64(3), domain.StatusCompleted).Return(nil)

	n, err := s.Sweep(ctx, now)
	assert.Error(t, err)
	assert.Equal(t, 1, n)
}

func TestSweepListError(t *testing.T) {
	ctx := context.Background()
	s, store, _ := newSweeper(t)

	store.EXPECT().ListCampaigns(ctx, mock.Anything).Return(nil, errors.New("db down"))

	_, err := s.Sweep(ctx, now)
	assert.Error(t, err)
}

func TestStartRejectsBadSpec(t *testing.T) {
	s, _, _ := newSweeper(t)
	assert.Error(t, s.Start("every five minutes"))
	s.Stop()
}
