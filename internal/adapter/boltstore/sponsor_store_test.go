package boltstore

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"

	"whit-sponsors/internal/core/domain"
	"whit-sponsors/internal/core/port"
)

var now = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

func newStore(t *testing.T) *SponsorStore {
	t.Helper()
	db, err := bolt.Open(filepath.Join(t.TempDir(), "sponsors.db"), 0600, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store, err := NewSponsorStore(db)
	require.NoError(t, err)
	return store
}

func createCampaign(t *testing.T, s *SponsorStore, companyID int64, mutate func(c *domain.Campaign)) domain.Campaign {
	t.Helper()
	c := domain.Campaign{
		CompanyID:          companyID,
		Name:               "campaign",
		Status:             domain.StatusActive,
		StartAt:            now.Add(-time.Hour),
		EndAt:              now.Add(time.Hour),
		Priority:           1,
		Weight:             1,
		DailyImpressionCap: 100,
		Pacing:             domain.PacingEven,
		Targeting:          domain.Targeting{Countries: []string{"US"}},
	}
	if mutate != nil {
		mutate(&c)
	}
	require.NoError(t, s.CreateCampaign(context.Background(), &c))
	return c
}

func TestCampaignCRUD(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	a := createCampaign(t, s, 1, nil)
	b := createCampaign(t, s, 2, func(c *domain.Campaign) { c.Status = domain.StatusPaused })
	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, int64(2), b.ID)

	got, err := s.GetCampaign(ctx, a.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, []string{"US"}, got.Targeting.Countries)
	assert.True(t, got.StartAt.Equal(a.StartAt))

	missing, err := s.GetCampaign(ctx, 99)
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, s.UpdateCampaignStatus(ctx, b.ID, domain.StatusActive))
	assert.ErrorIs(t, s.UpdateCampaignStatus(ctx, 99, domain.StatusActive), port.ErrCampaignNotFound)

	all, err := s.ListCampaigns(ctx, port.CampaignQuery{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, domain.StatusActive, all[1].Status)
}

func TestListCampaignsQuery(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	live := createCampaign(t, s, 1, nil)
	createCampaign(t, s, 1, func(c *domain.Campaign) { c.Status = domain.StatusDraft })
	ended := createCampaign(t, s, 2, func(c *domain.Campaign) {
		c.StartAt = now.Add(-48 * time.Hour)
		c.EndAt = now.Add(-24 * time.Hour)
	})

	active := domain.StatusActive
	got, err := s.ListCampaigns(ctx, port.CampaignQuery{Status: &active, LiveAt: &now})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, live.ID, got[0].ID)

	company := int64(1)
	got, err = s.ListCampaigns(ctx, port.CampaignQuery{CompanyID: &company})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = s.ListCampaigns(ctx, port.CampaignQuery{Status: &active, EndedBefore: &now})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, ended.ID, got[0].ID)
}

func TestRecordEventAndDailyStats(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	c := createCampaign(t, s, 1, nil)

	for _, action := range []domain.Action{domain.ActionImpression, domain.ActionImpression, domain.ActionClick} {
		entry := &domain.DeliveryLogEntry{CampaignID: c.ID, UserHash: "u1", Action: action, ShownAt: now}
		require.NoError(t, s.RecordEvent(ctx, entry))
		assert.NotZero(t, entry.ID)
	}
	// yesterday's event lands on its own row
	require.NoError(t, s.RecordEvent(ctx, &domain.DeliveryLogEntry{CampaignID: c.ID, UserHash: "u1", Action: domain.ActionImpression, ShownAt: now.AddDate(0, 0, -1)}))

	stats, err := s.DailyStats(ctx, now, []int64{c.ID, 42})
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, int64(2), stats[c.ID].Impressions)
	assert.Equal(t, int64(1), stats[c.ID].Clicks)

	err = s.RecordEvent(ctx, &domain.DeliveryLogEntry{CampaignID: 42, UserHash: "u1", Action: domain.ActionClick, ShownAt: now})
	assert.ErrorIs(t, err, port.ErrCampaignNotFound)
}

// TestRecordEventConcurrent: N concurrent impressions produce exactly N.
func TestRecordEventConcurrent(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	c := createCampaign(t, s, 1, nil)

	const n = 50
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- s.RecordEvent(ctx, &domain.DeliveryLogEntry{CampaignID: c.ID, UserHash: "u", Action: domain.ActionImpression, ShownAt: now})
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	stats, err := s.DailyStats(ctx, now, []int64{c.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(n), stats[c.ID].Impressions)
}

func TestRecentImpressions(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	a := createCampaign(t, s, 1, nil)
	b := createCampaign(t, s, 2, nil)

	record := func(id int64, user string, action domain.Action, at time.Time) {
		require.NoError(t, s.RecordEvent(ctx, &domain.DeliveryLogEntry{CampaignID: id, UserHash: user, Action: action, ShownAt: at}))
	}
	record(a.ID, "u1", domain.ActionImpression, now.Add(-10*time.Minute))
	record(a.ID, "u1", domain.ActionImpression, now.Add(-5*time.Minute))
	record(b.ID, "u1", domain.ActionImpression, now.Add(-50*time.Minute))
	record(b.ID, "u1", domain.ActionClick, now.Add(-time.Minute))
	record(b.ID, "u2", domain.ActionImpression, now.Add(-time.Minute))
	record(b.ID, "u10", domain.ActionImpression, now.Add(-time.Minute))

	ids, err := s.RecentImpressions(ctx, "u1", now.Add(-45*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, []int64{a.ID}, ids)

	ids, err = s.RecentImpressions(ctx, "u1", now.Add(-time.Hour))
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{a.ID, b.ID}, ids)

	ids, err = s.RecentImpressions(ctx, "nobody", now.Add(-time.Hour))
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestStatsRange(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	a := createCampaign(t, s, 1, nil)
	b := createCampaign(t, s, 2, nil)

	for i, id := range []int64{a.ID, b.ID, a.ID} {
		at := now.AddDate(0, 0, -i)
		require.NoError(t, s.RecordEvent(ctx, &domain.DeliveryLogEntry{CampaignID: id, UserHash: "u", Action: domain.ActionImpression, ShownAt: at}))
	}

	rows, err := s.StatsRange(ctx, port.StatsReq{From: now.AddDate(0, 0, -2), To: now})
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.True(t, rows[0].Date.Before(rows[1].Date))
	assert.True(t, rows[1].Date.Before(rows[2].Date))

	company := int64(1)
	rows, err = s.StatsRange(ctx, port.StatsReq{From: now.AddDate(0, 0, -2), To: now, CompanyID: &company})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, r := range rows {
		assert.Equal(t, a.ID, r.CampaignID)
	}

	rows, err = s.StatsRange(ctx, port.StatsReq{From: now, To: now, CampaignID: &b.ID})
	require.NoError(t, err)
	assert.Empty(t, rows)
}
