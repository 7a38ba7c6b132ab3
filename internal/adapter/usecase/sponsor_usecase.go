package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"whit-sponsors/internal/core/domain"
	"whit-sponsors/internal/core/port"
	"whit-sponsors/internal/metrics"
)

const (
	// DefaultFatigueWindow hides a sponsor the user has seen this recently.
	DefaultFatigueWindow = 45 * time.Minute
	// DefaultRelaxedWindow is tried when the fatigue window excludes every
	// eligible campaign.
	DefaultRelaxedWindow = time.Hour
)

// SponsorUseCase provides the sponsored-slot selection engine and event
// recording. It keeps no state between calls; everything lives in the
// store.
type SponsorUseCase struct {
	store   port.CampaignStore
	logger  *slog.Logger
	metrics *metrics.Metrics

	fatigueWindow time.Duration
	relaxedWindow time.Duration
}

var _ port.SponsorUseCase = (*SponsorUseCase)(nil)

// NewSponsorUseCase creates a new usecase over store. m may be nil.
func NewSponsorUseCase(store port.CampaignStore, logger *slog.Logger, m *metrics.Metrics) *SponsorUseCase {
	return &SponsorUseCase{
		store:         store,
		logger:        logger,
		metrics:       m,
		fatigueWindow: DefaultFatigueWindow,
		relaxedWindow: DefaultRelaxedWindow,
	}
}

// PickSponsoredCampaign filters live, targeted, under-cap campaigns, drops
// the ones this user saw recently when alternatives exist, and picks one
// by seeded weighted rotation. It returns nil when nothing is eligible.
func (u *SponsorUseCase) PickSponsoredCampaign(ctx context.Context, filters domain.Filters, userHash string, page int, now time.Time) (*domain.Campaign, error) {
	eligible, err := u.eligibleCampaigns(ctx, filters, now)
	if err != nil {
		u.metrics.ObserveSelection(metrics.OutcomeError)
		return nil, err
	}
	if len(eligible) == 0 {
		u.metrics.ObserveSelection(metrics.OutcomeNoFill)
		return nil, nil
	}

	eligible, err = u.applyFatigue(ctx, eligible, userHash, now)
	if err != nil {
		u.metrics.ObserveSelection(metrics.OutcomeError)
		return nil, err
	}

	chosen := weightedSelection(eligible, filters, userHash, page, now)
	if chosen == nil {
		u.metrics.ObserveSelection(metrics.OutcomeNoFill)
		return nil, nil
	}
	u.metrics.ObserveSelection(metrics.OutcomeServed)
	camp := chosen.campaign
	return &camp, nil
}

// RecordImpression logs an impression and increments today's counter.
func (u *SponsorUseCase) RecordImpression(ctx context.Context, campaignID int64, userHash, pageKey string, meta domain.RequestMeta, now time.Time) error {
	return u.record(ctx, domain.ActionImpression, campaignID, userHash, pageKey, meta, now)
}

// RecordClick logs a click and increments today's counter.
func (u *SponsorUseCase) RecordClick(ctx context.Context, campaignID int64, userHash, pageKey string, meta domain.RequestMeta, now time.Time) error {
	return u.record(ctx, domain.ActionClick, campaignID, userHash, pageKey, meta, now)
}

func (u *SponsorUseCase) record(ctx context.Context, action domain.Action, campaignID int64, userHash, pageKey string, meta domain.RequestMeta, now time.Time) error {
	camp, err := u.store.GetCampaign(ctx, campaignID)
	if err != nil {
		return fmt.Errorf("get campaign %d: %w", campaignID, err)
	}
	if camp == nil || !camp.IsLive(now) {
		u.dropBeacon(action, campaignID)
		return nil
	}

	entry := &domain.DeliveryLogEntry{
		CampaignID: campaignID,
		UserHash:   userHash,
		Action:     action,
		PageKey:    pageKey,
		Meta:       meta,
		ShownAt:    now.UTC(),
	}
	if err = u.store.RecordEvent(ctx, entry); err != nil {
		// deleted between lookup and write
		if errors.Is(err, port.ErrCampaignNotFound) {
			u.dropBeacon(action, campaignID)
			return nil
		}
		return fmt.Errorf("record %s: %w", action, err)
	}
	u.metrics.ObserveEvent(string(action))
	return nil
}

func (u *SponsorUseCase) dropBeacon(action domain.Action, campaignID int64) {
	u.logger.Warn("dropping beacon for unavailable campaign",
		slog.String("action", string(action)),
		slog.Int64("campaign_id", campaignID),
	)
	u.metrics.ObserveDroppedBeacon(string(action))
}

// GetStats returns daily rows with CTR and totals for the period.
func (u *SponsorUseCase) GetStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	req.From = domain.Day(req.From)
	req.To = domain.Day(req.To)
	if req.From.After(req.To) {
		return nil, port.ErrInvalidStatsRange
	}
	rows, err := u.store.StatsRange(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("stats range: %w", err)
	}

	resp := &port.StatsResp{
		From:  req.From.Format(time.DateOnly),
		To:    req.To.Format(time.DateOnly),
		Daily: make([]port.StatsRow, 0, len(rows)),
	}
	for _, r := range rows {
		resp.Daily = append(resp.Daily, port.StatsRow{
			Date:        r.Date.Format(time.DateOnly),
			CampaignID:  r.CampaignID,
			Impressions: r.Impressions,
			Clicks:      r.Clicks,
			CTR:         ctr(r.Clicks, r.Impressions),
		})
		resp.Summary.TotalImpressions += r.Impressions
		resp.Summary.TotalClicks += r.Clicks
	}
	resp.Summary.OverallCTR = ctr(resp.Summary.TotalClicks, resp.Summary.TotalImpressions)
	return resp, nil
}

// ctr is the click-through rate in percent, rounded to two decimals.
func ctr(clicks, impressions int64) float64 {
	if impressions == 0 {
		return 0
	}
	return math.Round(float64(clicks)/float64(impressions)*10000) / 100
}
