package port

import (
	"context"
	"errors"
	"time"

	"whit-sponsors/internal/core/domain"
)

// ErrInvalidStatsRange is returned by GetStats when From is after To.
var ErrInvalidStatsRange = errors.New("invalid stats range")

// SponsorUseCase defines the operations exposed by the sponsor engine to
// the listing layer. It is the primary port into the application domain.
type SponsorUseCase interface {
	// PickSponsoredCampaign returns the campaign to splice into position 1
	// of the organic results, or nil when none is eligible. Errors are
	// store failures only.
	PickSponsoredCampaign(ctx context.Context, filters domain.Filters, userHash string, page int, now time.Time) (*domain.Campaign, error)

	// RecordImpression logs an impression and bumps today's counter. A
	// beacon for an unknown or no longer live campaign is dropped without
	// error.
	RecordImpression(ctx context.Context, campaignID int64, userHash, pageKey string, meta domain.RequestMeta, now time.Time) error

	// RecordClick is RecordImpression for clicks.
	RecordClick(ctx context.Context, campaignID int64, userHash, pageKey string, meta domain.RequestMeta, now time.Time) error

	// GetStats returns daily rows and totals for a period.
	GetStats(ctx context.Context, req StatsReq) (*StatsResp, error)
}

// StatsRow is one (date, campaign) line of a stats report. CTR is a
// percentage.
type StatsRow struct {
	Date        string  `json:"date"`
	CampaignID  int64   `json:"campaign_id"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	CTR         float64 `json:"ctr"`
}

// StatsSummary totals a stats report.
type StatsSummary struct {
	TotalImpressions int64   `json:"total_impressions"`
	TotalClicks      int64   `json:"total_clicks"`
	OverallCTR       float64 `json:"overall_ctr"`
}

// StatsResp contains daily rows and totals for campaigns. It is returned
// by GetStats and encoded as-is by the HTTP layer.
type StatsResp struct {
	From    string       `json:"from"`
	To      string       `json:"to"`
	Daily   []StatsRow   `json:"daily"`
	Summary StatsSummary `json:"summary"`
}
