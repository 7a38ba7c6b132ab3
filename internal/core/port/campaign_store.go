package port

import (
	"context"
	"errors"
	"time"

	"whit-sponsors/internal/core/domain"
)

// ErrCampaignNotFound is returned by mutations addressing an unknown
// campaign id.
var ErrCampaignNotFound = errors.New("campaign not found")

// CampaignStore defines the persistence layer for the sponsor engine. It is
// an outbound port in hexagonal architecture. Implementations must be
// concurrency-safe and apply RecordEvent atomically.
type CampaignStore interface {
	// ListCampaigns returns campaigns matching every set field of q,
	// ordered by id. An empty result is not an error.
	ListCampaigns(ctx context.Context, q CampaignQuery) ([]domain.Campaign, error)
	// GetCampaign returns a campaign by id, or nil when it does not exist.
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)
	// CreateCampaign stores c and assigns its ID and timestamps.
	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	// UpdateCampaignStatus changes the status of a campaign.
	UpdateCampaignStatus(ctx context.Context, id int64, status domain.CampaignStatus) error

	// DailyStats returns the counters of the given campaigns for day.
	// Campaigns without a row for that day are absent from the map.
	DailyStats(ctx context.Context, day time.Time, campaignIDs []int64) (map[int64]domain.DailyStats, error)
	// RecentImpressions returns the distinct campaign ids this user was
	// shown at or after since.
	RecentImpressions(ctx context.Context, userHash string, since time.Time) ([]int64, error)
	// RecordEvent appends the log entry and increments the matching
	// counter of the entry's day in a single transaction.
	RecordEvent(ctx context.Context, entry *domain.DeliveryLogEntry) error
	// StatsRange returns daily rows in the inclusive date range of req,
	// ordered by date then campaign id.
	StatsRange(ctx context.Context, req StatsReq) ([]domain.DailyStats, error)
}

// CampaignQuery selects campaigns by status, owning company and schedule.
type CampaignQuery struct {
	Status    *domain.CampaignStatus
	CompanyID *int64
	// LiveAt keeps campaigns with StartAt <= LiveAt <= EndAt.
	LiveAt *time.Time
	// EndedBefore keeps campaigns with EndAt < EndedBefore.
	EndedBefore *time.Time
}

// StatsReq selects daily stats for a period. From and To are calendar
// dates and both are inclusive. CompanyID and CampaignID are optional.
type StatsReq struct {
	From       time.Time
	To         time.Time
	CompanyID  *int64
	CampaignID *int64
}
