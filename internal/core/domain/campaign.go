package domain

import (
	"errors"
	"fmt"
	"time"
)

// CampaignStatus is the lifecycle state of a sponsor campaign.
type CampaignStatus string

const (
	StatusDraft     CampaignStatus = "draft"
	StatusActive    CampaignStatus = "active"
	StatusPaused    CampaignStatus = "paused"
	StatusCompleted CampaignStatus = "completed"
)

// Valid reports whether s is one of the known statuses.
func (s CampaignStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusActive, StatusPaused, StatusCompleted:
		return true
	}
	return false
}

// Pacing is recorded on the campaign for future delivery pacing. The
// selector does not act on it.
type Pacing string

const (
	PacingEven Pacing = "even"
	PacingASAP Pacing = "asap"
)

// Campaign represents one paid placement contract for a company. A company
// may own several campaigns but usually only one of them is active.
type Campaign struct {
	ID                 int64
	CompanyID          int64
	Name               string
	Status             CampaignStatus
	StartAt            time.Time
	EndAt              time.Time
	Priority           int64 // higher means more exposure
	Weight             int64 // multiplies priority
	DailyImpressionCap int64
	DailyClickCap      *int64 // nil means no click cap
	Pacing             Pacing
	Targeting          Targeting
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// ErrInvalidCampaign is wrapped by Validate for every rejected field.
var ErrInvalidCampaign = errors.New("invalid campaign")

// Validate checks the invariants an operator-created campaign must satisfy
// before it is stored.
func (c *Campaign) Validate() error {
	switch {
	case c.CompanyID <= 0:
		return fmt.Errorf("%w: company id must be positive", ErrInvalidCampaign)
	case c.Name == "":
		return fmt.Errorf("%w: name is required", ErrInvalidCampaign)
	case !c.Status.Valid():
		return fmt.Errorf("%w: unknown status %q", ErrInvalidCampaign, c.Status)
	case c.Pacing != PacingEven && c.Pacing != PacingASAP:
		return fmt.Errorf("%w: unknown pacing %q", ErrInvalidCampaign, c.Pacing)
	case !c.EndAt.After(c.StartAt):
		return fmt.Errorf("%w: end_at must be after start_at", ErrInvalidCampaign)
	case c.Priority < 1:
		return fmt.Errorf("%w: priority must be at least 1", ErrInvalidCampaign)
	case c.Weight < 1:
		return fmt.Errorf("%w: weight must be at least 1", ErrInvalidCampaign)
	case c.DailyImpressionCap < 1:
		return fmt.Errorf("%w: daily impression cap must be at least 1", ErrInvalidCampaign)
	case c.DailyClickCap != nil && *c.DailyClickCap < 1:
		return fmt.Errorf("%w: daily click cap must be at least 1", ErrInvalidCampaign)
	}
	return nil
}

// IsLive reports whether the campaign is active and now falls within
// [StartAt, EndAt].
func (c *Campaign) IsLive(now time.Time) bool {
	return c.Status == StatusActive && !now.Before(c.StartAt) && !now.After(c.EndAt)
}

// MatchesTargeting reports whether the filter context satisfies every
// non-empty targeting dimension of the campaign.
func (c *Campaign) MatchesTargeting(f Filters) bool {
	return c.Targeting.Matches(f)
}

// UnderDailyCaps reports whether today's counters leave room for another
// delivery.
func (c *Campaign) UnderDailyCaps(today DailyStats) bool {
	if today.Impressions >= c.DailyImpressionCap {
		return false
	}
	if c.DailyClickCap != nil && today.Clicks >= *c.DailyClickCap {
		return false
	}
	return true
}

// Score is (priority × weight) / (1 + impressions today). It decreases as
// the campaign delivers, so under-delivered campaigns catch up.
func (c *Campaign) Score(today DailyStats) float64 {
	return float64(c.Priority*c.Weight) / float64(1+today.Impressions)
}
