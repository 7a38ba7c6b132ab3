package usecase

import (
	"context"
	"fmt"
	"time"

	"whit-sponsors/internal/core/domain"
	"whit-sponsors/internal/core/port"
)

// candidate pairs an eligible campaign with today's counters, fetched once
// and reused for scoring.
type candidate struct {
	campaign domain.Campaign
	today    domain.DailyStats
}

// eligibleCampaigns returns campaigns that are live at now, match the
// filter targeting and are under both daily caps.
func (u *SponsorUseCase) eligibleCampaigns(ctx context.Context, filters domain.Filters, now time.Time) ([]candidate, error) {
	status := domain.StatusActive
	campaigns, err := u.store.ListCampaigns(ctx, port.CampaignQuery{Status: &status, LiveAt: &now})
	if err != nil {
		return nil, fmt.Errorf("list live campaigns: %w", err)
	}

	matched := make([]domain.Campaign, 0, len(campaigns))
	ids := make([]int64, 0, len(campaigns))
	for _, c := range campaigns {
		if !c.IsLive(now) || !c.MatchesTargeting(filters) {
			continue
		}
		matched = append(matched, c)
		ids = append(ids, c.ID)
	}
	if len(matched) == 0 {
		return nil, nil
	}

	stats, err := u.store.DailyStats(ctx, domain.Day(now), ids)
	if err != nil {
		return nil, fmt.Errorf("daily stats: %w", err)
	}

	eligible := make([]candidate, 0, len(matched))
	for _, c := range matched {
		// a missing row means nothing was delivered today
		today := stats[c.ID]
		if !c.UnderDailyCaps(today) {
			continue
		}
		eligible = append(eligible, candidate{campaign: c, today: today})
	}
	return eligible, nil
}
