package usecase

import (
	"context"
	"fmt"
	"slices"
	"time"
)

// applyFatigue removes campaigns the user was shown within the fatigue
// window. When that leaves nothing it retries with the relaxed window, and
// when that also leaves nothing it returns eligible unchanged: some
// sponsor is always shown when one is eligible.
func (u *SponsorUseCase) applyFatigue(ctx context.Context, eligible []candidate, userHash string, now time.Time) ([]candidate, error) {
	if len(eligible) == 0 {
		return eligible, nil
	}
	for _, window := range []time.Duration{u.fatigueWindow, u.relaxedWindow} {
		seen, err := u.store.RecentImpressions(ctx, userHash, now.Add(-window))
		if err != nil {
			return nil, fmt.Errorf("recent impressions: %w", err)
		}
		if filtered := excludeSeen(eligible, seen); len(filtered) > 0 {
			return filtered, nil
		}
	}
	return eligible, nil
}

func excludeSeen(eligible []candidate, seen []int64) []candidate {
	if len(seen) == 0 {
		return eligible
	}
	out := make([]candidate, 0, len(eligible))
	for _, c := range eligible {
		if !slices.Contains(seen, c.campaign.ID) {
			out = append(out, c)
		}
	}
	return out
}
