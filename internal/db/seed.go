package db

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"whit-sponsors/internal/core/domain"
	"whit-sponsors/internal/core/port"
)

// campaignFile is the YAML layout accepted by LoadCampaigns:
//
//	campaigns:
//	  - company_id: 12
//	    name: Spring hiring
//	    status: active
//	    start_at: 2026-03-01T00:00:00Z
//	    end_at: 2026-04-01T00:00:00Z
//	    priority: 2
//	    weight: 1
//	    daily_impression_cap: 1000
//	    targeting:
//	      countries: [US, CA]
type campaignFile struct {
	Campaigns []campaignSpec `yaml:"campaigns"`
}

type campaignSpec struct {
	CompanyID          int64            `yaml:"company_id"`
	Name               string           `yaml:"name"`
	Status             string           `yaml:"status"`
	StartAt            time.Time        `yaml:"start_at"`
	EndAt              time.Time        `yaml:"end_at"`
	Priority           int64            `yaml:"priority"`
	Weight             int64            `yaml:"weight"`
	DailyImpressionCap int64            `yaml:"daily_impression_cap"`
	DailyClickCap      *int64           `yaml:"daily_click_cap"`
	Pacing             string           `yaml:"pacing"`
	Targeting          domain.Targeting `yaml:"targeting"`
}

func (s campaignSpec) toDomain() domain.Campaign {
	c := domain.Campaign{
		CompanyID:          s.CompanyID,
		Name:               s.Name,
		Status:             domain.CampaignStatus(s.Status),
		StartAt:            s.StartAt.UTC(),
		EndAt:              s.EndAt.UTC(),
		Priority:           s.Priority,
		Weight:             s.Weight,
		DailyImpressionCap: s.DailyImpressionCap,
		DailyClickCap:      s.DailyClickCap,
		Pacing:             domain.Pacing(s.Pacing),
		Targeting:          s.Targeting,
	}
	if c.Status == "" {
		c.Status = domain.StatusDraft
	}
	if c.Pacing == "" {
		c.Pacing = domain.PacingEven
	}
	if c.Priority == 0 {
		c.Priority = 1
	}
	if c.Weight == 0 {
		c.Weight = 1
	}
	return c
}

// LoadCampaigns decodes a campaign file and validates every entry. All
// validation errors are reported together.
func LoadCampaigns(r io.Reader) ([]domain.Campaign, error) {
	var file campaignFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode campaigns: %w", err)
	}

	out := make([]domain.Campaign, 0, len(file.Campaigns))
	var errs []error
	for i, spec := range file.Campaigns {
		c := spec.toDomain()
		if err := c.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("campaign #%d (%s): %w", i+1, spec.Name, err))
			continue
		}
		out = append(out, c)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return out, nil
}

// Seed stores campaigns in order and returns them with their assigned ids.
func Seed(ctx context.Context, store port.CampaignStore, campaigns []domain.Campaign) ([]domain.Campaign, error) {
	for i := range campaigns {
		if err := store.CreateCampaign(ctx, &campaigns[i]); err != nil {
			return campaigns[:i], fmt.Errorf("create campaign %q: %w", campaigns[i].Name, err)
		}
	}
	return campaigns, nil
}
