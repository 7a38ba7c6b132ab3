package domain

import (
	"time"
)

// Action is the kind of delivery event.
type Action string

const (
	ActionImpression Action = "impression"
	ActionClick      Action = "click"
)

// RequestMeta is the request metadata stored with every delivery event.
type RequestMeta struct {
	UserAgent string `json:"user_agent,omitempty"`
	IPAddress string `json:"ip_address,omitempty"`
	Referrer  string `json:"referrer,omitempty"`
}

// DeliveryLogEntry is an append-only record of an impression or click. It
// is only read back to enforce anti-fatigue.
type DeliveryLogEntry struct {
	ID         int64       `json:"id"`
	CampaignID int64       `json:"campaign_id"`
	UserHash   string      `json:"user_hash"`
	Action     Action      `json:"action"`
	PageKey    string      `json:"page_key"`
	Meta       RequestMeta `json:"meta"`
	ShownAt    time.Time   `json:"shown_at"`
}

// DailyStats holds the counters of one campaign for one calendar date.
type DailyStats struct {
	CampaignID  int64     `json:"campaign_id"`
	Date        time.Time `json:"date"`
	Impressions int64     `json:"impressions"`
	Clicks      int64     `json:"clicks"`
}

// Day truncates t to its UTC calendar date. All daily counters are keyed
// by this value.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
