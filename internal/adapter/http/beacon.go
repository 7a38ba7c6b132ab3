package httpadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"whit-sponsors/internal/core/domain"
)

// beaconReq is sent by the listing page when the sponsored slot is
// rendered or clicked.
type beaconReq struct {
	CampaignID campaignID    `json:"campaign_id"`
	PageURL    string        `json:"page_url"`
	Filters    beaconFilters `json:"filters"`
	PageNumber int           `json:"page_number"`
}

// campaignID accepts both 5 and "5". The tracker reads the id from a
// data attribute and sends it as a string.
type campaignID int64

func (c *campaignID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		data = []byte(s)
	}
	id, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("campaign_id: %w", err)
	}
	*c = campaignID(id)
	return nil
}

// beaconFilters is the filter object of a beacon. The listing uses the
// plural keys; the singular ones are kept for older clients.
type beaconFilters struct {
	Country          string `json:"country"`
	Function         string `json:"function"`
	Functions        string `json:"functions"`
	WorkEnvironment  string `json:"work_environment"`
	WorkEnvironments string `json:"work_environments"`
	Search           string `json:"search"`
}

func (f beaconFilters) toDomain() domain.Filters {
	return domain.Filters{
		Country:         f.Country,
		Function:        firstNonEmpty(f.Functions, f.Function),
		WorkEnvironment: firstNonEmpty(f.WorkEnvironments, f.WorkEnvironment),
		Search:          f.Search,
	}
}

// pageKey builds the page context from the beacon's page URL. Only the
// path takes part; the filters are taken from the body.
func (b beaconReq) pageKey() string {
	route := listingRoute
	if b.PageURL != "" {
		if u, err := url.Parse(b.PageURL); err == nil && u.Path != "" {
			route = u.Path
		}
	}
	return domain.BuildPageKey(route, b.Filters.toDomain(), b.PageNumber)
}

type recordFunc func(ctx context.Context, campaignID int64, userHash, pageKey string, meta domain.RequestMeta, now time.Time) error

func (h *Handler) handleImpression(w http.ResponseWriter, r *http.Request) {
	h.handleBeacon(w, r, domain.ActionImpression, h.svc.RecordImpression)
}

func (h *Handler) handleClick(w http.ResponseWriter, r *http.Request) {
	h.handleBeacon(w, r, domain.ActionClick, h.svc.RecordClick)
}

// handleBeacon decodes a beacon and records it. Beacons for unknown or
// expired campaigns are dropped by the usecase and still answered with
// 204.
func (h *Handler) handleBeacon(w http.ResponseWriter, r *http.Request, action domain.Action, record recordFunc) {
	var req beaconReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	id := int64(req.CampaignID)
	if id <= 0 {
		http.Error(w, "invalid campaign_id", http.StatusBadRequest)
		return
	}

	err := record(r.Context(), id, userHash(r), req.pageKey(), requestMeta(r), h.now())
	if err != nil {
		h.logger.Error("record beacon error",
			slog.String("action", string(action)),
			slog.Int64("campaign_id", id),
			slog.String("request_id", RequestIDFrom(r.Context())),
			slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
