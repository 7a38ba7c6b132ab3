package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"whit-sponsors/internal/core/port"
)

const (
	dateLayout         = time.DateOnly
	defaultStatsPeriod = 30 * 24 * time.Hour
)

// handleStatsOverview returns daily statistics for a period. It accepts
// optional `from` and `to` (YYYY-MM-DD) plus `company_id` and
// `campaign_id` query parameters. If no period is provided, it defaults to
// the last 30 days. Invalid parameters result in HTTP 400.
func (h *Handler) handleStatsOverview(w http.ResponseWriter, r *http.Request) {
	var (
		q   = r.URL.Query()
		now = h.now().UTC()
		req = port.StatsReq{From: now.Add(-defaultStatsPeriod), To: now}
		err error
	)

	if s := q.Get("from"); s != "" {
		if req.From, err = time.Parse(dateLayout, s); err != nil {
			http.Error(w, "invalid 'from' date", http.StatusBadRequest)
			return
		}
	}
	if s := q.Get("to"); s != "" {
		if req.To, err = time.Parse(dateLayout, s); err != nil {
			http.Error(w, "invalid 'to' date", http.StatusBadRequest)
			return
		}
	}
	if req.CompanyID, err = optionalID(q.Get("company_id")); err != nil {
		http.Error(w, "invalid company_id", http.StatusBadRequest)
		return
	}
	if req.CampaignID, err = optionalID(q.Get("campaign_id")); err != nil {
		http.Error(w, "invalid campaign_id", http.StatusBadRequest)
		return
	}

	stats, err := h.svc.GetStats(r.Context(), req)
	if errors.Is(err, port.ErrInvalidStatsRange) {
		http.Error(w, "'from' is after 'to'", http.StatusBadRequest)
		return
	}
	if err != nil {
		h.logger.Error("stats error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(stats); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

func optionalID(s string) (*int64, error) {
	if s == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
