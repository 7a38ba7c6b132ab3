package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"whit-sponsors/internal/core/domain"
)

// listingRoute is the organic listing the sponsored slot is spliced into.
const listingRoute = "/api/companies/"

type sponsoredResp struct {
	CampaignID int64  `json:"campaign_id"`
	CompanyID  int64  `json:"company_id"`
	Name       string `json:"name"`
	PageKey    string `json:"page_key"`
	Position   int    `json:"position"`
}

// handleSponsored returns the sponsor for position 1 of a listing page or
// 204 when there is none. A store failure also yields 204 so the listing
// always renders.
func (h *Handler) handleSponsored(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := filtersFromQuery(q)
	page := pageFromQuery(q)

	camp, err := h.svc.PickSponsoredCampaign(r.Context(), filters, userHash(r), page, h.now())
	if err != nil {
		h.logger.Error("pick sponsored campaign error",
			slog.Any("error", err),
			slog.String("request_id", RequestIDFrom(r.Context())))
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if camp == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	resp := sponsoredResp{
		CampaignID: camp.ID,
		CompanyID:  camp.CompanyID,
		Name:       camp.Name,
		PageKey:    domain.BuildPageKey(listingRoute, filters, page),
		Position:   1,
	}
	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
