package httpadapter

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"whit-sponsors/internal/core/port"
	"whit-sponsors/internal/metrics"
)

// Limiter decides whether a client may send another beacon. A nil Limiter
// disables rate limiting.
type Limiter interface {
	Allow(ctx context.Context, scope, client string) bool
}

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. Routes are registered on a chi.Router for convenient method
// handling.
type Handler struct {
	svc     port.SponsorUseCase
	logger  *slog.Logger
	metrics *metrics.Metrics
	limiter Limiter
	now     func() time.Time
	router  chi.Router
}

// NewHandler creates a handler with all routes configured. m and limiter
// may be nil.
func NewHandler(svc port.SponsorUseCase, logger *slog.Logger, m *metrics.Metrics, limiter Limiter) *Handler {
	h := &Handler{svc: svc, logger: logger, metrics: m, limiter: limiter, now: time.Now}
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(m.HTTPMiddleware)

	r.Get("/healthz", h.handleHealth)
	if m != nil {
		r.Method(http.MethodGet, "/metrics", m.Handler())
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/sponsored", h.handleSponsored)
		r.Group(func(r chi.Router) {
			r.Use(h.rateLimit)
			r.Post("/sponsored/impression", h.handleImpression)
			r.Post("/sponsored/click", h.handleClick)
		})
		r.Get("/stats/overview", h.handleStatsOverview)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}
