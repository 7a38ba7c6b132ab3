package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Selection outcomes.
const (
	OutcomeServed = "served"
	OutcomeNoFill = "no_fill"
	OutcomeError  = "error"
)

// Metrics holds all Prometheus metrics for the sponsor service. A nil
// *Metrics is valid and records nothing, so tests and CLI commands can
// skip it.
type Metrics struct {
	// Selector
	SelectionsTotal *prometheus.CounterVec

	// Delivery events
	EventsRecordedTotal *prometheus.CounterVec
	BeaconsDroppedTotal *prometheus.CounterVec

	// Lifecycle
	CampaignsCompletedTotal prometheus.Counter

	// API metrics
	APIRequestsTotal          *prometheus.CounterVec
	APIRequestDurationSeconds *prometheus.HistogramVec
	RateLimitExceededTotal    *prometheus.CounterVec

	registry *prometheus.Registry
}

// New creates a new Metrics instance with all metrics registered on a
// private registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		SelectionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sponsors_selections_total",
				Help: "Total number of sponsored slot decisions by outcome",
			},
			[]string{"outcome"},
		),
		EventsRecordedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sponsors_events_recorded_total",
				Help: "Total number of recorded impressions and clicks",
			},
			[]string{"action"},
		),
		BeaconsDroppedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sponsors_beacons_dropped_total",
				Help: "Total number of beacons dropped for unknown or ended campaigns",
			},
			[]string{"action"},
		),
		CampaignsCompletedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "sponsors_campaigns_completed_total",
				Help: "Total number of campaigns moved to completed by the sweeper",
			},
		),
		APIRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sponsors_api_requests_total",
				Help: "Total number of API requests",
			},
			[]string{"method", "path", "status"},
		),
		APIRequestDurationSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sponsors_api_request_duration_seconds",
				Help:    "API request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
			},
			[]string{"method", "path"},
		),
		RateLimitExceededTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sponsors_ratelimit_exceeded_total",
				Help: "Total number of beacons rejected by the rate limiter",
			},
			[]string{"path"},
		),
		registry: reg,
	}

	reg.MustRegister(
		m.SelectionsTotal,
		m.EventsRecordedTotal,
		m.BeaconsDroppedTotal,
		m.CampaignsCompletedTotal,
		m.APIRequestsTotal,
		m.APIRequestDurationSeconds,
		m.RateLimitExceededTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns an HTTP handler exposing the registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveSelection(outcome string) {
	if m == nil {
		return
	}
	m.SelectionsTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveEvent(action string) {
	if m == nil {
		return
	}
	m.EventsRecordedTotal.WithLabelValues(action).Inc()
}

func (m *Metrics) ObserveDroppedBeacon(action string) {
	if m == nil {
		return
	}
	m.BeaconsDroppedTotal.WithLabelValues(action).Inc()
}

func (m *Metrics) ObserveCompleted(n int) {
	if m == nil {
		return
	}
	m.CampaignsCompletedTotal.Add(float64(n))
}

func (m *Metrics) ObserveRateLimited(path string) {
	if m == nil {
		return
	}
	m.RateLimitExceededTotal.WithLabelValues(path).Inc()
}
