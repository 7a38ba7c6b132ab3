package httpadapter

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"

	"whit-sponsors/internal/adapter/boltstore"
	"whit-sponsors/internal/adapter/usecase"
	"whit-sponsors/internal/core/domain"
	"whit-sponsors/internal/core/port"
	"whit-sponsors/internal/metrics"
)

var testNow = time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)

type denyLimiter struct{ calls int }

func (l *denyLimiter) Allow(context.Context, string, string) bool {
	l.calls++
	return false
}

type env struct {
	db      *bolt.DB
	store   *boltstore.SponsorStore
	handler *Handler
}

func newEnv(t *testing.T, limiter Limiter) *env {
	t.Helper()
	db, err := bolt.Open(filepath.Join(t.TempDir(), "sponsors.db"), 0600, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store, err := boltstore.NewSponsorStore(db)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := metrics.New()
	h := NewHandler(usecase.NewSponsorUseCase(store, logger, m), logger, m, limiter)
	h.now = func() time.Time { return testNow }
	return &env{db: db, store: store, handler: h}
}

func (e *env) campaign(t *testing.T, countries ...string) domain.Campaign {
	t.Helper()
	return e.targeted(t, "Acme", domain.Targeting{Countries: countries})
}

func (e *env) targeted(t *testing.T, name string, targeting domain.Targeting) domain.Campaign {
	t.Helper()
	c := domain.Campaign{
		CompanyID:          7,
		Name:               name,
		Status:             domain.StatusActive,
		StartAt:            testNow.Add(-24 * time.Hour),
		EndAt:              testNow.Add(24 * time.Hour),
		Priority:           1,
		Weight:             1,
		DailyImpressionCap: 100,
		Pacing:             domain.PacingEven,
		Targeting:          targeting,
	}
	require.NoError(t, e.store.CreateCampaign(context.Background(), &c))
	return c
}

func (e *env) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.handler.Router().ServeHTTP(rec, req)
	return rec
}

func beacon(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestSponsoredNoCampaigns(t *testing.T) {
	e := newEnv(t, nil)

	rec := e.do(httptest.NewRequest(http.MethodGet, "/api/v1/sponsored", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))
}

func TestSponsoredServesTargetedCampaign(t *testing.T) {
	e := newEnv(t, nil)
	c := e.campaign(t, "US")

	rec := e.do(httptest.NewRequest(http.MethodGet, "/api/v1/sponsored?country=US&page=2", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp sponsoredResp
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, c.ID, resp.CampaignID)
	assert.Equal(t, int64(7), resp.CompanyID)
	assert.Equal(t, 1, resp.Position)
	assert.Equal(t, domain.BuildPageKey(listingRoute, domain.Filters{Country: "US"}, 2), resp.PageKey)
	assert.True(t, strings.HasPrefix(resp.PageKey, "companies:page=2:filters="))

	rec = e.do(httptest.NewRequest(http.MethodGet, "/api/v1/sponsored?country=DE", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestSponsoredListingFilterKeys(t *testing.T) {
	e := newEnv(t, nil)
	c := e.targeted(t, "SalesOnly", domain.Targeting{
		Functions:        []string{"Sales"},
		WorkEnvironments: []string{"remote"},
	})

	for q, want := range map[string]int{
		"functions=Engineering":                    http.StatusNoContent,
		"function=Engineering":                     http.StatusNoContent,
		"functions=Sales&work_environments=onsite": http.StatusNoContent,
		"functions=Sales&work_environments=remote": http.StatusOK,
		"functions=Sales":                          http.StatusOK,
	} {
		rec := e.do(httptest.NewRequest(http.MethodGet, "/api/v1/sponsored?"+q, nil))
		assert.Equal(t, want, rec.Code, q)
	}

	rec := e.do(httptest.NewRequest(http.MethodGet, "/api/v1/sponsored?functions=Sales", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var resp sponsoredResp
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, c.ID, resp.CampaignID)
	assert.Equal(t, domain.BuildPageKey(listingRoute, domain.Filters{Function: "Sales"}, 1), resp.PageKey)
}

func TestSponsoredStoreFailureIsNoContent(t *testing.T) {
	e := newEnv(t, nil)
	e.campaign(t)
	require.NoError(t, e.db.Close())

	rec := e.do(httptest.NewRequest(http.MethodGet, "/api/v1/sponsored", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestImpressionBeaconUpdatesStats(t *testing.T) {
	e := newEnv(t, nil)
	c := e.campaign(t)

	body := `{"campaign_id":` + itoa(c.ID) + `,"page_url":"https://example.com/api/companies/?page=1","filters":{"country":"US"},"page_number":1}`
	rec := e.do(beacon("/api/v1/sponsored/impression", body))
	require.Equal(t, http.StatusNoContent, rec.Code)
	rec = e.do(beacon("/api/v1/sponsored/click", body))
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = e.do(httptest.NewRequest(http.MethodGet, "/api/v1/stats/overview?from=2026-10-15&to=2026-10-15", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var stats port.StatsResp
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&stats))
	require.Len(t, stats.Daily, 1)
	assert.Equal(t, "2026-10-15", stats.Daily[0].Date)
	assert.Equal(t, int64(1), stats.Summary.TotalImpressions)
	assert.Equal(t, int64(1), stats.Summary.TotalClicks)
	assert.Equal(t, 100.0, stats.Summary.OverallCTR)
}

func TestBeaconAcceptsTrackerPayload(t *testing.T) {
	e := newEnv(t, nil)
	c := e.campaign(t)

	body := `{"campaign_id":"` + itoa(c.ID) + `","page_url":"https://example.com/companies?functions=Sales&page=1",` +
		`"filters":{"country":"US","functions":"Sales"},"page_number":1,"is_above_fold":true}`
	rec := e.do(beacon("/api/v1/sponsored/impression", body))
	require.Equal(t, http.StatusNoContent, rec.Code)
	rec = e.do(beacon("/api/v1/sponsored/click", body))
	require.Equal(t, http.StatusNoContent, rec.Code)

	stats, err := e.store.DailyStats(context.Background(), testNow, []int64{c.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats[c.ID].Impressions)
	assert.Equal(t, int64(1), stats[c.ID].Clicks)
}

func TestBeaconPageKeyMatchesListing(t *testing.T) {
	var plural, singular beaconReq
	require.NoError(t, json.Unmarshal([]byte(`{"campaign_id":1,"page_url":"https://example.com/api/companies/?page=2","filters":{"functions":"Sales","work_environments":"remote"},"page_number":2}`), &plural))
	require.NoError(t, json.Unmarshal([]byte(`{"campaign_id":1,"page_url":"https://example.com/api/companies/","filters":{"function":"Sales","work_environment":"remote"},"page_number":2}`), &singular))

	want := domain.BuildPageKey(listingRoute, domain.Filters{Function: "Sales", WorkEnvironment: "remote"}, 2)
	assert.Equal(t, want, plural.pageKey())
	assert.Equal(t, want, singular.pageKey())
}

func TestCampaignIDDecoding(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{in: `5`, want: 5},
		{in: `"5"`, want: 5},
		{in: `" 5"`, wantErr: true},
		{in: `"abc"`, wantErr: true},
		{in: `5.5`, wantErr: true},
		{in: `null`, want: 0},
	}
	for _, tt := range tests {
		var id campaignID
		err := json.Unmarshal([]byte(tt.in), &id)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, int64(id), tt.in)
	}
}

func TestBeaconValidation(t *testing.T) {
	e := newEnv(t, nil)

	rec := e.do(beacon("/api/v1/sponsored/impression", "{"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = e.do(beacon("/api/v1/sponsored/click", `{"page_number":1}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// unknown campaigns are dropped quietly
	rec = e.do(beacon("/api/v1/sponsored/impression", `{"campaign_id":404}`))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestBeaconStoreFailure(t *testing.T) {
	e := newEnv(t, nil)
	c := e.campaign(t)
	require.NoError(t, e.db.Close())

	rec := e.do(beacon("/api/v1/sponsored/impression", `{"campaign_id":`+itoa(c.ID)+`}`))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestBeaconRateLimited(t *testing.T) {
	limiter := &denyLimiter{}
	e := newEnv(t, limiter)

	rec := e.do(beacon("/api/v1/sponsored/impression", `{"campaign_id":1}`))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, 1, limiter.calls)

	// selection is not rate limited
	rec = e.do(httptest.NewRequest(http.MethodGet, "/api/v1/sponsored", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 1, limiter.calls)
}

func TestStatsOverviewValidation(t *testing.T) {
	e := newEnv(t, nil)

	for _, q := range []string{"from=yesterday", "to=2026/10/15", "company_id=x", "campaign_id=1.5", "from=2026-10-16&to=2026-10-15"} {
		rec := e.do(httptest.NewRequest(http.MethodGet, "/api/v1/stats/overview?"+q, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, q)
	}

	rec := e.do(httptest.NewRequest(http.MethodGet, "/api/v1/stats/overview", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var stats port.StatsResp
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&stats))
	assert.Equal(t, "2026-09-15", stats.From)
	assert.Equal(t, "2026-10-15", stats.To)
}

func TestRequestIDPropagated(t *testing.T) {
	e := newEnv(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	rec := e.do(req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "abc-123", rec.Header().Get(requestIDHeader))
}

func TestMetricsEndpoint(t *testing.T) {
	e := newEnv(t, nil)
	e.do(httptest.NewRequest(http.MethodGet, "/api/v1/sponsored", nil))

	rec := e.do(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `path="/api/v1/sponsored"`)
}

func TestUserHash(t *testing.T) {
	a := httptest.NewRequest(http.MethodGet, "/", nil)
	a.Header.Set(userIDHeader, "42")
	a.RemoteAddr = "10.0.0.1:5555"
	b := httptest.NewRequest(http.MethodGet, "/", nil)
	b.Header.Set(userIDHeader, "42")
	b.RemoteAddr = "10.0.0.2:5555"
	assert.Equal(t, userHash(a), userHash(b))

	anon := httptest.NewRequest(http.MethodGet, "/", nil)
	anon.AddCookie(&http.Cookie{Name: sessionCookie, Value: "s1"})
	other := httptest.NewRequest(http.MethodGet, "/", nil)
	other.AddCookie(&http.Cookie{Name: sessionCookie, Value: "s2"})
	assert.NotEqual(t, userHash(anon), userHash(other))
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.1:1234"
	assert.Equal(t, "192.0.2.1", clientIP(req))

	req.Header.Set("X-Forwarded-For", " 203.0.113.9 , 10.0.0.1")
	assert.Equal(t, "203.0.113.9", clientIP(req))
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}
