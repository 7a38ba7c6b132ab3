package httpadapter

import (
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"whit-sponsors/internal/core/domain"
)

const (
	userIDHeader  = "X-User-ID"
	sessionCookie = "sessionid"
)

// clientIP returns the first X-Forwarded-For entry, falling back to the
// host part of RemoteAddr.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// userHash identifies the viewer. The user id header is set by the
// upstream auth layer; anonymous viewers are keyed by session, user agent
// and IP.
func userHash(r *http.Request) string {
	rc := domain.RequestContext{
		UserID:    r.Header.Get(userIDHeader),
		UserAgent: r.UserAgent(),
		ClientIP:  clientIP(r),
	}
	if c, err := r.Cookie(sessionCookie); err == nil {
		rc.SessionKey = c.Value
	}
	return domain.DeriveUserHash(rc)
}

func requestMeta(r *http.Request) domain.RequestMeta {
	return domain.RequestMeta{
		UserAgent: r.UserAgent(),
		IPAddress: clientIP(r),
		Referrer:  r.Referer(),
	}
}

// filtersFromQuery reads the listing filters. The listing sends the
// plural keys functions and work_environments; the singular forms are
// accepted too.
func filtersFromQuery(q url.Values) domain.Filters {
	return domain.Filters{
		Country:         q.Get("country"),
		Function:        firstNonEmpty(q.Get("functions"), q.Get("function")),
		WorkEnvironment: firstNonEmpty(q.Get("work_environments"), q.Get("work_environment")),
		Search:          q.Get("search"),
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// pageFromQuery parses the page parameter. Missing or malformed values
// mean the first page.
func pageFromQuery(q url.Values) int {
	page, err := strconv.Atoi(q.Get("page"))
	if err != nil {
		return 1
	}
	return domain.NormalizePage(page)
}
