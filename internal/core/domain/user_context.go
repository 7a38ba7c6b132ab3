package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// maxUserAgentLen bounds the part of the user agent mixed into anonymous
// user hashes.
const maxUserAgentLen = 200

// RequestContext describes who is asking for a listing page. The HTTP layer
// builds it from the request; UserID is set only for authenticated users.
type RequestContext struct {
	UserID     string
	SessionKey string
	UserAgent  string
	ClientIP   string
}

// DeriveUserHash returns a one-way pseudonymous identifier for the viewer.
// Authenticated users hash their id; anonymous users hash session key,
// truncated user agent and client IP.
func DeriveUserHash(rc RequestContext) string {
	var base string
	if rc.UserID != "" {
		base = "user-" + rc.UserID
	} else {
		ua := rc.UserAgent
		if len(ua) > maxUserAgentLen {
			ua = ua[:maxUserAgentLen]
		}
		base = fmt.Sprintf("%s-%s-%s", rc.SessionKey, ua, rc.ClientIP)
	}
	sum := sha256.Sum256([]byte(base))
	return hex.EncodeToString(sum[:])
}

// BuildPageKey encodes route, page number and filter fingerprint into the
// short page context stored on delivery log entries, for example
// "companies:page=2:filters=1a2b3c4d".
func BuildPageKey(route string, f Filters, page int) string {
	path := strings.ReplaceAll(route, "/api/", "")
	path = strings.ReplaceAll(path, "/", "")
	return fmt.Sprintf("%s:page=%d:filters=%s", path, NormalizePage(page), f.Fingerprint()[:8])
}

// NormalizePage maps missing or non-positive page numbers to the first page.
func NormalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}
