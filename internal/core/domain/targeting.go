package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"slices"
	"strings"
)

// Targeting describes where a campaign may be shown. An empty list on a
// dimension matches every value of that dimension.
type Targeting struct {
	Countries        []string `json:"countries" yaml:"countries"`
	Functions        []string `json:"functions" yaml:"functions"`
	WorkEnvironments []string `json:"work_environments" yaml:"work_environments"`
}

// Matches applies the three allow-lists to f. A dimension is skipped when
// either the allow-list is empty or the filter has no value for it.
func (t Targeting) Matches(f Filters) bool {
	if len(t.Countries) > 0 && f.Country != "" && !slices.Contains(t.Countries, f.Country) {
		return false
	}
	if len(t.Functions) > 0 && f.Function != "" && !slices.Contains(t.Functions, f.Function) {
		return false
	}
	if len(t.WorkEnvironments) > 0 && f.WorkEnvironment != "" && !slices.Contains(t.WorkEnvironments, f.WorkEnvironment) {
		return false
	}
	return true
}

// Filters is the filter context of an organic listing request. Only
// Country, Function and WorkEnvironment take part in targeting; Search
// only affects the fingerprint.
type Filters struct {
	Country         string `json:"country,omitempty"`
	Function        string `json:"function,omitempty"`
	WorkEnvironment string `json:"work_environment,omitempty"`
	Search          string `json:"search,omitempty"`
}

// pairs returns the non-empty key/value pairs sorted by key.
func (f Filters) pairs() []string {
	out := make([]string, 0, 4)
	if f.Country != "" {
		out = append(out, "country="+f.Country)
	}
	if f.Function != "" {
		out = append(out, "function="+f.Function)
	}
	if f.Search != "" {
		out = append(out, "search="+f.Search)
	}
	if f.WorkEnvironment != "" {
		out = append(out, "work_environment="+f.WorkEnvironment)
	}
	slices.Sort(out)
	return out
}

// Fingerprint is a stable hex digest of the sorted filter items. Equal
// filter sets always produce the same fingerprint.
func (f Filters) Fingerprint() string {
	sum := sha256.Sum256([]byte(strings.Join(f.pairs(), "&")))
	return hex.EncodeToString(sum[:])
}
