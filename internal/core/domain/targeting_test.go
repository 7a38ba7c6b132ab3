package domain

import "testing"

func TestTargetingMatches(t *testing.T) {
	tgt := Targeting{
		Countries:        []string{"US", "CA"},
		Functions:        []string{"engineering"},
		WorkEnvironments: nil,
	}
	tests := []struct {
		name    string
		filters Filters
		want    bool
	}{
		{"no filters", Filters{}, true},
		{"country allowed", Filters{Country: "CA"}, true},
		{"country rejected", Filters{Country: "DE"}, false},
		{"function rejected", Filters{Country: "US", Function: "sales"}, false},
		{"open dimension", Filters{Country: "US", WorkEnvironment: "remote"}, true},
		{"search ignored", Filters{Search: "anything"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tgt.Matches(tt.filters); got != tt.want {
				t.Fatalf("Matches(%+v) = %v, want %v", tt.filters, got, tt.want)
			}
		})
	}

	if !(Targeting{}).Matches(Filters{Country: "DE", Function: "x", WorkEnvironment: "y"}) {
		t.Fatal("empty targeting matches everything")
	}
}

func TestFiltersFingerprint(t *testing.T) {
	a := Filters{Country: "US", Function: "engineering"}
	b := Filters{Function: "engineering", Country: "US"}
	if a.Fingerprint() != b.Fingerprint() {
		t.Fatal("fingerprint must not depend on field order")
	}
	if a.Fingerprint() == (Filters{Country: "US"}).Fingerprint() {
		t.Fatal("different filters must differ")
	}
	if a.Fingerprint() == (Filters{Country: "US", Function: "engineering", Search: "go"}).Fingerprint() {
		t.Fatal("search is part of the fingerprint")
	}
	if len(a.Fingerprint()) != 64 {
		t.Fatalf("unexpected fingerprint length %d", len(a.Fingerprint()))
	}
}
