package usecase

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	"whit-sponsors/internal/core/domain"
)

// timeBucket keeps a selection stable inside a window. The landing page
// rotates every 30 seconds; deeper pages hold for the hour.
func timeBucket(page int, now time.Time) string {
	now = now.UTC()
	if page == 1 {
		return now.Format("200601021504") + strconv.Itoa(now.Second()/30)
	}
	return now.Format("2006010215")
}

// selectionSeed hashes bucket, user, page and filter fingerprint into the
// two words of a PCG seed.
func selectionSeed(filters domain.Filters, userHash string, page int, now time.Time) (uint64, uint64) {
	data := fmt.Sprintf("%s-%s-%d-%s", timeBucket(page, now), userHash, page, filters.Fingerprint())
	sum := sha256.Sum256([]byte(data))
	return binary.BigEndian.Uint64(sum[:8]), binary.BigEndian.Uint64(sum[8:16])
}

// weightedSelection draws one candidate with probability proportional to
// its score. The generator is local to the call and seeded from the
// inputs, so identical inputs give identical picks.
func weightedSelection(eligible []candidate, filters domain.Filters, userHash string, page int, now time.Time) *candidate {
	if len(eligible) == 0 {
		return nil
	}
	page = domain.NormalizePage(page)
	rng := rand.New(rand.NewPCG(selectionSeed(filters, userHash, page, now)))

	scores := make([]float64, len(eligible))
	var total float64
	for i := range eligible {
		scores[i] = eligible[i].campaign.Score(eligible[i].today)
		total += scores[i]
	}
	// Validate rejects priority or weight below 1, so this only triggers
	// for rows written around it.
	if total <= 0 {
		return &eligible[rng.IntN(len(eligible))]
	}

	target := rng.Float64() * total
	var sum float64
	for i := range eligible {
		sum += scores[i]
		if sum >= target {
			return &eligible[i]
		}
	}
	return &eligible[len(eligible)-1]
}
