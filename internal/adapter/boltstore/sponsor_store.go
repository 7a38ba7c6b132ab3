package boltstore

import (
	"bytes"
	"cmp"
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	bolt "go.etcd.io/bbolt"

	"whit-sponsors/internal/core/domain"
	"whit-sponsors/internal/core/port"
)

var (
	bucketCampaigns       = []byte("campaigns")
	bucketStatsDaily      = []byte("stats_daily")
	bucketDeliveryLog     = []byte("delivery_log")
	bucketUserImpressions = []byte("user_impressions")
)

const dateKeyLayout = "20060102"

// counters is the stored value of a stats_daily key.
type counters struct {
	Impressions int64 `json:"impressions"`
	Clicks      int64 `json:"clicks"`
}

// SponsorStore implements port.CampaignStore on BoltDB. Bolt allows a
// single writer at a time, so every Update transaction is atomic with
// respect to concurrent events.
//
// Keys:
//
//	campaigns        id                              -> campaign JSON
//	stats_daily      campaign id | yyyymmdd          -> counters JSON
//	delivery_log     sequence                        -> entry JSON
//	user_impressions user hash | 0x00 | unixnano | seq -> campaign id
type SponsorStore struct {
	db *bolt.DB
}

var _ port.CampaignStore = (*SponsorStore)(nil)

// NewSponsorStore creates the buckets if needed and returns the store.
func NewSponsorStore(db *bolt.DB) (*SponsorStore, error) {
	err := db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{bucketCampaigns, bucketStatsDaily, bucketDeliveryLog, bucketUserImpressions} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create sponsor buckets: %w", err)
	}
	return &SponsorStore{db: db}, nil
}

// ListCampaigns returns campaigns matching q ordered by id.
func (s *SponsorStore) ListCampaigns(ctx context.Context, q port.CampaignQuery) ([]domain.Campaign, error) {
	var out []domain.Campaign
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketCampaigns).ForEach(func(_, v []byte) error {
			var c domain.Campaign
			if err := json.Unmarshal(v, &c); err != nil {
				return fmt.Errorf("failed to unmarshal campaign: %w", err)
			}
			if matchesQuery(&c, q) {
				out = append(out, c)
			}
			return nil
		})
	})
	return out, err
}

func matchesQuery(c *domain.Campaign, q port.CampaignQuery) bool {
	if q.Status != nil && c.Status != *q.Status {
		return false
	}
	if q.CompanyID != nil && c.CompanyID != *q.CompanyID {
		return false
	}
	if q.LiveAt != nil && (q.LiveAt.Before(c.StartAt) || q.LiveAt.After(c.EndAt)) {
		return false
	}
	if q.EndedBefore != nil && !c.EndAt.Before(*q.EndedBefore) {
		return false
	}
	return true
}

// GetCampaign returns a campaign by id, or nil when it does not exist.
func (s *SponsorStore) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	var c *domain.Campaign
	err := s.db.View(func(tx *bolt.Tx) error {
		var err error
		c, err = getCampaign(tx, id)
		return err
	})
	return c, err
}

func getCampaign(tx *bolt.Tx, id int64) (*domain.Campaign, error) {
	data := tx.Bucket(bucketCampaigns).Get(itob(uint64(id)))
	if data == nil {
		return nil, nil
	}
	var c domain.Campaign
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal campaign %d: %w", id, err)
	}
	return &c, nil
}

// CreateCampaign stores c under the next id.
func (s *SponsorStore) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketCampaigns)
		seq, err := bucket.NextSequence()
		if err != nil {
			return err
		}
		now := time.Now().UTC()
		c.ID = int64(seq)
		c.CreatedAt, c.UpdatedAt = now, now
		return putCampaign(bucket, c)
	})
}

// UpdateCampaignStatus sets the status of a campaign.
func (s *SponsorStore) UpdateCampaignStatus(ctx context.Context, id int64, status domain.CampaignStatus) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		c, err := getCampaign(tx, id)
		if err != nil {
			return err
		}
		if c == nil {
			return port.ErrCampaignNotFound
		}
		c.Status = status
		c.UpdatedAt = time.Now().UTC()
		return putCampaign(tx.Bucket(bucketCampaigns), c)
	})
}

func putCampaign(bucket *bolt.Bucket, c *domain.Campaign) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal campaign: %w", err)
	}
	return bucket.Put(itob(uint64(c.ID)), data)
}

// DailyStats returns the counters of the given campaigns for day.
func (s *SponsorStore) DailyStats(ctx context.Context, day time.Time, campaignIDs []int64) (map[int64]domain.DailyStats, error) {
	day = domain.Day(day)
	out := make(map[int64]domain.DailyStats, len(campaignIDs))
	err := s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketStatsDaily)
		for _, id := range campaignIDs {
			data := bucket.Get(statsKey(id, day))
			if data == nil {
				continue
			}
			var cnt counters
			if err := json.Unmarshal(data, &cnt); err != nil {
				return fmt.Errorf("failed to unmarshal stats: %w", err)
			}
			out[id] = domain.DailyStats{CampaignID: id, Date: day, Impressions: cnt.Impressions, Clicks: cnt.Clicks}
		}
		return nil
	})
	return out, err
}

// RecentImpressions returns the distinct campaigns shown to userHash at or
// after since.
func (s *SponsorStore) RecentImpressions(ctx context.Context, userHash string, since time.Time) ([]int64, error) {
	prefix := append([]byte(userHash), 0)
	var ids []int64
	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(bucketUserImpressions).Cursor()
		for k, v := c.Seek(append(slices.Clip(prefix), itob(unixNano(since))...)); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
			id := int64(binary.BigEndian.Uint64(v))
			if !slices.Contains(ids, id) {
				ids = append(ids, id)
			}
		}
		return nil
	})
	return ids, err
}

// RecordEvent appends the entry and increments the day's counter.
func (s *SponsorStore) RecordEvent(ctx context.Context, entry *domain.DeliveryLogEntry) error {
	if entry.Action != domain.ActionImpression && entry.Action != domain.ActionClick {
		return fmt.Errorf("unknown action %q", entry.Action)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		c, err := getCampaign(tx, entry.CampaignID)
		if err != nil {
			return err
		}
		if c == nil {
			return port.ErrCampaignNotFound
		}

		logBucket := tx.Bucket(bucketDeliveryLog)
		seq, err := logBucket.NextSequence()
		if err != nil {
			return err
		}
		entry.ID = int64(seq)
		data, err := json.Marshal(entry)
		if err != nil {
			return fmt.Errorf("failed to marshal entry: %w", err)
		}
		if err = logBucket.Put(itob(seq), data); err != nil {
			return err
		}

		if entry.Action == domain.ActionImpression {
			key := append([]byte(entry.UserHash), 0)
			key = append(key, itob(unixNano(entry.ShownAt))...)
			key = append(key, itob(seq)...)
			if err = tx.Bucket(bucketUserImpressions).Put(key, itob(uint64(entry.CampaignID))); err != nil {
				return err
			}
		}

		statsBucket := tx.Bucket(bucketStatsDaily)
		key := statsKey(entry.CampaignID, domain.Day(entry.ShownAt))
		var cnt counters
		if existing := statsBucket.Get(key); existing != nil {
			if err = json.Unmarshal(existing, &cnt); err != nil {
				return fmt.Errorf("failed to unmarshal stats: %w", err)
			}
		}
		if entry.Action == domain.ActionImpression {
			cnt.Impressions++
		} else {
			cnt.Clicks++
		}
		data, err = json.Marshal(cnt)
		if err != nil {
			return err
		}
		return statsBucket.Put(key, data)
	})
}

// StatsRange returns daily rows in the inclusive period ordered by date
// then campaign.
func (s *SponsorStore) StatsRange(ctx context.Context, req port.StatsReq) ([]domain.DailyStats, error) {
	from, to := domain.Day(req.From), domain.Day(req.To)
	var out []domain.DailyStats
	err := s.db.View(func(tx *bolt.Tx) error {
		companies := map[int64]int64{}
		return tx.Bucket(bucketStatsDaily).ForEach(func(k, v []byte) error {
			id, day, err := parseStatsKey(k)
			if err != nil {
				return err
			}
			if day.Before(from) || day.After(to) {
				return nil
			}
			if req.CampaignID != nil && id != *req.CampaignID {
				return nil
			}
			if req.CompanyID != nil {
				company, ok := companies[id]
				if !ok {
					c, err := getCampaign(tx, id)
					if err != nil {
						return err
					}
					if c != nil {
						company = c.CompanyID
					}
					companies[id] = company
				}
				if company != *req.CompanyID {
					return nil
				}
			}
			var cnt counters
			if err := json.Unmarshal(v, &cnt); err != nil {
				return fmt.Errorf("failed to unmarshal stats: %w", err)
			}
			out = append(out, domain.DailyStats{CampaignID: id, Date: day, Impressions: cnt.Impressions, Clicks: cnt.Clicks})
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	slices.SortFunc(out, func(a, b domain.DailyStats) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		return cmp.Compare(a.CampaignID, b.CampaignID)
	})
	return out, nil
}

func statsKey(campaignID int64, day time.Time) []byte {
	return append(itob(uint64(campaignID)), day.Format(dateKeyLayout)...)
}

func parseStatsKey(k []byte) (int64, time.Time, error) {
	if len(k) != 8+len(dateKeyLayout) {
		return 0, time.Time{}, fmt.Errorf("malformed stats key %x", k)
	}
	day, err := time.Parse(dateKeyLayout, string(k[8:]))
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("malformed stats key %x: %w", k, err)
	}
	return int64(binary.BigEndian.Uint64(k[:8])), day, nil
}

func itob(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}

// unixNano clamps pre-epoch times to zero so keys stay ordered.
func unixNano(t time.Time) uint64 {
	n := t.UnixNano()
	if n < 0 {
		return 0
	}
	return uint64(n)
}
