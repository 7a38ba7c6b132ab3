package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"whit-sponsors/internal/core/domain"
	"whit-sponsors/internal/core/port"
)

// foreignKeyViolation is the SQLSTATE raised when a delivery event names a
// campaign that no longer exists.
const foreignKeyViolation = "23503"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var campaignColumns = []string{
	"id",
	"company_id",
	"name",
	"status",
	"start_at",
	"end_at",
	"priority",
	"weight",
	"daily_impression_cap",
	"daily_click_cap",
	"pacing",
	"targeting_countries",
	"targeting_functions",
	"targeting_work_env",
	"created_at",
	"updated_at",
}

// SponsorRepository implements port.CampaignStore using pgxpool for
// PostgreSQL.
type SponsorRepository struct {
	pool *pgxpool.Pool
}

var _ port.CampaignStore = (*SponsorRepository)(nil)

// NewSponsorRepository returns a new repository instance.
func NewSponsorRepository(pool *pgxpool.Pool) *SponsorRepository {
	return &SponsorRepository{pool: pool}
}

// ListCampaigns returns campaigns matching q ordered by id.
func (r *SponsorRepository) ListCampaigns(ctx context.Context, q port.CampaignQuery) ([]domain.Campaign, error) {
	b := psql.Select(campaignColumns...).From("sponsor_campaigns").OrderBy("id")
	if q.Status != nil {
		b = b.Where(sq.Eq{"status": string(*q.Status)})
	}
	if q.CompanyID != nil {
		b = b.Where(sq.Eq{"company_id": *q.CompanyID})
	}
	if q.LiveAt != nil {
		b = b.Where(sq.LtOrEq{"start_at": *q.LiveAt}).Where(sq.GtOrEq{"end_at": *q.LiveAt})
	}
	if q.EndedBefore != nil {
		b = b.Where(sq.Lt{"end_at": *q.EndedBefore})
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build campaign query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query campaigns: %w", err)
	}
	campaigns, err := pgx.CollectRows(rows, scanCampaign)
	if err != nil {
		return nil, fmt.Errorf("scan campaigns: %w", err)
	}
	return campaigns, nil
}

// GetCampaign returns a campaign by id.
func (r *SponsorRepository) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	query, args, err := psql.Select(campaignColumns...).From("sponsor_campaigns").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build campaign query: %w", err)
	}
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query campaign: %w", err)
	}
	c, err := pgx.CollectExactlyOneRow(rows, scanCampaign)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan campaign: %w", err)
	}
	return &c, nil
}

// CreateCampaign inserts c and fills in its id and timestamps.
func (r *SponsorRepository) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO sponsor_campaigns (company_id, name, status, start_at, end_at, priority, weight,
		       daily_impression_cap, daily_click_cap, pacing,
		       targeting_countries, targeting_functions, targeting_work_env)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at, updated_at
	`, c.CompanyID, c.Name, string(c.Status), c.StartAt, c.EndAt, c.Priority, c.Weight,
		c.DailyImpressionCap, c.DailyClickCap, string(c.Pacing),
		nonNil(c.Targeting.Countries), nonNil(c.Targeting.Functions), nonNil(c.Targeting.WorkEnvironments),
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert campaign: %w", err)
	}
	return nil
}

// UpdateCampaignStatus sets the status of a campaign.
func (r *SponsorRepository) UpdateCampaignStatus(ctx context.Context, id int64, status domain.CampaignStatus) error {
	tag, err := r.pool.Exec(ctx, `UPDATE sponsor_campaigns SET status = $1, updated_at = now() WHERE id = $2`, string(status), id)
	if err != nil {
		return fmt.Errorf("update campaign status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return port.ErrCampaignNotFound
	}
	return nil
}

// DailyStats returns the counters of the given campaigns for day.
func (r *SponsorRepository) DailyStats(ctx context.Context, day time.Time, campaignIDs []int64) (map[int64]domain.DailyStats, error) {
	out := make(map[int64]domain.DailyStats, len(campaignIDs))
	if len(campaignIDs) == 0 {
		return out, nil
	}
	query, args, err := psql.
		Select("campaign_id", "date", "impressions", "clicks").
		From("sponsor_stats_daily").
		Where(sq.Eq{"date": domain.Day(day), "campaign_id": campaignIDs}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build stats query: %w", err)
	}
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query daily stats: %w", err)
	}
	stats, err := pgx.CollectRows(rows, scanDailyStats)
	if err != nil {
		return nil, fmt.Errorf("scan daily stats: %w", err)
	}
	for _, s := range stats {
		out[s.CampaignID] = s
	}
	return out, nil
}

// RecentImpressions returns the distinct campaigns shown to userHash since
// the cutoff.
func (r *SponsorRepository) RecentImpressions(ctx context.Context, userHash string, since time.Time) ([]int64, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT DISTINCT campaign_id FROM sponsor_delivery_log
		WHERE user_hash = $1 AND action = $2 AND shown_at >= $3
	`, userHash, string(domain.ActionImpression), since)
	if err != nil {
		return nil, fmt.Errorf("query recent impressions: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("scan recent impressions: %w", err)
	}
	return ids, nil
}

// RecordEvent appends the delivery log entry and bumps the day's counter in
// one transaction. The counter uses INSERT ... ON CONFLICT DO UPDATE so
// concurrent events for the same (campaign, date) never lose an increment.
func (r *SponsorRepository) RecordEvent(ctx context.Context, entry *domain.DeliveryLogEntry) error {
	var impressions, clicks int64
	switch entry.Action {
	case domain.ActionImpression:
		impressions = 1
	case domain.ActionClick:
		clicks = 1
	default:
		return fmt.Errorf("unknown action %q", entry.Action)
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	err = tx.QueryRow(ctx, `
		INSERT INTO sponsor_delivery_log (campaign_id, user_hash, action, page_key, user_agent, ip_address, referrer, shown_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`, entry.CampaignID, entry.UserHash, string(entry.Action), entry.PageKey,
		entry.Meta.UserAgent, entry.Meta.IPAddress, entry.Meta.Referrer, entry.ShownAt,
	).Scan(&entry.ID)
	if err != nil {
		return insertLogError(err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO sponsor_stats_daily (campaign_id, date, impressions, clicks)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (campaign_id, date) DO UPDATE
		SET impressions = sponsor_stats_daily.impressions + EXCLUDED.impressions,
		    clicks = sponsor_stats_daily.clicks + EXCLUDED.clicks
	`, entry.CampaignID, domain.Day(entry.ShownAt), impressions, clicks)
	if err != nil {
		return fmt.Errorf("increment daily stats: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// StatsRange returns daily rows for the inclusive period of req.
func (r *SponsorRepository) StatsRange(ctx context.Context, req port.StatsReq) ([]domain.DailyStats, error) {
	b := psql.
		Select("s.campaign_id", "s.date", "s.impressions", "s.clicks").
		From("sponsor_stats_daily s").
		Join("sponsor_campaigns c ON c.id = s.campaign_id").
		Where(sq.GtOrEq{"s.date": domain.Day(req.From)}).
		Where(sq.LtOrEq{"s.date": domain.Day(req.To)}).
		OrderBy("s.date", "s.campaign_id")
	if req.CompanyID != nil {
		b = b.Where(sq.Eq{"c.company_id": *req.CompanyID})
	}
	if req.CampaignID != nil {
		b = b.Where(sq.Eq{"s.campaign_id": *req.CampaignID})
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build stats query: %w", err)
	}
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query stats range: %w", err)
	}
	stats, err := pgx.CollectRows(rows, scanDailyStats)
	if err != nil {
		return nil, fmt.Errorf("scan stats range: %w", err)
	}
	return stats, nil
}

// insertLogError maps a foreign key violation on the delivery log to
// port.ErrCampaignNotFound.
func insertLogError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
		return port.ErrCampaignNotFound
	}
	return fmt.Errorf("insert delivery log: %w", err)
}

func scanCampaign(row pgx.CollectableRow) (domain.Campaign, error) {
	var (
		c              domain.Campaign
		status, pacing string
	)
	err := row.Scan(
		&c.ID,
		&c.CompanyID,
		&c.Name,
		&status,
		&c.StartAt,
		&c.EndAt,
		&c.Priority,
		&c.Weight,
		&c.DailyImpressionCap,
		&c.DailyClickCap,
		&pacing,
		&c.Targeting.Countries,
		&c.Targeting.Functions,
		&c.Targeting.WorkEnvironments,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	c.Status = domain.CampaignStatus(status)
	c.Pacing = domain.Pacing(pacing)
	return c, err
}

func scanDailyStats(row pgx.CollectableRow) (domain.DailyStats, error) {
	var s domain.DailyStats
	err := row.Scan(&s.CampaignID, &s.Date, &s.Impressions, &s.Clicks)
	return s, err
}

// nonNil keeps empty targeting lists as '{}' rather than NULL.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
