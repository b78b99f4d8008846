package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"adpilot/internal/core/domain"
)

const campaignColumns = `
            id,
            tenant_id,
            name,
            platform,
            objective,
            daily_budget,
            business_hours_start,
            business_hours_end,
            targeting_city,
            targeting_state,
            targeting_radius,
            age_min,
            age_max,
            start_date,
            end_date,
            status,
            spent,
            impressions,
            clicks,
            meta_ad_id,
            error_message,
            performance_flag,
            predecessor_id,
            last_action_at,
            last_sync_at,
            created_at,
            updated_at`

// CampaignRepository implements port.CampaignRepository using pgxpool.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// performanceFlagRecord is the jsonb shape of domain.PerformanceFlag.
type performanceFlagRecord struct {
	AvgDailyImpressions float64 `json:"avgDailyImpressions"`
	CTR                 float64 `json:"ctr"`
	MinDailyImpressions float64 `json:"minDailyImpressions"`
	MinCTR              float64 `json:"minCtr"`
}

func encodeFlag(f *domain.PerformanceFlag) ([]byte, error) {
	if f == nil {
		return nil, nil
	}
	return json.Marshal(performanceFlagRecord(*f))
}

func decodeFlag(raw []byte) (*domain.PerformanceFlag, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var rec performanceFlagRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, err
	}
	f := domain.PerformanceFlag(rec)
	return &f, nil
}

func scanCampaign(row pgx.CollectableRow) (domain.AdCampaign, error) {
	var (
		c       domain.AdCampaign
		flagRaw []byte
	)
	err := row.Scan(
		&c.ID,
		&c.TenantID,
		&c.Name,
		&c.Platform,
		&c.Objective,
		&c.DailyBudget,
		&c.BusinessHoursStart,
		&c.BusinessHoursEnd,
		&c.TargetingCity,
		&c.TargetingState,
		&c.TargetingRadius,
		&c.AgeMin,
		&c.AgeMax,
		&c.StartDate,
		&c.EndDate,
		&c.Status,
		&c.Spent,
		&c.Impressions,
		&c.Clicks,
		&c.MetaAdID,
		&c.ErrorMessage,
		&flagRaw,
		&c.PredecessorID,
		&c.LastActionAt,
		&c.LastSyncAt,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return c, err
	}
	if c.PerformanceFlag, err = decodeFlag(flagRaw); err != nil {
		return c, fmt.Errorf("campaign %s: decode performance flag: %w", c.ID, err)
	}
	return c, nil
}

// ListActive returns every active campaign ordered by tenant and channel.
func (r *CampaignRepository) ListActive(ctx context.Context) ([]domain.AdCampaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT`+campaignColumns+`
        FROM ad_campaigns
        WHERE status = 'active'
        ORDER BY tenant_id, platform, created_at`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanCampaign)
}

// ListActiveTenants returns the distinct tenants with an active campaign.
func (r *CampaignRepository) ListActiveTenants(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT DISTINCT tenant_id FROM ad_campaigns WHERE status = 'active' ORDER BY tenant_id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

// Get returns a campaign by id, or nil when it does not exist.
func (r *CampaignRepository) Get(ctx context.Context, id uuid.UUID) (*domain.AdCampaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT`+campaignColumns+` FROM ad_campaigns WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	c, err := pgx.CollectExactlyOneRow(rows, scanCampaign)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListByTenant returns all campaigns of a tenant, newest first, including
// completed rows.
func (r *CampaignRepository) ListByTenant(ctx context.Context, tenantID string) ([]domain.AdCampaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT`+campaignColumns+`
        FROM ad_campaigns
        WHERE tenant_id = $1
        ORDER BY created_at DESC`, tenantID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanCampaign)
}

// Create inserts a campaign. A zero ID is replaced with a new one.
func (r *CampaignRepository) Create(ctx context.Context, c *domain.AdCampaign) error {
	return insertCampaign(ctx, r.pool, c)
}

type execer interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func insertCampaign(ctx context.Context, db execer, c *domain.AdCampaign) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.Status == "" {
		c.Status = domain.StatusActive
	}
	flag, err := encodeFlag(c.PerformanceFlag)
	if err != nil {
		return fmt.Errorf("encode performance flag: %w", err)
	}
	return db.QueryRow(ctx, `INSERT INTO ad_campaigns
    (id, tenant_id, name, platform, objective, daily_budget, business_hours_start, business_hours_end,
     targeting_city, targeting_state, targeting_radius, age_min, age_max, start_date, end_date,
     status, spent, impressions, clicks, meta_ad_id, error_message, performance_flag, predecessor_id)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23)
RETURNING created_at, updated_at`,
		c.ID, c.TenantID, c.Name, c.Platform, c.Objective, c.Budget(), c.BusinessHoursStart, c.BusinessHoursEnd,
		c.TargetingCity, c.TargetingState, c.TargetingRadius, c.AgeMin, c.AgeMax, c.StartDate, c.EndDate,
		c.Status, c.Spent, c.Impressions, c.Clicks, c.MetaAdID, c.ErrorMessage, flag, c.PredecessorID,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
}

// RecordLaunch stores the external id, adds amount to spent, stamps
// last_action_at and clears the last error. The stamp outlives the next
// reconciliation, which may lower spent again.
func (r *CampaignRepository) RecordLaunch(ctx context.Context, id uuid.UUID, metaAdID string, amount decimal.Decimal) error {
	_, err := r.pool.Exec(ctx, `UPDATE ad_campaigns
        SET spent = spent + $2, meta_ad_id = $3, error_message = NULL, last_action_at = now(), updated_at = now()
        WHERE id = $1`, id, amount, metaAdID)
	return err
}

// RecordFailure stores reason on error_message.
func (r *CampaignRepository) RecordFailure(ctx context.Context, id uuid.UUID, reason string) error {
	_, err := r.pool.Exec(ctx, `UPDATE ad_campaigns SET error_message = $2, updated_at = now() WHERE id = $1`, id, reason)
	return err
}

// ReconcileLedger overwrites the ledger of the tenant's active campaigns on
// platform. Rows are matched on the platform column only. Spent is left
// as is when ledger.KeepSpent is set.
func (r *CampaignRepository) ReconcileLedger(ctx context.Context, tenantID string, platform domain.Platform, ledger domain.Ledger) (int64, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE ad_campaigns
        SET spent = CASE WHEN $7 THEN spent ELSE $3 END,
            impressions = $4, clicks = $5, last_sync_at = $6, updated_at = now()
        WHERE tenant_id = $1
          AND status = 'active'
          AND platform = $2`,
		tenantID, platform, ledger.Spent, ledger.Impressions, ledger.Clicks, ledger.SyncedAt, ledger.KeepSpent)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// ResetDailySpend zeroes spent on every active campaign.
func (r *CampaignRepository) ResetDailySpend(ctx context.Context) (int64, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE ad_campaigns SET spent = 0, updated_at = now() WHERE status = 'active'`)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Rotate completes expired and inserts successor in one transaction. It
// returns domain.ErrCampaignNotActive when expired is no longer active, so
// a row is never rotated twice.
func (r *CampaignRepository) Rotate(ctx context.Context, expired uuid.UUID, successor domain.AdCampaign) error {
	return pgx.BeginTxFunc(ctx, r.pool, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `UPDATE ad_campaigns
            SET status = 'completed', updated_at = now()
            WHERE id = $1 AND status = 'active'`, expired)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("rotate %s: %w", expired, domain.ErrCampaignNotActive)
		}
		if err = insertCampaign(ctx, tx, &successor); err != nil {
			return fmt.Errorf("insert successor: %w", err)
		}
		return nil
	})
}

// SetPerformanceFlag sets the flag and its message, or clears both when flag
// is nil. Clearing leaves an unrelated error message in place.
func (r *CampaignRepository) SetPerformanceFlag(ctx context.Context, id uuid.UUID, flag *domain.PerformanceFlag) error {
	if flag == nil {
		_, err := r.pool.Exec(ctx, `UPDATE ad_campaigns
            SET performance_flag = NULL,
                error_message = CASE WHEN performance_flag IS NOT NULL AND error_message LIKE 'underperforming:%' THEN NULL ELSE error_message END,
                updated_at = now()
            WHERE id = $1`, id)
		return err
	}
	raw, err := encodeFlag(flag)
	if err != nil {
		return fmt.Errorf("encode performance flag: %w", err)
	}
	_, err = r.pool.Exec(ctx, `UPDATE ad_campaigns
        SET performance_flag = $2, error_message = $3, updated_at = now()
        WHERE id = $1`, id, raw, flag.Message())
	return err
}
