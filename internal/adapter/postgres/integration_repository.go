package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adpilot/internal/core/domain"
)

// IntegrationRepository reads tenant credentials for the ad platform.
type IntegrationRepository struct {
	pool *pgxpool.Pool
}

func NewIntegrationRepository(pool *pgxpool.Pool) *IntegrationRepository {
	return &IntegrationRepository{pool: pool}
}

// GetMetaIntegration returns the tenant's integration, or nil when none is
// stored. Missing credential columns read as empty strings.
func (r *IntegrationRepository) GetMetaIntegration(ctx context.Context, tenantID string) (*domain.MetaIntegration, error) {
	var m domain.MetaIntegration
	err := r.pool.QueryRow(ctx, `SELECT tenant_id,
            facebook_connected,
            COALESCE(facebook_page_access_token, ''),
            COALESCE(facebook_page_id, ''),
            COALESCE(instagram_account_id, ''),
            COALESCE(ad_account_id, '')
        FROM meta_integrations
        WHERE tenant_id = $1`, tenantID).
		Scan(&m.TenantID, &m.FacebookConnected, &m.FacebookPageAccessToken, &m.FacebookPageID, &m.InstagramAccountID, &m.AdAccountID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Upsert stores the integration, replacing an existing row for the tenant.
func (r *IntegrationRepository) Upsert(ctx context.Context, m domain.MetaIntegration) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO meta_integrations
    (tenant_id, facebook_connected, facebook_page_access_token, facebook_page_id, instagram_account_id, ad_account_id)
VALUES ($1,$2,$3,$4,$5,$6)
ON CONFLICT (tenant_id) DO UPDATE SET
    facebook_connected = EXCLUDED.facebook_connected,
    facebook_page_access_token = EXCLUDED.facebook_page_access_token,
    facebook_page_id = EXCLUDED.facebook_page_id,
    instagram_account_id = EXCLUDED.instagram_account_id,
    ad_account_id = EXCLUDED.ad_account_id`,
		m.TenantID, m.FacebookConnected, m.FacebookPageAccessToken, m.FacebookPageID, m.InstagramAccountID, m.AdAccountID)
	return err
}
