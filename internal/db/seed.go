package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DemoTenant is the tenant created by Seed.
const DemoTenant = "demo-tenant"

// Seed inserts a demo tenant: one active campaign per channel on the default
// policy, a connected integration without an ad account (boost path) and one
// published post. Existing rows are left untouched.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	now := time.Now().UTC()
	end := now.AddDate(0, 0, 7)

	for _, platform := range []string{"facebook", "instagram"} {
		// Deterministic ids keep repeated seeding idempotent.
		id := uuid.NewSHA1(uuid.NameSpaceOID, []byte(DemoTenant+"/"+platform))
		name := fmt.Sprintf("Demo %s Promo", platform)
		_, err := db.Exec(ctx, `INSERT INTO ad_campaigns
    (id, tenant_id, name, platform, objective, daily_budget, business_hours_start, business_hours_end,
     targeting_city, targeting_state, targeting_radius, age_min, age_max, start_date, end_date, status)
VALUES ($1,$2,$3,$4,'OUTCOME_TRAFFIC',25,8,18,'Nashville','Tennessee',25,25,65,$5,$6,'active')
ON CONFLICT DO NOTHING`, id, DemoTenant, name, platform, now, end)
		if err != nil {
			return fmt.Errorf("seed %s campaign: %w", platform, err)
		}
	}

	_, err := db.Exec(ctx, `INSERT INTO meta_integrations
    (tenant_id, facebook_connected, facebook_page_access_token, facebook_page_id, instagram_account_id, ad_account_id)
VALUES ($1, TRUE, 'demo-page-token', 'demo-page', 'demo-ig', NULL)
ON CONFLICT DO NOTHING`, DemoTenant)
	if err != nil {
		return fmt.Errorf("seed integration: %w", err)
	}

	_, err = db.Exec(ctx, `INSERT INTO scheduled_posts
    (id, tenant_id, status, content, link_url, facebook_post_id, instagram_media_id, published_at)
VALUES ('demo-post-1', $1, 'published', 'Fall special: 15% off exterior painting', 'https://example.com/fall',
        'demo-page_1001', '17900000000000001', $2)
ON CONFLICT DO NOTHING`, DemoTenant, now.Add(-time.Hour))
	if err != nil {
		return fmt.Errorf("seed post: %w", err)
	}
	return nil
}
