package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"adpilot/internal/core/domain"
)

// CampaignRepository defines the persistence layer for campaign rows. It is
// an outbound port in hexagonal architecture. Every write is a targeted
// update by id or by filter; callers never hold cross-row locks.
type CampaignRepository interface {
	// ListActive returns every campaign in the active state.
	ListActive(ctx context.Context) ([]domain.AdCampaign, error)
	// ListActiveTenants returns the distinct tenants owning at least one
	// active campaign.
	ListActiveTenants(ctx context.Context) ([]string, error)
	// RecordLaunch stores the external id of a successful action, adds amount
	// to spent optimistically and clears errorMessage.
	RecordLaunch(ctx context.Context, id uuid.UUID, metaAdID string, amount decimal.Decimal) error
	// RecordFailure stores the reason of a failed action. Status and spent
	// are left untouched.
	RecordFailure(ctx context.Context, id uuid.UUID, reason string) error
	// ReconcileLedger overwrites the ledger fields of the tenant's active
	// campaigns on the given channel. It returns the number of rows written.
	ReconcileLedger(ctx context.Context, tenantID string, platform domain.Platform, ledger domain.Ledger) (int64, error)
	// ResetDailySpend sets spent to zero on every active campaign.
	ResetDailySpend(ctx context.Context) (int64, error)
	// Rotate marks expired as completed and inserts successor in one
	// transaction.
	Rotate(ctx context.Context, expired uuid.UUID, successor domain.AdCampaign) error
	// SetPerformanceFlag sets or clears the performance flag. A nil flag
	// clears it together with the errorMessage it produced.
	SetPerformanceFlag(ctx context.Context, id uuid.UUID, flag *domain.PerformanceFlag) error
}

// PostRepository reads the content pipeline's published posts.
type PostRepository interface {
	// LatestPublished returns the most recently published post of the tenant,
	// or nil when none exists.
	LatestPublished(ctx context.Context, tenantID string) (*domain.ScheduledPost, error)
}

// IntegrationRepository reads tenant platform credentials.
type IntegrationRepository interface {
	// GetMetaIntegration returns the tenant's integration, or nil when none
	// is configured.
	GetMetaIntegration(ctx context.Context, tenantID string) (*domain.MetaIntegration, error)
}

// CampaignReader serves operator queries over campaign rows.
type CampaignReader interface {
	// Get returns a campaign by id, or nil when it does not exist.
	Get(ctx context.Context, id uuid.UUID) (*domain.AdCampaign, error)
	// ListByTenant returns every campaign of the tenant, newest first,
	// including completed rows.
	ListByTenant(ctx context.Context, tenantID string) ([]domain.AdCampaign, error)
}
