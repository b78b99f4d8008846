package port

import (
	"context"

	"github.com/shopspring/decimal"

	"adpilot/internal/core/domain"
)

// LaunchRequest carries everything the full creation protocol needs.
type LaunchRequest struct {
	AccountID   string
	AccessToken string
	PageID      string
	// InstagramAccountID is needed only when the post fallback creative is
	// built from an Instagram media id.
	InstagramAccountID string
	Platform           domain.Platform
	Name               string
	Objective          string
	DailyBudget        decimal.Decimal
	Targeting          domain.CampaignTargeting
	PostID             string
	LinkURL            string
	Message            string
}

// LaunchResult lists the external ids created by a launch. Activated is false
// when at least one status flip failed; the resources still exist paused.
type LaunchResult struct {
	CampaignID string
	AdSetID    string
	CreativeID string
	AdID       string
	Activated  bool
}

// BoostRequest is the degraded single-call promotion used without an ad account.
type BoostRequest struct {
	AccessToken string
	PostID      string
	DailyBudget decimal.Decimal
	Targeting   domain.CampaignTargeting
}

// AdPlatform is the outbound port to the external advertising platform.
type AdPlatform interface {
	// ValidateToken probes the token's identity. It never returns an error;
	// any failure means the token is unusable.
	ValidateToken(ctx context.Context, token string) bool
	// Launch runs campaign, ad set, creative and ad creation followed by
	// activation, compensating already-created resources on failure.
	Launch(ctx context.Context, req LaunchRequest) (*LaunchResult, error)
	// Boost promotes an existing post with a single call.
	Boost(ctx context.Context, req BoostRequest) (string, error)
	// Insights returns campaign-level rows for the first preset that yields
	// data, together with that preset. Empty rows and "" mean no data yet.
	Insights(ctx context.Context, accountID, token string, presets []string) ([]domain.InsightRow, string, error)
	// AccountSpend returns the account-level amount spent.
	AccountSpend(ctx context.Context, accountID, token string) (decimal.Decimal, error)
}

// GeoCache stores resolved location keys. Misses and backend failures both
// report ok == false.
type GeoCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string)
}

// GeoResolver maps a city and state onto the platform's location key. It
// always returns a usable key, falling back to a default.
type GeoResolver interface {
	Resolve(ctx context.Context, city, state, token string) string
}
