package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
	"adpilot/internal/metrics"
)

// Skip reasons reported by the Runner. They double as metric labels.
const (
	SkipOutsideHours    = "outside_hours"
	SkipNoIntegration   = "no_integration"
	SkipInvalidToken    = "invalid_token"
	SkipBudgetExhausted = "budget_exhausted"
	SkipActedToday      = "acted_today"
	SkipNoPost          = "no_post"
	SkipNoPostID        = "no_post_id"
	SkipLookupFailed    = "lookup_failed"
)

// Action paths.
const (
	PathCampaign = "campaign"
	PathBoost    = "boost"
)

// RunReport summarises one Runner pass.
type RunReport struct {
	Considered int
	Launched   int
	Boosted    int
	Failed     int
	Skipped    map[string]int
}

func (r *RunReport) skip(reason string) {
	if r.Skipped == nil {
		r.Skipped = make(map[string]int)
	}
	r.Skipped[reason]++
	metrics.CampaignSkipsTotal.WithLabelValues(reason).Inc()
}

// tenantState memoises per-tenant lookups within one pass so a tenant with
// several campaigns costs one integration read and one token probe.
type tenantState struct {
	integration *domain.MetaIntegration
	tokenValid  bool
	post        *domain.ScheduledPost
	postLoaded  bool
}

// Runner performs at most one creation-or-boost action per eligible active
// campaign. Campaigns are processed sequentially; a failure is recorded on
// the row and never retried within the pass.
type Runner struct {
	campaigns    port.CampaignRepository
	posts        port.PostRepository
	integrations port.IntegrationRepository
	platform     port.AdPlatform
	geo          port.GeoResolver
	gate         *BusinessHoursGate
	logger       *slog.Logger
}

func NewRunner(
	campaigns port.CampaignRepository,
	posts port.PostRepository,
	integrations port.IntegrationRepository,
	platform port.AdPlatform,
	geo port.GeoResolver,
	gate *BusinessHoursGate,
	logger *slog.Logger,
) *Runner {
	return &Runner{
		campaigns:    campaigns,
		posts:        posts,
		integrations: integrations,
		platform:     platform,
		geo:          geo,
		gate:         gate,
		logger:       logger.With(slog.String("component", "campaign-runner")),
	}
}

// Run walks every active campaign once. Only listing the campaigns can fail
// the pass; per-campaign problems are logged and recorded.
func (r *Runner) Run(ctx context.Context) (RunReport, error) {
	var report RunReport

	active, err := r.campaigns.ListActive(ctx)
	if err != nil {
		return report, fmt.Errorf("list active campaigns: %w", err)
	}

	tenants := make(map[string]*tenantState)
	for _, c := range active {
		if err = ctx.Err(); err != nil {
			return report, err
		}
		report.Considered++

		outcome := r.runCampaign(ctx, c, tenants)
		switch outcome {
		case PathCampaign:
			report.Launched++
		case PathBoost:
			report.Boosted++
		case "failed":
			report.Failed++
		default:
			report.skip(outcome)
		}
	}
	return report, nil
}

func (r *Runner) runCampaign(ctx context.Context, c domain.AdCampaign, tenants map[string]*tenantState) string {
	logger := r.logger.With(
		slog.String("campaign", c.ID.String()),
		slog.String("tenant", c.TenantID),
		slog.String("platform", string(c.Platform)),
	)

	if !r.gate.Allowed(c.BusinessHoursStart, c.BusinessHoursEnd) {
		start, end := r.gate.Window(c.BusinessHoursStart, c.BusinessHoursEnd)
		logger.Info("outside campaign hours, skipping", slog.Int("start", start), slog.Int("end", end))
		return SkipOutsideHours
	}

	state, reason := r.tenant(ctx, logger, c.TenantID, tenants)
	if reason != "" {
		return reason
	}

	remaining, ok := Budget(c)
	if !ok {
		logger.Info("daily budget reached, skipping",
			slog.String("budget", c.Budget().String()), slog.String("spent", c.Spent.String()))
		return SkipBudgetExhausted
	}
	if c.ActedOn(r.gate.Now()) {
		logger.Info("already launched or boosted today, skipping",
			slog.Time("last_action_at", *c.LastActionAt), slog.String("spent", c.Spent.String()))
		return SkipActedToday
	}

	if !state.postLoaded {
		post, err := r.posts.LatestPublished(ctx, c.TenantID)
		if err != nil {
			logger.Error("load latest published post", slog.Any("error", err))
			return SkipLookupFailed
		}
		state.post, state.postLoaded = post, true
	}
	if state.post == nil {
		logger.Info("no published post to promote, skipping")
		return SkipNoPost
	}
	postID := state.post.ExternalID(c.Platform)
	if postID == "" {
		logger.Info("post was not published on this channel, skipping", slog.String("post", state.post.ID))
		return SkipNoPostID
	}

	integ := state.integration
	targeting := c.Targeting()
	targeting.CityKey = r.geo.Resolve(ctx, targeting.City, targeting.State, integ.FacebookPageAccessToken)

	var (
		path   string
		adID   string
		actErr error
	)
	if integ.HasAdAccount() {
		path = PathCampaign
		adID, actErr = r.launch(ctx, logger, c, integ, state.post, postID, targeting, remaining)
	} else {
		path = PathBoost
		logger.Info("no ad account configured, boosting post", slog.String("post", postID))
		adID, actErr = r.platform.Boost(ctx, port.BoostRequest{
			AccessToken: integ.FacebookPageAccessToken,
			PostID:      postID,
			DailyBudget: remaining,
			Targeting:   targeting,
		})
	}

	if actErr != nil {
		metrics.CampaignActionsTotal.WithLabelValues(path, "failure").Inc()
		logger.Warn("campaign action failed", slog.String("path", path), slog.Any("error", actErr))
		if err := r.campaigns.RecordFailure(ctx, c.ID, actErr.Error()); err != nil {
			logger.Error("record failure", slog.Any("error", err))
		}
		return "failed"
	}

	metrics.CampaignActionsTotal.WithLabelValues(path, "success").Inc()
	logger.Info("campaign action succeeded",
		slog.String("path", path), slog.String("ad_id", adID), slog.String("amount", remaining.String()))
	if err := r.campaigns.RecordLaunch(ctx, c.ID, adID, remaining); err != nil {
		logger.Error("record launch", slog.Any("error", err))
	}
	return path
}

// tenant loads and validates the tenant's integration once per pass. A
// non-empty reason means every campaign of the tenant is skipped.
func (r *Runner) tenant(ctx context.Context, logger *slog.Logger, tenantID string, tenants map[string]*tenantState) (*tenantState, string) {
	state, seen := tenants[tenantID]
	if !seen {
		state = &tenantState{}
		integ, err := r.integrations.GetMetaIntegration(ctx, tenantID)
		if err != nil {
			logger.Error("load integration", slog.Any("error", err))
			// Not memoised, the next campaign of the tenant retries the read.
			return nil, SkipLookupFailed
		}
		state.integration = integ
		if integ.Usable() {
			state.tokenValid = r.platform.ValidateToken(ctx, integ.FacebookPageAccessToken)
		}
		tenants[tenantID] = state
	}

	if !state.integration.Usable() {
		logger.Info("integration missing or disconnected, skipping")
		return nil, SkipNoIntegration
	}
	if !state.tokenValid {
		logger.Warn("access token invalid or expired, skipping until reconnected")
		return nil, SkipInvalidToken
	}
	return state, ""
}

func (r *Runner) launch(
	ctx context.Context,
	logger *slog.Logger,
	c domain.AdCampaign,
	integ *domain.MetaIntegration,
	post *domain.ScheduledPost,
	postID string,
	targeting domain.CampaignTargeting,
	budget decimal.Decimal,
) (string, error) {
	req := port.LaunchRequest{
		AccountID:          integ.AdAccountID,
		AccessToken:        integ.FacebookPageAccessToken,
		PageID:             integ.FacebookPageID,
		InstagramAccountID: integ.InstagramAccountID,
		Platform:           c.Platform,
		Name:               ExternalName(c, r.gate.Now()),
		Objective:          c.Objective,
		DailyBudget:        budget,
		Targeting:          targeting,
		PostID:             postID,
		Message:            post.Content,
	}
	if post.LinkURL != nil {
		req.LinkURL = *post.LinkURL
	}

	res, err := r.platform.Launch(ctx, req)
	if err != nil {
		return "", err
	}
	if !res.Activated {
		logger.Warn("campaign created but not fully activated",
			slog.String("meta_campaign", res.CampaignID), slog.String("ad_id", res.AdID))
	}
	return res.AdID, nil
}

// ExternalName is the name given to campaigns created on the platform. It
// leads with the channel tag, which is what insight rows are attributed by.
func ExternalName(c domain.AdCampaign, now time.Time) string {
	return fmt.Sprintf("%s %s - %s", c.Platform.Tag(), c.Name, now.Format("2006-01-02"))
}
