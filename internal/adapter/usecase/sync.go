package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
	"adpilot/internal/metrics"
)

// SyncReport summarises one Synchronizer pass.
type SyncReport struct {
	Tenants      int
	Reconciled   int
	RowsWritten  int64
	Unattributed int
	Failed       int
}

// Synchronizer overwrites the local ledger with the platform's reported
// spend, impressions and clicks. Each pass is a reconciliation: running it
// twice against unchanged platform data writes the same values twice.
type Synchronizer struct {
	campaigns    port.CampaignRepository
	integrations port.IntegrationRepository
	platform     port.AdPlatform
	presets      []string
	now          func() time.Time
	logger       *slog.Logger
}

// NewSynchronizer returns a Synchronizer trying presets in order. A nil now
// uses time.Now.
func NewSynchronizer(
	campaigns port.CampaignRepository,
	integrations port.IntegrationRepository,
	platform port.AdPlatform,
	presets []string,
	now func() time.Time,
	logger *slog.Logger,
) *Synchronizer {
	if now == nil {
		now = time.Now
	}
	return &Synchronizer{
		campaigns:    campaigns,
		integrations: integrations,
		platform:     platform,
		presets:      presets,
		now:          now,
		logger:       logger.With(slog.String("component", "spend-synchronizer")),
	}
}

// Sync reconciles every tenant owning an active campaign. A failing tenant is
// logged and counted; it never aborts the pass.
func (s *Synchronizer) Sync(ctx context.Context) (SyncReport, error) {
	var report SyncReport

	tenants, err := s.campaigns.ListActiveTenants(ctx)
	if err != nil {
		return report, fmt.Errorf("list active tenants: %w", err)
	}

	// Active rows are only needed for the account-spend fallback.
	var active map[string][]domain.AdCampaign
	loadActive := func() (map[string][]domain.AdCampaign, error) {
		if active != nil {
			return active, nil
		}
		rows, err := s.campaigns.ListActive(ctx)
		if err != nil {
			return nil, err
		}
		active = make(map[string][]domain.AdCampaign)
		for _, c := range rows {
			active[c.TenantID] = append(active[c.TenantID], c)
		}
		return active, nil
	}

	for _, tenantID := range tenants {
		if err = ctx.Err(); err != nil {
			return report, err
		}
		report.Tenants++
		if err = s.syncTenant(ctx, tenantID, &report, loadActive); err != nil {
			report.Failed++
			s.logger.Warn("spend sync failed", slog.String("tenant", tenantID), slog.Any("error", err))
		}
	}
	return report, nil
}

func (s *Synchronizer) syncTenant(
	ctx context.Context,
	tenantID string,
	report *SyncReport,
	loadActive func() (map[string][]domain.AdCampaign, error),
) error {
	logger := s.logger.With(slog.String("tenant", tenantID))

	integ, err := s.integrations.GetMetaIntegration(ctx, tenantID)
	if err != nil {
		return fmt.Errorf("load integration: %w", err)
	}
	if !integ.Usable() || !integ.HasAdAccount() {
		logger.Debug("no usable ad account, nothing to reconcile")
		return nil
	}

	rows, preset, err := s.platform.Insights(ctx, integ.AdAccountID, integ.FacebookPageAccessToken, s.presets)
	if err != nil {
		return fmt.Errorf("fetch insights: %w", err)
	}
	now := s.now()

	if len(rows) == 0 {
		return s.syncAccountSpend(ctx, logger, tenantID, integ, now, report, loadActive)
	}

	// Only the first preset reports a daily amount; a wider window updates
	// delivery counters but leaves the spent ledger alone.
	keepSpent := len(s.presets) > 0 && preset != s.presets[0]
	if keepSpent {
		logger.Warn("no insight rows for today, spent left unchanged",
			slog.String("preset", preset), slog.Int("rows", len(rows)))
	}

	ledgers := make(map[domain.Platform]domain.Ledger, len(domain.Platforms))
	for _, row := range rows {
		p, ok := domain.PlatformFromExternalName(row.CampaignName)
		if !ok {
			report.Unattributed++
			logger.Debug("insight row carries no channel tag", slog.String("campaign_name", row.CampaignName))
			continue
		}
		ledgers[p] = ledgers[p].Add(row)
	}

	for _, p := range domain.Platforms {
		ledger, ok := ledgers[p]
		if !ok {
			continue
		}
		ledger.SyncedAt = now
		ledger.KeepSpent = keepSpent
		n, err := s.campaigns.ReconcileLedger(ctx, tenantID, p, ledger)
		if err != nil {
			return fmt.Errorf("reconcile %s: %w", p, err)
		}
		report.Reconciled++
		report.RowsWritten += n
		if !keepSpent {
			metrics.ReconciledSpend.WithLabelValues(tenantID, string(p)).Set(ledger.Spent.InexactFloat64())
		}
		logger.Info("ledger reconciled",
			slog.String("platform", string(p)),
			slog.String("preset", preset),
			slog.String("spent", ledger.Spent.String()),
			slog.Int64("impressions", ledger.Impressions),
			slog.Int64("clicks", ledger.Clicks),
			slog.Int64("rows", n))
	}
	return nil
}

// syncAccountSpend covers platforms that report the account aggregate before
// campaign rows. The aggregate cannot be split by channel, so it is written
// only when the tenant has exactly one active campaign.
func (s *Synchronizer) syncAccountSpend(
	ctx context.Context,
	logger *slog.Logger,
	tenantID string,
	integ *domain.MetaIntegration,
	now time.Time,
	report *SyncReport,
	loadActive func() (map[string][]domain.AdCampaign, error),
) error {
	spent, err := s.platform.AccountSpend(ctx, integ.AdAccountID, integ.FacebookPageAccessToken)
	if err != nil {
		return fmt.Errorf("fetch account spend: %w", err)
	}
	active, err := loadActive()
	if err != nil {
		return fmt.Errorf("list active campaigns: %w", err)
	}

	campaigns := active[tenantID]
	if len(campaigns) != 1 {
		logger.Info("no insight rows yet, account spend not attributable",
			slog.String("account_spend", spent.String()), slog.Int("active_campaigns", len(campaigns)))
		return nil
	}

	c := campaigns[0]
	ledger := domain.Ledger{Spent: spent, Impressions: c.Impressions, Clicks: c.Clicks, SyncedAt: now}
	n, err := s.campaigns.ReconcileLedger(ctx, tenantID, c.Platform, ledger)
	if err != nil {
		return fmt.Errorf("reconcile account spend: %w", err)
	}
	report.Reconciled++
	report.RowsWritten += n
	metrics.ReconciledSpend.WithLabelValues(tenantID, string(c.Platform)).Set(spent.InexactFloat64())
	logger.Info("ledger reconciled from account spend",
		slog.String("platform", string(c.Platform)), slog.String("spent", spent.String()))
	return nil
}
