package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"adpilot/internal/config/configs"
	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
	"adpilot/internal/metrics"
)

// RotationReport summarises one RotationMonitor pass.
type RotationReport struct {
	Rotated int
	Flagged int
	Cleared int
	Failed  int
}

// RotationMonitor retires expired campaigns in favour of a fresh successor
// and flags mature campaigns whose engagement is below the floors. Flagging
// never pauses or replaces a campaign.
type RotationMonitor struct {
	campaigns           port.CampaignRepository
	period              time.Duration
	maturity            time.Duration
	minDailyImpressions float64
	minCTR              float64
	now                 func() time.Time
	logger              *slog.Logger
}

// NewRotationMonitor reads the rotation period, maturity window and floors
// from cfg. A nil now uses time.Now.
func NewRotationMonitor(campaigns port.CampaignRepository, cfg configs.Scheduler, now func() time.Time, logger *slog.Logger) *RotationMonitor {
	if now == nil {
		now = time.Now
	}
	return &RotationMonitor{
		campaigns:           campaigns,
		period:              cfg.RotationPeriod,
		maturity:            cfg.MaturityWindow,
		minDailyImpressions: cfg.MinDailyImpressions,
		minCTR:              cfg.MinCTR,
		now:                 now,
		logger:              logger.With(slog.String("component", "rotation-monitor")),
	}
}

// Check runs one pass over the active campaigns.
func (m *RotationMonitor) Check(ctx context.Context) (RotationReport, error) {
	var report RotationReport

	active, err := m.campaigns.ListActive(ctx)
	if err != nil {
		return report, fmt.Errorf("list active campaigns: %w", err)
	}

	now := m.now()
	for _, c := range active {
		if err = ctx.Err(); err != nil {
			return report, err
		}
		logger := m.logger.With(slog.String("campaign", c.ID.String()), slog.String("tenant", c.TenantID))

		if c.Expired(now) {
			successor := c.Successor(now, m.period)
			if err = m.campaigns.Rotate(ctx, c.ID, successor); err != nil {
				report.Failed++
				logger.Error("rotate expired campaign", slog.Any("error", err))
				continue
			}
			report.Rotated++
			metrics.RotationsTotal.Inc()
			logger.Info("campaign rotated",
				slog.String("successor", successor.ID.String()),
				slog.Time("end_date", *successor.EndDate))
			continue
		}

		flag, mature := m.Evaluate(c, now)
		if !mature {
			continue
		}
		switch {
		case flag != nil && !flagged(c, flag):
			if err = m.campaigns.SetPerformanceFlag(ctx, c.ID, flag); err != nil {
				report.Failed++
				logger.Error("flag campaign", slog.Any("error", err))
				continue
			}
			report.Flagged++
			metrics.PerformanceFlagsTotal.Inc()
			logger.Warn("campaign underperforming", slog.String("flag", flag.Message()))
		case flag == nil && c.PerformanceFlag != nil:
			if err = m.campaigns.SetPerformanceFlag(ctx, c.ID, nil); err != nil {
				report.Failed++
				logger.Error("clear performance flag", slog.Any("error", err))
				continue
			}
			report.Cleared++
			logger.Info("campaign recovered, flag cleared")
		}
	}
	return report, nil
}

// Evaluate computes the performance flag for c. mature is false when c has
// run for less than the maturity window or has no start date; flag is nil
// when both engagement figures are at or above their floors.
func (m *RotationMonitor) Evaluate(c domain.AdCampaign, now time.Time) (flag *domain.PerformanceFlag, mature bool) {
	if c.StartDate == nil {
		return nil, false
	}
	age := now.Sub(*c.StartDate)
	if age < m.maturity {
		return nil, false
	}

	days := age.Hours() / 24
	avg := float64(c.Impressions) / days
	var ctr float64
	if c.Impressions > 0 {
		ctr = float64(c.Clicks) / float64(c.Impressions)
	}
	if avg >= m.minDailyImpressions && ctr >= m.minCTR {
		return nil, true
	}
	return &domain.PerformanceFlag{
		AvgDailyImpressions: avg,
		CTR:                 ctr,
		MinDailyImpressions: m.minDailyImpressions,
		MinCTR:              m.minCTR,
	}, true
}

// flagged reports whether c already carries flag and its message. A launch
// clears the message, so a stored flag without it is written again.
func flagged(c domain.AdCampaign, flag *domain.PerformanceFlag) bool {
	if c.PerformanceFlag == nil || c.ErrorMessage == nil {
		return false
	}
	msg := flag.Message()
	return c.PerformanceFlag.Message() == msg && *c.ErrorMessage == msg
}
