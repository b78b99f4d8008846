package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"adpilot/internal/core/port"
)

// Pipeline chains one tick: pull platform truth, act on eligible campaigns,
// then expire and flag. A failing stage is reported but does not prevent
// the later stages from running.
type Pipeline struct {
	sync      *Synchronizer
	runner    *Runner
	monitor   *RotationMonitor
	campaigns port.CampaignRepository
	logger    *slog.Logger
}

func NewPipeline(sync *Synchronizer, runner *Runner, monitor *RotationMonitor, campaigns port.CampaignRepository, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		sync:      sync,
		runner:    runner,
		monitor:   monitor,
		campaigns: campaigns,
		logger:    logger.With(slog.String("component", "tick-pipeline")),
	}
}

// Tick runs sync, run and rotate in that order.
func (p *Pipeline) Tick(ctx context.Context) error {
	var errs []error

	syncReport, err := p.sync.Sync(ctx)
	if err != nil {
		errs = append(errs, fmt.Errorf("sync: %w", err))
	}
	runReport, err := p.runner.Run(ctx)
	if err != nil {
		errs = append(errs, fmt.Errorf("run: %w", err))
	}
	rotReport, err := p.monitor.Check(ctx)
	if err != nil {
		errs = append(errs, fmt.Errorf("rotate: %w", err))
	}

	p.logger.Info("tick finished",
		slog.Group("sync",
			slog.Int("tenants", syncReport.Tenants),
			slog.Int("reconciled", syncReport.Reconciled),
			slog.Int("failed", syncReport.Failed)),
		slog.Group("run",
			slog.Int("considered", runReport.Considered),
			slog.Int("launched", runReport.Launched),
			slog.Int("boosted", runReport.Boosted),
			slog.Int("failed", runReport.Failed),
			slog.Any("skipped", runReport.Skipped)),
		slog.Group("rotation",
			slog.Int("rotated", rotReport.Rotated),
			slog.Int("flagged", rotReport.Flagged),
			slog.Int("cleared", rotReport.Cleared)),
	)
	return errors.Join(errs...)
}

// ResetDailySpend zeroes spent on every active campaign.
func (p *Pipeline) ResetDailySpend(ctx context.Context) (int64, error) {
	n, err := p.campaigns.ResetDailySpend(ctx)
	if err != nil {
		return 0, fmt.Errorf("reset daily spend: %w", err)
	}
	return n, nil
}
