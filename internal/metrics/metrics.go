// Package metrics holds the Prometheus instruments used by the scheduler and
// the platform client. All collectors are registered with the global
// registry, so mounting promhttp.Handler is enough to expose them.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	TicksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adpilot_ticks_total",
			Help: "Scheduler ticks by outcome (success, failure, skipped).",
		}, []string{"outcome"})

	TickDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "adpilot_tick_duration_seconds",
			Help:    "Wall time of one sync, run and rotate tick.",
			Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600, 1200},
		})

	CampaignActionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adpilot_campaign_actions_total",
			Help: "Launch and boost attempts by path and result.",
		}, []string{"path", "result"})

	CampaignSkipsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adpilot_campaign_skips_total",
			Help: "Campaigns skipped by the runner, by reason.",
		}, []string{"reason"})

	RollbacksTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "adpilot_rollbacks_total",
			Help: "Launches that had to compensate already-created resources.",
		})

	PlatformRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adpilot_platform_requests_total",
			Help: "Outbound advertising platform calls by operation and result.",
		}, []string{"op", "result"})

	CircuitBreakerState = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "adpilot_circuit_breaker_state",
			Help: "Breaker state: 0 closed, 1 half-open, 2 open.",
		}, []string{"name"})

	ReconciledSpend = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "adpilot_reconciled_spend",
			Help: "Last reconciled spend per tenant and channel.",
		}, []string{"tenant", "platform"})

	RotationsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "adpilot_rotations_total",
			Help: "Expired campaigns completed and replaced by a successor.",
		})

	PerformanceFlagsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "adpilot_performance_flags_total",
			Help: "Campaigns flagged as underperforming.",
		})

	SpendResetsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "adpilot_spend_resets_total",
			Help: "Midnight daily spend resets.",
		})
)

func init() {
	prometheus.MustRegister(
		TicksTotal,
		TickDuration,
		CampaignActionsTotal,
		CampaignSkipsTotal,
		RollbacksTotal,
		PlatformRequestsTotal,
		CircuitBreakerState,
		ReconciledSpend,
		RotationsTotal,
		PerformanceFlagsTotal,
		SpendResetsTotal,
	)
}
