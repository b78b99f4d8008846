// Package scheduler drives the campaign control loop: one combined tick on a
// fixed interval and a daily spend reset at local midnight. Ticks never
// overlap, and a stop request waits for the running tick to drain so the
// platform is never left with a half-created campaign.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"adpilot/internal/config/configs"
	"adpilot/internal/metrics"
)

// ErrTickInProgress is returned by RunTick when another tick holds the loop.
var ErrTickInProgress = errors.New("scheduler: tick already in progress")

const resetTimeout = time.Minute

// Pipeline is the work performed by the loop.
type Pipeline interface {
	Tick(ctx context.Context) error
	ResetDailySpend(ctx context.Context) (int64, error)
}

// HoursGate reports whether the default business-hours window is open.
type HoursGate interface {
	Open() bool
}

// Status is the lifecycle snapshot exposed to operators.
type Status struct {
	Enabled        bool       `json:"enabled"`
	Running        bool       `json:"running"`
	BusinessHours  bool       `json:"businessHours"`
	TickInProgress bool       `json:"tickInProgress"`
	LastTickAt     *time.Time `json:"lastTickAt,omitempty"`
	LastTickError  string     `json:"lastTickError,omitempty"`
	NextResetAt    *time.Time `json:"nextResetAt,omitempty"`
}

// Scheduler owns the interval ticker and the midnight timer.
type Scheduler struct {
	pipeline Pipeline
	gate     HoursGate
	cfg      configs.Scheduler
	loc      *time.Location
	logger   *slog.Logger
	now      func() time.Time
	// untilReset overrides the delay to the next spend reset.
	untilReset func() time.Duration

	tickMu     sync.Mutex
	inProgress atomic.Bool

	mu        sync.Mutex
	running   bool
	stopCh    chan struct{}
	doneCh    chan struct{}
	lastTick  time.Time
	lastErr   error
	nextReset time.Time
}

// Option customises a Scheduler.
type Option func(*Scheduler)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) { s.now = now }
}

// New returns a stopped scheduler. cfg.Enabled is the kill-switch checked on
// every Start.
func New(pipeline Pipeline, gate HoursGate, cfg configs.Scheduler, loc *time.Location, logger *slog.Logger, opts ...Option) *Scheduler {
	s := &Scheduler{
		pipeline: pipeline,
		gate:     gate,
		cfg:      cfg,
		loc:      loc,
		logger:   logger.With(slog.String("component", "scheduler")),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.untilReset == nil {
		s.untilReset = func() time.Duration {
			now := s.now()
			return NextMidnight(now, s.loc).Sub(now)
		}
	}
	return s
}

// Start runs one tick immediately, then arms the interval ticker and the
// midnight reset timer. It reports false without doing anything when the
// kill-switch is off or the loop is already running. ctx bounds the loop's
// lifetime; ticks themselves are detached from it.
func (s *Scheduler) Start(ctx context.Context) bool {
	if !s.cfg.Enabled {
		s.logger.Info("scheduler disabled by kill-switch, not starting")
		return false
	}

	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		s.logger.Info("scheduler already running")
		return false
	}
	s.running = true
	stopCh := make(chan struct{})
	doneCh := make(chan struct{})
	s.stopCh, s.doneCh = stopCh, doneCh
	s.mu.Unlock()

	s.logger.Info("starting scheduler",
		slog.Duration("interval", s.cfg.Interval),
		slog.String("timezone", s.loc.String()),
		slog.Int("business_hours_start", s.cfg.BusinessHoursStart),
		slog.Int("business_hours_end", s.cfg.BusinessHoursEnd))

	go s.loop(ctx, stopCh, doneCh)
	return true
}

// Stop disarms both timers and returns once the current tick, if any, has
// finished. Calling Stop on a stopped scheduler is a no-op.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	stopCh, doneCh := s.stopCh, s.doneCh
	s.mu.Unlock()

	s.logger.Info("stopping scheduler, waiting for current tick")
	close(stopCh)
	<-doneCh
	s.logger.Info("scheduler stopped")
}

// Status reports the lifecycle state and whether the default business-hours
// window is currently open.
func (s *Scheduler) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Status{
		Enabled:        s.cfg.Enabled,
		Running:        s.running,
		BusinessHours:  s.gate.Open(),
		TickInProgress: s.inProgress.Load(),
	}
	if !s.lastTick.IsZero() {
		t := s.lastTick
		st.LastTickAt = &t
	}
	if s.lastErr != nil {
		st.LastTickError = s.lastErr.Error()
	}
	if s.running && !s.nextReset.IsZero() {
		t := s.nextReset
		st.NextResetAt = &t
	}
	return st
}

func (s *Scheduler) loop(ctx context.Context, stopCh, doneCh chan struct{}) {
	defer func() {
		s.mu.Lock()
		if s.stopCh == stopCh {
			s.running = false
		}
		s.mu.Unlock()
		close(doneCh)
	}()

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()
	reset := time.NewTimer(s.armReset())
	defer reset.Stop()

	s.tickFromLoop(ctx)

	for {
		select {
		case <-ticker.C:
			s.tickFromLoop(ctx)
		case <-reset.C:
			s.resetSpend(ctx)
			reset.Reset(s.armReset())
		case <-stopCh:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (s *Scheduler) tickFromLoop(ctx context.Context) {
	if err := s.RunTick(ctx); errors.Is(err, ErrTickInProgress) {
		s.logger.Warn("previous tick still running, skipping")
	}
}

// armReset records and returns the delay to the next spend reset.
func (s *Scheduler) armReset() time.Duration {
	d := s.untilReset()
	if d < 0 {
		d = 0
	}
	s.mu.Lock()
	s.nextReset = s.now().Add(d)
	s.mu.Unlock()
	return d
}

// RunTick executes one tick unless another is in flight, in which case it
// returns ErrTickInProgress immediately. The tick runs under its own
// timeout, detached from ctx cancellation, and a panic inside it is
// recovered and returned as an error.
func (s *Scheduler) RunTick(ctx context.Context) error {
	if !s.tickMu.TryLock() {
		metrics.TicksTotal.WithLabelValues("skipped").Inc()
		return ErrTickInProgress
	}
	defer s.tickMu.Unlock()
	s.inProgress.Store(true)
	defer s.inProgress.Store(false)

	tickCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.TickTimeout)
	defer cancel()

	started := time.Now()
	err := s.safeTick(tickCtx)
	metrics.TickDuration.Observe(time.Since(started).Seconds())

	outcome := "success"
	if err != nil {
		outcome = "failure"
		s.logger.Error("tick failed", slog.Any("error", err), slog.Duration("took", time.Since(started)))
	}
	metrics.TicksTotal.WithLabelValues(outcome).Inc()

	s.mu.Lock()
	s.lastTick = s.now()
	s.lastErr = err
	s.mu.Unlock()
	return err
}

func (s *Scheduler) safeTick(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("tick panicked: %v", r)
		}
	}()
	return s.pipeline.Tick(ctx)
}

// resetSpend waits for a running tick so the reset never interleaves with
// its ledger writes. Ticks requested meanwhile are rejected as overlapping.
func (s *Scheduler) resetSpend(ctx context.Context) {
	s.tickMu.Lock()
	defer s.tickMu.Unlock()

	resetCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), resetTimeout)
	defer cancel()

	n, err := s.pipeline.ResetDailySpend(resetCtx)
	if err != nil {
		s.logger.Error("daily spend reset failed", slog.Any("error", err))
		return
	}
	metrics.SpendResetsTotal.Inc()
	s.logger.Info("daily spend reset", slog.Int64("campaigns", n))
}

// NextMidnight returns the first midnight in loc strictly after now.
func NextMidnight(now time.Time, loc *time.Location) time.Time {
	local := now.In(loc)
	y, m, d := local.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, loc)
}
