// Package saga runs multi-step external creations as compensating
// transactions. Each successful step registers its undo; a later failure
// replays the registered undos newest first.
package saga

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

type compensation struct {
	name string
	fn   func(ctx context.Context) error
}

// Saga accumulates compensations. It is not safe for concurrent use.
type Saga struct {
	steps  []compensation
	logger *slog.Logger
}

// New returns an empty saga. A nil logger discards output.
func New(logger *slog.Logger) *Saga {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Saga{logger: logger}
}

// Defer registers fn as the undo of a step that has just succeeded.
func (s *Saga) Defer(name string, fn func(ctx context.Context) error) {
	s.steps = append(s.steps, compensation{name: name, fn: fn})
}

// Len reports the number of pending compensations.
func (s *Saga) Len() int { return len(s.steps) }

// Compensate runs every pending compensation in reverse registration order.
// A failing compensation does not stop the remaining ones; all failures are
// joined into the returned error. The saga is empty afterwards, so a second
// call is a no-op.
func (s *Saga) Compensate(ctx context.Context) error {
	var errs []error
	for i := len(s.steps) - 1; i >= 0; i-- {
		step := s.steps[i]
		if err := step.fn(ctx); err != nil {
			s.logger.Error("compensation failed", slog.String("step", step.name), slog.Any("error", err))
			errs = append(errs, fmt.Errorf("undo %s: %w", step.name, err))
			continue
		}
		s.logger.Info("compensation applied", slog.String("step", step.name))
	}
	s.steps = nil
	return errors.Join(errs...)
}
