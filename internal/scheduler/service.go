package scheduler

import "context"

// Manager is the Start/Stop lifecycle adapted by Service.
type Manager interface {
	Start(ctx context.Context) bool
	Stop()
}

// Service runs a Manager under a suture supervisor: it starts the loop,
// blocks until the supervisor cancels ctx, then stops the loop and waits
// for the running tick.
type Service struct {
	manager Manager
	name    string
}

func NewService(manager Manager) *Service {
	return &Service{manager: manager, name: "campaign-scheduler"}
}

// Serve implements suture.Service.
func (s *Service) Serve(ctx context.Context) error {
	s.manager.Start(ctx)
	<-ctx.Done()
	s.manager.Stop()
	return ctx.Err()
}

func (s *Service) String() string {
	return s.name
}
