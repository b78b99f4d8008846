package httpadapter

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"adpilot/internal/core/port"
	"adpilot/internal/scheduler"
)

// SchedulerControl is the operator surface of the scheduler loop.
type SchedulerControl interface {
	Start(ctx context.Context) bool
	Stop()
	Status() scheduler.Status
	RunTick(ctx context.Context) error
}

// Handler contains dependencies and routes. It is an inbound adapter for HTTP
// that lets operators inspect and drive the scheduler and read campaign
// rows. Routes are registered on a chi.Router.
type Handler struct {
	sched     SchedulerControl
	campaigns port.CampaignReader
	logger    *slog.Logger
	router    chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(sched SchedulerControl, campaigns port.CampaignReader, logger *slog.Logger) *Handler {
	h := &Handler{
		sched:     sched,
		campaigns: campaigns,
		logger:    logger.With(slog.String("component", "http")),
	}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/scheduler", func(r chi.Router) {
			r.Get("/status", h.handleStatus)
			r.Post("/start", h.handleStart)
			r.Post("/stop", h.handleStop)
			r.Post("/tick", h.handleTick)
		})
		r.Get("/campaigns", h.handleListCampaigns)
		r.Get("/campaigns/{id}", h.handleGetCampaign)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
