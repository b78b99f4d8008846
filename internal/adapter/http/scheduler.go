package httpadapter

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"adpilot/internal/scheduler"
)

type controlResponse struct {
	Started bool             `json:"started,omitempty"`
	Stopped bool             `json:"stopped,omitempty"`
	Status  scheduler.Status `json:"status"`
}

// handleStatus writes the scheduler lifecycle snapshot.
func (h *Handler) handleStatus(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, h.sched.Status())
}

// handleStart starts the loop. The loop outlives the request, so it is bound
// to a context detached from the request's cancellation; Stop ends it. A
// disabled kill-switch or an already running loop answers 409.
func (h *Handler) handleStart(w http.ResponseWriter, r *http.Request) {
	started := h.sched.Start(context.WithoutCancel(r.Context()))
	code := http.StatusOK
	if !started {
		code = http.StatusConflict
	}
	h.logger.Info("scheduler start requested", slog.Bool("started", started))
	h.writeJSON(w, code, controlResponse{Started: started, Status: h.sched.Status()})
}

// handleStop stops the loop and waits for the running tick to drain.
func (h *Handler) handleStop(w http.ResponseWriter, _ *http.Request) {
	h.sched.Stop()
	h.logger.Info("scheduler stop requested")
	h.writeJSON(w, http.StatusOK, controlResponse{Stopped: true, Status: h.sched.Status()})
}

// handleTick runs one tick synchronously. A tick already in progress
// answers 409; a tick that finished with errors answers 500 with the
// recorded status.
func (h *Handler) handleTick(w http.ResponseWriter, r *http.Request) {
	err := h.sched.RunTick(r.Context())
	switch {
	case errors.Is(err, scheduler.ErrTickInProgress):
		http.Error(w, "tick already in progress", http.StatusConflict)
	case err != nil:
		h.logger.Error("manual tick error", slog.Any("error", err))
		h.writeJSON(w, http.StatusInternalServerError, h.sched.Status())
	default:
		h.writeJSON(w, http.StatusOK, h.sched.Status())
	}
}
