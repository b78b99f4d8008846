package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/goccy/go-json"
)

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; headers are already sent
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
