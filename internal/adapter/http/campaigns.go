package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"adpilot/internal/core/domain"
)

type campaignView struct {
	ID                 uuid.UUID             `json:"id"`
	TenantID           string                `json:"tenantId"`
	Name               string                `json:"name"`
	Platform           domain.Platform       `json:"platform"`
	Status             domain.CampaignStatus `json:"status"`
	DailyBudget        decimal.Decimal       `json:"dailyBudget"`
	Spent              decimal.Decimal       `json:"spent"`
	Impressions        int64                 `json:"impressions"`
	Clicks             int64                 `json:"clicks"`
	BusinessHoursStart *int                  `json:"businessHoursStart,omitempty"`
	BusinessHoursEnd   *int                  `json:"businessHoursEnd,omitempty"`
	StartDate          *time.Time            `json:"startDate,omitempty"`
	EndDate            *time.Time            `json:"endDate,omitempty"`
	MetaAdID           *string               `json:"metaAdId,omitempty"`
	ErrorMessage       *string               `json:"errorMessage,omitempty"`
	Underperforming    bool                  `json:"underperforming"`
	PredecessorID      *uuid.UUID            `json:"predecessorId,omitempty"`
	LastActionAt       *time.Time            `json:"lastActionAt,omitempty"`
	LastSyncAt         *time.Time            `json:"lastSyncAt,omitempty"`
}

func newCampaignView(c domain.AdCampaign) campaignView {
	return campaignView{
		ID:                 c.ID,
		TenantID:           c.TenantID,
		Name:               c.Name,
		Platform:           c.Platform,
		Status:             c.Status,
		DailyBudget:        c.Budget(),
		Spent:              c.Spent,
		Impressions:        c.Impressions,
		Clicks:             c.Clicks,
		BusinessHoursStart: c.BusinessHoursStart,
		BusinessHoursEnd:   c.BusinessHoursEnd,
		StartDate:          c.StartDate,
		EndDate:            c.EndDate,
		MetaAdID:           c.MetaAdID,
		ErrorMessage:       c.ErrorMessage,
		Underperforming:    c.PerformanceFlag != nil,
		PredecessorID:      c.PredecessorID,
		LastActionAt:       c.LastActionAt,
		LastSyncAt:         c.LastSyncAt,
	}
}

// handleListCampaigns returns every campaign of the tenant given by the
// required `tenant_id` query parameter, including completed predecessors.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	tenantID := r.URL.Query().Get("tenant_id")
	if tenantID == "" {
		http.Error(w, "missing tenant_id", http.StatusBadRequest)
		return
	}
	rows, err := h.campaigns.ListByTenant(r.Context(), tenantID)
	if err != nil {
		h.logger.Error("list campaigns error", slog.String("tenant", tenantID), slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	views := make([]campaignView, 0, len(rows))
	for _, c := range rows {
		views = append(views, newCampaignView(c))
	}
	h.writeJSON(w, http.StatusOK, views)
}

// handleGetCampaign returns one campaign by its {id} path parameter.
// Malformed ids answer 400 and unknown ids 404.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	c, err := h.campaigns.Get(r.Context(), id)
	if err != nil {
		h.logger.Error("get campaign error", slog.String("campaign", id.String()), slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if c == nil {
		http.NotFound(w, r)
		return
	}
	h.writeJSON(w, http.StatusOK, newCampaignView(*c))
}
