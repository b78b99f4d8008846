package usecase

import (
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"adpilot/internal/core/domain"
)

const tenantID = "tenant-1"

func chicago(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Chicago")
	require.NoError(t, err)
	return loc
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func ptr[T any](v T) *T { return &v }

func activeCampaign(platform domain.Platform) domain.AdCampaign {
	return domain.AdCampaign{
		ID:          uuid.New(),
		TenantID:    tenantID,
		Name:        "Fall Promo",
		Platform:    platform,
		DailyBudget: decimal.NewFromInt(25),
		Spent:       decimal.Zero,
		Status:      domain.StatusActive,
	}
}

func connectedIntegration(adAccount string) *domain.MetaIntegration {
	return &domain.MetaIntegration{
		TenantID:                tenantID,
		FacebookConnected:       true,
		FacebookPageAccessToken: "tok",
		FacebookPageID:          "page_1",
		InstagramAccountID:      "ig_1",
		AdAccountID:             adAccount,
	}
}

func decimalEq(want string) func(decimal.Decimal) bool {
	w := decimal.RequireFromString(want)
	return func(d decimal.Decimal) bool { return d.Equal(w) }
}
