package usecase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"adpilot/internal/core/domain"
)

func TestBudget(t *testing.T) {
	tests := []struct {
		name          string
		dailyBudget   string
		spent         string
		wantRemaining string
		wantEligible  bool
	}{
		{name: "fresh day", dailyBudget: "25", spent: "0", wantRemaining: "25", wantEligible: true},
		{name: "partially spent", dailyBudget: "25", spent: "10.50", wantRemaining: "14.50", wantEligible: true},
		{name: "exactly at cap", dailyBudget: "25", spent: "25", wantRemaining: "0", wantEligible: false},
		{name: "over cap after sync", dailyBudget: "25", spent: "31.20", wantRemaining: "0", wantEligible: false},
		{name: "unset budget uses default", dailyBudget: "0", spent: "5", wantRemaining: "20", wantEligible: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := domain.AdCampaign{
				DailyBudget: decimal.RequireFromString(tt.dailyBudget),
				Spent:       decimal.RequireFromString(tt.spent),
			}
			remaining, ok := Budget(c)
			assert.Equal(t, tt.wantEligible, ok)
			assert.True(t, decimal.RequireFromString(tt.wantRemaining).Equal(remaining), "remaining %s", remaining)
		})
	}
}
