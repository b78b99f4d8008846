package usecase

import (
	"github.com/shopspring/decimal"

	"adpilot/internal/core/domain"
)

// Budget reports how much of today's budget a campaign may still spend and
// whether it may act at all this tick. Spent is the reconciled platform
// figure (plus any optimistic increment since the last sync), so a campaign
// at or over its cap is never eligible.
func Budget(c domain.AdCampaign) (decimal.Decimal, bool) {
	if c.BudgetExhausted() {
		return decimal.Zero, false
	}
	return c.RemainingBudget(), true
}
