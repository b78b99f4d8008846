package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InsightRow is one campaign-level row from the platform's reporting API.
type InsightRow struct {
	CampaignID   string
	CampaignName string
	Spend        decimal.Decimal
	Impressions  int64
	Reach        int64
	Clicks       int64
	DateStart    string
	DateStop     string
}

// Ledger is the reconciled per-channel truth written back onto campaign rows.
type Ledger struct {
	Spent       decimal.Decimal
	Impressions int64
	Clicks      int64
	SyncedAt    time.Time
	// KeepSpent is set when the figures cover more than today. Spent is then
	// not a daily amount and must not replace the stored one.
	KeepSpent bool
}

// Add folds a row into the ledger.
func (l Ledger) Add(r InsightRow) Ledger {
	l.Spent = l.Spent.Add(r.Spend)
	l.Impressions += r.Impressions
	l.Clicks += r.Clicks
	return l
}
