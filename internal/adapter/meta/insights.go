package meta

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"adpilot/internal/core/domain"
)

const insightFields = "campaign_id,campaign_name,spend,impressions,reach,clicks"

// The Graph API reports numbers as strings.
type insightRecord struct {
	CampaignID   string `json:"campaign_id"`
	CampaignName string `json:"campaign_name"`
	Spend        string `json:"spend"`
	Impressions  string `json:"impressions"`
	Reach        string `json:"reach"`
	Clicks       string `json:"clicks"`
	DateStart    string `json:"date_start"`
	DateStop     string `json:"date_stop"`
}

type insightsResponse struct {
	Data []insightRecord `json:"data"`
}

// GetInsights returns campaign-level rows for one date preset.
func (c *Client) GetInsights(ctx context.Context, accountID, token, datePreset string) ([]domain.InsightRow, error) {
	if accountID == "" {
		return nil, ErrMissingAccount
	}
	q := tokenValues(token)
	q.Set("level", "campaign")
	q.Set("fields", insightFields)
	q.Set("date_preset", datePreset)

	var resp insightsResponse
	if err := c.do(ctx, requestConfig{op: "insights", method: http.MethodGet, path: accountPath(accountID) + "/insights", query: q}, &resp); err != nil {
		return nil, err
	}

	rows := make([]domain.InsightRow, 0, len(resp.Data))
	for _, rec := range resp.Data {
		row, err := rec.toRow()
		if err != nil {
			return nil, fmt.Errorf("insights: campaign %s: %w", rec.CampaignID, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Insights tries presets in order and stops at the first one returning rows.
// When every preset is empty it returns no rows and an empty preset.
func (c *Client) Insights(ctx context.Context, accountID, token string, presets []string) ([]domain.InsightRow, string, error) {
	for _, preset := range presets {
		rows, err := c.GetInsights(ctx, accountID, token, preset)
		if err != nil {
			return nil, "", err
		}
		if len(rows) > 0 {
			return rows, preset, nil
		}
	}
	return nil, "", nil
}

type accountResponse struct {
	ID          string `json:"id"`
	AmountSpent string `json:"amount_spent"`
}

// AccountSpend returns the account's amount_spent converted from minor units.
func (c *Client) AccountSpend(ctx context.Context, accountID, token string) (decimal.Decimal, error) {
	if accountID == "" {
		return decimal.Zero, ErrMissingAccount
	}
	q := tokenValues(token)
	q.Set("fields", "amount_spent")

	var resp accountResponse
	if err := c.do(ctx, requestConfig{op: "account_spend", method: http.MethodGet, path: accountPath(accountID), query: q}, &resp); err != nil {
		return decimal.Zero, err
	}
	if resp.AmountSpent == "" {
		return decimal.Zero, nil
	}
	minor, err := decimal.NewFromString(resp.AmountSpent)
	if err != nil {
		return decimal.Zero, fmt.Errorf("account_spend: parse %q: %w", resp.AmountSpent, err)
	}
	return minor.Shift(-2), nil
}

func (r insightRecord) toRow() (domain.InsightRow, error) {
	row := domain.InsightRow{
		CampaignID:   r.CampaignID,
		CampaignName: r.CampaignName,
		DateStart:    r.DateStart,
		DateStop:     r.DateStop,
	}
	var err error
	if r.Spend != "" {
		if row.Spend, err = decimal.NewFromString(r.Spend); err != nil {
			return row, fmt.Errorf("spend %q: %w", r.Spend, err)
		}
	}
	if row.Impressions, err = parseCount(r.Impressions); err != nil {
		return row, fmt.Errorf("impressions: %w", err)
	}
	if row.Reach, err = parseCount(r.Reach); err != nil {
		return row, fmt.Errorf("reach: %w", err)
	}
	if row.Clicks, err = parseCount(r.Clicks); err != nil {
		return row, fmt.Errorf("clicks: %w", err)
	}
	return row, nil
}

func parseCount(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseInt(s, 10, 64)
}
