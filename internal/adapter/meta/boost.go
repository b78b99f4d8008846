package meta

import (
	"context"
	"fmt"
	"net/http"

	"adpilot/internal/core/port"
)

type boostBody struct {
	AccessToken string        `json:"access_token"`
	DailyBudget int64         `json:"daily_budget"`
	Duration    int           `json:"duration"`
	Targeting   targetingSpec `json:"targeting"`
}

type boostResponse struct {
	AdID string `json:"ad_id"`
}

// Boost promotes an existing post for one day with a single call. It is the
// fallback for tenants without an ad account and offers no separate
// campaign or ad set control.
func (c *Client) Boost(ctx context.Context, req port.BoostRequest) (string, error) {
	if req.AccessToken == "" {
		return "", ErrMissingToken
	}
	if req.PostID == "" {
		return "", ErrMissingPost
	}
	spec := buildTargeting(req.Targeting, "")
	body := boostBody{
		AccessToken: req.AccessToken,
		DailyBudget: req.DailyBudget.Shift(2).Round(0).IntPart(),
		Duration:    1,
		Targeting:   spec,
	}
	var resp boostResponse
	err := c.do(ctx, requestConfig{
		op:     "boost",
		method: http.MethodPost,
		path:   "/" + req.PostID + "/promotions",
		body:   body,
	}, &resp)
	if err != nil {
		return "", err
	}
	if resp.AdID == "" {
		return "", fmt.Errorf("boost: %w", ErrEmptyID)
	}
	return resp.AdID, nil
}
