package meta

import (
	"context"
	"fmt"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"adpilot/internal/core/domain"
)

// Resource status values understood by the Graph API.
const (
	StatusPaused = "PAUSED"
	StatusActive = "ACTIVE"
)

// minorUnits converts a currency amount into the integer minor units the
// Graph API expects for budgets.
func minorUnits(amount decimal.Decimal) string {
	return amount.Shift(2).Round(0).String()
}

func (c *Client) create(ctx context.Context, op, path string, form map[string]string, token string) (string, error) {
	values := tokenValues(token)
	for k, v := range form {
		values.Set(k, v)
	}
	var resp idResponse
	if err := c.do(ctx, requestConfig{op: op, method: http.MethodPost, path: path, form: values}, &resp); err != nil {
		return "", err
	}
	if resp.ID == "" {
		return "", fmt.Errorf("%s: %w", op, ErrEmptyID)
	}
	return resp.ID, nil
}

// CreateCampaign creates a paused campaign under the ad account.
func (c *Client) CreateCampaign(ctx context.Context, accountID, token, name, objective string) (string, error) {
	if accountID == "" {
		return "", ErrMissingAccount
	}
	if token == "" {
		return "", ErrMissingToken
	}
	if objective == "" {
		objective = c.objective
	}
	return c.create(ctx, "create_campaign", accountPath(accountID)+"/campaigns", map[string]string{
		"name":                  name,
		"objective":             objective,
		"status":                StatusPaused,
		"special_ad_categories": "[]",
	}, token)
}

// CreateAdSet creates a paused ad set carrying the daily budget and targeting.
func (c *Client) CreateAdSet(ctx context.Context, accountID, token, campaignID, name string, dailyBudget decimal.Decimal, targeting domain.CampaignTargeting, platform domain.Platform) (string, error) {
	if accountID == "" {
		return "", ErrMissingAccount
	}
	spec, err := encodeTargeting(targeting, platform)
	if err != nil {
		return "", fmt.Errorf("create_adset: encode targeting: %w", err)
	}
	return c.create(ctx, "create_adset", accountPath(accountID)+"/adsets", map[string]string{
		"name":              name,
		"campaign_id":       campaignID,
		"daily_budget":      minorUnits(dailyBudget),
		"billing_event":     "IMPRESSIONS",
		"optimization_goal": "LINK_CLICKS",
		"bid_strategy":      "LOWEST_COST_WITHOUT_CAP",
		"targeting":         spec,
		"status":            StatusPaused,
	}, token)
}

type linkData struct {
	Link    string `json:"link"`
	Message string `json:"message,omitempty"`
}

type objectStorySpec struct {
	PageID   string   `json:"page_id"`
	LinkData linkData `json:"link_data"`
}

// CreateCreative assembles a link creative for the page.
func (c *Client) CreateCreative(ctx context.Context, accountID, token, pageID, name, linkURL, message string) (string, error) {
	if accountID == "" {
		return "", ErrMissingAccount
	}
	spec, err := json.Marshal(objectStorySpec{PageID: pageID, LinkData: linkData{Link: linkURL, Message: message}})
	if err != nil {
		return "", fmt.Errorf("create_creative: encode story spec: %w", err)
	}
	return c.create(ctx, "create_creative", accountPath(accountID)+"/adcreatives", map[string]string{
		"name":              name,
		"object_story_spec": string(spec),
	}, token)
}

// CreatePostCreative builds a creative from an already published post. It is
// the fallback when link creative assembly is refused.
func (c *Client) CreatePostCreative(ctx context.Context, accountID, token, name string, platform domain.Platform, postID, instagramAccountID string) (string, error) {
	if accountID == "" {
		return "", ErrMissingAccount
	}
	if postID == "" {
		return "", ErrMissingPost
	}
	form := map[string]string{"name": name}
	if platform == domain.PlatformInstagram {
		form["source_instagram_media_id"] = postID
		if instagramAccountID != "" {
			form["instagram_user_id"] = instagramAccountID
		}
	} else {
		form["object_story_id"] = postID
	}
	return c.create(ctx, "create_post_creative", accountPath(accountID)+"/adcreatives", form, token)
}

// CreateAd creates a paused ad tying the ad set to the creative.
func (c *Client) CreateAd(ctx context.Context, accountID, token, adSetID, creativeID, name string) (string, error) {
	if accountID == "" {
		return "", ErrMissingAccount
	}
	return c.create(ctx, "create_ad", accountPath(accountID)+"/ads", map[string]string{
		"name":     name,
		"adset_id": adSetID,
		"creative": fmt.Sprintf(`{"creative_id":%q}`, creativeID),
		"status":   StatusPaused,
	}, token)
}

// SetStatus flips a campaign, ad set or ad to status.
func (c *Client) SetStatus(ctx context.Context, token, objectID, status string) error {
	values := tokenValues(token)
	values.Set("status", status)
	return c.do(ctx, requestConfig{op: "set_status", method: http.MethodPost, path: "/" + objectID, form: values}, nil)
}

// Delete removes a campaign, ad set or ad.
func (c *Client) Delete(ctx context.Context, token, objectID string) error {
	return c.do(ctx, requestConfig{op: "delete", method: http.MethodDelete, path: "/" + objectID, query: tokenValues(token)}, nil)
}
