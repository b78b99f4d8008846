package meta

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"adpilot/internal/core/port"
	"adpilot/internal/metrics"
	"adpilot/internal/saga"
)

// Launch runs the full creation protocol: campaign, ad set, creative, ad, then
// activation. Campaign, ad set and ad are created paused. A failure after the
// campaign exists deletes what was created, newest first, before returning.
// A refused link creative falls back to a creative built from the published
// post. Activation failures are logged and reported through
// LaunchResult.Activated but never rolled back.
func (c *Client) Launch(ctx context.Context, req port.LaunchRequest) (*port.LaunchResult, error) {
	switch {
	case req.AccountID == "":
		return nil, ErrMissingAccount
	case req.AccessToken == "":
		return nil, ErrMissingToken
	case req.PostID == "":
		return nil, ErrMissingPost
	}

	logger := c.logger.With(slog.String("account", req.AccountID), slog.String("name", req.Name))
	tx := saga.New(logger)
	token := req.AccessToken

	campaignID, err := c.CreateCampaign(ctx, req.AccountID, token, req.Name, req.Objective)
	if err != nil {
		return nil, fmt.Errorf("create campaign: %w", err)
	}
	tx.Defer("campaign "+campaignID, func(ctx context.Context) error {
		return c.Delete(ctx, token, campaignID)
	})

	adSetID, err := c.CreateAdSet(ctx, req.AccountID, token, campaignID, req.Name+" - Ad Set", req.DailyBudget, req.Targeting, req.Platform)
	if err != nil {
		return nil, c.rollback(ctx, tx, fmt.Errorf("create ad set: %w", err))
	}
	tx.Defer("ad set "+adSetID, func(ctx context.Context) error {
		return c.Delete(ctx, token, adSetID)
	})

	creativeID, err := c.CreateCreative(ctx, req.AccountID, token, req.PageID, req.Name+" - Creative", req.LinkURL, req.Message)
	if err != nil {
		logger.Warn("link creative refused, falling back to published post", slog.String("post", req.PostID), slog.Any("error", err))
		creativeID, err = c.CreatePostCreative(ctx, req.AccountID, token, req.Name+" - Post Creative", req.Platform, req.PostID, req.InstagramAccountID)
		if err != nil {
			return nil, c.rollback(ctx, tx, fmt.Errorf("create creative: %w", err))
		}
	}

	adID, err := c.CreateAd(ctx, req.AccountID, token, adSetID, creativeID, req.Name+" - Ad")
	if err != nil {
		return nil, c.rollback(ctx, tx, fmt.Errorf("create ad: %w", err))
	}

	res := &port.LaunchResult{
		CampaignID: campaignID,
		AdSetID:    adSetID,
		CreativeID: creativeID,
		AdID:       adID,
	}
	res.Activated = c.activate(ctx, logger, token, campaignID, adSetID, adID)
	return res, nil
}

// rollback compensates the saga and returns cause, joined with any
// compensation failure. Compensation runs even if ctx was cancelled.
func (c *Client) rollback(ctx context.Context, tx *saga.Saga, cause error) error {
	metrics.RollbacksTotal.Inc()
	if err := tx.Compensate(context.WithoutCancel(ctx)); err != nil {
		return errors.Join(cause, fmt.Errorf("rollback: %w", err))
	}
	return cause
}

// activate flips each resource to active in hierarchy order. Every flip is
// attempted; the result is false if any failed.
func (c *Client) activate(ctx context.Context, logger *slog.Logger, token string, ids ...string) bool {
	ok := true
	for _, id := range ids {
		if err := c.SetStatus(ctx, token, id, StatusActive); err != nil {
			logger.Warn("activation failed, resource left paused", slog.String("object", id), slog.Any("error", err))
			ok = false
		}
	}
	return ok
}
