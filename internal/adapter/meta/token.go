package meta

import (
	"context"
	"log/slog"
	"net/http"
)

// ValidateToken probes /me with the token. Any failure, including a network
// error, reports the token as unusable; refreshing it is left to a human.
func (c *Client) ValidateToken(ctx context.Context, token string) bool {
	if token == "" {
		return false
	}
	q := tokenValues(token)
	q.Set("fields", "id")

	var resp idResponse
	if err := c.do(ctx, requestConfig{op: "validate_token", method: http.MethodGet, path: "/me", query: q}, &resp); err != nil {
		c.logger.Info("access token rejected", slog.Any("error", err))
		return false
	}
	return resp.ID != ""
}
