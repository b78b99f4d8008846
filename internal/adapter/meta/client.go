// Package meta is the outbound adapter to the Meta Marketing (Graph) API.
// It issues the campaign creation protocol, the boost fallback, reporting
// reads, token probes and location searches. Every call goes through one
// rate limiter and one circuit breaker; non-2xx responses surface as
// *APIError values and never panic.
package meta

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"adpilot/internal/config/configs"
	"adpilot/internal/metrics"
)

const breakerName = "meta-graph-api"

// maxResponseBytes bounds how much of a response body is read.
const maxResponseBytes = 4 << 20

// Client talks to the Graph API. It is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	cb         *gobreaker.CircuitBreaker[[]byte]
	logger     *slog.Logger
	objective  string
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient builds a client from cfg. A zero RateLimit disables limiting.
func NewClient(cfg configs.Meta, logger *slog.Logger, opts ...Option) *Client {
	limit := rate.Limit(cfg.RateLimit)
	if cfg.RateLimit <= 0 {
		limit = rate.Inf
	}
	burst := cfg.RateBurst
	if burst < 1 {
		burst = 1
	}
	objective := cfg.DefaultObjective
	if objective == "" {
		objective = "OUTCOME_TRAFFIC"
	}

	c := &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(limit, burst),
		logger:     logger.With(slog.String("component", "meta-client")),
		objective:  objective,
	}
	c.cb = newBreaker(c.logger)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func newBreaker(logger *slog.Logger) *gobreaker.CircuitBreaker[[]byte] {
	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)
	return gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		// Client errors are answers, not outages.
		IsSuccessful: func(err error) bool {
			var apiErr *APIError
			if errors.As(err, &apiErr) {
				return apiErr.Status < http.StatusInternalServerError && apiErr.Status != http.StatusTooManyRequests
			}
			return err == nil
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
		},
	})
}

func stateToFloat(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}

// requestConfig describes one Graph call. At most one of form and body is set.
type requestConfig struct {
	op     string // metrics label
	method string
	path   string
	query  url.Values
	form   url.Values
	body   any
}

// do executes cfg through the limiter and breaker and decodes a 2xx body
// into result when result is non-nil.
func (c *Client) do(ctx context.Context, cfg requestConfig, result any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		metrics.PlatformRequestsTotal.WithLabelValues(cfg.op, "rate_limited").Inc()
		return fmt.Errorf("%s: rate limiter: %w", cfg.op, err)
	}

	body, err := c.cb.Execute(func() ([]byte, error) {
		return c.roundTrip(ctx, cfg)
	})
	if err != nil {
		outcome := "failure"
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			outcome = "rejected"
		}
		metrics.PlatformRequestsTotal.WithLabelValues(cfg.op, outcome).Inc()
		return fmt.Errorf("%s: %w", cfg.op, err)
	}
	metrics.PlatformRequestsTotal.WithLabelValues(cfg.op, "success").Inc()

	if result == nil {
		return nil
	}
	if err = json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("%s: decode response: %w", cfg.op, err)
	}
	return nil
}

func (c *Client) roundTrip(ctx context.Context, cfg requestConfig) ([]byte, error) {
	var (
		reader      io.Reader = http.NoBody
		contentType string
	)
	switch {
	case cfg.form != nil:
		reader = strings.NewReader(cfg.form.Encode())
		contentType = "application/x-www-form-urlencoded"
	case cfg.body != nil:
		raw, err := json.Marshal(cfg.body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, cfg.method, c.baseURL+cfg.path, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if len(cfg.query) > 0 {
		req.URL.RawQuery = cfg.query.Encode()
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, parseAPIError(resp.StatusCode, body)
	}
	return body, nil
}

// accountPath normalises an ad account id to the act_<id> form.
func accountPath(accountID string) string {
	return "/act_" + strings.TrimPrefix(accountID, "act_")
}

// tokenValues returns url.Values pre-filled with the access token.
func tokenValues(token string) url.Values {
	v := url.Values{}
	v.Set("access_token", token)
	return v
}

type idResponse struct {
	ID string `json:"id"`
}
