package meta

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"adpilot/internal/core/port"
)

type geoLocation struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	CountryCode string `json:"country_code"`
	Region      string `json:"region"`
}

type geoSearchResponse struct {
	Data []geoLocation `json:"data"`
}

// GeoResolver maps city and state onto the platform's location key through
// an injected cache. Targeting must never block creation, so every failure
// yields the default key.
type GeoResolver struct {
	client     *Client
	cache      port.GeoCache
	defaultKey string
	logger     *slog.Logger
}

func NewGeoResolver(client *Client, cache port.GeoCache, defaultKey string) *GeoResolver {
	return &GeoResolver{
		client:     client,
		cache:      cache,
		defaultKey: defaultKey,
		logger:     client.logger.With(slog.String("component", "geo-resolver")),
	}
}

func cacheKey(city, state string) string {
	return strings.ToLower(city + "," + state)
}

// Resolve returns the location key for city and state. The default key is
// cached only when the search answered with no results; after a failed
// search the next call asks the platform again.
func (g *GeoResolver) Resolve(ctx context.Context, city, state, token string) string {
	key := cacheKey(city, state)
	if v, ok := g.cache.Get(ctx, key); ok {
		return v
	}

	resolved, cacheable := g.lookup(ctx, city, state, token)
	if cacheable {
		g.cache.Set(ctx, key, resolved)
	}
	return resolved
}

// lookup reports whether its answer came from a completed search.
func (g *GeoResolver) lookup(ctx context.Context, city, state, token string) (string, bool) {
	q := tokenValues(token)
	q.Set("type", "adgeolocation")
	q.Set("location_types", `["city"]`)
	q.Set("q", city)

	var resp geoSearchResponse
	err := g.client.do(ctx, requestConfig{op: "geo_search", method: http.MethodGet, path: "/search", query: q}, &resp)
	if err != nil {
		g.logger.Warn("location search failed, using default key",
			slog.String("city", city), slog.String("state", state), slog.Any("error", err))
		return g.defaultKey, false
	}
	if len(resp.Data) == 0 {
		g.logger.Info("location search empty, using default key", slog.String("city", city), slog.String("state", state))
		return g.defaultKey, true
	}
	return bestMatch(resp.Data, city, state).Key, true
}

// bestMatch prefers an exact name and region match, then a name match, then
// the first result.
func bestMatch(found []geoLocation, city, state string) geoLocation {
	for _, loc := range found {
		if strings.EqualFold(loc.Name, city) && strings.EqualFold(loc.Region, state) {
			return loc
		}
	}
	for _, loc := range found {
		if strings.EqualFold(loc.Name, city) {
			return loc
		}
	}
	return found[0]
}
