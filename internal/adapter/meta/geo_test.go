package meta

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"adpilot/internal/adapter/geocache"
)

func TestGeoResolverPrefersExactMatch(t *testing.T) {
	g := newFakeGraph(t)
	g.geoResult = `{"data":[
		{"key":"111","name":"Franklin","region":"Kentucky"},
		{"key":"222","name":"Franklin","region":"Tennessee"}
	]}`
	r := NewGeoResolver(g.client(), geocache.NewMemory(), "2514815")

	assert.Equal(t, "222", r.Resolve(context.Background(), "Franklin", "Tennessee", "tok"))

	search := g.callsOf("search")[0]
	assert.Equal(t, "adgeolocation", search.Form.Get("type"))
	assert.Equal(t, "Franklin", search.Form.Get("q"))
}

func TestGeoResolverFallsBackToFirstResult(t *testing.T) {
	g := newFakeGraph(t)
	g.geoResult = `{"data":[{"key":"333","name":"Springfield","region":"Illinois"}]}`
	r := NewGeoResolver(g.client(), geocache.NewMemory(), "2514815")

	assert.Equal(t, "333", r.Resolve(context.Background(), "Springfeld", "Missouri", "tok"))
}

func TestGeoResolverDefaultsAndCaches(t *testing.T) {
	g := newFakeGraph(t)
	cache := geocache.NewMemory()
	r := NewGeoResolver(g.client(), cache, "2514815")

	assert.Equal(t, "2514815", r.Resolve(context.Background(), "Nowhere", "Tennessee", "tok"))
	assert.Equal(t, "2514815", r.Resolve(context.Background(), "NOWHERE", "tennessee", "tok"))

	assert.Len(t, g.callsOf("search"), 1)
	v, ok := cache.Get(context.Background(), "nowhere,tennessee")
	assert.True(t, ok)
	assert.Equal(t, "2514815", v)
}

func TestGeoResolverDefaultsOnAPIError(t *testing.T) {
	g := newFakeGraph(t)
	g.fail["search"] = http.StatusBadRequest
	cache := geocache.NewMemory()
	r := NewGeoResolver(g.client(), cache, "2514815")

	assert.Equal(t, "2514815", r.Resolve(context.Background(), "Memphis", "Tennessee", "tok"))

	_, ok := cache.Get(context.Background(), "memphis,tennessee")
	assert.False(t, ok)
}

func TestGeoResolverRetriesAfterOutage(t *testing.T) {
	g := newFakeGraph(t)
	g.fail["search"] = http.StatusServiceUnavailable
	g.geoResult = `{"data":[{"key":"2490299","name":"Memphis","region":"Tennessee"}]}`
	cache := geocache.NewMemory()
	r := NewGeoResolver(g.client(), cache, "2514815")
	ctx := context.Background()

	assert.Equal(t, "2514815", r.Resolve(ctx, "Memphis", "Tennessee", "tok"))

	g.mu.Lock()
	delete(g.fail, "search")
	g.mu.Unlock()

	assert.Equal(t, "2490299", r.Resolve(ctx, "Memphis", "Tennessee", "tok"))
	assert.Equal(t, "2490299", r.Resolve(ctx, "Memphis", "Tennessee", "tok"))
	assert.Len(t, g.callsOf("search"), 2)

	v, ok := cache.Get(ctx, "memphis,tennessee")
	assert.True(t, ok)
	assert.Equal(t, "2490299", v)
}
