package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharmindex/repurpose/internal/infrastructure/monitoring/logging"
)

// memoryCache implements redis.Cache over a plain map.
type memoryCache struct {
	values map[string][]byte
	sets   int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{values: make(map[string][]byte)}
}

func (m *memoryCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, ok := m.values[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(data, dest)
}

func (m *memoryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.values[key] = data
	m.sets++
	return nil
}

func (m *memoryCache) Delete(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.values, k)
	}
	return nil
}

func (m *memoryCache) Ping(ctx context.Context) error { return nil }

func newCachedRouter(cache *memoryCache, hits *int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ResponseCache(cache, time.Minute, logging.NewNopLogger(), nil))
	r.GET("/api/search", func(c *gin.Context) {
		*hits++
		c.JSON(http.StatusOK, gin.H{"drug": "Aspirin"})
	})
	r.GET("/api/missing", func(c *gin.Context) {
		*hits++
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
	return r
}

func get(r *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestResponseCache_SecondRequestServedFromCache(t *testing.T) {
	cache := newMemoryCache()
	hits := 0
	r := newCachedRouter(cache, &hits)

	first := get(r, "/api/search?q=aspirin")
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, 1, hits)
	assert.Equal(t, 1, cache.sets)

	second := get(r, "/api/search?q=aspirin")
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, 1, hits, "handler must not run on a cache hit")
	assert.JSONEq(t, first.Body.String(), second.Body.String())
}

func TestResponseCache_QueryStringIsPartOfTheKey(t *testing.T) {
	cache := newMemoryCache()
	hits := 0
	r := newCachedRouter(cache, &hits)

	get(r, "/api/search?q=aspirin")
	get(r, "/api/search?q=metformin")
	assert.Equal(t, 2, hits)
}

func TestResponseCache_NonOKResponsesAreNotCached(t *testing.T) {
	cache := newMemoryCache()
	hits := 0
	r := newCachedRouter(cache, &hits)

	get(r, "/api/missing")
	get(r, "/api/missing")
	assert.Equal(t, 2, hits)
	assert.Zero(t, cache.sets)
}
