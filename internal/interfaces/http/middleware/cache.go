package middleware

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pharmindex/repurpose/internal/infrastructure/database/redis"
	"github.com/pharmindex/repurpose/internal/infrastructure/monitoring/logging"
	"github.com/pharmindex/repurpose/internal/infrastructure/monitoring/prometheus"
)

// cachedResponse is the payload stored per cache key.  Body is stored as
// raw bytes; encoding/json base64-encodes it transparently.
type cachedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

type teeWriter struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *teeWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *teeWriter) WriteString(s string) (int, error) {
	w.buf.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// ResponseCache serves successful GET responses from the cache, keyed by
// path and query.  Cache failures degrade to a pass-through.  metrics may
// be nil.
func ResponseCache(cache redis.Cache, ttl time.Duration, log logging.Logger, metrics *prometheus.AppMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cache == nil || c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		endpoint := c.FullPath()
		key := "http:" + c.Request.URL.Path
		if q := c.Request.URL.RawQuery; q != "" {
			key += "?" + q
		}

		var cached cachedResponse
		found, err := cache.Get(c.Request.Context(), key, &cached)
		if err != nil {
			log.Warn("response cache read failed",
				logging.String("key", key),
				logging.Err(err))
		}
		if found {
			if metrics != nil {
				metrics.CacheHitsTotal.WithLabelValues(endpoint).Inc()
			}
			c.Data(cached.Status, cached.ContentType, cached.Body)
			c.Abort()
			return
		}
		if metrics != nil {
			metrics.CacheMissesTotal.WithLabelValues(endpoint).Inc()
		}

		tee := &teeWriter{ResponseWriter: c.Writer}
		c.Writer = tee
		c.Next()

		if c.Writer.Status() != http.StatusOK {
			return
		}
		entry := cachedResponse{
			Status:      c.Writer.Status(),
			ContentType: c.Writer.Header().Get("Content-Type"),
			Body:        tee.buf.Bytes(),
		}
		if err := cache.Set(c.Request.Context(), key, entry, ttl); err != nil {
			log.Warn("response cache write failed",
				logging.String("key", key),
				logging.Err(err))
		}
	}
}
