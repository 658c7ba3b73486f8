// Package http assembles the gin route tree and the HTTP server.
package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pharmindex/repurpose/internal/infrastructure/database/redis"
	"github.com/pharmindex/repurpose/internal/infrastructure/monitoring/logging"
	"github.com/pharmindex/repurpose/internal/infrastructure/monitoring/prometheus"
	"github.com/pharmindex/repurpose/internal/interfaces/http/handlers"
	"github.com/pharmindex/repurpose/internal/interfaces/http/middleware"
)

// RouterConfig aggregates the handler and middleware dependencies for the
// route tree.  Cache, Metrics, and Collector are optional.
type RouterConfig struct {
	SearchHandler *handlers.SearchHandler
	HealthHandler *handlers.HealthHandler

	Cache    redis.Cache
	CacheTTL time.Duration

	Logger    logging.Logger
	Metrics   *prometheus.AppMetrics
	Collector prometheus.MetricsCollector

	// Mode is the gin mode: "debug", "release", or "test".
	Mode string
}

// NewRouter builds the complete route tree.
func NewRouter(cfg RouterConfig) *gin.Engine {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogging(cfg.Logger, cfg.Metrics, "/api/health", "/metrics"))

	if cfg.Collector != nil {
		r.GET("/metrics", gin.WrapH(cfg.Collector.Handler()))
	}

	api := r.Group("/api")
	if cfg.HealthHandler != nil {
		api.GET("/health", cfg.HealthHandler.Health)
	}

	if cfg.SearchHandler != nil {
		cached := api.Group("")
		if cfg.Cache != nil {
			cached.Use(middleware.ResponseCache(cfg.Cache, cfg.CacheTTL, cfg.Logger, cfg.Metrics))
		}
		cached.GET("/search", cfg.SearchHandler.Search)
		cached.GET("/repurpose", cfg.SearchHandler.Repurpose)
		cached.GET("/drug/:name", cfg.SearchHandler.DrugDetail)

		// History must reflect the latest searches, so it bypasses the cache.
		api.GET("/history", cfg.SearchHandler.History)
	}

	return r
}
