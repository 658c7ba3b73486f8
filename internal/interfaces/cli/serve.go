package cli

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pharmindex/repurpose/internal/application/search"
	"github.com/pharmindex/repurpose/internal/infrastructure/database/postgres/repositories"
	"github.com/pharmindex/repurpose/internal/infrastructure/database/redis"
	"github.com/pharmindex/repurpose/internal/infrastructure/monitoring/logging"
	"github.com/pharmindex/repurpose/internal/infrastructure/monitoring/prometheus"
	httpiface "github.com/pharmindex/repurpose/internal/interfaces/http"
	"github.com/pharmindex/repurpose/internal/interfaces/http/handlers"
)

func newServeCmd(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), app)
		},
	}
}

func runServe(ctx context.Context, app *appContext) error {
	collector, err := prometheus.NewMetricsCollector(prometheus.CollectorConfig{
		Namespace:            "repurpose",
		EnableProcessMetrics: true,
		EnableGoMetrics:      true,
	}, app.log)
	if err != nil {
		return err
	}
	metrics := prometheus.NewAppMetrics(collector)

	conn, err := app.openPostgres()
	if err != nil {
		return err
	}
	defer conn.Close()

	checks := map[string]handlers.HealthChecker{
		"postgres": conn.HealthCheck,
	}

	var cache redis.Cache
	if app.cfg.Redis.Enabled {
		client, err := redis.NewClient(app.cfg.Redis, app.log)
		if err != nil {
			return err
		}
		defer client.Close()
		cache = redis.NewRedisCache(client, app.log,
			redis.WithPrefix(app.cfg.Redis.KeyPrefix),
			redis.WithDefaultTTL(app.cfg.Redis.DefaultTTL))
		checks["redis"] = client.HealthCheck
	}

	providers := app.buildProviders(metrics)
	dict, classifier, enricher := app.buildPipeline(providers)

	mappingRepo := repositories.NewMappingRepository(conn, app.log).WithMetrics(metrics)
	historyRepo := repositories.NewHistoryRepository(conn, app.log).WithMetrics(metrics)
	brandRepo := repositories.NewBrandNameRepository(conn, app.log).WithMetrics(metrics)

	svc := search.NewService(classifier, enricher, dict, mappingRepo, historyRepo, brandRepo, metrics, app.log)

	router := httpiface.NewRouter(httpiface.RouterConfig{
		SearchHandler: handlers.NewSearchHandler(svc),
		HealthHandler: handlers.NewHealthHandler(checks),
		Cache:         cache,
		CacheTTL:      app.cfg.Redis.DefaultTTL,
		Logger:        app.log,
		Metrics:       metrics,
		Collector:     collector,
		Mode:          app.cfg.Server.Mode,
	})
	server := httpiface.NewServer(app.cfg.Server, router, app.log)

	signalCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- server.Start() }()

	select {
	case err := <-errCh:
		return err
	case <-signalCtx.Done():
		app.log.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Stop(shutdownCtx); err != nil {
		app.log.Error("graceful shutdown failed", logging.Err(err))
		return err
	}
	return nil
}
