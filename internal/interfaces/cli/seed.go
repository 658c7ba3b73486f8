package cli

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/pharmindex/repurpose/internal/application/seeding"
	"github.com/pharmindex/repurpose/internal/infrastructure/database/postgres/repositories"
	"github.com/pharmindex/repurpose/internal/infrastructure/monitoring/prometheus"
)

func newSeedCmd(app *appContext) *cobra.Command {
	var (
		limit       int
		concurrency int
		srcs        []string
		diseases    []string
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Bulk-load the disease-drug mapping store from external sources",
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := app.openPostgres()
			if err != nil {
				return err
			}
			defer conn.Close()

			collector, err := prometheus.NewMetricsCollector(prometheus.CollectorConfig{
				Namespace: "repurpose",
			}, app.log)
			if err != nil {
				return err
			}
			metrics := prometheus.NewAppMetrics(collector)

			providers := app.buildProviders(metrics)
			repo := repositories.NewMappingRepository(conn, app.log).WithMetrics(metrics)
			seeder := seeding.NewSeeder(
				providers.chembl,
				providers.disgenet,
				providers.pubchem,
				providers.chembl,
				providers.drugbank,
				repo, metrics, app.log,
			)

			opts := seeding.Options{
				Limit:           limit,
				PageSize:        app.cfg.Seeder.PageSize,
				Concurrency:     concurrency,
				CommitBatchSize: app.cfg.Seeder.CommitBatchSize,
				Sources:         srcs,
				Diseases:        diseases,
			}
			if opts.Limit <= 0 {
				opts.Limit = app.cfg.Seeder.Limit
			}
			if opts.Concurrency <= 0 {
				opts.Concurrency = app.cfg.Seeder.Concurrency
			}
			if len(opts.Sources) == 0 {
				opts.Sources = app.cfg.Seeder.Sources
			}

			stats, err := seeder.Run(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return json.NewEncoder(os.Stdout).Encode(stats)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "max records to collect per source (default from config)")
	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "enrichment worker count (default from config)")
	cmd.Flags().StringSliceVar(&srcs, "sources", nil, "sources to collect from: chembl,disgenet (default all)")
	cmd.Flags().StringSliceVar(&diseases, "diseases", nil, "restrict to these diseases (canonicalized)")

	cmd.AddCommand(newSeedBrandsCmd(app))
	return cmd
}

func newSeedBrandsCmd(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "brands",
		Short: "Load the curated brand-name seed set",
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := app.openPostgres()
			if err != nil {
				return err
			}
			defer conn.Close()

			store := repositories.NewBrandNameRepository(conn, app.log)
			stored, err := seeding.SeedBrandNames(cmd.Context(), store, app.log)
			if err != nil {
				return err
			}
			return json.NewEncoder(os.Stdout).Encode(map[string]int{"stored": stored})
		},
	}
}
