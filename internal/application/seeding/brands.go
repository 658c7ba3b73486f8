package seeding

import (
	"context"

	"github.com/pharmindex/repurpose/internal/domain/enrich"
	"github.com/pharmindex/repurpose/internal/infrastructure/monitoring/logging"
)

// SeedBrandNames upserts the curated brand-name set into the store.
// Individual failures are logged and skipped; the count of stored seeds
// is returned.
func SeedBrandNames(ctx context.Context, store enrich.BrandStore, log logging.Logger) (int, error) {
	stored := 0
	for _, seed := range enrich.BrandNameSeeds() {
		if err := store.Upsert(ctx, seed); err != nil {
			log.Warn("brand seed upsert failed",
				logging.String("drug", seed.CanonicalName),
				logging.Err(err))
			continue
		}
		stored++
	}
	log.Info("brand name seeding finished", logging.Int("stored", stored))
	return stored, nil
}
