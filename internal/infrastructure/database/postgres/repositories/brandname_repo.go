package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/pharmindex/repurpose/internal/domain/enrich"
	"github.com/pharmindex/repurpose/internal/infrastructure/database/postgres"
	"github.com/pharmindex/repurpose/internal/infrastructure/monitoring/logging"
	"github.com/pharmindex/repurpose/internal/infrastructure/monitoring/prometheus"
	apperrors "github.com/pharmindex/repurpose/pkg/errors"
)

// BrandNameRepository is the PostgreSQL implementation of enrich.BrandStore.
type BrandNameRepository struct {
	db      queryExecutor
	metrics *prometheus.AppMetrics
	log     logging.Logger
}

func NewBrandNameRepository(conn *postgres.Connection, log logging.Logger) *BrandNameRepository {
	return &BrandNameRepository{db: conn.DB(), log: log.Named("brandname_repo")}
}

// WithMetrics attaches query metrics and returns the repository for chaining.
func (r *BrandNameRepository) WithMetrics(m *prometheus.AppMetrics) *BrandNameRepository {
	r.metrics = m
	return r
}

// Upsert stores or replaces the brand entry for a canonical drug name.
func (r *BrandNameRepository) Upsert(ctx context.Context, seed enrich.BrandSeed) error {
	if seed.CanonicalName == "" {
		return apperrors.InvalidParam("canonical drug name is required")
	}
	defer observeQuery(r.metrics, "brand_names", "upsert", time.Now())
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO drug_brand_names (canonical_drug_name, brand_names, regions, source, created_at)
		VALUES ($1,$2,$3,$4,$5)
		ON CONFLICT (canonical_drug_name)
		DO UPDATE SET brand_names = EXCLUDED.brand_names,
		              regions = EXCLUDED.regions,
		              source = EXCLUDED.source`,
		seed.CanonicalName, marshalList(seed.BrandNames), marshalList(seed.Regions),
		seed.Source, time.Now().UTC(),
	)
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeDBError, "failed to upsert brand names")
	}
	return nil
}

// FindByDrug returns the stored brand names for a canonical drug name.
func (r *BrandNameRepository) FindByDrug(ctx context.Context, canonicalName string) ([]string, bool, error) {
	defer observeQuery(r.metrics, "brand_names", "find_by_drug", time.Now())
	var brands sql.NullString
	err := r.db.QueryRowContext(ctx, `
		SELECT brand_names FROM drug_brand_names WHERE canonical_drug_name = $1`,
		canonicalName,
	).Scan(&brands)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, apperrors.Wrap(err, apperrors.CodeDBError, "failed to find brand names")
	}

	names := unmarshalList(brands)
	if len(names) == 0 {
		return nil, false, nil
	}
	return names, true, nil
}
