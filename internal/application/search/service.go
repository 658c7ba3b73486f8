// Package search provides the application-level service for interactive
// lookups.  It chains classification, enrichment, and best-effort history
// recording, and serves repurposing queries from the mapping store.
package search

import (
	"context"
	"time"

	"github.com/pharmindex/repurpose/internal/domain/classify"
	"github.com/pharmindex/repurpose/internal/domain/enrich"
	"github.com/pharmindex/repurpose/internal/domain/history"
	"github.com/pharmindex/repurpose/internal/domain/mapping"
	"github.com/pharmindex/repurpose/internal/infrastructure/monitoring/logging"
	"github.com/pharmindex/repurpose/internal/infrastructure/monitoring/prometheus"
	apperrors "github.com/pharmindex/repurpose/pkg/errors"
	"github.com/pharmindex/repurpose/pkg/types/common"
)

// Service defines the interactive search operations.
type Service interface {
	Search(ctx context.Context, input *SearchInput) (*Result, error)
	Repurpose(ctx context.Context, disease string, p common.Pagination) (*RepurposeResult, error)
	DrugDetail(ctx context.Context, name string) (*enrich.Record, error)
	History(ctx context.Context, limit int) ([]*history.Entry, error)
}

// SearchInput carries one search request.
type SearchInput struct {
	Query     string
	UserEmail string
}

// Result is the enriched record together with the layer that decided
// the classification.
type Result struct {
	Record    *enrich.Record `json:"record"`
	DecidedBy classify.Layer `json:"decided_by"`
}

// RepurposeResult lists candidate drugs for a disease.  Curated is true
// when the store had no rows and the curated dictionary answered instead.
type RepurposeResult struct {
	Disease  string                    `json:"disease"`
	Mappings []*mapping.DiseaseMapping `json:"mappings"`
	Curated  bool                      `json:"curated"`
}

const curatedConfidence = 50

type classifierPort interface {
	Classify(ctx context.Context, query string) (*classify.Result, error)
}

type enricherPort interface {
	Enrich(ctx context.Context, res *classify.Result) (*enrich.Record, error)
	EnrichDrug(ctx context.Context, res *classify.Result) *enrich.Record
}

type serviceImpl struct {
	classifier classifierPort
	enricher   enricherPort
	dict       *classify.Dictionaries
	mappings   mapping.Repository
	hist       history.Repository
	brands     enrich.BrandStore
	metrics    *prometheus.AppMetrics
	log        logging.Logger
}

// NewService wires the interactive search service.  hist, brands, and
// metrics may be nil; the corresponding steps are then skipped.
func NewService(
	classifier classifierPort,
	enricher enricherPort,
	dict *classify.Dictionaries,
	mappings mapping.Repository,
	hist history.Repository,
	brands enrich.BrandStore,
	metrics *prometheus.AppMetrics,
	log logging.Logger,
) Service {
	return &serviceImpl{
		classifier: classifier,
		enricher:   enricher,
		dict:       dict,
		mappings:   mappings,
		hist:       hist,
		brands:     brands,
		metrics:    metrics,
		log:        log.Named("search"),
	}
}

// Search classifies the query, enriches it per kind, and appends a
// history entry.  History failures are logged and never surface.
func (s *serviceImpl) Search(ctx context.Context, input *SearchInput) (*Result, error) {
	started := time.Now()
	res, err := s.classifier.Classify(ctx, input.Query)
	if err != nil {
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.ClassificationsTotal.WithLabelValues(string(res.Kind), string(res.Layer)).Inc()
		s.metrics.ClassificationDuration.WithLabelValues(string(res.Kind)).Observe(time.Since(started).Seconds())
	}

	rec, err := s.enricher.Enrich(ctx, res)
	if err != nil {
		return nil, err
	}
	s.fillCuratedBrands(ctx, rec)

	s.recordHistory(ctx, input.UserEmail, res, rec)
	return &Result{Record: rec, DecidedBy: res.Layer}, nil
}

// fillCuratedBrands backfills market names from the curated brand-name
// table when every provider came up empty.  Best effort.
func (s *serviceImpl) fillCuratedBrands(ctx context.Context, rec *enrich.Record) {
	if s.brands == nil || rec == nil || rec.Drug == "" || len(rec.MarketNames) > 0 {
		return
	}
	names, found, err := s.brands.FindByDrug(ctx, rec.Drug)
	if err != nil {
		s.log.Warn("curated brand lookup failed",
			logging.String("drug", rec.Drug),
			logging.Err(err))
		return
	}
	if found {
		rec.MarketNames = names
	}
}

// Repurpose returns stored drug candidates for a disease, falling back
// to the curated dictionary when the store has none.
func (s *serviceImpl) Repurpose(ctx context.Context, disease string, p common.Pagination) (*RepurposeResult, error) {
	canonical := mapping.CanonicalDiseaseName(disease)
	if canonical == "" {
		return nil, apperrors.InvalidParam("disease name is required")
	}

	mappings, err := s.mappings.FindByDisease(ctx, canonical, p)
	if err != nil {
		return nil, err
	}
	if len(mappings) > 0 {
		return &RepurposeResult{Disease: canonical, Mappings: mappings}, nil
	}

	drugs := s.dict.CuratedDiseaseDrugs(canonical)
	if len(drugs) == 0 {
		return &RepurposeResult{Disease: canonical, Mappings: []*mapping.DiseaseMapping{}}, nil
	}
	curated := make([]*mapping.DiseaseMapping, 0, len(drugs))
	for _, drug := range drugs {
		curated = append(curated, &mapping.DiseaseMapping{
			DiseaseName:     canonical,
			DrugName:        drug,
			ConfidenceScore: curatedConfidence,
			Source:          common.SourceCurated,
		})
	}
	return &RepurposeResult{Disease: canonical, Mappings: curated, Curated: true}, nil
}

// DrugDetail enriches a name directly as a drug, skipping classification.
func (s *serviceImpl) DrugDetail(ctx context.Context, name string) (*enrich.Record, error) {
	if name == "" {
		return nil, apperrors.InvalidParam("drug name is required")
	}
	res := &classify.Result{Query: name, Kind: common.KindDrug}
	rec := s.enricher.EnrichDrug(ctx, res)
	s.fillCuratedBrands(ctx, rec)
	return rec, nil
}

// History returns the most recent search entries.
func (s *serviceImpl) History(ctx context.Context, limit int) ([]*history.Entry, error) {
	if s.hist == nil {
		return nil, nil
	}
	return s.hist.ListRecent(ctx, limit)
}

func (s *serviceImpl) recordHistory(ctx context.Context, userEmail string, res *classify.Result, rec *enrich.Record) {
	if s.hist == nil {
		return
	}
	entry := &history.Entry{
		UserEmail:     userEmail,
		Query:         res.Query,
		SearchType:    res.Kind,
		ResultPreview: enrich.Preview(rec),
	}
	if err := s.hist.Append(ctx, entry); err != nil {
		s.log.Warn("failed to record search history",
			logging.String("query", res.Query),
			logging.Err(err))
	}
}
