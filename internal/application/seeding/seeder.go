// Package seeding provides the batch service that bulk-loads the
// disease-drug mapping store from the external providers.
package seeding

import (
	"context"
	"strings"
	"sync"

	"github.com/pharmindex/repurpose/internal/domain/enrich"
	"github.com/pharmindex/repurpose/internal/domain/mapping"
	"github.com/pharmindex/repurpose/internal/infrastructure/monitoring/logging"
	"github.com/pharmindex/repurpose/internal/infrastructure/monitoring/prometheus"
	"github.com/pharmindex/repurpose/internal/infrastructure/sources"
	apperrors "github.com/pharmindex/repurpose/pkg/errors"
	"github.com/pharmindex/repurpose/pkg/types/common"
)

// Defaults applied when Options leaves a field zero.
const (
	defaultLimit           = 500
	defaultPageSize        = 100
	defaultConcurrency     = 4
	defaultCommitBatchSize = 100
	maxStoredSynonyms      = 10
)

// Options control one seeding run.
type Options struct {
	// Limit caps the number of records collected per source.
	Limit int
	// PageSize is the ChEMBL indication feed page size.
	PageSize int
	// Concurrency bounds the enrichment worker pool.
	Concurrency int
	// CommitBatchSize is how many inserts make up one progress batch.
	CommitBatchSize int
	// Sources restricts collection ("chembl", "disgenet"). Empty means all.
	Sources []string
	// Diseases is an optional canonical disease allow-list.
	Diseases []string
}

// Stats summarises a completed run.
type Stats struct {
	Processed         int `json:"processed"`
	Inserted          int `json:"inserted"`
	DuplicatesSkipped int `json:"duplicates_skipped"`
	Errors            int `json:"errors"`
}

type indicationSource interface {
	DrugIndications(ctx context.Context, limit, offset int) ([]sources.IndicationRecord, error)
}

type associationSource interface {
	Associations(ctx context.Context, limit int) ([]sources.AssociationRecord, error)
}

type compoundSource interface {
	Lookup(ctx context.Context, name string) (*sources.CompoundIdentity, bool, error)
}

type moleculeSource interface {
	Molecule(ctx context.Context, chemblID string) (*sources.CompoundIdentity, bool, error)
}

type drugBankSource interface {
	Available() bool
	Lookup(ctx context.Context, name string) (*sources.DrugBankRecord, bool, error)
}

// Seeder collects, enriches, and stores disease-drug mappings.
type Seeder struct {
	chembl   indicationSource
	disgenet associationSource
	pubchem  compoundSource
	molecule moleculeSource
	drugbank drugBankSource
	repo     mapping.Repository
	metrics  *prometheus.AppMetrics
	log      logging.Logger
}

// NewSeeder wires the batch seeder.  Any source may be nil and is then
// skipped; metrics may be nil.
func NewSeeder(
	chembl indicationSource,
	disgenet associationSource,
	pubchem compoundSource,
	molecule moleculeSource,
	drugbank drugBankSource,
	repo mapping.Repository,
	metrics *prometheus.AppMetrics,
	log logging.Logger,
) *Seeder {
	return &Seeder{
		chembl:   chembl,
		disgenet: disgenet,
		pubchem:  pubchem,
		molecule: molecule,
		drugbank: drugbank,
		repo:     repo,
		metrics:  metrics,
		log:      log.Named("seeder"),
	}
}

// Run executes one seeding pass.  Individual record failures are counted
// and skipped; only a completely unreachable store is fatal.
func (s *Seeder) Run(ctx context.Context, opts Options) (*Stats, error) {
	applyDefaults(&opts)

	if _, err := s.repo.Count(ctx); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDBError, "mapping store unavailable")
	}

	collected := s.collect(ctx, opts)
	collected = filterByDisease(collected, opts.Diseases)
	collected = mapping.Dedupe(collected)

	s.log.Info("collected candidate mappings",
		logging.Int("count", len(collected)),
	)

	s.enrichAll(ctx, collected, opts.Concurrency)
	return s.store(ctx, collected, opts.CommitBatchSize), nil
}

func applyDefaults(opts *Options) {
	if opts.Limit <= 0 {
		opts.Limit = defaultLimit
	}
	if opts.PageSize <= 0 {
		opts.PageSize = defaultPageSize
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = defaultConcurrency
	}
	if opts.CommitBatchSize <= 0 {
		opts.CommitBatchSize = defaultCommitBatchSize
	}
}

func sourceEnabled(opts Options, name common.SourceName) bool {
	if len(opts.Sources) == 0 {
		return true
	}
	for _, s := range opts.Sources {
		if strings.EqualFold(strings.TrimSpace(s), string(name)) {
			return true
		}
	}
	return false
}

// collect pulls raw records from the enabled sources, ChEMBL first.
// A failing source is logged and skipped.
func (s *Seeder) collect(ctx context.Context, opts Options) []*mapping.DiseaseMapping {
	var collected []*mapping.DiseaseMapping

	if s.chembl != nil && sourceEnabled(opts, common.SourceChEMBL) {
		collected = append(collected, s.collectIndications(ctx, opts)...)
	}
	if s.disgenet != nil && sourceEnabled(opts, common.SourceDisGeNET) {
		collected = append(collected, s.collectAssociations(ctx, opts)...)
	}
	return collected
}

func (s *Seeder) collectIndications(ctx context.Context, opts Options) []*mapping.DiseaseMapping {
	var out []*mapping.DiseaseMapping
	for offset := 0; offset < opts.Limit; offset += opts.PageSize {
		pageSize := opts.PageSize
		if remaining := opts.Limit - offset; remaining < pageSize {
			pageSize = remaining
		}
		page, err := s.chembl.DrugIndications(ctx, pageSize, offset)
		if err != nil {
			s.log.Warn("chembl indication page failed",
				logging.Int("offset", offset),
				logging.Err(err))
			break
		}
		if len(page) == 0 {
			break
		}
		for _, rec := range page {
			s.countProcessed(common.SourceChEMBL)
			if m, ok := mapping.FromIndication(rec); ok {
				out = append(out, m)
			}
		}
	}
	return out
}

func (s *Seeder) collectAssociations(ctx context.Context, opts Options) []*mapping.DiseaseMapping {
	records, err := s.disgenet.Associations(ctx, opts.Limit)
	if err != nil {
		s.log.Warn("disgenet association fetch failed", logging.Err(err))
		return nil
	}
	var out []*mapping.DiseaseMapping
	for _, rec := range records {
		s.countProcessed(common.SourceDisGeNET)
		if m, ok := mapping.FromAssociation(rec); ok {
			out = append(out, m)
		}
	}
	return out
}

func filterByDisease(mappings []*mapping.DiseaseMapping, diseases []string) []*mapping.DiseaseMapping {
	if len(diseases) == 0 {
		return mappings
	}
	allowed := make(map[string]struct{}, len(diseases))
	for _, d := range diseases {
		if canonical := mapping.CanonicalDiseaseName(d); canonical != "" {
			allowed[canonical] = struct{}{}
		}
	}
	kept := mappings[:0:0]
	for _, m := range mappings {
		if _, ok := allowed[m.DiseaseName]; ok {
			kept = append(kept, m)
		}
	}
	return kept
}

// enrichAll fills compound details on each mapping with a bounded worker
// pool.  Workers mutate disjoint items, so no locking is needed.
func (s *Seeder) enrichAll(ctx context.Context, mappings []*mapping.DiseaseMapping, concurrency int) {
	if len(mappings) == 0 {
		return
	}
	jobs := make(chan *mapping.DiseaseMapping)
	var wg sync.WaitGroup
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.workerStarted()
			defer s.workerStopped()
			for m := range jobs {
				s.enrichMapping(ctx, m)
			}
		}()
	}
	for _, m := range mappings {
		jobs <- m
	}
	close(jobs)
	wg.Wait()
}

// enrichMapping is best effort: PubChem first, ChEMBL for CHEMBL ids,
// DrugBank last when credentials are present.  Provider failures leave
// the mapping as collected.
func (s *Seeder) enrichMapping(ctx context.Context, m *mapping.DiseaseMapping) {
	identity := s.resolveIdentity(ctx, m.DrugName)
	if identity != nil {
		if isChEMBLID(m.DrugName) && identity.Title != "" {
			m.DrugName = identity.Title
		}
		m.ChemicalComposition = identity.MolecularFormula
		m.MolecularWeight = identity.MolecularWeight
		m.IUPACName = identity.IUPACName
		m.Synonyms = capList(identity.Synonyms, maxStoredSynonyms)
		m.MarketNames = enrich.FilterMarketNames(m.DrugName, identity.Synonyms)
	}

	if s.drugbank == nil || !s.drugbank.Available() {
		return
	}
	rec, found, err := s.drugbank.Lookup(ctx, m.DrugName)
	if err != nil {
		s.log.Debug("drugbank lookup failed",
			logging.String("drug", m.DrugName),
			logging.Err(err))
		return
	}
	if !found {
		return
	}
	m.ProteinTargets = rec.Targets
	if m.MechanismOfAction == "" {
		m.MechanismOfAction = rec.Mechanism
	}
	if len(m.MarketNames) == 0 {
		m.MarketNames = capList(rec.Products, maxStoredSynonyms)
	}
	if m.ChemicalComposition == "" {
		m.ChemicalComposition = rec.Formula
	}
	if m.MolecularWeight == 0 {
		m.MolecularWeight = rec.Weight
	}
}

func (s *Seeder) resolveIdentity(ctx context.Context, drugName string) *sources.CompoundIdentity {
	if s.pubchem != nil {
		identity, found, err := s.pubchem.Lookup(ctx, drugName)
		if err != nil {
			s.log.Debug("pubchem lookup failed",
				logging.String("drug", drugName),
				logging.Err(err))
		} else if found {
			return identity
		}
	}
	if s.molecule != nil && isChEMBLID(drugName) {
		identity, found, err := s.molecule.Molecule(ctx, drugName)
		if err != nil {
			s.log.Debug("chembl molecule lookup failed",
				logging.String("drug", drugName),
				logging.Err(err))
		} else if found {
			return identity
		}
	}
	return nil
}

// store inserts each mapping with an exists-check skip and per-record
// error isolation, logging progress per commit batch.
func (s *Seeder) store(ctx context.Context, mappings []*mapping.DiseaseMapping, batchSize int) *Stats {
	stats := &Stats{Processed: len(mappings)}
	for _, m := range mappings {
		exists, err := s.repo.ExistsByKey(ctx, m.Key())
		if err != nil {
			stats.Errors++
			s.countError(m.Source)
			continue
		}
		if exists {
			stats.DuplicatesSkipped++
			s.countDuplicate(m.Source)
			continue
		}
		if err := s.repo.Insert(ctx, m); err != nil {
			if apperrors.IsCode(err, apperrors.ErrCodeMappingDuplicate) {
				stats.DuplicatesSkipped++
				s.countDuplicate(m.Source)
				continue
			}
			stats.Errors++
			s.countError(m.Source)
			s.log.Warn("insert failed",
				logging.String("disease", m.DiseaseName),
				logging.String("drug", m.DrugName),
				logging.Err(err))
			continue
		}
		stats.Inserted++
		s.countInserted(m.Source)
		if stats.Inserted%batchSize == 0 {
			s.log.Info("batch committed",
				logging.Int("inserted", stats.Inserted),
				logging.Int("duplicates_skipped", stats.DuplicatesSkipped),
				logging.Int("errors", stats.Errors))
		}
	}
	s.log.Info("seeding run finished",
		logging.Int("processed", stats.Processed),
		logging.Int("inserted", stats.Inserted),
		logging.Int("duplicates_skipped", stats.DuplicatesSkipped),
		logging.Int("errors", stats.Errors))
	return stats
}

func isChEMBLID(name string) bool {
	return strings.HasPrefix(strings.ToUpper(name), "CHEMBL")
}

func capList(items []string, max int) []string {
	if len(items) <= max {
		return items
	}
	return items[:max]
}

func (s *Seeder) countProcessed(src common.SourceName) {
	if s.metrics != nil {
		s.metrics.SeederRecordsProcessed.WithLabelValues(string(src)).Inc()
	}
}

func (s *Seeder) countInserted(src common.SourceName) {
	if s.metrics != nil {
		s.metrics.SeederRecordsInserted.WithLabelValues(string(src)).Inc()
	}
}

func (s *Seeder) countDuplicate(src common.SourceName) {
	if s.metrics != nil {
		s.metrics.SeederDuplicatesSkipped.WithLabelValues(string(src)).Inc()
	}
}

func (s *Seeder) countError(src common.SourceName) {
	if s.metrics != nil {
		s.metrics.SeederErrorsTotal.WithLabelValues(string(src)).Inc()
	}
}

func (s *Seeder) workerStarted() {
	if s.metrics != nil {
		s.metrics.SeederActiveWorkers.WithLabelValues().Inc()
	}
}

func (s *Seeder) workerStopped() {
	if s.metrics != nil {
		s.metrics.SeederActiveWorkers.WithLabelValues().Dec()
	}
}
