package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/pharmindex/repurpose/internal/domain/mapping"
	"github.com/pharmindex/repurpose/internal/infrastructure/database/postgres"
	"github.com/pharmindex/repurpose/internal/infrastructure/monitoring/logging"
	"github.com/pharmindex/repurpose/internal/infrastructure/monitoring/prometheus"
	apperrors "github.com/pharmindex/repurpose/pkg/errors"
	"github.com/pharmindex/repurpose/pkg/types/common"
)

// MappingRepository is the PostgreSQL implementation of mapping.Repository.
type MappingRepository struct {
	db      queryExecutor
	metrics *prometheus.AppMetrics
	log     logging.Logger
}

// NewMappingRepository builds a repository on the shared connection.
func NewMappingRepository(conn *postgres.Connection, log logging.Logger) *MappingRepository {
	return &MappingRepository{db: conn.DB(), log: log.Named("mapping_repo")}
}

// WithMetrics attaches query metrics and returns the repository for chaining.
func (r *MappingRepository) WithMetrics(m *prometheus.AppMetrics) *MappingRepository {
	r.metrics = m
	return r
}

const insertMappingQuery = `
	INSERT INTO disease_drug_map (
		disease_name, drug_name, confidence_score, mechanism_of_action,
		protein_targets, market_names, chemical_composition, molecular_weight,
		iupac_name, synonyms, source, created_at
	) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	RETURNING id`

// Insert stores a new mapping row.  A unique-key violation on
// (disease_name, drug_name) maps to ErrCodeMappingDuplicate.
func (r *MappingRepository) Insert(ctx context.Context, m *mapping.DiseaseMapping) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	defer observeQuery(r.metrics, "mapping", "insert", time.Now())

	err := r.db.QueryRowContext(ctx, insertMappingQuery,
		m.DiseaseName, m.DrugName, m.ConfidenceScore, nullable(m.MechanismOfAction),
		marshalList(m.ProteinTargets), marshalList(m.MarketNames),
		nullable(m.ChemicalComposition), nullFloat(m.MolecularWeight),
		nullable(m.IUPACName), marshalList(m.Synonyms), string(m.Source), m.CreatedAt,
	).Scan(&m.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.New(apperrors.ErrCodeMappingDuplicate, "mapping already exists").
				WithDetail(m.DiseaseName + " / " + m.DrugName)
		}
		r.log.Error("insert mapping failed",
			logging.String("disease", m.DiseaseName),
			logging.String("drug", m.DrugName),
			logging.Err(err))
		return apperrors.Wrap(err, apperrors.ErrCodeMappingInsertFailed, "failed to insert mapping")
	}
	return nil
}

// ExistsByKey reports whether the (disease, drug) pair is already stored.
// Drug names compare case-insensitively to match the dedup key semantics.
func (r *MappingRepository) ExistsByKey(ctx context.Context, key mapping.Key) (bool, error) {
	defer observeQuery(r.metrics, "mapping", "exists_by_key", time.Now())
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM disease_drug_map WHERE disease_name = $1 AND LOWER(drug_name) = LOWER($2))`,
		key.DiseaseName, key.DrugName,
	).Scan(&exists)
	if err != nil {
		return false, apperrors.Wrap(err, apperrors.CodeDBError, "exists check failed")
	}
	return exists, nil
}

const findByDiseaseQuery = `
	SELECT id, disease_name, drug_name, confidence_score, mechanism_of_action,
	       protein_targets, market_names, chemical_composition, molecular_weight,
	       iupac_name, synonyms, source, created_at
	FROM disease_drug_map
	WHERE disease_name = $1
	ORDER BY confidence_score DESC, id ASC
	LIMIT $2 OFFSET $3`

// FindByDisease returns mappings for a canonical disease name ordered by
// confidence descending.
func (r *MappingRepository) FindByDisease(ctx context.Context, diseaseName string, p common.Pagination) ([]*mapping.DiseaseMapping, error) {
	if p.PageSize < 1 {
		p.PageSize = 50
	}
	defer observeQuery(r.metrics, "mapping", "find_by_disease", time.Now())
	rows, err := r.db.QueryContext(ctx, findByDiseaseQuery, diseaseName, p.PageSize, p.Offset())
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDBError, "find by disease failed")
	}
	defer rows.Close()

	var mappings []*mapping.DiseaseMapping
	for rows.Next() {
		m, err := scanMapping(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeDBError, "failed to scan mapping row")
		}
		mappings = append(mappings, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDBError, "mapping row iteration failed")
	}
	return mappings, nil
}

// Count returns the number of stored mappings.
func (r *MappingRepository) Count(ctx context.Context) (int64, error) {
	defer observeQuery(r.metrics, "mapping", "count", time.Now())
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM disease_drug_map`).Scan(&count); err != nil {
		return 0, apperrors.Wrap(err, apperrors.CodeDBError, "count mappings failed")
	}
	return count, nil
}

func scanMapping(rows *sql.Rows) (*mapping.DiseaseMapping, error) {
	var (
		m          mapping.DiseaseMapping
		mechanism  sql.NullString
		targets    sql.NullString
		markets    sql.NullString
		comp       sql.NullString
		weight     sql.NullFloat64
		iupac      sql.NullString
		synonyms   sql.NullString
		sourceName string
	)
	err := rows.Scan(&m.ID, &m.DiseaseName, &m.DrugName, &m.ConfidenceScore,
		&mechanism, &targets, &markets, &comp, &weight, &iupac, &synonyms,
		&sourceName, &m.CreatedAt)
	if err != nil {
		return nil, err
	}

	m.MechanismOfAction = mechanism.String
	m.ProteinTargets = unmarshalList(targets)
	m.MarketNames = unmarshalList(markets)
	m.ChemicalComposition = comp.String
	m.MolecularWeight = weight.Float64
	m.IUPACName = iupac.String
	m.Synonyms = unmarshalList(synonyms)
	m.Source = common.SourceName(sourceName)
	return &m, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullFloat(f float64) sql.NullFloat64 {
	return sql.NullFloat64{Float64: f, Valid: f != 0}
}

// isUniqueViolation matches the PostgreSQL unique violation error class
// without depending on a concrete driver error type.
func isUniqueViolation(err error) bool {
	if err == nil || errors.Is(err, sql.ErrNoRows) {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "23505") || strings.Contains(msg, "duplicate key")
}
