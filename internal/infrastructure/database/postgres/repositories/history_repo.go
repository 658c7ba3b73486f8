package repositories

import (
	"context"
	"database/sql"
	"time"

	"github.com/pharmindex/repurpose/internal/domain/history"
	"github.com/pharmindex/repurpose/internal/infrastructure/database/postgres"
	"github.com/pharmindex/repurpose/internal/infrastructure/monitoring/logging"
	"github.com/pharmindex/repurpose/internal/infrastructure/monitoring/prometheus"
	apperrors "github.com/pharmindex/repurpose/pkg/errors"
	"github.com/pharmindex/repurpose/pkg/types/common"
)

// HistoryRepository is the PostgreSQL implementation of history.Repository.
type HistoryRepository struct {
	db      queryExecutor
	metrics *prometheus.AppMetrics
	log     logging.Logger
}

func NewHistoryRepository(conn *postgres.Connection, log logging.Logger) *HistoryRepository {
	return &HistoryRepository{db: conn.DB(), log: log.Named("history_repo")}
}

// WithMetrics attaches query metrics and returns the repository for chaining.
func (r *HistoryRepository) WithMetrics(m *prometheus.AppMetrics) *HistoryRepository {
	r.metrics = m
	return r
}

// Append stores one search record.
func (r *HistoryRepository) Append(ctx context.Context, e *history.Entry) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	defer observeQuery(r.metrics, "history", "append", time.Now())
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO search_history (user_email, query, search_type, result_preview, created_at)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id`,
		nullable(e.UserEmail), e.Query, string(e.SearchType), nullable(e.ResultPreview), e.CreatedAt,
	).Scan(&e.ID)
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeDBError, "failed to append search history")
	}
	return nil
}

// ListRecent returns the newest entries first.
func (r *HistoryRepository) ListRecent(ctx context.Context, limit int) ([]*history.Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	defer observeQuery(r.metrics, "history", "list_recent", time.Now())
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_email, query, search_type, result_preview, created_at
		FROM search_history
		ORDER BY created_at DESC, id DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDBError, "failed to list search history")
	}
	defer rows.Close()

	var entries []*history.Entry
	for rows.Next() {
		var (
			e          history.Entry
			email      sql.NullString
			preview    sql.NullString
			searchType string
		)
		if err := rows.Scan(&e.ID, &email, &e.Query, &searchType, &preview, &e.CreatedAt); err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeDBError, "failed to scan history row")
		}
		e.UserEmail = email.String
		e.ResultPreview = preview.String
		e.SearchType = common.InputKind(searchType)
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDBError, "history row iteration failed")
	}
	return entries, nil
}
