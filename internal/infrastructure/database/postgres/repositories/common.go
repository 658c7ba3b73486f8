// Package repositories implements the domain persistence contracts on
// PostgreSQL.  List-valued columns are stored as JSON text; queries run
// through database/sql so the repositories work against both the live pool
// and test mocks.
package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/pharmindex/repurpose/internal/infrastructure/monitoring/prometheus"
)

// queryExecutor abstracts sql.DB and sql.Tx.
type queryExecutor interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// observeQuery records a query duration; a nil metrics struct is a no-op so
// repositories built without metrics skip recording.
func observeQuery(m *prometheus.AppMetrics, repo, op string, started time.Time) {
	if m == nil {
		return
	}
	m.DBQueryDuration.WithLabelValues(repo, op).Observe(time.Since(started).Seconds())
}

// marshalList encodes a string slice for a JSON text column; nil and empty
// slices store as empty arrays.
func marshalList(items []string) string {
	if len(items) == 0 {
		return "[]"
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// unmarshalList decodes a JSON text column into a string slice, tolerating
// NULL and malformed payloads.
func unmarshalList(raw sql.NullString) []string {
	if !raw.Valid || raw.String == "" {
		return nil
	}
	var items []string
	if err := json.Unmarshal([]byte(raw.String), &items); err != nil {
		return nil
	}
	if len(items) == 0 {
		return nil
	}
	return items
}
