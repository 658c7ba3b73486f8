// Package history records what users searched for and a one-line preview of
// what they got back.
package history

import (
	"context"
	"time"

	"github.com/pharmindex/repurpose/pkg/types/common"
)

// Entry is one recorded search.
type Entry struct {
	ID            int64            `json:"id"`
	UserEmail     string           `json:"user_email,omitempty"`
	Query         string           `json:"query"`
	SearchType    common.InputKind `json:"search_type"`
	ResultPreview string           `json:"result_preview,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
}

// Repository is the persistence contract for search history.
type Repository interface {
	// Append stores a new entry and fills in its ID and CreatedAt.
	Append(ctx context.Context, e *Entry) error

	// ListRecent returns the newest entries first.
	ListRecent(ctx context.Context, limit int) ([]*Entry, error)
}
