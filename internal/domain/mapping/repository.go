package mapping

import (
	"context"

	"github.com/pharmindex/repurpose/pkg/types/common"
)

// Repository is the persistence contract for disease-drug mappings.
type Repository interface {
	// Insert stores a new mapping.  ErrCodeMappingDuplicate is returned when
	// the (disease, drug) key already exists.
	Insert(ctx context.Context, m *DiseaseMapping) error

	// ExistsByKey reports whether a mapping with the key is already stored.
	ExistsByKey(ctx context.Context, key Key) (bool, error)

	// FindByDisease returns stored mappings for a canonical disease name,
	// ordered by confidence descending.
	FindByDisease(ctx context.Context, diseaseName string, p common.Pagination) ([]*DiseaseMapping, error)

	// Count returns the total number of stored mappings.
	Count(ctx context.Context) (int64, error)
}
