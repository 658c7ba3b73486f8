package enrich

import "context"

// BrandStore is the persistence contract for curated brand names.
type BrandStore interface {
	// Upsert stores or replaces the brand entry for a canonical drug name.
	Upsert(ctx context.Context, seed BrandSeed) error

	// FindByDrug returns the stored brand names for a canonical drug name.
	// (nil, false, nil) means no entry is stored.
	FindByDrug(ctx context.Context, canonicalName string) ([]string, bool, error)
}
