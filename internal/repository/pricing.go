package repository

import (
	"context"

	"taxi/internal/domain"
)

// PricingRepository defines the persistence operations for pricing records.
type PricingRepository interface {
	// GetAll retrieves the pricing record of every category.
	GetAll(ctx context.Context) ([]*domain.Pricing, error)

	// GetByCategory retrieves the pricing record for one category.
	// Returns ErrNotFound if no record exists for the category.
	GetByCategory(ctx context.Context, category string) (*domain.Pricing, error)

	// Upsert overwrites the pricing record for a category, creating it if
	// absent, and returns the stored record.
	Upsert(ctx context.Context, pricing *domain.Pricing) (*domain.Pricing, error)
}
