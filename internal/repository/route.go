package repository

import (
	"context"

	"taxi/internal/domain"
)

// RouteRepository defines the persistence operations for routes.
type RouteRepository interface {
	// GetAll retrieves all routes.
	GetAll(ctx context.Context) ([]*domain.Route, error)

	// GetByID retrieves a route by its hex id.
	// Returns ErrNotFound if the id is malformed or unknown.
	GetByID(ctx context.Context, id string) (*domain.Route, error)

	// Create persists a new route and returns it with its generated id.
	Create(ctx context.Context, route *domain.Route) (*domain.Route, error)

	// Update replaces the stored fields of an existing route.
	// Returns ErrNotFound if the id is malformed or unknown.
	Update(ctx context.Context, id string, route *domain.Route) (*domain.Route, error)

	// Delete removes a route by id.
	// Returns ErrNotFound if the id is malformed or unknown.
	Delete(ctx context.Context, id string) error
}
