package service

import (
	"context"

	"taxi/internal/domain"
	"taxi/internal/repository"
)

// RouteService maps between stored routes and the flattened client-facing
// shape with a single representative price.
type RouteService struct {
	routeRepo repository.RouteRepository
}

// NewRouteService creates a new RouteService.
func NewRouteService(routeRepo repository.RouteRepository) *RouteService {
	return &RouteService{routeRepo: routeRepo}
}

// RouteView is the flattened client-facing route shape. Price is always the
// sedan fare, regardless of category.
type RouteView struct {
	ID       string
	From     string
	To       string
	Time     string
	Price    float64
	Distance float64
}

// RouteInput carries the client shape of a route write. The single price is
// applied uniformly to every category fare slot.
type RouteInput struct {
	From     string
	To       string
	Time     string
	Price    float64
	Distance float64
}

// ListAll returns every route flattened to display shape.
func (s *RouteService) ListAll(ctx context.Context) ([]RouteView, error) {
	routes, err := s.routeRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]RouteView, 0, len(routes))
	for _, r := range routes {
		views = append(views, RouteView{
			ID:       r.ID.Hex(),
			From:     r.FromLocation,
			To:       r.ToLocation,
			Time:     r.EstimatedTime,
			Price:    r.FaresPerCategory.Sedan,
			Distance: r.DistanceKm,
		})
	}
	return views, nil
}

// GetByID returns the full stored route.
func (s *RouteService) GetByID(ctx context.Context, id string) (*domain.Route, error) {
	return s.routeRepo.GetByID(ctx, id)
}

// Create validates and persists a new route.
func (s *RouteService) Create(ctx context.Context, in RouteInput) (*domain.Route, error) {
	if err := validateRouteInput(in); err != nil {
		return nil, err
	}
	return s.routeRepo.Create(ctx, routeFromInput(in))
}

// Update validates and replaces an existing route.
func (s *RouteService) Update(ctx context.Context, id string, in RouteInput) (*domain.Route, error) {
	if err := validateRouteInput(in); err != nil {
		return nil, err
	}
	return s.routeRepo.Update(ctx, id, routeFromInput(in))
}

// Delete removes a route by id.
func (s *RouteService) Delete(ctx context.Context, id string) error {
	return s.routeRepo.Delete(ctx, id)
}

func validateRouteInput(in RouteInput) error {
	if in.From == "" || in.To == "" || in.Distance == 0 {
		return ErrInvalidRoute
	}
	return nil
}

func routeFromInput(in RouteInput) *domain.Route {
	return &domain.Route{
		FromLocation:     in.From,
		ToLocation:       in.To,
		DistanceKm:       in.Distance,
		EstimatedTime:    in.Time,
		FaresPerCategory: domain.UniformFares(in.Price),
	}
}
