package tests

import (
	"context"
	"testing"

	"taxi/internal/domain"
	"taxi/internal/repository"
	"taxi/internal/service"
)

func TestRouteCreate_Validation(t *testing.T) {
	routeRepo := NewMockRouteRepository()
	routeService := service.NewRouteService(routeRepo)

	testCases := []struct {
		name string
		in   service.RouteInput
	}{
		{"missing from", service.RouteInput{To: "Bangalore", Price: 4800, Distance: 350}},
		{"missing to", service.RouteInput{From: "Chennai", Price: 4800, Distance: 350}},
		{"missing distance", service.RouteInput{From: "Chennai", To: "Bangalore", Price: 4800}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := routeService.Create(context.Background(), tc.in)
			if err != service.ErrInvalidRoute {
				t.Errorf("expected ErrInvalidRoute, got %v", err)
			}
		})
	}

	if routeRepo.CreateCallCount != 0 {
		t.Errorf("repository must not be called for invalid input, called %d times", routeRepo.CreateCallCount)
	}
}

func TestRouteCreate_UniformFares(t *testing.T) {
	routeRepo := NewMockRouteRepository()
	routeService := service.NewRouteService(routeRepo)

	route, err := routeService.Create(context.Background(), service.RouteInput{
		From:     "Chennai",
		To:       "Bangalore",
		Time:     "6h",
		Price:    4800,
		Distance: 350,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fares := route.FaresPerCategory
	if fares.Sedan != 4800 || fares.PremiumSedan != 4800 || fares.SUV != 4800 || fares.PremiumSUV != 4800 {
		t.Errorf("expected all category fares 4800, got %+v", fares)
	}
	if route.ID.IsZero() {
		t.Error("expected a generated id")
	}
}

func TestRouteList_UsesSedanPrice(t *testing.T) {
	routeRepo := NewMockRouteRepository()
	routeRepo.AddRoute(&domain.Route{
		FromLocation:  "Chennai",
		ToLocation:    "Bangalore",
		DistanceKm:    350,
		EstimatedTime: "6h",
		FaresPerCategory: domain.CategoryFares{
			Sedan:        4800,
			PremiumSedan: 5600,
			SUV:          6200,
			PremiumSUV:   7000,
		},
	})
	routeService := service.NewRouteService(routeRepo)

	views, err := routeService.ListAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected 1 view, got %d", len(views))
	}

	view := views[0]
	if view.Price != 4800 {
		t.Errorf("list view must expose the sedan fare, got %v", view.Price)
	}
	if view.From != "Chennai" || view.To != "Bangalore" || view.Time != "6h" || view.Distance != 350 {
		t.Errorf("unexpected flattened view: %+v", view)
	}
	if view.ID == "" {
		t.Error("expected hex id in view")
	}
}

func TestRouteUpdate_NotFound(t *testing.T) {
	routeService := service.NewRouteService(NewMockRouteRepository())

	_, err := routeService.Update(context.Background(), "64b0c5f2a1d2e3f4a5b6c7d8", service.RouteInput{
		From:     "Chennai",
		To:       "Bangalore",
		Price:    4800,
		Distance: 350,
	})
	if err != repository.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRouteUpdate_PropagatesPrice(t *testing.T) {
	routeRepo := NewMockRouteRepository()
	route := &domain.Route{
		FromLocation:     "Chennai",
		ToLocation:       "Bangalore",
		DistanceKm:       350,
		FaresPerCategory: domain.UniformFares(4800),
	}
	routeRepo.AddRoute(route)
	routeService := service.NewRouteService(routeRepo)

	updated, err := routeService.Update(context.Background(), route.ID.Hex(), service.RouteInput{
		From:     "Chennai",
		To:       "Bangalore",
		Time:     "5h 45m",
		Price:    5000,
		Distance: 345,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.FaresPerCategory != domain.UniformFares(5000) {
		t.Errorf("expected all fares 5000, got %+v", updated.FaresPerCategory)
	}
	if updated.EstimatedTime != "5h 45m" {
		t.Errorf("expected updated time, got %q", updated.EstimatedTime)
	}
}

func TestRouteDelete(t *testing.T) {
	routeRepo := NewMockRouteRepository()
	route := &domain.Route{FromLocation: "Chennai", ToLocation: "Vellore", DistanceKm: 140}
	routeRepo.AddRoute(route)
	routeService := service.NewRouteService(routeRepo)

	if err := routeService.Delete(context.Background(), route.ID.Hex()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := routeService.Delete(context.Background(), route.ID.Hex()); err != repository.ErrNotFound {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}
