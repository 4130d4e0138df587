// Package maps wraps the Google Distance Matrix API behind the
// service.DistanceLookup interface.
package maps

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"

	"taxi/internal/service"
)

// DistanceService resolves driving distances via the Google Distance
// Matrix API.
type DistanceService struct {
	client *maps.Client
}

// NewDistanceService creates a new DistanceService with the given API key.
func NewDistanceService(apiKey string) (*DistanceService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &DistanceService{client: client}, nil
}

// Distance returns the driving distance between origin and destination in
// kilometers together with Google's human-readable distance label.
// Unresolvable place names map to ErrInvalidLocation; transport failures
// map to ErrDistanceUnavailable.
func (s *DistanceService) Distance(ctx context.Context, origin, destination string) (float64, string, error) {
	r := &maps.DistanceMatrixRequest{
		Origins:      []string{origin},
		Destinations: []string{destination},
		Units:        maps.UnitsMetric,
		Mode:         maps.TravelModeDriving,
	}

	resp, err := s.client.DistanceMatrix(ctx, r)
	if err != nil {
		return 0, "", fmt.Errorf("%w: %v", service.ErrDistanceUnavailable, err)
	}

	if len(resp.Rows) == 0 || len(resp.Rows[0].Elements) == 0 {
		return 0, "", service.ErrInvalidLocation
	}

	elem := resp.Rows[0].Elements[0]
	if elem.Status != "OK" {
		return 0, "", service.ErrInvalidLocation
	}

	km := float64(elem.Distance.Meters) / 1000
	return km, elem.Distance.HumanReadable, nil
}
