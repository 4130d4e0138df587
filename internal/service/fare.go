package service

import (
	"context"
	"math"

	"taxi/internal/domain"
	"taxi/internal/repository"
)

// DistanceLookup resolves the driving distance between two place names.
// Implemented by the Google Maps adapter; mocked in tests.
type DistanceLookup interface {
	// Distance returns the driving distance in kilometers and a
	// human-readable distance label.
	Distance(ctx context.Context, origin, destination string) (float64, string, error)
}

// FareService computes a fare from the stored per-category rates and a
// live-resolved distance. The cached route distance is never used here.
type FareService struct {
	pricingRepo repository.PricingRepository
	distance    DistanceLookup
}

// NewFareService creates a new FareService. A nil distance lookup means the
// maps API key is unconfigured; fare calculation then fails fast with
// ErrDistanceNotConfigured.
func NewFareService(pricingRepo repository.PricingRepository, distance DistanceLookup) *FareService {
	return &FareService{pricingRepo: pricingRepo, distance: distance}
}

// FareRequest contains the parameters for a fare calculation.
type FareRequest struct {
	From     string
	To       string
	Category domain.Category
	TripType domain.TripType
}

// FareResult is the outcome of a fare calculation.
type FareResult struct {
	DistanceKm float64
	Fare       float64
}

// Calculate resolves the distance between the two locations and computes
// the fare for the requested category and trip type.
func (s *FareService) Calculate(ctx context.Context, req FareRequest) (*FareResult, error) {
	if req.From == "" || req.To == "" {
		return nil, ErrMissingLocations
	}
	if !domain.IsValidCategory(req.Category) {
		return nil, ErrInvalidCategory
	}
	if !domain.IsValidTripType(req.TripType) {
		return nil, ErrInvalidTripType
	}

	if s.distance == nil {
		return nil, ErrDistanceNotConfigured
	}

	km, _, err := s.distance.Distance(ctx, req.From, req.To)
	if err != nil {
		return nil, err
	}

	pricing, err := s.pricingRepo.GetByCategory(ctx, string(req.Category))
	if err != nil {
		return nil, err
	}

	result := ComputeFare(pricing, req.TripType, km)
	return &result, nil
}

// ComputeFare computes the monetary fare for a trip. The raw fare is
// distance times the trip type's per-km rate plus the base fare, rounded to
// the nearest whole unit with math.Round (halves round away from zero).
// Round trips with a positive discount percentage subtract a discount
// rounded the same way; one-way fares are never discounted. The returned
// distance is rounded to two decimal places.
func ComputeFare(pricing *domain.Pricing, tripType domain.TripType, distanceKm float64) FareResult {
	rate := pricing.OneWay.RatePerKm
	if tripType == domain.TripRoundTrip {
		rate = pricing.RoundTrip.RatePerKm
	}

	fare := math.Round(distanceKm*rate + pricing.BaseFare)
	if tripType == domain.TripRoundTrip && pricing.RoundTrip.DiscountPercentage > 0 {
		discount := math.Round(fare * pricing.RoundTrip.DiscountPercentage / 100)
		fare -= discount
	}

	return FareResult{
		DistanceKm: math.Round(distanceKm*100) / 100,
		Fare:       fare,
	}
}
