package service

import (
	"context"

	"taxi/internal/domain"
	"taxi/internal/repository"
)

// PricingService maps between stored pricing records and the flattened
// client-facing shape.
type PricingService struct {
	pricingRepo repository.PricingRepository
}

// NewPricingService creates a new PricingService.
func NewPricingService(pricingRepo repository.PricingRepository) *PricingService {
	return &PricingService{pricingRepo: pricingRepo}
}

// PricingView is the flattened client-facing pricing shape. Round-trip
// details are omitted from this view.
type PricingView struct {
	Type       string
	Rate       float64
	FixedPrice float64
}

// PricingUpdate is one item of a bulk pricing update in client shape.
type PricingUpdate struct {
	Type       string
	Rate       float64
	FixedPrice float64
}

// ListAll returns every pricing record flattened to display shape: the
// derived label, the one-way rate, and the base fare.
func (s *PricingService) ListAll(ctx context.Context) ([]PricingView, error) {
	pricings, err := s.pricingRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]PricingView, 0, len(pricings))
	for _, p := range pricings {
		views = append(views, PricingView{
			Type:       domain.DisplayLabel(p.Category),
			Rate:       p.OneWay.RatePerKm,
			FixedPrice: p.BaseFare,
		})
	}
	return views, nil
}

// GetByCategory returns the full stored record for one category.
func (s *PricingService) GetByCategory(ctx context.Context, category string) (*domain.Pricing, error) {
	return s.pricingRepo.GetByCategory(ctx, category)
}

// UpsertMany applies a bulk pricing update. Each item's category key is
// derived from its display label, and the stored record is fully
// overwritten: the supplied rate is used for both trip directions and the
// round-trip discount is reset to the 10% default. Existing round-trip
// customization does not survive a bulk update. An empty update list is a
// no-op and succeeds with an empty result.
func (s *PricingService) UpsertMany(ctx context.Context, updates []PricingUpdate) ([]*domain.Pricing, error) {
	results := make([]*domain.Pricing, 0, len(updates))
	for _, u := range updates {
		pricing := &domain.Pricing{
			Category:  domain.DeriveCategory(u.Type),
			OneWay:    domain.Rate{RatePerKm: u.Rate},
			RoundTrip: domain.Rate{RatePerKm: u.Rate, DiscountPercentage: defaultRoundTripDiscount},
			BaseFare:  u.FixedPrice,
		}

		updated, err := s.pricingRepo.Upsert(ctx, pricing)
		if err != nil {
			return nil, err
		}
		results = append(results, updated)
	}
	return results, nil
}

// defaultRoundTripDiscount is the discount percentage applied to every
// category on a bulk update.
const defaultRoundTripDiscount = 10
