package tests

import (
	"context"
	"testing"

	"taxi/internal/domain"
	"taxi/internal/service"
)

func TestDisplayLabel(t *testing.T) {
	testCases := []struct {
		category string
		want     string
	}{
		{"sedan", "Sedan"},
		{"premiumSedan", "Premium Sedan"},
		{"suv", "Suv"},
		{"premiumSuv", "Premium Suv"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.category, func(t *testing.T) {
			if got := domain.DisplayLabel(tc.category); got != tc.want {
				t.Errorf("DisplayLabel(%q) = %q, want %q", tc.category, got, tc.want)
			}
		})
	}
}

func TestDeriveCategory(t *testing.T) {
	testCases := []struct {
		label string
		want  string
	}{
		{"Sedan", "sedan"},
		{"Premium Sedan", "premiumsedan"},
		{"  Premium   Sedan  ", "premiumsedan"},
		{"SUV", "suv"},
	}

	for _, tc := range testCases {
		t.Run(tc.label, func(t *testing.T) {
			if got := domain.DeriveCategory(tc.label); got != tc.want {
				t.Errorf("DeriveCategory(%q) = %q, want %q", tc.label, got, tc.want)
			}
		})
	}
}

// Labels that differ only in internal capitalization derive the same key.
// This is the legacy behavior the admin contract depends on.
func TestDeriveCategory_Collision(t *testing.T) {
	a := domain.DeriveCategory("Premium Sedan")
	b := domain.DeriveCategory("premiumSedan")
	if a != b {
		t.Errorf("expected colliding keys, got %q and %q", a, b)
	}
}

func TestPricingListAll_Flattens(t *testing.T) {
	pricingRepo := NewMockPricingRepository()
	pricingRepo.AddPricing(&domain.Pricing{
		Category:  "premiumSedan",
		OneWay:    domain.Rate{RatePerKm: 15},
		RoundTrip: domain.Rate{RatePerKm: 14, DiscountPercentage: 20},
		BaseFare:  300,
	})
	pricingService := service.NewPricingService(pricingRepo)

	views, err := pricingService.ListAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected 1 view, got %d", len(views))
	}

	view := views[0]
	if view.Type != "Premium Sedan" {
		t.Errorf("expected label \"Premium Sedan\", got %q", view.Type)
	}
	if view.Rate != 15 {
		t.Errorf("expected one-way rate 15, got %v", view.Rate)
	}
	if view.FixedPrice != 300 {
		t.Errorf("expected base fare 300, got %v", view.FixedPrice)
	}
}

func TestPricingUpsertMany_TransformsToStoredShape(t *testing.T) {
	pricingRepo := NewMockPricingRepository()
	pricingService := service.NewPricingService(pricingRepo)

	results, err := pricingService.UpsertMany(context.Background(), []service.PricingUpdate{
		{Type: "Premium Sedan", Rate: 15, FixedPrice: 300},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}

	stored := results[0]
	if stored.Category != "premiumsedan" {
		t.Errorf("expected derived category \"premiumsedan\", got %q", stored.Category)
	}
	if stored.OneWay.RatePerKm != 15 {
		t.Errorf("expected one-way rate 15, got %v", stored.OneWay.RatePerKm)
	}
	if stored.RoundTrip.RatePerKm != 15 {
		t.Errorf("expected round-trip rate 15, got %v", stored.RoundTrip.RatePerKm)
	}
	if stored.RoundTrip.DiscountPercentage != 10 {
		t.Errorf("expected default 10%% discount, got %v", stored.RoundTrip.DiscountPercentage)
	}
	if stored.BaseFare != 300 {
		t.Errorf("expected base fare 300, got %v", stored.BaseFare)
	}
}

// A bulk update is a full overwrite: round-trip customization beyond the
// 10% default does not survive.
func TestPricingUpsertMany_ClobbersRoundTripCustomization(t *testing.T) {
	pricingRepo := NewMockPricingRepository()
	pricingRepo.AddPricing(&domain.Pricing{
		Category:  "sedan",
		OneWay:    domain.Rate{RatePerKm: 12},
		RoundTrip: domain.Rate{RatePerKm: 9, DiscountPercentage: 25},
		BaseFare:  150,
	})
	pricingService := service.NewPricingService(pricingRepo)

	_, err := pricingService.UpsertMany(context.Background(), []service.PricingUpdate{
		{Type: "Sedan", Rate: 13, FixedPrice: 160},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, err := pricingRepo.GetByCategory(context.Background(), "sedan")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.RoundTrip.RatePerKm != 13 || stored.RoundTrip.DiscountPercentage != 10 {
		t.Errorf("expected round trip reset to rate 13 / 10%%, got %+v", stored.RoundTrip)
	}
}

// An empty bulk update succeeds without touching the store, matching the
// legacy contract.
func TestPricingUpsertMany_EmptyPayloadIsNoOp(t *testing.T) {
	pricingRepo := NewMockPricingRepository()
	pricingService := service.NewPricingService(pricingRepo)

	results, err := pricingService.UpsertMany(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected empty results, got %d", len(results))
	}
	if pricingRepo.UpsertCallCount != 0 {
		t.Errorf("repository must not be called, called %d times", pricingRepo.UpsertCallCount)
	}
}
