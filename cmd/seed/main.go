// Seeds the pricings and routes collections with the default data set.
// Existing documents are wiped first.
package main

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"taxi/internal/app"
	"taxi/internal/config"
	"taxi/internal/domain"
)

var pricings = []domain.Pricing{
	{
		Category:  string(domain.CategorySedan),
		OneWay:    domain.Rate{RatePerKm: 12},
		RoundTrip: domain.Rate{RatePerKm: 12, DiscountPercentage: 10},
		BaseFare:  150,
	},
	{
		Category:  string(domain.CategoryPremiumSedan),
		OneWay:    domain.Rate{RatePerKm: 15},
		RoundTrip: domain.Rate{RatePerKm: 15, DiscountPercentage: 10},
		BaseFare:  300,
	},
	{
		Category:  string(domain.CategorySUV),
		OneWay:    domain.Rate{RatePerKm: 18},
		RoundTrip: domain.Rate{RatePerKm: 18, DiscountPercentage: 10},
		BaseFare:  500,
	},
	{
		Category:  string(domain.CategoryPremiumSUV),
		OneWay:    domain.Rate{RatePerKm: 22},
		RoundTrip: domain.Rate{RatePerKm: 22, DiscountPercentage: 10},
		BaseFare:  650,
	},
}

var routes = []struct {
	from     string
	to       string
	time     string
	price    float64
	distance float64
}{
	{"Chennai", "Tiruvannamalai", "3h 30m", 2500, 190},
	{"Tiruvannamalai", "Coimbatore", "5h 15m", 4200, 330},
	{"Chennai", "Bangalore", "6h", 4800, 350},
	{"Chennai", "Pondicherry", "3h", 2200, 160},
	{"Coimbatore", "Ooty", "3h", 2800, 85},
	{"Chennai", "Madurai", "7h", 5500, 460},
	{"Bangalore", "Mysore", "3h", 2400, 145},
	{"Chennai", "Vellore", "2h 30m", 1800, 140},
	{"Coimbatore", "Kodaikanal", "4h", 3200, 175},
	{"Chennai", "Kanchipuram", "1h 30m", 1200, 75},
}

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := app.NewDatabase(ctx, cfg.Mongo, nil)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Client().Disconnect(context.Background())

	// Seed pricing.
	pricingColl := db.Collection("pricings")
	if _, err := pricingColl.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("failed to clear pricings: %v", err)
	}
	pricingDocs := make([]interface{}, 0, len(pricings))
	for _, p := range pricings {
		pricingDocs = append(pricingDocs, p)
	}
	if _, err := pricingColl.InsertMany(ctx, pricingDocs); err != nil {
		log.Fatalf("failed to seed pricings: %v", err)
	}

	// Seed routes.
	routeColl := db.Collection("routes")
	if _, err := routeColl.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("failed to clear routes: %v", err)
	}
	routeDocs := make([]interface{}, 0, len(routes))
	for _, r := range routes {
		routeDocs = append(routeDocs, domain.Route{
			FromLocation:     r.from,
			ToLocation:       r.to,
			EstimatedTime:    r.time,
			DistanceKm:       r.distance,
			FaresPerCategory: domain.UniformFares(r.price),
		})
	}
	if _, err := routeColl.InsertMany(ctx, routeDocs); err != nil {
		log.Fatalf("failed to seed routes: %v", err)
	}

	log.Printf("Data seeded successfully: %d pricings, %d routes", len(pricings), len(routes))
}
