package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"taxi/internal/domain"
	"taxi/internal/repository"
)

// PricingRepository is a MongoDB implementation of repository.PricingRepository.
type PricingRepository struct {
	coll *mongo.Collection
}

// NewPricingRepository creates a new MongoDB pricing repository over the
// "pricings" collection.
func NewPricingRepository(db *mongo.Database) *PricingRepository {
	return &PricingRepository{coll: db.Collection("pricings")}
}

// GetAll retrieves the pricing record of every category.
func (r *PricingRepository) GetAll(ctx context.Context) ([]*domain.Pricing, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list pricings: %w", err)
	}
	defer cursor.Close(ctx)

	var pricings []*domain.Pricing
	if err := cursor.All(ctx, &pricings); err != nil {
		return nil, fmt.Errorf("failed to decode pricings: %w", err)
	}
	return pricings, nil
}

// GetByCategory retrieves the pricing record for one category.
func (r *PricingRepository) GetByCategory(ctx context.Context, category string) (*domain.Pricing, error) {
	var pricing domain.Pricing
	err := r.coll.FindOne(ctx, bson.M{"category": category}).Decode(&pricing)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get pricing for %q: %w", category, err)
	}
	return &pricing, nil
}

// Upsert overwrites the pricing record for a category, creating it if absent.
func (r *PricingRepository) Upsert(ctx context.Context, pricing *domain.Pricing) (*domain.Pricing, error) {
	filter := bson.M{"category": pricing.Category}
	update := bson.M{"$set": bson.M{
		"oneWay":    pricing.OneWay,
		"roundTrip": pricing.RoundTrip,
		"baseFare":  pricing.BaseFare,
	}}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var updated domain.Pricing
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated); err != nil {
		return nil, fmt.Errorf("failed to upsert pricing for %q: %w", pricing.Category, err)
	}
	return &updated, nil
}
