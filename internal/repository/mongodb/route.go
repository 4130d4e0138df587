package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"taxi/internal/domain"
	"taxi/internal/repository"
)

// RouteRepository is a MongoDB implementation of repository.RouteRepository.
type RouteRepository struct {
	coll *mongo.Collection
}

// NewRouteRepository creates a new MongoDB route repository over the
// "routes" collection.
func NewRouteRepository(db *mongo.Database) *RouteRepository {
	return &RouteRepository{coll: db.Collection("routes")}
}

// GetAll retrieves all routes.
func (r *RouteRepository) GetAll(ctx context.Context) ([]*domain.Route, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list routes: %w", err)
	}
	defer cursor.Close(ctx)

	var routes []*domain.Route
	if err := cursor.All(ctx, &routes); err != nil {
		return nil, fmt.Errorf("failed to decode routes: %w", err)
	}
	return routes, nil
}

// GetByID retrieves a route by its hex id.
func (r *RouteRepository) GetByID(ctx context.Context, id string) (*domain.Route, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}

	var route domain.Route
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&route)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get route %s: %w", id, err)
	}
	return &route, nil
}

// Create persists a new route and returns it with its generated id.
func (r *RouteRepository) Create(ctx context.Context, route *domain.Route) (*domain.Route, error) {
	res, err := r.coll.InsertOne(ctx, route)
	if err != nil {
		return nil, fmt.Errorf("failed to insert route: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		route.ID = oid
	}
	return route, nil
}

// Update replaces the stored fields of an existing route.
func (r *RouteRepository) Update(ctx context.Context, id string, route *domain.Route) (*domain.Route, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}

	update := bson.M{"$set": bson.M{
		"fromLocation":     route.FromLocation,
		"toLocation":       route.ToLocation,
		"distanceKm":       route.DistanceKm,
		"faresPerCategory": route.FaresPerCategory,
		"estimatedTime":    route.EstimatedTime,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated domain.Route
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update route %s: %w", id, err)
	}
	return &updated, nil
}

// Delete removes a route by id.
func (r *RouteRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete route %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
