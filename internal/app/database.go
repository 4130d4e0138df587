package app

import (
	"context"
	"fmt"

	"github.com/newrelic/go-agent/v3/integrations/nrmongo"
	"github.com/newrelic/go-agent/v3/newrelic"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"taxi/internal/config"
)

// NewDatabase connects to MongoDB and returns a handle to the configured
// database. If nrApp is provided, the client is instrumented with New Relic's
// command monitor for automatic query tracing.
func NewDatabase(ctx context.Context, cfg config.MongoConfig, nrApp *newrelic.Application) (*mongo.Database, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(cfg.ConnectTimeout)

	// The command monitor ties Mongo commands to New Relic transactions.
	if nrApp != nil {
		opts.SetMonitor(nrmongo.NewCommandMonitor(nil))
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Verify connection.
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return client.Database(cfg.Database), nil
}
