package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"go.mongodb.org/mongo-driver/mongo"

	"taxi/internal/app"
	"taxi/internal/config"
	"taxi/internal/handler"
	taximaps "taxi/internal/maps"
	"taxi/internal/repository/mongodb"
	"taxi/internal/service"
)

func main() {
	// Load configuration.
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize New Relic FIRST (before the database so we can instrument it).
	var nrApp *newrelic.Application
	var err error
	if cfg.NewRelic.Enabled && cfg.NewRelic.LicenseKey != "" {
		nrApp, err = newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelic.AppName),
			newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
			newrelic.ConfigAppLogForwardingEnabled(true),
		)
		if err != nil {
			log.Printf("failed to initialize New Relic: %v", err)
		} else {
			log.Printf("New Relic enabled: app=%s (with Mongo instrumentation)", cfg.NewRelic.AppName)
		}
	}

	// Initialize MongoDB with New Relic instrumentation.
	db, err := app.NewDatabase(ctx, cfg.Mongo, nrApp)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Client().Disconnect(context.Background())
	log.Println("Connected to MongoDB")

	// The distance lookup is optional: without an API key the fare and
	// distance endpoints fail with a configuration error instead of
	// attempting the call.
	var distance service.DistanceLookup
	if cfg.Maps.APIKey != "" {
		distanceService, err := taximaps.NewDistanceService(cfg.Maps.APIKey)
		if err != nil {
			log.Fatalf("failed to create maps client: %v", err)
		}
		distance = distanceService
	} else {
		log.Println("GOOGLE_MAP_API_KEY not set; distance lookups disabled")
	}

	// Wire dependencies.
	server := wireServer(db, distance, nrApp, cfg)

	// Start server in goroutine.
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

// wireServer wires all dependencies and returns the HTTP server.
func wireServer(db *mongo.Database, distance service.DistanceLookup, nrApp *newrelic.Application, cfg *config.Config) *http.Server {
	// Initialize repositories.
	pricingRepo := mongodb.NewPricingRepository(db)
	routeRepo := mongodb.NewRouteRepository(db)

	// Initialize services.
	authService := service.NewAuthService(cfg.Admin)
	pricingService := service.NewPricingService(pricingRepo)
	routeService := service.NewRouteService(routeRepo)
	fareService := service.NewFareService(pricingRepo, distance)
	bookingService := service.NewBookingService()

	// Initialize handlers.
	authHandler := handler.NewAuthHandler(authService)
	pricingHandler := handler.NewPricingHandler(pricingService)
	routeHandler := handler.NewRouteHandler(routeService)
	fareHandler := handler.NewFareHandler(fareService, distance)
	bookingHandler := handler.NewBookingHandler(bookingService)

	// Create router.
	router := app.NewRouter(app.RouterDeps{
		AuthHandler:    authHandler,
		PricingHandler: pricingHandler,
		RouteHandler:   routeHandler,
		FareHandler:    fareHandler,
		BookingHandler: bookingHandler,
		AuthService:    authService,
		NewRelicApp:    nrApp,
	})

	// Create HTTP server.
	return &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
}
