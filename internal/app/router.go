package app

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"

	"taxi/internal/handler"
	"taxi/internal/middleware"
	"taxi/internal/service"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	AuthHandler    *handler.AuthHandler
	PricingHandler *handler.PricingHandler
	RouteHandler   *handler.RouteHandler
	FareHandler    *handler.FareHandler
	BookingHandler *handler.BookingHandler
	AuthService    *service.AuthService
	NewRelicApp    *newrelic.Application
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORSMiddleware())

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	adminOnly := middleware.AdminAuth(deps.AuthService)

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		api.POST("/admin/login", deps.AuthHandler.Login)

		// Pricing routes.
		pricing := api.Group("/pricing")
		{
			pricing.GET("", deps.PricingHandler.GetAll)
			pricing.GET("/:category", deps.PricingHandler.GetByCategory)
			pricing.PUT("", adminOnly, deps.PricingHandler.Update)
		}

		// Route routes.
		routes := api.Group("/routes")
		{
			routes.GET("", deps.RouteHandler.GetAll)
			routes.GET("/:id", deps.RouteHandler.GetByID)
			routes.POST("", adminOnly, deps.RouteHandler.Create)
			routes.PUT("/:id", adminOnly, deps.RouteHandler.Update)
			routes.DELETE("/:id", adminOnly, deps.RouteHandler.Delete)
		}

		// Fare and distance routes.
		api.POST("/calculate-fare", deps.FareHandler.CalculateFare)
		api.POST("/distance", deps.FareHandler.GetDistance)

		// Booking routes.
		api.POST("/booking", deps.BookingHandler.Create)
	}

	return router
}
