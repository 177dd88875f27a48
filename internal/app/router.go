package app

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"

	"locshare/internal/handler"
	"locshare/internal/middleware"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	UserHandler     *handler.UserHandler
	LocationHandler *handler.LocationHandler
	AllowedOrigins  string
	NewRelicApp     *newrelic.Application
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORSMiddleware(deps.AllowedOrigins))

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes.
	v1 := router.Group("/v1")
	{
		v1.GET("/services", handler.ListServices)
		v1.POST("/auth/register", deps.UserHandler.Register)

		// User directory routes.
		users := v1.Group("/users")
		{
			users.GET("", deps.UserHandler.GetAll)
			users.GET("/active", deps.UserHandler.GetActive)
			users.POST("/active", deps.UserHandler.AddActive)
			users.DELETE("/active/:id", deps.UserHandler.RemoveActive)
			users.PUT("/:id/location", deps.UserHandler.UpdateLocation)
			users.POST("/:id/rating", deps.UserHandler.SubmitRating)
		}

		// Location table routes.
		locations := v1.Group("/locations")
		{
			locations.POST("", deps.LocationHandler.Update)
			locations.GET("", deps.LocationHandler.GetAll)
			locations.GET("/subscribed", deps.LocationHandler.GetSubscribed)
		}
	}

	return router
}
