package api

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/platewise/backend/config"
	"github.com/platewise/backend/internal/middleware"
	"github.com/platewise/backend/internal/service"
)

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// NewHealthHandler returns the health endpoint. It pings the database and
// reports 503 when the store is unreachable.
func NewHealthHandler(db HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db != nil {
			if err := db.HealthCheck(c.Request.Context()); err != nil {
				log.Printf("[HealthCheck] database unreachable: %v", err)
				c.JSON(http.StatusServiceUnavailable, gin.H{
					"status":  "unhealthy",
					"message": "database unreachable",
				})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "PlateWise API is running",
			"version": "v1.0.0",
		})
	}
}

// Deps bundles everything the route tree needs.
type Deps struct {
	DB          *gorm.DB
	Auth        middleware.TokenValidator
	Generation  *service.GenerationService
	Recipes     service.IRecipeService
	Preferences service.PreferenceProvider
	Images      *service.ImageService
	RateLimiter *middleware.RateLimiter
	Health      HealthChecker
	Config      *config.Config
}

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, deps Deps) {
	health := NewHealthHandler(deps.Health)
	router.GET("/health", health)
	router.GET("/api/health", health)

	v1 := router.Group("/api/v1")
	v1.Use(middleware.AuthMiddleware(deps.Auth))

	generationHandler := NewGenerationHandler(deps.Generation, deps.RateLimiter)
	generationHandler.RegisterRoutes(v1)

	recipeHandler := NewRecipeHandler(deps.Recipes, deps.Images)
	recipeHandler.RegisterRoutes(v1)

	preferenceHandler := NewPreferenceHandler(deps.Preferences)
	preferenceHandler.RegisterRoutes(v1)

	historyHandler := NewHistoryHandler(deps.DB)
	historyHandler.RegisterRoutes(v1)
}

// currentUserID pulls the authenticated user's ID out of the request context.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}
	id, ok := raw.(uuid.UUID)
	return id, ok
}
