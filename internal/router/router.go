package router

import (
	"github.com/gin-gonic/gin"

	"github.com/platewise/backend/internal/api"
	"github.com/platewise/backend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(deps api.Deps, allowedOrigins []string) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORS(allowedOrigins))

	api.RegisterRoutes(router, deps)

	return router
}
