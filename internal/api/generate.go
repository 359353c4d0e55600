package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/platewise/backend/internal/middleware"
	"github.com/platewise/backend/internal/normalize"
	"github.com/platewise/backend/internal/service"
	"github.com/platewise/backend/internal/types"
)

// GenerationHandler exposes the recipe generation pipeline over HTTP.
type GenerationHandler struct {
	generation *service.GenerationService
	limiter    *middleware.RateLimiter
}

// NewGenerationHandler creates a new GenerationHandler
func NewGenerationHandler(generation *service.GenerationService, limiter *middleware.RateLimiter) *GenerationHandler {
	return &GenerationHandler{generation: generation, limiter: limiter}
}

// RegisterRoutes registers the generation routes
func (h *GenerationHandler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/recipes")
	if h.limiter != nil {
		group.POST("/generate", h.limiter.RateLimitMiddleware(), h.Generate)
	} else {
		group.POST("/generate", h.Generate)
	}
}

// Generate runs one generation attempt for the authenticated user.
func (h *GenerationHandler) Generate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "user not authenticated"})
		return
	}

	var req types.GenerateRecipesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request: meal_type must be breakfast, lunch, dinner or snack"})
		return
	}

	result, err := h.generation.Generate(c.Request.Context(), userID, &req)
	if err != nil {
		status, message := generationErrorResponse(err)
		c.JSON(status, gin.H{"success": false, "error": message})
		return
	}

	recipes := make([]types.ClientRecipe, 0, len(result.Recipes))
	for i := range result.Recipes {
		recipes = append(recipes, normalize.ToClient(&result.Recipes[i], nil))
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"recipes": recipes,
		"metadata": types.GenerationMetadata{
			TokensUsed:     result.TokensUsed,
			EstimatedCost:  result.EstimatedCost,
			GenerationTime: result.GenerationTime.Seconds(),
		},
	})
}

// generationErrorResponse maps pipeline errors to HTTP statuses. Upstream and
// validation failures are bad-gateway: the client did nothing wrong, the model
// did.
func generationErrorResponse(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrProfileNotFound):
		return http.StatusNotFound, "no preference profile found; set preferences before generating"
	case errors.Is(err, service.ErrUpstream):
		return http.StatusBadGateway, "recipe generation service is unavailable"
	case errors.Is(err, service.ErrMalformedResponse),
		errors.Is(err, service.ErrWrongRecipeCount),
		errors.Is(err, service.ErrRecipeSchema):
		return http.StatusBadGateway, "the generated recipes were invalid; please try again"
	default:
		log.Printf("[GenerationHandler] generation failed: %v", err)
		return http.StatusInternalServerError, "failed to save generated recipes"
	}
}
