package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/platewise/backend/internal/service"
	"github.com/platewise/backend/internal/types"
)

// maxImageBytes caps recipe photo uploads at 5 MB.
const maxImageBytes = 5 << 20

// RecipeHandler serves stored recipes and per-user annotations.
type RecipeHandler struct {
	recipes service.IRecipeService
	images  *service.ImageService
}

// NewRecipeHandler creates a new RecipeHandler
func NewRecipeHandler(recipes service.IRecipeService, images *service.ImageService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes, images: images}
}

// RegisterRoutes registers the recipe routes
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/recipes")
	{
		group.GET("", h.List)
		group.GET("/:id", h.Get)
		group.POST("/:id/favorite", h.Favorite)
		group.DELETE("/:id/favorite", h.Unfavorite)
		group.POST("/:id/rating", h.Rate)
		group.POST("/:id/cooked", h.MarkCooked)
		group.POST("/:id/image", h.UploadImage)
		group.GET("/:id/image-url", h.ImageURL)
	}
}

// List returns the caller's recipes, optionally filtered by the q parameter.
func (h *RecipeHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	recipes, err := h.recipes.ListForUser(c.Request.Context(), userID, c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list recipes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

// Get returns one recipe with the caller's annotations merged in.
func (h *RecipeHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}
	recipeID, ok := pathRecipeID(c)
	if !ok {
		return
	}

	recipe, err := h.recipes.Get(c.Request.Context(), userID, recipeID)
	if err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch recipe"})
		return
	}

	c.JSON(http.StatusOK, recipe)
}

// Favorite marks a recipe as a favorite for the caller.
func (h *RecipeHandler) Favorite(c *gin.Context) {
	h.setFavorite(c, true)
}

// Unfavorite clears the caller's favorite flag on a recipe.
func (h *RecipeHandler) Unfavorite(c *gin.Context) {
	h.setFavorite(c, false)
}

func (h *RecipeHandler) setFavorite(c *gin.Context, favorite bool) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}
	recipeID, ok := pathRecipeID(c)
	if !ok {
		return
	}

	if err := h.recipes.SetFavorite(c.Request.Context(), userID, recipeID, favorite); err != nil {
		annotationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"is_favorite": favorite})
}

// Rate stores the caller's rating for a recipe.
func (h *RecipeHandler) Rate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}
	recipeID, ok := pathRecipeID(c)
	if !ok {
		return
	}

	var req types.RateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "rating must be between 1 and 5"})
		return
	}

	if err := h.recipes.Rate(c.Request.Context(), userID, recipeID, req.Rating, req.Notes); err != nil {
		annotationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rating": req.Rating})
}

// MarkCooked records that the caller cooked a recipe.
func (h *RecipeHandler) MarkCooked(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}
	recipeID, ok := pathRecipeID(c)
	if !ok {
		return
	}

	if err := h.recipes.MarkCooked(c.Request.Context(), userID, recipeID); err != nil {
		annotationError(c, err)
		return
	}

	recipe, err := h.recipes.Get(c.Request.Context(), userID, recipeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch recipe"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cookedCount": recipe.CookedCount, "lastCooked": recipe.LastCooked})
}

// UploadImage stores a recipe photo in S3 and records its URL.
func (h *RecipeHandler) UploadImage(c *gin.Context) {
	if h.images == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image storage is not configured"})
		return
	}
	if _, ok := currentUserID(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}
	recipeID, ok := pathRecipeID(c)
	if !ok {
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	defer func() { _ = file.Close() }()

	if header.Size > maxImageBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "image must be 5MB or smaller"})
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxImageBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image"})
		return
	}

	url, err := h.images.UploadRecipeImage(c.Request.Context(), recipeID, data, header.Header.Get("Content-Type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload image"})
		return
	}

	if err := h.recipes.SetImageURL(c.Request.Context(), recipeID, url); err != nil {
		annotationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"imageUrl": url})
}

// ImageURL returns a short-lived signed link to a recipe's photo.
func (h *RecipeHandler) ImageURL(c *gin.Context) {
	if h.images == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image storage is not configured"})
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}
	recipeID, ok := pathRecipeID(c)
	if !ok {
		return
	}

	recipe, err := h.recipes.Get(c.Request.Context(), userID, recipeID)
	if err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch recipe"})
		return
	}
	if recipe.ImageURL == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "recipe has no image"})
		return
	}

	url, err := h.images.PresignedImageURL(c.Request.Context(), recipe.ImageURL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sign image URL"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"imageUrl": url})
}

func pathRecipeID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe ID"})
		return uuid.Nil, false
	}
	return id, true
}

func annotationError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrRecipeNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update recipe"})
}
