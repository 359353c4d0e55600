package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/platewise/backend/internal/service"
	"github.com/platewise/backend/internal/types"
)

// PreferenceHandler serves the stored preference state behind the generator.
type PreferenceHandler struct {
	prefs service.PreferenceProvider
}

// NewPreferenceHandler creates a new PreferenceHandler
func NewPreferenceHandler(prefs service.PreferenceProvider) *PreferenceHandler {
	return &PreferenceHandler{prefs: prefs}
}

// RegisterRoutes registers the preference routes
func (h *PreferenceHandler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/profile")
	{
		group.GET("/preferences", h.Get)
		group.PUT("/preferences", h.Update)
	}
}

// Get returns the caller's aggregated preference profile.
func (h *PreferenceHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	profile, err := h.prefs.GetPreferences(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no preference profile found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch preferences"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// Update replaces the caller's stored preference state.
func (h *PreferenceHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req types.UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid preferences payload"})
		return
	}

	profile, err := h.prefs.UpdatePreferences(c.Request.Context(), userID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update preferences"})
		return
	}

	c.JSON(http.StatusOK, profile)
}
