package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/platewise/backend/internal/model"
)

// HistoryHandler serves the per-user generation audit history.
type HistoryHandler struct {
	db *gorm.DB
}

// NewHistoryHandler creates a new HistoryHandler
func NewHistoryHandler(db *gorm.DB) *HistoryHandler {
	return &HistoryHandler{db: db}
}

// RegisterRoutes registers the history routes
func (h *HistoryHandler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/generations")
	{
		group.GET("", h.List)
		group.GET("/stats", h.Stats)
	}
}

// List returns the caller's most recent generation attempts.
func (h *HistoryHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var logs []model.GenerationLog
	err := h.db.WithContext(c.Request.Context()).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(50).
		Find(&logs).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch generation history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"generations": logs})
}

// GenerationStats summarizes a user's generation usage and spend.
type GenerationStats struct {
	TotalAttempts int64   `json:"totalAttempts"`
	Successful    int64   `json:"successful"`
	Failed        int64   `json:"failed"`
	ThisWeek      int64   `json:"thisWeek"`
	TotalTokens   int64   `json:"totalTokens"`
	TotalCost     float64 `json:"totalCost"`
}

// Stats returns aggregate counts and cost totals for the caller.
func (h *HistoryHandler) Stats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	ctx := c.Request.Context()
	base := h.db.WithContext(ctx).Model(&model.GenerationLog{}).Where("user_id = ?", userID)

	var stats GenerationStats
	if err := base.Session(&gorm.Session{}).Count(&stats.TotalAttempts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute stats"})
		return
	}
	if err := base.Session(&gorm.Session{}).Where("success = ?", true).Count(&stats.Successful).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute stats"})
		return
	}
	stats.Failed = stats.TotalAttempts - stats.Successful

	weekAgo := time.Now().AddDate(0, 0, -7)
	if err := base.Session(&gorm.Session{}).Where("created_at >= ?", weekAgo).Count(&stats.ThisWeek).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute stats"})
		return
	}

	var totals struct {
		Tokens int64
		Cost   float64
	}
	err := h.db.WithContext(ctx).Model(&model.GenerationLog{}).
		Select("COALESCE(SUM(token_count), 0) AS tokens, COALESCE(SUM(estimated_cost), 0) AS cost").
		Where("user_id = ?", userID).
		Scan(&totals).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute stats"})
		return
	}
	stats.TotalTokens = totals.Tokens
	stats.TotalCost = totals.Cost

	c.JSON(http.StatusOK, stats)
}
