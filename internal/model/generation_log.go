package model

import (
	"time"

	"github.com/google/uuid"
)

// GenerationLog is the append-only audit and cost record for one generation
// attempt. Exactly one row is written per attempt, success or failure.
type GenerationLog struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt        time.Time `json:"created_at"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	MealType         string    `gorm:"size:20;not null" json:"meal_type"`
	Success          bool      `gorm:"not null" json:"success"`
	AIModel          string    `gorm:"size:50" json:"ai_model"`
	EstimatedCost    float64   `gorm:"type:float;not null;default:0" json:"estimated_cost"`
	TokenCount       int       `gorm:"not null;default:0" json:"token_count"`
	PromptTokens     int       `gorm:"not null;default:0" json:"prompt_tokens"`
	CompletionTokens int       `gorm:"not null;default:0" json:"completion_tokens"`
	ErrorMessage     string    `gorm:"type:text" json:"error_message,omitempty"`
}

func (GenerationLog) TableName() string {
	return "generation_logs"
}
