package model

import (
	"time"

	"github.com/google/uuid"
)

// UserRecipe is the per-(user, recipe) annotation row. One is created
// alongside every generated recipe and mutated by the favorite, rating and
// cooked actions.
type UserRecipe struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;index:idx_user_recipes_user_recipe,unique" json:"user_id"`
	RecipeID     uuid.UUID  `gorm:"type:uuid;not null;index:idx_user_recipes_user_recipe,unique" json:"recipe_id"`
	IsFavorite   bool       `gorm:"not null;default:false" json:"is_favorite"`
	Rating       *int       `json:"rating,omitempty"`
	Notes        string     `gorm:"type:text" json:"notes"`
	CookedCount  int        `gorm:"not null;default:0" json:"cooked_count"`
	LastCookedAt *time.Time `json:"last_cooked_at,omitempty"`
}

func (UserRecipe) TableName() string {
	return "user_recipes"
}
