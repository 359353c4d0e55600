package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/platewise/backend/internal/model"
)

type User struct {
	ID        uuid.UUID      `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Name      string         `gorm:"not null" json:"name"`
	Email     string         `gorm:"uniqueIndex;not null" json:"email"`
}

// UserProfile holds the scalar preference fields plus the list fields that
// are not normalized into their own tables.
type UserProfile struct {
	ID                 uuid.UUID              `gorm:"type:uuid;primarykey" json:"id"`
	UserID             uuid.UUID              `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	SkillLevel         string                 `gorm:"size:20;default:'intermediate'" json:"skill_level"`
	PreferredPrepTime  *int                   `json:"preferred_prep_time,omitempty"`
	CuisinePreferences model.JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"cuisine_preferences"`
	Goals              model.JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"goals"`
	CreatedAt          time.Time              `json:"created_at"`
	UpdatedAt          time.Time              `json:"updated_at"`
	DeletedAt          gorm.DeletedAt         `gorm:"index" json:"-"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}
