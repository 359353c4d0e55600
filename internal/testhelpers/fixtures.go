package testhelpers

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/platewise/backend/internal/model"
	"github.com/platewise/backend/internal/models"
)

// CreateTestUser inserts a user row and returns its ID.
func CreateTestUser(t *testing.T, db *gorm.DB) uuid.UUID {
	t.Helper()

	id := uuid.New()
	user := models.User{
		ID:    id,
		Name:  "Test User",
		Email: fmt.Sprintf("test-%s@example.com", id),
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return id
}

// CreateTestProfile inserts a profile row with sensible defaults for the
// given user.
func CreateTestProfile(t *testing.T, db *gorm.DB, userID uuid.UUID) *models.UserProfile {
	t.Helper()

	profile := models.UserProfile{
		ID:                 uuid.New(),
		UserID:             userID,
		SkillLevel:         "intermediate",
		CuisinePreferences: model.JSONBStringArray{},
		Goals:              model.JSONBStringArray{},
	}
	if err := db.Create(&profile).Error; err != nil {
		t.Fatalf("failed to create test profile: %v", err)
	}
	return &profile
}

// SampleRecipeDraft returns one syntactically valid recipe object in the
// shape the model is asked to produce.
func SampleRecipeDraft(title string) map[string]interface{} {
	return map[string]interface{}{
		"title":       title,
		"description": "A quick test dish.",
		"emoji":       "🍲",
		"prep_time":   10,
		"cook_time":   20,
		"total_time":  30,
		"servings":    4,
		"difficulty":  "easy",
		"calories":    450,
		"protein":     30,
		"carbs":       40,
		"fats":        15,
		"fiber":       5,
		"sugar":       8,
		"sodium":      600,
		"cholesterol": 80,
		"ingredients": []map[string]interface{}{
			{"name": "chicken breast", "amount": 500, "unit": "g", "notes": "boneless"},
		},
		"instructions": []map[string]interface{}{
			{"step_number": 1, "instruction": "Season the chicken.", "time_minutes": 5},
		},
		"equipment": []string{"skillet"},
		"tags":      []string{"high-protein"},
	}
}

// SampleRecipeBatchJSON returns a completion body holding the given number
// of valid recipes.
func SampleRecipeBatchJSON(t *testing.T, count int) string {
	t.Helper()

	recipes := make([]map[string]interface{}, 0, count)
	for i := 0; i < count; i++ {
		recipes = append(recipes, SampleRecipeDraft(fmt.Sprintf("Test Recipe %d", i+1)))
	}
	raw, err := json.Marshal(map[string]interface{}{"recipes": recipes})
	if err != nil {
		t.Fatalf("failed to marshal sample batch: %v", err)
	}
	return string(raw)
}
