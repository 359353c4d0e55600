package types

// GenerateRecipesRequest is the inbound body for recipe generation.
type GenerateRecipesRequest struct {
	MealType      string `json:"meal_type" binding:"required,oneof=breakfast lunch dinner snack"`
	CustomRequest string `json:"custom_request" binding:"max=500"`
}

// GenerationMetadata reports usage and timing for a successful generation.
type GenerationMetadata struct {
	TokensUsed     int     `json:"tokens_used"`
	EstimatedCost  float64 `json:"estimated_cost"`
	GenerationTime float64 `json:"generation_time"`
}

// UpdatePreferencesRequest replaces the caller's stored preference state.
type UpdatePreferencesRequest struct {
	DietaryRestrictions []string `json:"dietary_restrictions"`
	Allergens           []string `json:"allergens"`
	CuisinePreferences  []string `json:"cuisine_preferences"`
	Goals               []string `json:"goals"`
	Equipment           []string `json:"equipment"`
	SkillLevel          string   `json:"skill_level" binding:"omitempty,oneof=beginner intermediate advanced"`
	PreferredPrepTime   *int     `json:"preferred_prep_time" binding:"omitempty,gte=0"`
}

// RateRecipeRequest sets the caller's rating and optional notes for a recipe.
type RateRecipeRequest struct {
	Rating int    `json:"rating" binding:"required,min=1,max=5"`
	Notes  string `json:"notes" binding:"max=2000"`
}
