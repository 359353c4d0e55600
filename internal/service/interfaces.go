package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/platewise/backend/internal/types"
)

// PreferenceProvider supplies the aggregated preference profile for a user.
type PreferenceProvider interface {
	GetPreferences(ctx context.Context, userID uuid.UUID) (*types.PreferenceProfile, error)
	UpdatePreferences(ctx context.Context, userID uuid.UUID, req *types.UpdatePreferencesRequest) (*types.PreferenceProfile, error)
}

// RecipeGenerator invokes the external generative model with a composed
// prompt pair and returns the raw completion plus usage accounting.
type RecipeGenerator interface {
	GenerateRecipes(ctx context.Context, systemPrompt, userPrompt string) (*Completion, error)
	ModelName() string
}

// IRecipeService defines the read and annotation operations on stored recipes.
type IRecipeService interface {
	ListForUser(ctx context.Context, userID uuid.UUID, search string) ([]types.ClientRecipe, error)
	Get(ctx context.Context, userID, recipeID uuid.UUID) (*types.ClientRecipe, error)
	SetFavorite(ctx context.Context, userID, recipeID uuid.UUID, favorite bool) error
	Rate(ctx context.Context, userID, recipeID uuid.UUID, rating int, notes string) error
	MarkCooked(ctx context.Context, userID, recipeID uuid.UUID) error
	SetImageURL(ctx context.Context, recipeID uuid.UUID, url string) error
}
