package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platewise/backend/internal/types"
)

func fullProfile() *types.PreferenceProfile {
	prepTime := 45
	return &types.PreferenceProfile{
		DietaryRestrictions: []string{"vegetarian", "gluten-free"},
		Allergens:           []string{"peanuts", "shellfish"},
		CuisinePreferences:  []string{"italian", "thai"},
		Goals:               []string{"high-protein"},
		Equipment:           []string{"air fryer", "blender"},
		SkillLevel:          "beginner",
		PreferredPrepTime:   &prepTime,
	}
}

func TestComposePromptsDeterministic(t *testing.T) {
	profile := fullProfile()
	req := &types.GenerateRecipesRequest{MealType: "dinner", CustomRequest: "something with mushrooms"}

	sys1, user1 := ComposePrompts(profile, req)
	sys2, user2 := ComposePrompts(profile, req)

	assert.Equal(t, sys1, sys2)
	assert.Equal(t, user1, user2)
}

func TestComposePromptsSectionOrder(t *testing.T) {
	profile := fullProfile()
	req := &types.GenerateRecipesRequest{MealType: "dinner", CustomRequest: "something with mushrooms"}

	_, user := ComposePrompts(profile, req)

	restrictions := strings.Index(user, "vegetarian, gluten-free")
	allergens := strings.Index(user, "peanuts, shellfish")
	goals := strings.Index(user, "high-protein")
	cuisines := strings.Index(user, "italian, thai")
	equipment := strings.Index(user, "air fryer, blender")
	custom := strings.Index(user, "something with mushrooms")

	require.NotEqual(t, -1, restrictions)
	require.NotEqual(t, -1, allergens)
	require.NotEqual(t, -1, goals)
	require.NotEqual(t, -1, cuisines)
	require.NotEqual(t, -1, equipment)
	require.NotEqual(t, -1, custom)

	assert.Less(t, restrictions, allergens)
	assert.Less(t, allergens, goals)
	assert.Less(t, goals, cuisines)
	assert.Less(t, cuisines, equipment)
	assert.Less(t, equipment, custom)

	assert.Contains(t, user, "Keep total time under 45 minutes")
	assert.True(t, strings.HasSuffix(user, "Generate exactly 4 diverse dinner recipes that satisfy everything above."))
}

func TestComposePromptsEmptyProfile(t *testing.T) {
	profile := &types.PreferenceProfile{SkillLevel: "intermediate"}
	req := &types.GenerateRecipesRequest{MealType: "snack"}

	system, user := ComposePrompts(profile, req)

	assert.Contains(t, system, "exactly 4 recipes")
	assert.NotContains(t, user, "Dietary restrictions")
	assert.NotContains(t, user, "allergens")
	assert.Contains(t, user, "snack recipes")
	assert.Contains(t, user, "Generate exactly 4 diverse snack recipes")
}

func TestComposePromptsSkillGuidance(t *testing.T) {
	req := &types.GenerateRecipesRequest{MealType: "lunch"}

	_, beginner := ComposePrompts(&types.PreferenceProfile{SkillLevel: "beginner"}, req)
	_, advanced := ComposePrompts(&types.PreferenceProfile{SkillLevel: "advanced"}, req)

	assert.Contains(t, beginner, "beginner")
	assert.Contains(t, advanced, "advanced")
	assert.NotEqual(t, beginner, advanced)
}
