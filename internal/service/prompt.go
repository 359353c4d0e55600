package service

import (
	"fmt"
	"strings"

	"github.com/platewise/backend/internal/types"
)

// RecipesPerBatch is the output contract: every generation produces exactly
// this many recipes or fails outright.
const RecipesPerBatch = 4

// recipeSystemPrompt is static policy text: role framing plus the output
// format contract the validator enforces on the way back in.
const recipeSystemPrompt = `You are a professional chef and nutritionist creating personalized recipes.

Respond with a single JSON object only. No prose, no markdown, no code fences.
The object must have this structure:
{
    "recipes": [
        {
            "title": "Recipe title",
            "description": "One or two sentence description",
            "emoji": "A single emoji representing the dish",
            "prep_time": 15,
            "cook_time": 20,
            "total_time": 35,
            "servings": 4,
            "difficulty": "easy",
            "calories": 450,
            "protein": 30,
            "carbs": 40,
            "fats": 15,
            "fiber": 5,
            "sugar": 8,
            "sodium": 600,
            "cholesterol": 80,
            "ingredients": [
                {"name": "chicken breast", "amount": 500, "unit": "g", "notes": "boneless"}
            ],
            "instructions": [
                {"step_number": 1, "instruction": "Season the chicken.", "time_minutes": 5}
            ],
            "equipment": ["skillet"],
            "tags": ["high-protein"]
        }
    ]
}

Rules:
- The recipes array must contain exactly 4 recipes.
- Every recipe must include every required field listed above.
- All times are minutes and all numeric values must be numbers, not strings.
- difficulty must be exactly one of: easy, medium, hard.
- Every recipe must have at least one ingredient and at least one instruction step.`

var skillGuidance = map[string]string{
	"beginner":     "The cook is a beginner: stick to simple techniques, explain each step clearly, and avoid steps that require precise timing or advanced knife work.",
	"intermediate": "The cook has intermediate experience: common techniques are fine, keep instructions concise but complete.",
	"advanced":     "The cook is advanced: complex techniques, multi-component dishes and restaurant-style methods are welcome.",
}

var mealTypeGuidance = map[string]string{
	"breakfast": "These are breakfast recipes: favor dishes that can be made in the morning, including quick options and at least one that can be prepared ahead.",
	"lunch":     "These are lunch recipes: favor satisfying midday meals, including at least one portable or make-ahead option.",
	"dinner":    "These are dinner recipes: favor complete evening meals with a protein and sides or a one-pot equivalent.",
	"snack":     "These are snack recipes: favor small portions that come together quickly, both sweet and savory.",
}

// ComposePrompts builds the system and user prompts for one generation
// request. Pure and deterministic: identical inputs always produce
// byte-identical output, which is what makes prompt regressions diffable.
// Section order is fixed and safety-relevant; restrictions and allergens come
// first because earlier sections carry more weight.
func ComposePrompts(profile *types.PreferenceProfile, req *types.GenerateRecipesRequest) (systemPrompt, userPrompt string) {
	var b strings.Builder

	if len(profile.DietaryRestrictions) > 0 {
		fmt.Fprintf(&b, "Dietary restrictions (must follow strictly): %s.\n", strings.Join(profile.DietaryRestrictions, ", "))
	}
	if len(profile.Allergens) > 0 {
		fmt.Fprintf(&b, "CRITICAL - allergens to avoid: %s. Do not include these or any ingredient derived from them.\n", strings.Join(profile.Allergens, ", "))
	}
	if len(profile.Goals) > 0 {
		fmt.Fprintf(&b, "Health goals: %s.\n", strings.Join(profile.Goals, ", "))
	}
	if len(profile.CuisinePreferences) > 0 {
		fmt.Fprintf(&b, "Cuisine preferences (incorporate when appropriate): %s.\n", strings.Join(profile.CuisinePreferences, ", "))
	}
	if len(profile.Equipment) > 0 {
		fmt.Fprintf(&b, "Available equipment: %s.\n", strings.Join(profile.Equipment, ", "))
	}

	if guidance, ok := skillGuidance[profile.SkillLevel]; ok {
		b.WriteString(guidance)
		b.WriteString("\n")
	}

	if profile.PreferredPrepTime != nil {
		fmt.Fprintf(&b, "Keep total time under %d minutes per recipe.\n", *profile.PreferredPrepTime)
	}

	if req.CustomRequest != "" {
		fmt.Fprintf(&b, "Additional request from the user: %s\n", req.CustomRequest)
	}

	if guidance, ok := mealTypeGuidance[req.MealType]; ok {
		b.WriteString(guidance)
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Generate exactly %d diverse %s recipes that satisfy everything above.", RecipesPerBatch, req.MealType)

	return recipeSystemPrompt, b.String()
}
