// Package normalize is the single source of truth for the mapping between
// the flat snake-case storage rows and the nested camel-case recipe objects
// served to clients, plus the reusable structural validators for untrusted
// recipe payloads.
package normalize

import (
	"encoding/json"

	"github.com/platewise/backend/internal/model"
	"github.com/platewise/backend/internal/types"
)

// ToClient projects a stored recipe row and its optional per-user annotation
// row into the client shape. A nil link yields the safe defaults
// (isFavorite=false, cookedCount=0, no rating).
func ToClient(rec *model.Recipe, link *model.UserRecipe) types.ClientRecipe {
	out := types.ClientRecipe{
		ID:          rec.ID,
		Title:       rec.Title,
		Description: rec.Description,
		Emoji:       rec.Emoji,
		MealType:    rec.MealType,
		PrepTime:    rec.PrepTime,
		CookTime:    rec.CookTime,
		TotalTime:   rec.TotalTime,
		Servings:    rec.Servings,
		Difficulty:  rec.Difficulty,
		Nutrition: types.ClientNutrition{
			Calories:    rec.Calories,
			Protein:     rec.Protein,
			Carbs:       rec.Carbs,
			Fats:        rec.Fats,
			Fiber:       rec.Fiber,
			Sugar:       rec.Sugar,
			Sodium:      rec.Sodium,
			Cholesterol: rec.Cholesterol,
		},
		Ingredients:  make([]types.ClientIngredient, 0, len(rec.Ingredients)),
		Instructions: make([]types.ClientInstruction, 0, len(rec.Instructions)),
		Equipment:    DecodeStringList(rec.Equipment),
		Tags:         DecodeStringList(rec.Tags),
		ImageURL:     rec.ImageURL,
		CreatedAt:    rec.CreatedAt,
	}

	for _, ing := range rec.Ingredients {
		out.Ingredients = append(out.Ingredients, types.ClientIngredient{
			Name:   ing.Name,
			Amount: ing.Amount,
			Unit:   ing.Unit,
			Notes:  ing.Notes,
		})
	}
	for _, step := range rec.Instructions {
		out.Instructions = append(out.Instructions, types.ClientInstruction{
			StepNumber:  step.StepNumber,
			Instruction: step.Instruction,
			TimeMinutes: step.TimeMinutes,
		})
	}

	if link != nil {
		out.IsFavorite = link.IsFavorite
		out.Rating = link.Rating
		out.Notes = link.Notes
		out.CookedCount = link.CookedCount
		out.LastCooked = link.LastCookedAt
	}

	return out
}

// ToStorage maps a client recipe back to a storage row restricted to content
// fields. Favorite, rating and cooked state are deliberately excluded; those
// are mutated only through the dedicated user-recipe operations.
func ToStorage(c *types.ClientRecipe) model.Recipe {
	rec := model.Recipe{
		Title:        c.Title,
		Description:  c.Description,
		Emoji:        c.Emoji,
		MealType:     c.MealType,
		PrepTime:     c.PrepTime,
		CookTime:     c.CookTime,
		TotalTime:    c.TotalTime,
		Servings:     c.Servings,
		Difficulty:   c.Difficulty,
		Calories:     c.Nutrition.Calories,
		Protein:      c.Nutrition.Protein,
		Carbs:        c.Nutrition.Carbs,
		Fats:         c.Nutrition.Fats,
		Fiber:        c.Nutrition.Fiber,
		Sugar:        c.Nutrition.Sugar,
		Sodium:       c.Nutrition.Sodium,
		Cholesterol:  c.Nutrition.Cholesterol,
		Ingredients:  make(model.JSONBIngredients, 0, len(c.Ingredients)),
		Instructions: make(model.JSONBInstructions, 0, len(c.Instructions)),
		Equipment:    model.JSONBStringArray(append([]string{}, c.Equipment...)),
		Tags:         model.JSONBStringArray(append([]string{}, c.Tags...)),
	}

	for _, ing := range c.Ingredients {
		rec.Ingredients = append(rec.Ingredients, model.Ingredient{
			Name:   ing.Name,
			Amount: ing.Amount,
			Unit:   ing.Unit,
			Notes:  ing.Notes,
		})
	}
	for _, step := range c.Instructions {
		rec.Instructions = append(rec.Instructions, model.Instruction{
			StepNumber:  step.StepNumber,
			Instruction: step.Instruction,
			TimeMinutes: step.TimeMinutes,
		})
	}

	return rec
}

// DecodeIngredients accepts an ingredient list that is already structured or
// arrives as JSON-encoded text (legacy rows) and returns a typed slice. Any
// undecodable input yields an empty slice; this path serves display code
// where partial data beats a crash.
func DecodeIngredients(value interface{}) []model.Ingredient {
	switch v := value.(type) {
	case nil:
		return []model.Ingredient{}
	case []model.Ingredient:
		return v
	case model.JSONBIngredients:
		return v
	case string:
		return decodeIngredientJSON([]byte(v))
	case []byte:
		return decodeIngredientJSON(v)
	default:
		// Re-encode unknown structured input (e.g. []interface{} of maps)
		// and decode into the typed shape.
		data, err := json.Marshal(v)
		if err != nil {
			return []model.Ingredient{}
		}
		return decodeIngredientJSON(data)
	}
}

func decodeIngredientJSON(data []byte) []model.Ingredient {
	var out []model.Ingredient
	if err := json.Unmarshal(data, &out); err != nil || out == nil {
		return []model.Ingredient{}
	}
	return out
}

// DecodeInstructions is the instruction-list counterpart of DecodeIngredients.
func DecodeInstructions(value interface{}) []model.Instruction {
	switch v := value.(type) {
	case nil:
		return []model.Instruction{}
	case []model.Instruction:
		return v
	case model.JSONBInstructions:
		return v
	case string:
		return decodeInstructionJSON([]byte(v))
	case []byte:
		return decodeInstructionJSON(v)
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return []model.Instruction{}
		}
		return decodeInstructionJSON(data)
	}
}

func decodeInstructionJSON(data []byte) []model.Instruction {
	var out []model.Instruction
	if err := json.Unmarshal(data, &out); err != nil || out == nil {
		return []model.Instruction{}
	}
	return out
}

// DecodeStringList decodes equipment/tag lists with the same pass-through,
// decode, empty-fallback policy.
func DecodeStringList(value interface{}) []string {
	switch v := value.(type) {
	case nil:
		return []string{}
	case []string:
		if v == nil {
			return []string{}
		}
		return v
	case model.JSONBStringArray:
		return append([]string{}, v...)
	case string:
		return decodeStringListJSON([]byte(v))
	case []byte:
		return decodeStringListJSON(v)
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return []string{}
		}
		return decodeStringListJSON(data)
	}
}

func decodeStringListJSON(data []byte) []string {
	var out []string
	if err := json.Unmarshal(data, &out); err != nil || out == nil {
		return []string{}
	}
	return out
}
