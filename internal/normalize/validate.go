package normalize

import (
	"github.com/go-playground/validator/v10"

	"github.com/platewise/backend/internal/types"
)

var validate = validator.New()

// ValidateRecipe checks a draft against the recipe contract: required scalar
// fields present, numeric fields non-negative, difficulty in its enum, and
// non-empty ingredient/instruction lists whose entries are individually
// valid. Returns the first violation.
func ValidateRecipe(draft *types.RecipeDraft) error {
	return validate.Struct(draft)
}

// IsValidRecipe reports whether a recipe payload satisfies the full contract.
// Usable on any recipe payload before it is trusted, regardless of where it
// came from.
func IsValidRecipe(draft *types.RecipeDraft) bool {
	return ValidateRecipe(draft) == nil
}

// IsValidIngredient reports whether a single ingredient entry is valid:
// non-empty name and unit, amount strictly positive.
func IsValidIngredient(ing types.IngredientDraft) bool {
	return validate.Struct(ing) == nil
}

// IsValidInstruction reports whether a single instruction entry is valid:
// step number at least 1 and non-empty instruction text.
func IsValidInstruction(step types.InstructionDraft) bool {
	return validate.Struct(step) == nil
}
