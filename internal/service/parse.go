package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/platewise/backend/internal/normalize"
	"github.com/platewise/backend/internal/types"
)

var (
	// ErrMalformedResponse means the completion was not parseable JSON.
	ErrMalformedResponse = errors.New("malformed model response")
	// ErrWrongRecipeCount means the recipes array did not hold exactly 4 entries.
	ErrWrongRecipeCount = errors.New("wrong recipe count")
	// ErrRecipeSchema means at least one recipe violated the schema contract.
	ErrRecipeSchema = errors.New("recipe schema violation")
)

// ParseRecipeBatch parses and validates an untrusted model completion against
// the recipe contract. The whole batch is rejected on any violation: the
// contract downstream is "always exactly four choices", and a silently
// shorter or padded set would break it invisibly.
func ParseRecipeBatch(raw string) ([]types.RecipeDraft, error) {
	var wrapper struct {
		Recipes []types.RecipeDraft `json:"recipes"`
	}
	if err := json.Unmarshal([]byte(raw), &wrapper); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if len(wrapper.Recipes) != RecipesPerBatch {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrWrongRecipeCount, len(wrapper.Recipes), RecipesPerBatch)
	}

	for i := range wrapper.Recipes {
		draft := &wrapper.Recipes[i]
		draft.Difficulty = strings.ToLower(strings.TrimSpace(draft.Difficulty))
		if err := normalize.ValidateRecipe(draft); err != nil {
			return nil, fmt.Errorf("%w: recipe %d: %v", ErrRecipeSchema, i+1, err)
		}
	}

	return wrapper.Recipes, nil
}
