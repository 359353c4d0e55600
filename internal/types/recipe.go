package types

import (
	"time"

	"github.com/google/uuid"
)

// IngredientDraft is one untrusted ingredient line from the model.
type IngredientDraft struct {
	Name   string   `json:"name" validate:"required"`
	Amount *float64 `json:"amount" validate:"required,gt=0"`
	Unit   string   `json:"unit" validate:"required"`
	Notes  string   `json:"notes"`
}

// InstructionDraft is one untrusted instruction step from the model.
type InstructionDraft struct {
	StepNumber  *int   `json:"step_number" validate:"required,gte=1"`
	Instruction string `json:"instruction" validate:"required"`
	TimeMinutes *int   `json:"time_minutes" validate:"omitempty,gte=0"`
}

// RecipeDraft is the model's proposed recipe before validation. Required
// numeric fields are pointers so an absent field is distinguishable from a
// legitimate zero; the draft is never persisted directly.
type RecipeDraft struct {
	Title        string             `json:"title" validate:"required"`
	Description  string             `json:"description" validate:"required"`
	Emoji        string             `json:"emoji" validate:"required"`
	PrepTime     *int               `json:"prep_time" validate:"required,gte=0"`
	CookTime     *int               `json:"cook_time" validate:"required,gte=0"`
	TotalTime    *int               `json:"total_time" validate:"required,gte=0"`
	Servings     *int               `json:"servings" validate:"required,gte=0"`
	Difficulty   string             `json:"difficulty" validate:"required,oneof=easy medium hard"`
	Calories     *float64           `json:"calories" validate:"required,gte=0"`
	Protein      *float64           `json:"protein" validate:"required,gte=0"`
	Carbs        *float64           `json:"carbs" validate:"required,gte=0"`
	Fats         *float64           `json:"fats" validate:"required,gte=0"`
	Fiber        *float64           `json:"fiber" validate:"omitempty,gte=0"`
	Sugar        *float64           `json:"sugar" validate:"omitempty,gte=0"`
	Sodium       *float64           `json:"sodium" validate:"omitempty,gte=0"`
	Cholesterol  *float64           `json:"cholesterol" validate:"omitempty,gte=0"`
	Ingredients  []IngredientDraft  `json:"ingredients" validate:"required,min=1,dive"`
	Instructions []InstructionDraft `json:"instructions" validate:"required,min=1,dive"`
	Equipment    []string           `json:"equipment"`
	Tags         []string           `json:"tags"`
}

// ClientNutrition groups the nutrition numbers in the client projection.
type ClientNutrition struct {
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fats        float64 `json:"fats"`
	Fiber       float64 `json:"fiber"`
	Sugar       float64 `json:"sugar"`
	Sodium      float64 `json:"sodium"`
	Cholesterol float64 `json:"cholesterol"`
}

// ClientIngredient is the camel-case ingredient shape served to clients.
type ClientIngredient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
	Notes  string  `json:"notes,omitempty"`
}

// ClientInstruction is the camel-case instruction shape served to clients.
type ClientInstruction struct {
	StepNumber  int    `json:"stepNumber"`
	Instruction string `json:"instruction"`
	TimeMinutes int    `json:"timeMinutes,omitempty"`
}

// ClientRecipe is the read-only projection combining a recipe row and its
// per-user annotation row, renamed to the client naming convention.
type ClientRecipe struct {
	ID           uuid.UUID           `json:"id"`
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	Emoji        string              `json:"emoji"`
	MealType     string              `json:"mealType"`
	PrepTime     int                 `json:"prepTime"`
	CookTime     int                 `json:"cookTime"`
	TotalTime    int                 `json:"totalTime"`
	Servings     int                 `json:"servings"`
	Difficulty   string              `json:"difficulty"`
	Nutrition    ClientNutrition     `json:"nutrition"`
	Ingredients  []ClientIngredient  `json:"ingredients"`
	Instructions []ClientInstruction `json:"instructions"`
	Equipment    []string            `json:"equipment"`
	Tags         []string            `json:"tags"`
	ImageURL     string              `json:"imageUrl,omitempty"`
	IsFavorite   bool                `json:"isFavorite"`
	Rating       *int                `json:"rating,omitempty"`
	Notes        string              `json:"notes,omitempty"`
	CookedCount  int                 `json:"cookedCount"`
	LastCooked   *time.Time          `json:"lastCooked,omitempty"`
	CreatedAt    time.Time           `json:"createdAt"`
}
