package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/platewise/backend/internal/model"
	"github.com/platewise/backend/internal/types"
)

// GenerationResult is what a successful generation returns to the caller.
type GenerationResult struct {
	Recipes        []model.Recipe
	TokensUsed     int
	EstimatedCost  float64
	GenerationTime time.Duration
}

// GenerationService runs the full generation pipeline: aggregate preferences,
// compose prompts, invoke the model, validate the batch, persist it, and
// write one audit log row per attempt no matter what happened.
type GenerationService struct {
	db    *gorm.DB
	prefs PreferenceProvider
	llm   RecipeGenerator
}

// NewGenerationService creates a new GenerationService instance
func NewGenerationService(db *gorm.DB, prefs PreferenceProvider, llm RecipeGenerator) *GenerationService {
	return &GenerationService{db: db, prefs: prefs, llm: llm}
}

// Generate runs one generation attempt for the given user. Each call is one
// strictly sequential unit of work; concurrent calls for the same user are
// not serialized here.
//
// Persistence is per-recipe, not one transaction: a failure on recipe N
// leaves recipes 1..N-1 in place with no compensation.
func (s *GenerationService) Generate(ctx context.Context, userID uuid.UUID, req *types.GenerateRecipesRequest) (result *GenerationResult, err error) {
	start := time.Now()

	var completion *Completion
	defer func() {
		s.logAttempt(ctx, userID, req.MealType, completion, err)
	}()

	profile, err := s.prefs.GetPreferences(ctx, userID)
	if err != nil {
		return nil, err
	}

	systemPrompt, userPrompt := ComposePrompts(profile, req)

	completion, err = s.llm.GenerateRecipes(ctx, systemPrompt, userPrompt)
	if err != nil {
		return nil, err
	}

	drafts, err := ParseRecipeBatch(completion.Content)
	if err != nil {
		return nil, err
	}

	recipes := make([]model.Recipe, 0, len(drafts))
	for i := range drafts {
		rec := draftToRecord(&drafts[i], req.MealType, userID)
		if createErr := s.db.WithContext(ctx).Create(&rec).Error; createErr != nil {
			err = fmt.Errorf("failed to persist recipe %d: %w", i+1, createErr)
			return nil, err
		}

		link := model.UserRecipe{
			ID:       uuid.New(),
			UserID:   userID,
			RecipeID: rec.ID,
		}
		if createErr := s.db.WithContext(ctx).Create(&link).Error; createErr != nil {
			err = fmt.Errorf("failed to persist user recipe link %d: %w", i+1, createErr)
			return nil, err
		}

		recipes = append(recipes, rec)
	}

	return &GenerationResult{
		Recipes:        recipes,
		TokensUsed:     completion.PromptTokens + completion.CompletionTokens,
		EstimatedCost:  completion.EstimatedCost,
		GenerationTime: time.Since(start),
	}, nil
}

// logAttempt writes the audit/cost row for one attempt. Best effort: a
// failed log write is reported to stderr and swallowed so it can never mask
// the primary outcome.
func (s *GenerationService) logAttempt(ctx context.Context, userID uuid.UUID, mealType string, completion *Completion, genErr error) {
	entry := model.GenerationLog{
		ID:       uuid.New(),
		UserID:   userID,
		MealType: mealType,
		Success:  genErr == nil,
		AIModel:  s.llm.ModelName(),
	}
	if completion != nil {
		entry.PromptTokens = completion.PromptTokens
		entry.CompletionTokens = completion.CompletionTokens
		entry.TokenCount = completion.PromptTokens + completion.CompletionTokens
		entry.EstimatedCost = completion.EstimatedCost
	}
	if genErr != nil {
		entry.ErrorMessage = genErr.Error()
	}

	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		log.Printf("[GenerationService] failed to write generation log: %v", err)
	}
}

// draftToRecord converts a validated draft into a storage row. Optional
// numerics default to zero; optional lists default to empty.
func draftToRecord(draft *types.RecipeDraft, mealType string, userID uuid.UUID) model.Recipe {
	rec := model.Recipe{
		ID:          uuid.New(),
		Title:       draft.Title,
		Description: draft.Description,
		Emoji:       draft.Emoji,
		MealType:    mealType,
		PrepTime:    *draft.PrepTime,
		CookTime:    *draft.CookTime,
		TotalTime:   *draft.TotalTime,
		Servings:    *draft.Servings,
		Difficulty:  draft.Difficulty,
		Calories:    *draft.Calories,
		Protein:     *draft.Protein,
		Carbs:       *draft.Carbs,
		Fats:        *draft.Fats,
		Fiber:       floatOrZero(draft.Fiber),
		Sugar:       floatOrZero(draft.Sugar),
		Sodium:      floatOrZero(draft.Sodium),
		Cholesterol: floatOrZero(draft.Cholesterol),
		Equipment:   model.JSONBStringArray(draft.Equipment),
		Tags:        model.JSONBStringArray(draft.Tags),
		Embedding:   GenerateEmbedding(draft.Title + " " + draft.Description),
		CreatedBy:   userID,
	}
	if rec.Equipment == nil {
		rec.Equipment = model.JSONBStringArray{}
	}
	if rec.Tags == nil {
		rec.Tags = model.JSONBStringArray{}
	}

	rec.Ingredients = make(model.JSONBIngredients, 0, len(draft.Ingredients))
	for _, ing := range draft.Ingredients {
		rec.Ingredients = append(rec.Ingredients, model.Ingredient{
			Name:   ing.Name,
			Amount: *ing.Amount,
			Unit:   ing.Unit,
			Notes:  ing.Notes,
		})
	}

	rec.Instructions = make(model.JSONBInstructions, 0, len(draft.Instructions))
	for _, step := range draft.Instructions {
		rec.Instructions = append(rec.Instructions, model.Instruction{
			StepNumber:  *step.StepNumber,
			Instruction: step.Instruction,
			TimeMinutes: intOrZero(step.TimeMinutes),
		})
	}

	return rec
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
