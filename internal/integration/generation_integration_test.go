package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platewise/backend/internal/model"
	"github.com/platewise/backend/internal/service"
	"github.com/platewise/backend/internal/testhelpers"
	"github.com/platewise/backend/internal/types"
)

type cannedGenerator struct {
	content string
}

func (g *cannedGenerator) GenerateRecipes(ctx context.Context, systemPrompt, userPrompt string) (*service.Completion, error) {
	return &service.Completion{Content: g.content, PromptTokens: 100, CompletionTokens: 200, EstimatedCost: 0.0002}, nil
}

func (g *cannedGenerator) ModelName() string { return "canned" }

// Runs the whole pipeline against a real postgres with pgvector, including
// embedding-ordered search. Skipped when docker is unavailable.
func TestGenerationPipelineOnPostgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db := testhelpers.SetupPostgresTestDB(t)
	userID := testhelpers.CreateTestUser(t, db)
	testhelpers.CreateTestProfile(t, db, userID)

	llm := &cannedGenerator{content: testhelpers.SampleRecipeBatchJSON(t, 4)}
	gen := service.NewGenerationService(db, service.NewPreferenceService(db), llm)

	result, err := gen.Generate(context.Background(), userID, &types.GenerateRecipesRequest{MealType: "dinner"})
	require.NoError(t, err)
	require.Len(t, result.Recipes, 4)

	var logs []model.GenerationLog
	require.NoError(t, db.Find(&logs).Error)
	require.Len(t, logs, 1)
	assert.True(t, logs[0].Success)

	// Embedding search path runs the <-> operator for real here.
	recipes := service.NewRecipeService(db)
	found, err := recipes.ListForUser(context.Background(), userID, "test recipe")
	require.NoError(t, err)
	assert.Len(t, found, 4)
}
