package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platewise/backend/internal/model"
	"github.com/platewise/backend/internal/service"
	"github.com/platewise/backend/internal/testhelpers"
)

func TestGenerateEndpointSuccess(t *testing.T) {
	llm := &stubGenerator{completion: &service.Completion{
		Content:          testhelpers.SampleRecipeBatchJSON(t, 4),
		PromptTokens:     1000,
		CompletionTokens: 2000,
		EstimatedCost:    0.0025,
	}}
	env := setupTestEnv(t, llm)

	w := env.do(t, http.MethodPost, "/api/v1/recipes/generate", `{"meal_type": "dinner"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Success  bool                     `json:"success"`
		Recipes  []map[string]interface{} `json:"recipes"`
		Metadata struct {
			TokensUsed    int     `json:"tokens_used"`
			EstimatedCost float64 `json:"estimated_cost"`
		} `json:"metadata"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	require.Len(t, resp.Recipes, 4)
	assert.Equal(t, 3000, resp.Metadata.TokensUsed)
	assert.InDelta(t, 0.0025, resp.Metadata.EstimatedCost, 1e-12)

	// Client projection uses camelCase keys.
	first := resp.Recipes[0]
	assert.Contains(t, first, "mealType")
	assert.Contains(t, first, "prepTime")
	assert.Contains(t, first, "isFavorite")
	assert.Contains(t, first, "cookedCount")
	assert.NotContains(t, first, "meal_type")
	assert.Equal(t, false, first["isFavorite"])

	nutrition, ok := first["nutrition"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, nutrition, "calories")
}

func TestGenerateEndpointRequiresAuth(t *testing.T) {
	env := setupTestEnv(t, &stubGenerator{})

	req, err := http.NewRequest(http.MethodPost, "/api/v1/recipes/generate", nil)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGenerateEndpointRejectsBadMealType(t *testing.T) {
	env := setupTestEnv(t, &stubGenerator{})

	w := env.do(t, http.MethodPost, "/api/v1/recipes/generate", `{"meal_type": "brunch"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestGenerateEndpointNoProfile(t *testing.T) {
	env := setupTestEnv(t, &stubGenerator{})
	require.NoError(t, env.db.Unscoped().Exec("DELETE FROM user_profiles").Error)

	w := env.do(t, http.MethodPost, "/api/v1/recipes/generate", `{"meal_type": "lunch"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestGenerateEndpointUpstreamFailure(t *testing.T) {
	env := setupTestEnv(t, &stubGenerator{err: service.ErrUpstream})

	w := env.do(t, http.MethodPost, "/api/v1/recipes/generate", `{"meal_type": "dinner"}`)
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestGenerateEndpointInvalidBatch(t *testing.T) {
	llm := &stubGenerator{completion: &service.Completion{
		Content: testhelpers.SampleRecipeBatchJSON(t, 3),
	}}
	env := setupTestEnv(t, llm)

	w := env.do(t, http.MethodPost, "/api/v1/recipes/generate", `{"meal_type": "dinner"}`)
	assert.Equal(t, http.StatusBadGateway, w.Code)

	// Nothing persisted, one failed audit row.
	var recipeCount int64
	require.NoError(t, env.db.Model(&model.Recipe{}).Count(&recipeCount).Error)
	assert.Zero(t, recipeCount)

	var logs []model.GenerationLog
	require.NoError(t, env.db.Find(&logs).Error)
	require.Len(t, logs, 1)
	assert.False(t, logs[0].Success)
}
