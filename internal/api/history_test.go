package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platewise/backend/internal/model"
)

func TestGenerationHistoryEndpoint(t *testing.T) {
	env, _ := newSeededEnv(t)

	// A rejected body never reaches the pipeline, so it leaves no audit row.
	w := env.do(t, http.MethodPost, "/api/v1/recipes/generate", `{"meal_type": "brunch"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodGet, "/api/v1/generations", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Generations []model.GenerationLog `json:"generations"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Generations, 1)
	assert.True(t, resp.Generations[0].Success)
	assert.Equal(t, "dinner", resp.Generations[0].MealType)
}

func TestGenerationStatsEndpoint(t *testing.T) {
	env, _ := newSeededEnv(t)

	// A second attempt so the counters have something to add up.
	w := env.do(t, http.MethodPost, "/api/v1/recipes/generate", `{"meal_type": "lunch"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.do(t, http.MethodGet, "/api/v1/generations/stats", "")
	require.Equal(t, http.StatusOK, w.Code)

	var stats GenerationStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, int64(2), stats.TotalAttempts)
	assert.Equal(t, int64(2), stats.Successful)
	assert.Equal(t, int64(0), stats.Failed)
	assert.Equal(t, int64(2), stats.ThisWeek)
}
