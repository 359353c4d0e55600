package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLLMService(apiURL string) *LLMService {
	return &LLMService{
		apiKey:     "test-key",
		apiURL:     apiURL,
		model:      "deepseek-chat",
		inputRate:  deepseekInputRate,
		outputRate: deepseekOutputRate,
		client:     &http.Client{},
	}
}

func TestGenerateRecipesSuccess(t *testing.T) {
	var gotAuth string
	var gotReq chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"choices": [{"message": {"content": "{\"recipes\": []}"}}],
			"usage": {"prompt_tokens": 1200, "completion_tokens": 3400, "total_tokens": 4600}
		}`))
	}))
	defer server.Close()

	svc := newTestLLMService(server.URL)
	completion, err := svc.GenerateRecipes(context.Background(), "system text", "user text")
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "deepseek-chat", gotReq.Model)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Equal(t, "system text", gotReq.Messages[0].Content)
	assert.Equal(t, "user", gotReq.Messages[1].Role)
	assert.Equal(t, map[string]string{"type": "json_object"}, gotReq.ResponseFormat)

	assert.Equal(t, `{"recipes": []}`, completion.Content)
	assert.Equal(t, 1200, completion.PromptTokens)
	assert.Equal(t, 3400, completion.CompletionTokens)
	assert.InDelta(t, EstimateCost(1200, 3400, deepseekInputRate, deepseekOutputRate), completion.EstimatedCost, 1e-12)
}

func TestGenerateRecipesUpstreamErrorHidesBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": "internal quota detail abc123"}`))
	}))
	defer server.Close()

	svc := newTestLLMService(server.URL)
	_, err := svc.GenerateRecipes(context.Background(), "s", "u")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUpstream)
	assert.NotContains(t, err.Error(), "abc123")
}

func TestGenerateRecipesNoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices": [], "usage": {}}`))
	}))
	defer server.Close()

	svc := newTestLLMService(server.URL)
	_, err := svc.GenerateRecipes(context.Background(), "s", "u")
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestEstimateCost(t *testing.T) {
	assert.InDelta(t, 0.15, EstimateCost(1_000_000, 0, 0.15, 9.9), 1e-12)
	assert.InDelta(t, 1.10, EstimateCost(0, 1_000_000, 0.27, 1.10), 1e-12)
	assert.InDelta(t, 0.0, EstimateCost(0, 0, 0.27, 1.10), 1e-12)
	assert.InDelta(t, 0.27/2+1.10/4, EstimateCost(500_000, 250_000, 0.27, 1.10), 1e-12)
}
