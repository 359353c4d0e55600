package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/platewise/backend/config"
)

// ErrUpstream is returned when the model API call fails. The raw upstream
// error body is logged but never wrapped into the returned error.
var ErrUpstream = errors.New("model request failed")

// Pricing in USD per million tokens, and the fixed decoding parameters for
// recipe generation: moderate temperature for variety, a token ceiling sized
// for four detailed recipes.
const (
	deepseekInputRate  = 0.27
	deepseekOutputRate = 1.10

	generationTemperature = 0.8
	generationMaxTokens   = 8192
)

// Message represents a message in the chat
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest represents a chat-completions request to the DeepSeek API
type chatRequest struct {
	Model          string            `json:"model"`
	Messages       []Message         `json:"messages"`
	ResponseFormat map[string]string `json:"response_format"`
	Temperature    float64           `json:"temperature"`
	MaxTokens      int               `json:"max_tokens"`
}

// Completion is one model completion plus its usage accounting.
type Completion struct {
	Content          string
	PromptTokens     int
	CompletionTokens int
	EstimatedCost    float64
}

// LLMService handles interactions with the DeepSeek API
type LLMService struct {
	apiKey     string
	apiURL     string
	model      string
	inputRate  float64
	outputRate float64
	client     *http.Client
}

var _ RecipeGenerator = (*LLMService)(nil)

// NewLLMService creates a new LLMService instance
func NewLLMService(cfg *config.Config) (*LLMService, error) {
	if cfg.LLMAPIKey == "" {
		return nil, fmt.Errorf("DEEPSEEK_API_KEY or DEEPSEEK_API_KEY_FILE must be set")
	}

	return &LLMService{
		apiKey:     cfg.LLMAPIKey,
		apiURL:     cfg.LLMAPIURL,
		model:      cfg.LLMModel,
		inputRate:  deepseekInputRate,
		outputRate: deepseekOutputRate,
		client:     &http.Client{},
	}, nil
}

// ModelName returns the model identifier used for cost attribution.
func (s *LLMService) ModelName() string {
	return s.model
}

// GenerateRecipes sends the composed prompt pair to the model and returns
// the raw completion text with token usage and estimated cost. There is no
// internal timeout; cancellation is the caller's responsibility via ctx.
func (s *LLMService) GenerateRecipes(ctx context.Context, systemPrompt, userPrompt string) (*Completion, error) {
	reqBody := chatRequest{
		Model: s.model,
		Messages: []Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		ResponseFormat: map[string]string{"type": "json_object"},
		Temperature:    generationTemperature,
		MaxTokens:      generationMaxTokens,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		// The raw body may contain upstream internals; log it, don't return it.
		log.Printf("[LLMService] API request failed with status %d: %s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Usage struct {
			PromptTokens     int `json:"prompt_tokens"`
			CompletionTokens int `json:"completion_tokens"`
			TotalTokens      int `json:"total_tokens"`
		} `json:"usage"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("%w: undecodable response envelope", ErrUpstream)
	}
	if len(result.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrUpstream)
	}

	return &Completion{
		Content:          result.Choices[0].Message.Content,
		PromptTokens:     result.Usage.PromptTokens,
		CompletionTokens: result.Usage.CompletionTokens,
		EstimatedCost:    EstimateCost(result.Usage.PromptTokens, result.Usage.CompletionTokens, s.inputRate, s.outputRate),
	}, nil
}

// EstimateCost computes the monetary cost of a completion from token counts
// and per-million-token rates.
func EstimateCost(promptTokens, completionTokens int, inputRate, outputRate float64) float64 {
	return float64(promptTokens)/1_000_000*inputRate + float64(completionTokens)/1_000_000*outputRate
}
