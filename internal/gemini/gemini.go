package gemini

import (
	"context"
	"fmt"
	"os"
	"strings"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

type GenerateRequest struct {
	SystemPrompt    string
	UserPrompt      string
	ResponseSchema  any
	Temperature     float32
	MaxOutputTokens int32
}

type Usage struct {
	PromptTokens     int32 `json:"prompt_tokens"`
	CandidateTokens  int32 `json:"candidate_tokens"`
	TotalTokens      int32 `json:"total_tokens"`
	CachedTokenCount int32 `json:"cached_token_count"`
}

type GenerateResponse struct {
	Text  string
	Usage *Usage
	Model string
}

func modelName() string {
	if m := strings.TrimSpace(os.Getenv("GEMINI_MODEL")); m != "" {
		return m
	}
	return defaultModel
}

// ModelName returns the resolved Gemini model name.
func ModelName() string {
	return modelName()
}

func newClient(ctx context.Context) (*genai.Client, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}
	return genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
}

func buildConfig(req GenerateRequest) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: req.SystemPrompt}},
		},
		Temperature:     &req.Temperature,
		MaxOutputTokens: req.MaxOutputTokens,
	}
	if req.ResponseSchema != nil {
		cfg.ResponseMIMEType = "application/json"
		cfg.ResponseJsonSchema = req.ResponseSchema
	}
	return cfg
}

func buildContents(req GenerateRequest) []*genai.Content {
	return []*genai.Content{{
		Role:  genai.RoleUser,
		Parts: []*genai.Part{{Text: req.UserPrompt}},
	}}
}

func extractUsage(meta *genai.GenerateContentResponseUsageMetadata) *Usage {
	if meta == nil {
		return nil
	}
	return &Usage{
		PromptTokens:     meta.PromptTokenCount,
		CandidateTokens:  meta.CandidatesTokenCount,
		TotalTokens:      meta.TotalTokenCount,
		CachedTokenCount: meta.CachedContentTokenCount,
	}
}

// Generate runs a structured generation prompt and returns the raw text response.
func Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, error) {
	client, err := newClient(ctx)
	if err != nil {
		return GenerateResponse{}, err
	}
	model := modelName()
	result, err := client.Models.GenerateContent(ctx, model, buildContents(req), buildConfig(req))
	if err != nil {
		return GenerateResponse{}, fmt.Errorf("generate content: %w", err)
	}
	return GenerateResponse{
		Text:  result.Text(),
		Usage: extractUsage(result.UsageMetadata),
		Model: model,
	}, nil
}
