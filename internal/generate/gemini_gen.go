package generate

import (
	"context"
	"log"
	"time"

	"github.com/henryhcooperr/Math-LLM-sub001/internal/config"
	"github.com/henryhcooperr/Math-LLM-sub001/internal/extract"
	"github.com/henryhcooperr/Math-LLM-sub001/internal/gemini"
	"github.com/henryhcooperr/Math-LLM-sub001/internal/viz"
)

const geminiGenTimeout = 45 * time.Second

type genResult struct {
	Response viz.Response
	RawText  string
	Model    string
	Cached   bool
	Stub     bool
}

func (r genResult) status() string {
	switch {
	case r.Stub:
		return "stub"
	case r.Cached:
		return "cached"
	default:
		return "generated"
	}
}

// generateVisualization resolves a canonical response for the prompt:
// cache, then Gemini, then the offline stub. Every failure degrades to
// the stub, so the caller always gets a usable response.
func generateVisualization(ctx context.Context, runsDir, prompt string) genResult {
	if config.GeminiAPIKey() == "" {
		return stubResult(prompt)
	}

	model := gemini.ModelName()
	key := cacheKey(prompt, model)
	if cached, err := loadCache(runsDir, key); err == nil && usableResponse(cached.Response) {
		return genResult{
			Response: cached.Response,
			RawText:  cached.RawText,
			Model:    cached.Model,
			Cached:   true,
		}
	}

	req := gemini.GenerateRequest{
		SystemPrompt:    buildSystemPrompt(),
		UserPrompt:      buildUserPrompt(prompt),
		ResponseSchema:  visualizationSchema(),
		Temperature:     0,
		MaxOutputTokens: 4096,
	}

	ctx, cancel := withGeminiTimeout(ctx)
	defer cancel()
	resp, err := gemini.Generate(ctx, req)
	if err != nil {
		log.Printf("gemini generate: %v", err)
		return stubResult(prompt)
	}

	out := extract.Extract(resp.Text)
	cacheOut := CachedGeminiOutput{
		Model:         resp.Model,
		PromptVersion: promptVersion,
		Response:      out,
		RawText:       resp.Text,
		Usage:         toGeminiUsage(resp.Usage),
	}
	if err := saveCache(runsDir, key, cacheOut); err != nil {
		log.Printf("gemini cache save: %v", err)
	}

	return genResult{Response: out, RawText: resp.Text, Model: resp.Model}
}

// stubResult extracts the prompt itself. Extraction never fails, so the
// endpoint keeps answering without an API key or when Gemini is down.
func stubResult(prompt string) genResult {
	return genResult{Response: extract.Extract(prompt), Stub: true}
}

// usableResponse guards cache hits against stale or hand-edited entries
// that lack the invariants extraction guarantees.
func usableResponse(r viz.Response) bool {
	if r.Explanation == "" || r.Params.Type == "" || r.Params.Title == "" {
		return false
	}
	return r.FollowUpQuestions != nil && r.Educational.KeyInsights != nil
}

func withGeminiTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, geminiGenTimeout)
}

func toGeminiUsage(usage *gemini.Usage) *GeminiUsage {
	if usage == nil {
		return nil
	}
	return &GeminiUsage{
		PromptTokens:     usage.PromptTokens,
		CandidateTokens:  usage.CandidateTokens,
		TotalTokens:      usage.TotalTokens,
		CachedTokenCount: usage.CachedTokenCount,
	}
}
