package llm

import (
	"context"
	"fmt"

	"essaycoach/internal/config"
)

// NewProvider creates a Provider from configuration, wrapped with retry
// middleware. The provider's default model is the grading model; callers
// override per request for other tasks.
func NewProvider(ctx context.Context, cfg *config.AIConfig) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case config.ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg.GeminiAPIKey, cfg.Models.Grading)
	case config.ProviderOpenAI:
		base, err = NewOpenAIProvider(cfg.OpenAIAPIKey, cfg.Models.Grading)
	case config.ProviderOpenRouter:
		base, err = NewOpenRouterProvider(cfg.OpenRouterAPIKey, cfg.Models.Grading)
	case config.ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg.AnthropicAPIKey, cfg.Models.Grading)
	case config.ProviderMock:
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return WithRetry(base, DefaultRetryConfig()), nil
}
