package config

import (
	"os"
	"strconv"
)

// Provider names accepted by AI_PROVIDER.
const (
	ProviderGemini     = "gemini"
	ProviderOpenAI     = "openai"
	ProviderOpenRouter = "openrouter"
	ProviderAnthropic  = "anthropic"
	ProviderMock       = "mock"
)

// AIModels defines which models to use for different tasks
type AIModels struct {
	// Grading is for streamed essay feedback (needs to stream fast)
	Grading string `json:"grading"`

	// OCR is for extracting handwriting from answer photos (must be
	// vision-capable; always served by Gemini)
	OCR string `json:"ocr"`

	// Suggest is for practice-question generation (quality over speed)
	Suggest string `json:"suggest"`
}

// AIConfig holds all AI-related configuration
type AIConfig struct {
	Provider         string   `json:"provider"`
	GeminiAPIKey     string   `json:"-"` // Never serialize
	OpenAIAPIKey     string   `json:"-"`
	OpenRouterAPIKey string   `json:"-"`
	AnthropicAPIKey  string   `json:"-"`
	Models           AIModels `json:"models"`
	MaxTokens        int      `json:"maxTokens"`
	Temperature      float64  `json:"temperature"`
}

// DefaultAIConfig reads the AI configuration from the environment. When
// AI_PROVIDER is unset, the provider is discovered from whichever API key is
// present (gemini, openai, openrouter, anthropic order); with no key at all
// the mock provider is used so the server still starts in development.
func DefaultAIConfig() *AIConfig {
	cfg := &AIConfig{
		Provider:         os.Getenv("AI_PROVIDER"),
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		OpenAIAPIKey:     os.Getenv("OPENAI_API_KEY"),
		OpenRouterAPIKey: os.Getenv("OPENROUTER_API_KEY"),
		AnthropicAPIKey:  os.Getenv("ANTHROPIC_API_KEY"),
		Models: AIModels{
			Grading: getEnvOrDefault("AI_GRADING_MODEL", ""),
			OCR:     getEnvOrDefault("AI_OCR_MODEL", "gemini-2.0-flash"),
			Suggest: getEnvOrDefault("AI_SUGGEST_MODEL", ""),
		},
		MaxTokens:   getEnvIntOrDefault("AI_MAX_TOKENS", 8192),
		Temperature: getEnvFloatOrDefault("AI_TEMPERATURE", 0.3),
	}
	if cfg.Provider == "" {
		cfg.Provider = cfg.discoverProvider()
	}
	return cfg
}

// discoverProvider picks the first provider whose API key is set.
func (c *AIConfig) discoverProvider() string {
	switch {
	case c.GeminiAPIKey != "":
		return ProviderGemini
	case c.OpenAIAPIKey != "":
		return ProviderOpenAI
	case c.OpenRouterAPIKey != "":
		return ProviderOpenRouter
	case c.AnthropicAPIKey != "":
		return ProviderAnthropic
	default:
		return ProviderMock
	}
}

// OCREnabled reports whether photo answer extraction can be served. OCR is a
// Gemini vision call, so it needs a Gemini key regardless of the grading
// provider.
func (c *AIConfig) OCREnabled() bool {
	return c.GeminiAPIKey != ""
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
