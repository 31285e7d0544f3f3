package llm

import "context"

// Provider is the abstraction over generative text backends. Calls are
// independent and carry no cross-call state; the same Request may be sent
// repeatedly.
type Provider interface {
	// Generate sends a prompt and returns the complete response text.
	Generate(ctx context.Context, req Request) (*Response, error)

	// GenerateStream sends a prompt and returns a channel of ordered text
	// fragments. The channel is closed after a terminal fragment: one with
	// Done set, or one carrying Err when generation failed mid-stream. An
	// error establishing the stream is returned directly instead.
	GenerateStream(ctx context.Context, req Request) (<-chan Fragment, error)

	// ModelID returns the default model identifier this provider uses.
	ModelID() string
}

// Request describes what to send to the model.
type Request struct {
	// System is the system prompt. Sets the model's role and constraints.
	System string

	// Prompt is the user prompt. Grading and suggestion are single-turn, so
	// one string is all a request carries.
	Prompt string

	// Model overrides the provider's default model when set. Friendly names
	// are resolved per provider; unknown names pass through as-is.
	Model string

	// Schema, when set, instructs the provider to return JSON conforming to
	// it, using the provider's native structured output mechanism. The
	// response Text is then the validated JSON document. Streaming requests
	// ignore Schema.
	Schema *Schema

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	Temperature float64
}

// Schema defines the JSON structure expected from the model.
type Schema struct {
	// Name identifies this schema (schema name for OpenAI, resource name for
	// validation). Kebab-case, e.g. "practice-questions".
	Name string

	// Description is sent to the model to guide generation.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds a complete (non-streamed) model output.
type Response struct {
	// Text is the generated output. Prose for grading calls; a JSON document
	// when the request carried a Schema.
	Text string

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens"
	StopReason string
}

// Fragment is one element of a response stream. At most one of Text, Done and
// Err is meaningful: text fragments arrive first, then exactly one terminal
// fragment (Done on success, Err on mid-stream failure).
type Fragment struct {
	Text string
	Done bool
	Err  error
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
