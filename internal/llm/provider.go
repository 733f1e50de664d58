package llm

import "context"

// Provider is the core abstraction over a hosted model service.
// Providers send a prompt and return the model's raw text; they make
// no promise about the shape of that text. Structured contracts
// (JSON schemas, fence stripping) live in the gateway layer.
type Provider interface {
	// Generate sends a single request to the model and returns its
	// text output. It performs at most one outbound round trip.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the model.
type Request struct {
	// System is the standing system instruction, set once per call.
	// Empty means no system instruction.
	System string

	// Prompt is the user-turn prompt text. Every operation in this
	// application is single-turn: full context is re-sent each call.
	Prompt string

	// MaxTokens caps the response length. Zero means the provider default.
	MaxTokens int

	// Temperature controls randomness. Range 0.0 - 1.0; zero value
	// leaves the provider default in place.
	Temperature float64
}

// Response holds the model's output.
type Response struct {
	// Text is the raw model text, unmodified.
	Text string

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
