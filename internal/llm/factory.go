package llm

import (
	"context"
	"fmt"

	"github.com/gintama1018/geminimind/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with retry
// and event logging middleware: caller → retry → logging → base.
func NewProvider(ctx context.Context, cfg Config, events store.EventRepo) (Provider, error) {
	base, err := newBaseProvider(ctx, cfg)
	if err != nil {
		return nil, err
	}

	logged := WithLogging(base, events)
	return WithRetry(logged, cfg.Retry), nil
}

// NewBareProvider creates a Provider with no middleware. The credential
// validation probe uses it so that a bad key fails fast, without retries
// and without polluting the event log with canned probe traffic.
func NewBareProvider(ctx context.Context, cfg Config) (Provider, error) {
	return newBaseProvider(ctx, cfg)
}

func newBaseProvider(ctx context.Context, cfg Config) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg)
	case "openai":
		base, err = NewOpenAIProvider(cfg)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown model provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return base, nil
}
