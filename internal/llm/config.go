package llm

import (
	"fmt"
	"os"
	"time"
)

// Config holds model provider configuration. The credential (APIKey) is a
// single opaque string shared by whichever provider is selected; it is
// resolved at startup (env wins over the persisted value) and injected here.
type Config struct {
	// Provider selects which model service to use.
	// Values: "gemini", "anthropic", "openai", "mock".
	Provider string

	// APIKey is the active credential for the selected provider.
	APIKey string

	// Model is a friendly model name or a direct model ID.
	Model string

	// BaseURL overrides the API endpoint for OpenAI-compatible services.
	BaseURL string

	Retry RetryConfig

	// Timeout bounds a single gateway operation, retries included.
	Timeout time.Duration
}

// RetryConfig configures retry behavior for transient transport failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with sensible defaults. Gemini is the
// primary provider; "gemini-flash" resolves to gemini-2.5-flash.
func DefaultConfig() Config {
	return Config{
		Provider: "gemini",
		Model:    "gemini-flash",
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 60 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values. The GEMINIMIND_API_KEY value is the
// environment-provided credential of the startup precedence rules and is
// never written to the local store.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("GEMINIMIND_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
	}
	if k := os.Getenv("GEMINIMIND_API_KEY"); k != "" {
		cfg.APIKey = k
	}
	if m := os.Getenv("GEMINIMIND_MODEL"); m != "" {
		cfg.Model = m
	}
	if u := os.Getenv("GEMINIMIND_BASE_URL"); u != "" {
		cfg.BaseURL = u
	}

	if cfg.APIKey == "" {
		if k, provider := discoverKey(); k != "" {
			cfg.APIKey = k
			if os.Getenv("GEMINIMIND_LLM_PROVIDER") == "" {
				cfg.Provider = provider
				if os.Getenv("GEMINIMIND_MODEL") == "" {
					cfg.Model = defaultModelFor(provider)
				}
			}
		}
	}

	return cfg
}

// discoverKey probes the standard API key env vars in priority order
// (Gemini first, matching the primary provider) and returns the first
// key found together with its provider name.
func discoverKey() (key, provider string) {
	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		return k, "gemini"
	}
	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		return k, "openai"
	}
	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		return k, "anthropic"
	}
	return "", ""
}

func defaultModelFor(provider string) string {
	switch provider {
	case "anthropic":
		return "claude-haiku"
	case "openai":
		return "gpt-4o-mini"
	default:
		return "gemini-flash"
	}
}

// WithCredential returns a copy of the config with the credential replaced.
// Used by the key validation flow to probe a candidate key without
// touching the active configuration.
func (c Config) WithCredential(key string) Config {
	c.APIKey = key
	return c
}

// Validate checks that the selected provider has a credential.
func (c Config) Validate() error {
	switch c.Provider {
	case "gemini", "anthropic", "openai":
		if c.APIKey == "" {
			return fmt.Errorf("no API key configured for the %s provider", c.Provider)
		}
	case "mock":
		// No credential needed.
	default:
		return fmt.Errorf("unknown model provider: %q", c.Provider)
	}
	return nil
}
