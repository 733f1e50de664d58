package llm

import (
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

func TestNewOpenAIProvider_RequiresKey(t *testing.T) {
	_, err := NewOpenAIProvider(Config{Provider: "openai"})
	if err == nil {
		t.Fatal("expected error without API key")
	}
}

func TestNewOpenAIProvider_PassThroughModel(t *testing.T) {
	p, err := NewOpenAIProvider(Config{Provider: "openai", APIKey: "sk-test", Model: "gpt-5-mini"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "gpt-5-mini" {
		t.Fatalf("expected 'gpt-5-mini', got %q", p.ModelID())
	}
}

func TestMapOpenAIStopReason(t *testing.T) {
	if got := mapOpenAIStopReason(openai.FinishReasonLength); got != "max_tokens" {
		t.Fatalf("expected 'max_tokens', got %q", got)
	}
	if got := mapOpenAIStopReason(openai.FinishReasonStop); got != "end" {
		t.Fatalf("expected 'end', got %q", got)
	}
}
