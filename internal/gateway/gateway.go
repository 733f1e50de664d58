package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gintama1018/geminimind/internal/llm"
	"github.com/gintama1018/geminimind/internal/persona"
)

// Gateway turns application intents into model calls. It holds an explicit
// provider handle rather than package-level state, so that multiple
// credentials can coexist in tests and the composition root decides
// lifetime. A Gateway is stateless between calls and safe for reentrant
// use; callers serialize calls themselves where ordering matters.
type Gateway struct {
	provider llm.Provider
	timeout  time.Duration
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithTimeout sets the per-call deadline. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(g *Gateway) { g.timeout = d }
}

// New creates a Gateway over the given provider. A nil provider yields a
// gateway whose operations fail with ErrUninitialized.
func New(provider llm.Provider, opts ...Option) *Gateway {
	g := &Gateway{
		provider: provider,
		timeout:  60 * time.Second,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Initialized reports whether a provider has been activated.
func (g *Gateway) Initialized() bool {
	return g != nil && g.provider != nil
}

// GenerateQuestions produces exactly QuestionCount questions for the
// document, spanning the five fixed cognitive categories. A response that
// parses but violates the shape fails with *MalformedResponseError.
func (g *Gateway) GenerateQuestions(ctx context.Context, documentText string) ([]Question, error) {
	if !g.Initialized() {
		return nil, ErrUninitialized
	}

	ctx = llm.WithPurpose(ctx, "question-gen")
	resp, err := g.generate(ctx, llm.Request{Prompt: buildQuestionPrompt(documentText)})
	if err != nil {
		return nil, err
	}

	cleaned := stripFences(resp.Text)
	if err := validateShape(questionSetSchema, cleaned); err != nil {
		return nil, err
	}

	var questions []Question
	if err := json.Unmarshal([]byte(cleaned), &questions); err != nil {
		return nil, &MalformedResponseError{Content: cleaned, Err: err}
	}
	return questions, nil
}

// EvaluateAnswers grades the submitted answers against the document.
// Questions with no matching answer are evaluated with the "no answer
// provided" sentinel; the join happens here, before prompt construction.
func (g *Gateway) EvaluateAnswers(ctx context.Context, documentText string, questions []Question, answers []UserAnswer) (*EvaluationResult, error) {
	if !g.Initialized() {
		return nil, ErrUninitialized
	}

	pairs := joinAnswers(questions, answers)

	ctx = llm.WithPurpose(ctx, "evaluation")
	resp, err := g.generate(ctx, llm.Request{Prompt: buildEvaluationPrompt(documentText, pairs)})
	if err != nil {
		return nil, err
	}

	cleaned := stripFences(resp.Text)
	if err := validateShape(evaluationSchema, cleaned); err != nil {
		return nil, err
	}

	var result EvaluationResult
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return nil, &MalformedResponseError{Content: cleaned, Err: err}
	}
	return &result, nil
}

// GenerateContent produces persona-styled text for the request. The
// persona's system prompt is rebuilt as the standing instruction on every
// call; no session state is carried across calls. The model's text is
// returned unmodified: this path is free text by design.
func (g *Gateway) GenerateContent(ctx context.Context, p persona.Persona, contentType, userPrompt string) (string, error) {
	if !g.Initialized() {
		return "", ErrUninitialized
	}

	ctx = llm.WithPurpose(ctx, "content-gen")
	resp, err := g.generate(ctx, llm.Request{
		System: p.SystemPrompt,
		Prompt: buildContentPrompt(contentType, userPrompt, p.OutputPreferences),
	})
	if err != nil {
		return "", err
	}

	return resp.Text, nil
}

// generate applies the per-call timeout and normalizes deadline expiry
// to ErrTimeout. Transport errors pass through unchanged.
func (g *Gateway) generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return nil, err
	}
	return resp, nil
}

// ValidateCredential issues the minimal probe request with the candidate
// credential. It never returns an error: the outcome is true, or a
// human-readable reason derived from the failure. Probes bypass retry and
// event logging so a bad key fails fast.
func ValidateCredential(ctx context.Context, cfg llm.Config) (bool, string) {
	provider, err := llm.NewBareProvider(ctx, cfg)
	if err != nil {
		return false, err.Error()
	}

	probeCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if _, err := provider.Generate(probeCtx, llm.Request{Prompt: probePrompt}); err != nil {
		return false, err.Error()
	}
	return true, ""
}
