package llm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/gintama1018/geminimind/internal/store"
)

// recordingRepo captures appended events for inspection.
type recordingRepo struct {
	store.NopEventRepo
	events []store.LLMEventData
	err    error
}

func (r *recordingRepo) AppendLLMRequest(_ context.Context, data store.LLMEventData) error {
	r.events = append(r.events, data)
	return r.err
}

func TestLogging_RecordsSuccess(t *testing.T) {
	mock := NewMockProvider(MockResponse{Text: "answer"})
	repo := &recordingRepo{}
	p := WithLogging(mock, repo)

	ctx := WithPurpose(context.Background(), "evaluation")
	_, err := p.Generate(ctx, Request{System: "sys", Prompt: "grade this"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	e := repo.events[0]
	if !e.Success {
		t.Fatal("expected success event")
	}
	if e.Purpose != "evaluation" {
		t.Fatalf("expected purpose 'evaluation', got %q", e.Purpose)
	}
	if e.ResponseBody != "answer" {
		t.Fatalf("expected response body captured, got %q", e.ResponseBody)
	}
	if !strings.Contains(e.RequestBody, "[system]\nsys") || !strings.Contains(e.RequestBody, "[user]\ngrade this") {
		t.Fatalf("unexpected request body: %q", e.RequestBody)
	}
}

func TestLogging_RecordsFailure(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrUnavailable{Err: errors.New("down")}})
	repo := &recordingRepo{}
	p := WithLogging(mock, repo)

	_, err := p.Generate(context.Background(), Request{Prompt: "hi"})
	if err == nil {
		t.Fatal("expected error")
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	e := repo.events[0]
	if e.Success {
		t.Fatal("expected failure event")
	}
	if e.ErrorMessage == "" {
		t.Fatal("expected error message captured")
	}
	if e.Purpose != "unknown" {
		t.Fatalf("expected purpose 'unknown', got %q", e.Purpose)
	}
}

func TestLogging_NilRepoDiscardsEvents(t *testing.T) {
	mock := NewMockProvider(MockResponse{Text: "answer"})
	p := WithLogging(mock, nil)

	resp, err := p.Generate(context.Background(), Request{Prompt: "hi"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "answer" {
		t.Fatalf("unexpected text: %q", resp.Text)
	}
}

func TestLogging_RepoFailureDoesNotFailCall(t *testing.T) {
	mock := NewMockProvider(MockResponse{Text: "answer"})
	repo := &recordingRepo{err: errors.New("disk full")}
	p := WithLogging(mock, repo)

	resp, err := p.Generate(context.Background(), Request{Prompt: "hi"})
	if err != nil {
		t.Fatalf("logging failure must not fail the call: %v", err)
	}
	if resp.Text != "answer" {
		t.Fatalf("unexpected text: %q", resp.Text)
	}
}
