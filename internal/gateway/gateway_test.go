package gateway

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gintama1018/geminimind/internal/llm"
	"github.com/gintama1018/geminimind/internal/persona"
)

const validQuestionsJSON = `[
  {"id": 1, "text": "Q1", "type": "analytical", "difficulty": "medium"},
  {"id": 2, "text": "Q2", "type": "inferential", "difficulty": "hard"},
  {"id": 3, "text": "Q3", "type": "evaluative", "difficulty": "hard"},
  {"id": 4, "text": "Q4", "type": "application", "difficulty": "expert"},
  {"id": 5, "text": "Q5", "type": "synthesis", "difficulty": "expert"}
]`

const validEvaluationJSON = `{
  "overallScore": 72,
  "summary": "Solid grasp of the core ideas.",
  "strengthAreas": ["Analysis"],
  "improvementAreas": ["Evidence use"],
  "feedbacks": [
    {
      "questionId": 1,
      "score": 80,
      "isCorrect": true,
      "feedback": "Good answer.",
      "keyInsightsMissed": [],
      "suggestedImprovement": "Cite the document."
    }
  ]
}`

func testQuestions() []Question {
	return []Question{
		{ID: 1, Text: "Q1", Type: TypeAnalytical, Difficulty: DifficultyMedium},
		{ID: 2, Text: "Q2", Type: TypeInferential, Difficulty: DifficultyHard},
		{ID: 3, Text: "Q3", Type: TypeEvaluative, Difficulty: DifficultyHard},
		{ID: 4, Text: "Q4", Type: TypeApplication, Difficulty: DifficultyExpert},
		{ID: 5, Text: "Q5", Type: TypeSynthesis, Difficulty: DifficultyExpert},
	}
}

func TestGenerateQuestions(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: validQuestionsJSON})
	g := New(mock)

	questions, err := g.GenerateQuestions(context.Background(), "doc text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != QuestionCount {
		t.Fatalf("expected %d questions, got %d", QuestionCount, len(questions))
	}
	if questions[0].Type != TypeAnalytical {
		t.Fatalf("expected analytical, got %s", questions[0].Type)
	}
	if questions[4].Difficulty != DifficultyExpert {
		t.Fatalf("expected expert, got %s", questions[4].Difficulty)
	}

	prompt := mock.LastCall().Prompt
	if !strings.Contains(prompt, "doc text") {
		t.Fatal("prompt should embed the document text")
	}
	if !strings.Contains(prompt, "exactly 5") {
		t.Fatal("prompt should demand exactly 5 questions")
	}
}

func TestGenerateQuestions_StripsFences(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: "```json\n" + validQuestionsJSON + "\n```"},
	)
	g := New(mock)

	questions, err := g.GenerateQuestions(context.Background(), "doc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != QuestionCount {
		t.Fatalf("expected %d questions, got %d", QuestionCount, len(questions))
	}
}

func TestGenerateQuestions_MalformedResponses(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"not json", "Sure! Here are your questions:"},
		{"object instead of array", `{"questions": []}`},
		{"wrong count", `[{"id":1,"text":"Q1","type":"analytical","difficulty":"medium"}]`},
		{"unknown type", strings.Replace(validQuestionsJSON, "analytical", "rhetorical", 1)},
		{"unknown difficulty", strings.Replace(validQuestionsJSON, "medium", "trivial", 1)},
		{"empty text", strings.Replace(validQuestionsJSON, `"Q1"`, `""`, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{Text: tt.text})
			g := New(mock)

			_, err := g.GenerateQuestions(context.Background(), "doc")
			var malformed *MalformedResponseError
			if !errors.As(err, &malformed) {
				t.Fatalf("expected MalformedResponseError, got: %v", err)
			}
			if malformed.Content == "" {
				t.Fatal("expected offending content to be preserved")
			}
		})
	}
}

func TestGenerateQuestions_Uninitialized(t *testing.T) {
	g := New(nil)
	_, err := g.GenerateQuestions(context.Background(), "doc")
	if !errors.Is(err, ErrUninitialized) {
		t.Fatalf("expected ErrUninitialized, got: %v", err)
	}
}

func TestGenerateQuestions_TransportErrorPassesThrough(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrUnavailable{Err: errors.New("down")}},
	)
	g := New(mock)

	_, err := g.GenerateQuestions(context.Background(), "doc")
	var unavail *llm.ErrUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrUnavailable, got: %v", err)
	}
}

func TestEvaluateAnswers(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: validEvaluationJSON})
	g := New(mock)

	answers := []UserAnswer{
		{QuestionID: 1, Answer: "my answer to one"},
		{QuestionID: 3, Answer: "my answer to three"},
	}
	result, err := g.EvaluateAnswers(context.Background(), "doc", testQuestions(), answers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.OverallScore != 72 {
		t.Fatalf("expected score 72, got %d", result.OverallScore)
	}
	if len(result.Feedbacks) != 1 {
		t.Fatalf("expected 1 feedback, got %d", len(result.Feedbacks))
	}

	prompt := mock.LastCall().Prompt
	if !strings.Contains(prompt, "my answer to one") {
		t.Fatal("prompt should embed submitted answers")
	}
	// Questions 2, 4 and 5 have no answers: the sentinel must stand in.
	if strings.Count(prompt, answerSentinel) != 3 {
		t.Fatalf("expected 3 sentinel answers in prompt, got %d", strings.Count(prompt, answerSentinel))
	}
}

func TestEvaluateAnswers_EmptyAnswerUsesSentinel(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: validEvaluationJSON})
	g := New(mock)

	answers := []UserAnswer{{QuestionID: 1, Answer: "   "}} // Whitespace is still an answer.
	_, err := g.EvaluateAnswers(context.Background(), "doc", testQuestions()[:1], answers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Count(mock.LastCall().Prompt, answerSentinel) != 0 {
		t.Fatal("non-empty answer must not be replaced by the sentinel")
	}

	mock.AddResponse(llm.MockResponse{Text: validEvaluationJSON})
	_, err = g.EvaluateAnswers(context.Background(), "doc", testQuestions()[:1], nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Count(mock.LastCall().Prompt, answerSentinel) != 1 {
		t.Fatal("missing answer must be replaced by the sentinel")
	}
}

func TestEvaluateAnswers_RejectsOutOfRangeScore(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"overall above 100", strings.Replace(validEvaluationJSON, `"overallScore": 72`, `"overallScore": 150`, 1)},
		{"per-question negative", strings.Replace(validEvaluationJSON, `"score": 80`, `"score": -5`, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{Text: tt.text})
			g := New(mock)

			_, err := g.EvaluateAnswers(context.Background(), "doc", testQuestions(), nil)
			var malformed *MalformedResponseError
			if !errors.As(err, &malformed) {
				t.Fatalf("expected MalformedResponseError, got: %v", err)
			}
		})
	}
}

func TestGenerateContent(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "generated output"})
	g := New(mock)

	p := persona.Defaults()[0]
	out, err := g.GenerateContent(context.Background(), p, "code", "write a binary search")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "generated output" {
		t.Fatalf("expected raw model text, got %q", out)
	}

	call := mock.LastCall()
	if call.System != p.SystemPrompt {
		t.Fatal("persona system prompt should travel as the standing instruction")
	}
	if !strings.Contains(call.Prompt, "write a binary search") {
		t.Fatal("prompt should embed the user request")
	}
	if !strings.Contains(call.Prompt, string(p.OutputPreferences.Length)) {
		t.Fatal("prompt should embed the output preferences")
	}
}

func TestGenerateContent_NoJSONParsing(t *testing.T) {
	// Free text that looks nothing like JSON must pass through untouched.
	mock := llm.NewMockProvider(llm.MockResponse{Text: "```python\nprint('hi')\n```"})
	g := New(mock)

	out, err := g.GenerateContent(context.Background(), persona.Defaults()[0], "code", "hi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "```python") {
		t.Fatal("content output must not be fence-stripped")
	}
}

// blockingProvider hangs until its context expires.
type blockingProvider struct{}

func (blockingProvider) Generate(ctx context.Context, _ llm.Request) (*llm.Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (blockingProvider) ModelID() string { return "blocking" }

func TestGateway_Timeout(t *testing.T) {
	g := New(blockingProvider{}, WithTimeout(5*time.Millisecond))

	_, err := g.GenerateQuestions(context.Background(), "doc")
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("expected ErrTimeout, got: %v", err)
	}
}

func TestValidateCredential_ProbeFailure(t *testing.T) {
	// The mock provider starts with an empty queue, so the probe fails.
	ok, reason := ValidateCredential(context.Background(), llm.Config{Provider: "mock"})
	if ok {
		t.Fatal("expected probe failure")
	}
	if reason == "" {
		t.Fatal("expected a human-readable reason")
	}
}

func TestValidateCredential_UnknownProvider(t *testing.T) {
	ok, reason := ValidateCredential(context.Background(), llm.Config{Provider: "nope"})
	if ok {
		t.Fatal("expected failure for unknown provider")
	}
	if reason == "" {
		t.Fatal("expected a reason")
	}
}
