// Package gateway translates application intents into model prompts and
// model text back into structured data. It owns the prompt templates, the
// fence-strip-then-parse discipline, and the response schemas.
package gateway

// QuestionCount is the fixed size of a generated question set.
const QuestionCount = 5

// QuestionType is the cognitive category a question tests.
type QuestionType string

const (
	TypeAnalytical  QuestionType = "analytical"
	TypeInferential QuestionType = "inferential"
	TypeEvaluative  QuestionType = "evaluative"
	TypeApplication QuestionType = "application"
	TypeSynthesis   QuestionType = "synthesis"
)

// Difficulty is a question's difficulty level.
type Difficulty string

const (
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyExpert Difficulty = "expert"
)

// Question is one generated quiz question. Ids are 1-based and unique
// within a set; the record is immutable once created and lives for one
// learning session.
type Question struct {
	ID         int          `json:"id"`
	Text       string       `json:"text"`
	Type       QuestionType `json:"type"`
	Difficulty Difficulty   `json:"difficulty"`
}

// UserAnswer is the free-text answer submitted for one question.
// The answer may be empty.
type UserAnswer struct {
	QuestionID int    `json:"questionId"`
	Answer     string `json:"answer"`
}

// QuestionFeedback is the per-question result of an evaluation.
type QuestionFeedback struct {
	QuestionID           int      `json:"questionId"`
	Score                int      `json:"score"` // 0-100
	IsCorrect            bool     `json:"isCorrect"`
	Feedback             string   `json:"feedback"`
	KeyInsightsMissed    []string `json:"keyInsightsMissed"`
	SuggestedImprovement string   `json:"suggestedImprovement"`
}

// EvaluationResult is the full outcome of evaluating a submitted answer
// set. Feedbacks should contain one entry per question, but the model is
// not guaranteed to comply and the gateway does not enforce coverage.
type EvaluationResult struct {
	OverallScore     int                `json:"overallScore"` // 0-100
	Summary          string             `json:"summary"`
	StrengthAreas    []string           `json:"strengthAreas"`
	ImprovementAreas []string           `json:"improvementAreas"`
	Feedbacks        []QuestionFeedback `json:"feedbacks"`
}
