// Package session holds the transient flow state between user actions:
// the document-learning flow and the content-generation flow. Controllers
// sequence gateway calls, gate reentry while a call is outstanding, and
// stamp each call with a token so a superseded reply is discardable.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gintama1018/geminimind/internal/gateway"
)

// ErrBusy is returned when a new generation is triggered while a call is
// still outstanding. One call at a time per flow.
var ErrBusy = errors.New("a model call is already in progress")

// ErrStale is returned when a reply arrives for a call that has been
// superseded (the flow was reset or restarted). The reply is discarded
// without touching state.
var ErrStale = errors.New("stale model reply discarded")

// LearningState is the phase of the document-learning flow.
type LearningState string

const (
	StateUpload    LearningState = "upload"
	StateQuestions LearningState = "questions"
	StateFeedback  LearningState = "feedback"
)

// Learning drives the document → questions → feedback flow.
type Learning struct {
	gw *gateway.Gateway

	mu         sync.Mutex
	state      LearningState
	busy       bool
	token      uint64
	docName    string
	docText    string
	questions  []gateway.Question
	answers    map[int]string
	evaluation *gateway.EvaluationResult
}

// NewLearning creates a learning flow in the upload state.
func NewLearning(gw *gateway.Gateway) *Learning {
	return &Learning{
		gw:      gw,
		state:   StateUpload,
		answers: make(map[int]string),
	}
}

// State returns the current flow phase.
func (l *Learning) State() LearningState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Questions returns the generated question set.
func (l *Learning) Questions() []gateway.Question {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.questions
}

// Evaluation returns the evaluation result, nil before feedback.
func (l *Learning) Evaluation() *gateway.EvaluationResult {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.evaluation
}

// DocumentName returns the loaded document's display name.
func (l *Learning) DocumentName() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.docName
}

// LoadDocument stores the document text and generates the question set,
// moving the flow to the questions state on success. On failure the flow
// stays in upload and the caller presents the error.
func (l *Learning) LoadDocument(ctx context.Context, name, text string) error {
	tok, err := l.begin()
	if err != nil {
		return err
	}

	questions, err := l.gw.GenerateQuestions(ctx, text)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.busy = false

	if tok != l.token {
		return ErrStale
	}
	if err != nil {
		return err
	}

	l.docName = name
	l.docText = text
	l.questions = questions
	l.answers = make(map[int]string)
	l.evaluation = nil
	l.state = StateQuestions
	return nil
}

// Answer records the free-text answer for a question. Answers may be
// empty; unanswered questions are fine too, the gateway substitutes a
// sentinel at evaluation time.
func (l *Learning) Answer(questionID int, text string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state != StateQuestions {
		return fmt.Errorf("cannot answer in %s state", l.state)
	}
	for _, q := range l.questions {
		if q.ID == questionID {
			l.answers[questionID] = text
			return nil
		}
	}
	return fmt.Errorf("no question with id %d", questionID)
}

// Submit evaluates the recorded answers against the document and moves
// the flow to the feedback state.
func (l *Learning) Submit(ctx context.Context) error {
	tok, err := l.begin()
	if err != nil {
		return err
	}

	l.mu.Lock()
	if l.state != StateQuestions {
		state := l.state
		l.busy = false
		l.mu.Unlock()
		return fmt.Errorf("cannot submit in %s state", state)
	}
	docText := l.docText
	questions := l.questions
	answers := make([]gateway.UserAnswer, 0, len(l.answers))
	for id, text := range l.answers {
		answers = append(answers, gateway.UserAnswer{QuestionID: id, Answer: text})
	}
	l.mu.Unlock()

	result, err := l.gw.EvaluateAnswers(ctx, docText, questions, answers)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.busy = false

	if tok != l.token {
		return ErrStale
	}
	if err != nil {
		return err
	}

	l.evaluation = result
	l.state = StateFeedback
	return nil
}

// Reset returns the flow to the upload state and invalidates any
// outstanding call so its late reply is discarded.
func (l *Learning) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.token++
	l.busy = false
	l.state = StateUpload
	l.docName = ""
	l.docText = ""
	l.questions = nil
	l.answers = make(map[int]string)
	l.evaluation = nil
}

// begin claims the flow for one outbound call and returns its token.
func (l *Learning) begin() (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.busy {
		return 0, ErrBusy
	}
	l.busy = true
	l.token++
	return l.token, nil
}
