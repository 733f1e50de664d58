package gateway

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gintama1018/geminimind/internal/persona"
)

// probePrompt is the minimal low-cost request used to validate a credential.
const probePrompt = `Say "OK" if you can hear me.`

// buildQuestionPrompt fixes the five category/difficulty slots in a fixed
// order and demands a bare JSON array. The prompt carries the contract;
// the parser separately enforces it after the fact.
func buildQuestionPrompt(documentText string) string {
	var b strings.Builder

	b.WriteString(`You are an expert educator and assessment designer. Analyze the following document and create exactly 5 unique, complex questions that test deep understanding of the content.

DOCUMENT:
"""
`)
	b.WriteString(documentText)
	b.WriteString(`
"""

Create questions of varying types and difficulties:
1. One ANALYTICAL question (medium difficulty) - requires breaking down concepts
2. One INFERENTIAL question (hard difficulty) - requires drawing conclusions not explicitly stated
3. One EVALUATIVE question (hard difficulty) - requires judging or critiquing ideas
4. One APPLICATION question (expert difficulty) - requires applying concepts to new scenarios
5. One SYNTHESIS question (expert difficulty) - requires combining multiple concepts creatively

Return ONLY a valid JSON array with this exact structure (no markdown, no code blocks):
[
  {
    "id": 1,
    "text": "Question text here",
    "type": "analytical",
    "difficulty": "medium"
  },
  ...
]

Make questions thought-provoking and require genuine understanding, not just memorization.`)

	return b.String()
}

// answerSentinel substitutes for a missing or empty answer before prompt
// construction. The model never sees a gap it has to interpret.
const answerSentinel = "No answer provided"

// qaPair is one question joined with its submitted answer, embedded as
// JSON in the evaluation prompt.
type qaPair struct {
	Question   string `json:"question"`
	Type       string `json:"type"`
	Difficulty string `json:"difficulty"`
	UserAnswer string `json:"userAnswer"`
}

// joinAnswers pairs each question with the matching answer by question id,
// substituting the sentinel for missing or empty answers.
func joinAnswers(questions []Question, answers []UserAnswer) []qaPair {
	byID := make(map[int]string, len(answers))
	for _, a := range answers {
		byID[a.QuestionID] = a.Answer
	}

	pairs := make([]qaPair, len(questions))
	for i, q := range questions {
		answer := byID[q.ID]
		if answer == "" {
			answer = answerSentinel
		}
		pairs[i] = qaPair{
			Question:   q.Text,
			Type:       string(q.Type),
			Difficulty: string(q.Difficulty),
			UserAnswer: answer,
		}
	}
	return pairs
}

func buildEvaluationPrompt(documentText string, pairs []qaPair) string {
	pairsJSON, err := json.MarshalIndent(pairs, "", "  ")
	if err != nil {
		// qaPair contains only strings; this cannot fail in practice.
		pairsJSON = []byte("[]")
	}

	var b strings.Builder

	b.WriteString(`You are an expert educator evaluating student answers. Given the source document and the student's answers to questions about it, provide comprehensive feedback.

SOURCE DOCUMENT:
"""
`)
	b.WriteString(documentText)
	b.WriteString(`
"""

QUESTIONS AND ANSWERS:
`)
	b.Write(pairsJSON)
	b.WriteString(`

Evaluate each answer based on:
- Accuracy (based on the document)
- Depth of understanding
- Critical thinking demonstrated
- Use of evidence from the document

Return ONLY a valid JSON object with this exact structure (no markdown, no code blocks):
{
  "overallScore": 75,
  "summary": "Overall assessment of performance",
  "strengthAreas": ["Area 1", "Area 2"],
  "improvementAreas": ["Area 1", "Area 2"],
  "feedbacks": [
    {
      "questionId": 1,
      "score": 80,
      "isCorrect": true,
      "feedback": "Detailed feedback on this answer",
      "keyInsightsMissed": ["Insight 1"],
      "suggestedImprovement": "How to improve this answer"
    }
  ]
}

Be constructive, specific, and encouraging while being honest about areas for improvement.`)

	return b.String()
}

// buildContentPrompt embeds the content-type label, the user's request and
// the persona's output preferences. The persona's system prompt travels
// separately as the standing instruction.
func buildContentPrompt(contentType, userPrompt string, prefs persona.OutputPreferences) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate %s content based on the following request:\n\n", contentType)
	fmt.Fprintf(&b, "REQUEST: %s\n\n", userPrompt)
	b.WriteString("OUTPUT PREFERENCES:\n")
	fmt.Fprintf(&b, "- Length: %s\n", prefs.Length)
	fmt.Fprintf(&b, "- Format: %s\n", prefs.Format)
	fmt.Fprintf(&b, "- Style: %s\n\n", prefs.Style)
	b.WriteString("Provide high-quality content that matches these preferences and your persona's expertise. If generating code, include proper syntax and comments. If generating copy, make it compelling and actionable.")

	return b.String()
}
