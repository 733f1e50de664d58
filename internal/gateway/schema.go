package gateway

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// The two structured responses are validated post-parse: field presence,
// enum membership, the 5-item question count, and 0-100 integer scores.
// Out-of-range scores are rejected, not clamped.

var questionSetSchema = responseSchema{
	name: "question-set",
	definition: map[string]any{
		"type":     "array",
		"minItems": QuestionCount,
		"maxItems": QuestionCount,
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id":   map[string]any{"type": "integer"},
				"text": map[string]any{"type": "string", "minLength": 1},
				"type": map[string]any{
					"type": "string",
					"enum": []any{"analytical", "inferential", "evaluative", "application", "synthesis"},
				},
				"difficulty": map[string]any{
					"type": "string",
					"enum": []any{"medium", "hard", "expert"},
				},
			},
			"required": []any{"id", "text", "type", "difficulty"},
		},
	},
}

var evaluationSchema = responseSchema{
	name: "evaluation-result",
	definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"overallScore": map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
			"summary":      map[string]any{"type": "string"},
			"strengthAreas": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"improvementAreas": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"feedbacks": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"questionId": map[string]any{"type": "integer"},
						"score":      map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
						"isCorrect":  map[string]any{"type": "boolean"},
						"feedback":   map[string]any{"type": "string"},
						"keyInsightsMissed": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
						"suggestedImprovement": map[string]any{"type": "string"},
					},
					"required": []any{"questionId", "score", "isCorrect", "feedback", "keyInsightsMissed", "suggestedImprovement"},
				},
			},
		},
		"required": []any{"overallScore", "summary", "strengthAreas", "improvementAreas", "feedbacks"},
	},
}

type responseSchema struct {
	name       string
	definition map[string]any
}

// schemaCache caches compiled schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// validateShape checks raw JSON text against the schema. Any violation
// (including invalid JSON) maps to *MalformedResponseError.
func validateShape(schema responseSchema, raw string) error {
	var parsed any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return &MalformedResponseError{
			Content: raw,
			Err:     fmt.Errorf("invalid JSON: %w", err),
		}
	}

	compiled, err := compiledSchema(schema)
	if err != nil {
		return &MalformedResponseError{
			Content: raw,
			Err:     fmt.Errorf("compile schema %q: %w", schema.name, err),
		}
	}

	if err := compiled.Validate(parsed); err != nil {
		return &MalformedResponseError{
			Content: raw,
			Err:     fmt.Errorf("schema validation failed: %w", err),
		}
	}

	return nil
}

func compiledSchema(schema responseSchema) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(schema.name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The jsonschema library expects a parsed JSON value, not raw bytes.
	defBytes, err := json.Marshal(schema.definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", schema.name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(schema.name, compiled)
	return compiled, nil
}
