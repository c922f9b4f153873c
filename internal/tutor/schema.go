package tutor

import "github.com/praxislearn/praxis/internal/llm"

// GradeSchema defines the JSON schema for free-response grading verdicts.
var GradeSchema = &llm.Schema{
	Name:        "grade-verdict",
	Description: "A grading verdict for one free-response answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"correct": map[string]any{
				"type":        "boolean",
				"description": "Whether the answer demonstrates understanding",
			},
			"score": map[string]any{
				"type":        "number",
				"minimum":     0,
				"maximum":     1,
				"description": "Partial credit from 0 to 1",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "Short feedback addressed to the learner",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "What the ideal answer covers",
			},
			"error_type": map[string]any{
				"type":        "string",
				"enum":        []any{"CORRECT", "MINOR", "MISCONCEPTION", "PREREQUISITE_GAP"},
				"description": "Classification of the error, CORRECT when the answer is right",
			},
			"gap_analysis": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"missing_concept_name": map[string]any{
						"type":        "string",
						"description": "The prerequisite concept the learner appears to be missing",
					},
					"severity": map[string]any{
						"type": "string",
						"enum": []any{"narrow", "moderate", "broad"},
					},
					"explanation": map[string]any{
						"type":        "string",
						"description": "What in the answer points at this gap",
					},
				},
				"required":             []any{"missing_concept_name", "severity", "explanation"},
				"additionalProperties": false,
				"description":          "Present only when error_type is PREREQUISITE_GAP",
			},
		},
		"required":             []any{"correct", "score", "feedback", "explanation", "error_type"},
		"additionalProperties": false,
	},
}

// SuggestionSchema defines the JSON schema for gap/extension suggestions.
var SuggestionSchema = &llm.Schema{
	Name:        "concept-suggestion",
	Description: "A suggested prerequisite or follow-on concept",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name": map[string]any{
				"type":        "string",
				"description": "Name of the suggested concept",
			},
			"description": map[string]any{
				"type":        "string",
				"description": "One-paragraph description of the concept",
			},
			"key_terms": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "3-6 key terms for the concept",
			},
			"rationale": map[string]any{
				"type":        "string",
				"description": "Why this concept is the right neighbor, addressed to the learner",
			},
		},
		"required":             []any{"name", "description", "key_terms", "rationale"},
		"additionalProperties": false,
	},
}
