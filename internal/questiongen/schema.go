package questiongen

import "github.com/praxislearn/praxis/internal/llm"

// BankSchema defines the JSON schema for LLM question-bank responses.
var BankSchema = &llm.Schema{
	Name:        "question-bank",
	Description: "A set of practice questions for one concept",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"type": map[string]any{
							"type":        "string",
							"enum":        []any{"mcq", "fill_blank", "flashcard", "free_response"},
							"description": "The question format",
						},
						"text": map[string]any{
							"type":        "string",
							"description": "The question prompt shown to the learner",
						},
						"answer": map[string]any{
							"type":        "string",
							"description": "The correct answer. For mcq: the text of the correct option.",
						},
						"distractors": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
							},
							"description": "Exactly 3 wrong options for mcq. Empty array for other types.",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Why the answer is correct, shown after the attempt",
						},
						"difficulty": map[string]any{
							"type":        "number",
							"minimum":     0,
							"maximum":     1,
							"description": "Difficulty from 0 (trivial) to 1 (expert)",
						},
						"sources": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
							},
							"description": "Verbatim excerpts from the provided source material that ground this question. Empty when no sources were given.",
						},
					},
					"required":             []any{"type", "text", "answer", "distractors", "explanation", "difficulty", "sources"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
