package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

// gradeSchema mirrors the shape of the grading response the tutor asks for.
func gradeSchema() *Schema {
	return &Schema{
		Name:        "grade-fixture",
		Description: "Grade for one free-form answer",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"verdict":  map[string]any{"type": "string", "enum": []any{"correct", "partial", "incorrect"}},
				"score":    map[string]any{"type": "number", "minimum": 0, "maximum": 1},
				"feedback": map[string]any{"type": "string"},
			},
			"required": []any{"verdict", "score"},
		},
	}
}

func TestValidateResponse_ValidJSON(t *testing.T) {
	raw := json.RawMessage(`{"verdict":"correct","score":1,"feedback":"Right, the derivative of x^2 is 2x."}`)
	if err := validateResponse(gradeSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_ValidWithoutOptional(t *testing.T) {
	raw := json.RawMessage(`{"verdict":"partial","score":0.5}`)
	if err := validateResponse(gradeSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"verdict":"correct"}`)
	err := validateResponse(gradeSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"verdict":"correct","score":"one"}`)
	err := validateResponse(gradeSchema(), raw)
	if err == nil {
		t.Fatal("expected error for wrong type")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_InvalidEnum(t *testing.T) {
	raw := json.RawMessage(`{"verdict":"almost","score":0.9}`)
	err := validateResponse(gradeSchema(), raw)
	if err == nil {
		t.Fatal("expected error for invalid enum value")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json}`)
	err := validateResponse(gradeSchema(), raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_EmptyResponse(t *testing.T) {
	raw := json.RawMessage(``)
	if err := validateResponse(gradeSchema(), raw); err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponse_NestedObjects(t *testing.T) {
	// Cut-down question bank shape: an object per question inside an array.
	schema := &Schema{
		Name:        "bank-fixture",
		Description: "Generated question bank",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"concept": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"name": map[string]any{"type": "string"},
					},
					"required": []any{"name"},
				},
				"questions": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"prompt":     map[string]any{"type": "string"},
							"difficulty": map[string]any{"type": "integer"},
						},
						"required": []any{"prompt", "difficulty"},
					},
				},
			},
			"required": []any{"concept", "questions"},
		},
	}

	valid := json.RawMessage(`{"concept":{"name":"chain rule"},"questions":[{"prompt":"Differentiate sin(x^2).","difficulty":3}]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	invalid := json.RawMessage(`{"concept":{"name":"chain rule"},"questions":[{"prompt":"Differentiate sin(x^2).","difficulty":"hard"}]}`)
	if err := validateResponse(schema, invalid); err == nil {
		t.Fatal("expected error for wrong nested field type")
	}
}
