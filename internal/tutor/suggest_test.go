package tutor

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/praxislearn/praxis/internal/concepts"
	"github.com/praxislearn/praxis/internal/llm"
)

func suggestConcept() *concepts.Concept {
	return &concepts.Concept{
		Name:        "Derivatives",
		Description: "Rates of change",
		KeyTerms:    []string{"slope", "tangent"},
	}
}

func TestSuggestReturnsProposal(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"name": "Limits",
			"description": "The behavior of a function as input approaches a point.",
			"key_terms": ["approach", "epsilon", "continuity"],
			"rationale": "Derivatives are defined as a limit."
		}`),
	})
	s := NewSuggester(mock)

	sg, err := s.Suggest(context.Background(), suggestConcept(), []string{"Derivatives"}, SuggestPrerequisite)
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if sg.Name != "Limits" || len(sg.KeyTerms) != 3 {
		t.Errorf("suggestion = %+v", sg)
	}

	msg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(msg, "prerequisite") {
		t.Error("prompt does not carry the request kind")
	}
	if !strings.Contains(msg, "Derivatives") {
		t.Error("prompt does not list existing concepts")
	}
}

func TestSuggestRejectsExistingConcept(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"name": "  derivatives ",
			"description": "d", "key_terms": [], "rationale": "r"
		}`),
	})
	s := NewSuggester(mock)

	_, err := s.Suggest(context.Background(), suggestConcept(), []string{"Derivatives"}, SuggestExtension)
	if err == nil {
		t.Fatal("expected rejection of a suggestion colliding with an existing concept")
	}
}

func TestSuggestRejectsEmptyName(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"name": "", "description": "d", "key_terms": [], "rationale": "r"}`),
	})
	s := NewSuggester(mock)

	if _, err := s.Suggest(context.Background(), suggestConcept(), nil, SuggestExtension); err == nil {
		t.Fatal("expected error for empty suggestion name")
	}
}
