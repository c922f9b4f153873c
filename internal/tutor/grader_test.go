package tutor

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/praxislearn/praxis/internal/concepts"
	"github.com/praxislearn/praxis/internal/llm"
	"github.com/praxislearn/praxis/internal/practice"
)

func gradeQuestion() *concepts.Question {
	return &concepts.Question{
		Type:        concepts.TypeFreeResponse,
		Text:        "Why does the chain rule apply here?",
		Answer:      "Because the function is a composition.",
		Explanation: "The outer and inner functions must be differentiated separately.",
	}
}

func TestGradeCorrectAnswer(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"correct": true, "score": 0.9,
			"feedback": "Good reasoning.",
			"explanation": "The composition structure drives the rule.",
			"error_type": "CORRECT"
		}`),
	})
	g := NewGrader(mock, DefaultGraderConfig())

	res, err := g.Grade(context.Background(), gradeQuestion(), "Derivatives", "it is a composition")
	if err != nil {
		t.Fatalf("grade: %v", err)
	}
	if !res.Correct || res.Score != 0.9 {
		t.Errorf("verdict = %v/%v, want correct 0.9", res.Correct, res.Score)
	}
	if res.ErrorType != practice.ErrorCorrect {
		t.Errorf("error type = %s, want CORRECT", res.ErrorType)
	}
	if res.GapAnalysis != nil {
		t.Error("unexpected gap analysis on a correct answer")
	}
}

func TestGradePrerequisiteGapCarriesAnalysis(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"correct": false, "score": 0.2,
			"feedback": "You treated the limit as a value.",
			"explanation": "A limit describes behavior, not a point.",
			"error_type": "PREREQUISITE_GAP",
			"gap_analysis": {
				"missing_concept_name": "limits",
				"severity": "moderate",
				"explanation": "The answer substitutes the limit point directly."
			}
		}`),
	})
	g := NewGrader(mock, DefaultGraderConfig())

	res, err := g.Grade(context.Background(), gradeQuestion(), "Derivatives", "just plug in the value")
	if err != nil {
		t.Fatalf("grade: %v", err)
	}
	if res.ErrorType != practice.ErrorPrerequisiteGap {
		t.Fatalf("error type = %s, want PREREQUISITE_GAP", res.ErrorType)
	}
	if res.GapAnalysis == nil || res.GapAnalysis.MissingConceptName != "limits" {
		t.Errorf("gap analysis = %+v, want limits", res.GapAnalysis)
	}
}

func TestGradeGapWithoutAnalysisDemoted(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"correct": false, "score": 0.1,
			"feedback": "f", "explanation": "e",
			"error_type": "PREREQUISITE_GAP"
		}`),
	})
	g := NewGrader(mock, DefaultGraderConfig())

	res, err := g.Grade(context.Background(), gradeQuestion(), "Derivatives", "wrong")
	if err != nil {
		t.Fatalf("grade: %v", err)
	}
	if res.ErrorType != practice.ErrorMisconception {
		t.Errorf("error type = %s, want demotion to MISCONCEPTION", res.ErrorType)
	}
}

func TestGradeRejectsOutOfRangeScore(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"correct": true, "score": 1.7,
			"feedback": "f", "explanation": "e",
			"error_type": "CORRECT"
		}`),
	})
	g := NewGrader(mock, DefaultGraderConfig())

	if _, err := g.Grade(context.Background(), gradeQuestion(), "Derivatives", "x"); err == nil {
		t.Fatal("expected error for out-of-range score")
	}
}

func TestGradeRejectsUnknownErrorType(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"correct": false, "score": 0.3,
			"feedback": "f", "explanation": "e",
			"error_type": "CATASTROPHIC"
		}`),
	})
	g := NewGrader(mock, DefaultGraderConfig())

	if _, err := g.Grade(context.Background(), gradeQuestion(), "Derivatives", "x"); err == nil {
		t.Fatal("expected error for unknown error type")
	}
}

func TestGradeProviderFailurePropagates(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue → provider unavailable
	g := NewGrader(mock, DefaultGraderConfig())

	if _, err := g.Grade(context.Background(), gradeQuestion(), "Derivatives", "x"); err == nil {
		t.Fatal("expected provider error to propagate")
	}
}

var _ practice.Grader = (*LLMGrader)(nil)
