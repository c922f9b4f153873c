package questiongen

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/praxislearn/praxis/internal/llm"
)

func bankJSON(t *testing.T, qs []questionOutput) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(bankOutput{Questions: qs})
	if err != nil {
		t.Fatalf("marshal bank: %v", err)
	}
	return raw
}

func validQuestion() questionOutput {
	return questionOutput{
		Type:        "mcq",
		Text:        "What is the derivative of x^2?",
		Answer:      "2x",
		Distractors: []string{"x", "x^2", "2"},
		Explanation: "Apply the power rule.",
		Difficulty:  0.3,
	}
}

func testInput() Input {
	return Input{
		ConceptName:    "Derivatives",
		Description:    "Rates of change",
		KeyTerms:       []string{"power rule"},
		DifficultyTier: 1,
	}
}

func TestGenerateValidBank(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: bankJSON(t, []questionOutput{validQuestion(), {
			Type:       "flashcard",
			Text:       "State the power rule.",
			Answer:     "d/dx x^n = n x^(n-1)",
			Difficulty: 0.2,
		}}),
	})
	g := New(mock, DefaultConfig(), zap.NewNop())
	conceptID := uuid.New()

	bank, err := g.Generate(context.Background(), conceptID, testInput())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(bank) != 2 {
		t.Fatalf("bank has %d questions, want 2", len(bank))
	}
	for _, q := range bank {
		if q.ConceptID != conceptID {
			t.Errorf("question bound to %s, want %s", q.ConceptID, conceptID)
		}
		if q.ID == uuid.Nil {
			t.Error("question id not assigned")
		}
	}
	if mock.CallCount() != 1 {
		t.Errorf("provider called %d times, want 1", mock.CallCount())
	}
}

func TestGenerateDiscardsMalformed(t *testing.T) {
	noText := validQuestion()
	noText.Text = ""
	badRange := validQuestion()
	badRange.Difficulty = 1.5
	fewDistractors := validQuestion()
	fewDistractors.Distractors = []string{"x"}
	answerLeak := validQuestion()
	answerLeak.Distractors = []string{"2x", "x", "x^2"}
	badType := validQuestion()
	badType.Type = "essay"

	mock := llm.NewMockProvider(llm.MockResponse{
		Content: bankJSON(t, []questionOutput{noText, badRange, fewDistractors, answerLeak, badType, validQuestion()}),
	})
	g := New(mock, DefaultConfig(), zap.NewNop())

	bank, err := g.Generate(context.Background(), uuid.New(), testInput())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(bank) != 1 {
		t.Errorf("bank has %d questions, want just the valid one", len(bank))
	}
}

func TestGenerateRetriesAtLowerRandomness(t *testing.T) {
	// First response is unparseable; the retry succeeds.
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`not json`)},
		llm.MockResponse{Content: bankJSON(t, []questionOutput{validQuestion()})},
	)
	cfg := DefaultConfig()
	g := New(mock, cfg, zap.NewNop())

	bank, err := g.Generate(context.Background(), uuid.New(), testInput())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(bank) != 1 {
		t.Errorf("bank has %d questions, want 1", len(bank))
	}
	if mock.CallCount() != 2 {
		t.Fatalf("provider called %d times, want 2", mock.CallCount())
	}
	if mock.Calls[0].Temperature != cfg.Temperature {
		t.Errorf("first call temperature = %v, want %v", mock.Calls[0].Temperature, cfg.Temperature)
	}
	if mock.Calls[1].Temperature != cfg.RetryTemperature {
		t.Errorf("retry temperature = %v, want %v", mock.Calls[1].Temperature, cfg.RetryTemperature)
	}
}

func TestGenerateGivesUpAfterRetry(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`not json`)},
		llm.MockResponse{Content: json.RawMessage(`still not json`)},
	)
	g := New(mock, DefaultConfig(), zap.NewNop())

	if _, err := g.Generate(context.Background(), uuid.New(), testInput()); err == nil {
		t.Fatal("expected error after failed retry")
	}
	if mock.CallCount() != 2 {
		t.Errorf("provider called %d times, want 2", mock.CallCount())
	}
}

func TestGeneratePromptCarriesConceptContext(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: bankJSON(t, []questionOutput{validQuestion()}),
	})
	g := New(mock, DefaultConfig(), zap.NewNop())
	input := testInput()
	input.SourceExcerpts = []string{"The derivative measures instantaneous change."}

	if _, err := g.Generate(context.Background(), uuid.New(), input); err != nil {
		t.Fatalf("generate: %v", err)
	}

	msg := mock.Calls[0].Messages[0].Content
	for _, want := range []string{"Derivatives", "power rule", "instantaneous change"} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if mock.Calls[0].Schema != BankSchema {
		t.Error("request does not carry the bank schema")
	}
}

var _ Generator = (*LLMGenerator)(nil)
