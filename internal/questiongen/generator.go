// Package questiongen produces validated question banks for concepts via an
// LLM provider. Malformed generator output is discarded, never stored.
package questiongen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/praxislearn/praxis/internal/concepts"
	"github.com/praxislearn/praxis/internal/llm"
)

// Generator produces a question bank for a concept.
type Generator interface {
	Generate(ctx context.Context, conceptID uuid.UUID, input Input) ([]concepts.Question, error)
}

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// BankSize is how many questions to request per concept.
	BankSize int

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// RetryTemperature is used for the single lower-randomness retry after a
	// generation that yielded no valid questions.
	RetryTemperature float64
}

// DefaultConfig returns the recommended defaults.
func DefaultConfig() Config {
	return Config{
		BankSize:         6,
		MaxTokens:        4096,
		Temperature:      0.7,
		RetryTemperature: 0.2,
	}
}

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
	log      *zap.Logger
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config, log *zap.Logger) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg, log: log}
}

// questionOutput is one raw question from the LLM response before validation.
type questionOutput struct {
	Type        string   `json:"type"`
	Text        string   `json:"text"`
	Answer      string   `json:"answer"`
	Distractors []string `json:"distractors"`
	Explanation string   `json:"explanation"`
	Difficulty  float64  `json:"difficulty"`
	Sources     []string `json:"sources"`
}

type bankOutput struct {
	Questions []questionOutput `json:"questions"`
}

// Generate requests a bank and keeps only the questions that pass
// validation. It returns an error only when the provider fails or nothing in
// the response survives; partial banks are fine.
func (g *LLMGenerator) Generate(ctx context.Context, conceptID uuid.UUID, input Input) ([]concepts.Question, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeQuestionGen)

	bank, err := g.generateOnce(ctx, conceptID, input, g.config.Temperature)
	if err == nil && len(bank) > 0 {
		return bank, nil
	}
	if err != nil {
		g.log.Warn("question generation failed, retrying at lower randomness",
			zap.String("concept", input.ConceptName),
			zap.Error(err))
	}

	// One retry at lower randomness; after that the caller gives up.
	bank, err = g.generateOnce(ctx, conceptID, input, g.config.RetryTemperature)
	if err != nil {
		return nil, fmt.Errorf("generate bank for %q: %w", input.ConceptName, err)
	}
	if len(bank) == 0 {
		return nil, fmt.Errorf("generate bank for %q: no valid questions in response", input.ConceptName)
	}
	return bank, nil
}

func (g *LLMGenerator) generateOnce(ctx context.Context, conceptID uuid.UUID, input Input, temperature float64) ([]concepts.Question, error) {
	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input, g.config)},
		},
		Schema:      BankSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw bankOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	var bank []concepts.Question
	for i, out := range raw.Questions {
		if reason := validate(&out); reason != "" {
			g.log.Warn("discarding malformed question",
				zap.String("concept", input.ConceptName),
				zap.Int("index", i),
				zap.String("reason", reason))
			continue
		}
		bank = append(bank, concepts.Question{
			ID:          uuid.New(),
			ConceptID:   conceptID,
			Type:        concepts.QuestionType(out.Type),
			Text:        out.Text,
			Answer:      out.Answer,
			Distractors: out.Distractors,
			Explanation: out.Explanation,
			Difficulty:  out.Difficulty,
			Sources:     out.Sources,
		})
	}
	return bank, nil
}

// validate checks one raw question for shape and range. It returns an empty
// string when the question is storable, otherwise the rejection reason.
func validate(out *questionOutput) string {
	switch concepts.QuestionType(out.Type) {
	case concepts.TypeMCQ:
		if len(out.Distractors) < 2 {
			return "mcq needs at least 2 distractors"
		}
		for _, d := range out.Distractors {
			if d == out.Answer {
				return "answer appears among distractors"
			}
		}
	case concepts.TypeFillBlank, concepts.TypeFlashcard, concepts.TypeFreeResponse:
	default:
		return fmt.Sprintf("unknown question type %q", out.Type)
	}

	if out.Text == "" {
		return "empty question text"
	}
	if out.Answer == "" {
		return "empty answer"
	}
	if out.Difficulty < 0 || out.Difficulty > 1 {
		return fmt.Sprintf("difficulty %v out of range", out.Difficulty)
	}
	return ""
}
