// Package tutor holds the LLM-backed collaborators for the practice loop:
// free-response grading and gap/extension suggestions. Both are best-effort;
// the core degrades gracefully when they fail.
package tutor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/praxislearn/praxis/internal/concepts"
	"github.com/praxislearn/praxis/internal/llm"
	"github.com/praxislearn/praxis/internal/practice"
)

const gradeSystemPrompt = `You are a tutor grading a learner's free-response answer.

Rules:
- Judge understanding, not phrasing. A correct idea in rough words earns credit.
- Score continuously: 1.0 for a complete correct answer, partial credit for partially correct reasoning, 0.0 only when nothing is salvageable.
- Classify the error: CORRECT when right, MINOR for slips that don't reflect misunderstanding, MISCONCEPTION for a wrong model of this concept, PREREQUISITE_GAP when the mistake traces to a concept the learner should already know.
- Only use PREREQUISITE_GAP when you can name the specific missing concept; include the gap_analysis in that case.
- Keep feedback short, specific, and encouraging.`

// GraderConfig holds configuration for the LLM grader.
type GraderConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultGraderConfig returns sensible defaults. Grading wants low
// randomness.
func DefaultGraderConfig() GraderConfig {
	return GraderConfig{
		MaxTokens:   512,
		Temperature: 0.2,
	}
}

// LLMGrader grades free-response answers with an LLM provider. It implements
// practice.Grader.
type LLMGrader struct {
	provider llm.Provider
	cfg      GraderConfig
}

// NewGrader creates an LLM-backed grader.
func NewGrader(provider llm.Provider, cfg GraderConfig) *LLMGrader {
	return &LLMGrader{provider: provider, cfg: cfg}
}

// gradeOutput is the raw LLM response.
type gradeOutput struct {
	Correct     bool    `json:"correct"`
	Score       float64 `json:"score"`
	Feedback    string  `json:"feedback"`
	Explanation string  `json:"explanation"`
	ErrorType   string  `json:"error_type"`
	GapAnalysis *struct {
		MissingConceptName string `json:"missing_concept_name"`
		Severity           string `json:"severity"`
		Explanation        string `json:"explanation"`
	} `json:"gap_analysis"`
}

// Grade sends the answer for evaluation and returns the verdict.
func (g *LLMGrader) Grade(ctx context.Context, q *concepts.Question, conceptName, answer string) (*practice.GradeResult, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeGrading)

	var b strings.Builder
	fmt.Fprintf(&b, "Concept: %s\n", conceptName)
	fmt.Fprintf(&b, "Question: %s\n", q.Text)
	fmt.Fprintf(&b, "Reference answer / rubric: %s\n", q.Answer)
	if q.Explanation != "" {
		fmt.Fprintf(&b, "Model explanation: %s\n", q.Explanation)
	}
	fmt.Fprintf(&b, "\nLearner's answer:\n%s\n", answer)

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: gradeSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: b.String()},
		},
		Schema:      GradeSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM grading failed: %w", err)
	}

	var raw gradeOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse grading response: %w", err)
	}
	if raw.Score < 0 || raw.Score > 1 {
		return nil, fmt.Errorf("grading score %v out of range", raw.Score)
	}

	result := &practice.GradeResult{
		Correct:     raw.Correct,
		Score:       raw.Score,
		Feedback:    raw.Feedback,
		Explanation: raw.Explanation,
		ErrorType:   practice.ErrorType(raw.ErrorType),
	}
	switch result.ErrorType {
	case practice.ErrorCorrect, practice.ErrorMinor, practice.ErrorMisconception:
	case practice.ErrorPrerequisiteGap:
		// A gap verdict without the analysis is unusable downstream; demote
		// it rather than rejecting the whole verdict.
		if raw.GapAnalysis == nil {
			result.ErrorType = practice.ErrorMisconception
		} else {
			result.GapAnalysis = &practice.GapAnalysis{
				MissingConceptName: raw.GapAnalysis.MissingConceptName,
				Severity:           raw.GapAnalysis.Severity,
				Explanation:        raw.GapAnalysis.Explanation,
			}
		}
	default:
		return nil, fmt.Errorf("unknown error type %q in grading response", raw.ErrorType)
	}
	return result, nil
}
