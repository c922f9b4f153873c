package tutor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/praxislearn/praxis/internal/concepts"
	"github.com/praxislearn/praxis/internal/llm"
)

const suggestSystemPrompt = `You are a curriculum designer extending a learner's concept map.

Rules:
- For a "prerequisite" request, name the single concept the learner most needs before the given one.
- For an "extension" request, name the single most natural next concept after the given one.
- Never suggest a concept already in the learner's map; the existing names are listed.
- Prefer widely taught, well-bounded concepts over umbrella topics.
- The rationale should tell the learner in one or two sentences why this neighbor matters.`

// SuggestKind selects which direction the suggestion extends the map.
type SuggestKind string

const (
	SuggestPrerequisite SuggestKind = "prerequisite"
	SuggestExtension    SuggestKind = "extension"
)

// Suggestion is a proposed neighbor concept. The core owns acceptance,
// insertion, and re-layout; this is advisory only.
type Suggestion struct {
	Name        string
	Description string
	KeyTerms    []string
	Rationale   string
}

// Suggester proposes prerequisite or follow-on concepts via an LLM provider.
type Suggester struct {
	provider    llm.Provider
	maxTokens   int
	temperature float64
}

// NewSuggester creates a Suggester.
func NewSuggester(provider llm.Provider) *Suggester {
	return &Suggester{provider: provider, maxTokens: 512, temperature: 0.5}
}

type suggestOutput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	KeyTerms    []string `json:"key_terms"`
	Rationale   string   `json:"rationale"`
}

// Suggest proposes one neighbor for the concept. existingNames is the
// learner's current concept-name set; a suggestion colliding with it is
// rejected here rather than surfaced.
func (s *Suggester) Suggest(ctx context.Context, c *concepts.Concept, existingNames []string, kind SuggestKind) (*Suggestion, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeSuggestion)

	var b strings.Builder
	fmt.Fprintf(&b, "Request: %s\n", kind)
	fmt.Fprintf(&b, "Concept: %s\n", c.Name)
	fmt.Fprintf(&b, "Description: %s\n", c.Description)
	fmt.Fprintf(&b, "Key terms: %s\n", strings.Join(c.KeyTerms, ", "))
	fmt.Fprintf(&b, "\nConcepts already in the map:\n%s\n", strings.Join(existingNames, "\n"))

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: suggestSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: b.String()},
		},
		Schema:      SuggestionSchema,
		MaxTokens:   s.maxTokens,
		Temperature: s.temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM suggestion failed: %w", err)
	}

	var raw suggestOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse suggestion response: %w", err)
	}
	if raw.Name == "" {
		return nil, fmt.Errorf("suggestion response has empty name")
	}

	normalized := concepts.NormalizeName(raw.Name)
	for _, existing := range existingNames {
		if concepts.NormalizeName(existing) == normalized {
			return nil, fmt.Errorf("suggested concept %q already exists", raw.Name)
		}
	}

	return &Suggestion{
		Name:        raw.Name,
		Description: raw.Description,
		KeyTerms:    raw.KeyTerms,
		Rationale:   raw.Rationale,
	}, nil
}
