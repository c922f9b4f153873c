package questiongen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a tutor creating a practice question bank for one concept.

Rules:
- Generate the requested number of questions for the given concept, covering its key terms from different angles.
- Mix question types: mcq for recognition, fill_blank and flashcard for recall, free_response for explanation. Bias toward lighter types at difficulty tier 1 and heavier types at tier 3.
- The question text should be clear and self-contained.
- For mcq, provide exactly 3 distractors that reflect plausible confusions, not random values; the answer must not appear among the distractors.
- For fill_blank, the answer is the missing phrase; keep it short enough to type.
- Spread difficulty across the bank rather than clustering at one value.
- When source excerpts are provided, ground questions in them and copy the supporting excerpt into the question's sources list verbatim.
- The explanation should teach, not just restate the answer.`

// Input describes one bank-generation request.
type Input struct {
	ConceptName string
	Description string
	KeyTerms    []string
	// DifficultyTier is 1 (introductory) to 3 (advanced).
	DifficultyTier int
	// SourceExcerpts is optional reference material to ground questions in.
	SourceExcerpts []string
}

// buildUserMessage constructs the user message from the input and config.
func buildUserMessage(input Input, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Concept: %s\n", input.ConceptName)
	fmt.Fprintf(&b, "Description: %s\n", input.Description)
	fmt.Fprintf(&b, "Key terms: %s\n", strings.Join(input.KeyTerms, ", "))
	fmt.Fprintf(&b, "Difficulty tier: %d of 3\n", input.DifficultyTier)
	fmt.Fprintf(&b, "Number of questions: %d\n", cfg.BankSize)

	if len(input.SourceExcerpts) > 0 {
		b.WriteString("\nSource material:\n")
		for i, s := range input.SourceExcerpts {
			fmt.Fprintf(&b, "[%d] %s\n", i+1, s)
		}
	} else {
		b.WriteString("\nNo source material provided.\n")
	}

	return b.String()
}
