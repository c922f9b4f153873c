// Package practice runs the answer-submission pipeline: deterministic
// evaluation for closed question types, delegated grading for free response,
// and the atomic scheduler/proficiency/session update.
package practice

import (
	"strings"

	"github.com/praxislearn/praxis/internal/concepts"
)

// Evaluate applies the deterministic evaluator for closed question types.
// It is authoritative for everything except free response, which returns
// ok=false so the caller delegates to the grader.
//
// Matching is case-insensitive on trimmed input. Fill-blank and flashcard
// accept a substring match in either direction so "the chain rule" passes
// against "chain rule"; mcq requires an exact match against the chosen
// option.
func Evaluate(q *concepts.Question, answer string) (correct, ok bool) {
	got := strings.ToLower(strings.TrimSpace(answer))
	want := strings.ToLower(strings.TrimSpace(q.Answer))

	switch q.Type {
	case concepts.TypeMCQ:
		return got == want, true
	case concepts.TypeFillBlank, concepts.TypeFlashcard:
		if got == "" || want == "" {
			return got == want, true
		}
		return got == want || strings.Contains(got, want) || strings.Contains(want, got), true
	default:
		return false, false
	}
}
