package session

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/praxislearn/praxis/internal/concepts"
)

func q(t concepts.QuestionType, difficulty float64) concepts.Question {
	return concepts.Question{ID: uuid.New(), Type: t, Difficulty: difficulty}
}

func TestPriorityScore(t *testing.T) {
	now := time.Now().UTC()
	overdue := now.Add(-48 * time.Hour)

	tests := []struct {
		name   string
		due    *time.Time
		prereq bool
		want   float64
	}{
		{"fresh non-prereq", nil, false, 1},
		{"fresh prereq doubles", nil, true, 2},
		{"two days overdue", &overdue, false, 3},
		{"two days overdue prereq", &overdue, true, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := concepts.Concept{NextDue: tt.due}
			got := PriorityScore(&c, tt.prereq, now)
			if got < tt.want-0.01 || got > tt.want+0.01 {
				t.Errorf("score = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRankQuestionsLowProficiencyBiasesEasy(t *testing.T) {
	qs := []concepts.Question{
		q(concepts.TypeFreeResponse, 0.9),
		q(concepts.TypeMCQ, 0.1),
		q(concepts.TypeFillBlank, 0.5),
	}

	ranked := rankQuestions(qs, 0.1)
	if ranked[0].Type != concepts.TypeMCQ {
		t.Errorf("first ranked type = %s, want mcq for a struggling learner", ranked[0].Type)
	}
	if ranked[len(ranked)-1].Type != concepts.TypeFreeResponse {
		t.Errorf("last ranked type = %s, want free_response", ranked[len(ranked)-1].Type)
	}
}

func TestRankQuestionsDoesNotMutateInput(t *testing.T) {
	qs := []concepts.Question{
		q(concepts.TypeFreeResponse, 0.9),
		q(concepts.TypeMCQ, 0.1),
	}
	first := qs[0].ID

	rankQuestions(qs, 0.0)
	if qs[0].ID != first {
		t.Error("input slice was reordered")
	}
}

func TestRankQuestionsHighProficiencyNearNeutral(t *testing.T) {
	qs := []concepts.Question{
		q(concepts.TypeFreeResponse, 0.9),
		q(concepts.TypeMCQ, 0.1),
	}

	// At full proficiency both weights vanish; the stable sort falls back to
	// type ease, so ordering stays deterministic rather than arbitrary.
	ranked := rankQuestions(qs, 1.0)
	if len(ranked) != 2 {
		t.Fatalf("ranked %d questions, want 2", len(ranked))
	}
	if ranked[0].Type != concepts.TypeMCQ {
		t.Errorf("tie-break by type ease failed, got %s first", ranked[0].Type)
	}
}

func TestSelectForConceptCapsAtThree(t *testing.T) {
	cfg := DefaultConfig()
	ranked := []concepts.Question{
		q(concepts.TypeMCQ, 0.1),
		q(concepts.TypeFlashcard, 0.2),
		q(concepts.TypeFillBlank, 0.3),
		q(concepts.TypeFreeResponse, 0.4),
	}

	picked := cfg.selectForConcept(ranked, 0.5, map[concepts.QuestionType]int{}, 10)
	if len(picked) != 3 {
		t.Errorf("picked %d, want 3", len(picked))
	}
}

func TestSelectForConceptSameTypeLimit(t *testing.T) {
	cfg := DefaultConfig()
	ranked := []concepts.Question{
		q(concepts.TypeMCQ, 0.1),
		q(concepts.TypeMCQ, 0.2),
		q(concepts.TypeMCQ, 0.3),
		q(concepts.TypeFlashcard, 0.4),
	}

	// Normal proficiency: at most 2 of one type per concept.
	picked := cfg.selectForConcept(ranked, 0.5, map[concepts.QuestionType]int{}, 10)
	mcq := 0
	for _, p := range picked {
		if p.Type == concepts.TypeMCQ {
			mcq++
		}
	}
	if mcq != 2 {
		t.Errorf("picked %d mcq, want 2", mcq)
	}
	if len(picked) != 3 {
		t.Errorf("picked %d total, want 3", len(picked))
	}
}

func TestSelectForConceptLowProficiencyRelaxesTypeLimit(t *testing.T) {
	cfg := DefaultConfig()
	ranked := []concepts.Question{
		q(concepts.TypeMCQ, 0.1),
		q(concepts.TypeMCQ, 0.2),
		q(concepts.TypeMCQ, 0.3),
	}

	picked := cfg.selectForConcept(ranked, 0.1, map[concepts.QuestionType]int{}, 10)
	if len(picked) != 3 {
		t.Errorf("picked %d, want all 3 mcq at low proficiency", len(picked))
	}
}

func TestSelectForConceptHonorsSessionCap(t *testing.T) {
	cfg := DefaultConfig()
	ranked := []concepts.Question{
		q(concepts.TypeMCQ, 0.1),
		q(concepts.TypeFlashcard, 0.2),
	}

	// mcq already saturated session-wide.
	sessionTypes := map[concepts.QuestionType]int{concepts.TypeMCQ: 4}
	picked := cfg.selectForConcept(ranked, 0.5, sessionTypes, 4)
	if len(picked) != 1 || picked[0].Type != concepts.TypeFlashcard {
		t.Errorf("picked %v, want just the flashcard", picked)
	}
}

func TestSelectForConceptFallbackWhenAllRejected(t *testing.T) {
	cfg := DefaultConfig()
	ranked := []concepts.Question{
		q(concepts.TypeMCQ, 0.1),
		q(concepts.TypeMCQ, 0.2),
	}

	// Session cap already reached for every candidate type: the fallback
	// serves the unconstrained top of the ranking anyway.
	sessionTypes := map[concepts.QuestionType]int{concepts.TypeMCQ: 4}
	picked := cfg.selectForConcept(ranked, 0.5, sessionTypes, 4)
	if len(picked) != 2 {
		t.Errorf("picked %d, want fallback top-2", len(picked))
	}
}

func TestSessionTypeCap(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		limit int
		want  int
	}{
		{10, 4},
		{5, 2},
		{1, 1},
		{7, 3}, // ceil(2.8)
	}
	for _, tt := range tests {
		if got := cfg.sessionTypeCap(tt.limit); got != tt.want {
			t.Errorf("sessionTypeCap(%d) = %d, want %d", tt.limit, got, tt.want)
		}
	}
}
