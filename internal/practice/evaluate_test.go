package practice

import (
	"testing"

	"github.com/praxislearn/praxis/internal/concepts"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name        string
		qtype       concepts.QuestionType
		want        string
		answer      string
		wantCorrect bool
		wantOK      bool
	}{
		{"mcq exact", concepts.TypeMCQ, "4", "4", true, true},
		{"mcq case insensitive", concepts.TypeMCQ, "Paris", "paris", true, true},
		{"mcq trims whitespace", concepts.TypeMCQ, "4", "  4  ", true, true},
		{"mcq wrong", concepts.TypeMCQ, "4", "5", false, true},
		{"mcq no substring credit", concepts.TypeMCQ, "4", "41", false, true},

		{"fill blank exact", concepts.TypeFillBlank, "chain rule", "chain rule", true, true},
		{"fill blank answer contains expected", concepts.TypeFillBlank, "chain rule", "the chain rule", true, true},
		{"fill blank expected contains answer", concepts.TypeFillBlank, "the chain rule", "chain rule", true, true},
		{"fill blank case insensitive", concepts.TypeFillBlank, "Chain Rule", "chain rule", true, true},
		{"fill blank wrong", concepts.TypeFillBlank, "chain rule", "product rule", false, true},
		{"fill blank empty answer", concepts.TypeFillBlank, "chain rule", "", false, true},

		{"flashcard substring", concepts.TypeFlashcard, "mitochondria", "the mitochondria of the cell", true, true},
		{"flashcard wrong", concepts.TypeFlashcard, "mitochondria", "ribosome", false, true},

		{"free response not handled", concepts.TypeFreeResponse, "anything", "anything", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := concepts.Question{Type: tt.qtype, Answer: tt.want}
			correct, ok := Evaluate(&q, tt.answer)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if correct != tt.wantCorrect {
				t.Errorf("correct = %v, want %v", correct, tt.wantCorrect)
			}
		})
	}
}
