package session

import (
	"math"
	"sort"
	"time"

	"github.com/praxislearn/praxis/internal/concepts"
)

// Config holds the selection tuning knobs. The defaults are the observed
// values; they are configuration rather than constants so they can be
// recalibrated without touching the selection structure.
type Config struct {
	// MaxPerConcept caps how many questions one concept contributes.
	MaxPerConcept int
	// TypeCapFraction sets the session-wide same-type limit as a fraction of
	// the session size, rounded up.
	TypeCapFraction float64
	// LowProficiency is the threshold below which the per-concept same-type
	// limit relaxes from 2 to MaxPerConcept.
	LowProficiency float64
	// SameTypePerConcept is the per-concept same-type limit at normal
	// proficiency.
	SameTypePerConcept int
}

// DefaultConfig returns the observed tuning values.
func DefaultConfig() Config {
	return Config{
		MaxPerConcept:      3,
		TypeCapFraction:    0.4,
		LowProficiency:     0.3,
		SameTypePerConcept: 2,
	}
}

// sessionTypeCap computes the session-wide same-type limit for a target size.
func (cfg Config) sessionTypeCap(limit int) int {
	return int(math.Ceil(float64(limit) * cfg.TypeCapFraction))
}

// PriorityScore ranks a concept for selection. Concepts that other concepts
// depend on count double, and overdue concepts grow linearly with how late
// they are.
func PriorityScore(c *concepts.Concept, isPrerequisite bool, now time.Time) float64 {
	weight := 1.0
	if isPrerequisite {
		weight = 2.0
	}
	return weight * (1 + c.OverdueDays(now))
}

// typeEase orders question formats by cognitive load, 0 being the lightest.
func typeEase(t concepts.QuestionType) int {
	switch t {
	case concepts.TypeMCQ:
		return 0
	case concepts.TypeFlashcard:
		return 1
	case concepts.TypeFillBlank:
		return 2
	case concepts.TypeFreeResponse:
		return 3
	default:
		return 3
	}
}

// rankQuestions orders a concept's bank easiest-first for the learner's
// current proficiency. Both the type-ease term and the raw difficulty term
// are weighted by (1 - proficiency): a struggling learner sees a strong bias
// toward light formats and easy items, while a proficient one gets a nearly
// neutral ordering.
func rankQuestions(qs []concepts.Question, proficiency float64) []concepts.Question {
	w := 1 - proficiency
	if w < 0 {
		w = 0
	}

	ranked := append([]concepts.Question(nil), qs...)
	score := func(q *concepts.Question) float64 {
		ease := float64(typeEase(q.Type)) / 3.0
		return ease*w + q.Difficulty*w
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		si, sj := score(&ranked[i]), score(&ranked[j])
		if si != sj {
			return si < sj
		}
		if ei, ej := typeEase(ranked[i].Type), typeEase(ranked[j].Type); ei != ej {
			return ei < ej
		}
		return ranked[i].Difficulty < ranked[j].Difficulty
	})
	return ranked
}

// selectForConcept picks up to MaxPerConcept questions from a ranked bank,
// honoring the per-concept and session-wide same-type limits. sessionTypes is
// mutated to account for the picks. When the constraints reject every
// candidate, the unconstrained top of the ranking is used instead so a due
// concept is never starved out of its own session.
func (cfg Config) selectForConcept(ranked []concepts.Question, proficiency float64, sessionTypes map[concepts.QuestionType]int, sessionCap int) []concepts.Question {
	perTypeLimit := cfg.SameTypePerConcept
	if proficiency < cfg.LowProficiency {
		perTypeLimit = cfg.MaxPerConcept
	}

	var picked []concepts.Question
	localTypes := make(map[concepts.QuestionType]int)
	for _, q := range ranked {
		if len(picked) >= cfg.MaxPerConcept {
			break
		}
		if localTypes[q.Type] >= perTypeLimit {
			continue
		}
		if sessionTypes[q.Type] >= sessionCap {
			continue
		}
		picked = append(picked, q)
		localTypes[q.Type]++
		sessionTypes[q.Type]++
	}

	if len(picked) == 0 && len(ranked) > 0 {
		n := cfg.MaxPerConcept
		if n > len(ranked) {
			n = len(ranked)
		}
		picked = append(picked, ranked[:n]...)
		for _, q := range picked {
			sessionTypes[q.Type]++
		}
	}
	return picked
}
