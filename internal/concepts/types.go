package concepts

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Source identifies who introduced a concept or edge.
type Source string

const (
	SourceSystem     Source = "system"
	SourceUser       Source = "user"
	SourceSuggestion Source = "suggestion"
)

// Concept is a unit of knowledge owned by one user. It carries both the
// proficiency estimate and the spaced-repetition schedule, because the
// schedule tracks mastery of the concept, not of individual questions.
type Concept struct {
	ID               uuid.UUID
	UserID           string
	Name             string
	NormalizedName   string
	Description      string
	KeyTerms         []string
	Proficiency      float64
	Confidence       float64
	EaseFactor       float64
	IntervalDays     int
	RepetitionCount  int
	LastPracticed    *time.Time
	NextDue          *time.Time
	AttemptCount     int
	Deprecated       bool
	ManuallyAdjusted bool
	Source           Source
}

// IsDue reports whether the concept should be reviewed. A concept that has
// never been scheduled counts as due.
func (c *Concept) IsDue(now time.Time) bool {
	if c.NextDue == nil {
		return true
	}
	return !now.Before(*c.NextDue)
}

// OverdueDays returns how many days past due the concept is, 0 if not due.
func (c *Concept) OverdueDays(now time.Time) float64 {
	if c.NextDue == nil || now.Before(*c.NextDue) {
		return 0
	}
	return now.Sub(*c.NextDue).Hours() / 24.0
}

// EdgeType distinguishes hard prerequisites from merely helpful background.
type EdgeType string

const (
	EdgePrerequisite EdgeType = "prerequisite"
	EdgeHelpful      EdgeType = "helpful"
)

// Edge is a directed relation within one unit graph: From should be learned
// before To.
type Edge struct {
	ID      uuid.UUID
	GraphID uuid.UUID
	From    uuid.UUID
	To      uuid.UUID
	Type    EdgeType
}

// UnitGraph is a named grouping of concepts.
type UnitGraph struct {
	ID     uuid.UUID
	UserID string
	Name   string
}

// Membership ties a concept into a unit graph with its layout position and
// depth tier.
type Membership struct {
	ID        uuid.UUID
	GraphID   uuid.UUID
	ConceptID uuid.UUID
	PosX      float64
	PosY      float64
	DepthTier int
}

// QuestionType enumerates the supported question formats, ordered roughly by
// cognitive load (mcq easiest, free response hardest).
type QuestionType string

const (
	TypeMCQ          QuestionType = "mcq"
	TypeFillBlank    QuestionType = "fill_blank"
	TypeFlashcard    QuestionType = "flashcard"
	TypeFreeResponse QuestionType = "free_response"
)

// Question is one practice item in a concept's bank.
type Question struct {
	ID          uuid.UUID
	ConceptID   uuid.UUID
	Type        QuestionType
	Text        string
	Answer      string
	Distractors []string
	Explanation string
	Difficulty  float64
	Sources     []string
}

// Cited reports whether the question carries at least one source excerpt.
func (q *Question) Cited() bool {
	return len(q.Sources) > 0
}

// NormalizeName produces the dedup key for a concept name.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
