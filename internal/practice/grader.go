package practice

import (
	"context"

	"github.com/praxislearn/praxis/internal/concepts"
)

// ErrorType classifies what a wrong free-response answer reveals.
type ErrorType string

const (
	ErrorCorrect         ErrorType = "CORRECT"
	ErrorMinor           ErrorType = "MINOR"
	ErrorMisconception   ErrorType = "MISCONCEPTION"
	ErrorPrerequisiteGap ErrorType = "PREREQUISITE_GAP"
)

// GapAnalysis names the prerequisite a wrong answer suggests is missing.
type GapAnalysis struct {
	MissingConceptName string
	Severity           string
	Explanation        string
}

// GradeResult is the grader's verdict on one free-response answer.
type GradeResult struct {
	Correct     bool
	Score       float64
	Feedback    string
	Explanation string
	ErrorType   ErrorType
	// GapAnalysis is set only when ErrorType is PREREQUISITE_GAP.
	GapAnalysis *GapAnalysis
}

// Grader evaluates free-response answers. Implementations may call an
// external model; the pipeline tolerates failure by falling back to a
// neutral verdict.
type Grader interface {
	Grade(ctx context.Context, q *concepts.Question, conceptName, answer string) (*GradeResult, error)
}

// neutralVerdict is the fallback when the grader is unavailable. The attempt
// is still recorded and scheduling still updates; the pipeline never depends
// on grader availability.
func neutralVerdict() *GradeResult {
	return &GradeResult{
		Correct:  false,
		Score:    0.5,
		Feedback: "evaluation unavailable",
	}
}
