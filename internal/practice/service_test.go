package practice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/praxislearn/praxis/internal/concepts"
	"github.com/praxislearn/praxis/internal/store"
)

type stubGrader struct {
	verdict *GradeResult
	err     error
	calls   int
}

func (g *stubGrader) Grade(ctx context.Context, q *concepts.Question, conceptName, answer string) (*GradeResult, error) {
	g.calls++
	return g.verdict, g.err
}

type serviceFixture struct {
	store     *store.Store
	grader    *stubGrader
	service   *Service
	concept   *concepts.Concept
	sessionID uuid.UUID
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	ctx := context.Background()

	con, err := s.Repos().Concepts.Create(ctx, &concepts.Concept{
		UserID:         "u1",
		Name:           "Derivatives",
		NormalizedName: "derivatives",
		Proficiency:    0.5,
		Confidence:     0.2,
		EaseFactor:     2.5,
		IntervalDays:   1,
	})
	if err != nil {
		t.Fatalf("create concept: %v", err)
	}
	sess, err := s.Repos().Sessions.Create(ctx, &store.SessionRecord{UserID: "u1"})
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	g := &stubGrader{}
	return &serviceFixture{
		store:     s,
		grader:    g,
		service:   NewService(s, g, zap.NewNop()),
		concept:   con,
		sessionID: sess.ID,
	}
}

func (fx *serviceFixture) addQuestion(t *testing.T, qt concepts.QuestionType, answer string, difficulty float64) *concepts.Question {
	t.Helper()
	qs, err := fx.store.Repos().Questions.CreateBatch(context.Background(), []concepts.Question{{
		ConceptID:  fx.concept.ID,
		Type:       qt,
		Text:       "q",
		Answer:     answer,
		Difficulty: difficulty,
	}})
	if err != nil {
		t.Fatalf("create question: %v", err)
	}
	return &qs[0]
}

func TestSubmitCorrectMCQ(t *testing.T) {
	fx := newServiceFixture(t)
	q := fx.addQuestion(t, concepts.TypeMCQ, "4", 0.5)
	now := time.Now().UTC()

	res, err := fx.service.SubmitAttempt(context.Background(), SubmitRequest{
		AttemptID:   uuid.New(),
		UserID:      "u1",
		SessionID:   fx.sessionID,
		QuestionID:  q.ID,
		Answer:      "4",
		TimeTakenMs: 5_000,
		Now:         now,
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !res.Correct || res.Score != 1 {
		t.Errorf("verdict = %v/%v, want correct with score 1", res.Correct, res.Score)
	}
	if res.Concept.Proficiency <= 0.5 {
		t.Errorf("proficiency %v did not rise after a correct answer", res.Concept.Proficiency)
	}
	// Fast correct answer: quality 5, first pass keeps interval 1 and bumps
	// the ease factor.
	if res.Concept.RepetitionCount != 1 || res.Concept.IntervalDays != 1 {
		t.Errorf("schedule = reps %d interval %d, want 1/1", res.Concept.RepetitionCount, res.Concept.IntervalDays)
	}
	if res.Concept.EaseFactor <= 2.5 {
		t.Errorf("ease factor %v did not rise on quality 5", res.Concept.EaseFactor)
	}
	if res.Concept.NextDue == nil || res.Concept.LastPracticed == nil {
		t.Fatal("schedule timestamps not set")
	}
	if fx.grader.calls != 0 {
		t.Error("grader invoked for a closed question type")
	}

	sess, err := fx.store.Repos().Sessions.Get(context.Background(), fx.sessionID)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if sess.QuestionCount != 1 || sess.CorrectCount != 1 {
		t.Errorf("session counters = %d/%d, want 1/1", sess.QuestionCount, sess.CorrectCount)
	}
}

func TestSubmitWrongAnswerResetsSchedule(t *testing.T) {
	fx := newServiceFixture(t)
	q := fx.addQuestion(t, concepts.TypeMCQ, "4", 0.5)

	// Seed a progressed schedule first.
	ctx := context.Background()
	fx.concept.RepetitionCount = 3
	fx.concept.IntervalDays = 8
	if err := fx.store.Repos().Concepts.Update(ctx, fx.concept); err != nil {
		t.Fatalf("seed schedule: %v", err)
	}

	res, err := fx.service.SubmitAttempt(ctx, SubmitRequest{
		AttemptID:  uuid.New(),
		UserID:     "u1",
		SessionID:  fx.sessionID,
		QuestionID: q.ID,
		Answer:     "5",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.Correct {
		t.Error("wrong answer graded correct")
	}
	if res.Concept.RepetitionCount != 0 || res.Concept.IntervalDays != 1 {
		t.Errorf("schedule = reps %d interval %d, want reset to 0/1", res.Concept.RepetitionCount, res.Concept.IntervalDays)
	}
	if res.Concept.Proficiency >= 0.5 {
		t.Errorf("proficiency %v did not fall after a wrong answer", res.Concept.Proficiency)
	}
}

func TestSubmitDuplicateIsNoOp(t *testing.T) {
	fx := newServiceFixture(t)
	q := fx.addQuestion(t, concepts.TypeMCQ, "4", 0.5)
	ctx := context.Background()

	req := SubmitRequest{
		AttemptID:  uuid.New(),
		UserID:     "u1",
		SessionID:  fx.sessionID,
		QuestionID: q.ID,
		Answer:     "4",
	}
	first, err := fx.service.SubmitAttempt(ctx, req)
	if err != nil {
		t.Fatalf("first submit: %v", err)
	}
	second, err := fx.service.SubmitAttempt(ctx, req)
	if err != nil {
		t.Fatalf("second submit: %v", err)
	}
	if !second.Duplicate {
		t.Error("duplicate submission not flagged")
	}

	// Nothing double-applied.
	con, err := fx.store.Repos().Concepts.Get(ctx, fx.concept.ID)
	if err != nil {
		t.Fatalf("get concept: %v", err)
	}
	if con.AttemptCount != 1 {
		t.Errorf("attempt count = %d, want 1", con.AttemptCount)
	}
	if con.Proficiency != first.Concept.Proficiency {
		t.Errorf("proficiency moved on duplicate: %v vs %v", con.Proficiency, first.Concept.Proficiency)
	}
	sess, err := fx.store.Repos().Sessions.Get(ctx, fx.sessionID)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if sess.QuestionCount != 1 {
		t.Errorf("session question count = %d, want 1", sess.QuestionCount)
	}
}

func TestSubmitUnknownQuestionRejectedBeforeWrite(t *testing.T) {
	fx := newServiceFixture(t)
	ctx := context.Background()

	_, err := fx.service.SubmitAttempt(ctx, SubmitRequest{
		AttemptID:  uuid.New(),
		UserID:     "u1",
		SessionID:  fx.sessionID,
		QuestionID: uuid.New(),
		Answer:     "4",
	})
	if err == nil {
		t.Fatal("expected error for unknown question")
	}

	n, err := fx.store.Repos().Attempts.CountByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("count attempts: %v", err)
	}
	if n != 0 {
		t.Errorf("%d attempts written despite rejection", n)
	}
}

func TestSubmitWrongUserRejected(t *testing.T) {
	fx := newServiceFixture(t)
	q := fx.addQuestion(t, concepts.TypeMCQ, "4", 0.5)

	_, err := fx.service.SubmitAttempt(context.Background(), SubmitRequest{
		AttemptID:  uuid.New(),
		UserID:     "intruder",
		SessionID:  fx.sessionID,
		QuestionID: q.ID,
		Answer:     "4",
	})
	if err == nil {
		t.Fatal("expected error for foreign user")
	}
}

func TestSubmitFreeResponseDelegatesToGrader(t *testing.T) {
	fx := newServiceFixture(t)
	q := fx.addQuestion(t, concepts.TypeFreeResponse, "model answer", 0.5)
	fx.grader.verdict = &GradeResult{
		Correct:   true,
		Score:     0.9,
		Feedback:  "well reasoned",
		ErrorType: ErrorCorrect,
	}

	res, err := fx.service.SubmitAttempt(context.Background(), SubmitRequest{
		AttemptID:  uuid.New(),
		UserID:     "u1",
		SessionID:  fx.sessionID,
		QuestionID: q.ID,
		Answer:     "because the derivative of a composition...",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if fx.grader.calls != 1 {
		t.Fatalf("grader called %d times, want 1", fx.grader.calls)
	}
	if !res.Correct || res.Score != 0.9 || res.Feedback != "well reasoned" {
		t.Errorf("verdict not propagated: %+v", res)
	}
}

func TestSubmitGraderFailureFallsBackNeutral(t *testing.T) {
	fx := newServiceFixture(t)
	q := fx.addQuestion(t, concepts.TypeFreeResponse, "model answer", 0.5)
	fx.grader.err = errors.New("upstream timeout")

	res, err := fx.service.SubmitAttempt(context.Background(), SubmitRequest{
		AttemptID:  uuid.New(),
		UserID:     "u1",
		SessionID:  fx.sessionID,
		QuestionID: q.ID,
		Answer:     "something",
	})
	if err != nil {
		t.Fatalf("submit should not fail on grader outage: %v", err)
	}
	if res.Score != 0.5 || res.Feedback != "evaluation unavailable" {
		t.Errorf("fallback verdict = %+v, want neutral", res)
	}

	// The attempt is still recorded and the schedule still advanced.
	n, err := fx.store.Repos().Attempts.CountByUser(context.Background(), "u1")
	if err != nil {
		t.Fatalf("count attempts: %v", err)
	}
	if n != 1 {
		t.Errorf("attempt count = %d, want 1", n)
	}
	if res.Concept.LastPracticed == nil {
		t.Error("schedule did not advance on fallback")
	}
}

func TestSubmitPrerequisiteGapRecorded(t *testing.T) {
	fx := newServiceFixture(t)
	q := fx.addQuestion(t, concepts.TypeFreeResponse, "model answer", 0.5)
	fx.grader.verdict = &GradeResult{
		Correct:   false,
		Score:     0.1,
		ErrorType: ErrorPrerequisiteGap,
		GapAnalysis: &GapAnalysis{
			MissingConceptName: "limits",
			Severity:           "moderate",
			Explanation:        "treated the limit as a value",
		},
	}
	ctx := context.Background()

	// First occurrence: recorded but below the pattern threshold.
	res, err := fx.service.SubmitAttempt(ctx, SubmitRequest{
		AttemptID:  uuid.New(),
		UserID:     "u1",
		SessionID:  fx.sessionID,
		QuestionID: q.ID,
		Answer:     "x",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if len(res.GapPatterns) != 0 {
		t.Errorf("pattern surfaced after one occurrence")
	}

	// Second occurrence corroborates it.
	res, err = fx.service.SubmitAttempt(ctx, SubmitRequest{
		AttemptID:  uuid.New(),
		UserID:     "u1",
		SessionID:  fx.sessionID,
		QuestionID: q.ID,
		Answer:     "y",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if len(res.GapPatterns) != 1 || res.GapPatterns[0].MissingConceptName != "limits" {
		t.Errorf("patterns = %v, want corroborated limits gap", res.GapPatterns)
	}
}
