package practice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/praxislearn/praxis/internal/concepts"
	"github.com/praxislearn/praxis/internal/gaps"
	"github.com/praxislearn/praxis/internal/proficiency"
	"github.com/praxislearn/praxis/internal/spacedrep"
	"github.com/praxislearn/praxis/internal/store"
)

// Service runs practice turns.
type Service struct {
	store    *store.Store
	grader   Grader
	detector *gaps.Detector
	sm2      spacedrep.Config
	elo      proficiency.Config
	log      *zap.Logger
}

// NewService creates a Service. grader may be nil, in which case free
// response always receives the neutral verdict.
func NewService(s *store.Store, grader Grader, log *zap.Logger) *Service {
	return &Service{
		store:    s,
		grader:   grader,
		detector: gaps.NewDetector(s.Repos().Gaps, log),
		sm2:      spacedrep.DefaultConfig(),
		elo:      proficiency.DefaultConfig(),
		log:      log,
	}
}

// SubmitRequest is one answer submission. AttemptID is the idempotency key;
// resubmitting the same id is a no-op.
type SubmitRequest struct {
	AttemptID   uuid.UUID
	UserID      string
	SessionID   uuid.UUID
	QuestionID  uuid.UUID
	Answer      string
	TimeTakenMs int64
	// Now anchors the schedule update; zero means time.Now.
	Now time.Time
}

// SubmitResult reports the outcome of one turn.
type SubmitResult struct {
	Correct     bool
	Score       float64
	Feedback    string
	Explanation string
	// Duplicate is true when the attempt id was already applied; no state
	// changed on this call.
	Duplicate bool
	// Concept is the post-update concept state.
	Concept *concepts.Concept
	// GapPatterns holds corroborated missing-prerequisite signals surfaced
	// by this turn, if any.
	GapPatterns []gaps.Pattern
}

// SubmitAttempt records one answer and applies the scheduler, proficiency,
// and session-counter updates as a single transaction. Unknown question or
// session ids are rejected before any write.
func (s *Service) SubmitAttempt(ctx context.Context, req SubmitRequest) (*SubmitResult, error) {
	if req.AttemptID == uuid.Nil {
		return nil, fmt.Errorf("attempt id is required")
	}
	now := req.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	repos := s.store.Repos()
	q, err := repos.Questions.Get(ctx, req.QuestionID)
	if err != nil {
		return nil, fmt.Errorf("unknown question %s: %w", req.QuestionID, err)
	}
	con, err := repos.Concepts.Get(ctx, q.ConceptID)
	if err != nil {
		return nil, fmt.Errorf("concept %s for question %s: %w", q.ConceptID, req.QuestionID, err)
	}
	if con.UserID != req.UserID {
		return nil, fmt.Errorf("question %s does not belong to user %s", req.QuestionID, req.UserID)
	}
	if _, err := repos.Sessions.Get(ctx, req.SessionID); err != nil {
		return nil, fmt.Errorf("unknown session %s: %w", req.SessionID, err)
	}

	verdict := s.evaluate(ctx, q, con.Name, req.Answer)
	result := &SubmitResult{
		Correct:     verdict.Correct,
		Score:       verdict.Score,
		Feedback:    verdict.Feedback,
		Explanation: verdict.Explanation,
	}

	err = s.store.WithTx(ctx, func(r *store.Repos) error {
		err := r.Attempts.Append(ctx, &store.AttemptRecord{
			ID:          req.AttemptID,
			QuestionID:  q.ID,
			ConceptID:   con.ID,
			UserID:      req.UserID,
			SessionID:   req.SessionID,
			Answer:      req.Answer,
			Correct:     verdict.Correct,
			Score:       verdict.Score,
			TimeTakenMs: req.TimeTakenMs,
		})
		if err != nil {
			return err
		}

		fresh, err := r.Concepts.Get(ctx, con.ID)
		if err != nil {
			return err
		}
		updated := s.applyOutcome(fresh, verdict, q.Difficulty, req.TimeTakenMs, now)
		if err := r.Concepts.Update(ctx, updated); err != nil {
			return err
		}
		result.Concept = updated

		return r.Sessions.AddResult(ctx, req.SessionID, verdict.Correct)
	})
	if errors.Is(err, store.ErrDuplicateAttempt) {
		s.log.Debug("duplicate attempt ignored", zap.String("attempt_id", req.AttemptID.String()))
		result.Duplicate = true
		result.Concept = con
		return result, nil
	}
	if err != nil {
		return nil, fmt.Errorf("submit attempt %s: %w", req.AttemptID, err)
	}

	// Gap bookkeeping is best-effort enrichment: failures never block or
	// corrupt the turn.
	if verdict.ErrorType == ErrorPrerequisiteGap && verdict.GapAnalysis != nil {
		s.recordGap(ctx, req.UserID, con.ID, verdict.GapAnalysis, result)
	}
	return result, nil
}

func (s *Service) evaluate(ctx context.Context, q *concepts.Question, conceptName, answer string) *GradeResult {
	if correct, ok := Evaluate(q, answer); ok {
		score := 0.0
		if correct {
			score = 1.0
		}
		v := &GradeResult{Correct: correct, Score: score, Explanation: q.Explanation}
		if !correct {
			v.Feedback = fmt.Sprintf("The expected answer was %q.", q.Answer)
		}
		return v
	}

	if s.grader == nil {
		return neutralVerdict()
	}
	verdict, err := s.grader.Grade(ctx, q, conceptName, answer)
	if err != nil {
		s.log.Warn("grader unavailable, using neutral verdict",
			zap.String("question_id", q.ID.String()),
			zap.Error(err))
		return neutralVerdict()
	}
	return verdict
}

// applyOutcome advances the proficiency estimate and the review schedule.
// Per-attempt updates apply even to manually adjusted concepts; the flag only
// protects against automated seeding overwriting a deliberate setting.
func (s *Service) applyOutcome(con *concepts.Concept, verdict *GradeResult, difficulty float64, timeTakenMs int64, now time.Time) *concepts.Concept {
	con.Proficiency, con.Confidence = s.elo.Update(con.Proficiency, con.Confidence, difficulty, verdict.Score)

	quality := s.sm2.QualityFromOutcome(verdict.Correct, timeTakenMs)
	next := spacedrep.Advance(spacedrep.State{
		EaseFactor:      con.EaseFactor,
		IntervalDays:    con.IntervalDays,
		RepetitionCount: con.RepetitionCount,
	}, quality)
	con.EaseFactor = next.EaseFactor
	con.IntervalDays = next.IntervalDays
	con.RepetitionCount = next.RepetitionCount

	con.LastPracticed = &now
	due := spacedrep.NextDue(now, next.IntervalDays)
	con.NextDue = &due
	con.AttemptCount++
	return con
}

func (s *Service) recordGap(ctx context.Context, userID string, conceptID uuid.UUID, ga *GapAnalysis, result *SubmitResult) {
	if err := s.detector.Record(ctx, userID, conceptID, ga.MissingConceptName, ga.Severity, ga.Explanation); err != nil {
		s.log.Warn("gap record failed", zap.Error(err))
		return
	}
	patterns, err := s.detector.Detect(ctx, userID, conceptID)
	if err != nil {
		s.log.Warn("gap detection failed", zap.Error(err))
		return
	}
	result.GapPatterns = patterns
}
