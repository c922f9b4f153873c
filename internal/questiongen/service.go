package questiongen

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/praxislearn/praxis/internal/concepts"
	"github.com/praxislearn/praxis/internal/store"
)

// DefaultPollInterval and DefaultPollAttempts bound AwaitBank. Together they
// give a waiting caller about two minutes, enough for a full generation round
// trip including one retry.
const (
	DefaultPollInterval = 500 * time.Millisecond
	DefaultPollAttempts = 240
)

// Service manages question banks. Generation is decoupled from the practice
// hot path: EnsureBank is idempotent per concept, and session start polls
// with AwaitBank instead of awaiting generation synchronously.
type Service struct {
	questions store.QuestionRepo
	gen       Generator
	log       *zap.Logger

	// PollInterval and PollAttempts bound AwaitBank.
	PollInterval time.Duration
	PollAttempts int
}

// NewService creates a Service with the default polling budget.
func NewService(questions store.QuestionRepo, gen Generator, log *zap.Logger) *Service {
	return &Service{
		questions:    questions,
		gen:          gen,
		log:          log,
		PollInterval: DefaultPollInterval,
		PollAttempts: DefaultPollAttempts,
	}
}

// EnsureBank generates and stores a bank for the concept unless one already
// exists. A request for a concept that already has questions is a no-op, so
// duplicate fire-and-forget calls are harmless.
func (s *Service) EnsureBank(ctx context.Context, conceptID uuid.UUID, input Input) error {
	n, err := s.questions.CountByConcept(ctx, conceptID)
	if err != nil {
		return fmt.Errorf("count bank for %s: %w", conceptID, err)
	}
	if n > 0 {
		return nil
	}

	bank, err := s.gen.Generate(ctx, conceptID, input)
	if err != nil {
		return err
	}
	if _, err := s.questions.CreateBatch(ctx, bank); err != nil {
		return fmt.Errorf("store bank for %s: %w", conceptID, err)
	}
	s.log.Info("question bank generated",
		zap.String("concept_id", conceptID.String()),
		zap.String("concept", input.ConceptName),
		zap.Int("questions", len(bank)))
	return nil
}

// AwaitBank polls until the concept has questions or the attempt budget runs
// out. It never triggers generation itself.
func (s *Service) AwaitBank(ctx context.Context, conceptID uuid.UUID) ([]concepts.Question, error) {
	for attempt := 0; attempt < s.PollAttempts; attempt++ {
		qs, err := s.questions.ListByConcept(ctx, conceptID)
		if err != nil {
			return nil, fmt.Errorf("poll bank for %s: %w", conceptID, err)
		}
		if len(qs) > 0 {
			return qs, nil
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.PollInterval):
		}
	}
	return nil, fmt.Errorf("bank for concept %s not ready after %d polls", conceptID, s.PollAttempts)
}
