package questiongen

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

type stubGenerator struct {
	bank  []concepts.Question
	err   error
	calls int
}

func (g *stubGenerator) Generate(ctx context.Context, conceptID uuid.UUID, input Input) ([]concepts.Question, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	out := make([]concepts.Question, len(g.bank))
	copy(out, g.bank)
	for i := range out {
		out[i].ConceptID = conceptID
	}
	return out, nil
}

func newServiceFixture(t *testing.T) (*Service, *stubGenerator, *store.Store) {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	gen := &stubGenerator{bank: []concepts.Question{
		{Type: concepts.TypeMCQ, Text: "q1", Answer: "a1", Difficulty: 0.3},
		{Type: concepts.TypeFlashcard, Text: "q2", Answer: "a2", Difficulty: 0.5},
	}}
	svc := NewService(s.Repos().Questions, gen, zap.NewNop())
	svc.PollInterval = time.Millisecond
	svc.PollAttempts = 3
	return svc, gen, s
}

func TestEnsureBankGeneratesOnce(t *testing.T) {
	svc, gen, s := newServiceFixture(t)
	ctx := context.Background()
	conceptID := uuid.New()

	if err := svc.EnsureBank(ctx, conceptID, Input{ConceptName: "x"}); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if gen.calls != 1 {
		t.Fatalf("generator called %d times, want 1", gen.calls)
	}

	// Second call is a no-op: the bank already exists.
	if err := svc.EnsureBank(ctx, conceptID, Input{ConceptName: "x"}); err != nil {
		t.Fatalf("ensure again: %v", err)
	}
	if gen.calls != 1 {
		t.Errorf("generator called %d times after repeat, want still 1", gen.calls)
	}

	n, err := s.Repos().Questions.CountByConcept(ctx, conceptID)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Errorf("bank has %d questions, want 2", n)
	}
}

func TestEnsureBankPropagatesGeneratorError(t *testing.T) {
	svc, gen, s := newServiceFixture(t)
	gen.err = errors.New("provider down")
	conceptID := uuid.New()

	if err := svc.EnsureBank(context.Background(), conceptID, Input{ConceptName: "x"}); err == nil {
		t.Fatal("expected error")
	}

	n, err := s.Repos().Questions.CountByConcept(context.Background(), conceptID)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Errorf("%d questions stored despite failure", n)
	}
}

func TestAwaitBankReturnsExistingBank(t *testing.T) {
	svc, _, s := newServiceFixture(t)
	ctx := context.Background()
	conceptID := uuid.New()

	_, err := s.Repos().Questions.CreateBatch(ctx, []concepts.Question{
		{ConceptID: conceptID, Type: concepts.TypeMCQ, Text: "q", Answer: "a", Difficulty: 0.4},
	})
	if err != nil {
		t.Fatalf("seed bank: %v", err)
	}

	qs, err := svc.AwaitBank(ctx, conceptID)
	if err != nil {
		t.Fatalf("await: %v", err)
	}
	if len(qs) != 1 {
		t.Errorf("got %d questions, want 1", len(qs))
	}
}

func TestAwaitBankBoundedPolling(t *testing.T) {
	svc, _, _ := newServiceFixture(t)

	start := time.Now()
	_, err := svc.AwaitBank(context.Background(), uuid.New())
	if err == nil {
		t.Fatal("expected timeout error for missing bank")
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("polling took %v, should be bounded", elapsed)
	}
}

func TestAwaitBankHonorsContextCancel(t *testing.T) {
	svc, _, _ := newServiceFixture(t)
	svc.PollInterval = time.Minute
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.AwaitBank(ctx, uuid.New())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestNewServiceDefaultPollBudget(t *testing.T) {
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	svc := NewService(s.Repos().Questions, &stubGenerator{}, zap.NewNop())
	if svc.PollInterval != DefaultPollInterval {
		t.Errorf("PollInterval = %v, want %v", svc.PollInterval, DefaultPollInterval)
	}
	if svc.PollAttempts != DefaultPollAttempts {
		t.Errorf("PollAttempts = %d, want %d", svc.PollAttempts, DefaultPollAttempts)
	}
}
