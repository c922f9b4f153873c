package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/praxislearn/praxis/internal/concepts"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestConceptRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repos := s.Repos()
	ctx := context.Background()

	due := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Second)
	created, err := repos.Concepts.Create(ctx, &concepts.Concept{
		UserID:         "u1",
		Name:           "Chain Rule",
		NormalizedName: "chain rule",
		KeyTerms:       []string{"derivative", "composition"},
		Proficiency:    0.4,
		Confidence:     0.3,
		EaseFactor:     2.5,
		IntervalDays:   1,
		NextDue:        &due,
		Source:         concepts.SourceUser,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repos.Concepts.FindByNormalizedName(ctx, "u1", "chain rule")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got == nil {
		t.Fatal("expected concept, got nil")
	}
	if got.ID != created.ID {
		t.Errorf("id = %s, want %s", got.ID, created.ID)
	}
	if got.NextDue == nil || !got.NextDue.Equal(due) {
		t.Errorf("nextDue = %v, want %v", got.NextDue, due)
	}
	if len(got.KeyTerms) != 2 {
		t.Errorf("keyTerms = %v, want 2 entries", got.KeyTerms)
	}
}

func TestConceptFindMissingReturnsNil(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	got, err := s.Repos().Concepts.FindByNormalizedName(ctx, "u1", "nope")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for missing concept, got %+v", got)
	}
}

func TestListDue(t *testing.T) {
	s := openTestStore(t)
	repos := s.Repos()
	ctx := context.Background()
	now := time.Now().UTC()

	past := now.Add(-48 * time.Hour)
	future := now.Add(48 * time.Hour)

	mk := func(name string, due *time.Time, deprecated bool) {
		t.Helper()
		_, err := repos.Concepts.Create(ctx, &concepts.Concept{
			UserID:         "u1",
			Name:           name,
			NormalizedName: concepts.NormalizeName(name),
			EaseFactor:     2.5,
			IntervalDays:   1,
			NextDue:        due,
			Deprecated:     deprecated,
		})
		if err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	mk("overdue", &past, false)
	mk("fresh", nil, false)
	mk("later", &future, false)
	mk("gone", &past, true)

	due, err := repos.Concepts.ListDue(ctx, "u1", now, nil)
	if err != nil {
		t.Fatalf("list due: %v", err)
	}
	names := make(map[string]bool)
	for _, c := range due {
		names[c.NormalizedName] = true
	}
	if len(due) != 2 || !names["overdue"] || !names["fresh"] {
		t.Errorf("due = %v, want overdue+fresh only", names)
	}
}

func TestAttemptAppendIdempotent(t *testing.T) {
	s := openTestStore(t)
	repos := s.Repos()
	ctx := context.Background()

	rec := &AttemptRecord{
		ID:         uuid.New(),
		QuestionID: uuid.New(),
		ConceptID:  uuid.New(),
		UserID:     "u1",
		SessionID:  uuid.New(),
		Answer:     "42",
		Correct:    true,
		Score:      1,
	}
	if err := repos.Attempts.Append(ctx, rec); err != nil {
		t.Fatalf("first append: %v", err)
	}

	err := repos.Attempts.Append(ctx, rec)
	if err != ErrDuplicateAttempt {
		t.Errorf("second append err = %v, want ErrDuplicateAttempt", err)
	}

	n, err := repos.Attempts.CountByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("attempt count = %d, want 1", n)
	}
}

func TestSessionCounters(t *testing.T) {
	s := openTestStore(t)
	repos := s.Repos()
	ctx := context.Background()

	sess, err := repos.Sessions.Create(ctx, &SessionRecord{UserID: "u1"})
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	if err := repos.Sessions.AddResult(ctx, sess.ID, true); err != nil {
		t.Fatalf("add result: %v", err)
	}
	if err := repos.Sessions.AddResult(ctx, sess.ID, false); err != nil {
		t.Fatalf("add result: %v", err)
	}

	got, err := repos.Sessions.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if got.QuestionCount != 2 || got.CorrectCount != 1 {
		t.Errorf("counters = %d/%d, want 2/1", got.QuestionCount, got.CorrectCount)
	}
}

func TestWithTxRollsBackOnError(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	wantErr := context.Canceled
	err := s.WithTx(ctx, func(r *Repos) error {
		_, cerr := r.Concepts.Create(ctx, &concepts.Concept{
			UserID:         "u1",
			Name:           "Doomed",
			NormalizedName: "doomed",
			EaseFactor:     2.5,
			IntervalDays:   1,
		})
		if cerr != nil {
			return cerr
		}
		return wantErr
	})
	if err != wantErr {
		t.Fatalf("WithTx err = %v, want %v", err, wantErr)
	}

	got, err := s.Repos().Concepts.FindByNormalizedName(ctx, "u1", "doomed")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got != nil {
		t.Error("concept survived a rolled-back transaction")
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if seq != int64(i+1) {
			t.Errorf("seq = %d, want %d", seq, i+1)
		}
	}
}

func TestLLMUsageByModel(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	events, err := s.EventRepo()
	if err != nil {
		t.Fatalf("event repo: %v", err)
	}

	rows := []LLMRequestEventData{
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "question-bank", InputTokens: 100, OutputTokens: 50, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "grading", InputTokens: 40, OutputTokens: 10, Success: false, ErrorMessage: "rate limited"},
		{Provider: "anthropic", Model: "claude-haiku-4-5", Purpose: "grading", InputTokens: 200, OutputTokens: 80, Success: true},
	}
	for i, data := range rows {
		if err := events.AppendLLMRequest(ctx, data); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	sum, err := events.LLMUsage(ctx, "")
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if sum.Requests != 3 || sum.Failures != 1 {
		t.Errorf("requests/failures = %d/%d, want 3/1", sum.Requests, sum.Failures)
	}
	if sum.InputTokens != 340 || sum.OutputTokens != 140 {
		t.Errorf("tokens = %d/%d, want 340/140", sum.InputTokens, sum.OutputTokens)
	}

	if len(sum.ByModel) != 2 {
		t.Fatalf("ByModel has %d entries, want 2", len(sum.ByModel))
	}
	// Sorted by model ID.
	if sum.ByModel[0].Model != "claude-haiku-4-5" || sum.ByModel[1].Model != "gpt-4o-mini" {
		t.Errorf("ByModel order = %q, %q", sum.ByModel[0].Model, sum.ByModel[1].Model)
	}
	if sum.ByModel[1].Requests != 2 || sum.ByModel[1].InputTokens != 140 || sum.ByModel[1].OutputTokens != 60 {
		t.Errorf("gpt-4o-mini rollup = %+v", sum.ByModel[1])
	}

	graded, err := events.LLMUsage(ctx, "grading")
	if err != nil {
		t.Fatalf("usage filtered: %v", err)
	}
	if graded.Requests != 2 {
		t.Errorf("grading requests = %d, want 2", graded.Requests)
	}
	if len(graded.ByModel) != 2 {
		t.Errorf("grading ByModel has %d entries, want 2", len(graded.ByModel))
	}
}
