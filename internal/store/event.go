package store

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"sync"

	"github.com/praxislearn/praxis/ent"
	"github.com/praxislearn/praxis/ent/llmrequestevent"
)

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMUsageSummary aggregates request events for the stats surface.
type LLMUsageSummary struct {
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
	// ByModel breaks the totals down per model, sorted by model ID, so the
	// caller can price each model's tokens separately.
	ByModel []LLMModelUsage
}

// LLMModelUsage is one model's share of the recorded requests.
type LLMModelUsage struct {
	Model        string
	Requests     int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// LLMUsage summarizes recorded LLM request events, optionally filtered
	// by purpose ("" = all).
	LLMUsage(ctx context.Context, purpose string) (*LLMUsageSummary, error)
}

// EventRepo returns an EventRepo backed by this store.
func (s *Store) EventRepo() (EventRepo, error) {
	seq, err := newSequenceCounter(s.db)
	if err != nil {
		return nil, err
	}
	return &eventRepo{client: s.client, seq: seq}, nil
}

type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save llm request event: %w", err)
	}
	return nil
}

func (r *eventRepo) LLMUsage(ctx context.Context, purpose string) (*LLMUsageSummary, error) {
	q := r.client.LLMRequestEvent.Query()
	if purpose != "" {
		q = q.Where(llmrequestevent.Purpose(purpose))
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query llm request events: %w", err)
	}

	sum := &LLMUsageSummary{}
	byModel := make(map[string]*LLMModelUsage)
	for _, row := range rows {
		sum.Requests++
		if !row.Success {
			sum.Failures++
		}
		sum.InputTokens += row.InputTokens
		sum.OutputTokens += row.OutputTokens

		m, ok := byModel[row.Model]
		if !ok {
			m = &LLMModelUsage{Model: row.Model}
			byModel[row.Model] = m
		}
		m.Requests++
		m.InputTokens += row.InputTokens
		m.OutputTokens += row.OutputTokens
	}

	for _, m := range byModel {
		sum.ByModel = append(sum.ByModel, *m)
	}
	sort.Slice(sum.ByModel, func(i, j int) bool {
		return sum.ByModel[i].Model < sum.ByModel[j].Model
	})
	return sum, nil
}

// sequenceCounter manages the global monotonic sequence number shared across
// all event types. Each event type lives in its own ent-managed table, so
// per-table auto-increment IDs can't establish cross-type ordering; this
// shared counter assigns a single increasing sequence to every event
// regardless of type.
//
// Uses raw SQL outside ent because ent doesn't support database-level atomic
// counters. The mutex serializes within the process; the RETURNING clause
// makes the increment atomic at the database level.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newSequenceCounter creates a counter and ensures the tracking table exists.
func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}
