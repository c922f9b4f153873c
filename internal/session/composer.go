// Package session assembles bounded, diverse practice sessions from the
// learner's due concepts and their question banks.
package session

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/praxislearn/praxis/internal/concepts"
	"github.com/praxislearn/praxis/internal/store"
)

// Options controls one composition pass.
type Options struct {
	// Limit is the target session size.
	Limit int
	// Focus restricts the session to a single concept when non-nil.
	Focus *uuid.UUID
	// Locked excludes the given concepts regardless of due state.
	Locked map[uuid.UUID]bool
	// DueOnly keeps only concepts whose nextDue has passed or was never set.
	// When false every non-deprecated concept is eligible.
	DueOnly bool
	// Now anchors due-ness; zero means time.Now.
	Now time.Time
}

// Composer builds practice sessions. Selection balances three pressures at
// once: scheduling priority, cognitive-load shaping, and anti-monotony caps.
type Composer struct {
	concepts  store.ConceptRepo
	graphs    store.GraphRepo
	questions store.QuestionRepo
	cfg       Config
	rng       *rand.Rand
	log       *zap.Logger
}

// NewComposer creates a Composer with the default tuning.
func NewComposer(r *store.Repos, log *zap.Logger) *Composer {
	return &Composer{
		concepts:  r.Concepts,
		graphs:    r.Graphs,
		questions: r.Questions,
		cfg:       DefaultConfig(),
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		log:       log,
	}
}

// WithConfig overrides the selection tuning.
func (c *Composer) WithConfig(cfg Config) *Composer {
	c.cfg = cfg
	return c
}

// WithRand overrides the shuffle source, mainly for deterministic tests.
func (c *Composer) WithRand(rng *rand.Rand) *Composer {
	c.rng = rng
	return c
}

// Compose assembles a session for the user. The result never exceeds
// opts.Limit, never draws more than the per-concept cap from one concept,
// and orders cited questions ahead of uncited ones.
func (c *Composer) Compose(ctx context.Context, userID string, opts Options) ([]concepts.Question, error) {
	if opts.Limit <= 0 {
		return nil, fmt.Errorf("session limit must be positive, got %d", opts.Limit)
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	pool, err := c.eligibleConcepts(ctx, userID, opts, now)
	if err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return nil, nil
	}

	prereq, err := c.prerequisiteSet(ctx, userID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(pool, func(i, j int) bool {
		si := PriorityScore(&pool[i], prereq[pool[i].ID], now)
		sj := PriorityScore(&pool[j], prereq[pool[j].ID], now)
		if si != sj {
			return si > sj
		}
		return pool[i].NormalizedName < pool[j].NormalizedName
	})

	sessionCap := c.cfg.sessionTypeCap(opts.Limit)
	sessionTypes := make(map[concepts.QuestionType]int)
	seen := make(map[uuid.UUID]bool)
	var selected []concepts.Question

	for _, con := range pool {
		if len(selected) >= opts.Limit {
			break
		}
		bank, err := c.questions.ListByConcept(ctx, con.ID)
		if err != nil {
			return nil, fmt.Errorf("load bank for concept %s: %w", con.ID, err)
		}
		if len(bank) == 0 {
			continue
		}

		ranked := rankQuestions(bank, con.Proficiency)
		for _, q := range c.cfg.selectForConcept(ranked, con.Proficiency, sessionTypes, sessionCap) {
			if seen[q.ID] {
				continue
			}
			seen[q.ID] = true
			selected = append(selected, q)
		}
	}

	ordered := c.orderForDelivery(selected)
	if len(ordered) > opts.Limit {
		ordered = ordered[:opts.Limit]
	}
	c.log.Debug("session composed",
		zap.String("user_id", userID),
		zap.Int("concepts", len(pool)),
		zap.Int("questions", len(ordered)))
	return ordered, nil
}

func (c *Composer) eligibleConcepts(ctx context.Context, userID string, opts Options, now time.Time) ([]concepts.Concept, error) {
	var pool []concepts.Concept
	var err error
	if opts.DueOnly {
		var scope []uuid.UUID
		if opts.Focus != nil {
			scope = []uuid.UUID{*opts.Focus}
		}
		pool, err = c.concepts.ListDue(ctx, userID, now, scope)
	} else {
		pool, err = c.concepts.ListByUser(ctx, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("list concepts for %s: %w", userID, err)
	}

	out := pool[:0]
	for _, con := range pool {
		if con.Deprecated {
			continue
		}
		if opts.Focus != nil && con.ID != *opts.Focus {
			continue
		}
		if opts.Locked[con.ID] {
			continue
		}
		out = append(out, con)
	}
	return out, nil
}

// prerequisiteSet unions the prerequisite-source sets across all the user's
// graphs: a concept others depend on anywhere counts as a prerequisite.
func (c *Composer) prerequisiteSet(ctx context.Context, userID string) (map[uuid.UUID]bool, error) {
	graphs, err := c.graphs.ListGraphs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list graphs for %s: %w", userID, err)
	}
	out := make(map[uuid.UUID]bool)
	for _, g := range graphs {
		sources, err := c.graphs.ListPrerequisiteSources(ctx, g.ID)
		if err != nil {
			return nil, err
		}
		for id := range sources {
			out[id] = true
		}
	}
	return out, nil
}

// orderForDelivery puts cited questions first, shuffling within each group so
// repeated sessions over the same pool don't feel identical.
func (c *Composer) orderForDelivery(qs []concepts.Question) []concepts.Question {
	var cited, uncited []concepts.Question
	for _, q := range qs {
		if q.Cited() {
			cited = append(cited, q)
		} else {
			uncited = append(uncited, q)
		}
	}
	c.rng.Shuffle(len(cited), func(i, j int) { cited[i], cited[j] = cited[j], cited[i] })
	c.rng.Shuffle(len(uncited), func(i, j int) { uncited[i], uncited[j] = uncited[j], uncited[i] })
	return append(cited, uncited...)
}
