package session

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/praxislearn/praxis/internal/concepts"
	"github.com/praxislearn/praxis/internal/store"
)

type composerFixture struct {
	store    *store.Store
	composer *Composer
}

func newComposerFixture(t *testing.T) *composerFixture {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	c := NewComposer(s.Repos(), zap.NewNop()).WithRand(rand.New(rand.NewSource(1)))
	return &composerFixture{store: s, composer: c}
}

func (fx *composerFixture) addConcept(t *testing.T, name string, due *time.Time, deprecated bool) *concepts.Concept {
	t.Helper()
	c, err := fx.store.Repos().Concepts.Create(context.Background(), &concepts.Concept{
		UserID:         "u1",
		Name:           name,
		NormalizedName: concepts.NormalizeName(name),
		Proficiency:    0.5,
		EaseFactor:     2.5,
		IntervalDays:   1,
		NextDue:        due,
		Deprecated:     deprecated,
	})
	if err != nil {
		t.Fatalf("create concept %s: %v", name, err)
	}
	return c
}

func (fx *composerFixture) addBank(t *testing.T, conceptID uuid.UUID, n int, qt concepts.QuestionType, cited bool) {
	t.Helper()
	qs := make([]concepts.Question, n)
	for i := range qs {
		qs[i] = concepts.Question{
			ConceptID:  conceptID,
			Type:       qt,
			Text:       "q",
			Answer:     "a",
			Difficulty: 0.5,
		}
		if cited {
			qs[i].Sources = []string{"excerpt"}
		}
	}
	if _, err := fx.store.Repos().Questions.CreateBatch(context.Background(), qs); err != nil {
		t.Fatalf("create bank: %v", err)
	}
}

func TestComposeRespectsLimit(t *testing.T) {
	fx := newComposerFixture(t)
	past := time.Now().UTC().Add(-time.Hour)
	for _, name := range []string{"a", "b", "c", "d"} {
		c := fx.addConcept(t, name, &past, false)
		fx.addBank(t, c.ID, 3, concepts.TypeMCQ, false)
	}

	qs, err := fx.composer.Compose(context.Background(), "u1", Options{Limit: 5, DueOnly: true})
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if len(qs) > 5 {
		t.Errorf("session has %d questions, limit is 5", len(qs))
	}
}

func TestComposePerConceptCap(t *testing.T) {
	fx := newComposerFixture(t)
	c := fx.addConcept(t, "only", nil, false)
	fx.addBank(t, c.ID, 3, concepts.TypeMCQ, false)
	fx.addBank(t, c.ID, 3, concepts.TypeFlashcard, false)
	fx.addBank(t, c.ID, 3, concepts.TypeFillBlank, false)

	qs, err := fx.composer.Compose(context.Background(), "u1", Options{Limit: 10})
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if len(qs) != 3 {
		t.Errorf("one concept contributed %d questions, cap is 3", len(qs))
	}
}

func TestComposeExcludesDeprecatedAndLocked(t *testing.T) {
	fx := newComposerFixture(t)
	dep := fx.addConcept(t, "deprecated", nil, true)
	fx.addBank(t, dep.ID, 3, concepts.TypeMCQ, false)
	locked := fx.addConcept(t, "locked", nil, false)
	fx.addBank(t, locked.ID, 3, concepts.TypeMCQ, false)
	live := fx.addConcept(t, "live", nil, false)
	fx.addBank(t, live.ID, 3, concepts.TypeMCQ, false)

	qs, err := fx.composer.Compose(context.Background(), "u1", Options{
		Limit:  10,
		Locked: map[uuid.UUID]bool{locked.ID: true},
	})
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	for _, q := range qs {
		if q.ConceptID != live.ID {
			t.Errorf("question drawn from excluded concept %s", q.ConceptID)
		}
	}
	if len(qs) == 0 {
		t.Error("live concept contributed nothing")
	}
}

func TestComposeDueOnlyGate(t *testing.T) {
	fx := newComposerFixture(t)
	future := time.Now().UTC().Add(48 * time.Hour)
	later := fx.addConcept(t, "later", &future, false)
	fx.addBank(t, later.ID, 3, concepts.TypeMCQ, false)
	fresh := fx.addConcept(t, "fresh", nil, false)
	fx.addBank(t, fresh.ID, 3, concepts.TypeMCQ, false)

	qs, err := fx.composer.Compose(context.Background(), "u1", Options{Limit: 10, DueOnly: true})
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	for _, q := range qs {
		if q.ConceptID == later.ID {
			t.Error("not-yet-due concept appeared in a due-only session")
		}
	}
	if len(qs) == 0 {
		t.Error("never-practiced concept should count as due")
	}
}

func TestComposeFocus(t *testing.T) {
	fx := newComposerFixture(t)
	target := fx.addConcept(t, "target", nil, false)
	fx.addBank(t, target.ID, 3, concepts.TypeMCQ, false)
	other := fx.addConcept(t, "other", nil, false)
	fx.addBank(t, other.ID, 3, concepts.TypeMCQ, false)

	qs, err := fx.composer.Compose(context.Background(), "u1", Options{Limit: 10, Focus: &target.ID})
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if len(qs) == 0 {
		t.Fatal("focused session is empty")
	}
	for _, q := range qs {
		if q.ConceptID != target.ID {
			t.Errorf("focused session drew from concept %s", q.ConceptID)
		}
	}
}

func TestComposeCitedQuestionsFirst(t *testing.T) {
	fx := newComposerFixture(t)
	a := fx.addConcept(t, "a", nil, false)
	fx.addBank(t, a.ID, 2, concepts.TypeMCQ, false)
	b := fx.addConcept(t, "b", nil, false)
	fx.addBank(t, b.ID, 2, concepts.TypeFlashcard, true)

	qs, err := fx.composer.Compose(context.Background(), "u1", Options{Limit: 10})
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	sawUncited := false
	for _, q := range qs {
		if !q.Cited() {
			sawUncited = true
		} else if sawUncited {
			t.Fatal("cited question appeared after an uncited one")
		}
	}
}

func TestComposePrerequisitePriority(t *testing.T) {
	fx := newComposerFixture(t)
	ctx := context.Background()

	// Both concepts are equally due, but prereq is the source of a
	// prerequisite edge, so it scores double and should be served first.
	prereq := fx.addConcept(t, "prereq", nil, false)
	fx.addBank(t, prereq.ID, 3, concepts.TypeMCQ, false)
	dependent := fx.addConcept(t, "dependent", nil, false)
	fx.addBank(t, dependent.ID, 3, concepts.TypeFlashcard, false)

	g, err := fx.store.Repos().Graphs.CreateGraph(ctx, &concepts.UnitGraph{UserID: "u1", Name: "unit"})
	if err != nil {
		t.Fatalf("create graph: %v", err)
	}
	_, err = fx.store.Repos().Graphs.CreateEdge(ctx, &concepts.Edge{
		GraphID: g.ID,
		From:    prereq.ID,
		To:      dependent.ID,
		Type:    concepts.EdgePrerequisite,
	})
	if err != nil {
		t.Fatalf("create edge: %v", err)
	}

	// Limit 2 with per-type session cap ceil(2*0.4)=1: one mcq from prereq
	// fills the slot first because prereq leads the priority order.
	qs, err := fx.composer.Compose(ctx, "u1", Options{Limit: 2})
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if len(qs) == 0 {
		t.Fatal("empty session")
	}
	found := false
	for _, q := range qs {
		if q.ConceptID == prereq.ID {
			found = true
		}
	}
	if !found {
		t.Error("prerequisite concept missing from a tight session")
	}
}

func TestComposeEmptyPool(t *testing.T) {
	fx := newComposerFixture(t)

	qs, err := fx.composer.Compose(context.Background(), "u1", Options{Limit: 5})
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if len(qs) != 0 {
		t.Errorf("expected empty session, got %d questions", len(qs))
	}
}

func TestComposeInvalidLimit(t *testing.T) {
	fx := newComposerFixture(t)

	if _, err := fx.composer.Compose(context.Background(), "u1", Options{Limit: 0}); err == nil {
		t.Error("expected error for zero limit")
	}
}
