package graph

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/praxislearn/praxis/internal/concepts"
	"github.com/praxislearn/praxis/internal/store"
)

type insertFixture struct {
	store    *store.Store
	inserter *Inserter
	graphID  uuid.UUID
	anchorID uuid.UUID
}

func newInsertFixture(t *testing.T, anchorTier int) *insertFixture {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	ctx := context.Background()
	repos := s.Repos()

	anchor, err := repos.Concepts.Create(ctx, &concepts.Concept{
		UserID:         "u1",
		Name:           "Derivatives",
		NormalizedName: "derivatives",
		EaseFactor:     2.5,
		IntervalDays:   1,
	})
	if err != nil {
		t.Fatalf("create anchor: %v", err)
	}

	g, err := repos.Graphs.CreateGraph(ctx, &concepts.UnitGraph{UserID: "u1", Name: "Calculus"})
	if err != nil {
		t.Fatalf("create graph: %v", err)
	}
	_, err = repos.Graphs.CreateMembership(ctx, &concepts.Membership{
		GraphID:   g.ID,
		ConceptID: anchor.ID,
		DepthTier: anchorTier,
	})
	if err != nil {
		t.Fatalf("create anchor membership: %v", err)
	}

	return &insertFixture{
		store:    s,
		inserter: NewInserter(s, zap.NewNop()),
		graphID:  g.ID,
		anchorID: anchor.ID,
	}
}

func TestInsertExtension(t *testing.T) {
	fx := newInsertFixture(t, 2)
	ctx := context.Background()

	res, err := fx.inserter.Insert(ctx, InsertRequest{
		UserID:   "u1",
		GraphID:  fx.graphID,
		AnchorID: fx.anchorID,
		Relation: RelationExtension,
		Seed:     concepts.Seed{Name: "Chain Rule"},
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if res.Reused {
		t.Error("fresh concept reported as reused")
	}
	if res.Edge.From != fx.anchorID || res.Edge.To != res.Concept.ID {
		t.Errorf("extension edge runs %s -> %s, want anchor -> new", res.Edge.From, res.Edge.To)
	}

	m, err := fx.store.Repos().Graphs.FindMembership(ctx, fx.graphID, res.Concept.ID)
	if err != nil || m == nil {
		t.Fatalf("find membership: %v, %v", m, err)
	}
	if m.DepthTier != 3 {
		t.Errorf("extension tier = %d, want anchor tier + 1 = 3", m.DepthTier)
	}
}

func TestInsertPrerequisite(t *testing.T) {
	fx := newInsertFixture(t, 2)
	ctx := context.Background()

	res, err := fx.inserter.Insert(ctx, InsertRequest{
		UserID:   "u1",
		GraphID:  fx.graphID,
		AnchorID: fx.anchorID,
		Relation: RelationPrerequisite,
		Seed:     concepts.Seed{Name: "Limits"},
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if res.Edge.From != res.Concept.ID || res.Edge.To != fx.anchorID {
		t.Errorf("prerequisite edge runs %s -> %s, want new -> anchor", res.Edge.From, res.Edge.To)
	}

	m, err := fx.store.Repos().Graphs.FindMembership(ctx, fx.graphID, res.Concept.ID)
	if err != nil || m == nil {
		t.Fatalf("find membership: %v, %v", m, err)
	}
	if m.DepthTier != 1 {
		t.Errorf("prerequisite tier = %d, want anchor tier - 1 = 1", m.DepthTier)
	}
}

func TestInsertPrerequisiteTierFloorsAtOne(t *testing.T) {
	fx := newInsertFixture(t, 1)
	ctx := context.Background()

	res, err := fx.inserter.Insert(ctx, InsertRequest{
		UserID:   "u1",
		GraphID:  fx.graphID,
		AnchorID: fx.anchorID,
		Relation: RelationPrerequisite,
		Seed:     concepts.Seed{Name: "Arithmetic"},
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	m, err := fx.store.Repos().Graphs.FindMembership(ctx, fx.graphID, res.Concept.ID)
	if err != nil || m == nil {
		t.Fatalf("find membership: %v, %v", m, err)
	}
	if m.DepthTier != 1 {
		t.Errorf("tier = %d, want floor of 1", m.DepthTier)
	}
}

func TestInsertIsIdempotent(t *testing.T) {
	fx := newInsertFixture(t, 2)
	ctx := context.Background()

	req := InsertRequest{
		UserID:   "u1",
		GraphID:  fx.graphID,
		AnchorID: fx.anchorID,
		Relation: RelationExtension,
		Seed:     concepts.Seed{Name: "Chain Rule"},
	}
	first, err := fx.inserter.Insert(ctx, req)
	if err != nil {
		t.Fatalf("first insert: %v", err)
	}
	second, err := fx.inserter.Insert(ctx, req)
	if err != nil {
		t.Fatalf("second insert: %v", err)
	}
	if !second.Reused {
		t.Error("second insert should reuse the existing concept")
	}
	if second.Concept.ID != first.Concept.ID {
		t.Error("second insert created a different concept")
	}
	if second.Edge.ID != first.Edge.ID {
		t.Error("second insert created a duplicate edge")
	}
}

func TestInsertRepairsCycle(t *testing.T) {
	fx := newInsertFixture(t, 1)
	ctx := context.Background()

	// Anchor -> B via extension, then B -> Anchor via a second insert using B
	// as the new anchor. The closing edge would form a 2-cycle, so repair
	// must leave the graph acyclic.
	ext, err := fx.inserter.Insert(ctx, InsertRequest{
		UserID:   "u1",
		GraphID:  fx.graphID,
		AnchorID: fx.anchorID,
		Relation: RelationExtension,
		Seed:     concepts.Seed{Name: "Product Rule"},
	})
	if err != nil {
		t.Fatalf("extension insert: %v", err)
	}

	res, err := fx.inserter.Insert(ctx, InsertRequest{
		UserID:   "u1",
		GraphID:  fx.graphID,
		AnchorID: ext.Concept.ID,
		Relation: RelationExtension,
		Seed:     concepts.Seed{Name: "Derivatives"}, // dedups to the original anchor
	})
	if err != nil {
		t.Fatalf("cycle-forming insert: %v", err)
	}
	if !res.Reused {
		t.Fatal("expected dedup to resolve to the existing anchor concept")
	}
	if len(res.RemovedEdges) != 1 {
		t.Fatalf("removed %d edges, want 1", len(res.RemovedEdges))
	}

	edges, err := fx.store.Repos().Graphs.ListEdges(ctx, fx.graphID)
	if err != nil {
		t.Fatalf("list edges: %v", err)
	}
	members, err := fx.store.Repos().Graphs.ListMemberships(ctx, fx.graphID)
	if err != nil {
		t.Fatalf("list memberships: %v", err)
	}
	nodes := make([]uuid.UUID, len(members))
	for i, m := range members {
		nodes[i] = m.ConceptID
	}
	if !ValidateDAG(nodes, edges).IsDAG {
		t.Error("graph still cyclic after insert repair")
	}
}

func TestInsertUnknownAnchorFails(t *testing.T) {
	fx := newInsertFixture(t, 1)

	_, err := fx.inserter.Insert(context.Background(), InsertRequest{
		UserID:   "u1",
		GraphID:  fx.graphID,
		AnchorID: uuid.New(),
		Relation: RelationExtension,
		Seed:     concepts.Seed{Name: "Orphan"},
	})
	if err == nil {
		t.Fatal("expected error for unknown anchor")
	}
}

func TestInsertUpdatesLayoutPositions(t *testing.T) {
	fx := newInsertFixture(t, 1)
	ctx := context.Background()

	res, err := fx.inserter.Insert(ctx, InsertRequest{
		UserID:   "u1",
		GraphID:  fx.graphID,
		AnchorID: fx.anchorID,
		Relation: RelationExtension,
		Seed:     concepts.Seed{Name: "Chain Rule"},
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	anchor, err := fx.store.Repos().Graphs.FindMembership(ctx, fx.graphID, fx.anchorID)
	if err != nil {
		t.Fatalf("find anchor membership: %v", err)
	}
	added, err := fx.store.Repos().Graphs.FindMembership(ctx, fx.graphID, res.Concept.ID)
	if err != nil {
		t.Fatalf("find new membership: %v", err)
	}
	if added.PosY <= anchor.PosY {
		t.Errorf("new node Y %v should sit below anchor Y %v", added.PosY, anchor.PosY)
	}
}
