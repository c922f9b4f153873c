package graph

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/praxislearn/praxis/internal/concepts"
	"github.com/praxislearn/praxis/internal/store"
)

// Relation describes how a new concept attaches to its anchor.
type Relation string

const (
	// RelationPrerequisite inserts the concept below the anchor: the learner
	// should master it before the anchor.
	RelationPrerequisite Relation = "prerequisite"
	// RelationExtension inserts the concept above the anchor as a follow-on.
	RelationExtension Relation = "extension"
)

// InsertRequest describes one concept insertion into a unit graph.
type InsertRequest struct {
	UserID   string
	GraphID  uuid.UUID
	AnchorID uuid.UUID
	Relation Relation
	Seed     concepts.Seed
}

// InsertResult reports what the insertion did.
type InsertResult struct {
	Concept *concepts.Concept
	// Reused is true when an existing concept absorbed the seed instead of a
	// new record being created.
	Reused bool
	Edge   *concepts.Edge
	// RemovedEdges lists prior edges deleted to keep the graph acyclic.
	RemovedEdges []concepts.Edge
}

// Inserter adds concepts to unit graphs. Every insertion dedups the concept,
// wires the new edge, repairs any cycle the edge introduced, and relayouts
// the whole graph, all in one transaction.
type Inserter struct {
	store    *store.Store
	layout   LayoutConfig
	tieBreak TieBreak
	log      *zap.Logger
}

// NewInserter creates an Inserter with the default layout and tie-break.
func NewInserter(s *store.Store, log *zap.Logger) *Inserter {
	return &Inserter{
		store:    s,
		layout:   DefaultLayoutConfig(),
		tieBreak: PreferReversedTier,
		log:      log,
	}
}

// Insert attaches a concept to the graph relative to the anchor. The anchor
// must already be a member of the graph.
func (ins *Inserter) Insert(ctx context.Context, req InsertRequest) (*InsertResult, error) {
	if req.Relation != RelationPrerequisite && req.Relation != RelationExtension {
		return nil, fmt.Errorf("unknown relation %q", req.Relation)
	}

	var result InsertResult
	err := ins.store.WithTx(ctx, func(r *store.Repos) error {
		anchor, err := r.Graphs.FindMembership(ctx, req.GraphID, req.AnchorID)
		if err != nil {
			return err
		}
		if anchor == nil {
			return fmt.Errorf("anchor concept %s is not in graph %s", req.AnchorID, req.GraphID)
		}

		dedup := concepts.NewDeduper(r.Concepts, ins.log)
		c, reused, err := dedup.FindOrCreate(ctx, req.UserID, req.Seed)
		if err != nil {
			return err
		}
		result.Concept = c
		result.Reused = reused

		tier := anchor.DepthTier + 1
		from, to := req.AnchorID, c.ID
		if req.Relation == RelationPrerequisite {
			tier = anchor.DepthTier - 1
			if tier < 1 {
				tier = 1
			}
			from, to = c.ID, req.AnchorID
		}

		member, err := r.Graphs.FindMembership(ctx, req.GraphID, c.ID)
		if err != nil {
			return err
		}
		if member == nil {
			_, err = r.Graphs.CreateMembership(ctx, &concepts.Membership{
				ID:        uuid.New(),
				GraphID:   req.GraphID,
				ConceptID: c.ID,
				DepthTier: tier,
			})
			if err != nil {
				return err
			}
		}

		edge, err := r.Graphs.FindEdge(ctx, req.GraphID, from, to, concepts.EdgePrerequisite)
		if err != nil {
			return err
		}
		if edge == nil {
			edge, err = r.Graphs.CreateEdge(ctx, &concepts.Edge{
				ID:      uuid.New(),
				GraphID: req.GraphID,
				From:    from,
				To:      to,
				Type:    concepts.EdgePrerequisite,
			})
			if err != nil {
				return err
			}
		}
		result.Edge = edge

		removed, err := ins.repairAndRelayout(ctx, r, req.GraphID)
		if err != nil {
			return err
		}
		result.RemovedEdges = removed
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("insert concept into graph %s: %w", req.GraphID, err)
	}
	return &result, nil
}

// Relayout recomputes positions for every member of the graph, repairing
// cycles first. Used after bulk edits as well as by Insert.
func (ins *Inserter) Relayout(ctx context.Context, graphID uuid.UUID) ([]concepts.Edge, error) {
	var removed []concepts.Edge
	err := ins.store.WithTx(ctx, func(r *store.Repos) error {
		var err error
		removed, err = ins.repairAndRelayout(ctx, r, graphID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("relayout graph %s: %w", graphID, err)
	}
	return removed, nil
}

func (ins *Inserter) repairAndRelayout(ctx context.Context, r *store.Repos, graphID uuid.UUID) ([]concepts.Edge, error) {
	members, err := r.Graphs.ListMemberships(ctx, graphID)
	if err != nil {
		return nil, err
	}
	edges, err := r.Graphs.ListEdges(ctx, graphID)
	if err != nil {
		return nil, err
	}

	nodes := make([]uuid.UUID, len(members))
	tiers := make(map[uuid.UUID]int, len(members))
	for i, m := range members {
		nodes[i] = m.ConceptID
		tiers[m.ConceptID] = m.DepthTier
	}
	tierOf := func(id uuid.UUID) int { return tiers[id] }

	kept, removed := BreakCycles(nodes, edges, tierOf, ins.tieBreak)
	if len(removed) > 0 {
		ids := make([]uuid.UUID, len(removed))
		for i, e := range removed {
			ids[i] = e.ID
			ins.log.Warn("removed edge to break cycle",
				zap.String("graph_id", graphID.String()),
				zap.String("from", e.From.String()),
				zap.String("to", e.To.String()))
		}
		if err := r.Graphs.DeleteEdges(ctx, ids); err != nil {
			return nil, err
		}
	}

	positions := ins.layout.ComputeLayout(nodes, kept)
	for i := range members {
		pos := positions[members[i].ConceptID]
		members[i].PosX = pos.X
		members[i].PosY = pos.Y
	}
	if err := r.Graphs.UpdateMemberships(ctx, members); err != nil {
		return nil, err
	}
	return removed, nil
}
