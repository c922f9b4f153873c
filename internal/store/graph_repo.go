package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/praxislearn/praxis/ent"
	"github.com/praxislearn/praxis/ent/conceptedge"
	"github.com/praxislearn/praxis/ent/graphmembership"
	"github.com/praxislearn/praxis/ent/unitgraph"
	"github.com/praxislearn/praxis/internal/concepts"
)

type graphRepo struct {
	client *ent.Client
}

func (r *graphRepo) CreateGraph(ctx context.Context, g *concepts.UnitGraph) (*concepts.UnitGraph, error) {
	builder := r.client.UnitGraph.Create().
		SetUserID(g.UserID).
		SetName(g.Name)
	if g.ID != uuid.Nil {
		builder = builder.SetID(g.ID)
	}
	row, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create graph %q: %w", g.Name, err)
	}
	return &concepts.UnitGraph{ID: row.ID, UserID: row.UserID, Name: row.Name}, nil
}

func (r *graphRepo) GetGraph(ctx context.Context, id uuid.UUID) (*concepts.UnitGraph, error) {
	row, err := r.client.UnitGraph.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get graph %s: %w", id, err)
	}
	return &concepts.UnitGraph{ID: row.ID, UserID: row.UserID, Name: row.Name}, nil
}

func (r *graphRepo) ListGraphs(ctx context.Context, userID string) ([]concepts.UnitGraph, error) {
	rows, err := r.client.UnitGraph.Query().
		Where(unitgraph.UserID(userID)).
		Order(ent.Asc(unitgraph.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list graphs for %s: %w", userID, err)
	}
	out := make([]concepts.UnitGraph, len(rows))
	for i, row := range rows {
		out[i] = concepts.UnitGraph{ID: row.ID, UserID: row.UserID, Name: row.Name}
	}
	return out, nil
}

func (r *graphRepo) ListEdges(ctx context.Context, graphID uuid.UUID) ([]concepts.Edge, error) {
	rows, err := r.client.ConceptEdge.Query().
		Where(conceptedge.GraphID(graphID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list edges for graph %s: %w", graphID, err)
	}
	out := make([]concepts.Edge, len(rows))
	for i, row := range rows {
		out[i] = edgeFromEnt(row)
	}
	return out, nil
}

func (r *graphRepo) FindEdge(ctx context.Context, graphID, from, to uuid.UUID, t concepts.EdgeType) (*concepts.Edge, error) {
	row, err := r.client.ConceptEdge.Query().
		Where(
			conceptedge.GraphID(graphID),
			conceptedge.FromConceptID(from),
			conceptedge.ToConceptID(to),
			conceptedge.EdgeTypeEQ(conceptedge.EdgeType(t)),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find edge: %w", err)
	}
	e := edgeFromEnt(row)
	return &e, nil
}

func (r *graphRepo) CreateEdge(ctx context.Context, e *concepts.Edge) (*concepts.Edge, error) {
	builder := r.client.ConceptEdge.Create().
		SetGraphID(e.GraphID).
		SetFromConceptID(e.From).
		SetToConceptID(e.To).
		SetEdgeType(conceptedge.EdgeType(e.Type))
	if e.ID != uuid.Nil {
		builder = builder.SetID(e.ID)
	}
	row, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create edge: %w", err)
	}
	created := edgeFromEnt(row)
	return &created, nil
}

func (r *graphRepo) DeleteEdges(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.client.ConceptEdge.Delete().
		Where(conceptedge.IDIn(ids...)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete edges: %w", err)
	}
	return nil
}

func (r *graphRepo) ListMemberships(ctx context.Context, graphID uuid.UUID) ([]concepts.Membership, error) {
	rows, err := r.client.GraphMembership.Query().
		Where(graphmembership.GraphID(graphID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list memberships for graph %s: %w", graphID, err)
	}
	out := make([]concepts.Membership, len(rows))
	for i, row := range rows {
		out[i] = membershipFromEnt(row)
	}
	return out, nil
}

func (r *graphRepo) FindMembership(ctx context.Context, graphID, conceptID uuid.UUID) (*concepts.Membership, error) {
	row, err := r.client.GraphMembership.Query().
		Where(
			graphmembership.GraphID(graphID),
			graphmembership.ConceptID(conceptID),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find membership: %w", err)
	}
	m := membershipFromEnt(row)
	return &m, nil
}

func (r *graphRepo) CreateMembership(ctx context.Context, m *concepts.Membership) (*concepts.Membership, error) {
	builder := r.client.GraphMembership.Create().
		SetGraphID(m.GraphID).
		SetConceptID(m.ConceptID).
		SetPosX(m.PosX).
		SetPosY(m.PosY).
		SetDepthTier(m.DepthTier)
	if m.ID != uuid.Nil {
		builder = builder.SetID(m.ID)
	}
	row, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create membership: %w", err)
	}
	created := membershipFromEnt(row)
	return &created, nil
}

func (r *graphRepo) UpdateMemberships(ctx context.Context, ms []concepts.Membership) error {
	for _, m := range ms {
		_, err := r.client.GraphMembership.UpdateOneID(m.ID).
			SetPosX(m.PosX).
			SetPosY(m.PosY).
			SetDepthTier(m.DepthTier).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update membership %s: %w", m.ID, err)
		}
	}
	return nil
}

func (r *graphRepo) ListPrerequisiteSources(ctx context.Context, graphID uuid.UUID) (map[uuid.UUID]bool, error) {
	rows, err := r.client.ConceptEdge.Query().
		Where(
			conceptedge.GraphID(graphID),
			conceptedge.EdgeTypeEQ(conceptedge.EdgeTypePrerequisite),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list prerequisite sources: %w", err)
	}
	out := make(map[uuid.UUID]bool, len(rows))
	for _, row := range rows {
		out[row.FromConceptID] = true
	}
	return out, nil
}

func edgeFromEnt(row *ent.ConceptEdge) concepts.Edge {
	return concepts.Edge{
		ID:      row.ID,
		GraphID: row.GraphID,
		From:    row.FromConceptID,
		To:      row.ToConceptID,
		Type:    concepts.EdgeType(row.EdgeType),
	}
}

func membershipFromEnt(row *ent.GraphMembership) concepts.Membership {
	return concepts.Membership{
		ID:        row.ID,
		GraphID:   row.GraphID,
		ConceptID: row.ConceptID,
		PosX:      row.PosX,
		PosY:      row.PosY,
		DepthTier: row.DepthTier,
	}
}
