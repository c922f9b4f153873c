package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// GraphMembership ties a concept into a unit graph, carrying its layout
// position and depth tier. The tier doubles as the tie-break signal for
// cycle repair.
type GraphMembership struct {
	ent.Schema
}

func (GraphMembership) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.UUID("graph_id", uuid.UUID{}),
		field.UUID("concept_id", uuid.UUID{}),
		field.Float("pos_x").
			Default(0),
		field.Float("pos_y").
			Default(0),
		field.Int("depth_tier").
			Default(1).
			Min(1),
	}
}

func (GraphMembership) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("graph_id", "concept_id").
			Unique(),
		index.Fields("concept_id"),
	}
}
