package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// ConceptEdge is a directed prerequisite relation scoped to one unit graph:
// from_concept should be learned before to_concept. Within a graph the edge
// set must form a DAG.
type ConceptEdge struct {
	ent.Schema
}

func (ConceptEdge) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.UUID("graph_id", uuid.UUID{}),
		field.UUID("from_concept_id", uuid.UUID{}),
		field.UUID("to_concept_id", uuid.UUID{}),
		field.Enum("edge_type").
			Values("prerequisite", "helpful").
			Default("prerequisite"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (ConceptEdge) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("graph_id", "from_concept_id", "to_concept_id", "edge_type").
			Unique(),
		index.Fields("from_concept_id"),
		index.Fields("to_concept_id"),
	}
}
