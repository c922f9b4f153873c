package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// UnitGraph is a named grouping of concepts (one curriculum unit).
type UnitGraph struct {
	ent.Schema
}

func (UnitGraph) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (UnitGraph) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}
