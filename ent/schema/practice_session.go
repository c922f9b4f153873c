package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// PracticeSession groups attempts and carries the running counters that the
// submit-attempt transaction updates alongside the attempt log.
type PracticeSession struct {
	ent.Schema
}

func (PracticeSession) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.UUID("graph_id", uuid.UUID{}).
			Optional().
			Nillable(),
		field.Int("question_count").
			Default(0),
		field.Int("correct_count").
			Default(0),
		field.Enum("status").
			Values("active", "complete").
			Default("active"),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("ended_at").
			Optional().
			Nillable(),
	}
}

func (PracticeSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "status"),
	}
}
