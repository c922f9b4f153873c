package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Attempt is the immutable log of one answered question. The id is the
// caller-supplied idempotency key: a duplicate submission hits the unique
// primary key and the whole transaction is discarded.
type Attempt struct {
	ent.Schema
}

func (Attempt) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.UUID("question_id", uuid.UUID{}).
			Immutable(),
		field.UUID("concept_id", uuid.UUID{}).
			Immutable(),
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.UUID("session_id", uuid.UUID{}).
			Immutable(),
		field.Text("answer").
			Immutable(),
		field.Bool("correct").
			Immutable(),
		field.Float("score").
			Min(0).
			Max(1).
			Immutable(),
		field.Int64("time_taken_ms").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Attempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("question_id"),
		index.Fields("concept_id"),
		index.Fields("session_id"),
		index.Fields("user_id", "created_at"),
	}
}
