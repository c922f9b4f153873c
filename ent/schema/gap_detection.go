package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// GapDetection records one grader verdict that a wrong answer revealed a
// missing foundational concept. Rows are written by the grading collaborator
// and consumed only by the pattern matcher.
type GapDetection struct {
	ent.Schema
}

func (GapDetection) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.UUID("concept_id", uuid.UUID{}).
			Immutable(),
		field.String("missing_concept_name").
			NotEmpty(),
		field.Enum("severity").
			Values("narrow", "moderate", "broad"),
		field.Enum("status").
			Values("detected", "proposed", "accepted", "declined").
			Default("detected"),
		field.Text("explanation").
			Default(""),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (GapDetection) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "concept_id", "status"),
	}
}
