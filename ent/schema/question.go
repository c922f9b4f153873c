package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Question is a single practice item in a concept's question bank.
type Question struct {
	ent.Schema
}

func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.UUID("concept_id", uuid.UUID{}),
		field.Enum("question_type").
			Values("mcq", "fill_blank", "flashcard", "free_response"),
		field.Text("text").
			NotEmpty(),
		field.String("answer").
			NotEmpty(),
		field.JSON("distractors", []string{}).
			Optional().
			Comment("Wrong options, populated for mcq only"),
		field.Text("explanation").
			Default(""),
		field.Float("difficulty").
			Min(0).
			Max(1),
		field.JSON("sources", []string{}).
			Optional().
			Comment("Cited source excerpts, when grounded"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Question) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("concept_id"),
	}
}
