package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Concept is a unit of knowledge owned by one user, carrying both the
// proficiency estimate and the spaced-repetition schedule state.
type Concept struct {
	ent.Schema
}

func (Concept) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.String("normalized_name").
			NotEmpty().
			Comment("Trimmed, lowercased name. Dedup key, unique per user."),
		field.String("description").
			Default(""),
		field.JSON("key_terms", []string{}).
			Optional(),
		field.Float("proficiency").
			Default(0).
			Comment("Estimated success probability in [0,1]"),
		field.Float("confidence").
			Default(0).
			Comment("Certainty of the proficiency estimate in [0,1]"),
		field.Float("ease_factor").
			Default(2.5).
			Comment("SM-2 ease factor, floored at 1.3"),
		field.Int("interval_days").
			Default(1),
		field.Int("repetition_count").
			Default(0),
		field.Time("last_practiced").
			Optional().
			Nillable(),
		field.Time("next_due").
			Optional().
			Nillable(),
		field.Int("attempt_count").
			Default(0),
		field.Bool("deprecated").
			Default(false).
			Comment("Soft delete. Concepts are never hard-deleted."),
		field.Bool("manually_adjusted").
			Default(false).
			Comment("Set when the user overrides proficiency by hand"),
		field.Enum("source").
			Values("system", "user", "suggestion").
			Default("system"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Concept) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "normalized_name").
			Unique(),
		index.Fields("user_id", "next_due"),
	}
}
