// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttemptsColumns holds the columns for the "attempts" table.
	AttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "question_id", Type: field.TypeUUID},
		{Name: "concept_id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeUUID},
		{Name: "answer", Type: field.TypeString, Size: 2147483647},
		{Name: "correct", Type: field.TypeBool},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "time_taken_ms", Type: field.TypeInt64},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AttemptsTable holds the schema information for the "attempts" table.
	AttemptsTable = &schema.Table{
		Name:       "attempts",
		Columns:    AttemptsColumns,
		PrimaryKey: []*schema.Column{AttemptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attempt_question_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[1]},
			},
			{
				Name:    "attempt_concept_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[2]},
			},
			{
				Name:    "attempt_session_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[4]},
			},
			{
				Name:    "attempt_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[3], AttemptsColumns[9]},
			},
		},
	}
	// ConceptsColumns holds the columns for the "concepts" table.
	ConceptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "normalized_name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Default: ""},
		{Name: "key_terms", Type: field.TypeJSON, Nullable: true},
		{Name: "proficiency", Type: field.TypeFloat64, Default: 0},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0},
		{Name: "ease_factor", Type: field.TypeFloat64, Default: 2.5},
		{Name: "interval_days", Type: field.TypeInt, Default: 1},
		{Name: "repetition_count", Type: field.TypeInt, Default: 0},
		{Name: "last_practiced", Type: field.TypeTime, Nullable: true},
		{Name: "next_due", Type: field.TypeTime, Nullable: true},
		{Name: "attempt_count", Type: field.TypeInt, Default: 0},
		{Name: "deprecated", Type: field.TypeBool, Default: false},
		{Name: "manually_adjusted", Type: field.TypeBool, Default: false},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"system", "user", "suggestion"}, Default: "system"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ConceptsTable holds the schema information for the "concepts" table.
	ConceptsTable = &schema.Table{
		Name:       "concepts",
		Columns:    ConceptsColumns,
		PrimaryKey: []*schema.Column{ConceptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "concept_user_id_normalized_name",
				Unique:  true,
				Columns: []*schema.Column{ConceptsColumns[1], ConceptsColumns[3]},
			},
			{
				Name:    "concept_user_id_next_due",
				Unique:  false,
				Columns: []*schema.Column{ConceptsColumns[1], ConceptsColumns[12]},
			},
		},
	}
	// ConceptEdgesColumns holds the columns for the "concept_edges" table.
	ConceptEdgesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "graph_id", Type: field.TypeUUID},
		{Name: "from_concept_id", Type: field.TypeUUID},
		{Name: "to_concept_id", Type: field.TypeUUID},
		{Name: "edge_type", Type: field.TypeEnum, Enums: []string{"prerequisite", "helpful"}, Default: "prerequisite"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ConceptEdgesTable holds the schema information for the "concept_edges" table.
	ConceptEdgesTable = &schema.Table{
		Name:       "concept_edges",
		Columns:    ConceptEdgesColumns,
		PrimaryKey: []*schema.Column{ConceptEdgesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "conceptedge_graph_id_from_concept_id_to_concept_id_edge_type",
				Unique:  true,
				Columns: []*schema.Column{ConceptEdgesColumns[1], ConceptEdgesColumns[2], ConceptEdgesColumns[3], ConceptEdgesColumns[4]},
			},
			{
				Name:    "conceptedge_from_concept_id",
				Unique:  false,
				Columns: []*schema.Column{ConceptEdgesColumns[2]},
			},
			{
				Name:    "conceptedge_to_concept_id",
				Unique:  false,
				Columns: []*schema.Column{ConceptEdgesColumns[3]},
			},
		},
	}
	// GapDetectionsColumns holds the columns for the "gap_detections" table.
	GapDetectionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeString},
		{Name: "concept_id", Type: field.TypeUUID},
		{Name: "missing_concept_name", Type: field.TypeString},
		{Name: "severity", Type: field.TypeEnum, Enums: []string{"narrow", "moderate", "broad"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"detected", "proposed", "accepted", "declined"}, Default: "detected"},
		{Name: "explanation", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// GapDetectionsTable holds the schema information for the "gap_detections" table.
	GapDetectionsTable = &schema.Table{
		Name:       "gap_detections",
		Columns:    GapDetectionsColumns,
		PrimaryKey: []*schema.Column{GapDetectionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "gapdetection_user_id_concept_id_status",
				Unique:  false,
				Columns: []*schema.Column{GapDetectionsColumns[1], GapDetectionsColumns[2], GapDetectionsColumns[5]},
			},
		},
	}
	// GraphMembershipsColumns holds the columns for the "graph_memberships" table.
	GraphMembershipsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "graph_id", Type: field.TypeUUID},
		{Name: "concept_id", Type: field.TypeUUID},
		{Name: "pos_x", Type: field.TypeFloat64, Default: 0},
		{Name: "pos_y", Type: field.TypeFloat64, Default: 0},
		{Name: "depth_tier", Type: field.TypeInt, Default: 1},
	}
	// GraphMembershipsTable holds the schema information for the "graph_memberships" table.
	GraphMembershipsTable = &schema.Table{
		Name:       "graph_memberships",
		Columns:    GraphMembershipsColumns,
		PrimaryKey: []*schema.Column{GraphMembershipsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "graphmembership_graph_id_concept_id",
				Unique:  true,
				Columns: []*schema.Column{GraphMembershipsColumns[1], GraphMembershipsColumns[2]},
			},
			{
				Name:    "graphmembership_concept_id",
				Unique:  false,
				Columns: []*schema.Column{GraphMembershipsColumns[2]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// PracticeSessionsColumns holds the columns for the "practice_sessions" table.
	PracticeSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeString},
		{Name: "graph_id", Type: field.TypeUUID, Nullable: true},
		{Name: "question_count", Type: field.TypeInt, Default: 0},
		{Name: "correct_count", Type: field.TypeInt, Default: 0},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "complete"}, Default: "active"},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "ended_at", Type: field.TypeTime, Nullable: true},
	}
	// PracticeSessionsTable holds the schema information for the "practice_sessions" table.
	PracticeSessionsTable = &schema.Table{
		Name:       "practice_sessions",
		Columns:    PracticeSessionsColumns,
		PrimaryKey: []*schema.Column{PracticeSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "practicesession_user_id_status",
				Unique:  false,
				Columns: []*schema.Column{PracticeSessionsColumns[1], PracticeSessionsColumns[5]},
			},
		},
	}
	// QuestionsColumns holds the columns for the "questions" table.
	QuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "concept_id", Type: field.TypeUUID},
		{Name: "question_type", Type: field.TypeEnum, Enums: []string{"mcq", "fill_blank", "flashcard", "free_response"}},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "answer", Type: field.TypeString},
		{Name: "distractors", Type: field.TypeJSON, Nullable: true},
		{Name: "explanation", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "difficulty", Type: field.TypeFloat64},
		{Name: "sources", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// QuestionsTable holds the schema information for the "questions" table.
	QuestionsTable = &schema.Table{
		Name:       "questions",
		Columns:    QuestionsColumns,
		PrimaryKey: []*schema.Column{QuestionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "question_concept_id",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[1]},
			},
		},
	}
	// UnitGraphsColumns holds the columns for the "unit_graphs" table.
	UnitGraphsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UnitGraphsTable holds the schema information for the "unit_graphs" table.
	UnitGraphsTable = &schema.Table{
		Name:       "unit_graphs",
		Columns:    UnitGraphsColumns,
		PrimaryKey: []*schema.Column{UnitGraphsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "unitgraph_user_id",
				Unique:  false,
				Columns: []*schema.Column{UnitGraphsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptsTable,
		ConceptsTable,
		ConceptEdgesTable,
		GapDetectionsTable,
		GraphMembershipsTable,
		LlmRequestEventsTable,
		PracticeSessionsTable,
		QuestionsTable,
		UnitGraphsTable,
	}
)

func init() {
}
