// Code generated by ent, DO NOT EDIT.

package conceptedge

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the conceptedge type in the database.
	Label = "concept_edge"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldGraphID holds the string denoting the graph_id field in the database.
	FieldGraphID = "graph_id"
	// FieldFromConceptID holds the string denoting the from_concept_id field in the database.
	FieldFromConceptID = "from_concept_id"
	// FieldToConceptID holds the string denoting the to_concept_id field in the database.
	FieldToConceptID = "to_concept_id"
	// FieldEdgeType holds the string denoting the edge_type field in the database.
	FieldEdgeType = "edge_type"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the conceptedge in the database.
	Table = "concept_edges"
)

// Columns holds all SQL columns for conceptedge fields.
var Columns = []string{
	FieldID,
	FieldGraphID,
	FieldFromConceptID,
	FieldToConceptID,
	FieldEdgeType,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// EdgeType defines the type for the "edge_type" enum field.
type EdgeType string

// EdgeTypePrerequisite is the default value of the EdgeType enum.
const DefaultEdgeType = EdgeTypePrerequisite

// EdgeType values.
const (
	EdgeTypePrerequisite EdgeType = "prerequisite"
	EdgeTypeHelpful      EdgeType = "helpful"
)

func (et EdgeType) String() string {
	return string(et)
}

// EdgeTypeValidator is a validator for the "edge_type" field enum values. It is called by the builders before save.
func EdgeTypeValidator(et EdgeType) error {
	switch et {
	case EdgeTypePrerequisite, EdgeTypeHelpful:
		return nil
	default:
		return fmt.Errorf("conceptedge: invalid enum value for edge_type field: %q", et)
	}
}

// OrderOption defines the ordering options for the ConceptEdge queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByGraphID orders the results by the graph_id field.
func ByGraphID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGraphID, opts...).ToFunc()
}

// ByFromConceptID orders the results by the from_concept_id field.
func ByFromConceptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFromConceptID, opts...).ToFunc()
}

// ByToConceptID orders the results by the to_concept_id field.
func ByToConceptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToConceptID, opts...).ToFunc()
}

// ByEdgeType orders the results by the edge_type field.
func ByEdgeType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEdgeType, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
