// Code generated by ent, DO NOT EDIT.

package graphmembership

import (
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the graphmembership type in the database.
	Label = "graph_membership"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldGraphID holds the string denoting the graph_id field in the database.
	FieldGraphID = "graph_id"
	// FieldConceptID holds the string denoting the concept_id field in the database.
	FieldConceptID = "concept_id"
	// FieldPosX holds the string denoting the pos_x field in the database.
	FieldPosX = "pos_x"
	// FieldPosY holds the string denoting the pos_y field in the database.
	FieldPosY = "pos_y"
	// FieldDepthTier holds the string denoting the depth_tier field in the database.
	FieldDepthTier = "depth_tier"
	// Table holds the table name of the graphmembership in the database.
	Table = "graph_memberships"
)

// Columns holds all SQL columns for graphmembership fields.
var Columns = []string{
	FieldID,
	FieldGraphID,
	FieldConceptID,
	FieldPosX,
	FieldPosY,
	FieldDepthTier,
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
	// DefaultPosX holds the default value on creation for the "pos_x" field.
	DefaultPosX float64
	// DefaultPosY holds the default value on creation for the "pos_y" field.
	DefaultPosY float64
	// DefaultDepthTier holds the default value on creation for the "depth_tier" field.
	DefaultDepthTier int
	// DepthTierValidator is a validator for the "depth_tier" field. It is called by the builders before save.
	DepthTierValidator func(int) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the GraphMembership queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByGraphID orders the results by the graph_id field.
func ByGraphID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGraphID, opts...).ToFunc()
}

// ByConceptID orders the results by the concept_id field.
func ByConceptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConceptID, opts...).ToFunc()
}

// ByPosX orders the results by the pos_x field.
func ByPosX(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosX, opts...).ToFunc()
}

// ByPosY orders the results by the pos_y field.
func ByPosY(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosY, opts...).ToFunc()
}

// ByDepthTier orders the results by the depth_tier field.
func ByDepthTier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDepthTier, opts...).ToFunc()
}
