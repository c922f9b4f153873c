// Code generated by ent, DO NOT EDIT.

package gapdetection

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the gapdetection type in the database.
	Label = "gap_detection"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldConceptID holds the string denoting the concept_id field in the database.
	FieldConceptID = "concept_id"
	// FieldMissingConceptName holds the string denoting the missing_concept_name field in the database.
	FieldMissingConceptName = "missing_concept_name"
	// FieldSeverity holds the string denoting the severity field in the database.
	FieldSeverity = "severity"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldExplanation holds the string denoting the explanation field in the database.
	FieldExplanation = "explanation"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the gapdetection in the database.
	Table = "gap_detections"
)

// Columns holds all SQL columns for gapdetection fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldConceptID,
	FieldMissingConceptName,
	FieldSeverity,
	FieldStatus,
	FieldExplanation,
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
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// MissingConceptNameValidator is a validator for the "missing_concept_name" field. It is called by the builders before save.
	MissingConceptNameValidator func(string) error
	// DefaultExplanation holds the default value on creation for the "explanation" field.
	DefaultExplanation string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Severity defines the type for the "severity" enum field.
type Severity string

// Severity values.
const (
	SeverityNarrow   Severity = "narrow"
	SeverityModerate Severity = "moderate"
	SeverityBroad    Severity = "broad"
)

func (s Severity) String() string {
	return string(s)
}

// SeverityValidator is a validator for the "severity" field enum values. It is called by the builders before save.
func SeverityValidator(s Severity) error {
	switch s {
	case SeverityNarrow, SeverityModerate, SeverityBroad:
		return nil
	default:
		return fmt.Errorf("gapdetection: invalid enum value for severity field: %q", s)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusDetected is the default value of the Status enum.
const DefaultStatus = StatusDetected

// Status values.
const (
	StatusDetected Status = "detected"
	StatusProposed Status = "proposed"
	StatusAccepted Status = "accepted"
	StatusDeclined Status = "declined"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusDetected, StatusProposed, StatusAccepted, StatusDeclined:
		return nil
	default:
		return fmt.Errorf("gapdetection: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the GapDetection queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByConceptID orders the results by the concept_id field.
func ByConceptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConceptID, opts...).ToFunc()
}

// ByMissingConceptName orders the results by the missing_concept_name field.
func ByMissingConceptName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMissingConceptName, opts...).ToFunc()
}

// BySeverity orders the results by the severity field.
func BySeverity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeverity, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByExplanation orders the results by the explanation field.
func ByExplanation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExplanation, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
