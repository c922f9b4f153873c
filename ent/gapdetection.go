// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/praxislearn/praxis/ent/gapdetection"
)

// GapDetection is the model entity for the GapDetection schema.
type GapDetection struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// ConceptID holds the value of the "concept_id" field.
	ConceptID uuid.UUID `json:"concept_id,omitempty"`
	// MissingConceptName holds the value of the "missing_concept_name" field.
	MissingConceptName string `json:"missing_concept_name,omitempty"`
	// Severity holds the value of the "severity" field.
	Severity gapdetection.Severity `json:"severity,omitempty"`
	// Status holds the value of the "status" field.
	Status gapdetection.Status `json:"status,omitempty"`
	// Explanation holds the value of the "explanation" field.
	Explanation string `json:"explanation,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GapDetection) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case gapdetection.FieldUserID, gapdetection.FieldMissingConceptName, gapdetection.FieldSeverity, gapdetection.FieldStatus, gapdetection.FieldExplanation:
			values[i] = new(sql.NullString)
		case gapdetection.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case gapdetection.FieldID, gapdetection.FieldConceptID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GapDetection fields.
func (_m *GapDetection) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case gapdetection.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case gapdetection.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case gapdetection.FieldConceptID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field concept_id", values[i])
			} else if value != nil {
				_m.ConceptID = *value
			}
		case gapdetection.FieldMissingConceptName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field missing_concept_name", values[i])
			} else if value.Valid {
				_m.MissingConceptName = value.String
			}
		case gapdetection.FieldSeverity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field severity", values[i])
			} else if value.Valid {
				_m.Severity = gapdetection.Severity(value.String)
			}
		case gapdetection.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = gapdetection.Status(value.String)
			}
		case gapdetection.FieldExplanation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field explanation", values[i])
			} else if value.Valid {
				_m.Explanation = value.String
			}
		case gapdetection.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GapDetection.
// This includes values selected through modifiers, order, etc.
func (_m *GapDetection) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this GapDetection.
// Note that you need to call GapDetection.Unwrap() before calling this method if this GapDetection
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GapDetection) Update() *GapDetectionUpdateOne {
	return NewGapDetectionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GapDetection entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GapDetection) Unwrap() *GapDetection {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GapDetection is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GapDetection) String() string {
	var builder strings.Builder
	builder.WriteString("GapDetection(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("concept_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConceptID))
	builder.WriteString(", ")
	builder.WriteString("missing_concept_name=")
	builder.WriteString(_m.MissingConceptName)
	builder.WriteString(", ")
	builder.WriteString("severity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Severity))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("explanation=")
	builder.WriteString(_m.Explanation)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// GapDetections is a parsable slice of GapDetection.
type GapDetections []*GapDetection
