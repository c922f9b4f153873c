// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/praxislearn/praxis/ent/conceptedge"
)

// ConceptEdge is the model entity for the ConceptEdge schema.
type ConceptEdge struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// GraphID holds the value of the "graph_id" field.
	GraphID uuid.UUID `json:"graph_id,omitempty"`
	// FromConceptID holds the value of the "from_concept_id" field.
	FromConceptID uuid.UUID `json:"from_concept_id,omitempty"`
	// ToConceptID holds the value of the "to_concept_id" field.
	ToConceptID uuid.UUID `json:"to_concept_id,omitempty"`
	// EdgeType holds the value of the "edge_type" field.
	EdgeType conceptedge.EdgeType `json:"edge_type,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ConceptEdge) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case conceptedge.FieldEdgeType:
			values[i] = new(sql.NullString)
		case conceptedge.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case conceptedge.FieldID, conceptedge.FieldGraphID, conceptedge.FieldFromConceptID, conceptedge.FieldToConceptID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ConceptEdge fields.
func (_m *ConceptEdge) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case conceptedge.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case conceptedge.FieldGraphID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field graph_id", values[i])
			} else if value != nil {
				_m.GraphID = *value
			}
		case conceptedge.FieldFromConceptID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field from_concept_id", values[i])
			} else if value != nil {
				_m.FromConceptID = *value
			}
		case conceptedge.FieldToConceptID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field to_concept_id", values[i])
			} else if value != nil {
				_m.ToConceptID = *value
			}
		case conceptedge.FieldEdgeType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field edge_type", values[i])
			} else if value.Valid {
				_m.EdgeType = conceptedge.EdgeType(value.String)
			}
		case conceptedge.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ConceptEdge.
// This includes values selected through modifiers, order, etc.
func (_m *ConceptEdge) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ConceptEdge.
// Note that you need to call ConceptEdge.Unwrap() before calling this method if this ConceptEdge
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ConceptEdge) Update() *ConceptEdgeUpdateOne {
	return NewConceptEdgeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ConceptEdge entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ConceptEdge) Unwrap() *ConceptEdge {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ConceptEdge is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ConceptEdge) String() string {
	var builder strings.Builder
	builder.WriteString("ConceptEdge(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("graph_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.GraphID))
	builder.WriteString(", ")
	builder.WriteString("from_concept_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.FromConceptID))
	builder.WriteString(", ")
	builder.WriteString("to_concept_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ToConceptID))
	builder.WriteString(", ")
	builder.WriteString("edge_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.EdgeType))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ConceptEdges is a parsable slice of ConceptEdge.
type ConceptEdges []*ConceptEdge
