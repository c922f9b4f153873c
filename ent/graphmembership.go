// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/praxislearn/praxis/ent/graphmembership"
)

// GraphMembership is the model entity for the GraphMembership schema.
type GraphMembership struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// GraphID holds the value of the "graph_id" field.
	GraphID uuid.UUID `json:"graph_id,omitempty"`
	// ConceptID holds the value of the "concept_id" field.
	ConceptID uuid.UUID `json:"concept_id,omitempty"`
	// PosX holds the value of the "pos_x" field.
	PosX float64 `json:"pos_x,omitempty"`
	// PosY holds the value of the "pos_y" field.
	PosY float64 `json:"pos_y,omitempty"`
	// DepthTier holds the value of the "depth_tier" field.
	DepthTier    int `json:"depth_tier,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GraphMembership) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case graphmembership.FieldPosX, graphmembership.FieldPosY:
			values[i] = new(sql.NullFloat64)
		case graphmembership.FieldDepthTier:
			values[i] = new(sql.NullInt64)
		case graphmembership.FieldID, graphmembership.FieldGraphID, graphmembership.FieldConceptID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GraphMembership fields.
func (_m *GraphMembership) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case graphmembership.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case graphmembership.FieldGraphID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field graph_id", values[i])
			} else if value != nil {
				_m.GraphID = *value
			}
		case graphmembership.FieldConceptID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field concept_id", values[i])
			} else if value != nil {
				_m.ConceptID = *value
			}
		case graphmembership.FieldPosX:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field pos_x", values[i])
			} else if value.Valid {
				_m.PosX = value.Float64
			}
		case graphmembership.FieldPosY:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field pos_y", values[i])
			} else if value.Valid {
				_m.PosY = value.Float64
			}
		case graphmembership.FieldDepthTier:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field depth_tier", values[i])
			} else if value.Valid {
				_m.DepthTier = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GraphMembership.
// This includes values selected through modifiers, order, etc.
func (_m *GraphMembership) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this GraphMembership.
// Note that you need to call GraphMembership.Unwrap() before calling this method if this GraphMembership
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GraphMembership) Update() *GraphMembershipUpdateOne {
	return NewGraphMembershipClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GraphMembership entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GraphMembership) Unwrap() *GraphMembership {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GraphMembership is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GraphMembership) String() string {
	var builder strings.Builder
	builder.WriteString("GraphMembership(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("graph_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.GraphID))
	builder.WriteString(", ")
	builder.WriteString("concept_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConceptID))
	builder.WriteString(", ")
	builder.WriteString("pos_x=")
	builder.WriteString(fmt.Sprintf("%v", _m.PosX))
	builder.WriteString(", ")
	builder.WriteString("pos_y=")
	builder.WriteString(fmt.Sprintf("%v", _m.PosY))
	builder.WriteString(", ")
	builder.WriteString("depth_tier=")
	builder.WriteString(fmt.Sprintf("%v", _m.DepthTier))
	builder.WriteByte(')')
	return builder.String()
}

// GraphMemberships is a parsable slice of GraphMembership.
type GraphMemberships []*GraphMembership
