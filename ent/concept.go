// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/praxislearn/praxis/ent/concept"
)

// Concept is the model entity for the Concept schema.
type Concept struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Trimmed, lowercased name. Dedup key, unique per user.
	NormalizedName string `json:"normalized_name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// KeyTerms holds the value of the "key_terms" field.
	KeyTerms []string `json:"key_terms,omitempty"`
	// Estimated success probability in [0,1]
	Proficiency float64 `json:"proficiency,omitempty"`
	// Certainty of the proficiency estimate in [0,1]
	Confidence float64 `json:"confidence,omitempty"`
	// SM-2 ease factor, floored at 1.3
	EaseFactor float64 `json:"ease_factor,omitempty"`
	// IntervalDays holds the value of the "interval_days" field.
	IntervalDays int `json:"interval_days,omitempty"`
	// RepetitionCount holds the value of the "repetition_count" field.
	RepetitionCount int `json:"repetition_count,omitempty"`
	// LastPracticed holds the value of the "last_practiced" field.
	LastPracticed *time.Time `json:"last_practiced,omitempty"`
	// NextDue holds the value of the "next_due" field.
	NextDue *time.Time `json:"next_due,omitempty"`
	// AttemptCount holds the value of the "attempt_count" field.
	AttemptCount int `json:"attempt_count,omitempty"`
	// Soft delete. Concepts are never hard-deleted.
	Deprecated bool `json:"deprecated,omitempty"`
	// Set when the user overrides proficiency by hand
	ManuallyAdjusted bool `json:"manually_adjusted,omitempty"`
	// Source holds the value of the "source" field.
	Source concept.Source `json:"source,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Concept) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case concept.FieldKeyTerms:
			values[i] = new([]byte)
		case concept.FieldDeprecated, concept.FieldManuallyAdjusted:
			values[i] = new(sql.NullBool)
		case concept.FieldProficiency, concept.FieldConfidence, concept.FieldEaseFactor:
			values[i] = new(sql.NullFloat64)
		case concept.FieldIntervalDays, concept.FieldRepetitionCount, concept.FieldAttemptCount:
			values[i] = new(sql.NullInt64)
		case concept.FieldUserID, concept.FieldName, concept.FieldNormalizedName, concept.FieldDescription, concept.FieldSource:
			values[i] = new(sql.NullString)
		case concept.FieldLastPracticed, concept.FieldNextDue, concept.FieldCreatedAt, concept.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case concept.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Concept fields.
func (_m *Concept) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case concept.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case concept.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case concept.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case concept.FieldNormalizedName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field normalized_name", values[i])
			} else if value.Valid {
				_m.NormalizedName = value.String
			}
		case concept.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case concept.FieldKeyTerms:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field key_terms", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.KeyTerms); err != nil {
					return fmt.Errorf("unmarshal field key_terms: %w", err)
				}
			}
		case concept.FieldProficiency:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field proficiency", values[i])
			} else if value.Valid {
				_m.Proficiency = value.Float64
			}
		case concept.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case concept.FieldEaseFactor:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ease_factor", values[i])
			} else if value.Valid {
				_m.EaseFactor = value.Float64
			}
		case concept.FieldIntervalDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field interval_days", values[i])
			} else if value.Valid {
				_m.IntervalDays = int(value.Int64)
			}
		case concept.FieldRepetitionCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field repetition_count", values[i])
			} else if value.Valid {
				_m.RepetitionCount = int(value.Int64)
			}
		case concept.FieldLastPracticed:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_practiced", values[i])
			} else if value.Valid {
				_m.LastPracticed = new(time.Time)
				*_m.LastPracticed = value.Time
			}
		case concept.FieldNextDue:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_due", values[i])
			} else if value.Valid {
				_m.NextDue = new(time.Time)
				*_m.NextDue = value.Time
			}
		case concept.FieldAttemptCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_count", values[i])
			} else if value.Valid {
				_m.AttemptCount = int(value.Int64)
			}
		case concept.FieldDeprecated:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field deprecated", values[i])
			} else if value.Valid {
				_m.Deprecated = value.Bool
			}
		case concept.FieldManuallyAdjusted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field manually_adjusted", values[i])
			} else if value.Valid {
				_m.ManuallyAdjusted = value.Bool
			}
		case concept.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = concept.Source(value.String)
			}
		case concept.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case concept.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Concept.
// This includes values selected through modifiers, order, etc.
func (_m *Concept) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Concept.
// Note that you need to call Concept.Unwrap() before calling this method if this Concept
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Concept) Update() *ConceptUpdateOne {
	return NewConceptClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Concept entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Concept) Unwrap() *Concept {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Concept is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Concept) String() string {
	var builder strings.Builder
	builder.WriteString("Concept(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("normalized_name=")
	builder.WriteString(_m.NormalizedName)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("key_terms=")
	builder.WriteString(fmt.Sprintf("%v", _m.KeyTerms))
	builder.WriteString(", ")
	builder.WriteString("proficiency=")
	builder.WriteString(fmt.Sprintf("%v", _m.Proficiency))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("ease_factor=")
	builder.WriteString(fmt.Sprintf("%v", _m.EaseFactor))
	builder.WriteString(", ")
	builder.WriteString("interval_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.IntervalDays))
	builder.WriteString(", ")
	builder.WriteString("repetition_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RepetitionCount))
	builder.WriteString(", ")
	if v := _m.LastPracticed; v != nil {
		builder.WriteString("last_practiced=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.NextDue; v != nil {
		builder.WriteString("next_due=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("attempt_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.AttemptCount))
	builder.WriteString(", ")
	builder.WriteString("deprecated=")
	builder.WriteString(fmt.Sprintf("%v", _m.Deprecated))
	builder.WriteString(", ")
	builder.WriteString("manually_adjusted=")
	builder.WriteString(fmt.Sprintf("%v", _m.ManuallyAdjusted))
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(fmt.Sprintf("%v", _m.Source))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Concepts is a parsable slice of Concept.
type Concepts []*Concept
