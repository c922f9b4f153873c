// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/praxislearn/praxis/ent/concept"
	"github.com/praxislearn/praxis/ent/predicate"
)

// ConceptUpdate is the builder for updating Concept entities.
type ConceptUpdate struct {
	config
	hooks    []Hook
	mutation *ConceptMutation
}

// Where appends a list predicates to the ConceptUpdate builder.
func (_u *ConceptUpdate) Where(ps ...predicate.Concept) *ConceptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ConceptUpdate) SetName(v string) *ConceptUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ConceptUpdate) SetNillableName(v *string) *ConceptUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetNormalizedName sets the "normalized_name" field.
func (_u *ConceptUpdate) SetNormalizedName(v string) *ConceptUpdate {
	_u.mutation.SetNormalizedName(v)
	return _u
}

// SetNillableNormalizedName sets the "normalized_name" field if the given value is not nil.
func (_u *ConceptUpdate) SetNillableNormalizedName(v *string) *ConceptUpdate {
	if v != nil {
		_u.SetNormalizedName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ConceptUpdate) SetDescription(v string) *ConceptUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ConceptUpdate) SetNillableDescription(v *string) *ConceptUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetKeyTerms sets the "key_terms" field.
func (_u *ConceptUpdate) SetKeyTerms(v []string) *ConceptUpdate {
	_u.mutation.SetKeyTerms(v)
	return _u
}

// AppendKeyTerms appends value to the "key_terms" field.
func (_u *ConceptUpdate) AppendKeyTerms(v []string) *ConceptUpdate {
	_u.mutation.AppendKeyTerms(v)
	return _u
}

// ClearKeyTerms clears the value of the "key_terms" field.
func (_u *ConceptUpdate) ClearKeyTerms() *ConceptUpdate {
	_u.mutation.ClearKeyTerms()
	return _u
}

// SetProficiency sets the "proficiency" field.
func (_u *ConceptUpdate) SetProficiency(v float64) *ConceptUpdate {
	_u.mutation.ResetProficiency()
	_u.mutation.SetProficiency(v)
	return _u
}

// SetNillableProficiency sets the "proficiency" field if the given value is not nil.
func (_u *ConceptUpdate) SetNillableProficiency(v *float64) *ConceptUpdate {
	if v != nil {
		_u.SetProficiency(*v)
	}
	return _u
}

// AddProficiency adds value to the "proficiency" field.
func (_u *ConceptUpdate) AddProficiency(v float64) *ConceptUpdate {
	_u.mutation.AddProficiency(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ConceptUpdate) SetConfidence(v float64) *ConceptUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ConceptUpdate) SetNillableConfidence(v *float64) *ConceptUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ConceptUpdate) AddConfidence(v float64) *ConceptUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetEaseFactor sets the "ease_factor" field.
func (_u *ConceptUpdate) SetEaseFactor(v float64) *ConceptUpdate {
	_u.mutation.ResetEaseFactor()
	_u.mutation.SetEaseFactor(v)
	return _u
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_u *ConceptUpdate) SetNillableEaseFactor(v *float64) *ConceptUpdate {
	if v != nil {
		_u.SetEaseFactor(*v)
	}
	return _u
}

// AddEaseFactor adds value to the "ease_factor" field.
func (_u *ConceptUpdate) AddEaseFactor(v float64) *ConceptUpdate {
	_u.mutation.AddEaseFactor(v)
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *ConceptUpdate) SetIntervalDays(v int) *ConceptUpdate {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *ConceptUpdate) SetNillableIntervalDays(v *int) *ConceptUpdate {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *ConceptUpdate) AddIntervalDays(v int) *ConceptUpdate {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetRepetitionCount sets the "repetition_count" field.
func (_u *ConceptUpdate) SetRepetitionCount(v int) *ConceptUpdate {
	_u.mutation.ResetRepetitionCount()
	_u.mutation.SetRepetitionCount(v)
	return _u
}

// SetNillableRepetitionCount sets the "repetition_count" field if the given value is not nil.
func (_u *ConceptUpdate) SetNillableRepetitionCount(v *int) *ConceptUpdate {
	if v != nil {
		_u.SetRepetitionCount(*v)
	}
	return _u
}

// AddRepetitionCount adds value to the "repetition_count" field.
func (_u *ConceptUpdate) AddRepetitionCount(v int) *ConceptUpdate {
	_u.mutation.AddRepetitionCount(v)
	return _u
}

// SetLastPracticed sets the "last_practiced" field.
func (_u *ConceptUpdate) SetLastPracticed(v time.Time) *ConceptUpdate {
	_u.mutation.SetLastPracticed(v)
	return _u
}

// SetNillableLastPracticed sets the "last_practiced" field if the given value is not nil.
func (_u *ConceptUpdate) SetNillableLastPracticed(v *time.Time) *ConceptUpdate {
	if v != nil {
		_u.SetLastPracticed(*v)
	}
	return _u
}

// ClearLastPracticed clears the value of the "last_practiced" field.
func (_u *ConceptUpdate) ClearLastPracticed() *ConceptUpdate {
	_u.mutation.ClearLastPracticed()
	return _u
}

// SetNextDue sets the "next_due" field.
func (_u *ConceptUpdate) SetNextDue(v time.Time) *ConceptUpdate {
	_u.mutation.SetNextDue(v)
	return _u
}

// SetNillableNextDue sets the "next_due" field if the given value is not nil.
func (_u *ConceptUpdate) SetNillableNextDue(v *time.Time) *ConceptUpdate {
	if v != nil {
		_u.SetNextDue(*v)
	}
	return _u
}

// ClearNextDue clears the value of the "next_due" field.
func (_u *ConceptUpdate) ClearNextDue() *ConceptUpdate {
	_u.mutation.ClearNextDue()
	return _u
}

// SetAttemptCount sets the "attempt_count" field.
func (_u *ConceptUpdate) SetAttemptCount(v int) *ConceptUpdate {
	_u.mutation.ResetAttemptCount()
	_u.mutation.SetAttemptCount(v)
	return _u
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_u *ConceptUpdate) SetNillableAttemptCount(v *int) *ConceptUpdate {
	if v != nil {
		_u.SetAttemptCount(*v)
	}
	return _u
}

// AddAttemptCount adds value to the "attempt_count" field.
func (_u *ConceptUpdate) AddAttemptCount(v int) *ConceptUpdate {
	_u.mutation.AddAttemptCount(v)
	return _u
}

// SetDeprecated sets the "deprecated" field.
func (_u *ConceptUpdate) SetDeprecated(v bool) *ConceptUpdate {
	_u.mutation.SetDeprecated(v)
	return _u
}

// SetNillableDeprecated sets the "deprecated" field if the given value is not nil.
func (_u *ConceptUpdate) SetNillableDeprecated(v *bool) *ConceptUpdate {
	if v != nil {
		_u.SetDeprecated(*v)
	}
	return _u
}

// SetManuallyAdjusted sets the "manually_adjusted" field.
func (_u *ConceptUpdate) SetManuallyAdjusted(v bool) *ConceptUpdate {
	_u.mutation.SetManuallyAdjusted(v)
	return _u
}

// SetNillableManuallyAdjusted sets the "manually_adjusted" field if the given value is not nil.
func (_u *ConceptUpdate) SetNillableManuallyAdjusted(v *bool) *ConceptUpdate {
	if v != nil {
		_u.SetManuallyAdjusted(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *ConceptUpdate) SetSource(v concept.Source) *ConceptUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ConceptUpdate) SetNillableSource(v *concept.Source) *ConceptUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConceptUpdate) SetUpdatedAt(v time.Time) *ConceptUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ConceptMutation object of the builder.
func (_u *ConceptUpdate) Mutation() *ConceptMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConceptUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConceptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConceptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConceptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConceptUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := concept.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConceptUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := concept.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Concept.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NormalizedName(); ok {
		if err := concept.NormalizedNameValidator(v); err != nil {
			return &ValidationError{Name: "normalized_name", err: fmt.Errorf(`ent: validator failed for field "Concept.normalized_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := concept.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Concept.source": %w`, err)}
		}
	}
	return nil
}

func (_u *ConceptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(concept.Table, concept.Columns, sqlgraph.NewFieldSpec(concept.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(concept.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.NormalizedName(); ok {
		_spec.SetField(concept.FieldNormalizedName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(concept.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.KeyTerms(); ok {
		_spec.SetField(concept.FieldKeyTerms, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKeyTerms(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, concept.FieldKeyTerms, value)
		})
	}
	if _u.mutation.KeyTermsCleared() {
		_spec.ClearField(concept.FieldKeyTerms, field.TypeJSON)
	}
	if value, ok := _u.mutation.Proficiency(); ok {
		_spec.SetField(concept.FieldProficiency, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProficiency(); ok {
		_spec.AddField(concept.FieldProficiency, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(concept.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(concept.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EaseFactor(); ok {
		_spec.SetField(concept.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEaseFactor(); ok {
		_spec.AddField(concept.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(concept.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(concept.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RepetitionCount(); ok {
		_spec.SetField(concept.FieldRepetitionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRepetitionCount(); ok {
		_spec.AddField(concept.FieldRepetitionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastPracticed(); ok {
		_spec.SetField(concept.FieldLastPracticed, field.TypeTime, value)
	}
	if _u.mutation.LastPracticedCleared() {
		_spec.ClearField(concept.FieldLastPracticed, field.TypeTime)
	}
	if value, ok := _u.mutation.NextDue(); ok {
		_spec.SetField(concept.FieldNextDue, field.TypeTime, value)
	}
	if _u.mutation.NextDueCleared() {
		_spec.ClearField(concept.FieldNextDue, field.TypeTime)
	}
	if value, ok := _u.mutation.AttemptCount(); ok {
		_spec.SetField(concept.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptCount(); ok {
		_spec.AddField(concept.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Deprecated(); ok {
		_spec.SetField(concept.FieldDeprecated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ManuallyAdjusted(); ok {
		_spec.SetField(concept.FieldManuallyAdjusted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(concept.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(concept.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{concept.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConceptUpdateOne is the builder for updating a single Concept entity.
type ConceptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConceptMutation
}

// SetName sets the "name" field.
func (_u *ConceptUpdateOne) SetName(v string) *ConceptUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ConceptUpdateOne) SetNillableName(v *string) *ConceptUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetNormalizedName sets the "normalized_name" field.
func (_u *ConceptUpdateOne) SetNormalizedName(v string) *ConceptUpdateOne {
	_u.mutation.SetNormalizedName(v)
	return _u
}

// SetNillableNormalizedName sets the "normalized_name" field if the given value is not nil.
func (_u *ConceptUpdateOne) SetNillableNormalizedName(v *string) *ConceptUpdateOne {
	if v != nil {
		_u.SetNormalizedName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ConceptUpdateOne) SetDescription(v string) *ConceptUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ConceptUpdateOne) SetNillableDescription(v *string) *ConceptUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetKeyTerms sets the "key_terms" field.
func (_u *ConceptUpdateOne) SetKeyTerms(v []string) *ConceptUpdateOne {
	_u.mutation.SetKeyTerms(v)
	return _u
}

// AppendKeyTerms appends value to the "key_terms" field.
func (_u *ConceptUpdateOne) AppendKeyTerms(v []string) *ConceptUpdateOne {
	_u.mutation.AppendKeyTerms(v)
	return _u
}

// ClearKeyTerms clears the value of the "key_terms" field.
func (_u *ConceptUpdateOne) ClearKeyTerms() *ConceptUpdateOne {
	_u.mutation.ClearKeyTerms()
	return _u
}

// SetProficiency sets the "proficiency" field.
func (_u *ConceptUpdateOne) SetProficiency(v float64) *ConceptUpdateOne {
	_u.mutation.ResetProficiency()
	_u.mutation.SetProficiency(v)
	return _u
}

// SetNillableProficiency sets the "proficiency" field if the given value is not nil.
func (_u *ConceptUpdateOne) SetNillableProficiency(v *float64) *ConceptUpdateOne {
	if v != nil {
		_u.SetProficiency(*v)
	}
	return _u
}

// AddProficiency adds value to the "proficiency" field.
func (_u *ConceptUpdateOne) AddProficiency(v float64) *ConceptUpdateOne {
	_u.mutation.AddProficiency(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ConceptUpdateOne) SetConfidence(v float64) *ConceptUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ConceptUpdateOne) SetNillableConfidence(v *float64) *ConceptUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ConceptUpdateOne) AddConfidence(v float64) *ConceptUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetEaseFactor sets the "ease_factor" field.
func (_u *ConceptUpdateOne) SetEaseFactor(v float64) *ConceptUpdateOne {
	_u.mutation.ResetEaseFactor()
	_u.mutation.SetEaseFactor(v)
	return _u
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_u *ConceptUpdateOne) SetNillableEaseFactor(v *float64) *ConceptUpdateOne {
	if v != nil {
		_u.SetEaseFactor(*v)
	}
	return _u
}

// AddEaseFactor adds value to the "ease_factor" field.
func (_u *ConceptUpdateOne) AddEaseFactor(v float64) *ConceptUpdateOne {
	_u.mutation.AddEaseFactor(v)
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *ConceptUpdateOne) SetIntervalDays(v int) *ConceptUpdateOne {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *ConceptUpdateOne) SetNillableIntervalDays(v *int) *ConceptUpdateOne {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *ConceptUpdateOne) AddIntervalDays(v int) *ConceptUpdateOne {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetRepetitionCount sets the "repetition_count" field.
func (_u *ConceptUpdateOne) SetRepetitionCount(v int) *ConceptUpdateOne {
	_u.mutation.ResetRepetitionCount()
	_u.mutation.SetRepetitionCount(v)
	return _u
}

// SetNillableRepetitionCount sets the "repetition_count" field if the given value is not nil.
func (_u *ConceptUpdateOne) SetNillableRepetitionCount(v *int) *ConceptUpdateOne {
	if v != nil {
		_u.SetRepetitionCount(*v)
	}
	return _u
}

// AddRepetitionCount adds value to the "repetition_count" field.
func (_u *ConceptUpdateOne) AddRepetitionCount(v int) *ConceptUpdateOne {
	_u.mutation.AddRepetitionCount(v)
	return _u
}

// SetLastPracticed sets the "last_practiced" field.
func (_u *ConceptUpdateOne) SetLastPracticed(v time.Time) *ConceptUpdateOne {
	_u.mutation.SetLastPracticed(v)
	return _u
}

// SetNillableLastPracticed sets the "last_practiced" field if the given value is not nil.
func (_u *ConceptUpdateOne) SetNillableLastPracticed(v *time.Time) *ConceptUpdateOne {
	if v != nil {
		_u.SetLastPracticed(*v)
	}
	return _u
}

// ClearLastPracticed clears the value of the "last_practiced" field.
func (_u *ConceptUpdateOne) ClearLastPracticed() *ConceptUpdateOne {
	_u.mutation.ClearLastPracticed()
	return _u
}

// SetNextDue sets the "next_due" field.
func (_u *ConceptUpdateOne) SetNextDue(v time.Time) *ConceptUpdateOne {
	_u.mutation.SetNextDue(v)
	return _u
}

// SetNillableNextDue sets the "next_due" field if the given value is not nil.
func (_u *ConceptUpdateOne) SetNillableNextDue(v *time.Time) *ConceptUpdateOne {
	if v != nil {
		_u.SetNextDue(*v)
	}
	return _u
}

// ClearNextDue clears the value of the "next_due" field.
func (_u *ConceptUpdateOne) ClearNextDue() *ConceptUpdateOne {
	_u.mutation.ClearNextDue()
	return _u
}

// SetAttemptCount sets the "attempt_count" field.
func (_u *ConceptUpdateOne) SetAttemptCount(v int) *ConceptUpdateOne {
	_u.mutation.ResetAttemptCount()
	_u.mutation.SetAttemptCount(v)
	return _u
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_u *ConceptUpdateOne) SetNillableAttemptCount(v *int) *ConceptUpdateOne {
	if v != nil {
		_u.SetAttemptCount(*v)
	}
	return _u
}

// AddAttemptCount adds value to the "attempt_count" field.
func (_u *ConceptUpdateOne) AddAttemptCount(v int) *ConceptUpdateOne {
	_u.mutation.AddAttemptCount(v)
	return _u
}

// SetDeprecated sets the "deprecated" field.
func (_u *ConceptUpdateOne) SetDeprecated(v bool) *ConceptUpdateOne {
	_u.mutation.SetDeprecated(v)
	return _u
}

// SetNillableDeprecated sets the "deprecated" field if the given value is not nil.
func (_u *ConceptUpdateOne) SetNillableDeprecated(v *bool) *ConceptUpdateOne {
	if v != nil {
		_u.SetDeprecated(*v)
	}
	return _u
}

// SetManuallyAdjusted sets the "manually_adjusted" field.
func (_u *ConceptUpdateOne) SetManuallyAdjusted(v bool) *ConceptUpdateOne {
	_u.mutation.SetManuallyAdjusted(v)
	return _u
}

// SetNillableManuallyAdjusted sets the "manually_adjusted" field if the given value is not nil.
func (_u *ConceptUpdateOne) SetNillableManuallyAdjusted(v *bool) *ConceptUpdateOne {
	if v != nil {
		_u.SetManuallyAdjusted(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *ConceptUpdateOne) SetSource(v concept.Source) *ConceptUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ConceptUpdateOne) SetNillableSource(v *concept.Source) *ConceptUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConceptUpdateOne) SetUpdatedAt(v time.Time) *ConceptUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ConceptMutation object of the builder.
func (_u *ConceptUpdateOne) Mutation() *ConceptMutation {
	return _u.mutation
}

// Where appends a list predicates to the ConceptUpdate builder.
func (_u *ConceptUpdateOne) Where(ps ...predicate.Concept) *ConceptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConceptUpdateOne) Select(field string, fields ...string) *ConceptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Concept entity.
func (_u *ConceptUpdateOne) Save(ctx context.Context) (*Concept, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConceptUpdateOne) SaveX(ctx context.Context) *Concept {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConceptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConceptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConceptUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := concept.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConceptUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := concept.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Concept.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NormalizedName(); ok {
		if err := concept.NormalizedNameValidator(v); err != nil {
			return &ValidationError{Name: "normalized_name", err: fmt.Errorf(`ent: validator failed for field "Concept.normalized_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := concept.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Concept.source": %w`, err)}
		}
	}
	return nil
}

func (_u *ConceptUpdateOne) sqlSave(ctx context.Context) (_node *Concept, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(concept.Table, concept.Columns, sqlgraph.NewFieldSpec(concept.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Concept.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, concept.FieldID)
		for _, f := range fields {
			if !concept.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != concept.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(concept.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.NormalizedName(); ok {
		_spec.SetField(concept.FieldNormalizedName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(concept.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.KeyTerms(); ok {
		_spec.SetField(concept.FieldKeyTerms, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKeyTerms(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, concept.FieldKeyTerms, value)
		})
	}
	if _u.mutation.KeyTermsCleared() {
		_spec.ClearField(concept.FieldKeyTerms, field.TypeJSON)
	}
	if value, ok := _u.mutation.Proficiency(); ok {
		_spec.SetField(concept.FieldProficiency, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProficiency(); ok {
		_spec.AddField(concept.FieldProficiency, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(concept.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(concept.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EaseFactor(); ok {
		_spec.SetField(concept.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEaseFactor(); ok {
		_spec.AddField(concept.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(concept.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(concept.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RepetitionCount(); ok {
		_spec.SetField(concept.FieldRepetitionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRepetitionCount(); ok {
		_spec.AddField(concept.FieldRepetitionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastPracticed(); ok {
		_spec.SetField(concept.FieldLastPracticed, field.TypeTime, value)
	}
	if _u.mutation.LastPracticedCleared() {
		_spec.ClearField(concept.FieldLastPracticed, field.TypeTime)
	}
	if value, ok := _u.mutation.NextDue(); ok {
		_spec.SetField(concept.FieldNextDue, field.TypeTime, value)
	}
	if _u.mutation.NextDueCleared() {
		_spec.ClearField(concept.FieldNextDue, field.TypeTime)
	}
	if value, ok := _u.mutation.AttemptCount(); ok {
		_spec.SetField(concept.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptCount(); ok {
		_spec.AddField(concept.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Deprecated(); ok {
		_spec.SetField(concept.FieldDeprecated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ManuallyAdjusted(); ok {
		_spec.SetField(concept.FieldManuallyAdjusted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(concept.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(concept.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Concept{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{concept.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
