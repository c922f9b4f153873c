// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/praxislearn/praxis/ent/concept"
)

// ConceptCreate is the builder for creating a Concept entity.
type ConceptCreate struct {
	config
	mutation *ConceptMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *ConceptCreate) SetUserID(v string) *ConceptCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *ConceptCreate) SetName(v string) *ConceptCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetNormalizedName sets the "normalized_name" field.
func (_c *ConceptCreate) SetNormalizedName(v string) *ConceptCreate {
	_c.mutation.SetNormalizedName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ConceptCreate) SetDescription(v string) *ConceptCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ConceptCreate) SetNillableDescription(v *string) *ConceptCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetKeyTerms sets the "key_terms" field.
func (_c *ConceptCreate) SetKeyTerms(v []string) *ConceptCreate {
	_c.mutation.SetKeyTerms(v)
	return _c
}

// SetProficiency sets the "proficiency" field.
func (_c *ConceptCreate) SetProficiency(v float64) *ConceptCreate {
	_c.mutation.SetProficiency(v)
	return _c
}

// SetNillableProficiency sets the "proficiency" field if the given value is not nil.
func (_c *ConceptCreate) SetNillableProficiency(v *float64) *ConceptCreate {
	if v != nil {
		_c.SetProficiency(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *ConceptCreate) SetConfidence(v float64) *ConceptCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *ConceptCreate) SetNillableConfidence(v *float64) *ConceptCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetEaseFactor sets the "ease_factor" field.
func (_c *ConceptCreate) SetEaseFactor(v float64) *ConceptCreate {
	_c.mutation.SetEaseFactor(v)
	return _c
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_c *ConceptCreate) SetNillableEaseFactor(v *float64) *ConceptCreate {
	if v != nil {
		_c.SetEaseFactor(*v)
	}
	return _c
}

// SetIntervalDays sets the "interval_days" field.
func (_c *ConceptCreate) SetIntervalDays(v int) *ConceptCreate {
	_c.mutation.SetIntervalDays(v)
	return _c
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_c *ConceptCreate) SetNillableIntervalDays(v *int) *ConceptCreate {
	if v != nil {
		_c.SetIntervalDays(*v)
	}
	return _c
}

// SetRepetitionCount sets the "repetition_count" field.
func (_c *ConceptCreate) SetRepetitionCount(v int) *ConceptCreate {
	_c.mutation.SetRepetitionCount(v)
	return _c
}

// SetNillableRepetitionCount sets the "repetition_count" field if the given value is not nil.
func (_c *ConceptCreate) SetNillableRepetitionCount(v *int) *ConceptCreate {
	if v != nil {
		_c.SetRepetitionCount(*v)
	}
	return _c
}

// SetLastPracticed sets the "last_practiced" field.
func (_c *ConceptCreate) SetLastPracticed(v time.Time) *ConceptCreate {
	_c.mutation.SetLastPracticed(v)
	return _c
}

// SetNillableLastPracticed sets the "last_practiced" field if the given value is not nil.
func (_c *ConceptCreate) SetNillableLastPracticed(v *time.Time) *ConceptCreate {
	if v != nil {
		_c.SetLastPracticed(*v)
	}
	return _c
}

// SetNextDue sets the "next_due" field.
func (_c *ConceptCreate) SetNextDue(v time.Time) *ConceptCreate {
	_c.mutation.SetNextDue(v)
	return _c
}

// SetNillableNextDue sets the "next_due" field if the given value is not nil.
func (_c *ConceptCreate) SetNillableNextDue(v *time.Time) *ConceptCreate {
	if v != nil {
		_c.SetNextDue(*v)
	}
	return _c
}

// SetAttemptCount sets the "attempt_count" field.
func (_c *ConceptCreate) SetAttemptCount(v int) *ConceptCreate {
	_c.mutation.SetAttemptCount(v)
	return _c
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_c *ConceptCreate) SetNillableAttemptCount(v *int) *ConceptCreate {
	if v != nil {
		_c.SetAttemptCount(*v)
	}
	return _c
}

// SetDeprecated sets the "deprecated" field.
func (_c *ConceptCreate) SetDeprecated(v bool) *ConceptCreate {
	_c.mutation.SetDeprecated(v)
	return _c
}

// SetNillableDeprecated sets the "deprecated" field if the given value is not nil.
func (_c *ConceptCreate) SetNillableDeprecated(v *bool) *ConceptCreate {
	if v != nil {
		_c.SetDeprecated(*v)
	}
	return _c
}

// SetManuallyAdjusted sets the "manually_adjusted" field.
func (_c *ConceptCreate) SetManuallyAdjusted(v bool) *ConceptCreate {
	_c.mutation.SetManuallyAdjusted(v)
	return _c
}

// SetNillableManuallyAdjusted sets the "manually_adjusted" field if the given value is not nil.
func (_c *ConceptCreate) SetNillableManuallyAdjusted(v *bool) *ConceptCreate {
	if v != nil {
		_c.SetManuallyAdjusted(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *ConceptCreate) SetSource(v concept.Source) *ConceptCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *ConceptCreate) SetNillableSource(v *concept.Source) *ConceptCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ConceptCreate) SetCreatedAt(v time.Time) *ConceptCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ConceptCreate) SetNillableCreatedAt(v *time.Time) *ConceptCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ConceptCreate) SetUpdatedAt(v time.Time) *ConceptCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ConceptCreate) SetNillableUpdatedAt(v *time.Time) *ConceptCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ConceptCreate) SetID(v uuid.UUID) *ConceptCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ConceptCreate) SetNillableID(v *uuid.UUID) *ConceptCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ConceptMutation object of the builder.
func (_c *ConceptCreate) Mutation() *ConceptMutation {
	return _c.mutation
}

// Save creates the Concept in the database.
func (_c *ConceptCreate) Save(ctx context.Context) (*Concept, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConceptCreate) SaveX(ctx context.Context) *Concept {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConceptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConceptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConceptCreate) defaults() {
	if _, ok := _c.mutation.Description(); !ok {
		v := concept.DefaultDescription
		_c.mutation.SetDescription(v)
	}
	if _, ok := _c.mutation.Proficiency(); !ok {
		v := concept.DefaultProficiency
		_c.mutation.SetProficiency(v)
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		v := concept.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.EaseFactor(); !ok {
		v := concept.DefaultEaseFactor
		_c.mutation.SetEaseFactor(v)
	}
	if _, ok := _c.mutation.IntervalDays(); !ok {
		v := concept.DefaultIntervalDays
		_c.mutation.SetIntervalDays(v)
	}
	if _, ok := _c.mutation.RepetitionCount(); !ok {
		v := concept.DefaultRepetitionCount
		_c.mutation.SetRepetitionCount(v)
	}
	if _, ok := _c.mutation.AttemptCount(); !ok {
		v := concept.DefaultAttemptCount
		_c.mutation.SetAttemptCount(v)
	}
	if _, ok := _c.mutation.Deprecated(); !ok {
		v := concept.DefaultDeprecated
		_c.mutation.SetDeprecated(v)
	}
	if _, ok := _c.mutation.ManuallyAdjusted(); !ok {
		v := concept.DefaultManuallyAdjusted
		_c.mutation.SetManuallyAdjusted(v)
	}
	if _, ok := _c.mutation.Source(); !ok {
		v := concept.DefaultSource
		_c.mutation.SetSource(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := concept.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := concept.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := concept.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConceptCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Concept.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := concept.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Concept.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Concept.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := concept.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Concept.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NormalizedName(); !ok {
		return &ValidationError{Name: "normalized_name", err: errors.New(`ent: missing required field "Concept.normalized_name"`)}
	}
	if v, ok := _c.mutation.NormalizedName(); ok {
		if err := concept.NormalizedNameValidator(v); err != nil {
			return &ValidationError{Name: "normalized_name", err: fmt.Errorf(`ent: validator failed for field "Concept.normalized_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Concept.description"`)}
	}
	if _, ok := _c.mutation.Proficiency(); !ok {
		return &ValidationError{Name: "proficiency", err: errors.New(`ent: missing required field "Concept.proficiency"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "Concept.confidence"`)}
	}
	if _, ok := _c.mutation.EaseFactor(); !ok {
		return &ValidationError{Name: "ease_factor", err: errors.New(`ent: missing required field "Concept.ease_factor"`)}
	}
	if _, ok := _c.mutation.IntervalDays(); !ok {
		return &ValidationError{Name: "interval_days", err: errors.New(`ent: missing required field "Concept.interval_days"`)}
	}
	if _, ok := _c.mutation.RepetitionCount(); !ok {
		return &ValidationError{Name: "repetition_count", err: errors.New(`ent: missing required field "Concept.repetition_count"`)}
	}
	if _, ok := _c.mutation.AttemptCount(); !ok {
		return &ValidationError{Name: "attempt_count", err: errors.New(`ent: missing required field "Concept.attempt_count"`)}
	}
	if _, ok := _c.mutation.Deprecated(); !ok {
		return &ValidationError{Name: "deprecated", err: errors.New(`ent: missing required field "Concept.deprecated"`)}
	}
	if _, ok := _c.mutation.ManuallyAdjusted(); !ok {
		return &ValidationError{Name: "manually_adjusted", err: errors.New(`ent: missing required field "Concept.manually_adjusted"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "Concept.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := concept.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Concept.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Concept.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Concept.updated_at"`)}
	}
	return nil
}

func (_c *ConceptCreate) sqlSave(ctx context.Context) (*Concept, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ConceptCreate) createSpec() (*Concept, *sqlgraph.CreateSpec) {
	var (
		_node = &Concept{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(concept.Table, sqlgraph.NewFieldSpec(concept.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(concept.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(concept.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.NormalizedName(); ok {
		_spec.SetField(concept.FieldNormalizedName, field.TypeString, value)
		_node.NormalizedName = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(concept.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.KeyTerms(); ok {
		_spec.SetField(concept.FieldKeyTerms, field.TypeJSON, value)
		_node.KeyTerms = value
	}
	if value, ok := _c.mutation.Proficiency(); ok {
		_spec.SetField(concept.FieldProficiency, field.TypeFloat64, value)
		_node.Proficiency = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(concept.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.EaseFactor(); ok {
		_spec.SetField(concept.FieldEaseFactor, field.TypeFloat64, value)
		_node.EaseFactor = value
	}
	if value, ok := _c.mutation.IntervalDays(); ok {
		_spec.SetField(concept.FieldIntervalDays, field.TypeInt, value)
		_node.IntervalDays = value
	}
	if value, ok := _c.mutation.RepetitionCount(); ok {
		_spec.SetField(concept.FieldRepetitionCount, field.TypeInt, value)
		_node.RepetitionCount = value
	}
	if value, ok := _c.mutation.LastPracticed(); ok {
		_spec.SetField(concept.FieldLastPracticed, field.TypeTime, value)
		_node.LastPracticed = &value
	}
	if value, ok := _c.mutation.NextDue(); ok {
		_spec.SetField(concept.FieldNextDue, field.TypeTime, value)
		_node.NextDue = &value
	}
	if value, ok := _c.mutation.AttemptCount(); ok {
		_spec.SetField(concept.FieldAttemptCount, field.TypeInt, value)
		_node.AttemptCount = value
	}
	if value, ok := _c.mutation.Deprecated(); ok {
		_spec.SetField(concept.FieldDeprecated, field.TypeBool, value)
		_node.Deprecated = value
	}
	if value, ok := _c.mutation.ManuallyAdjusted(); ok {
		_spec.SetField(concept.FieldManuallyAdjusted, field.TypeBool, value)
		_node.ManuallyAdjusted = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(concept.FieldSource, field.TypeEnum, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(concept.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(concept.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ConceptCreateBulk is the builder for creating many Concept entities in bulk.
type ConceptCreateBulk struct {
	config
	err      error
	builders []*ConceptCreate
}

// Save creates the Concept entities in the database.
func (_c *ConceptCreateBulk) Save(ctx context.Context) ([]*Concept, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Concept, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConceptMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ConceptCreateBulk) SaveX(ctx context.Context) []*Concept {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConceptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConceptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
