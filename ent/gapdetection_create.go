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
	"github.com/praxislearn/praxis/ent/gapdetection"
)

// GapDetectionCreate is the builder for creating a GapDetection entity.
type GapDetectionCreate struct {
	config
	mutation *GapDetectionMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *GapDetectionCreate) SetUserID(v string) *GapDetectionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetConceptID sets the "concept_id" field.
func (_c *GapDetectionCreate) SetConceptID(v uuid.UUID) *GapDetectionCreate {
	_c.mutation.SetConceptID(v)
	return _c
}

// SetMissingConceptName sets the "missing_concept_name" field.
func (_c *GapDetectionCreate) SetMissingConceptName(v string) *GapDetectionCreate {
	_c.mutation.SetMissingConceptName(v)
	return _c
}

// SetSeverity sets the "severity" field.
func (_c *GapDetectionCreate) SetSeverity(v gapdetection.Severity) *GapDetectionCreate {
	_c.mutation.SetSeverity(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *GapDetectionCreate) SetStatus(v gapdetection.Status) *GapDetectionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *GapDetectionCreate) SetNillableStatus(v *gapdetection.Status) *GapDetectionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetExplanation sets the "explanation" field.
func (_c *GapDetectionCreate) SetExplanation(v string) *GapDetectionCreate {
	_c.mutation.SetExplanation(v)
	return _c
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_c *GapDetectionCreate) SetNillableExplanation(v *string) *GapDetectionCreate {
	if v != nil {
		_c.SetExplanation(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *GapDetectionCreate) SetCreatedAt(v time.Time) *GapDetectionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *GapDetectionCreate) SetNillableCreatedAt(v *time.Time) *GapDetectionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *GapDetectionCreate) SetID(v uuid.UUID) *GapDetectionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *GapDetectionCreate) SetNillableID(v *uuid.UUID) *GapDetectionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the GapDetectionMutation object of the builder.
func (_c *GapDetectionCreate) Mutation() *GapDetectionMutation {
	return _c.mutation
}

// Save creates the GapDetection in the database.
func (_c *GapDetectionCreate) Save(ctx context.Context) (*GapDetection, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GapDetectionCreate) SaveX(ctx context.Context) *GapDetection {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GapDetectionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GapDetectionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GapDetectionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := gapdetection.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Explanation(); !ok {
		v := gapdetection.DefaultExplanation
		_c.mutation.SetExplanation(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := gapdetection.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := gapdetection.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GapDetectionCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "GapDetection.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := gapdetection.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "GapDetection.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConceptID(); !ok {
		return &ValidationError{Name: "concept_id", err: errors.New(`ent: missing required field "GapDetection.concept_id"`)}
	}
	if _, ok := _c.mutation.MissingConceptName(); !ok {
		return &ValidationError{Name: "missing_concept_name", err: errors.New(`ent: missing required field "GapDetection.missing_concept_name"`)}
	}
	if v, ok := _c.mutation.MissingConceptName(); ok {
		if err := gapdetection.MissingConceptNameValidator(v); err != nil {
			return &ValidationError{Name: "missing_concept_name", err: fmt.Errorf(`ent: validator failed for field "GapDetection.missing_concept_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Severity(); !ok {
		return &ValidationError{Name: "severity", err: errors.New(`ent: missing required field "GapDetection.severity"`)}
	}
	if v, ok := _c.mutation.Severity(); ok {
		if err := gapdetection.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "GapDetection.severity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "GapDetection.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := gapdetection.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "GapDetection.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Explanation(); !ok {
		return &ValidationError{Name: "explanation", err: errors.New(`ent: missing required field "GapDetection.explanation"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "GapDetection.created_at"`)}
	}
	return nil
}

func (_c *GapDetectionCreate) sqlSave(ctx context.Context) (*GapDetection, error) {
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

func (_c *GapDetectionCreate) createSpec() (*GapDetection, *sqlgraph.CreateSpec) {
	var (
		_node = &GapDetection{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(gapdetection.Table, sqlgraph.NewFieldSpec(gapdetection.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(gapdetection.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ConceptID(); ok {
		_spec.SetField(gapdetection.FieldConceptID, field.TypeUUID, value)
		_node.ConceptID = value
	}
	if value, ok := _c.mutation.MissingConceptName(); ok {
		_spec.SetField(gapdetection.FieldMissingConceptName, field.TypeString, value)
		_node.MissingConceptName = value
	}
	if value, ok := _c.mutation.Severity(); ok {
		_spec.SetField(gapdetection.FieldSeverity, field.TypeEnum, value)
		_node.Severity = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(gapdetection.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Explanation(); ok {
		_spec.SetField(gapdetection.FieldExplanation, field.TypeString, value)
		_node.Explanation = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(gapdetection.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// GapDetectionCreateBulk is the builder for creating many GapDetection entities in bulk.
type GapDetectionCreateBulk struct {
	config
	err      error
	builders []*GapDetectionCreate
}

// Save creates the GapDetection entities in the database.
func (_c *GapDetectionCreateBulk) Save(ctx context.Context) ([]*GapDetection, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GapDetection, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GapDetectionMutation)
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
func (_c *GapDetectionCreateBulk) SaveX(ctx context.Context) []*GapDetection {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GapDetectionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GapDetectionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
