// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/praxislearn/praxis/ent/gapdetection"
	"github.com/praxislearn/praxis/ent/predicate"
)

// GapDetectionUpdate is the builder for updating GapDetection entities.
type GapDetectionUpdate struct {
	config
	hooks    []Hook
	mutation *GapDetectionMutation
}

// Where appends a list predicates to the GapDetectionUpdate builder.
func (_u *GapDetectionUpdate) Where(ps ...predicate.GapDetection) *GapDetectionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMissingConceptName sets the "missing_concept_name" field.
func (_u *GapDetectionUpdate) SetMissingConceptName(v string) *GapDetectionUpdate {
	_u.mutation.SetMissingConceptName(v)
	return _u
}

// SetNillableMissingConceptName sets the "missing_concept_name" field if the given value is not nil.
func (_u *GapDetectionUpdate) SetNillableMissingConceptName(v *string) *GapDetectionUpdate {
	if v != nil {
		_u.SetMissingConceptName(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *GapDetectionUpdate) SetSeverity(v gapdetection.Severity) *GapDetectionUpdate {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *GapDetectionUpdate) SetNillableSeverity(v *gapdetection.Severity) *GapDetectionUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *GapDetectionUpdate) SetStatus(v gapdetection.Status) *GapDetectionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *GapDetectionUpdate) SetNillableStatus(v *gapdetection.Status) *GapDetectionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *GapDetectionUpdate) SetExplanation(v string) *GapDetectionUpdate {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *GapDetectionUpdate) SetNillableExplanation(v *string) *GapDetectionUpdate {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// Mutation returns the GapDetectionMutation object of the builder.
func (_u *GapDetectionUpdate) Mutation() *GapDetectionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GapDetectionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GapDetectionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GapDetectionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GapDetectionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GapDetectionUpdate) check() error {
	if v, ok := _u.mutation.MissingConceptName(); ok {
		if err := gapdetection.MissingConceptNameValidator(v); err != nil {
			return &ValidationError{Name: "missing_concept_name", err: fmt.Errorf(`ent: validator failed for field "GapDetection.missing_concept_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Severity(); ok {
		if err := gapdetection.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "GapDetection.severity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := gapdetection.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "GapDetection.status": %w`, err)}
		}
	}
	return nil
}

func (_u *GapDetectionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gapdetection.Table, gapdetection.Columns, sqlgraph.NewFieldSpec(gapdetection.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.MissingConceptName(); ok {
		_spec.SetField(gapdetection.FieldMissingConceptName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(gapdetection.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(gapdetection.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(gapdetection.FieldExplanation, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gapdetection.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GapDetectionUpdateOne is the builder for updating a single GapDetection entity.
type GapDetectionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GapDetectionMutation
}

// SetMissingConceptName sets the "missing_concept_name" field.
func (_u *GapDetectionUpdateOne) SetMissingConceptName(v string) *GapDetectionUpdateOne {
	_u.mutation.SetMissingConceptName(v)
	return _u
}

// SetNillableMissingConceptName sets the "missing_concept_name" field if the given value is not nil.
func (_u *GapDetectionUpdateOne) SetNillableMissingConceptName(v *string) *GapDetectionUpdateOne {
	if v != nil {
		_u.SetMissingConceptName(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *GapDetectionUpdateOne) SetSeverity(v gapdetection.Severity) *GapDetectionUpdateOne {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *GapDetectionUpdateOne) SetNillableSeverity(v *gapdetection.Severity) *GapDetectionUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *GapDetectionUpdateOne) SetStatus(v gapdetection.Status) *GapDetectionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *GapDetectionUpdateOne) SetNillableStatus(v *gapdetection.Status) *GapDetectionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *GapDetectionUpdateOne) SetExplanation(v string) *GapDetectionUpdateOne {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *GapDetectionUpdateOne) SetNillableExplanation(v *string) *GapDetectionUpdateOne {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// Mutation returns the GapDetectionMutation object of the builder.
func (_u *GapDetectionUpdateOne) Mutation() *GapDetectionMutation {
	return _u.mutation
}

// Where appends a list predicates to the GapDetectionUpdate builder.
func (_u *GapDetectionUpdateOne) Where(ps ...predicate.GapDetection) *GapDetectionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GapDetectionUpdateOne) Select(field string, fields ...string) *GapDetectionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GapDetection entity.
func (_u *GapDetectionUpdateOne) Save(ctx context.Context) (*GapDetection, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GapDetectionUpdateOne) SaveX(ctx context.Context) *GapDetection {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GapDetectionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GapDetectionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GapDetectionUpdateOne) check() error {
	if v, ok := _u.mutation.MissingConceptName(); ok {
		if err := gapdetection.MissingConceptNameValidator(v); err != nil {
			return &ValidationError{Name: "missing_concept_name", err: fmt.Errorf(`ent: validator failed for field "GapDetection.missing_concept_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Severity(); ok {
		if err := gapdetection.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "GapDetection.severity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := gapdetection.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "GapDetection.status": %w`, err)}
		}
	}
	return nil
}

func (_u *GapDetectionUpdateOne) sqlSave(ctx context.Context) (_node *GapDetection, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gapdetection.Table, gapdetection.Columns, sqlgraph.NewFieldSpec(gapdetection.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GapDetection.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, gapdetection.FieldID)
		for _, f := range fields {
			if !gapdetection.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != gapdetection.FieldID {
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
	if value, ok := _u.mutation.MissingConceptName(); ok {
		_spec.SetField(gapdetection.FieldMissingConceptName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(gapdetection.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(gapdetection.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(gapdetection.FieldExplanation, field.TypeString, value)
	}
	_node = &GapDetection{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gapdetection.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
