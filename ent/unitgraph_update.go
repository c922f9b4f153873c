// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/praxislearn/praxis/ent/predicate"
	"github.com/praxislearn/praxis/ent/unitgraph"
)

// UnitGraphUpdate is the builder for updating UnitGraph entities.
type UnitGraphUpdate struct {
	config
	hooks    []Hook
	mutation *UnitGraphMutation
}

// Where appends a list predicates to the UnitGraphUpdate builder.
func (_u *UnitGraphUpdate) Where(ps ...predicate.UnitGraph) *UnitGraphUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *UnitGraphUpdate) SetName(v string) *UnitGraphUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *UnitGraphUpdate) SetNillableName(v *string) *UnitGraphUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// Mutation returns the UnitGraphMutation object of the builder.
func (_u *UnitGraphUpdate) Mutation() *UnitGraphMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UnitGraphUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UnitGraphUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UnitGraphUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UnitGraphUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UnitGraphUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := unitgraph.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "UnitGraph.name": %w`, err)}
		}
	}
	return nil
}

func (_u *UnitGraphUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(unitgraph.Table, unitgraph.Columns, sqlgraph.NewFieldSpec(unitgraph.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(unitgraph.FieldName, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{unitgraph.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UnitGraphUpdateOne is the builder for updating a single UnitGraph entity.
type UnitGraphUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UnitGraphMutation
}

// SetName sets the "name" field.
func (_u *UnitGraphUpdateOne) SetName(v string) *UnitGraphUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *UnitGraphUpdateOne) SetNillableName(v *string) *UnitGraphUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// Mutation returns the UnitGraphMutation object of the builder.
func (_u *UnitGraphUpdateOne) Mutation() *UnitGraphMutation {
	return _u.mutation
}

// Where appends a list predicates to the UnitGraphUpdate builder.
func (_u *UnitGraphUpdateOne) Where(ps ...predicate.UnitGraph) *UnitGraphUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UnitGraphUpdateOne) Select(field string, fields ...string) *UnitGraphUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UnitGraph entity.
func (_u *UnitGraphUpdateOne) Save(ctx context.Context) (*UnitGraph, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UnitGraphUpdateOne) SaveX(ctx context.Context) *UnitGraph {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UnitGraphUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UnitGraphUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UnitGraphUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := unitgraph.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "UnitGraph.name": %w`, err)}
		}
	}
	return nil
}

func (_u *UnitGraphUpdateOne) sqlSave(ctx context.Context) (_node *UnitGraph, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(unitgraph.Table, unitgraph.Columns, sqlgraph.NewFieldSpec(unitgraph.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UnitGraph.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, unitgraph.FieldID)
		for _, f := range fields {
			if !unitgraph.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != unitgraph.FieldID {
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
		_spec.SetField(unitgraph.FieldName, field.TypeString, value)
	}
	_node = &UnitGraph{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{unitgraph.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
