// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/praxislearn/praxis/ent/graphmembership"
	"github.com/praxislearn/praxis/ent/predicate"
)

// GraphMembershipUpdate is the builder for updating GraphMembership entities.
type GraphMembershipUpdate struct {
	config
	hooks    []Hook
	mutation *GraphMembershipMutation
}

// Where appends a list predicates to the GraphMembershipUpdate builder.
func (_u *GraphMembershipUpdate) Where(ps ...predicate.GraphMembership) *GraphMembershipUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetGraphID sets the "graph_id" field.
func (_u *GraphMembershipUpdate) SetGraphID(v uuid.UUID) *GraphMembershipUpdate {
	_u.mutation.SetGraphID(v)
	return _u
}

// SetNillableGraphID sets the "graph_id" field if the given value is not nil.
func (_u *GraphMembershipUpdate) SetNillableGraphID(v *uuid.UUID) *GraphMembershipUpdate {
	if v != nil {
		_u.SetGraphID(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *GraphMembershipUpdate) SetConceptID(v uuid.UUID) *GraphMembershipUpdate {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *GraphMembershipUpdate) SetNillableConceptID(v *uuid.UUID) *GraphMembershipUpdate {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetPosX sets the "pos_x" field.
func (_u *GraphMembershipUpdate) SetPosX(v float64) *GraphMembershipUpdate {
	_u.mutation.ResetPosX()
	_u.mutation.SetPosX(v)
	return _u
}

// SetNillablePosX sets the "pos_x" field if the given value is not nil.
func (_u *GraphMembershipUpdate) SetNillablePosX(v *float64) *GraphMembershipUpdate {
	if v != nil {
		_u.SetPosX(*v)
	}
	return _u
}

// AddPosX adds value to the "pos_x" field.
func (_u *GraphMembershipUpdate) AddPosX(v float64) *GraphMembershipUpdate {
	_u.mutation.AddPosX(v)
	return _u
}

// SetPosY sets the "pos_y" field.
func (_u *GraphMembershipUpdate) SetPosY(v float64) *GraphMembershipUpdate {
	_u.mutation.ResetPosY()
	_u.mutation.SetPosY(v)
	return _u
}

// SetNillablePosY sets the "pos_y" field if the given value is not nil.
func (_u *GraphMembershipUpdate) SetNillablePosY(v *float64) *GraphMembershipUpdate {
	if v != nil {
		_u.SetPosY(*v)
	}
	return _u
}

// AddPosY adds value to the "pos_y" field.
func (_u *GraphMembershipUpdate) AddPosY(v float64) *GraphMembershipUpdate {
	_u.mutation.AddPosY(v)
	return _u
}

// SetDepthTier sets the "depth_tier" field.
func (_u *GraphMembershipUpdate) SetDepthTier(v int) *GraphMembershipUpdate {
	_u.mutation.ResetDepthTier()
	_u.mutation.SetDepthTier(v)
	return _u
}

// SetNillableDepthTier sets the "depth_tier" field if the given value is not nil.
func (_u *GraphMembershipUpdate) SetNillableDepthTier(v *int) *GraphMembershipUpdate {
	if v != nil {
		_u.SetDepthTier(*v)
	}
	return _u
}

// AddDepthTier adds value to the "depth_tier" field.
func (_u *GraphMembershipUpdate) AddDepthTier(v int) *GraphMembershipUpdate {
	_u.mutation.AddDepthTier(v)
	return _u
}

// Mutation returns the GraphMembershipMutation object of the builder.
func (_u *GraphMembershipUpdate) Mutation() *GraphMembershipMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GraphMembershipUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GraphMembershipUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GraphMembershipUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GraphMembershipUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GraphMembershipUpdate) check() error {
	if v, ok := _u.mutation.DepthTier(); ok {
		if err := graphmembership.DepthTierValidator(v); err != nil {
			return &ValidationError{Name: "depth_tier", err: fmt.Errorf(`ent: validator failed for field "GraphMembership.depth_tier": %w`, err)}
		}
	}
	return nil
}

func (_u *GraphMembershipUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(graphmembership.Table, graphmembership.Columns, sqlgraph.NewFieldSpec(graphmembership.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GraphID(); ok {
		_spec.SetField(graphmembership.FieldGraphID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(graphmembership.FieldConceptID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PosX(); ok {
		_spec.SetField(graphmembership.FieldPosX, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPosX(); ok {
		_spec.AddField(graphmembership.FieldPosX, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PosY(); ok {
		_spec.SetField(graphmembership.FieldPosY, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPosY(); ok {
		_spec.AddField(graphmembership.FieldPosY, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DepthTier(); ok {
		_spec.SetField(graphmembership.FieldDepthTier, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDepthTier(); ok {
		_spec.AddField(graphmembership.FieldDepthTier, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{graphmembership.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GraphMembershipUpdateOne is the builder for updating a single GraphMembership entity.
type GraphMembershipUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GraphMembershipMutation
}

// SetGraphID sets the "graph_id" field.
func (_u *GraphMembershipUpdateOne) SetGraphID(v uuid.UUID) *GraphMembershipUpdateOne {
	_u.mutation.SetGraphID(v)
	return _u
}

// SetNillableGraphID sets the "graph_id" field if the given value is not nil.
func (_u *GraphMembershipUpdateOne) SetNillableGraphID(v *uuid.UUID) *GraphMembershipUpdateOne {
	if v != nil {
		_u.SetGraphID(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *GraphMembershipUpdateOne) SetConceptID(v uuid.UUID) *GraphMembershipUpdateOne {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *GraphMembershipUpdateOne) SetNillableConceptID(v *uuid.UUID) *GraphMembershipUpdateOne {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetPosX sets the "pos_x" field.
func (_u *GraphMembershipUpdateOne) SetPosX(v float64) *GraphMembershipUpdateOne {
	_u.mutation.ResetPosX()
	_u.mutation.SetPosX(v)
	return _u
}

// SetNillablePosX sets the "pos_x" field if the given value is not nil.
func (_u *GraphMembershipUpdateOne) SetNillablePosX(v *float64) *GraphMembershipUpdateOne {
	if v != nil {
		_u.SetPosX(*v)
	}
	return _u
}

// AddPosX adds value to the "pos_x" field.
func (_u *GraphMembershipUpdateOne) AddPosX(v float64) *GraphMembershipUpdateOne {
	_u.mutation.AddPosX(v)
	return _u
}

// SetPosY sets the "pos_y" field.
func (_u *GraphMembershipUpdateOne) SetPosY(v float64) *GraphMembershipUpdateOne {
	_u.mutation.ResetPosY()
	_u.mutation.SetPosY(v)
	return _u
}

// SetNillablePosY sets the "pos_y" field if the given value is not nil.
func (_u *GraphMembershipUpdateOne) SetNillablePosY(v *float64) *GraphMembershipUpdateOne {
	if v != nil {
		_u.SetPosY(*v)
	}
	return _u
}

// AddPosY adds value to the "pos_y" field.
func (_u *GraphMembershipUpdateOne) AddPosY(v float64) *GraphMembershipUpdateOne {
	_u.mutation.AddPosY(v)
	return _u
}

// SetDepthTier sets the "depth_tier" field.
func (_u *GraphMembershipUpdateOne) SetDepthTier(v int) *GraphMembershipUpdateOne {
	_u.mutation.ResetDepthTier()
	_u.mutation.SetDepthTier(v)
	return _u
}

// SetNillableDepthTier sets the "depth_tier" field if the given value is not nil.
func (_u *GraphMembershipUpdateOne) SetNillableDepthTier(v *int) *GraphMembershipUpdateOne {
	if v != nil {
		_u.SetDepthTier(*v)
	}
	return _u
}

// AddDepthTier adds value to the "depth_tier" field.
func (_u *GraphMembershipUpdateOne) AddDepthTier(v int) *GraphMembershipUpdateOne {
	_u.mutation.AddDepthTier(v)
	return _u
}

// Mutation returns the GraphMembershipMutation object of the builder.
func (_u *GraphMembershipUpdateOne) Mutation() *GraphMembershipMutation {
	return _u.mutation
}

// Where appends a list predicates to the GraphMembershipUpdate builder.
func (_u *GraphMembershipUpdateOne) Where(ps ...predicate.GraphMembership) *GraphMembershipUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GraphMembershipUpdateOne) Select(field string, fields ...string) *GraphMembershipUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GraphMembership entity.
func (_u *GraphMembershipUpdateOne) Save(ctx context.Context) (*GraphMembership, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GraphMembershipUpdateOne) SaveX(ctx context.Context) *GraphMembership {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GraphMembershipUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GraphMembershipUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GraphMembershipUpdateOne) check() error {
	if v, ok := _u.mutation.DepthTier(); ok {
		if err := graphmembership.DepthTierValidator(v); err != nil {
			return &ValidationError{Name: "depth_tier", err: fmt.Errorf(`ent: validator failed for field "GraphMembership.depth_tier": %w`, err)}
		}
	}
	return nil
}

func (_u *GraphMembershipUpdateOne) sqlSave(ctx context.Context) (_node *GraphMembership, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(graphmembership.Table, graphmembership.Columns, sqlgraph.NewFieldSpec(graphmembership.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GraphMembership.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, graphmembership.FieldID)
		for _, f := range fields {
			if !graphmembership.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != graphmembership.FieldID {
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
	if value, ok := _u.mutation.GraphID(); ok {
		_spec.SetField(graphmembership.FieldGraphID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(graphmembership.FieldConceptID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PosX(); ok {
		_spec.SetField(graphmembership.FieldPosX, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPosX(); ok {
		_spec.AddField(graphmembership.FieldPosX, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PosY(); ok {
		_spec.SetField(graphmembership.FieldPosY, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPosY(); ok {
		_spec.AddField(graphmembership.FieldPosY, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DepthTier(); ok {
		_spec.SetField(graphmembership.FieldDepthTier, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDepthTier(); ok {
		_spec.AddField(graphmembership.FieldDepthTier, field.TypeInt, value)
	}
	_node = &GraphMembership{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{graphmembership.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
