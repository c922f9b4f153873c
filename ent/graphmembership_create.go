// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/praxislearn/praxis/ent/graphmembership"
)

// GraphMembershipCreate is the builder for creating a GraphMembership entity.
type GraphMembershipCreate struct {
	config
	mutation *GraphMembershipMutation
	hooks    []Hook
}

// SetGraphID sets the "graph_id" field.
func (_c *GraphMembershipCreate) SetGraphID(v uuid.UUID) *GraphMembershipCreate {
	_c.mutation.SetGraphID(v)
	return _c
}

// SetConceptID sets the "concept_id" field.
func (_c *GraphMembershipCreate) SetConceptID(v uuid.UUID) *GraphMembershipCreate {
	_c.mutation.SetConceptID(v)
	return _c
}

// SetPosX sets the "pos_x" field.
func (_c *GraphMembershipCreate) SetPosX(v float64) *GraphMembershipCreate {
	_c.mutation.SetPosX(v)
	return _c
}

// SetNillablePosX sets the "pos_x" field if the given value is not nil.
func (_c *GraphMembershipCreate) SetNillablePosX(v *float64) *GraphMembershipCreate {
	if v != nil {
		_c.SetPosX(*v)
	}
	return _c
}

// SetPosY sets the "pos_y" field.
func (_c *GraphMembershipCreate) SetPosY(v float64) *GraphMembershipCreate {
	_c.mutation.SetPosY(v)
	return _c
}

// SetNillablePosY sets the "pos_y" field if the given value is not nil.
func (_c *GraphMembershipCreate) SetNillablePosY(v *float64) *GraphMembershipCreate {
	if v != nil {
		_c.SetPosY(*v)
	}
	return _c
}

// SetDepthTier sets the "depth_tier" field.
func (_c *GraphMembershipCreate) SetDepthTier(v int) *GraphMembershipCreate {
	_c.mutation.SetDepthTier(v)
	return _c
}

// SetNillableDepthTier sets the "depth_tier" field if the given value is not nil.
func (_c *GraphMembershipCreate) SetNillableDepthTier(v *int) *GraphMembershipCreate {
	if v != nil {
		_c.SetDepthTier(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *GraphMembershipCreate) SetID(v uuid.UUID) *GraphMembershipCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *GraphMembershipCreate) SetNillableID(v *uuid.UUID) *GraphMembershipCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the GraphMembershipMutation object of the builder.
func (_c *GraphMembershipCreate) Mutation() *GraphMembershipMutation {
	return _c.mutation
}

// Save creates the GraphMembership in the database.
func (_c *GraphMembershipCreate) Save(ctx context.Context) (*GraphMembership, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GraphMembershipCreate) SaveX(ctx context.Context) *GraphMembership {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GraphMembershipCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GraphMembershipCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GraphMembershipCreate) defaults() {
	if _, ok := _c.mutation.PosX(); !ok {
		v := graphmembership.DefaultPosX
		_c.mutation.SetPosX(v)
	}
	if _, ok := _c.mutation.PosY(); !ok {
		v := graphmembership.DefaultPosY
		_c.mutation.SetPosY(v)
	}
	if _, ok := _c.mutation.DepthTier(); !ok {
		v := graphmembership.DefaultDepthTier
		_c.mutation.SetDepthTier(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := graphmembership.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GraphMembershipCreate) check() error {
	if _, ok := _c.mutation.GraphID(); !ok {
		return &ValidationError{Name: "graph_id", err: errors.New(`ent: missing required field "GraphMembership.graph_id"`)}
	}
	if _, ok := _c.mutation.ConceptID(); !ok {
		return &ValidationError{Name: "concept_id", err: errors.New(`ent: missing required field "GraphMembership.concept_id"`)}
	}
	if _, ok := _c.mutation.PosX(); !ok {
		return &ValidationError{Name: "pos_x", err: errors.New(`ent: missing required field "GraphMembership.pos_x"`)}
	}
	if _, ok := _c.mutation.PosY(); !ok {
		return &ValidationError{Name: "pos_y", err: errors.New(`ent: missing required field "GraphMembership.pos_y"`)}
	}
	if _, ok := _c.mutation.DepthTier(); !ok {
		return &ValidationError{Name: "depth_tier", err: errors.New(`ent: missing required field "GraphMembership.depth_tier"`)}
	}
	if v, ok := _c.mutation.DepthTier(); ok {
		if err := graphmembership.DepthTierValidator(v); err != nil {
			return &ValidationError{Name: "depth_tier", err: fmt.Errorf(`ent: validator failed for field "GraphMembership.depth_tier": %w`, err)}
		}
	}
	return nil
}

func (_c *GraphMembershipCreate) sqlSave(ctx context.Context) (*GraphMembership, error) {
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

func (_c *GraphMembershipCreate) createSpec() (*GraphMembership, *sqlgraph.CreateSpec) {
	var (
		_node = &GraphMembership{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(graphmembership.Table, sqlgraph.NewFieldSpec(graphmembership.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.GraphID(); ok {
		_spec.SetField(graphmembership.FieldGraphID, field.TypeUUID, value)
		_node.GraphID = value
	}
	if value, ok := _c.mutation.ConceptID(); ok {
		_spec.SetField(graphmembership.FieldConceptID, field.TypeUUID, value)
		_node.ConceptID = value
	}
	if value, ok := _c.mutation.PosX(); ok {
		_spec.SetField(graphmembership.FieldPosX, field.TypeFloat64, value)
		_node.PosX = value
	}
	if value, ok := _c.mutation.PosY(); ok {
		_spec.SetField(graphmembership.FieldPosY, field.TypeFloat64, value)
		_node.PosY = value
	}
	if value, ok := _c.mutation.DepthTier(); ok {
		_spec.SetField(graphmembership.FieldDepthTier, field.TypeInt, value)
		_node.DepthTier = value
	}
	return _node, _spec
}

// GraphMembershipCreateBulk is the builder for creating many GraphMembership entities in bulk.
type GraphMembershipCreateBulk struct {
	config
	err      error
	builders []*GraphMembershipCreate
}

// Save creates the GraphMembership entities in the database.
func (_c *GraphMembershipCreateBulk) Save(ctx context.Context) ([]*GraphMembership, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GraphMembership, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GraphMembershipMutation)
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
func (_c *GraphMembershipCreateBulk) SaveX(ctx context.Context) []*GraphMembership {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GraphMembershipCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GraphMembershipCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
