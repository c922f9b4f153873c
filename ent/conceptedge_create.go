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
	"github.com/praxislearn/praxis/ent/conceptedge"
)

// ConceptEdgeCreate is the builder for creating a ConceptEdge entity.
type ConceptEdgeCreate struct {
	config
	mutation *ConceptEdgeMutation
	hooks    []Hook
}

// SetGraphID sets the "graph_id" field.
func (_c *ConceptEdgeCreate) SetGraphID(v uuid.UUID) *ConceptEdgeCreate {
	_c.mutation.SetGraphID(v)
	return _c
}

// SetFromConceptID sets the "from_concept_id" field.
func (_c *ConceptEdgeCreate) SetFromConceptID(v uuid.UUID) *ConceptEdgeCreate {
	_c.mutation.SetFromConceptID(v)
	return _c
}

// SetToConceptID sets the "to_concept_id" field.
func (_c *ConceptEdgeCreate) SetToConceptID(v uuid.UUID) *ConceptEdgeCreate {
	_c.mutation.SetToConceptID(v)
	return _c
}

// SetEdgeType sets the "edge_type" field.
func (_c *ConceptEdgeCreate) SetEdgeType(v conceptedge.EdgeType) *ConceptEdgeCreate {
	_c.mutation.SetEdgeType(v)
	return _c
}

// SetNillableEdgeType sets the "edge_type" field if the given value is not nil.
func (_c *ConceptEdgeCreate) SetNillableEdgeType(v *conceptedge.EdgeType) *ConceptEdgeCreate {
	if v != nil {
		_c.SetEdgeType(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ConceptEdgeCreate) SetCreatedAt(v time.Time) *ConceptEdgeCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ConceptEdgeCreate) SetNillableCreatedAt(v *time.Time) *ConceptEdgeCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ConceptEdgeCreate) SetID(v uuid.UUID) *ConceptEdgeCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ConceptEdgeCreate) SetNillableID(v *uuid.UUID) *ConceptEdgeCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ConceptEdgeMutation object of the builder.
func (_c *ConceptEdgeCreate) Mutation() *ConceptEdgeMutation {
	return _c.mutation
}

// Save creates the ConceptEdge in the database.
func (_c *ConceptEdgeCreate) Save(ctx context.Context) (*ConceptEdge, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConceptEdgeCreate) SaveX(ctx context.Context) *ConceptEdge {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConceptEdgeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConceptEdgeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConceptEdgeCreate) defaults() {
	if _, ok := _c.mutation.EdgeType(); !ok {
		v := conceptedge.DefaultEdgeType
		_c.mutation.SetEdgeType(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := conceptedge.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := conceptedge.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConceptEdgeCreate) check() error {
	if _, ok := _c.mutation.GraphID(); !ok {
		return &ValidationError{Name: "graph_id", err: errors.New(`ent: missing required field "ConceptEdge.graph_id"`)}
	}
	if _, ok := _c.mutation.FromConceptID(); !ok {
		return &ValidationError{Name: "from_concept_id", err: errors.New(`ent: missing required field "ConceptEdge.from_concept_id"`)}
	}
	if _, ok := _c.mutation.ToConceptID(); !ok {
		return &ValidationError{Name: "to_concept_id", err: errors.New(`ent: missing required field "ConceptEdge.to_concept_id"`)}
	}
	if _, ok := _c.mutation.EdgeType(); !ok {
		return &ValidationError{Name: "edge_type", err: errors.New(`ent: missing required field "ConceptEdge.edge_type"`)}
	}
	if v, ok := _c.mutation.EdgeType(); ok {
		if err := conceptedge.EdgeTypeValidator(v); err != nil {
			return &ValidationError{Name: "edge_type", err: fmt.Errorf(`ent: validator failed for field "ConceptEdge.edge_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ConceptEdge.created_at"`)}
	}
	return nil
}

func (_c *ConceptEdgeCreate) sqlSave(ctx context.Context) (*ConceptEdge, error) {
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

func (_c *ConceptEdgeCreate) createSpec() (*ConceptEdge, *sqlgraph.CreateSpec) {
	var (
		_node = &ConceptEdge{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(conceptedge.Table, sqlgraph.NewFieldSpec(conceptedge.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.GraphID(); ok {
		_spec.SetField(conceptedge.FieldGraphID, field.TypeUUID, value)
		_node.GraphID = value
	}
	if value, ok := _c.mutation.FromConceptID(); ok {
		_spec.SetField(conceptedge.FieldFromConceptID, field.TypeUUID, value)
		_node.FromConceptID = value
	}
	if value, ok := _c.mutation.ToConceptID(); ok {
		_spec.SetField(conceptedge.FieldToConceptID, field.TypeUUID, value)
		_node.ToConceptID = value
	}
	if value, ok := _c.mutation.EdgeType(); ok {
		_spec.SetField(conceptedge.FieldEdgeType, field.TypeEnum, value)
		_node.EdgeType = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(conceptedge.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ConceptEdgeCreateBulk is the builder for creating many ConceptEdge entities in bulk.
type ConceptEdgeCreateBulk struct {
	config
	err      error
	builders []*ConceptEdgeCreate
}

// Save creates the ConceptEdge entities in the database.
func (_c *ConceptEdgeCreateBulk) Save(ctx context.Context) ([]*ConceptEdge, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ConceptEdge, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConceptEdgeMutation)
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
func (_c *ConceptEdgeCreateBulk) SaveX(ctx context.Context) []*ConceptEdge {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConceptEdgeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConceptEdgeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
