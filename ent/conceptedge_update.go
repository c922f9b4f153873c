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
	"github.com/praxislearn/praxis/ent/conceptedge"
	"github.com/praxislearn/praxis/ent/predicate"
)

// ConceptEdgeUpdate is the builder for updating ConceptEdge entities.
type ConceptEdgeUpdate struct {
	config
	hooks    []Hook
	mutation *ConceptEdgeMutation
}

// Where appends a list predicates to the ConceptEdgeUpdate builder.
func (_u *ConceptEdgeUpdate) Where(ps ...predicate.ConceptEdge) *ConceptEdgeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetGraphID sets the "graph_id" field.
func (_u *ConceptEdgeUpdate) SetGraphID(v uuid.UUID) *ConceptEdgeUpdate {
	_u.mutation.SetGraphID(v)
	return _u
}

// SetNillableGraphID sets the "graph_id" field if the given value is not nil.
func (_u *ConceptEdgeUpdate) SetNillableGraphID(v *uuid.UUID) *ConceptEdgeUpdate {
	if v != nil {
		_u.SetGraphID(*v)
	}
	return _u
}

// SetFromConceptID sets the "from_concept_id" field.
func (_u *ConceptEdgeUpdate) SetFromConceptID(v uuid.UUID) *ConceptEdgeUpdate {
	_u.mutation.SetFromConceptID(v)
	return _u
}

// SetNillableFromConceptID sets the "from_concept_id" field if the given value is not nil.
func (_u *ConceptEdgeUpdate) SetNillableFromConceptID(v *uuid.UUID) *ConceptEdgeUpdate {
	if v != nil {
		_u.SetFromConceptID(*v)
	}
	return _u
}

// SetToConceptID sets the "to_concept_id" field.
func (_u *ConceptEdgeUpdate) SetToConceptID(v uuid.UUID) *ConceptEdgeUpdate {
	_u.mutation.SetToConceptID(v)
	return _u
}

// SetNillableToConceptID sets the "to_concept_id" field if the given value is not nil.
func (_u *ConceptEdgeUpdate) SetNillableToConceptID(v *uuid.UUID) *ConceptEdgeUpdate {
	if v != nil {
		_u.SetToConceptID(*v)
	}
	return _u
}

// SetEdgeType sets the "edge_type" field.
func (_u *ConceptEdgeUpdate) SetEdgeType(v conceptedge.EdgeType) *ConceptEdgeUpdate {
	_u.mutation.SetEdgeType(v)
	return _u
}

// SetNillableEdgeType sets the "edge_type" field if the given value is not nil.
func (_u *ConceptEdgeUpdate) SetNillableEdgeType(v *conceptedge.EdgeType) *ConceptEdgeUpdate {
	if v != nil {
		_u.SetEdgeType(*v)
	}
	return _u
}

// Mutation returns the ConceptEdgeMutation object of the builder.
func (_u *ConceptEdgeUpdate) Mutation() *ConceptEdgeMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConceptEdgeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConceptEdgeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConceptEdgeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConceptEdgeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConceptEdgeUpdate) check() error {
	if v, ok := _u.mutation.EdgeType(); ok {
		if err := conceptedge.EdgeTypeValidator(v); err != nil {
			return &ValidationError{Name: "edge_type", err: fmt.Errorf(`ent: validator failed for field "ConceptEdge.edge_type": %w`, err)}
		}
	}
	return nil
}

func (_u *ConceptEdgeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conceptedge.Table, conceptedge.Columns, sqlgraph.NewFieldSpec(conceptedge.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GraphID(); ok {
		_spec.SetField(conceptedge.FieldGraphID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.FromConceptID(); ok {
		_spec.SetField(conceptedge.FieldFromConceptID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ToConceptID(); ok {
		_spec.SetField(conceptedge.FieldToConceptID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.EdgeType(); ok {
		_spec.SetField(conceptedge.FieldEdgeType, field.TypeEnum, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conceptedge.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConceptEdgeUpdateOne is the builder for updating a single ConceptEdge entity.
type ConceptEdgeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConceptEdgeMutation
}

// SetGraphID sets the "graph_id" field.
func (_u *ConceptEdgeUpdateOne) SetGraphID(v uuid.UUID) *ConceptEdgeUpdateOne {
	_u.mutation.SetGraphID(v)
	return _u
}

// SetNillableGraphID sets the "graph_id" field if the given value is not nil.
func (_u *ConceptEdgeUpdateOne) SetNillableGraphID(v *uuid.UUID) *ConceptEdgeUpdateOne {
	if v != nil {
		_u.SetGraphID(*v)
	}
	return _u
}

// SetFromConceptID sets the "from_concept_id" field.
func (_u *ConceptEdgeUpdateOne) SetFromConceptID(v uuid.UUID) *ConceptEdgeUpdateOne {
	_u.mutation.SetFromConceptID(v)
	return _u
}

// SetNillableFromConceptID sets the "from_concept_id" field if the given value is not nil.
func (_u *ConceptEdgeUpdateOne) SetNillableFromConceptID(v *uuid.UUID) *ConceptEdgeUpdateOne {
	if v != nil {
		_u.SetFromConceptID(*v)
	}
	return _u
}

// SetToConceptID sets the "to_concept_id" field.
func (_u *ConceptEdgeUpdateOne) SetToConceptID(v uuid.UUID) *ConceptEdgeUpdateOne {
	_u.mutation.SetToConceptID(v)
	return _u
}

// SetNillableToConceptID sets the "to_concept_id" field if the given value is not nil.
func (_u *ConceptEdgeUpdateOne) SetNillableToConceptID(v *uuid.UUID) *ConceptEdgeUpdateOne {
	if v != nil {
		_u.SetToConceptID(*v)
	}
	return _u
}

// SetEdgeType sets the "edge_type" field.
func (_u *ConceptEdgeUpdateOne) SetEdgeType(v conceptedge.EdgeType) *ConceptEdgeUpdateOne {
	_u.mutation.SetEdgeType(v)
	return _u
}

// SetNillableEdgeType sets the "edge_type" field if the given value is not nil.
func (_u *ConceptEdgeUpdateOne) SetNillableEdgeType(v *conceptedge.EdgeType) *ConceptEdgeUpdateOne {
	if v != nil {
		_u.SetEdgeType(*v)
	}
	return _u
}

// Mutation returns the ConceptEdgeMutation object of the builder.
func (_u *ConceptEdgeUpdateOne) Mutation() *ConceptEdgeMutation {
	return _u.mutation
}

// Where appends a list predicates to the ConceptEdgeUpdate builder.
func (_u *ConceptEdgeUpdateOne) Where(ps ...predicate.ConceptEdge) *ConceptEdgeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConceptEdgeUpdateOne) Select(field string, fields ...string) *ConceptEdgeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ConceptEdge entity.
func (_u *ConceptEdgeUpdateOne) Save(ctx context.Context) (*ConceptEdge, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConceptEdgeUpdateOne) SaveX(ctx context.Context) *ConceptEdge {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConceptEdgeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConceptEdgeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConceptEdgeUpdateOne) check() error {
	if v, ok := _u.mutation.EdgeType(); ok {
		if err := conceptedge.EdgeTypeValidator(v); err != nil {
			return &ValidationError{Name: "edge_type", err: fmt.Errorf(`ent: validator failed for field "ConceptEdge.edge_type": %w`, err)}
		}
	}
	return nil
}

func (_u *ConceptEdgeUpdateOne) sqlSave(ctx context.Context) (_node *ConceptEdge, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conceptedge.Table, conceptedge.Columns, sqlgraph.NewFieldSpec(conceptedge.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ConceptEdge.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, conceptedge.FieldID)
		for _, f := range fields {
			if !conceptedge.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != conceptedge.FieldID {
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
		_spec.SetField(conceptedge.FieldGraphID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.FromConceptID(); ok {
		_spec.SetField(conceptedge.FieldFromConceptID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ToConceptID(); ok {
		_spec.SetField(conceptedge.FieldToConceptID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.EdgeType(); ok {
		_spec.SetField(conceptedge.FieldEdgeType, field.TypeEnum, value)
	}
	_node = &ConceptEdge{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conceptedge.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
