// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/praxislearn/praxis/ent/practicesession"
	"github.com/praxislearn/praxis/ent/predicate"
)

// PracticeSessionUpdate is the builder for updating PracticeSession entities.
type PracticeSessionUpdate struct {
	config
	hooks    []Hook
	mutation *PracticeSessionMutation
}

// Where appends a list predicates to the PracticeSessionUpdate builder.
func (_u *PracticeSessionUpdate) Where(ps ...predicate.PracticeSession) *PracticeSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetGraphID sets the "graph_id" field.
func (_u *PracticeSessionUpdate) SetGraphID(v uuid.UUID) *PracticeSessionUpdate {
	_u.mutation.SetGraphID(v)
	return _u
}

// SetNillableGraphID sets the "graph_id" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableGraphID(v *uuid.UUID) *PracticeSessionUpdate {
	if v != nil {
		_u.SetGraphID(*v)
	}
	return _u
}

// ClearGraphID clears the value of the "graph_id" field.
func (_u *PracticeSessionUpdate) ClearGraphID() *PracticeSessionUpdate {
	_u.mutation.ClearGraphID()
	return _u
}

// SetQuestionCount sets the "question_count" field.
func (_u *PracticeSessionUpdate) SetQuestionCount(v int) *PracticeSessionUpdate {
	_u.mutation.ResetQuestionCount()
	_u.mutation.SetQuestionCount(v)
	return _u
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableQuestionCount(v *int) *PracticeSessionUpdate {
	if v != nil {
		_u.SetQuestionCount(*v)
	}
	return _u
}

// AddQuestionCount adds value to the "question_count" field.
func (_u *PracticeSessionUpdate) AddQuestionCount(v int) *PracticeSessionUpdate {
	_u.mutation.AddQuestionCount(v)
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *PracticeSessionUpdate) SetCorrectCount(v int) *PracticeSessionUpdate {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableCorrectCount(v *int) *PracticeSessionUpdate {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *PracticeSessionUpdate) AddCorrectCount(v int) *PracticeSessionUpdate {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *PracticeSessionUpdate) SetStatus(v practicesession.Status) *PracticeSessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableStatus(v *practicesession.Status) *PracticeSessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *PracticeSessionUpdate) SetEndedAt(v time.Time) *PracticeSessionUpdate {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableEndedAt(v *time.Time) *PracticeSessionUpdate {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *PracticeSessionUpdate) ClearEndedAt() *PracticeSessionUpdate {
	_u.mutation.ClearEndedAt()
	return _u
}

// Mutation returns the PracticeSessionMutation object of the builder.
func (_u *PracticeSessionUpdate) Mutation() *PracticeSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PracticeSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PracticeSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PracticeSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PracticeSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PracticeSessionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := practicesession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PracticeSession.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PracticeSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(practicesession.Table, practicesession.Columns, sqlgraph.NewFieldSpec(practicesession.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GraphID(); ok {
		_spec.SetField(practicesession.FieldGraphID, field.TypeUUID, value)
	}
	if _u.mutation.GraphIDCleared() {
		_spec.ClearField(practicesession.FieldGraphID, field.TypeUUID)
	}
	if value, ok := _u.mutation.QuestionCount(); ok {
		_spec.SetField(practicesession.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionCount(); ok {
		_spec.AddField(practicesession.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(practicesession.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(practicesession.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(practicesession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(practicesession.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(practicesession.FieldEndedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{practicesession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PracticeSessionUpdateOne is the builder for updating a single PracticeSession entity.
type PracticeSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PracticeSessionMutation
}

// SetGraphID sets the "graph_id" field.
func (_u *PracticeSessionUpdateOne) SetGraphID(v uuid.UUID) *PracticeSessionUpdateOne {
	_u.mutation.SetGraphID(v)
	return _u
}

// SetNillableGraphID sets the "graph_id" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableGraphID(v *uuid.UUID) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetGraphID(*v)
	}
	return _u
}

// ClearGraphID clears the value of the "graph_id" field.
func (_u *PracticeSessionUpdateOne) ClearGraphID() *PracticeSessionUpdateOne {
	_u.mutation.ClearGraphID()
	return _u
}

// SetQuestionCount sets the "question_count" field.
func (_u *PracticeSessionUpdateOne) SetQuestionCount(v int) *PracticeSessionUpdateOne {
	_u.mutation.ResetQuestionCount()
	_u.mutation.SetQuestionCount(v)
	return _u
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableQuestionCount(v *int) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetQuestionCount(*v)
	}
	return _u
}

// AddQuestionCount adds value to the "question_count" field.
func (_u *PracticeSessionUpdateOne) AddQuestionCount(v int) *PracticeSessionUpdateOne {
	_u.mutation.AddQuestionCount(v)
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *PracticeSessionUpdateOne) SetCorrectCount(v int) *PracticeSessionUpdateOne {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableCorrectCount(v *int) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *PracticeSessionUpdateOne) AddCorrectCount(v int) *PracticeSessionUpdateOne {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *PracticeSessionUpdateOne) SetStatus(v practicesession.Status) *PracticeSessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableStatus(v *practicesession.Status) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *PracticeSessionUpdateOne) SetEndedAt(v time.Time) *PracticeSessionUpdateOne {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableEndedAt(v *time.Time) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *PracticeSessionUpdateOne) ClearEndedAt() *PracticeSessionUpdateOne {
	_u.mutation.ClearEndedAt()
	return _u
}

// Mutation returns the PracticeSessionMutation object of the builder.
func (_u *PracticeSessionUpdateOne) Mutation() *PracticeSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the PracticeSessionUpdate builder.
func (_u *PracticeSessionUpdateOne) Where(ps ...predicate.PracticeSession) *PracticeSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PracticeSessionUpdateOne) Select(field string, fields ...string) *PracticeSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PracticeSession entity.
func (_u *PracticeSessionUpdateOne) Save(ctx context.Context) (*PracticeSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PracticeSessionUpdateOne) SaveX(ctx context.Context) *PracticeSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PracticeSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PracticeSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PracticeSessionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := practicesession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PracticeSession.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PracticeSessionUpdateOne) sqlSave(ctx context.Context) (_node *PracticeSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(practicesession.Table, practicesession.Columns, sqlgraph.NewFieldSpec(practicesession.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PracticeSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, practicesession.FieldID)
		for _, f := range fields {
			if !practicesession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != practicesession.FieldID {
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
		_spec.SetField(practicesession.FieldGraphID, field.TypeUUID, value)
	}
	if _u.mutation.GraphIDCleared() {
		_spec.ClearField(practicesession.FieldGraphID, field.TypeUUID)
	}
	if value, ok := _u.mutation.QuestionCount(); ok {
		_spec.SetField(practicesession.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionCount(); ok {
		_spec.AddField(practicesession.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(practicesession.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(practicesession.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(practicesession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(practicesession.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(practicesession.FieldEndedAt, field.TypeTime)
	}
	_node = &PracticeSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{practicesession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
