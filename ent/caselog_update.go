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
	"github.com/fincomply/vigil/ent/caselog"
	"github.com/fincomply/vigil/ent/predicate"
)

// CaseLogUpdate is the builder for updating CaseLog entities.
type CaseLogUpdate struct {
	config
	hooks    []Hook
	mutation *CaseLogMutation
}

// Where appends a list predicates to the CaseLogUpdate builder.
func (_u *CaseLogUpdate) Where(ps ...predicate.CaseLog) *CaseLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCaseID sets the "case_id" field.
func (_u *CaseLogUpdate) SetCaseID(v string) *CaseLogUpdate {
	_u.mutation.SetCaseID(v)
	return _u
}

// SetNillableCaseID sets the "case_id" field if the given value is not nil.
func (_u *CaseLogUpdate) SetNillableCaseID(v *string) *CaseLogUpdate {
	if v != nil {
		_u.SetCaseID(*v)
	}
	return _u
}

// SetAgent sets the "agent" field.
func (_u *CaseLogUpdate) SetAgent(v string) *CaseLogUpdate {
	_u.mutation.SetAgent(v)
	return _u
}

// SetNillableAgent sets the "agent" field if the given value is not nil.
func (_u *CaseLogUpdate) SetNillableAgent(v *string) *CaseLogUpdate {
	if v != nil {
		_u.SetAgent(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *CaseLogUpdate) SetMessage(v string) *CaseLogUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *CaseLogUpdate) SetNillableMessage(v *string) *CaseLogUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetSequence sets the "sequence" field.
func (_u *CaseLogUpdate) SetSequence(v int) *CaseLogUpdate {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *CaseLogUpdate) SetNillableSequence(v *int) *CaseLogUpdate {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *CaseLogUpdate) AddSequence(v int) *CaseLogUpdate {
	_u.mutation.AddSequence(v)
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *CaseLogUpdate) SetExpiresAt(v time.Time) *CaseLogUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *CaseLogUpdate) SetNillableExpiresAt(v *time.Time) *CaseLogUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *CaseLogUpdate) ClearExpiresAt() *CaseLogUpdate {
	_u.mutation.ClearExpiresAt()
	return _u
}

// Mutation returns the CaseLogMutation object of the builder.
func (_u *CaseLogUpdate) Mutation() *CaseLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CaseLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CaseLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CaseLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CaseLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CaseLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(caselog.Table, caselog.Columns, sqlgraph.NewFieldSpec(caselog.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CaseID(); ok {
		_spec.SetField(caselog.FieldCaseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Agent(); ok {
		_spec.SetField(caselog.FieldAgent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(caselog.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(caselog.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(caselog.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(caselog.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(caselog.FieldExpiresAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{caselog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CaseLogUpdateOne is the builder for updating a single CaseLog entity.
type CaseLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CaseLogMutation
}

// SetCaseID sets the "case_id" field.
func (_u *CaseLogUpdateOne) SetCaseID(v string) *CaseLogUpdateOne {
	_u.mutation.SetCaseID(v)
	return _u
}

// SetNillableCaseID sets the "case_id" field if the given value is not nil.
func (_u *CaseLogUpdateOne) SetNillableCaseID(v *string) *CaseLogUpdateOne {
	if v != nil {
		_u.SetCaseID(*v)
	}
	return _u
}

// SetAgent sets the "agent" field.
func (_u *CaseLogUpdateOne) SetAgent(v string) *CaseLogUpdateOne {
	_u.mutation.SetAgent(v)
	return _u
}

// SetNillableAgent sets the "agent" field if the given value is not nil.
func (_u *CaseLogUpdateOne) SetNillableAgent(v *string) *CaseLogUpdateOne {
	if v != nil {
		_u.SetAgent(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *CaseLogUpdateOne) SetMessage(v string) *CaseLogUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *CaseLogUpdateOne) SetNillableMessage(v *string) *CaseLogUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetSequence sets the "sequence" field.
func (_u *CaseLogUpdateOne) SetSequence(v int) *CaseLogUpdateOne {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *CaseLogUpdateOne) SetNillableSequence(v *int) *CaseLogUpdateOne {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *CaseLogUpdateOne) AddSequence(v int) *CaseLogUpdateOne {
	_u.mutation.AddSequence(v)
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *CaseLogUpdateOne) SetExpiresAt(v time.Time) *CaseLogUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *CaseLogUpdateOne) SetNillableExpiresAt(v *time.Time) *CaseLogUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *CaseLogUpdateOne) ClearExpiresAt() *CaseLogUpdateOne {
	_u.mutation.ClearExpiresAt()
	return _u
}

// Mutation returns the CaseLogMutation object of the builder.
func (_u *CaseLogUpdateOne) Mutation() *CaseLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the CaseLogUpdate builder.
func (_u *CaseLogUpdateOne) Where(ps ...predicate.CaseLog) *CaseLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CaseLogUpdateOne) Select(field string, fields ...string) *CaseLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CaseLog entity.
func (_u *CaseLogUpdateOne) Save(ctx context.Context) (*CaseLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CaseLogUpdateOne) SaveX(ctx context.Context) *CaseLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CaseLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CaseLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CaseLogUpdateOne) sqlSave(ctx context.Context) (_node *CaseLog, err error) {
	_spec := sqlgraph.NewUpdateSpec(caselog.Table, caselog.Columns, sqlgraph.NewFieldSpec(caselog.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CaseLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, caselog.FieldID)
		for _, f := range fields {
			if !caselog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != caselog.FieldID {
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
	if value, ok := _u.mutation.CaseID(); ok {
		_spec.SetField(caselog.FieldCaseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Agent(); ok {
		_spec.SetField(caselog.FieldAgent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(caselog.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(caselog.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(caselog.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(caselog.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(caselog.FieldExpiresAt, field.TypeTime)
	}
	_node = &CaseLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{caselog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
