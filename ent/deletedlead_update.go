// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hsrmotors/leadpulse/ent/deletedlead"
	"github.com/hsrmotors/leadpulse/ent/predicate"
)

// DeletedLeadUpdate is the builder for updating DeletedLead entities.
type DeletedLeadUpdate struct {
	config
	hooks    []Hook
	mutation *DeletedLeadMutation
}

// Where appends a list predicates to the DeletedLeadUpdate builder.
func (_u *DeletedLeadUpdate) Where(ps ...predicate.DeletedLead) *DeletedLeadUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLeadID sets the "lead_id" field.
func (_u *DeletedLeadUpdate) SetLeadID(v int) *DeletedLeadUpdate {
	_u.mutation.ResetLeadID()
	_u.mutation.SetLeadID(v)
	return _u
}

// SetNillableLeadID sets the "lead_id" field if the given value is not nil.
func (_u *DeletedLeadUpdate) SetNillableLeadID(v *int) *DeletedLeadUpdate {
	if v != nil {
		_u.SetLeadID(*v)
	}
	return _u
}

// AddLeadID adds value to the "lead_id" field.
func (_u *DeletedLeadUpdate) AddLeadID(v int) *DeletedLeadUpdate {
	_u.mutation.AddLeadID(v)
	return _u
}

// SetLeadName sets the "lead_name" field.
func (_u *DeletedLeadUpdate) SetLeadName(v string) *DeletedLeadUpdate {
	_u.mutation.SetLeadName(v)
	return _u
}

// SetNillableLeadName sets the "lead_name" field if the given value is not nil.
func (_u *DeletedLeadUpdate) SetNillableLeadName(v *string) *DeletedLeadUpdate {
	if v != nil {
		_u.SetLeadName(*v)
	}
	return _u
}

// SetLeadSource sets the "lead_source" field.
func (_u *DeletedLeadUpdate) SetLeadSource(v string) *DeletedLeadUpdate {
	_u.mutation.SetLeadSource(v)
	return _u
}

// SetNillableLeadSource sets the "lead_source" field if the given value is not nil.
func (_u *DeletedLeadUpdate) SetNillableLeadSource(v *string) *DeletedLeadUpdate {
	if v != nil {
		_u.SetLeadSource(*v)
	}
	return _u
}

// SetLeadStatus sets the "lead_status" field.
func (_u *DeletedLeadUpdate) SetLeadStatus(v string) *DeletedLeadUpdate {
	_u.mutation.SetLeadStatus(v)
	return _u
}

// SetNillableLeadStatus sets the "lead_status" field if the given value is not nil.
func (_u *DeletedLeadUpdate) SetNillableLeadStatus(v *string) *DeletedLeadUpdate {
	if v != nil {
		_u.SetLeadStatus(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *DeletedLeadUpdate) SetReason(v string) *DeletedLeadUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *DeletedLeadUpdate) SetNillableReason(v *string) *DeletedLeadUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// Mutation returns the DeletedLeadMutation object of the builder.
func (_u *DeletedLeadUpdate) Mutation() *DeletedLeadMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DeletedLeadUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DeletedLeadUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DeletedLeadUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DeletedLeadUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DeletedLeadUpdate) check() error {
	if v, ok := _u.mutation.Reason(); ok {
		if err := deletedlead.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "DeletedLead.reason": %w`, err)}
		}
	}
	return nil
}

func (_u *DeletedLeadUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(deletedlead.Table, deletedlead.Columns, sqlgraph.NewFieldSpec(deletedlead.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LeadID(); ok {
		_spec.SetField(deletedlead.FieldLeadID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLeadID(); ok {
		_spec.AddField(deletedlead.FieldLeadID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LeadName(); ok {
		_spec.SetField(deletedlead.FieldLeadName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LeadSource(); ok {
		_spec.SetField(deletedlead.FieldLeadSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.LeadStatus(); ok {
		_spec.SetField(deletedlead.FieldLeadStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(deletedlead.FieldReason, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{deletedlead.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DeletedLeadUpdateOne is the builder for updating a single DeletedLead entity.
type DeletedLeadUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DeletedLeadMutation
}

// SetLeadID sets the "lead_id" field.
func (_u *DeletedLeadUpdateOne) SetLeadID(v int) *DeletedLeadUpdateOne {
	_u.mutation.ResetLeadID()
	_u.mutation.SetLeadID(v)
	return _u
}

// SetNillableLeadID sets the "lead_id" field if the given value is not nil.
func (_u *DeletedLeadUpdateOne) SetNillableLeadID(v *int) *DeletedLeadUpdateOne {
	if v != nil {
		_u.SetLeadID(*v)
	}
	return _u
}

// AddLeadID adds value to the "lead_id" field.
func (_u *DeletedLeadUpdateOne) AddLeadID(v int) *DeletedLeadUpdateOne {
	_u.mutation.AddLeadID(v)
	return _u
}

// SetLeadName sets the "lead_name" field.
func (_u *DeletedLeadUpdateOne) SetLeadName(v string) *DeletedLeadUpdateOne {
	_u.mutation.SetLeadName(v)
	return _u
}

// SetNillableLeadName sets the "lead_name" field if the given value is not nil.
func (_u *DeletedLeadUpdateOne) SetNillableLeadName(v *string) *DeletedLeadUpdateOne {
	if v != nil {
		_u.SetLeadName(*v)
	}
	return _u
}

// SetLeadSource sets the "lead_source" field.
func (_u *DeletedLeadUpdateOne) SetLeadSource(v string) *DeletedLeadUpdateOne {
	_u.mutation.SetLeadSource(v)
	return _u
}

// SetNillableLeadSource sets the "lead_source" field if the given value is not nil.
func (_u *DeletedLeadUpdateOne) SetNillableLeadSource(v *string) *DeletedLeadUpdateOne {
	if v != nil {
		_u.SetLeadSource(*v)
	}
	return _u
}

// SetLeadStatus sets the "lead_status" field.
func (_u *DeletedLeadUpdateOne) SetLeadStatus(v string) *DeletedLeadUpdateOne {
	_u.mutation.SetLeadStatus(v)
	return _u
}

// SetNillableLeadStatus sets the "lead_status" field if the given value is not nil.
func (_u *DeletedLeadUpdateOne) SetNillableLeadStatus(v *string) *DeletedLeadUpdateOne {
	if v != nil {
		_u.SetLeadStatus(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *DeletedLeadUpdateOne) SetReason(v string) *DeletedLeadUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *DeletedLeadUpdateOne) SetNillableReason(v *string) *DeletedLeadUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// Mutation returns the DeletedLeadMutation object of the builder.
func (_u *DeletedLeadUpdateOne) Mutation() *DeletedLeadMutation {
	return _u.mutation
}

// Where appends a list predicates to the DeletedLeadUpdate builder.
func (_u *DeletedLeadUpdateOne) Where(ps ...predicate.DeletedLead) *DeletedLeadUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DeletedLeadUpdateOne) Select(field string, fields ...string) *DeletedLeadUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DeletedLead entity.
func (_u *DeletedLeadUpdateOne) Save(ctx context.Context) (*DeletedLead, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DeletedLeadUpdateOne) SaveX(ctx context.Context) *DeletedLead {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DeletedLeadUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DeletedLeadUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DeletedLeadUpdateOne) check() error {
	if v, ok := _u.mutation.Reason(); ok {
		if err := deletedlead.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "DeletedLead.reason": %w`, err)}
		}
	}
	return nil
}

func (_u *DeletedLeadUpdateOne) sqlSave(ctx context.Context) (_node *DeletedLead, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(deletedlead.Table, deletedlead.Columns, sqlgraph.NewFieldSpec(deletedlead.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DeletedLead.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, deletedlead.FieldID)
		for _, f := range fields {
			if !deletedlead.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != deletedlead.FieldID {
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
	if value, ok := _u.mutation.LeadID(); ok {
		_spec.SetField(deletedlead.FieldLeadID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLeadID(); ok {
		_spec.AddField(deletedlead.FieldLeadID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LeadName(); ok {
		_spec.SetField(deletedlead.FieldLeadName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LeadSource(); ok {
		_spec.SetField(deletedlead.FieldLeadSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.LeadStatus(); ok {
		_spec.SetField(deletedlead.FieldLeadStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(deletedlead.FieldReason, field.TypeString, value)
	}
	_node = &DeletedLead{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{deletedlead.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
