// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hsrmotors/leadpulse/ent/predicate"
	"github.com/hsrmotors/leadpulse/ent/salesexecutive"
)

// SalesExecutiveUpdate is the builder for updating SalesExecutive entities.
type SalesExecutiveUpdate struct {
	config
	hooks    []Hook
	mutation *SalesExecutiveMutation
}

// Where appends a list predicates to the SalesExecutiveUpdate builder.
func (_u *SalesExecutiveUpdate) Where(ps ...predicate.SalesExecutive) *SalesExecutiveUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *SalesExecutiveUpdate) SetName(v string) *SalesExecutiveUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SalesExecutiveUpdate) SetNillableName(v *string) *SalesExecutiveUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetAvatar sets the "avatar" field.
func (_u *SalesExecutiveUpdate) SetAvatar(v string) *SalesExecutiveUpdate {
	_u.mutation.SetAvatar(v)
	return _u
}

// SetNillableAvatar sets the "avatar" field if the given value is not nil.
func (_u *SalesExecutiveUpdate) SetNillableAvatar(v *string) *SalesExecutiveUpdate {
	if v != nil {
		_u.SetAvatar(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *SalesExecutiveUpdate) SetEmail(v string) *SalesExecutiveUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *SalesExecutiveUpdate) SetNillableEmail(v *string) *SalesExecutiveUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetPhone sets the "phone" field.
func (_u *SalesExecutiveUpdate) SetPhone(v string) *SalesExecutiveUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *SalesExecutiveUpdate) SetNillablePhone(v *string) *SalesExecutiveUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// SetTeam sets the "team" field.
func (_u *SalesExecutiveUpdate) SetTeam(v string) *SalesExecutiveUpdate {
	_u.mutation.SetTeam(v)
	return _u
}

// SetNillableTeam sets the "team" field if the given value is not nil.
func (_u *SalesExecutiveUpdate) SetNillableTeam(v *string) *SalesExecutiveUpdate {
	if v != nil {
		_u.SetTeam(*v)
	}
	return _u
}

// ClearTeam clears the value of the "team" field.
func (_u *SalesExecutiveUpdate) ClearTeam() *SalesExecutiveUpdate {
	_u.mutation.ClearTeam()
	return _u
}

// SetLeadsAssigned sets the "leads_assigned" field.
func (_u *SalesExecutiveUpdate) SetLeadsAssigned(v int) *SalesExecutiveUpdate {
	_u.mutation.ResetLeadsAssigned()
	_u.mutation.SetLeadsAssigned(v)
	return _u
}

// SetNillableLeadsAssigned sets the "leads_assigned" field if the given value is not nil.
func (_u *SalesExecutiveUpdate) SetNillableLeadsAssigned(v *int) *SalesExecutiveUpdate {
	if v != nil {
		_u.SetLeadsAssigned(*v)
	}
	return _u
}

// AddLeadsAssigned adds value to the "leads_assigned" field.
func (_u *SalesExecutiveUpdate) AddLeadsAssigned(v int) *SalesExecutiveUpdate {
	_u.mutation.AddLeadsAssigned(v)
	return _u
}

// Mutation returns the SalesExecutiveMutation object of the builder.
func (_u *SalesExecutiveUpdate) Mutation() *SalesExecutiveMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SalesExecutiveUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SalesExecutiveUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SalesExecutiveUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SalesExecutiveUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SalesExecutiveUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := salesexecutive.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "SalesExecutive.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LeadsAssigned(); ok {
		if err := salesexecutive.LeadsAssignedValidator(v); err != nil {
			return &ValidationError{Name: "leads_assigned", err: fmt.Errorf(`ent: validator failed for field "SalesExecutive.leads_assigned": %w`, err)}
		}
	}
	return nil
}

func (_u *SalesExecutiveUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(salesexecutive.Table, salesexecutive.Columns, sqlgraph.NewFieldSpec(salesexecutive.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(salesexecutive.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Avatar(); ok {
		_spec.SetField(salesexecutive.FieldAvatar, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(salesexecutive.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(salesexecutive.FieldPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Team(); ok {
		_spec.SetField(salesexecutive.FieldTeam, field.TypeString, value)
	}
	if _u.mutation.TeamCleared() {
		_spec.ClearField(salesexecutive.FieldTeam, field.TypeString)
	}
	if value, ok := _u.mutation.LeadsAssigned(); ok {
		_spec.SetField(salesexecutive.FieldLeadsAssigned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLeadsAssigned(); ok {
		_spec.AddField(salesexecutive.FieldLeadsAssigned, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{salesexecutive.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SalesExecutiveUpdateOne is the builder for updating a single SalesExecutive entity.
type SalesExecutiveUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SalesExecutiveMutation
}

// SetName sets the "name" field.
func (_u *SalesExecutiveUpdateOne) SetName(v string) *SalesExecutiveUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SalesExecutiveUpdateOne) SetNillableName(v *string) *SalesExecutiveUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetAvatar sets the "avatar" field.
func (_u *SalesExecutiveUpdateOne) SetAvatar(v string) *SalesExecutiveUpdateOne {
	_u.mutation.SetAvatar(v)
	return _u
}

// SetNillableAvatar sets the "avatar" field if the given value is not nil.
func (_u *SalesExecutiveUpdateOne) SetNillableAvatar(v *string) *SalesExecutiveUpdateOne {
	if v != nil {
		_u.SetAvatar(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *SalesExecutiveUpdateOne) SetEmail(v string) *SalesExecutiveUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *SalesExecutiveUpdateOne) SetNillableEmail(v *string) *SalesExecutiveUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetPhone sets the "phone" field.
func (_u *SalesExecutiveUpdateOne) SetPhone(v string) *SalesExecutiveUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *SalesExecutiveUpdateOne) SetNillablePhone(v *string) *SalesExecutiveUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// SetTeam sets the "team" field.
func (_u *SalesExecutiveUpdateOne) SetTeam(v string) *SalesExecutiveUpdateOne {
	_u.mutation.SetTeam(v)
	return _u
}

// SetNillableTeam sets the "team" field if the given value is not nil.
func (_u *SalesExecutiveUpdateOne) SetNillableTeam(v *string) *SalesExecutiveUpdateOne {
	if v != nil {
		_u.SetTeam(*v)
	}
	return _u
}

// ClearTeam clears the value of the "team" field.
func (_u *SalesExecutiveUpdateOne) ClearTeam() *SalesExecutiveUpdateOne {
	_u.mutation.ClearTeam()
	return _u
}

// SetLeadsAssigned sets the "leads_assigned" field.
func (_u *SalesExecutiveUpdateOne) SetLeadsAssigned(v int) *SalesExecutiveUpdateOne {
	_u.mutation.ResetLeadsAssigned()
	_u.mutation.SetLeadsAssigned(v)
	return _u
}

// SetNillableLeadsAssigned sets the "leads_assigned" field if the given value is not nil.
func (_u *SalesExecutiveUpdateOne) SetNillableLeadsAssigned(v *int) *SalesExecutiveUpdateOne {
	if v != nil {
		_u.SetLeadsAssigned(*v)
	}
	return _u
}

// AddLeadsAssigned adds value to the "leads_assigned" field.
func (_u *SalesExecutiveUpdateOne) AddLeadsAssigned(v int) *SalesExecutiveUpdateOne {
	_u.mutation.AddLeadsAssigned(v)
	return _u
}

// Mutation returns the SalesExecutiveMutation object of the builder.
func (_u *SalesExecutiveUpdateOne) Mutation() *SalesExecutiveMutation {
	return _u.mutation
}

// Where appends a list predicates to the SalesExecutiveUpdate builder.
func (_u *SalesExecutiveUpdateOne) Where(ps ...predicate.SalesExecutive) *SalesExecutiveUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SalesExecutiveUpdateOne) Select(field string, fields ...string) *SalesExecutiveUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SalesExecutive entity.
func (_u *SalesExecutiveUpdateOne) Save(ctx context.Context) (*SalesExecutive, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SalesExecutiveUpdateOne) SaveX(ctx context.Context) *SalesExecutive {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SalesExecutiveUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SalesExecutiveUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SalesExecutiveUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := salesexecutive.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "SalesExecutive.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LeadsAssigned(); ok {
		if err := salesexecutive.LeadsAssignedValidator(v); err != nil {
			return &ValidationError{Name: "leads_assigned", err: fmt.Errorf(`ent: validator failed for field "SalesExecutive.leads_assigned": %w`, err)}
		}
	}
	return nil
}

func (_u *SalesExecutiveUpdateOne) sqlSave(ctx context.Context) (_node *SalesExecutive, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(salesexecutive.Table, salesexecutive.Columns, sqlgraph.NewFieldSpec(salesexecutive.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SalesExecutive.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, salesexecutive.FieldID)
		for _, f := range fields {
			if !salesexecutive.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != salesexecutive.FieldID {
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
		_spec.SetField(salesexecutive.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Avatar(); ok {
		_spec.SetField(salesexecutive.FieldAvatar, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(salesexecutive.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(salesexecutive.FieldPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Team(); ok {
		_spec.SetField(salesexecutive.FieldTeam, field.TypeString, value)
	}
	if _u.mutation.TeamCleared() {
		_spec.ClearField(salesexecutive.FieldTeam, field.TypeString)
	}
	if value, ok := _u.mutation.LeadsAssigned(); ok {
		_spec.SetField(salesexecutive.FieldLeadsAssigned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLeadsAssigned(); ok {
		_spec.AddField(salesexecutive.FieldLeadsAssigned, field.TypeInt, value)
	}
	_node = &SalesExecutive{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{salesexecutive.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
