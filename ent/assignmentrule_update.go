// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hsrmotors/leadpulse/ent/assignmentrule"
	"github.com/hsrmotors/leadpulse/ent/predicate"
)

// AssignmentRuleUpdate is the builder for updating AssignmentRule entities.
type AssignmentRuleUpdate struct {
	config
	hooks    []Hook
	mutation *AssignmentRuleMutation
}

// Where appends a list predicates to the AssignmentRuleUpdate builder.
func (_u *AssignmentRuleUpdate) Where(ps ...predicate.AssignmentRule) *AssignmentRuleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSource sets the "source" field.
func (_u *AssignmentRuleUpdate) SetSource(v string) *AssignmentRuleUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *AssignmentRuleUpdate) SetNillableSource(v *string) *AssignmentRuleUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// ClearSource clears the value of the "source" field.
func (_u *AssignmentRuleUpdate) ClearSource() *AssignmentRuleUpdate {
	_u.mutation.ClearSource()
	return _u
}

// SetCarInterest sets the "car_interest" field.
func (_u *AssignmentRuleUpdate) SetCarInterest(v string) *AssignmentRuleUpdate {
	_u.mutation.SetCarInterest(v)
	return _u
}

// SetNillableCarInterest sets the "car_interest" field if the given value is not nil.
func (_u *AssignmentRuleUpdate) SetNillableCarInterest(v *string) *AssignmentRuleUpdate {
	if v != nil {
		_u.SetCarInterest(*v)
	}
	return _u
}

// ClearCarInterest clears the value of the "car_interest" field.
func (_u *AssignmentRuleUpdate) ClearCarInterest() *AssignmentRuleUpdate {
	_u.mutation.ClearCarInterest()
	return _u
}

// SetAssignToTeam sets the "assign_to_team" field.
func (_u *AssignmentRuleUpdate) SetAssignToTeam(v string) *AssignmentRuleUpdate {
	_u.mutation.SetAssignToTeam(v)
	return _u
}

// SetNillableAssignToTeam sets the "assign_to_team" field if the given value is not nil.
func (_u *AssignmentRuleUpdate) SetNillableAssignToTeam(v *string) *AssignmentRuleUpdate {
	if v != nil {
		_u.SetAssignToTeam(*v)
	}
	return _u
}

// SetRoundRobin sets the "round_robin" field.
func (_u *AssignmentRuleUpdate) SetRoundRobin(v bool) *AssignmentRuleUpdate {
	_u.mutation.SetRoundRobin(v)
	return _u
}

// SetNillableRoundRobin sets the "round_robin" field if the given value is not nil.
func (_u *AssignmentRuleUpdate) SetNillableRoundRobin(v *bool) *AssignmentRuleUpdate {
	if v != nil {
		_u.SetRoundRobin(*v)
	}
	return _u
}

// Mutation returns the AssignmentRuleMutation object of the builder.
func (_u *AssignmentRuleUpdate) Mutation() *AssignmentRuleMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssignmentRuleUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssignmentRuleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssignmentRuleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssignmentRuleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssignmentRuleUpdate) check() error {
	if v, ok := _u.mutation.AssignToTeam(); ok {
		if err := assignmentrule.AssignToTeamValidator(v); err != nil {
			return &ValidationError{Name: "assign_to_team", err: fmt.Errorf(`ent: validator failed for field "AssignmentRule.assign_to_team": %w`, err)}
		}
	}
	return nil
}

func (_u *AssignmentRuleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assignmentrule.Table, assignmentrule.Columns, sqlgraph.NewFieldSpec(assignmentrule.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(assignmentrule.FieldSource, field.TypeString, value)
	}
	if _u.mutation.SourceCleared() {
		_spec.ClearField(assignmentrule.FieldSource, field.TypeString)
	}
	if value, ok := _u.mutation.CarInterest(); ok {
		_spec.SetField(assignmentrule.FieldCarInterest, field.TypeString, value)
	}
	if _u.mutation.CarInterestCleared() {
		_spec.ClearField(assignmentrule.FieldCarInterest, field.TypeString)
	}
	if value, ok := _u.mutation.AssignToTeam(); ok {
		_spec.SetField(assignmentrule.FieldAssignToTeam, field.TypeString, value)
	}
	if value, ok := _u.mutation.RoundRobin(); ok {
		_spec.SetField(assignmentrule.FieldRoundRobin, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assignmentrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssignmentRuleUpdateOne is the builder for updating a single AssignmentRule entity.
type AssignmentRuleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssignmentRuleMutation
}

// SetSource sets the "source" field.
func (_u *AssignmentRuleUpdateOne) SetSource(v string) *AssignmentRuleUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *AssignmentRuleUpdateOne) SetNillableSource(v *string) *AssignmentRuleUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// ClearSource clears the value of the "source" field.
func (_u *AssignmentRuleUpdateOne) ClearSource() *AssignmentRuleUpdateOne {
	_u.mutation.ClearSource()
	return _u
}

// SetCarInterest sets the "car_interest" field.
func (_u *AssignmentRuleUpdateOne) SetCarInterest(v string) *AssignmentRuleUpdateOne {
	_u.mutation.SetCarInterest(v)
	return _u
}

// SetNillableCarInterest sets the "car_interest" field if the given value is not nil.
func (_u *AssignmentRuleUpdateOne) SetNillableCarInterest(v *string) *AssignmentRuleUpdateOne {
	if v != nil {
		_u.SetCarInterest(*v)
	}
	return _u
}

// ClearCarInterest clears the value of the "car_interest" field.
func (_u *AssignmentRuleUpdateOne) ClearCarInterest() *AssignmentRuleUpdateOne {
	_u.mutation.ClearCarInterest()
	return _u
}

// SetAssignToTeam sets the "assign_to_team" field.
func (_u *AssignmentRuleUpdateOne) SetAssignToTeam(v string) *AssignmentRuleUpdateOne {
	_u.mutation.SetAssignToTeam(v)
	return _u
}

// SetNillableAssignToTeam sets the "assign_to_team" field if the given value is not nil.
func (_u *AssignmentRuleUpdateOne) SetNillableAssignToTeam(v *string) *AssignmentRuleUpdateOne {
	if v != nil {
		_u.SetAssignToTeam(*v)
	}
	return _u
}

// SetRoundRobin sets the "round_robin" field.
func (_u *AssignmentRuleUpdateOne) SetRoundRobin(v bool) *AssignmentRuleUpdateOne {
	_u.mutation.SetRoundRobin(v)
	return _u
}

// SetNillableRoundRobin sets the "round_robin" field if the given value is not nil.
func (_u *AssignmentRuleUpdateOne) SetNillableRoundRobin(v *bool) *AssignmentRuleUpdateOne {
	if v != nil {
		_u.SetRoundRobin(*v)
	}
	return _u
}

// Mutation returns the AssignmentRuleMutation object of the builder.
func (_u *AssignmentRuleUpdateOne) Mutation() *AssignmentRuleMutation {
	return _u.mutation
}

// Where appends a list predicates to the AssignmentRuleUpdate builder.
func (_u *AssignmentRuleUpdateOne) Where(ps ...predicate.AssignmentRule) *AssignmentRuleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssignmentRuleUpdateOne) Select(field string, fields ...string) *AssignmentRuleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AssignmentRule entity.
func (_u *AssignmentRuleUpdateOne) Save(ctx context.Context) (*AssignmentRule, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssignmentRuleUpdateOne) SaveX(ctx context.Context) *AssignmentRule {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssignmentRuleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssignmentRuleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssignmentRuleUpdateOne) check() error {
	if v, ok := _u.mutation.AssignToTeam(); ok {
		if err := assignmentrule.AssignToTeamValidator(v); err != nil {
			return &ValidationError{Name: "assign_to_team", err: fmt.Errorf(`ent: validator failed for field "AssignmentRule.assign_to_team": %w`, err)}
		}
	}
	return nil
}

func (_u *AssignmentRuleUpdateOne) sqlSave(ctx context.Context) (_node *AssignmentRule, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assignmentrule.Table, assignmentrule.Columns, sqlgraph.NewFieldSpec(assignmentrule.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AssignmentRule.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assignmentrule.FieldID)
		for _, f := range fields {
			if !assignmentrule.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != assignmentrule.FieldID {
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
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(assignmentrule.FieldSource, field.TypeString, value)
	}
	if _u.mutation.SourceCleared() {
		_spec.ClearField(assignmentrule.FieldSource, field.TypeString)
	}
	if value, ok := _u.mutation.CarInterest(); ok {
		_spec.SetField(assignmentrule.FieldCarInterest, field.TypeString, value)
	}
	if _u.mutation.CarInterestCleared() {
		_spec.ClearField(assignmentrule.FieldCarInterest, field.TypeString)
	}
	if value, ok := _u.mutation.AssignToTeam(); ok {
		_spec.SetField(assignmentrule.FieldAssignToTeam, field.TypeString, value)
	}
	if value, ok := _u.mutation.RoundRobin(); ok {
		_spec.SetField(assignmentrule.FieldRoundRobin, field.TypeBool, value)
	}
	_node = &AssignmentRule{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assignmentrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
