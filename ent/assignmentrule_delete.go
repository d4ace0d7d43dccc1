// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hsrmotors/leadpulse/ent/assignmentrule"
	"github.com/hsrmotors/leadpulse/ent/predicate"
)

// AssignmentRuleDelete is the builder for deleting a AssignmentRule entity.
type AssignmentRuleDelete struct {
	config
	hooks    []Hook
	mutation *AssignmentRuleMutation
}

// Where appends a list predicates to the AssignmentRuleDelete builder.
func (_d *AssignmentRuleDelete) Where(ps ...predicate.AssignmentRule) *AssignmentRuleDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AssignmentRuleDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AssignmentRuleDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AssignmentRuleDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(assignmentrule.Table, sqlgraph.NewFieldSpec(assignmentrule.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// AssignmentRuleDeleteOne is the builder for deleting a single AssignmentRule entity.
type AssignmentRuleDeleteOne struct {
	_d *AssignmentRuleDelete
}

// Where appends a list predicates to the AssignmentRuleDelete builder.
func (_d *AssignmentRuleDeleteOne) Where(ps ...predicate.AssignmentRule) *AssignmentRuleDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AssignmentRuleDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{assignmentrule.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AssignmentRuleDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
