// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hsrmotors/leadpulse/ent/predicate"
	"github.com/hsrmotors/leadpulse/ent/salesexecutive"
)

// SalesExecutiveDelete is the builder for deleting a SalesExecutive entity.
type SalesExecutiveDelete struct {
	config
	hooks    []Hook
	mutation *SalesExecutiveMutation
}

// Where appends a list predicates to the SalesExecutiveDelete builder.
func (_d *SalesExecutiveDelete) Where(ps ...predicate.SalesExecutive) *SalesExecutiveDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *SalesExecutiveDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SalesExecutiveDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *SalesExecutiveDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(salesexecutive.Table, sqlgraph.NewFieldSpec(salesexecutive.FieldID, field.TypeInt))
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

// SalesExecutiveDeleteOne is the builder for deleting a single SalesExecutive entity.
type SalesExecutiveDeleteOne struct {
	_d *SalesExecutiveDelete
}

// Where appends a list predicates to the SalesExecutiveDelete builder.
func (_d *SalesExecutiveDeleteOne) Where(ps ...predicate.SalesExecutive) *SalesExecutiveDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *SalesExecutiveDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{salesexecutive.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SalesExecutiveDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
