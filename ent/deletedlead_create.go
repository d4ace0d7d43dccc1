// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hsrmotors/leadpulse/ent/deletedlead"
)

// DeletedLeadCreate is the builder for creating a DeletedLead entity.
type DeletedLeadCreate struct {
	config
	mutation *DeletedLeadMutation
	hooks    []Hook
}

// SetLeadID sets the "lead_id" field.
func (_c *DeletedLeadCreate) SetLeadID(v int) *DeletedLeadCreate {
	_c.mutation.SetLeadID(v)
	return _c
}

// SetLeadName sets the "lead_name" field.
func (_c *DeletedLeadCreate) SetLeadName(v string) *DeletedLeadCreate {
	_c.mutation.SetLeadName(v)
	return _c
}

// SetLeadSource sets the "lead_source" field.
func (_c *DeletedLeadCreate) SetLeadSource(v string) *DeletedLeadCreate {
	_c.mutation.SetLeadSource(v)
	return _c
}

// SetLeadStatus sets the "lead_status" field.
func (_c *DeletedLeadCreate) SetLeadStatus(v string) *DeletedLeadCreate {
	_c.mutation.SetLeadStatus(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *DeletedLeadCreate) SetReason(v string) *DeletedLeadCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *DeletedLeadCreate) SetDeletedAt(v time.Time) *DeletedLeadCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *DeletedLeadCreate) SetNillableDeletedAt(v *time.Time) *DeletedLeadCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// Mutation returns the DeletedLeadMutation object of the builder.
func (_c *DeletedLeadCreate) Mutation() *DeletedLeadMutation {
	return _c.mutation
}

// Save creates the DeletedLead in the database.
func (_c *DeletedLeadCreate) Save(ctx context.Context) (*DeletedLead, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DeletedLeadCreate) SaveX(ctx context.Context) *DeletedLead {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DeletedLeadCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DeletedLeadCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DeletedLeadCreate) defaults() {
	if _, ok := _c.mutation.DeletedAt(); !ok {
		v := deletedlead.DefaultDeletedAt()
		_c.mutation.SetDeletedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DeletedLeadCreate) check() error {
	if _, ok := _c.mutation.LeadID(); !ok {
		return &ValidationError{Name: "lead_id", err: errors.New(`ent: missing required field "DeletedLead.lead_id"`)}
	}
	if _, ok := _c.mutation.LeadName(); !ok {
		return &ValidationError{Name: "lead_name", err: errors.New(`ent: missing required field "DeletedLead.lead_name"`)}
	}
	if _, ok := _c.mutation.LeadSource(); !ok {
		return &ValidationError{Name: "lead_source", err: errors.New(`ent: missing required field "DeletedLead.lead_source"`)}
	}
	if _, ok := _c.mutation.LeadStatus(); !ok {
		return &ValidationError{Name: "lead_status", err: errors.New(`ent: missing required field "DeletedLead.lead_status"`)}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "DeletedLead.reason"`)}
	}
	if v, ok := _c.mutation.Reason(); ok {
		if err := deletedlead.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "DeletedLead.reason": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DeletedAt(); !ok {
		return &ValidationError{Name: "deleted_at", err: errors.New(`ent: missing required field "DeletedLead.deleted_at"`)}
	}
	return nil
}

func (_c *DeletedLeadCreate) sqlSave(ctx context.Context) (*DeletedLead, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DeletedLeadCreate) createSpec() (*DeletedLead, *sqlgraph.CreateSpec) {
	var (
		_node = &DeletedLead{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(deletedlead.Table, sqlgraph.NewFieldSpec(deletedlead.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.LeadID(); ok {
		_spec.SetField(deletedlead.FieldLeadID, field.TypeInt, value)
		_node.LeadID = value
	}
	if value, ok := _c.mutation.LeadName(); ok {
		_spec.SetField(deletedlead.FieldLeadName, field.TypeString, value)
		_node.LeadName = value
	}
	if value, ok := _c.mutation.LeadSource(); ok {
		_spec.SetField(deletedlead.FieldLeadSource, field.TypeString, value)
		_node.LeadSource = value
	}
	if value, ok := _c.mutation.LeadStatus(); ok {
		_spec.SetField(deletedlead.FieldLeadStatus, field.TypeString, value)
		_node.LeadStatus = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(deletedlead.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(deletedlead.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = value
	}
	return _node, _spec
}

// DeletedLeadCreateBulk is the builder for creating many DeletedLead entities in bulk.
type DeletedLeadCreateBulk struct {
	config
	err      error
	builders []*DeletedLeadCreate
}

// Save creates the DeletedLead entities in the database.
func (_c *DeletedLeadCreateBulk) Save(ctx context.Context) ([]*DeletedLead, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DeletedLead, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DeletedLeadMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *DeletedLeadCreateBulk) SaveX(ctx context.Context) []*DeletedLead {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DeletedLeadCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DeletedLeadCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
