// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hsrmotors/leadpulse/ent/salesexecutive"
)

// SalesExecutiveCreate is the builder for creating a SalesExecutive entity.
type SalesExecutiveCreate struct {
	config
	mutation *SalesExecutiveMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *SalesExecutiveCreate) SetName(v string) *SalesExecutiveCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetAvatar sets the "avatar" field.
func (_c *SalesExecutiveCreate) SetAvatar(v string) *SalesExecutiveCreate {
	_c.mutation.SetAvatar(v)
	return _c
}

// SetNillableAvatar sets the "avatar" field if the given value is not nil.
func (_c *SalesExecutiveCreate) SetNillableAvatar(v *string) *SalesExecutiveCreate {
	if v != nil {
		_c.SetAvatar(*v)
	}
	return _c
}

// SetEmail sets the "email" field.
func (_c *SalesExecutiveCreate) SetEmail(v string) *SalesExecutiveCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetPhone sets the "phone" field.
func (_c *SalesExecutiveCreate) SetPhone(v string) *SalesExecutiveCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *SalesExecutiveCreate) SetNillablePhone(v *string) *SalesExecutiveCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetTeam sets the "team" field.
func (_c *SalesExecutiveCreate) SetTeam(v string) *SalesExecutiveCreate {
	_c.mutation.SetTeam(v)
	return _c
}

// SetNillableTeam sets the "team" field if the given value is not nil.
func (_c *SalesExecutiveCreate) SetNillableTeam(v *string) *SalesExecutiveCreate {
	if v != nil {
		_c.SetTeam(*v)
	}
	return _c
}

// SetLeadsAssigned sets the "leads_assigned" field.
func (_c *SalesExecutiveCreate) SetLeadsAssigned(v int) *SalesExecutiveCreate {
	_c.mutation.SetLeadsAssigned(v)
	return _c
}

// SetNillableLeadsAssigned sets the "leads_assigned" field if the given value is not nil.
func (_c *SalesExecutiveCreate) SetNillableLeadsAssigned(v *int) *SalesExecutiveCreate {
	if v != nil {
		_c.SetLeadsAssigned(*v)
	}
	return _c
}

// Mutation returns the SalesExecutiveMutation object of the builder.
func (_c *SalesExecutiveCreate) Mutation() *SalesExecutiveMutation {
	return _c.mutation
}

// Save creates the SalesExecutive in the database.
func (_c *SalesExecutiveCreate) Save(ctx context.Context) (*SalesExecutive, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SalesExecutiveCreate) SaveX(ctx context.Context) *SalesExecutive {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SalesExecutiveCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SalesExecutiveCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SalesExecutiveCreate) defaults() {
	if _, ok := _c.mutation.Avatar(); !ok {
		v := salesexecutive.DefaultAvatar
		_c.mutation.SetAvatar(v)
	}
	if _, ok := _c.mutation.Phone(); !ok {
		v := salesexecutive.DefaultPhone
		_c.mutation.SetPhone(v)
	}
	if _, ok := _c.mutation.LeadsAssigned(); !ok {
		v := salesexecutive.DefaultLeadsAssigned
		_c.mutation.SetLeadsAssigned(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SalesExecutiveCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "SalesExecutive.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := salesexecutive.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "SalesExecutive.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Avatar(); !ok {
		return &ValidationError{Name: "avatar", err: errors.New(`ent: missing required field "SalesExecutive.avatar"`)}
	}
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`ent: missing required field "SalesExecutive.email"`)}
	}
	if _, ok := _c.mutation.Phone(); !ok {
		return &ValidationError{Name: "phone", err: errors.New(`ent: missing required field "SalesExecutive.phone"`)}
	}
	if _, ok := _c.mutation.LeadsAssigned(); !ok {
		return &ValidationError{Name: "leads_assigned", err: errors.New(`ent: missing required field "SalesExecutive.leads_assigned"`)}
	}
	if v, ok := _c.mutation.LeadsAssigned(); ok {
		if err := salesexecutive.LeadsAssignedValidator(v); err != nil {
			return &ValidationError{Name: "leads_assigned", err: fmt.Errorf(`ent: validator failed for field "SalesExecutive.leads_assigned": %w`, err)}
		}
	}
	return nil
}

func (_c *SalesExecutiveCreate) sqlSave(ctx context.Context) (*SalesExecutive, error) {
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

func (_c *SalesExecutiveCreate) createSpec() (*SalesExecutive, *sqlgraph.CreateSpec) {
	var (
		_node = &SalesExecutive{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(salesexecutive.Table, sqlgraph.NewFieldSpec(salesexecutive.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(salesexecutive.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Avatar(); ok {
		_spec.SetField(salesexecutive.FieldAvatar, field.TypeString, value)
		_node.Avatar = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(salesexecutive.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(salesexecutive.FieldPhone, field.TypeString, value)
		_node.Phone = value
	}
	if value, ok := _c.mutation.Team(); ok {
		_spec.SetField(salesexecutive.FieldTeam, field.TypeString, value)
		_node.Team = value
	}
	if value, ok := _c.mutation.LeadsAssigned(); ok {
		_spec.SetField(salesexecutive.FieldLeadsAssigned, field.TypeInt, value)
		_node.LeadsAssigned = value
	}
	return _node, _spec
}

// SalesExecutiveCreateBulk is the builder for creating many SalesExecutive entities in bulk.
type SalesExecutiveCreateBulk struct {
	config
	err      error
	builders []*SalesExecutiveCreate
}

// Save creates the SalesExecutive entities in the database.
func (_c *SalesExecutiveCreateBulk) Save(ctx context.Context) ([]*SalesExecutive, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SalesExecutive, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SalesExecutiveMutation)
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
func (_c *SalesExecutiveCreateBulk) SaveX(ctx context.Context) []*SalesExecutive {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SalesExecutiveCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SalesExecutiveCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
