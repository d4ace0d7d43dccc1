// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hsrmotors/leadpulse/ent/assignmentrule"
)

// AssignmentRuleCreate is the builder for creating a AssignmentRule entity.
type AssignmentRuleCreate struct {
	config
	mutation *AssignmentRuleMutation
	hooks    []Hook
}

// SetSource sets the "source" field.
func (_c *AssignmentRuleCreate) SetSource(v string) *AssignmentRuleCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *AssignmentRuleCreate) SetNillableSource(v *string) *AssignmentRuleCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetCarInterest sets the "car_interest" field.
func (_c *AssignmentRuleCreate) SetCarInterest(v string) *AssignmentRuleCreate {
	_c.mutation.SetCarInterest(v)
	return _c
}

// SetNillableCarInterest sets the "car_interest" field if the given value is not nil.
func (_c *AssignmentRuleCreate) SetNillableCarInterest(v *string) *AssignmentRuleCreate {
	if v != nil {
		_c.SetCarInterest(*v)
	}
	return _c
}

// SetAssignToTeam sets the "assign_to_team" field.
func (_c *AssignmentRuleCreate) SetAssignToTeam(v string) *AssignmentRuleCreate {
	_c.mutation.SetAssignToTeam(v)
	return _c
}

// SetRoundRobin sets the "round_robin" field.
func (_c *AssignmentRuleCreate) SetRoundRobin(v bool) *AssignmentRuleCreate {
	_c.mutation.SetRoundRobin(v)
	return _c
}

// SetNillableRoundRobin sets the "round_robin" field if the given value is not nil.
func (_c *AssignmentRuleCreate) SetNillableRoundRobin(v *bool) *AssignmentRuleCreate {
	if v != nil {
		_c.SetRoundRobin(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AssignmentRuleCreate) SetCreatedAt(v time.Time) *AssignmentRuleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AssignmentRuleCreate) SetNillableCreatedAt(v *time.Time) *AssignmentRuleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the AssignmentRuleMutation object of the builder.
func (_c *AssignmentRuleCreate) Mutation() *AssignmentRuleMutation {
	return _c.mutation
}

// Save creates the AssignmentRule in the database.
func (_c *AssignmentRuleCreate) Save(ctx context.Context) (*AssignmentRule, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AssignmentRuleCreate) SaveX(ctx context.Context) *AssignmentRule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssignmentRuleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssignmentRuleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AssignmentRuleCreate) defaults() {
	if _, ok := _c.mutation.RoundRobin(); !ok {
		v := assignmentrule.DefaultRoundRobin
		_c.mutation.SetRoundRobin(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := assignmentrule.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AssignmentRuleCreate) check() error {
	if _, ok := _c.mutation.AssignToTeam(); !ok {
		return &ValidationError{Name: "assign_to_team", err: errors.New(`ent: missing required field "AssignmentRule.assign_to_team"`)}
	}
	if v, ok := _c.mutation.AssignToTeam(); ok {
		if err := assignmentrule.AssignToTeamValidator(v); err != nil {
			return &ValidationError{Name: "assign_to_team", err: fmt.Errorf(`ent: validator failed for field "AssignmentRule.assign_to_team": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RoundRobin(); !ok {
		return &ValidationError{Name: "round_robin", err: errors.New(`ent: missing required field "AssignmentRule.round_robin"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AssignmentRule.created_at"`)}
	}
	return nil
}

func (_c *AssignmentRuleCreate) sqlSave(ctx context.Context) (*AssignmentRule, error) {
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

func (_c *AssignmentRuleCreate) createSpec() (*AssignmentRule, *sqlgraph.CreateSpec) {
	var (
		_node = &AssignmentRule{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(assignmentrule.Table, sqlgraph.NewFieldSpec(assignmentrule.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(assignmentrule.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.CarInterest(); ok {
		_spec.SetField(assignmentrule.FieldCarInterest, field.TypeString, value)
		_node.CarInterest = value
	}
	if value, ok := _c.mutation.AssignToTeam(); ok {
		_spec.SetField(assignmentrule.FieldAssignToTeam, field.TypeString, value)
		_node.AssignToTeam = value
	}
	if value, ok := _c.mutation.RoundRobin(); ok {
		_spec.SetField(assignmentrule.FieldRoundRobin, field.TypeBool, value)
		_node.RoundRobin = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(assignmentrule.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// AssignmentRuleCreateBulk is the builder for creating many AssignmentRule entities in bulk.
type AssignmentRuleCreateBulk struct {
	config
	err      error
	builders []*AssignmentRuleCreate
}

// Save creates the AssignmentRule entities in the database.
func (_c *AssignmentRuleCreateBulk) Save(ctx context.Context) ([]*AssignmentRule, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AssignmentRule, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AssignmentRuleMutation)
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
func (_c *AssignmentRuleCreateBulk) SaveX(ctx context.Context) []*AssignmentRule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssignmentRuleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssignmentRuleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
